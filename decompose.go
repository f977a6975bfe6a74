package moneyfmt

const (
	unitsPerThousand = 1_000
	unitsPerMillion  = 1_000_000
)

// amountDecomposition groups an integral major amount by spoken-number
// scale. It is produced per call and discarded once the phrase is
// assembled.
type amountDecomposition struct {
	millions  int64
	thousands int64
	remainder int64
}

// decomposeMajor splits a major amount into million, thousand and unit
// groups such that
//
//	millions*1_000_000 + thousands*1_000 + remainder == major
//
// with thousands and remainder both below 1_000. The caller strips the
// sign and floors fractional amounts first; major must be non-negative.
func decomposeMajor(major int64) amountDecomposition {
	rem := major % unitsPerMillion
	return amountDecomposition{
		millions:  major / unitsPerMillion,
		thousands: rem / unitsPerThousand,
		remainder: rem % unitsPerThousand,
	}
}
