package moneyfmt

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	hundredUnits = decimal.NewFromInt(100)

	// maxIntegerUnits bounds the scaled minor-unit total so every group
	// stays within int64 arithmetic.
	maxIntegerUnits = decimal.NewFromInt(math.MaxInt64)
)

// Detailed renders amount as a fully spelled-out phrase: magnitude groups
// of the major unit followed by the minor-unit remainder, each paired with
// its localized word.
//
//	Detailed(decimal.NewFromFloat(10123.23), "AZN", "az")
//	// => "10 min 123 manat 23 qəpik"
//
// lang may be a full locale tag; only its primary language subtag selects
// words, so "az-Latn-AZ" reads the same tables as "az". An empty lang uses
// the formatter's default language. The minor remainder is hundredths of
// the major unit, rounded half away from zero; an amount whose fraction
// rounds up to a whole unit carries over (5.999 formats as "6 dollars").
//
// Unknown currency codes and unresolvable language tags return an error
// matching ErrInvalidFormatArgument. There is no partial output.
func (f *Formatter) Detailed(amount decimal.Decimal, code, lang string) (string, error) {
	info, ok := f.registry.lookup(code)
	if !ok {
		return "", &FormatArgumentError{Currency: code, Reason: "unknown currency"}
	}

	if lang == "" {
		lang = f.DefaultLanguage()
	}
	subtag, err := languageSubtag(lang)
	if err != nil {
		return "", err
	}

	units := amount.Abs().Mul(hundredUnits).Round(0)
	if units.Cmp(maxIntegerUnits) > 0 {
		return "", &FormatArgumentError{Currency: info.Code, Reason: "amount exceeds supported range"}
	}
	majorPart, minorPart := units.QuoRem(hundredUnits, 0)
	major := majorPart.IntPart()
	minor := minorPart.IntPart()

	majorName := lookupLocalized(info.MajorUnitNames, subtag, majorUnitDefault(info.Code))

	fragments := make([]string, 0, 5)

	if amount.IsNegative() {
		fragments = append(fragments, f.lexicon.Word(ConceptNegative, subtag))
	}

	if major > 0 {
		dec := decomposeMajor(major)
		switch {
		case dec.millions > 0:
			fragments = append(fragments, phraseFragment(dec.millions, f.lexicon.Word(ConceptMillion, subtag)))
			if dec.thousands > 0 {
				fragments = append(fragments, phraseFragment(dec.thousands, f.lexicon.Word(ConceptThousand, subtag)))
			}
			if dec.remainder > 0 {
				fragments = append(fragments, phraseFragment(dec.remainder, majorName))
			} else {
				// the unit is still named once when nothing follows the
				// magnitude groups: "2 million dollars", "50 Tausend Euro"
				fragments = append(fragments, majorName)
			}
		case dec.thousands > 0:
			fragments = append(fragments, phraseFragment(dec.thousands, f.lexicon.Word(ConceptThousand, subtag)))
			if dec.remainder > 0 {
				fragments = append(fragments, phraseFragment(dec.remainder, majorName))
			} else {
				fragments = append(fragments, majorName)
			}
		default:
			fragments = append(fragments, phraseFragment(dec.remainder, majorName))
		}
	}

	if minor > 0 {
		minorName := lookupLocalized(info.MinorUnitNames, subtag, defaultMinorUnit)
		fragments = append(fragments, phraseFragment(minor, minorName))
	}

	if len(fragments) == 0 {
		return "0 " + majorName, nil
	}
	return strings.Join(fragments, " "), nil
}

func phraseFragment(n int64, word string) string {
	return strconv.FormatInt(n, 10) + " " + word
}
