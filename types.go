package moneyfmt

// CurrencyInfo describes a single currency: display metadata for the
// symbol-based styles plus the localized unit-name tables consumed by the
// detailed formatter. Instances held by a Registry are immutable.
type CurrencyInfo struct {
	// Code is the 3-letter uppercase identifier, unique per registry.
	Code string
	// Symbol is the display glyph used by the standard and compact styles.
	Symbol string
	// DecimalPlaces is the minor-unit scale. The detailed style always
	// works in hundredths; the other styles honor this value.
	DecimalPlaces int
	// MajorUnitNames maps a 2-letter language tag to the major-unit word.
	MajorUnitNames map[string]string
	// MinorUnitNames maps a 2-letter language tag to the minor-unit word.
	MinorUnitNames map[string]string
	// Countries lists ISO 3166-1 alpha-2 codes where the currency is used.
	Countries []string
}

// Clone returns a deep copy so registry snapshots never alias caller maps.
func (c CurrencyInfo) Clone() CurrencyInfo {
	clone := c

	if len(c.MajorUnitNames) > 0 {
		clone.MajorUnitNames = make(map[string]string, len(c.MajorUnitNames))
		for lang, name := range c.MajorUnitNames {
			clone.MajorUnitNames[lang] = name
		}
	}

	if len(c.MinorUnitNames) > 0 {
		clone.MinorUnitNames = make(map[string]string, len(c.MinorUnitNames))
		for lang, name := range c.MinorUnitNames {
			clone.MinorUnitNames[lang] = name
		}
	}

	if len(c.Countries) > 0 {
		clone.Countries = append([]string(nil), c.Countries...)
	}

	return clone
}
