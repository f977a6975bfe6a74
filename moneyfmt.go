package moneyfmt

import (
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
)

var (
	defaultFormatterOnce sync.Once
	defaultFormatter     *Formatter
)

// Default returns the shared zero-config formatter, built once on first
// use. It serves the built-in currency table and the bundled lexicon.
func Default() *Formatter {
	defaultFormatterOnce.Do(func() {
		defaultFormatter = &Formatter{
			registry: DefaultRegistry(),
			lexicon:  defaultLexicon(),
			printers: make(map[string]*message.Printer),
		}
	})
	return defaultFormatter
}

// FormatDetailed renders amount as a fully spelled-out phrase using the
// shared default formatter. See Formatter.Detailed.
func FormatDetailed(amount decimal.Decimal, code, lang string) (string, error) {
	return Default().Detailed(amount, code, lang)
}

// FormatStandard renders amount with symbol and locale-aware grouping
// using the shared default formatter. See Formatter.Standard.
func FormatStandard(amount decimal.Decimal, code, lang string) (string, error) {
	return Default().Standard(amount, code, lang)
}

// FormatCompact renders amount in abbreviated magnitude notation using the
// shared default formatter. See Formatter.Compact.
func FormatCompact(amount decimal.Decimal, code, lang string) (string, error) {
	return Default().Compact(amount, code, lang)
}

// SplitAmount breaks amount into major and minor units using the shared
// default formatter. See Formatter.Split.
func SplitAmount(amount decimal.Decimal, code string) (major, minor int64, err error) {
	return Default().Split(amount, code)
}

// LookupCurrency returns the built-in metadata for code, matching
// case-insensitively.
func LookupCurrency(code string) (CurrencyInfo, bool) {
	return DefaultRegistry().Lookup(code)
}

// IsSupportedCurrency reports whether code is in the built-in table.
func IsSupportedCurrency(code string) bool {
	return DefaultRegistry().IsSupported(code)
}

// Currencies returns the built-in currency table ordered by code.
func Currencies() []CurrencyInfo {
	return DefaultRegistry().Currencies()
}

// CurrenciesForCountry returns the built-in currencies used in the given
// ISO 3166-1 alpha-2 country.
func CurrenciesForCountry(country string) []CurrencyInfo {
	return DefaultRegistry().ForCountry(country)
}
