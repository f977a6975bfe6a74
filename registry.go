package moneyfmt

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// Registry is an immutable currency snapshot, read only after construction.
// All methods are safe for concurrent use.
type Registry struct {
	currencies map[string]CurrencyInfo
	byCountry  map[string][]string
	codes      []string
}

// NewRegistry builds an immutable snapshot from the given currencies. Codes
// are normalized to uppercase and must be unique 3-letter identifiers.
func NewRegistry(infos ...CurrencyInfo) (*Registry, error) {
	currencies := make(map[string]CurrencyInfo, len(infos))
	byCountry := make(map[string][]string)
	codes := make([]string, 0, len(infos))

	for _, info := range infos {
		code := normalizeCurrencyCode(info.Code)
		if !validCurrencyCode(code) {
			return nil, fmt.Errorf("moneyfmt: invalid currency code %q", info.Code)
		}
		if _, exists := currencies[code]; exists {
			return nil, fmt.Errorf("moneyfmt: duplicate currency code %q", code)
		}
		if info.DecimalPlaces < 0 {
			return nil, fmt.Errorf("moneyfmt: currency %s: negative decimal places", code)
		}

		clone := info.Clone()
		clone.Code = code
		currencies[code] = clone
		codes = append(codes, code)

		for _, country := range clone.Countries {
			country = strings.ToUpper(strings.TrimSpace(country))
			if country == "" {
				continue
			}
			byCountry[country] = append(byCountry[country], code)
		}
	}

	// make listings deterministic
	sort.Strings(codes)
	for _, linked := range byCountry {
		sort.Strings(linked)
	}

	return &Registry{
		currencies: currencies,
		byCountry:  byCountry,
		codes:      codes,
	}, nil
}

var (
	defaultRegistryOnce sync.Once
	defaultRegistry     *Registry
)

// DefaultRegistry returns the registry backed by the built-in currency
// table. It is built once on first use and shared afterwards.
func DefaultRegistry() *Registry {
	defaultRegistryOnce.Do(func() {
		registry, err := NewRegistry(builtinCurrencies...)
		if err != nil {
			panic(err)
		}
		defaultRegistry = registry
	})
	return defaultRegistry
}

// Lookup returns the currency for code, matching case-insensitively. The
// returned value is a copy; mutating it never affects the registry.
func (r *Registry) Lookup(code string) (CurrencyInfo, bool) {
	info, ok := r.lookup(code)
	if !ok {
		return CurrencyInfo{}, false
	}
	return info.Clone(), true
}

// lookup is the alias-free variant used on the formatting paths, which
// never mutate the snapshot.
func (r *Registry) lookup(code string) (CurrencyInfo, bool) {
	if r == nil {
		return CurrencyInfo{}, false
	}
	info, ok := r.currencies[normalizeCurrencyCode(code)]
	return info, ok
}

// IsSupported reports whether code resolves to a registered currency.
func (r *Registry) IsSupported(code string) bool {
	_, ok := r.lookup(code)
	return ok
}

// Currencies returns every registered currency ordered by code.
func (r *Registry) Currencies() []CurrencyInfo {
	if r == nil || len(r.codes) == 0 {
		return nil
	}
	out := make([]CurrencyInfo, 0, len(r.codes))
	for _, code := range r.codes {
		out = append(out, r.currencies[code].Clone())
	}
	return out
}

// Codes returns the registered currency codes in sorted order.
func (r *Registry) Codes() []string {
	if r == nil || len(r.codes) == 0 {
		return nil
	}
	out := make([]string, len(r.codes))
	copy(out, r.codes)
	return out
}

// ForCountry returns the currencies used in the given ISO 3166-1 alpha-2
// country. Countries the table does not index explicitly fall back to the
// ISO region mapping, still restricted to registered currencies.
func (r *Registry) ForCountry(country string) []CurrencyInfo {
	if r == nil {
		return nil
	}

	country = strings.ToUpper(strings.TrimSpace(country))
	if country == "" {
		return nil
	}

	if codes := r.byCountry[country]; len(codes) > 0 {
		out := make([]CurrencyInfo, 0, len(codes))
		for _, code := range codes {
			out = append(out, r.currencies[code].Clone())
		}
		return out
	}

	region, err := language.ParseRegion(country)
	if err != nil {
		return nil
	}
	unit, ok := currency.FromRegion(region)
	if !ok {
		return nil
	}
	if info, ok := r.currencies[unit.String()]; ok {
		return []CurrencyInfo{info.Clone()}
	}
	return nil
}

// normalizeCurrencyCode uppercases and trims a currency identifier; lookups
// are case-insensitive by contract.
func normalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// validCurrencyCode reports whether code is 3 ASCII letters, already
// normalized to uppercase.
func validCurrencyCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}
