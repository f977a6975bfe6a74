// Package moneyfmt renders monetary amounts as human-readable strings.
//
// Four styles are supported:
//
//   - Standard: currency symbol plus locale-aware digit grouping,
//     "$10,123.23" for en and "10.123,23 €" for de.
//   - Compact: abbreviated magnitude suffixes, "$10.12K".
//   - Split: the numeric major/minor unit breakdown, (10123, 23).
//   - Detailed: fully spelled-out phrases, "10 min 123 manat 23 qəpik".
//
// Amounts are shopspring decimals, currencies are ISO 4217 codes matched
// case-insensitively, and languages are BCP 47 tags reduced to their
// primary subtag ("az-Latn-AZ" selects the same words as "az"). When a
// call passes an empty language the formatter uses its configured default,
// or detects the process locale once on first use.
//
// Word lookups never fail. Every localized word resolves through the same
// chain: the exact language, then "en", then a hardcoded default. Unknown
// currency codes, unresolvable language tags and out-of-range amounts are
// the only error cases, all reported as ErrInvalidFormatArgument.
//
// The package-level functions operate on a shared default formatter backed
// by the built-in currency table. Deployments needing custom currencies or
// vocabulary construct their own:
//
//	f, err := moneyfmt.New(
//		moneyfmt.WithDataFile("currencies.yaml"),
//		moneyfmt.WithDefaultLanguage("az"),
//	)
//
// Known limitations:
//
//   - The detailed style groups by millions and thousands only; amounts in
//     the billions read as thousands of millions ("2500 million").
//   - Amounts beyond roughly ±92 quadrillion major units exceed the
//     grouping arithmetic and are rejected.
//   - Right-to-left script layout is not handled; symbols are placed by a
//     per-language convention table.
package moneyfmt
