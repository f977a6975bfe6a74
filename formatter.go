package moneyfmt

import (
	"fmt"
	"sync"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter renders amounts in the four supported styles. The zero-option
// New() serves the built-in currency table, the bundled lexicon, and the
// process language. A Formatter is safe for concurrent use.
type Formatter struct {
	registry    *Registry
	lexicon     *Lexicon
	defaultLang string

	detectOnce sync.Once
	detected   string

	mu       sync.RWMutex
	printers map[string]*message.Printer
}

// Option mutates Formatter during construction.
type Option func(*Formatter) error

// New builds a Formatter via supplied options.
func New(opts ...Option) (*Formatter, error) {
	f := &Formatter{printers: make(map[string]*message.Printer)}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(f); err != nil {
			return nil, err
		}
	}

	if f.registry == nil {
		f.registry = DefaultRegistry()
	}
	if f.lexicon == nil {
		f.lexicon = defaultLexicon()
	}

	if f.defaultLang != "" {
		subtag, err := languageSubtag(f.defaultLang)
		if err != nil {
			return nil, fmt.Errorf("moneyfmt: default language: %w", err)
		}
		f.defaultLang = subtag
	}

	return f, nil
}

// WithRegistry replaces the currency table.
func WithRegistry(registry *Registry) Option {
	return func(f *Formatter) error {
		if registry != nil {
			f.registry = registry
		}
		return nil
	}
}

// WithLexicon replaces the structural word tables.
func WithLexicon(lexicon *Lexicon) Option {
	return func(f *Formatter) error {
		if lexicon != nil {
			f.lexicon = lexicon
		}
		return nil
	}
}

// WithWords merges structural words over the configured lexicon.
func WithWords(words map[string]map[string]string) Option {
	return func(f *Formatter) error {
		if len(words) == 0 {
			return nil
		}
		if f.lexicon == nil {
			f.lexicon = defaultLexicon()
		}
		f.lexicon = f.lexicon.With(words)
		return nil
	}
}

// WithDefaultLanguage pins the language used when a call supplies none,
// instead of detecting the process locale.
func WithDefaultLanguage(tag string) Option {
	return func(f *Formatter) error {
		f.defaultLang = tag
		return nil
	}
}

// WithDataSource merges loaded currency data over the tables configured so
// far. Later options still apply on top.
func WithDataSource(src DataSource) Option {
	return func(f *Formatter) error {
		if src == nil {
			return nil
		}
		data, err := src.Load()
		if err != nil {
			return err
		}
		if data == nil {
			return nil
		}
		registry, lexicon, err := data.Merge(f.registry, f.lexicon)
		if err != nil {
			return err
		}
		f.registry = registry
		f.lexicon = lexicon
		return nil
	}
}

// WithDataFile merges a currency data file (.json, .yaml, .yml or .toml)
// over the tables configured so far.
func WithDataFile(path string) Option {
	return WithDataSource(NewDataFileLoader(path))
}

// Registry exposes the currency table behind the formatter.
func (f *Formatter) Registry() *Registry {
	if f == nil {
		return nil
	}
	return f.registry
}

// DefaultLanguage returns the language used when a call supplies none: the
// WithDefaultLanguage override, otherwise the process language, detected
// once and cached.
func (f *Formatter) DefaultLanguage() string {
	if f.defaultLang != "" {
		return f.defaultLang
	}
	f.detectOnce.Do(func() {
		f.detected = detectProcessLanguage()
	})
	return f.detected
}

// Standard renders amount with the currency symbol and locale-aware digit
// grouping, using the currency's decimal places as the fraction width:
// "$10,123.23" for en, "10.123,23 €" for de.
func (f *Formatter) Standard(amount decimal.Decimal, code, lang string) (string, error) {
	info, ok := f.registry.lookup(code)
	if !ok {
		return "", &FormatArgumentError{Currency: code, Reason: "unknown currency"}
	}
	tag, err := f.resolveTag(lang)
	if err != nil {
		return "", err
	}

	printer := f.printerFor(tag)
	formatted := printer.Sprintf("%v", number.Decimal(amount.InexactFloat64(),
		number.MinFractionDigits(info.DecimalPlaces),
		number.MaxFractionDigits(info.DecimalPlaces)))

	return placeSymbol(info.Symbol, formatted, tag), nil
}

// compactScales in descending magnitude order.
var compactScales = []struct {
	divisor decimal.Decimal
	suffix  string
}{
	{decimal.New(1, 12), "T"},
	{decimal.New(1, 9), "B"},
	{decimal.New(1, 6), "M"},
	{decimal.New(1, 3), "K"},
}

// Compact abbreviates large amounts with a magnitude suffix: "$1.23M".
// The scaled value keeps at most two fraction digits and is truncated, not
// rounded, so the suffix never overstates the magnitude (999999 stays
// "999.99K"). Amounts below one thousand render like Standard.
func (f *Formatter) Compact(amount decimal.Decimal, code, lang string) (string, error) {
	info, ok := f.registry.lookup(code)
	if !ok {
		return "", &FormatArgumentError{Currency: code, Reason: "unknown currency"}
	}
	tag, err := f.resolveTag(lang)
	if err != nil {
		return "", err
	}

	abs := amount.Abs()
	for _, scale := range compactScales {
		if abs.Cmp(scale.divisor) < 0 {
			continue
		}

		mantissa := abs.Div(scale.divisor).Truncate(2)
		printer := f.printerFor(tag)
		formatted := printer.Sprintf("%v", number.Decimal(mantissa.InexactFloat64(),
			number.MaxFractionDigits(2)))
		if amount.IsNegative() {
			formatted = "-" + formatted
		}
		return placeSymbol(info.Symbol, formatted+scale.suffix, tag), nil
	}

	return f.Standard(amount, code, lang)
}

// Split breaks amount into major and minor units scaled by the currency's
// decimal places: 10123.23 USD yields (10123, 23), 123.6 JPY yields
// (124, 0). The minor remainder is rounded half away from zero and carries
// into the major part when it rounds up to a whole unit; both parts take
// the amount's sign.
func (f *Formatter) Split(amount decimal.Decimal, code string) (major, minor int64, err error) {
	info, ok := f.registry.lookup(code)
	if !ok {
		return 0, 0, &FormatArgumentError{Currency: code, Reason: "unknown currency"}
	}

	step := decimal.New(1, int32(info.DecimalPlaces))
	units := amount.Mul(step).Round(0)
	if units.Abs().Cmp(maxIntegerUnits) > 0 {
		return 0, 0, &FormatArgumentError{Currency: info.Code, Reason: "amount exceeds supported range"}
	}

	majorPart, minorPart := units.QuoRem(step, 0)
	return majorPart.IntPart(), minorPart.IntPart(), nil
}

func (f *Formatter) resolveTag(lang string) (language.Tag, error) {
	if lang == "" {
		lang = f.DefaultLanguage()
	}
	tag, err := language.Parse(normalizeLocale(lang))
	if err != nil {
		return language.Tag{}, &FormatArgumentError{Language: lang, Reason: "unresolvable language tag"}
	}
	return tag, nil
}

// printerFor returns the cached message printer for tag, creating it on
// first use.
func (f *Formatter) printerFor(tag language.Tag) *message.Printer {
	key := tag.String()

	f.mu.RLock()
	printer, ok := f.printers[key]
	f.mu.RUnlock()
	if ok {
		return printer
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	if cached, ok := f.printers[key]; ok {
		return cached
	}
	printer = message.NewPrinter(tag)
	f.printers[key] = printer
	return printer
}

// symbolAfterLanguages lists languages that conventionally write the
// amount before the symbol.
var symbolAfterLanguages = map[string]bool{
	"az": true, "bg": true, "cs": true, "de": true, "es": true,
	"fi": true, "fr": true, "hu": true, "it": true, "pl": true,
	"pt": true, "ro": true, "ru": true, "sv": true, "tr": true,
	"uk": true,
}

func placeSymbol(symbol, formatted string, tag language.Tag) string {
	if symbol == "" {
		return formatted
	}
	base, _ := tag.Base()
	if symbolAfterLanguages[base.String()] {
		return formatted + " " + symbol
	}
	return symbol + formatted
}
