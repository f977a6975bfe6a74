package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	moneyfmt "github.com/goliatone/go-moneyfmt"
	"github.com/shopspring/decimal"
)

type appConfig struct {
	amount   string
	currency string
	lang     string
	style    string
	country  string
	list     bool
	data     dataFlag
}

type dataFlag struct {
	items []string
}

func (f *dataFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *dataFlag) Set(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	f.items = append(f.items, value)
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "moneyfmt: %v\n", err)
	os.Exit(1)
}

func parseFlags() (appConfig, error) {
	var cfg appConfig

	flag.StringVar(&cfg.amount, "amount", "", "amount to format, e.g. 10123.23")
	flag.StringVar(&cfg.currency, "currency", "", "ISO 4217 currency code, e.g. AZN")
	flag.StringVar(&cfg.lang, "lang", "", "language tag (defaults to the process locale)")
	flag.StringVar(&cfg.style, "style", "detailed", "output style: standard, compact, split, detailed or all")
	flag.StringVar(&cfg.country, "country", "", "list the currencies used in an ISO 3166-1 country")
	flag.BoolVar(&cfg.list, "list", false, "list the supported currency codes")
	flag.Var(&cfg.data, "data", "currency data file to merge (.json/.yaml/.toml). Repeat flag to add more.")

	flag.Parse()

	if !cfg.list && cfg.country == "" {
		if cfg.amount == "" {
			return appConfig{}, errors.New("missing -amount value")
		}
		if cfg.currency == "" {
			return appConfig{}, errors.New("missing -currency value")
		}
	}

	return cfg, nil
}

func run(cfg appConfig) error {
	opts := make([]moneyfmt.Option, 0, len(cfg.data.items))
	for _, path := range cfg.data.items {
		opts = append(opts, moneyfmt.WithDataFile(path))
	}
	if cfg.lang != "" {
		opts = append(opts, moneyfmt.WithDefaultLanguage(cfg.lang))
	}

	formatter, err := moneyfmt.New(opts...)
	if err != nil {
		return err
	}

	if cfg.list {
		return listCurrencies(formatter)
	}
	if cfg.country != "" {
		return listCountryCurrencies(formatter, cfg.country)
	}

	amount, err := decimal.NewFromString(cfg.amount)
	if err != nil {
		return fmt.Errorf("parse amount %q: %w", cfg.amount, err)
	}

	styles, err := selectStyles(cfg.style)
	if err != nil {
		return err
	}

	for _, style := range styles {
		out, err := renderStyle(formatter, style, amount, cfg.currency, cfg.lang)
		if err != nil {
			return err
		}
		if len(styles) == 1 {
			fmt.Println(out)
		} else {
			fmt.Printf("%-9s %s\n", style+":", out)
		}
	}

	return nil
}

func selectStyles(style string) ([]string, error) {
	style = strings.ToLower(strings.TrimSpace(style))
	switch style {
	case "standard", "compact", "split", "detailed":
		return []string{style}, nil
	case "all":
		return []string{"standard", "compact", "split", "detailed"}, nil
	default:
		return nil, fmt.Errorf("unknown style %q", style)
	}
}

func renderStyle(formatter *moneyfmt.Formatter, style string, amount decimal.Decimal, code, lang string) (string, error) {
	switch style {
	case "standard":
		return formatter.Standard(amount, code, lang)
	case "compact":
		return formatter.Compact(amount, code, lang)
	case "split":
		major, minor, err := formatter.Split(amount, code)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d major, %d minor", major, minor), nil
	case "detailed":
		return formatter.Detailed(amount, code, lang)
	default:
		return "", fmt.Errorf("unknown style %q", style)
	}
}

func listCurrencies(formatter *moneyfmt.Formatter) error {
	for _, info := range formatter.Registry().Currencies() {
		fmt.Printf("%s  %-5s %d decimal places\n", info.Code, info.Symbol, info.DecimalPlaces)
	}
	return nil
}

func listCountryCurrencies(formatter *moneyfmt.Formatter, country string) error {
	infos := formatter.Registry().ForCountry(country)
	if len(infos) == 0 {
		return fmt.Errorf("no currencies known for country %q", country)
	}
	for _, info := range infos {
		fmt.Printf("%s  %s\n", info.Code, info.Symbol)
	}
	return nil
}
