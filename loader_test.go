package moneyfmt

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestLoadCurrencyDataJSON(t *testing.T) {
	t.Parallel()

	data, err := LoadCurrencyData(filepath.Join("testdata", "currencies.json"))
	if err != nil {
		t.Fatalf("LoadCurrencyData: %v", err)
	}

	entry, ok := data.Currencies["VEF"]
	if !ok {
		t.Fatalf("Currencies missing VEF: %v", data.Currencies)
	}
	if entry.Symbol != "Bs" {
		t.Fatalf("Symbol = %q want %q", entry.Symbol, "Bs")
	}
	if entry.DecimalPlaces != 2 {
		t.Fatalf("DecimalPlaces = %d want 2", entry.DecimalPlaces)
	}
	if got := entry.MajorUnits["es"]; got != "bolívares" {
		t.Fatalf("MajorUnits[es] = %q want %q", got, "bolívares")
	}

	if got := data.Words["negative"]["es"]; got != "menos" {
		t.Fatalf("Words[negative][es] = %q want %q", got, "menos")
	}
}

func TestLoadCurrencyDataTOML(t *testing.T) {
	t.Parallel()

	data, err := LoadCurrencyData(filepath.Join("testdata", "words.toml"))
	if err != nil {
		t.Fatalf("LoadCurrencyData: %v", err)
	}

	if got := data.Words["thousand"]["fr"]; got != "mille" {
		t.Fatalf("Words[thousand][fr] = %q want %q", got, "mille")
	}
	if len(data.Currencies) != 0 {
		t.Fatalf("Currencies = %v want empty", data.Currencies)
	}
}

func TestDataFileLoaderLaterFileWins(t *testing.T) {
	t.Parallel()

	loader := NewDataFileLoader(
		filepath.Join("testdata", "currencies.json"),
		filepath.Join("testdata", "overrides.yaml"),
	)
	data, err := loader.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// the yaml file replaces the json VEF entry and keys are normalized
	if got := data.Currencies["VEF"].Symbol; got != "BsF" {
		t.Fatalf("Currencies[VEF].Symbol = %q want %q", got, "BsF")
	}
	if got := data.Currencies["AZN"].Symbol; got != "man." {
		t.Fatalf("Currencies[AZN].Symbol = %q want %q", got, "man.")
	}
	// words from the first file survive
	if got := data.Words["thousand"]["es"]; got != "mil" {
		t.Fatalf("Words[thousand][es] = %q want %q", got, "mil")
	}
}

func TestDataFileLoaderErrors(t *testing.T) {
	t.Parallel()

	t.Run("no paths", func(t *testing.T) {
		t.Parallel()

		if _, err := NewDataFileLoader().Load(); err == nil {
			t.Fatal("expected error for empty loader")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadCurrencyData(filepath.Join("testdata", "missing.json"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Fatalf("expected os.ErrNotExist, got %v", err)
		}
	})

	tests := []struct {
		name string
		file string
		want string
	}{
		{name: "unsupported extension", file: "plain.txt", want: "unsupported extension"},
		{name: "invalid currency code", file: "invalid_code.yaml", want: "invalid currency code"},
		{name: "negative decimal places", file: "negative_places.json", want: "negative decimal places"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadCurrencyData(filepath.Join("testdata", tc.file))
			if err == nil {
				t.Fatalf("LoadCurrencyData(%s): expected error", tc.file)
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("LoadCurrencyData(%s) error = %q want substring %q", tc.file, err, tc.want)
			}
		})
	}
}

func TestCurrencyDataMerge(t *testing.T) {
	t.Parallel()

	data, err := LoadCurrencyData(filepath.Join("testdata", "currencies.json"))
	if err != nil {
		t.Fatalf("LoadCurrencyData: %v", err)
	}

	registry, lexicon, err := data.Merge(nil, nil)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}

	if !registry.IsSupported("VEF") {
		t.Fatal("merged registry missing VEF")
	}
	// built-in entries survive the merge
	if !registry.IsSupported("USD") {
		t.Fatal("merged registry missing USD")
	}
	if got := lexicon.Word(ConceptNegative, "es"); got != "menos" {
		t.Fatalf("Word(negative, es) = %q want %q", got, "menos")
	}
	// the default tables are untouched
	if DefaultRegistry().IsSupported("VEF") {
		t.Fatal("default registry gained VEF")
	}
}

func TestWithDataFile(t *testing.T) {
	t.Parallel()

	formatter := newTestFormatter(t, WithDataFile(filepath.Join("testdata", "currencies.json")))

	tests := []struct {
		amount string
		want   string
	}{
		{amount: "1500.50", want: "1 mil 500 bolívares 50 centimos"},
		{amount: "-2000000", want: "menos 2 millones bolívares"},
	}

	for _, tc := range tests {
		got, err := formatter.Detailed(decimal.RequireFromString(tc.amount), "VEF", "es")
		if err != nil {
			t.Fatalf("Detailed(%s): %v", tc.amount, err)
		}
		if got != tc.want {
			t.Fatalf("Detailed(%s) = %q want %q", tc.amount, got, tc.want)
		}
	}

	// built-in currencies keep working
	got, err := formatter.Detailed(decimal.RequireFromString("5"), "USD", "en")
	if err != nil {
		t.Fatalf("Detailed(USD): %v", err)
	}
	if want := "5 dollars"; got != want {
		t.Fatalf("Detailed(USD) = %q want %q", got, want)
	}
}

func TestWithDataFileOverridesBuiltin(t *testing.T) {
	t.Parallel()

	formatter := newTestFormatter(t, WithDataFile(filepath.Join("testdata", "overrides.yaml")))

	info, ok := formatter.Registry().Lookup("AZN")
	if !ok {
		t.Fatal("Lookup(AZN): not found")
	}
	if info.Symbol != "man." {
		t.Fatalf("Symbol = %q want %q", info.Symbol, "man.")
	}

	got, err := formatter.Standard(decimal.RequireFromString("5"), "AZN", "az")
	if err != nil {
		t.Fatalf("Standard: %v", err)
	}
	if !strings.HasSuffix(got, " man.") {
		t.Fatalf("Standard = %q want %q suffix", got, " man.")
	}
}

func TestWithDataSource(t *testing.T) {
	t.Parallel()

	src := DataSourceFunc(func() (*CurrencyData, error) {
		return &CurrencyData{
			Words: map[string]map[string]string{
				ConceptNegative: {"en": "minus"},
			},
		}, nil
	})

	formatter := newTestFormatter(t, WithDataSource(src))

	got, err := formatter.Detailed(decimal.RequireFromString("-1"), "USD", "en")
	if err != nil {
		t.Fatalf("Detailed: %v", err)
	}
	if want := "minus 1 dollars"; got != want {
		t.Fatalf("Detailed = %q want %q", got, want)
	}
}

func TestWithDataSourceError(t *testing.T) {
	t.Parallel()

	src := DataSourceFunc(func() (*CurrencyData, error) {
		return nil, errors.New("boom")
	})

	if _, err := New(WithDataSource(src)); err == nil {
		t.Fatal("expected error from failing source")
	}
}
