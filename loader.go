package moneyfmt

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DataSource supplies currency data used to seed formatter tables.
type DataSource interface {
	Load() (*CurrencyData, error)
}

// DataSourceFunc adapters allow bare functions to implement DataSource.
type DataSourceFunc func() (*CurrencyData, error)

// Load implements DataSource for DataSourceFunc.
func (fn DataSourceFunc) Load() (*CurrencyData, error) {
	return fn()
}

// CurrencyData is the on-disk schema for currency and lexicon overrides.
// Both sections are optional. Currency entries replace whole currencies;
// words merge per language.
type CurrencyData struct {
	Currencies map[string]CurrencyEntry     `json:"currencies" yaml:"currencies" toml:"currencies"`
	Words      map[string]map[string]string `json:"words" yaml:"words" toml:"words"`
}

// CurrencyEntry mirrors CurrencyInfo with the code kept as the map key.
type CurrencyEntry struct {
	Symbol        string            `json:"symbol" yaml:"symbol" toml:"symbol"`
	DecimalPlaces int               `json:"decimal_places" yaml:"decimal_places" toml:"decimal_places"`
	MajorUnits    map[string]string `json:"major_units" yaml:"major_units" toml:"major_units"`
	MinorUnits    map[string]string `json:"minor_units" yaml:"minor_units" toml:"minor_units"`
	Countries     []string          `json:"countries" yaml:"countries" toml:"countries"`
}

// DataFileLoader reads currency data files, later files winning per entry.
type DataFileLoader struct {
	paths []string
}

var _ DataSource = &DataFileLoader{}

// NewDataFileLoader builds a loader over the given file paths. The format
// is chosen by extension: .json, .yaml, .yml or .toml.
func NewDataFileLoader(paths ...string) *DataFileLoader {
	return &DataFileLoader{paths: append([]string(nil), paths...)}
}

// Load reads and merges every configured file.
func (l *DataFileLoader) Load() (*CurrencyData, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("moneyfmt: no loader paths configured")
	}

	merged := &CurrencyData{}
	for _, path := range l.paths {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("moneyfmt: read %s: %w", path, err)
		}

		data, err := decodeCurrencyData(path, raw)
		if err != nil {
			return nil, fmt.Errorf("moneyfmt: decode %s: %w", path, err)
		}
		merged.merge(data)
	}

	return merged, nil
}

// LoadCurrencyData reads a single currency data file.
func LoadCurrencyData(path string) (*CurrencyData, error) {
	return NewDataFileLoader(path).Load()
}

func decodeCurrencyData(path string, raw []byte) (*CurrencyData, error) {
	ext := strings.ToLower(filepath.Ext(path))
	data := &CurrencyData{}

	switch ext {
	case ".json":
		if err := json.Unmarshal(raw, data); err != nil {
			return nil, err
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, data); err != nil {
			return nil, fmt.Errorf("yaml parse error: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(raw, data); err != nil {
			return nil, fmt.Errorf("toml parse error: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}

	if err := validateCurrencyData(data); err != nil {
		return nil, err
	}
	return data, nil
}

func validateCurrencyData(data *CurrencyData) error {
	for code, entry := range data.Currencies {
		normalized := normalizeCurrencyCode(code)
		if !validCurrencyCode(normalized) {
			return fmt.Errorf("invalid currency code %q", code)
		}
		if entry.DecimalPlaces < 0 {
			return fmt.Errorf("currency %s: negative decimal places", normalized)
		}
	}
	for concept, table := range data.Words {
		if strings.TrimSpace(concept) == "" {
			return errors.New("empty word concept")
		}
		for lang := range table {
			if strings.TrimSpace(lang) == "" {
				return fmt.Errorf("word %s: empty language tag", concept)
			}
		}
	}
	return nil
}

func (d *CurrencyData) merge(src *CurrencyData) {
	if len(src.Currencies) > 0 {
		if d.Currencies == nil {
			d.Currencies = make(map[string]CurrencyEntry, len(src.Currencies))
		}
		for code, entry := range src.Currencies {
			d.Currencies[normalizeCurrencyCode(code)] = entry
		}
	}

	if len(src.Words) > 0 {
		if d.Words == nil {
			d.Words = make(map[string]map[string]string, len(src.Words))
		}
		for concept, table := range src.Words {
			target := d.Words[concept]
			if target == nil {
				target = make(map[string]string, len(table))
				d.Words[concept] = target
			}
			for lang, word := range table {
				target[strings.ToLower(strings.TrimSpace(lang))] = word
			}
		}
	}
}

// Merge applies the loaded data over base tables, returning new immutable
// snapshots. A nil base starts from the built-in defaults.
func (d *CurrencyData) Merge(base *Registry, lexicon *Lexicon) (*Registry, *Lexicon, error) {
	if base == nil {
		base = DefaultRegistry()
	}
	if lexicon == nil {
		lexicon = defaultLexicon()
	}

	infos := base.Currencies()
	index := make(map[string]int, len(infos))
	for i, info := range infos {
		index[info.Code] = i
	}

	for code, entry := range d.Currencies {
		code = normalizeCurrencyCode(code)
		info := entry.currencyInfo(code)
		if i, ok := index[code]; ok {
			infos[i] = info
		} else {
			infos = append(infos, info)
		}
	}

	registry, err := NewRegistry(infos...)
	if err != nil {
		return nil, nil, err
	}

	return registry, lexicon.With(d.Words), nil
}

func (e CurrencyEntry) currencyInfo(code string) CurrencyInfo {
	info := CurrencyInfo{
		Code:          code,
		Symbol:        e.Symbol,
		DecimalPlaces: e.DecimalPlaces,
		Countries:     append([]string(nil), e.Countries...),
	}

	if len(e.MajorUnits) > 0 {
		info.MajorUnitNames = make(map[string]string, len(e.MajorUnits))
		for lang, name := range e.MajorUnits {
			info.MajorUnitNames[strings.ToLower(strings.TrimSpace(lang))] = name
		}
	}
	if len(e.MinorUnits) > 0 {
		info.MinorUnitNames = make(map[string]string, len(e.MinorUnits))
		for lang, name := range e.MinorUnits {
			info.MinorUnitNames[strings.ToLower(strings.TrimSpace(lang))] = name
		}
	}

	return info
}
