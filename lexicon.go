package moneyfmt

import "strings"

// Structural concepts the detailed formatter needs words for.
const (
	ConceptNegative = "negative"
	ConceptThousand = "thousand"
	ConceptMillion  = "million"
)

// fallbackLanguage is the second stage of every word lookup.
const fallbackLanguage = "en"

// builtinWords carries the bundled structural vocabulary.
var builtinWords = map[string]map[string]string{
	ConceptNegative: {
		"en": "negative",
		"az": "mənfi",
		"de": "minus",
		"tr": "eksi",
	},
	ConceptThousand: {
		"en": "thousand",
		"az": "min",
		"de": "Tausend",
		"tr": "bin",
	},
	ConceptMillion: {
		"en": "million",
		"az": "milyon",
		"de": "Millionen",
		"tr": "milyon",
	},
}

// defaultMajorUnits is the last-resort major-unit vocabulary for currencies
// whose table entry carries no usable name.
var defaultMajorUnits = map[string]string{
	"USD": "dollars",
	"EUR": "euros",
	"TRY": "lira",
	"AZN": "manat",
	"GBP": "pounds",
	"JPY": "yen",
}

// defaultMinorUnit closes the minor-unit fallback chain.
const defaultMinorUnit = "cents"

// Lexicon maps structural concepts to localized words, read only after
// construction.
type Lexicon struct {
	words map[string]map[string]string
}

// NewLexicon builds an immutable lexicon snapshot. Entries merge over the
// bundled vocabulary, so callers only supply the words they want to add or
// replace.
func NewLexicon(words map[string]map[string]string) *Lexicon {
	return defaultLexicon().With(words)
}

func defaultLexicon() *Lexicon {
	words := make(map[string]map[string]string, len(builtinWords))
	for concept, table := range builtinWords {
		clone := make(map[string]string, len(table))
		for lang, word := range table {
			clone[lang] = word
		}
		words[concept] = clone
	}
	return &Lexicon{words: words}
}

// With returns a new Lexicon with the given words merged over the receiver.
// Language keys are lowercased; empty concepts, languages, or words are
// skipped.
func (l *Lexicon) With(words map[string]map[string]string) *Lexicon {
	base := l.tables()
	merged := make(map[string]map[string]string, len(base)+len(words))
	for concept, table := range base {
		clone := make(map[string]string, len(table))
		for lang, word := range table {
			clone[lang] = word
		}
		merged[concept] = clone
	}

	for concept, table := range words {
		if concept == "" {
			continue
		}
		target := merged[concept]
		if target == nil {
			target = make(map[string]string, len(table))
			merged[concept] = target
		}
		for lang, word := range table {
			lang = strings.ToLower(strings.TrimSpace(lang))
			if lang == "" || word == "" {
				continue
			}
			target[lang] = word
		}
	}

	return &Lexicon{words: merged}
}

// Word resolves the localized word for a structural concept. Lookups are
// total: exact language hit, then "en", then the concept name itself.
func (l *Lexicon) Word(concept, lang string) string {
	return lookupLocalized(l.tables()[concept], lang, concept)
}

func (l *Lexicon) tables() map[string]map[string]string {
	if l == nil {
		return builtinWords
	}
	return l.words
}

// lookupLocalized resolves a localized word with the shared fallback chain:
// exact language hit, then "en", then the supplied default. It never fails;
// every caller ends with a usable string.
func lookupLocalized(table map[string]string, lang, fallback string) string {
	if word, ok := table[lang]; ok && word != "" {
		return word
	}
	if word, ok := table[fallbackLanguage]; ok && word != "" {
		return word
	}
	return fallback
}

// majorUnitDefault derives the final major-unit fallback for a currency
// code: a small hardcoded vocabulary for the common codes, otherwise the
// lowercased code itself.
func majorUnitDefault(code string) string {
	if name, ok := defaultMajorUnits[code]; ok {
		return name
	}
	return strings.ToLower(code)
}
