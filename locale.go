package moneyfmt

import (
	"strings"

	"github.com/cloudfoundry-attic/jibber_jabber"
)

// normalizeLocale normalizes a single locale identifier by replacing
// underscores with hyphens and trimming whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// languageSubtag reduces a locale identifier to its lowercased primary
// language subtag. Script and region subtags are dropped: word lookups key
// on the bare language ("az-Latn-AZ" selects the same words as "az").
func languageSubtag(locale string) (string, error) {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return "", &FormatArgumentError{Language: locale, Reason: "empty language tag"}
	}

	if idx := strings.IndexByte(normalized, '-'); idx >= 0 {
		normalized = normalized[:idx]
	}
	normalized = strings.ToLower(normalized)

	if !isLanguageSubtag(normalized) {
		return "", &FormatArgumentError{Language: locale, Reason: "unresolvable language tag"}
	}
	return normalized, nil
}

// isLanguageSubtag reports whether s looks like an ISO 639 language code
// (2 or 3 ASCII letters, already lowercased).
func isLanguageSubtag(s string) bool {
	if len(s) < 2 || len(s) > 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// detectProcessLanguage returns the host process language, falling back to
// English when the environment gives no usable answer.
func detectProcessLanguage() string {
	lang, err := jibber_jabber.DetectLanguage()
	if err != nil || lang == "" {
		return "en"
	}
	if subtag, err := languageSubtag(lang); err == nil {
		return subtag
	}
	return "en"
}
