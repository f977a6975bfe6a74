package moneyfmt

import (
	"errors"
	"runtime"
	"testing"
)

func TestNormalizeLocale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "az_AZ", want: "az-AZ"},
		{in: " en-US ", want: "en-US"},
		{in: "tr", want: "tr"},
		{in: "", want: ""},
		{in: "  ", want: ""},
	}

	for _, tc := range tests {
		if got := normalizeLocale(tc.in); got != tc.want {
			t.Fatalf("normalizeLocale(%q) = %q want %q", tc.in, got, tc.want)
		}
	}
}

func TestLanguageSubtag(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "az", want: "az"},
		{in: "AZ", want: "az"},
		{in: "az-Latn-AZ", want: "az"},
		{in: "az_AZ", want: "az"},
		{in: " de ", want: "de"},
		{in: "aze", want: "aze"},
		{in: "en-US", want: "en"},
	}

	for _, tc := range tests {
		got, err := languageSubtag(tc.in)
		if err != nil {
			t.Fatalf("languageSubtag(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("languageSubtag(%q) = %q want %q", tc.in, got, tc.want)
		}
	}

	for _, in := range []string{"", "   ", "a", "abcd", "12-34", "en US"} {
		_, err := languageSubtag(in)
		if err == nil {
			t.Fatalf("languageSubtag(%q): expected error", in)
		}
		if !errors.Is(err, ErrInvalidFormatArgument) {
			t.Fatalf("languageSubtag(%q): expected ErrInvalidFormatArgument, got %v", in, err)
		}
		var argErr *FormatArgumentError
		if !errors.As(err, &argErr) {
			t.Fatalf("languageSubtag(%q): expected *FormatArgumentError, got %T", in, err)
		}
		if argErr.Language != in {
			t.Fatalf("languageSubtag(%q): Language = %q want %q", in, argErr.Language, in)
		}
	}
}

func TestDetectProcessLanguage(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("locale detection does not use environment variables on windows")
	}

	tests := []struct {
		name  string
		lcAll string
		lang  string
		want  string
	}{
		{name: "lc_all wins", lcAll: "tr_TR.UTF-8", lang: "de_DE.UTF-8", want: "tr"},
		{name: "lang fallback", lcAll: "", lang: "az_AZ.UTF-8", want: "az"},
		{name: "empty environment", lcAll: "", lang: "", want: "en"},
		{name: "posix locale", lcAll: "C", lang: "", want: "en"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("LC_ALL", tc.lcAll)
			t.Setenv("LANG", tc.lang)

			if got := detectProcessLanguage(); got != tc.want {
				t.Fatalf("detectProcessLanguage() = %q want %q", got, tc.want)
			}
		})
	}
}

func TestDefaultLanguageDetectsOnce(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("locale detection does not use environment variables on windows")
	}

	t.Setenv("LC_ALL", "de_DE.UTF-8")
	t.Setenv("LANG", "")

	formatter, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := formatter.DefaultLanguage(); got != "de" {
		t.Fatalf("DefaultLanguage() = %q want %q", got, "de")
	}

	// the detected language is cached for the formatter's lifetime
	t.Setenv("LC_ALL", "tr_TR.UTF-8")
	if got := formatter.DefaultLanguage(); got != "de" {
		t.Fatalf("DefaultLanguage() after env change = %q want %q", got, "de")
	}
}
