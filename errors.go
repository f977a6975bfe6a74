package moneyfmt

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidFormatArgument indicates that a formatting call received a
// currency code or language tag it cannot resolve.
var ErrInvalidFormatArgument = errors.New("moneyfmt: invalid format argument")

// FormatArgumentError carries the offending values behind
// ErrInvalidFormatArgument. Formatting either succeeds completely or fails
// with this error; no partial output is returned.
type FormatArgumentError struct {
	Currency string
	Language string
	Reason   string
}

func (e *FormatArgumentError) Error() string {
	parts := make([]string, 0, 3)
	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}
	if e.Currency != "" {
		parts = append(parts, "currency "+strconv.Quote(e.Currency))
	}
	if e.Language != "" {
		parts = append(parts, "language "+strconv.Quote(e.Language))
	}
	if len(parts) == 0 {
		return ErrInvalidFormatArgument.Error()
	}
	return ErrInvalidFormatArgument.Error() + ": " + strings.Join(parts, ", ")
}

// Unwrap lets errors.Is match ErrInvalidFormatArgument.
func (e *FormatArgumentError) Unwrap() error {
	return ErrInvalidFormatArgument
}
