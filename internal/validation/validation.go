// Package validation turns raw user text into a sequence index.
//
// All input surfaces (TUI field, REPL line, -n flag) funnel through Parse so
// the acceptance rules stay identical everywhere: trim first, parse as an
// unsigned decimal, then bound-check. Rejections come back as
// apperrors.ValidationError values carrying the offending text; they are
// reported to the user and never treated as fatal.
package validation

import (
	"errors"
	"strconv"
	"strings"

	apperrors "github.com/agbru/fibspiral/internal/errors"
)

// MaxN is the largest sequence index the application accepts.
const MaxN = 40

// FieldN is the field name attached to validation errors for the index input.
const FieldN = "n"

// Parse validates input and returns the sequence index it denotes.
//
// Rules, applied in order:
//   - leading and trailing whitespace is ignored;
//   - text that does not parse as an unsigned decimal integer (empty input,
//     letters, symbols, a leading minus sign) is NotANumber;
//   - a parsed value above MaxN is OutOfRange.
//
// The returned error is always an apperrors.ValidationError; errors.As on it
// yields the kind and the trimmed offending text.
func Parse(input string) (uint64, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return 0, apperrors.NewNotANumber(FieldN, trimmed)
	}

	n, err := strconv.ParseUint(trimmed, 10, 64)
	if err != nil {
		return 0, apperrors.NewNotANumber(FieldN, trimmed)
	}

	if n > MaxN {
		return 0, apperrors.NewOutOfRange(FieldN, trimmed, MaxN)
	}

	return n, nil
}

// Describe returns the user-facing message for a validation failure, or the
// plain error text when err is not a ValidationError. Surfaces render this
// directly next to the input they rejected.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	var ve apperrors.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return err.Error()
}
