// Package format renders sequence values, durations, and bar glyphs as
// plain strings. Everything here is presentation-neutral: color and layout
// belong to the ui and tui packages.
package format

import (
	"fmt"
	"strings"

	"github.com/agbru/fibspiral/internal/fib"
)

// Result renders a single term as "F(10) = 55".
func Result(t fib.Term) string {
	return fmt.Sprintf("F(%d) = %d", t.Index, t.Value)
}

// Sequence renders every term in index order, comma separated:
// "F(0) = 0, F(1) = 1, F(2) = 1, ...".
func Sequence(seq fib.Sequence) string {
	parts := make([]string, len(seq))
	for i, t := range seq {
		parts[i] = Result(t)
	}
	return strings.Join(parts, ", ")
}
