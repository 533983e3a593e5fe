// Package chart turns a Fibonacci sequence into integer bar lengths for
// fixed-width chart rendering. Scaling is pure arithmetic; drawing the bars
// is left to the presentation surfaces.
package chart

import (
	"math"

	"github.com/agbru/fibspiral/internal/fib"
)

// Bar is one chart row: the term it represents and its scaled length.
type Bar struct {
	Index  uint64 `json:"index"`
	Raw    uint64 `json:"raw"`
	Scaled int    `json:"scaled"`
}

// BarSet holds one Bar per sequence term, in index order.
type BarSet []Bar

// Scale maps each term of seq to a bar length in [0, maxBar].
//
// The largest raw value is assigned exactly maxBar, and every term tying for
// the maximum gets the same treatment; remaining values scale proportionally
// with half-away-from-zero rounding. A sequence whose maximum is zero, or a
// non-positive maxBar, yields all-zero bars. The input sequence is never
// mutated.
func Scale(seq fib.Sequence, maxBar int) BarSet {
	bars := make(BarSet, len(seq))

	var max uint64
	for _, t := range seq {
		if t.Value > max {
			max = t.Value
		}
	}

	for i, t := range seq {
		bars[i] = Bar{Index: t.Index, Raw: t.Value}
		switch {
		case max == 0 || maxBar <= 0:
			// nothing to scale against
		case t.Value == max:
			// assigned directly so the maximum never suffers float error
			bars[i].Scaled = maxBar
		default:
			ratio := float64(t.Value) / float64(max)
			bars[i].Scaled = int(math.Round(ratio * float64(maxBar)))
		}
	}
	return bars
}

// MaxScaled returns the largest scaled length in the set, 0 when empty.
func (b BarSet) MaxScaled() int {
	var max int
	for _, bar := range b {
		if bar.Scaled > max {
			max = bar.Scaled
		}
	}
	return max
}
