package fib

import "math"

// ─────────────────────────────────────────────────────────────────────────────
// Sequence Bounds
// ─────────────────────────────────────────────────────────────────────────────

const (
	// MaxUint64Index is the largest index whose Fibonacci number fits in a
	// uint64: F(93) = 12200160415121876738, while F(94) exceeds 2^64. The
	// engine refuses indices beyond this rather than silently wrapping.
	MaxUint64Index = 93

	// MaxSummableIndex is the largest index for which the sum of all terms
	// still fits in a uint64. The sum identity gives
	// F(0)+...+F(n) = F(n+2)-1, so the window closes two indices before
	// MaxUint64Index.
	MaxSummableIndex = MaxUint64Index - 2
)

// ─────────────────────────────────────────────────────────────────────────────
// Golden Ratio
// ─────────────────────────────────────────────────────────────────────────────

// Phi is the golden ratio (1+√5)/2. The quotient of consecutive terms
// converges to this value; the analysis panel shows both side by side.
const Phi = math.Phi
