// This file contains the per-evaluation indicators shown in the dashboard's
// metrics panel after a result lands.

package metrics

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"time"
)

// Indicators summarizes a completed evaluation for display.
type Indicators struct {
	// N is the evaluated index.
	N uint64
	// Value is F(N).
	Value uint64
	// Bits is the bit length of F(N); zero for F(0).
	Bits int
	// Digits is the decimal digit count of F(N).
	Digits int
	// IsEven reports the parity of F(N).
	IsEven bool
	// GoldenError is |F(N)/F(N-1) - phi|, zero when no ratio exists.
	GoldenError float64
	// Squares is the number of spiral squares drawn, zero when the
	// spiral is out of range.
	Squares int
	// Duration is the wall time of the evaluation.
	Duration time.Duration
}

// NewIndicators derives the display indicators from an evaluation.
//
// Parameters:
//   - n: The evaluated index.
//   - value: F(n).
//   - goldenApprox: The ratio F(n)/F(n-1), or 0 when undefined.
//   - squares: Spiral squares drawn, 0 when no spiral was derived.
//   - duration: Wall time of the evaluation.
func NewIndicators(n, value uint64, goldenApprox float64, squares int, duration time.Duration) Indicators {
	ind := Indicators{
		N:        n,
		Value:    value,
		Bits:     bits.Len64(value),
		Digits:   len(strconv.FormatUint(value, 10)),
		IsEven:   value%2 == 0,
		Squares:  squares,
		Duration: duration,
	}
	if goldenApprox > 0 {
		ind.GoldenError = math.Abs(goldenApprox - math.Phi)
	}
	return ind
}

// FormatGoldenError renders the golden ratio error compactly, switching to
// scientific notation once the ratio has converged past display precision.
func FormatGoldenError(err float64) string {
	switch {
	case err == 0:
		return "n/a"
	case err >= 0.001:
		return fmt.Sprintf("%.4f", err)
	default:
		return fmt.Sprintf("%.1e", err)
	}
}
