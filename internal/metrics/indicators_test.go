package metrics

import (
	"math"
	"testing"
	"time"
)

func TestNewIndicators(t *testing.T) {
	t.Parallel()

	ind := NewIndicators(10, 55, 55.0/34.0, 10, 42*time.Microsecond)

	if ind.N != 10 || ind.Value != 55 {
		t.Errorf("N/Value = %d/%d, want 10/55", ind.N, ind.Value)
	}
	if ind.Bits != 6 {
		t.Errorf("Bits = %d, want 6 (55 is 110111)", ind.Bits)
	}
	if ind.Digits != 2 {
		t.Errorf("Digits = %d, want 2", ind.Digits)
	}
	if ind.IsEven {
		t.Error("IsEven = true for 55")
	}
	want := math.Abs(55.0/34.0 - math.Phi)
	if math.Abs(ind.GoldenError-want) > 1e-12 {
		t.Errorf("GoldenError = %g, want %g", ind.GoldenError, want)
	}
	if ind.Squares != 10 {
		t.Errorf("Squares = %d, want 10", ind.Squares)
	}
	if ind.Duration != 42*time.Microsecond {
		t.Errorf("Duration = %s, want 42µs", ind.Duration)
	}
}

func TestNewIndicators_ZeroValue(t *testing.T) {
	t.Parallel()

	ind := NewIndicators(0, 0, 0, 0, 0)

	if ind.Bits != 0 {
		t.Errorf("Bits = %d for F(0), want 0", ind.Bits)
	}
	if ind.Digits != 1 {
		t.Errorf("Digits = %d for F(0), want 1 (the digit 0)", ind.Digits)
	}
	if !ind.IsEven {
		t.Error("IsEven = false for 0")
	}
	if ind.GoldenError != 0 {
		t.Errorf("GoldenError = %g with no ratio, want 0", ind.GoldenError)
	}
}

func TestNewIndicators_LargeValue(t *testing.T) {
	t.Parallel()

	// F(93), the uint64 ceiling.
	ind := NewIndicators(93, 12200160415121876738, 1.6180339887498949, 0, time.Millisecond)

	if ind.Bits != 64 {
		t.Errorf("Bits = %d, want 64", ind.Bits)
	}
	if ind.Digits != 20 {
		t.Errorf("Digits = %d, want 20", ind.Digits)
	}
	if !ind.IsEven {
		t.Error("IsEven = false, F(93) ends in 8")
	}
	if ind.GoldenError > 1e-9 {
		t.Errorf("GoldenError = %g, want converged below 1e-9", ind.GoldenError)
	}
}

func TestFormatGoldenError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  float64
		want string
	}{
		{0, "n/a"},
		{0.5, "0.5000"},
		{0.0012, "0.0012"},
		{0.0005, "5.0e-04"},
		{3.2e-10, "3.2e-10"},
	}

	for _, tt := range tests {
		if got := FormatGoldenError(tt.err); got != tt.want {
			t.Errorf("FormatGoldenError(%g) = %q, want %q", tt.err, got, tt.want)
		}
	}
}
