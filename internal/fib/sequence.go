// Package fib computes Fibonacci sequences over uint64 values.
//
// The engine is deliberately small: a single iterative kernel produces the
// terms F(0)..F(n) in ascending index order, and a handful of pure helpers
// derive quantities from the result (golden-ratio approximation, term sum,
// membership test). All inputs reaching Compute have already been validated,
// so the only runtime failure mode is the uint64 ceiling at F(93).
package fib

import (
	"context"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"

	apperrors "github.com/agbru/fibspiral/internal/errors"
)

// Prometheus metrics for sequence computations.
var (
	computationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fibspiral_sequence_computations_total",
			Help: "Total number of Fibonacci sequence computations, by status.",
		},
		[]string{"status"},
	)
	computationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fibspiral_sequence_duration_seconds",
			Help:    "Duration of Fibonacci sequence computations in seconds.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		},
	)
)

// ErrIndexOverflow is the cause carried by the CalculationError returned when
// a requested index exceeds MaxUint64Index.
var ErrIndexOverflow = fmt.Errorf("index exceeds F(%d), the largest Fibonacci number representable in a uint64", MaxUint64Index)

// Term is a single element of the sequence: its index and its value.
type Term struct {
	Index uint64 `json:"index"`
	Value uint64 `json:"value"`
}

// Sequence holds the terms F(0)..F(n) in ascending index order.
type Sequence []Term

// Last returns the final term of the sequence. It panics on an empty
// sequence; Compute never returns one.
func (s Sequence) Last() Term {
	return s[len(s)-1]
}

// Values returns just the term values, in index order.
func (s Sequence) Values() []uint64 {
	vs := make([]uint64, len(s))
	for i, t := range s {
		vs[i] = t.Value
	}
	return vs
}

// Compute returns the sequence F(0)..F(n), containing n+1 terms.
//
// Parameters:
//   - ctx: controls cancellation; a canceled context aborts before work starts.
//   - n: the final index to compute, at most MaxUint64Index.
//
// Returns:
//   - Sequence: the computed terms in ascending index order.
//   - error: a CalculationError when n exceeds the uint64 ceiling, or the
//     context error when ctx is already done.
func Compute(ctx context.Context, n uint64) (seq Sequence, err error) {
	tracer := otel.Tracer("fibspiral")
	ctx, span := tracer.Start(ctx, "fib.Compute")
	defer span.End()

	start := time.Now()
	defer func() {
		duration := time.Since(start).Seconds()
		status := "success"
		if err != nil {
			status = "error"
		}
		computationsTotal.WithLabelValues(status).Inc()
		computationDuration.Observe(duration)

		log.Debug().
			Uint64("n", n).
			Float64("duration_seconds", duration).
			Str("status", status).
			Msg("sequence computed")
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}
	if n > MaxUint64Index {
		return nil, apperrors.NewCalculationError(ErrIndexOverflow)
	}

	seq = make(Sequence, 0, n+1)
	var a, b uint64 = 0, 1
	for i := uint64(0); i <= n; i++ {
		seq = append(seq, Term{Index: i, Value: a})
		a, b = b, a+b
	}
	return seq, nil
}
