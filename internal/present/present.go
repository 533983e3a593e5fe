// Package present assembles the evaluation pipeline behind a single entry
// point: validate the input, compute the sequence, scale the chart, derive
// the spiral, and collect the analysis values. The stateful Session wrapper
// adds the keep-last-result semantics every interactive surface shares.
package present

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/agbru/fibspiral/internal/chart"
	"github.com/agbru/fibspiral/internal/fib"
	"github.com/agbru/fibspiral/internal/spiral"
	"github.com/agbru/fibspiral/internal/validation"
)

// Prometheus metrics for evaluations. Status is "success", "invalid" for
// rejected input, or "error" for pipeline failures.
var (
	evaluationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fibspiral_evaluations_total",
			Help: "Total number of input evaluations, by status.",
		},
		[]string{"status"},
	)
	evaluationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fibspiral_evaluation_duration_seconds",
			Help:    "Duration of full evaluation pipelines in seconds.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		},
	)
)

// Analysis carries the derived quantities shown in the math panel.
type Analysis struct {
	GoldenRatio     float64
	Sum             uint64
	LastIsFibonacci bool
}

// Result is one successful evaluation: everything a surface needs to render.
// Spiral is nil when there is no drawable layout (n = 0, or more terms than
// the tiling can hold).
type Result struct {
	N        uint64
	Sequence fib.Sequence
	Bars     chart.BarSet
	Spiral   *spiral.Layout
	Analysis Analysis
}

// Evaluate runs the full pipeline for one line of user input.
//
// Validation failures return the typed apperrors.ValidationError and a zero
// Result; they are expected, user-correctable outcomes, never fatal. The
// chart is scaled to maxBar cells.
func Evaluate(ctx context.Context, input string, maxBar int) (Result, error) {
	tracer := otel.Tracer("fibspiral")
	ctx, span := tracer.Start(ctx, "present.Evaluate")
	defer span.End()

	start := time.Now()
	status := "success"
	defer func() {
		duration := time.Since(start).Seconds()
		span.SetAttributes(attribute.String("status", status))
		evaluationsTotal.WithLabelValues(status).Inc()
		evaluationDuration.Observe(duration)

		log.Debug().
			Str("input", input).
			Float64("duration_seconds", duration).
			Str("status", status).
			Msg("evaluation completed")
	}()

	n, err := validation.Parse(input)
	if err != nil {
		status = "invalid"
		return Result{}, err
	}
	span.SetAttributes(attribute.Int64("n", int64(n)))

	seq, err := fib.Compute(ctx, n)
	if err != nil {
		status = "error"
		return Result{}, err
	}

	res := Result{
		N:        n,
		Sequence: seq,
		Bars:     chart.Scale(seq, maxBar),
		Analysis: Analysis{
			GoldenRatio:     fib.GoldenRatioApprox(seq),
			Sum:             fib.Sum(seq),
			LastIsFibonacci: fib.IsFibonacci(seq.Last().Value),
		},
	}
	if layout, ok := spiral.Derive(seq); ok {
		res.Spiral = &layout
	}
	span.SetAttributes(attribute.Bool("spiral", res.Spiral != nil))

	return res, nil
}

// Session keeps the last successful Result across submissions. The REPL
// owns one and drives it from its single command loop, so Session is not
// safe for concurrent use and does not need to be.
type Session struct {
	maxBar int
	last   Result
	has    bool
}

// NewSession returns a blank session scaling charts to maxBar cells.
func NewSession(maxBar int) *Session {
	return &Session{maxBar: maxBar}
}

// Submit evaluates input. On success the result is stored and returned. On
// failure the stored result stays untouched and is returned alongside the
// error, so callers can keep rendering the previous state.
func (s *Session) Submit(ctx context.Context, input string) (Result, error) {
	res, err := Evaluate(ctx, input, s.maxBar)
	if err != nil {
		return s.last, err
	}
	s.last = res
	s.has = true
	return res, nil
}

// Last returns the most recent successful result, if any.
func (s *Session) Last() (Result, bool) {
	return s.last, s.has
}

// Reset drops all stored state, returning the session to blank.
func (s *Session) Reset() {
	s.last = Result{}
	s.has = false
}
