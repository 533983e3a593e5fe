package tui

import (
	"time"

	"github.com/agbru/fibspiral/internal/metrics"
	"github.com/agbru/fibspiral/internal/present"
)

// TickMsg drives the periodic runtime sampling.
type TickMsg time.Time

// RuntimeStatsMsg carries one Go runtime sample into the dashboard.
type RuntimeStatsMsg metrics.RuntimeSnapshot

// SysStatsMsg carries one system-wide CPU and memory sample.
type SysStatsMsg struct {
	CPUPercent float64
	MemPercent float64
}

// EvalMsg carries the outcome of an evaluation started by evaluateCmd.
// Generation guards against results from a session that was reset while
// the command was in flight.
type EvalMsg struct {
	Result     present.Result
	Err        error
	Duration   time.Duration
	Generation uint64
}

// NoticeMsg is an out-of-band status line forwarded from the notice channel
// by whatever supervises the dashboard (for example when the metrics
// listener fails to bind).
type NoticeMsg struct {
	Text    string
	IsError bool
}

// ContextCancelledMsg reports that the parent context was canceled, which
// ends the dashboard regardless of any in-flight evaluation.
type ContextCancelledMsg struct {
	Err error
}
