// Package metrics provides process-local measurements for the dashboard:
// runtime samples and per-evaluation indicators.
package metrics

import "runtime"

// RuntimeSnapshot is one reading of the Go runtime: heap occupancy, garbage
// collector activity and scheduler load.
type RuntimeSnapshot struct {
	HeapAlloc    uint64 // live heap bytes
	HeapSys      uint64 // heap address space reserved from the OS
	HeapObjects  uint64 // live objects on the heap
	NumGC        uint32 // completed GC cycles since process start
	PauseTotalNs uint64 // cumulative stop-the-world pause
	Goroutines   int    // goroutines alive at sampling time
}

// RuntimeSampler produces RuntimeSnapshots for the dashboard's metrics panel.
//
// ReadMemStats stops the world briefly, so callers sample on a coarse tick
// rather than once per frame.
type RuntimeSampler struct{}

// NewRuntimeSampler creates a sampler.
func NewRuntimeSampler() *RuntimeSampler {
	return &RuntimeSampler{}
}

// Sample reads the runtime counters once.
func (s *RuntimeSampler) Sample() RuntimeSnapshot {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return RuntimeSnapshot{
		HeapAlloc:    m.HeapAlloc,
		HeapSys:      m.HeapSys,
		HeapObjects:  m.HeapObjects,
		NumGC:        m.NumGC,
		PauseTotalNs: m.PauseTotalNs,
		Goroutines:   runtime.NumGoroutine(),
	}
}
