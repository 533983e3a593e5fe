// Package sysmon samples host-wide CPU and memory usage for the status
// surfaces and keeps the short usage trails the dashboard sparklines draw.
package sysmon

import (
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats is one host-wide usage reading. Both fields are percentages in
// the 0..100 range.
type Stats struct {
	CPUPercent float64
	MemPercent float64
}

// Sample reads current host CPU and memory usage. The CPU figure is the
// delta since the previous call (gopsutil interval 0), so the very first
// call can report zero. Probe failures leave the affected field at zero
// instead of surfacing an error.
func Sample() Stats {
	var s Stats
	if pcts, err := cpu.Percent(0, false); err == nil && len(pcts) > 0 {
		s.CPUPercent = pcts[0]
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		s.MemPercent = vm.UsedPercent
	}
	return s
}

// History keeps a bounded trail of recent samples for sparkline rendering.
// The zero value is not usable; create one with NewHistory.
type History struct {
	capacity int
	stats    []Stats
}

// NewHistory creates a history holding at most capacity samples.
// Capacities below 1 are raised to 1.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{capacity: capacity}
}

// Push appends a sample, evicting the oldest once the capacity is reached.
func (h *History) Push(s Stats) {
	h.stats = append(h.stats, s)
	if len(h.stats) > h.capacity {
		h.stats = h.stats[len(h.stats)-h.capacity:]
	}
}

// Len returns the number of retained samples.
func (h *History) Len() int { return len(h.stats) }

// CPU returns the retained CPU percentages, oldest first.
func (h *History) CPU() []float64 {
	out := make([]float64, len(h.stats))
	for i, s := range h.stats {
		out[i] = s.CPUPercent
	}
	return out
}

// Mem returns the retained memory percentages, oldest first.
func (h *History) Mem() []float64 {
	out := make([]float64, len(h.stats))
	for i, s := range h.stats {
		out[i] = s.MemPercent
	}
	return out
}
