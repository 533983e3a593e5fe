package sysmon

import "testing"

// TestSample_Ranges checks that live readings stay inside the percentage
// domain. Memory in particular is never zero on a running host.
func TestSample_Ranges(t *testing.T) {
	s := Sample()
	for _, c := range []struct {
		name string
		v    float64
	}{
		{"CPUPercent", s.CPUPercent},
		{"MemPercent", s.MemPercent},
	} {
		if c.v < 0 || c.v > 100 {
			t.Errorf("%s = %f, outside 0..100", c.name, c.v)
		}
	}
	if s.MemPercent == 0 {
		t.Error("MemPercent = 0; a running host always has memory in use")
	}
}

func TestHistory_PushEvictsOldest(t *testing.T) {
	h := NewHistory(3)

	for i := 1; i <= 5; i++ {
		h.Push(Stats{CPUPercent: float64(i), MemPercent: float64(i) * 10})
	}

	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}

	cpu := h.CPU()
	want := []float64{3, 4, 5}
	for i, v := range want {
		if cpu[i] != v {
			t.Errorf("CPU()[%d] = %f, want %f", i, cpu[i], v)
		}
	}

	mem := h.Mem()
	if mem[0] != 30 || mem[2] != 50 {
		t.Errorf("Mem() = %v, want [30 40 50]", mem)
	}
}

func TestHistory_MinimumCapacity(t *testing.T) {
	h := NewHistory(0)
	h.Push(Stats{CPUPercent: 1})
	h.Push(Stats{CPUPercent: 2})

	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want capacity clamped to 1", h.Len())
	}
	if h.CPU()[0] != 2 {
		t.Errorf("CPU()[0] = %f, want the newest sample", h.CPU()[0])
	}
}
