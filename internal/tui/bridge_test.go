package tui

import (
	"sync"
	"testing"
)

// A programRef with no program set must swallow sends instead of panicking;
// the notice forwarder can start before the program does.
func TestProgramRef_SendBeforeSetProgram(t *testing.T) {
	var ref programRef
	ref.Send(NoticeMsg{Text: "metrics listener down"})
}

// Send races against itself from the sampler and notice goroutines; the
// race detector is the real assertion here.
func TestProgramRef_ConcurrentSend(t *testing.T) {
	var ref programRef
	var wg sync.WaitGroup
	wg.Add(100)
	for i := 0; i < 100; i++ {
		go func(pct float64) {
			defer wg.Done()
			ref.Send(SysStatsMsg{CPUPercent: pct})
		}(float64(i))
	}
	wg.Wait()
}

func TestForwardNotices_DrainsChannel(t *testing.T) {
	var ref programRef

	ch := make(chan Notice, 3)
	ch <- Notice{Text: "one"}
	ch <- Notice{Text: "two", IsError: true}
	ch <- Notice{Text: "three"}
	close(ch)

	done := make(chan struct{})
	go func() {
		forwardNotices(&ref, ch)
		close(done)
	}()
	<-done
	// forwardNotices must return once the channel closes
}
