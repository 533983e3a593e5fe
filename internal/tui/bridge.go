package tui

import (
	"sync/atomic"

	tea "github.com/charmbracelet/bubbletea"
)

// programRef hands outside goroutines a stable handle for delivering
// messages to the running tea.Program. bubbletea copies the Model on every
// Update, so the handle has to live outside the model value itself.
type programRef struct {
	program atomic.Pointer[tea.Program]
}

// SetProgram publishes the running program.
func (r *programRef) SetProgram(p *tea.Program) {
	r.program.Store(p)
}

// Send delivers msg to the program, dropping it when none is set yet.
func (r *programRef) Send(msg tea.Msg) {
	if p := r.program.Load(); p != nil {
		p.Send(msg)
	}
}

// Notice is an out-of-band message for the dashboard, typically produced by
// the process hosting the TUI (a failed metrics listener, a shutdown
// warning).
type Notice struct {
	Text    string
	IsError bool
}

// forwardNotices drains a notice channel into the program as NoticeMsg
// values. It returns when the channel closes.
func forwardNotices(ref *programRef, notices <-chan Notice) {
	for n := range notices {
		ref.Send(NoticeMsg{Text: n.Text, IsError: n.IsError})
	}
}
