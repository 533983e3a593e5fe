package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibspiral/internal/format"
)

// HeaderModel renders the top bar: title, version, session clock.
type HeaderModel struct {
	version   string
	startTime time.Time
	width     int
}

// NewHeaderModel builds the top bar and starts its session clock.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{version: version, startTime: time.Now()}
}

// Reset restarts the session clock.
func (h *HeaderModel) Reset() {
	h.startTime = time.Now()
}

// SetWidth records the width the bar must span.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

// View renders the header: title and session clock on the left, the help
// hint pushed to the right edge. The hint is dropped first when the
// terminal is too narrow for both.
func (h HeaderModel) View() string {
	titleText := "Fibonacci Spiral"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}

	left := titleStyle.Render(titleText) +
		versionStyle.Render(" | ") +
		elapsedStyle.Render(fmt.Sprintf("Session: %s", format.FormatExecutionDuration(time.Since(h.startTime))))
	hint := versionStyle.Render("[?] help")

	inner := max(0, h.width-2)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(hint)
	if gap < 0 {
		hint = ""
		gap = max(0, inner-lipgloss.Width(left))
	}

	return headerStyle.Width(h.width).Render(left + strings.Repeat(" ", gap) + hint)
}
