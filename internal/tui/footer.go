package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// footerHint is one key legend entry.
type footerHint struct {
	key  string
	desc string
}

var footerHints = []footerHint{
	{"enter", "evaluate"},
	{"r", "reset"},
	{"g", "grid"},
	{"m", "metrics"},
	{"?", "help"},
	{"q", "quit"},
}

// FooterModel shows the key legend. A pending notice replaces it until
// cleared by the next evaluation or reset.
type FooterModel struct {
	width     int
	notice    string
	noticeErr bool
}

// SetWidth updates the footer width.
func (f *FooterModel) SetWidth(w int) {
	f.width = w
}

// SetNotice displays an out-of-band status line in place of the key legend.
func (f *FooterModel) SetNotice(text string, isError bool) {
	f.notice = text
	f.noticeErr = isError
}

// Clear removes any pending notice.
func (f *FooterModel) Clear() {
	f.notice = ""
	f.noticeErr = false
}

// View renders the footer line.
func (f FooterModel) View() string {
	var line string
	switch {
	case f.notice != "" && f.noticeErr:
		line = statusErrorStyle.Render("✗ " + f.notice)
	case f.notice != "":
		line = statusOKStyle.Render(f.notice)
	default:
		parts := make([]string, 0, len(footerHints))
		for _, h := range footerHints {
			parts = append(parts, footerKeyStyle.Render(h.key)+" "+footerDescStyle.Render(h.desc))
		}
		line = strings.Join(parts, dimStyle.Render(" • "))
	}
	if f.width > 0 && lipgloss.Width(line) > f.width-1 {
		line = lipgloss.NewStyle().MaxWidth(f.width - 1).Render(line)
	}
	return " " + line
}
