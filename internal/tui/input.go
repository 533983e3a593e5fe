package tui

import (
	"fmt"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/fibspiral/internal/validation"
)

// InputModel is the always-active index field. It accepts only digits, so
// letter keys remain free for the global bindings.
type InputModel struct {
	text   string
	cursor int
	width  int
}

// NewInputModel creates an empty input field.
func NewInputModel() InputModel {
	return InputModel{}
}

// SetWidth updates the available width.
func (in *InputModel) SetWidth(w int) {
	in.width = w
}

// Value returns the current text.
func (in InputModel) Value() string {
	return in.text
}

// Reset clears the field.
func (in *InputModel) Reset() {
	in.text = ""
	in.cursor = 0
}

// HandleKey applies an editing key to the field. Keys that are not editing
// keys leave the field untouched.
func (in *InputModel) HandleKey(msg tea.KeyMsg) {
	switch msg.Type {
	case tea.KeyBackspace:
		if len(in.text) > 0 && in.cursor > 0 {
			in.text = in.text[:in.cursor-1] + in.text[in.cursor:]
			in.cursor--
		}
	case tea.KeyDelete:
		if in.cursor < len(in.text) {
			in.text = in.text[:in.cursor] + in.text[in.cursor+1:]
		}
	case tea.KeyLeft:
		if in.cursor > 0 {
			in.cursor--
		}
	case tea.KeyRight:
		if in.cursor < len(in.text) {
			in.cursor++
		}
	case tea.KeyHome:
		in.cursor = 0
	case tea.KeyEnd:
		in.cursor = len(in.text)
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if unicode.IsDigit(r) {
				in.text = in.text[:in.cursor] + string(r) + in.text[in.cursor:]
				in.cursor++
			}
		}
	}
}

// View renders the input bar with a pipe cursor and the evaluation status.
// status is rendered to the right of the field; pass "" for none.
func (in InputModel) View(status string) string {
	// Pipe cursor for broad terminal compatibility.
	display := in.text
	if in.cursor >= len(display) {
		display += "|"
	} else {
		display = display[:in.cursor] + "|" + display[in.cursor:]
	}
	if in.text == "" {
		display = placeholderStyle.Render(fmt.Sprintf("0..%d|", validation.MaxN))
	}

	label := lipgloss.NewStyle().PaddingLeft(1).Render("n:")
	box := inputBoxStyle.Width(12).Render(display)
	field := lipgloss.JoinHorizontal(lipgloss.Center, label, " ", box)

	if status == "" {
		return field
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, field, "  ", status)
}
