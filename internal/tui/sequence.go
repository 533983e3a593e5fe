package tui

import (
	"fmt"
	"strings"

	"github.com/agbru/fibspiral/internal/fib"
	"github.com/agbru/fibspiral/internal/format"
)

// SequenceModel lists every term of the evaluated sequence in a scrollable
// viewport. Scrolling clamps at both ends.
type SequenceModel struct {
	seq    fib.Sequence
	offset int
	width  int
	height int
}

// SetSize updates dimensions and re-clamps the scroll offset.
func (s *SequenceModel) SetSize(w, h int) {
	s.width = w
	s.height = h
	s.clampOffset()
}

// SetSequence replaces the listed terms and scrolls to the end so the
// newest term is visible.
func (s *SequenceModel) SetSequence(seq fib.Sequence) {
	s.seq = seq
	s.offset = len(seq) - s.visibleLines()
	s.clampOffset()
}

// Reset clears the list.
func (s *SequenceModel) Reset() {
	s.seq = nil
	s.offset = 0
}

// ScrollUp moves the viewport toward F(0).
func (s *SequenceModel) ScrollUp(lines int) {
	s.offset -= lines
	s.clampOffset()
}

// ScrollDown moves the viewport toward the last term.
func (s *SequenceModel) ScrollDown(lines int) {
	s.offset += lines
	s.clampOffset()
}

// PageSize reports how many lines one page scroll covers.
func (s SequenceModel) PageSize() int {
	return s.visibleLines()
}

func (s *SequenceModel) clampOffset() {
	max := len(s.seq) - s.visibleLines()
	if s.offset > max {
		s.offset = max
	}
	if s.offset < 0 {
		s.offset = 0
	}
}

// visibleLines is the term capacity of the viewport after the border and
// title rows.
func (s SequenceModel) visibleLines() int {
	v := s.height - 3
	if v < 1 {
		v = 1
	}
	return v
}

// View renders the sequence panel.
func (s SequenceModel) View() string {
	var rows []string
	title := "Sequence"
	if len(s.seq) > 0 {
		title = fmt.Sprintf("Sequence (%d terms)", len(s.seq))
	}
	rows = append(rows, panelTitleStyle.Render(title))

	if len(s.seq) == 0 {
		rows = append(rows, dimStyle.Render("no result yet"))
	} else {
		end := s.offset + s.visibleLines()
		if end > len(s.seq) {
			end = len(s.seq)
		}
		for _, t := range s.seq[s.offset:end] {
			idx := seqIndexStyle.Render(fmt.Sprintf("%-7s", fmt.Sprintf("F(%d)", t.Index)))
			val := seqValueStyle.Render(format.FormatNumber(t.Value))
			rows = append(rows, idx+" "+val)
		}
	}

	return panelStyle.
		Width(s.width - 2).
		Height(s.height - 2).
		Render(strings.Join(rows, "\n"))
}
