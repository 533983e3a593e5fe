package tui

import (
	"strings"
	"testing"
)

func TestSequenceModel_SetSequence_ScrollsToEnd(t *testing.T) {
	s := SequenceModel{}
	s.SetSize(40, 8) // viewport of 5 terms

	s.SetSequence(computeSequence(t, 20))

	view := s.View()
	if !strings.Contains(view, "F(20)") {
		t.Error("expected the newest term to be visible")
	}
	if strings.Contains(view, "F(0)") {
		t.Error("expected the oldest terms to be scrolled out")
	}
	if !strings.Contains(view, "21 terms") {
		t.Error("expected the term count in the title")
	}
}

func TestSequenceModel_Empty(t *testing.T) {
	s := SequenceModel{}
	s.SetSize(40, 8)

	view := s.View()
	if !strings.Contains(view, "no result yet") {
		t.Error("expected empty-state message")
	}
	if !strings.Contains(view, "Sequence") {
		t.Error("expected panel title")
	}
}

func TestSequenceModel_ScrollClamps(t *testing.T) {
	s := SequenceModel{}
	s.SetSize(40, 8)
	s.SetSequence(computeSequence(t, 20))

	// Scrolling far past the top clamps at F(0).
	s.ScrollUp(1000)
	if s.offset != 0 {
		t.Errorf("expected offset 0 after scrolling to top, got %d", s.offset)
	}
	if !strings.Contains(s.View(), "F(0)") {
		t.Error("expected F(0) visible at the top")
	}

	// Scrolling far past the bottom clamps at the last page.
	s.ScrollDown(1000)
	if !strings.Contains(s.View(), "F(20)") {
		t.Error("expected F(20) visible at the bottom")
	}
}

func TestSequenceModel_PageScroll(t *testing.T) {
	s := SequenceModel{}
	s.SetSize(40, 8)
	s.SetSequence(computeSequence(t, 20))

	bottom := s.offset
	s.ScrollUp(s.PageSize())
	if s.offset != bottom-s.PageSize() {
		t.Errorf("expected offset %d after page up, got %d", bottom-s.PageSize(), s.offset)
	}
}

func TestSequenceModel_ShortSequenceFits(t *testing.T) {
	s := SequenceModel{}
	s.SetSize(40, 12)
	s.SetSequence(computeSequence(t, 3))

	if s.offset != 0 {
		t.Errorf("expected no scrolling for a short sequence, got offset %d", s.offset)
	}
	view := s.View()
	for _, want := range []string{"F(0)", "F(1)", "F(2)", "F(3)"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected %s in view", want)
		}
	}
}

func TestSequenceModel_Reset(t *testing.T) {
	s := SequenceModel{}
	s.SetSize(40, 8)
	s.SetSequence(computeSequence(t, 10))

	s.Reset()

	if s.offset != 0 {
		t.Errorf("expected offset 0 after reset, got %d", s.offset)
	}
	if !strings.Contains(s.View(), "no result yet") {
		t.Error("expected empty-state message after reset")
	}
}
