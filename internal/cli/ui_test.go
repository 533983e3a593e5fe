package cli

import (
	"io"
	"testing"

	"github.com/briandowns/spinner"
)

func TestSpinnerAdapter(t *testing.T) {
	t.Parallel()
	s := spinner.New(spinner.CharSets[11], SpinnerInterval, spinner.WithWriter(io.Discard))
	adapter := &spinnerAdapter{s: s}

	adapter.UpdateSuffix(" warming up")
	if s.Suffix != " warming up" {
		t.Errorf("Suffix = %q, want %q", s.Suffix, " warming up")
	}

	adapter.Start()
	if !s.Active() {
		t.Error("Start should activate the underlying spinner")
	}

	adapter.Stop()
	if s.Active() {
		t.Error("Stop should deactivate the underlying spinner")
	}
}

func TestNewSpinner(t *testing.T) {
	t.Parallel()
	sp := newSpinner(spinner.WithWriter(io.Discard))
	if sp == nil {
		t.Fatal("newSpinner returned nil")
	}
	if _, ok := sp.(*spinnerAdapter); !ok {
		t.Errorf("newSpinner should return a *spinnerAdapter, got %T", sp)
	}
}
