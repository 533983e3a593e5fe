package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
)

// Every binding carries its exact keys and a help entry; drift here breaks
// both dispatch and the help overlay.
func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	checks := []struct {
		name string
		b    key.Binding
		keys string
	}{
		{"Quit", km.Quit, "q ctrl+c"},
		{"Evaluate", km.Evaluate, "enter"},
		{"Reset", km.Reset, "r"},
		{"Grid", km.Grid, "g"},
		{"Metrics", km.Metrics, "m"},
		{"Help", km.Help, "?"},
		{"Up", km.Up, "up k"},
		{"Down", km.Down, "down j"},
		{"PageUp", km.PageUp, "pgup"},
		{"PageDown", km.PageDown, "pgdown"},
	}
	for _, c := range checks {
		if !c.b.Enabled() {
			t.Errorf("%s binding is disabled", c.name)
		}
		if got := strings.Join(c.b.Keys(), " "); got != c.keys {
			t.Errorf("%s binding has keys %q, want %q", c.name, got, c.keys)
		}
		if c.b.Help().Desc == "" {
			t.Errorf("%s binding has no help text", c.name)
		}
	}
}

func TestDefaultKeyMap_NoDigitKeys(t *testing.T) {
	km := DefaultKeyMap()

	// Digits must stay free for the index editor.
	all := [][]string{
		km.Quit.Keys(), km.Evaluate.Keys(), km.Reset.Keys(),
		km.Grid.Keys(), km.Metrics.Keys(), km.Help.Keys(),
		km.Up.Keys(), km.Down.Keys(), km.PageUp.Keys(), km.PageDown.Keys(),
	}
	for _, keys := range all {
		for _, k := range keys {
			if len(k) == 1 && k[0] >= '0' && k[0] <= '9' {
				t.Errorf("binding key %q collides with digit input", k)
			}
		}
	}
}
