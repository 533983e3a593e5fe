package ui

import (
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// Text attributes shared by every colored theme.
const (
	ansiBold      = "\033[1m"
	ansiUnderline = "\033[4m"
	ansiReset     = "\033[0m"
)

// Theme is a set of raw ANSI escape codes for the line-oriented surfaces:
// one-shot output, the REPL, and usage text. The dashboard styles itself
// from TUITheme instead.
type Theme struct {
	Name string

	Primary   string // headings, flag names, result values
	Secondary string // de-emphasized detail
	Success   string
	Warning   string
	Error     string
	Info      string

	Bold      string
	Underline string
	Reset     string
}

var (
	// GoldenTheme is the default warm palette, echoing the golden spiral
	// the application draws.
	GoldenTheme = Theme{
		Name:      "golden",
		Primary:   "\033[38;5;220m", // gold
		Secondary: "\033[38;5;245m", // grey
		Success:   "\033[38;5;82m",  // bright green
		Warning:   "\033[38;5;214m", // light orange
		Error:     "\033[38;5;196m", // red
		Info:      "\033[38;5;117m", // sky blue
		Bold:      ansiBold,
		Underline: ansiUnderline,
		Reset:     ansiReset,
	}

	// LightTheme swaps in darker tones for light terminal backgrounds.
	LightTheme = Theme{
		Name:      "light",
		Primary:   "\033[38;5;136m", // dark gold
		Secondary: "\033[38;5;240m", // dark grey
		Success:   "\033[38;5;28m",  // dark green
		Warning:   "\033[38;5;130m", // orange
		Error:     "\033[38;5;124m", // dark red
		Info:      "\033[38;5;26m",  // dark blue
		Bold:      ansiBold,
		Underline: ansiUnderline,
		Reset:     ansiReset,
	}

	// NoColorTheme leaves every escape code empty, which renders as plain
	// text. The zero value of each field is already "".
	NoColorTheme = Theme{Name: "none"}

	// currentTheme is read by every Color* helper, and written at startup
	// or by tests, hence the RWMutex.
	currentTheme = GoldenTheme
	themeMutex   sync.RWMutex
)

// TUITheme carries the lipgloss colors for the dashboard panels: the chrome
// colors first, then the status colors.
type TUITheme struct {
	Bg     lipgloss.TerminalColor
	Text   lipgloss.TerminalColor
	Dim    lipgloss.TerminalColor
	Border lipgloss.TerminalColor
	Accent lipgloss.TerminalColor

	Success lipgloss.TerminalColor
	Warning lipgloss.TerminalColor
	Error   lipgloss.TerminalColor
	Info    lipgloss.TerminalColor
}

var (
	// GoldenTUITheme is the golden-gradient dashboard palette on black.
	GoldenTUITheme = TUITheme{
		Bg:     lipgloss.Color("#000000"),
		Text:   lipgloss.Color("#E8E4D8"),
		Dim:    lipgloss.Color("#666666"),
		Border: lipgloss.Color("#FFD778"),
		Accent: lipgloss.Color("#FFFFC8"),

		Success: lipgloss.Color("#9ece6a"),
		Warning: lipgloss.Color("#FFB93C"),
		Error:   lipgloss.Color("#FF4444"),
		Info:    lipgloss.Color("#8CB4FF"),
	}

	// NoColorTUITheme renders everything in the terminal's default colors.
	// lipgloss.NoColor{} must be set explicitly: a nil TerminalColor is not
	// a usable color.
	NoColorTUITheme = TUITheme{
		Bg: lipgloss.NoColor{}, Text: lipgloss.NoColor{}, Dim: lipgloss.NoColor{},
		Border: lipgloss.NoColor{}, Accent: lipgloss.NoColor{},
		Success: lipgloss.NoColor{}, Warning: lipgloss.NoColor{},
		Error: lipgloss.NoColor{}, Info: lipgloss.NoColor{},
	}
)

// GoldenPalette is the gradient used to tint chart bars and spiral squares,
// brightest first. Consumers cycle through it with PaletteColor.
var GoldenPalette = [8]lipgloss.Color{
	lipgloss.Color("#FFFFC8"),
	lipgloss.Color("#FFF5B4"),
	lipgloss.Color("#FFEBA0"),
	lipgloss.Color("#FFE18C"),
	lipgloss.Color("#FFD778"),
	lipgloss.Color("#FFCD64"),
	lipgloss.Color("#FFC350"),
	lipgloss.Color("#FFB93C"),
}

// PaletteColor returns the palette entry for index i, cycling past the end
// so any sequence index maps to a color.
func PaletteColor(i int) lipgloss.Color {
	if i < 0 {
		i = -i
	}
	return GoldenPalette[i%len(GoldenPalette)]
}

// GetCurrentTUITheme maps the active theme onto the dashboard palette. Only
// "none" changes anything there; the dashboard keeps its golden palette even
// under the light CLI theme, because it draws on its own black background.
func GetCurrentTUITheme() TUITheme {
	if GetCurrentTheme().Name == "none" {
		return NoColorTUITheme
	}
	return GoldenTUITheme
}

// GetCurrentTheme returns the active theme.
func GetCurrentTheme() Theme {
	themeMutex.RLock()
	t := currentTheme
	themeMutex.RUnlock()
	return t
}

// SetCurrentTheme replaces the active theme. Tests use it to restore state.
func SetCurrentTheme(t Theme) {
	themeMutex.Lock()
	currentTheme = t
	themeMutex.Unlock()
}

// SetTheme selects the active theme by its configuration name. Unknown
// names fall back to golden rather than failing; the config validator has
// already rejected anything unexpected by the time this runs.
func SetTheme(name string) {
	switch name {
	case "light":
		SetCurrentTheme(LightTheme)
	case "none":
		SetCurrentTheme(NoColorTheme)
	default:
		SetCurrentTheme(GoldenTheme)
	}
}

// InitTheme applies the startup color decision: an explicit --no-color wins,
// then the NO_COLOR convention (https://no-color.org/), otherwise the golden
// default. The configured theme name is applied separately via SetTheme.
func InitTheme(noColor bool) {
	if _, envSet := os.LookupEnv("NO_COLOR"); noColor || envSet {
		SetCurrentTheme(NoColorTheme)
		return
	}
	SetCurrentTheme(GoldenTheme)
}
