// Package ui owns the color story for every surface the application draws
// on: ANSI escape helpers for the one-shot output and the REPL, and lipgloss
// palettes for the TUI dashboard, both switched by a single active theme.
//
// The golden theme is the default, shading output toward the spiral the
// application is named for; a light variant and a no-color variant cover
// bright terminals and NO_COLOR environments. Downstream packages call the
// Color* helpers or GetCurrentTUITheme and never touch escape codes
// themselves.
package ui
