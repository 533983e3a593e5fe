// This file provides ANSI color helper functions that read the active theme.
// The names follow the classical terminal look of each role; the actual escape
// code comes from whatever theme is active, so under --no-color they are all
// empty strings.

package ui

// ColorReset returns the escape code that clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorBold returns the escape code for bold text.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the escape code for underlined text.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorGreen returns the active theme's success color.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorRed returns the active theme's error color.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorYellow returns the active theme's warning color.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorCyan returns the active theme's info color.
func ColorCyan() string { return GetCurrentTheme().Info }

// ColorBlue returns the active theme's primary accent color.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorMagenta returns the active theme's secondary color.
func ColorMagenta() string { return GetCurrentTheme().Secondary }
