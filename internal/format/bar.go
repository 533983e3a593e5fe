package format

import "strings"

const (
	barFull  = "█" // U+2588 full block
	barEmpty = "░" // U+2591 light shade
)

// Bar renders a fixed-width horizontal bar with filled cells on the left and
// a light rail on the right. filled is clamped to [0, width]; a non-positive
// width yields an empty string.
func Bar(filled, width int) string {
	if width <= 0 {
		return ""
	}
	if filled < 0 {
		filled = 0
	}
	if filled > width {
		filled = width
	}
	return strings.Repeat(barFull, filled) + strings.Repeat(barEmpty, width-filled)
}
