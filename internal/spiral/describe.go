package spiral

import "fmt"

// Describe returns the caption shown beneath the spiral panel for a given n.
func Describe(n uint64) string {
	switch {
	case n == 0:
		return "F(0) = 0 has no size: nothing to tile yet"
	case n == 1:
		return "a single unit square and the first quarter turn"
	case n == 2:
		return "two unit squares side by side"
	case n < 8:
		return fmt.Sprintf("%d squares tiled in quarter turns, arc radii F(1)..F(%d)", n, n)
	case n <= MaxSquares:
		return fmt.Sprintf("%d squares, consecutive side ratios closing on the golden ratio", n)
	default:
		return fmt.Sprintf("the tiling stops at %d squares: F(%d) and beyond would dwarf the rest", MaxSquares, MaxSquares+1)
	}
}
