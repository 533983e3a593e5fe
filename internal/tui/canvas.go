package tui

import "strings"

// sparklineChars holds the eight block elements, lowest fill first.
var sparklineChars = [8]rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

// RenderSparkline maps percentage samples onto a row of block glyphs, one
// rune per sample.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	var b strings.Builder
	for _, v := range values {
		b.WriteRune(sparkGlyph(v))
	}
	return b.String()
}

// sparkGlyph picks the block element for one percentage, clamping into
// 0..100 first so the index never leaves the table.
func sparkGlyph(v float64) rune {
	v = min(100, max(0, v))
	return sparklineChars[int(v/100*7)]
}

// brailleDots holds the dot bit offsets within a braille cell, indexed by
// [x%2][y%4]. A cell renders as U+2800 plus the OR of its raised dots: the
// left column carries dots 1,2,3,7 (bits 0..2,6), the right column dots
// 4,5,6,8 (bits 3..5,7).
var brailleDots = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// brailleCanvas is a dot-addressable drawing surface. Each character cell
// carries 2×4 braille dots, so a canvas of w×h cells exposes a 2w×4h grid.
type brailleCanvas struct {
	cellsW int
	cellsH int
	grid   [][]rune
}

// newBrailleCanvas creates a canvas of the given character cell size.
func newBrailleCanvas(cellsW, cellsH int) *brailleCanvas {
	cellsW, cellsH = max(1, cellsW), max(1, cellsH)
	grid := make([][]rune, cellsH)
	for r := range grid {
		grid[r] = make([]rune, cellsW)
		for c := range grid[r] {
			grid[r][c] = 0x2800
		}
	}
	return &brailleCanvas{cellsW: cellsW, cellsH: cellsH, grid: grid}
}

// DotWidth returns the addressable dot columns.
func (c *brailleCanvas) DotWidth() int { return c.cellsW * 2 }

// DotHeight returns the addressable dot rows.
func (c *brailleCanvas) DotHeight() int { return c.cellsH * 4 }

// SetDot activates the dot at (x, y) in dot coordinates, origin top-left.
// Out-of-range dots are ignored.
func (c *brailleCanvas) SetDot(x, y int) {
	if x < 0 || y < 0 || x >= c.DotWidth() || y >= c.DotHeight() {
		return
	}
	c.grid[y/4][x/2] |= brailleDots[x%2][y%4]
}

// Lines renders the canvas as one string per character row.
func (c *brailleCanvas) Lines() []string {
	out := make([]string, c.cellsH)
	for r := range c.grid {
		out[r] = string(c.grid[r])
	}
	return out
}
