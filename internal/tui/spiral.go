package tui

import (
	"math"
	"strings"

	"github.com/agbru/fibspiral/internal/spiral"
)

// SpiralModel renders the derived layout on a braille canvas: arcs in the
// accent color, the square tiling as a dimmer layer behind them.
type SpiralModel struct {
	layout   *spiral.Layout
	n        uint64
	hasN     bool
	showGrid bool
	width    int
	height   int
}

// NewSpiralModel creates an empty spiral panel with the grid visible.
func NewSpiralModel() SpiralModel {
	return SpiralModel{showGrid: true}
}

// SetSize updates dimensions.
func (s *SpiralModel) SetSize(w, h int) {
	s.width = w
	s.height = h
}

// SetResult stores the evaluated index and its layout, which is nil when
// the index is out of drawing range.
func (s *SpiralModel) SetResult(n uint64, layout *spiral.Layout) {
	s.n = n
	s.hasN = true
	s.layout = layout
}

// ToggleGrid flips the square tiling layer.
func (s *SpiralModel) ToggleGrid() {
	s.showGrid = !s.showGrid
}

// GridVisible reports whether the tiling layer is drawn.
func (s SpiralModel) GridVisible() bool { return s.showGrid }

// Reset clears the panel.
func (s *SpiralModel) Reset() {
	s.layout = nil
	s.n = 0
	s.hasN = false
}

// View renders the spiral panel.
func (s SpiralModel) View() string {
	var rows []string
	rows = append(rows, panelTitleStyle.Render("Spiral"))

	canvasH := s.height - 5
	if canvasH < 1 {
		canvasH = 1
	}
	canvasW := s.width - 4
	if canvasW < 2 {
		canvasW = 2
	}

	switch {
	case !s.hasN:
		rows = append(rows, dimStyle.Render("no result yet"))
	case s.layout == nil:
		rows = append(rows, dimStyle.Render(spiral.Describe(s.n)))
	default:
		rows = append(rows, s.renderCanvas(canvasW, canvasH)...)
		rows = append(rows, captionStyle.Render(spiral.Describe(s.n)))
	}

	return panelStyle.
		Width(s.width - 2).
		Height(s.height - 2).
		Render(strings.Join(rows, "\n"))
}

// renderCanvas draws arcs and, optionally, the square grid onto braille
// canvases and merges them cell by cell, arcs winning the style.
func (s SpiralModel) renderCanvas(cellsW, cellsH int) []string {
	arcs := newBrailleCanvas(cellsW, cellsH)
	grid := newBrailleCanvas(cellsW, cellsH)

	project := s.projector(arcs)

	for _, a := range s.layout.Arcs {
		plotArc(arcs, a, project)
	}
	if s.showGrid {
		for _, sq := range s.layout.Squares {
			plotSquare(grid, sq, project)
		}
	}

	return mergeCanvases(arcs, grid)
}

// projector builds the world-to-dot transform: a uniform scale fitted to
// the canvas plus centering. Braille dots have near-square pitch, so one
// scale serves both axes without distorting the spiral.
func (s SpiralModel) projector(c *brailleCanvas) func(spiral.Point) (int, int) {
	b := s.layout.Bounds
	dotW := float64(c.DotWidth() - 1)
	dotH := float64(c.DotHeight() - 1)

	scale := math.Inf(1)
	if b.Width() > 0 {
		scale = dotW / b.Width()
	}
	if b.Height() > 0 {
		if v := dotH / b.Height(); v < scale {
			scale = v
		}
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}

	offX := (dotW - b.Width()*scale) / 2
	offY := (dotH - b.Height()*scale) / 2

	return func(p spiral.Point) (int, int) {
		x := (p.X-b.Min.X)*scale + offX
		y := (p.Y-b.Min.Y)*scale + offY
		return int(math.Round(x)), int(math.Round(y))
	}
}

// plotArc samples the quarter turn densely enough that adjacent dots touch.
// Density follows the projected radius: a unit square blown up to a large
// canvas needs just as many samples as a big one shrunk down.
func plotArc(c *brailleCanvas, a spiral.Arc, project func(spiral.Point) (int, int)) {
	cx, cy := project(a.Center)
	sx, sy := project(a.Start())
	steps := 2 * int(math.Hypot(float64(sx-cx), float64(sy-cy)))
	if steps < 12 {
		steps = 12
	}
	for i := 0; i <= steps; i++ {
		angle := a.StartAngle + (a.EndAngle-a.StartAngle)*float64(i)/float64(steps)
		x, y := project(a.PointAt(angle))
		c.SetDot(x, y)
	}
}

// plotSquare outlines one tile of the walk.
func plotSquare(c *brailleCanvas, sq spiral.Square, project func(spiral.Point) (int, int)) {
	corners := [4]spiral.Point{
		{X: sq.Origin.X, Y: sq.Origin.Y},
		{X: sq.Origin.X + sq.Size, Y: sq.Origin.Y},
		{X: sq.Origin.X + sq.Size, Y: sq.Origin.Y + sq.Size},
		{X: sq.Origin.X, Y: sq.Origin.Y + sq.Size},
	}
	for i := range corners {
		plotSegment(c, corners[i], corners[(i+1)%4], project)
	}
}

// plotSegment samples a straight edge between two world points.
func plotSegment(c *brailleCanvas, from, to spiral.Point, project func(spiral.Point) (int, int)) {
	x0, y0 := project(from)
	x1, y1 := project(to)

	steps := int(math.Max(math.Abs(float64(x1-x0)), math.Abs(float64(y1-y0))))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := from.X + (to.X-from.X)*t
		y := from.Y + (to.Y-from.Y)*t
		dx, dy := project(spiral.Point{X: x, Y: y})
		c.SetDot(dx, dy)
	}
}

// mergeCanvases overlays the arc layer on the grid layer. A cell showing
// both gets the union of their dots in the arc style.
func mergeCanvases(arcs, grid *brailleCanvas) []string {
	out := make([]string, arcs.cellsH)
	for row := 0; row < arcs.cellsH; row++ {
		var b strings.Builder
		for col := 0; col < arcs.cellsW; col++ {
			a := arcs.grid[row][col]
			g := grid.grid[row][col]
			switch {
			case a != 0x2800:
				b.WriteString(arcStyle.Render(string(a | (g & 0xFF))))
			case g != 0x2800:
				b.WriteString(gridStyle.Render(string(g)))
			default:
				b.WriteRune(' ')
			}
		}
		out[row] = b.String()
	}
	return out
}
