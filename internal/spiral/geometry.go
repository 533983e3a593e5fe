// Package spiral derives the square tiling and quarter-circle arcs of the
// Fibonacci spiral from a computed sequence.
//
// The layout plane uses screen-style axes: x grows rightward, y grows
// downward, the way terminal canvases address cells. Angles follow the usual
// mathematical convention on those axes, so a positive sweep appears
// clockwise on screen. All geometry is exact tiling arithmetic; fitting the
// result onto a canvas is the renderer's job, via Bounds.
package spiral

import (
	"math"

	"github.com/agbru/fibspiral/internal/fib"
)

// MaxSquares caps the tiling. Beyond twelve squares the outer sides dwarf
// the unit squares by two orders of magnitude and nothing useful renders, so
// larger sequences get no layout at all.
const MaxSquares = 12

// Point is a position in the layout plane.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis-aligned rectangle spanning Min to Max.
type Rect struct {
	Min Point `json:"min"`
	Max Point `json:"max"`
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 { return r.Max.X - r.Min.X }

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Point {
	return Point{X: (r.Min.X + r.Max.X) / 2, Y: (r.Min.Y + r.Max.Y) / 2}
}

// Square is one tile of the walk: the sequence index it represents, its
// top-left corner, and its side length (the term's value).
type Square struct {
	Index  uint64  `json:"index"`
	Origin Point   `json:"origin"`
	Size   float64 `json:"size"`
}

// Arc is the quarter circle inscribed in one square. EndAngle is always
// StartAngle + π/2: every arc sweeps a positive quarter turn, and
// consecutive arcs share endpoints and tangents.
type Arc struct {
	Center     Point   `json:"center"`
	Radius     float64 `json:"radius"`
	StartAngle float64 `json:"startAngle"`
	EndAngle   float64 `json:"endAngle"`
	Quadrant   int     `json:"quadrant"`
}

// PointAt returns the point on the arc's circle at the given angle.
func (a Arc) PointAt(angle float64) Point {
	return Point{
		X: a.Center.X + a.Radius*math.Cos(angle),
		Y: a.Center.Y + a.Radius*math.Sin(angle),
	}
}

// Start returns the point where the arc begins its sweep.
func (a Arc) Start() Point { return a.PointAt(a.StartAngle) }

// End returns the point where the arc hands off to its successor.
func (a Arc) End() Point { return a.PointAt(a.EndAngle) }

// Layout is the derived spiral geometry: one square and one arc per drawn
// term, plus the tight bounding box of the tiling.
type Layout struct {
	Squares []Square `json:"squares"`
	Arcs    []Arc    `json:"arcs"`
	Bounds  Rect     `json:"bounds"`
}

// Derive builds the spiral layout for a sequence produced by fib.Compute.
//
// The walk starts at sequence index 1: F(0) has zero size and cannot tile.
// The first two unit squares sit side by side; from the third square on the
// attachment direction cycles down, left, up, right around the growing
// bounding box, each side length matching the box edge it spans. The
// boolean result is false when there is nothing to draw: a bare F(0)
// sequence, or more than MaxSquares drawable terms.
func Derive(seq fib.Sequence) (Layout, bool) {
	n := len(seq) - 1
	if n < 1 || n > MaxSquares {
		return Layout{}, false
	}

	squares := make([]Square, 0, n)

	side := float64(seq[1].Value)
	bounds := Rect{Max: Point{X: side, Y: side}}
	squares = append(squares, Square{Index: 1, Size: side})

	if n >= 2 {
		side = float64(seq[2].Value)
		squares = append(squares, Square{Index: 2, Origin: Point{X: bounds.Max.X}, Size: side})
		bounds.Max.X += side
	}

	for k := 3; k <= n; k++ {
		side = float64(seq[k].Value)
		var origin Point
		switch (k - 3) % 4 {
		case 0: // below, spanning the full width
			origin = Point{X: bounds.Min.X, Y: bounds.Max.Y}
			bounds.Max.Y += side
		case 1: // left, spanning the full height
			origin = Point{X: bounds.Min.X - side, Y: bounds.Min.Y}
			bounds.Min.X -= side
		case 2: // above
			origin = Point{X: bounds.Min.X, Y: bounds.Min.Y - side}
			bounds.Min.Y -= side
		case 3: // right
			origin = Point{X: bounds.Max.X, Y: bounds.Min.Y}
			bounds.Max.X += side
		}
		squares = append(squares, Square{Index: uint64(k), Origin: origin, Size: side})
	}

	arcs := make([]Arc, len(squares))
	for i, sq := range squares {
		arcs[i] = arcFor(sq)
	}

	return Layout{Squares: squares, Arcs: arcs, Bounds: bounds}, true
}

// arcFor inscribes the quarter circle for one square. The center sits on the
// corner the next square wraps around, which is what makes consecutive arcs
// meet with matching tangents.
func arcFor(sq Square) Arc {
	q := int((sq.Index - 1) % 4)

	var center Point
	switch q {
	case 0:
		center = Point{X: sq.Origin.X + sq.Size, Y: sq.Origin.Y + sq.Size}
	case 1:
		center = Point{X: sq.Origin.X, Y: sq.Origin.Y + sq.Size}
	case 2:
		center = sq.Origin
	case 3:
		center = Point{X: sq.Origin.X + sq.Size, Y: sq.Origin.Y}
	}

	start := math.Pi + float64(q)*(math.Pi/2)
	if start >= 2*math.Pi {
		start -= 2 * math.Pi
	}

	return Arc{
		Center:     center,
		Radius:     sq.Size,
		StartAngle: start,
		EndAngle:   start + math.Pi/2,
		Quadrant:   q,
	}
}
