package terminal

import "github.com/beka-birhanu/vinom-maze/maze"

// Paper space is the fixed coordinate system shapes are laid out in before
// being scaled to the terminal.
const (
	PaperWidth  = 320.0
	PaperHeight = 192.0

	centerX = PaperWidth / 2
	centerY = PaperHeight / 2

	ladderOffsetX = 3.4 // ladder left edge sits size/3.4 left of the centre
	ladderRaise   = 1.3 // ladder top sits 1.3*size above the centre
)

// Point is a position in paper space.
type Point struct {
	X, Y float64
}

// Quad is a convex outline. Points 0-3 and 1-2 are its vertical edges.
type Quad [4]Point

// ShapeQuad returns the outline of a shape drawn at the given size.
//
// Side walls and edges span from twice the size (the near plane of the cell)
// to the size itself (its far plane).
func ShapeQuad(shape maze.Shape, size float64) Quad {
	s, o := size, size*2

	switch shape {
	case maze.CenterWall:
		return Quad{{centerX - s, centerY - s}, {centerX + s, centerY - s}, {centerX + s, centerY + s}, {centerX - s, centerY + s}}
	case maze.LeftWall:
		return Quad{{centerX - o, centerY - o}, {centerX - s, centerY - s}, {centerX - s, centerY + s}, {centerX - o, centerY + o}}
	case maze.RightWall:
		return Quad{{centerX + o, centerY - o}, {centerX + s, centerY - s}, {centerX + s, centerY + s}, {centerX + o, centerY + o}}
	case maze.LeftEdge:
		return Quad{{centerX - o, centerY - s}, {centerX - s, centerY - s}, {centerX - s, centerY + s}, {centerX - o, centerY + s}}
	case maze.RightEdge:
		return Quad{{centerX + o, centerY - s}, {centerX + s, centerY - s}, {centerX + s, centerY + s}, {centerX + o, centerY + s}}
	case maze.Ladder:
		x := centerX - s/ladderOffsetX
		y := centerY - s*ladderRaise
		w, h := s/2, s*2
		return Quad{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	}
	return Quad{}
}

// Contains reports whether p lies inside or on the quad.
func (q Quad) Contains(p Point) bool {
	var pos, neg bool
	for i := range q {
		a, b := q[i], q[(i+1)%len(q)]
		cross := (b.X-a.X)*(p.Y-a.Y) - (b.Y-a.Y)*(p.X-a.X)
		if cross > 0 {
			pos = true
		} else if cross < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

// Bounds returns the top-left and bottom-right corners of the quad.
func (q Quad) Bounds() (Point, Point) {
	lo, hi := q[0], q[0]
	for _, p := range q[1:] {
		lo.X, lo.Y = min(lo.X, p.X), min(lo.Y, p.Y)
		hi.X, hi.Y = max(hi.X, p.X), max(hi.Y, p.Y)
	}
	return lo, hi
}
