package maze

import "strings"

// Shape is a drawable wall piece seen from inside a cell.
type Shape uint8

const (
	CenterWall Shape = iota // wall straight ahead
	LeftWall                // wall on the left side
	RightWall               // wall on the right side
	LeftEdge                // end face of a wall beyond an opening on the left
	RightEdge               // end face of a wall beyond an opening on the right
	Ladder                  // exit ladder, visible when facing south on the exit
)

var shapeNames = [...]string{
	CenterWall: "center_wall",
	LeftWall:   "left_wall",
	RightWall:  "right_wall",
	LeftEdge:   "left_edge",
	RightEdge:  "right_edge",
	Ladder:     "ladder",
}

// Shapes lists every shape kind in drawing order.
var Shapes = [...]Shape{CenterWall, LeftWall, RightWall, LeftEdge, RightEdge, Ladder}

func (s Shape) String() string {
	if int(s) < len(shapeNames) {
		return shapeNames[s]
	}
	return "unknown"
}

// ShapeSet is a small bit set of shapes.
type ShapeSet uint8

// With returns the set with s added.
func (ss ShapeSet) With(s Shape) ShapeSet {
	return ss | 1<<s
}

// Has reports whether s is in the set.
func (ss ShapeSet) Has(s Shape) bool {
	return ss&(1<<s) != 0
}

// List returns the shapes in the set in drawing order.
func (ss ShapeSet) List() []Shape {
	var list []Shape
	for _, s := range Shapes {
		if ss.Has(s) {
			list = append(list, s)
		}
	}
	return list
}

// Names returns the shape names in drawing order.
func (ss ShapeSet) Names() []string {
	names := make([]string, 0, len(Shapes))
	for _, s := range ss.List() {
		names = append(names, s.String())
	}
	return names
}

func (ss ShapeSet) String() string {
	return "{" + strings.Join(ss.Names(), ",") + "}"
}
