package game

import "github.com/beka-birhanu/vinom-maze/maze"

// DefaultDrawingSize is the half-width of the nearest slice in paper units.
const DefaultDrawingSize = 80.0

var lateral = [...]struct {
	turn maze.Turn
	edge maze.Shape
}{
	{maze.Left, maze.LeftEdge},
	{maze.Right, maze.RightEdge},
}

// Slice is one visible cell of a corridor frame.
type Slice struct {
	Position maze.CellPosition
	Shapes   maze.ShapeSet
	Depth    int     // 0 for the player's own cell
	Size     float64 // drawing size, halved at every depth step
}

// Frame is the near-to-far view along the player's facing direction.
type Frame struct {
	Facing maze.Direction
	Slices []Slice
}

// Project looks ahead from the player's cell until a wall or the border, and
// returns the shapes to draw for every visible cell. baseSize is the drawing
// size of the nearest cell; non-positive values use DefaultDrawingSize.
func Project(m Maze, p *Player, baseSize float64) Frame {
	if baseSize <= 0 {
		baseSize = DefaultDrawingSize
	}

	facing := p.Direction()
	frame := Frame{Facing: facing}
	size := baseSize

	for cell, depth := p.Cell(), 0; cell != nil; cell, depth = m.Neighbor(cell, facing), depth+1 {
		shapes := cell.Shapes(facing)

		// A side opening whose far cell has a wall towards us shows that
		// wall's end face.
		for _, side := range lateral {
			other := m.Neighbor(cell, facing.Rotate(side.turn))
			if other != nil && other.HasWall(facing) {
				shapes = shapes.With(side.edge)
			}
		}

		if cell.IsExit && facing == maze.South {
			shapes = shapes.With(maze.Ladder)
		}

		frame.Slices = append(frame.Slices, Slice{
			Position: cell.Position(),
			Shapes:   shapes,
			Depth:    depth,
			Size:     size,
		})
		size /= 2
	}

	return frame
}
