package game

import "github.com/beka-birhanu/vinom-maze/maze"

// Maze defines the read-only maze queries a walk needs.
type Maze interface {
	// CellAt returns the cell at (x, y) or maze.ErrOutOfBounds.
	CellAt(x, y int) (*maze.Cell, error)

	// Neighbor returns the unobstructed grid neighbour of c towards d, or nil.
	Neighbor(c *maze.Cell, d maze.Direction) *maze.Cell

	// Entry returns the position walks start from.
	Entry() maze.CellPosition
}

// Renderer draws corridor frames and short messages.
type Renderer interface {
	Render(frame Frame) error
	ShowMessage(msg string) error
}

// SoundPlayer plays feedback sounds.
type SoundPlayer interface {
	PlayBump()
}
