/*
Package maze generates first-person walkable mazes.

A Generator carves a raw Grid of wall, path, start and end markers: a single
solution walk from a start square on the top row down to an end square on the
bottom row, optionally surrounded by noise corridors. A Maze turns the Grid
into Cells carrying a wall flag per compass direction and answers adjacency
queries used for movement and corridor projection.

The same seed always yields the same maze.
*/
package maze

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOutOfBounds       = errors.New("coordinates out of bounds")
	ErrInvalidDimensions = errors.New("invalid maze dimensions")
	ErrInvalidDirection  = errors.New("invalid direction")
	ErrInvalidNoiseBias  = errors.New("invalid noise bias")
	ErrGenerationFailed  = errors.New("maze generation failed")
	ErrMalformedGrid     = errors.New("malformed grid")
)

// Maze is an immutable grid of Cells with a single entry and exit.
type Maze struct {
	Width  int    // Width of the maze (number of columns)
	Height int    // Height of the maze (number of rows)
	Seed   string // Seed the layout was generated from
	entry  CellPosition
	exit   CellPosition
	grid   [][]Cell
	raw    *Grid
}

// New generates a maze of the given dimensions. An empty seed picks a random
// one, recorded in the returned maze.
func New(width, height int, bias NoiseBias, seed string) (*Maze, error) {
	if min(width, height) < minDimension || max(width, height) > maxDimension {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}

	grid, err := NewGenerator(seed).Generate(width, height, bias)
	if err != nil {
		return nil, err
	}
	return FromGrid(grid)
}

// FromGrid derives the wall model of a finished grid.
func FromGrid(g *Grid) (*Maze, error) {
	if g == nil {
		return nil, ErrMalformedGrid
	}
	if err := g.validate(); err != nil {
		return nil, err
	}

	m := &Maze{
		Width:  g.Width,
		Height: g.Height,
		Seed:   g.Seed,
		grid:   make([][]Cell, g.Height),
		raw:    g,
	}

	for y := range m.grid {
		m.grid[y] = make([]Cell, g.Width)
		for x := range m.grid[y] {
			p := CellPosition{X: x, Y: y}
			cell := Cell{X: x, Y: y, Walls: wallsAt(g, p)}
			switch g.get(p) {
			case Start:
				cell.IsEntrance = true
				m.entry = p
			case End:
				cell.IsExit = true
				m.exit = p
			}
			m.grid[y][x] = cell
		}
	}

	return m, nil
}

// Entry returns the position of the entrance on the top row.
func (m *Maze) Entry() CellPosition {
	return m.entry
}

// Exit returns the position of the exit on the bottom row.
func (m *Maze) Exit() CellPosition {
	return m.exit
}

// Grid returns the raw grid the maze was built from.
func (m *Maze) Grid() *Grid {
	return m.raw
}

// InBound checks whether (x, y) lies inside the maze.
func (m *Maze) InBound(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// CellAt returns the cell at (x, y).
func (m *Maze) CellAt(x, y int) (*Cell, error) {
	if !m.InBound(x, y) {
		return nil, fmt.Errorf("%w: (%d,%d) in %dx%d maze", ErrOutOfBounds, x, y, m.Width, m.Height)
	}
	return &m.grid[y][x], nil
}

// Neighbor returns the cell next to c in direction d, or nil when a wall
// blocks the way or the step would leave the maze.
func (m *Maze) Neighbor(c *Cell, d Direction) *Cell {
	if c == nil || !d.Valid() || c.HasWall(d) {
		return nil
	}
	n := c.Position().Add(d.Delta())
	if !m.InBound(n.X, n.Y) {
		return nil
	}
	return &m.grid[n.Y][n.X]
}

// String provides a textual representation of the wall model.
func (m *Maze) String() string {
	var output strings.Builder

	// Top boundary
	output.WriteString("+")
	for x := 0; x < m.Width; x++ {
		if m.grid[0][x].HasWall(North) {
			output.WriteString("---+")
		} else {
			output.WriteString("   +")
		}
	}
	output.WriteString("\n")

	for y := 0; y < m.Height; y++ {
		// Cell rows
		if m.grid[y][0].HasWall(West) {
			output.WriteString("|")
		} else {
			output.WriteString(" ")
		}
		for x := 0; x < m.Width; x++ {
			cell := m.grid[y][x]

			switch {
			case cell.IsEntrance:
				output.WriteString(" S ")
			case cell.IsExit:
				output.WriteString(" E ")
			case cell.Walls == [4]bool{true, true, true, true}:
				output.WriteString("###")
			default:
				output.WriteString("   ")
			}

			if cell.HasWall(East) {
				output.WriteString("|")
			} else {
				output.WriteString(" ")
			}
		}
		output.WriteString("\n")

		// Wall rows
		output.WriteString("+")
		for x := 0; x < m.Width; x++ {
			if m.grid[y][x].HasWall(South) {
				output.WriteString("---+")
			} else {
				output.WriteString("   +")
			}
		}
		output.WriteString("\n")
	}

	return output.String()
}
