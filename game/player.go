package game

import (
	"errors"
	"fmt"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// Walk-related errors.
var (
	ErrNilMaze        = errors.New("maze is nil")
	ErrNilRenderer    = errors.New("renderer is nil")
	ErrInvalidCommand = errors.New("invalid command")
)

// Status tells the caller what the last player operation changed.
type Status uint8

const (
	StatusInit    Status = iota // placed, nothing drawn yet
	StatusMoved                 // stepped into the next cell
	StatusRotated               // faces a new direction
	StatusBlocked               // a wall or the border stopped a step
	StatusIdle                  // nothing changed since the last frame
)

var statusNames = [...]string{"init", "moved", "rotated", "blocked", "idle"}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return fmt.Sprintf("Status(%d)", uint8(s))
}

// Player walks through a maze. Its status doubles as a dirty flag: every
// operation sets it, and the caller resets it to StatusIdle once the change
// has been drawn.
type Player struct {
	maze      Maze
	x, y      int
	direction maze.Direction
	status    Status
}

// NewPlayer places a player on the maze entry, facing the given direction.
func NewPlayer(m Maze, facing maze.Direction) (*Player, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	return NewPlayerAt(m, m.Entry(), facing)
}

// NewPlayerAt places a player on an arbitrary cell.
func NewPlayerAt(m Maze, pos maze.CellPosition, facing maze.Direction) (*Player, error) {
	if m == nil {
		return nil, ErrNilMaze
	}
	if !facing.Valid() {
		return nil, fmt.Errorf("%w: %d", maze.ErrInvalidDirection, facing)
	}
	if _, err := m.CellAt(pos.X, pos.Y); err != nil {
		return nil, err
	}

	return &Player{
		maze:      m,
		x:         pos.X,
		y:         pos.Y,
		direction: facing,
		status:    StatusInit,
	}, nil
}

// Position returns the coordinates of the current cell.
func (p *Player) Position() maze.CellPosition {
	return maze.CellPosition{X: p.x, Y: p.y}
}

// Direction returns the direction the player faces.
func (p *Player) Direction() maze.Direction {
	return p.direction
}

// Status returns the outcome of the last operation.
func (p *Player) Status() Status {
	return p.status
}

// Cell returns the cell the player stands on.
func (p *Player) Cell() *maze.Cell {
	// The position only ever comes from CellAt or Neighbor, so it is in bounds.
	c, _ := p.maze.CellAt(p.x, p.y)
	return c
}

// Solved reports whether the player stands on the exit.
func (p *Player) Solved() bool {
	c := p.Cell()
	return c != nil && c.IsExit
}

// ResetStatus marks the current state as drawn.
func (p *Player) ResetStatus() {
	p.status = StatusIdle
}

// RotateLeft turns the player 90 degrees to the left.
func (p *Player) RotateLeft() Status {
	p.direction = p.direction.Rotate(maze.Left)
	p.status = StatusRotated
	return p.status
}

// RotateRight turns the player 90 degrees to the right.
func (p *Player) RotateRight() Status {
	p.direction = p.direction.Rotate(maze.Right)
	p.status = StatusRotated
	return p.status
}

// TurnBackwards turns the player around.
func (p *Player) TurnBackwards() Status {
	p.direction = p.direction.Opposite()
	p.status = StatusRotated
	return p.status
}

// MoveForward steps into the cell ahead, or reports StatusBlocked and stays put.
func (p *Player) MoveForward() Status {
	next := p.maze.Neighbor(p.Cell(), p.direction)
	if next == nil {
		p.status = StatusBlocked
		return p.status
	}

	p.x, p.y = next.X, next.Y
	p.status = StatusMoved
	return p.status
}

// Apply runs the movement operation bound to cmd. Commands that do not move or
// turn the player are rejected and leave the state untouched.
func (p *Player) Apply(cmd Command) (Status, error) {
	switch cmd {
	case CommandLeft:
		return p.RotateLeft(), nil
	case CommandRight:
		return p.RotateRight(), nil
	case CommandForward:
		return p.MoveForward(), nil
	case CommandBackward:
		return p.TurnBackwards(), nil
	}
	return p.status, fmt.Errorf("%w: %s is not a movement", ErrInvalidCommand, cmd)
}
