package maze

import (
	"fmt"
	"strings"
)

// Direction is one of the four compass directions a cell wall or a player can face.
type Direction uint8

const (
	North Direction = iota
	East
	South
	West
)

// Turn selects a 90 degree rotation.
type Turn uint8

const (
	Left Turn = iota
	Right
)

// Directions lists the compass directions in a fixed order.
var Directions = [4]Direction{North, East, South, West}

var (
	opposites = [4]Direction{North: South, East: West, South: North, West: East}

	// rotations[d][turn] is the direction faced after turning from d.
	rotations = [4][2]Direction{
		North: {Left: West, Right: East},
		West:  {Left: South, Right: North},
		East:  {Left: North, Right: South},
		South: {Left: East, Right: West},
	}

	deltas = [4]CellPosition{
		North: {X: 0, Y: -1},
		East:  {X: 1, Y: 0},
		South: {X: 0, Y: 1},
		West:  {X: -1, Y: 0},
	}

	directionNames = [4]string{North: "N", East: "E", South: "S", West: "W"}
)

// Opposite returns the compass opposite of d.
func (d Direction) Opposite() Direction {
	return opposites[d]
}

// Rotate returns the direction faced after turning left or right from d.
func (d Direction) Rotate(t Turn) Direction {
	return rotations[d][t]
}

// Delta returns the coordinate offset of one step towards d.
func (d Direction) Delta() CellPosition {
	return deltas[d]
}

// Valid reports whether d is one of the four compass directions.
func (d Direction) Valid() bool {
	return d <= West
}

func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

func (t Turn) String() string {
	if t == Left {
		return "left"
	}
	return "right"
}

// ParseDirection accepts a compass letter or name in any case ("s", "South").
func ParseDirection(token string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "n", "north":
		return North, nil
	case "e", "east":
		return East, nil
	case "s", "south":
		return South, nil
	case "w", "west":
		return West, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDirection, token)
}
