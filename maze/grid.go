package maze

import (
	"fmt"
	"strings"
)

// Marker is the raw content of one grid square before walls are derived.
type Marker uint8

const (
	Wall Marker = iota
	Path
	Start
	End
)

var markerRunes = [4]rune{Wall: '#', Path: '.', Start: 's', End: 'e'}

func (m Marker) String() string {
	return string(markerRunes[m])
}

// CellPosition identifies a square by its column (X) and row (Y).
type CellPosition struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p moved by delta.
func (p CellPosition) Add(delta CellPosition) CellPosition {
	return CellPosition{X: p.X + delta.X, Y: p.Y + delta.Y}
}

// Grid is the raw marker layout produced by the Generator.
// Markers are stored row-major: markers[y][x].
type Grid struct {
	Width    int
	Height   int
	Seed     string         // Seed the grid was generated from, empty for parsed grids.
	Solution []CellPosition // Cells carved by the solution walk, Start to End.
	markers  [][]Marker
}

// newGrid returns a width x height grid made only of walls.
func newGrid(width, height int) *Grid {
	markers := make([][]Marker, height)
	for y := range markers {
		markers[y] = make([]Marker, width)
	}
	return &Grid{Width: width, Height: height, markers: markers}
}

// ParseGrid builds a Grid from rows written with '#', '.', 's' and 'e'.
// The result must satisfy the Start/End invariants.
func ParseGrid(rows []string) (*Grid, error) {
	if len(rows) < minDimension || len(rows[0]) < minDimension {
		return nil, ErrInvalidDimensions
	}

	g := newGrid(len(rows[0]), len(rows))
	for y, row := range rows {
		if len(row) != g.Width {
			return nil, fmt.Errorf("%w: row %d has length %d, want %d", ErrMalformedGrid, y, len(row), g.Width)
		}
		for x, r := range row {
			switch r {
			case '#':
				g.markers[y][x] = Wall
			case '.':
				g.markers[y][x] = Path
			case 's':
				g.markers[y][x] = Start
			case 'e':
				g.markers[y][x] = End
			default:
				return nil, fmt.Errorf("%w: unknown marker %q at (%d,%d)", ErrMalformedGrid, r, x, y)
			}
		}
	}

	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

// InBound reports whether (x, y) lies inside the grid.
func (g *Grid) InBound(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// At returns the marker at (x, y).
func (g *Grid) At(x, y int) (Marker, error) {
	if !g.InBound(x, y) {
		return Wall, fmt.Errorf("%w: (%d,%d) in %dx%d grid", ErrOutOfBounds, x, y, g.Width, g.Height)
	}
	return g.markers[y][x], nil
}

// Find returns the positions holding marker m, in row-major order.
func (g *Grid) Find(m Marker) []CellPosition {
	var found []CellPosition
	for y, row := range g.markers {
		for x, v := range row {
			if v == m {
				found = append(found, CellPosition{X: x, Y: y})
			}
		}
	}
	return found
}

// Reachable reports whether End can be reached from Start through non-wall squares.
func (g *Grid) Reachable() bool {
	starts, ends := g.Find(Start), g.Find(End)
	if len(starts) != 1 || len(ends) != 1 {
		return false
	}

	start, end := starts[0], ends[0]
	visited := map[CellPosition]bool{start: true}
	queue := []CellPosition{start}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]
		if curr == end {
			return true
		}

		for _, d := range Directions {
			next := curr.Add(d.Delta())
			if !g.InBound(next.X, next.Y) || visited[next] || g.markers[next.Y][next.X] == Wall {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return false
}

// validate checks the Start/End placement invariants.
func (g *Grid) validate() error {
	starts, ends := g.Find(Start), g.Find(End)
	if len(starts) != 1 || starts[0].Y != 0 {
		return fmt.Errorf("%w: want exactly one start on row 0, got %v", ErrMalformedGrid, starts)
	}
	if len(ends) != 1 || ends[0].Y != g.Height-1 {
		return fmt.Errorf("%w: want exactly one end on the last row, got %v", ErrMalformedGrid, ends)
	}
	return nil
}

// String prints the grid one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for _, row := range g.Rows() {
		sb.WriteString(row)
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Rows returns the grid in the notation accepted by ParseGrid.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	for y, row := range g.markers {
		var sb strings.Builder
		for _, m := range row {
			sb.WriteRune(markerRunes[m])
		}
		rows[y] = sb.String()
	}
	return rows
}

func (g *Grid) isEdge(p CellPosition) bool {
	return p.X == 0 || p.Y == 0 || p.X == g.Width-1 || p.Y == g.Height-1
}

func (g *Grid) get(p CellPosition) Marker {
	return g.markers[p.Y][p.X]
}

func (g *Grid) set(p CellPosition, m Marker) {
	g.markers[p.Y][p.X] = m
}
