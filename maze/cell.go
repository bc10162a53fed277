package maze

// Cell represents a single square of a maze with a wall flag per direction.
type Cell struct {
	X          int     // X is the column of the cell.
	Y          int     // Y is the row of the cell.
	Walls      [4]bool // Walls is indexed by Direction.
	IsEntrance bool    // IsEntrance marks the Start square.
	IsExit     bool    // IsExit marks the End square.
}

// Position returns the coordinates of the cell.
func (c *Cell) Position() CellPosition {
	return CellPosition{X: c.X, Y: c.Y}
}

// HasWall returns true if there is a wall on side d of the cell.
func (c *Cell) HasWall(d Direction) bool {
	return c.Walls[d]
}

// Shapes returns the walls visible from inside the cell while facing the given
// direction: straight ahead and on either side.
func (c *Cell) Shapes(facing Direction) ShapeSet {
	var shapes ShapeSet
	if c.HasWall(facing) {
		shapes = shapes.With(CenterWall)
	}
	if c.HasWall(facing.Rotate(Left)) {
		shapes = shapes.With(LeftWall)
	}
	if c.HasWall(facing.Rotate(Right)) {
		shapes = shapes.With(RightWall)
	}
	return shapes
}

// wallsAt derives the wall flags of square p: a side has a wall when the
// neighbouring square is a wall or lies outside the grid. Wall squares are
// closed on every side.
func wallsAt(g *Grid, p CellPosition) [4]bool {
	var walls [4]bool
	if g.get(p) == Wall {
		return [4]bool{true, true, true, true}
	}
	for _, d := range Directions {
		n := p.Add(d.Delta())
		walls[d] = !g.InBound(n.X, n.Y) || g.get(n) == Wall
	}
	return walls
}
