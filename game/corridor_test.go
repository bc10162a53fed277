package game

import (
	"testing"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectStraightCorridor(t *testing.T) {
	m := parseMaze(t,
		"##s##",
		"#...#",
		"#...#",
		"#...#",
		"#...#",
		"##e##",
	)
	p, err := NewPlayerAt(m, maze.CellPosition{X: 2, Y: 2}, maze.South)
	require.NoError(t, err)

	frame := Project(m, p, 80)
	require.Len(t, frame.Slices, 4)
	assert.Equal(t, maze.South, frame.Facing)

	for i, slice := range frame.Slices {
		assert.Equal(t, i, slice.Depth)
		assert.Equal(t, maze.CellPosition{X: 2, Y: 2 + i}, slice.Position)
		if i > 0 {
			assert.Less(t, slice.Size, frame.Slices[i-1].Size)
		}

		last := i == len(frame.Slices)-1
		assert.Equal(t, last, slice.Shapes.Has(maze.CenterWall), "depth %d: %s", i, slice.Shapes)
	}

	assert.Equal(t, []float64{80, 40, 20, 10}, []float64{
		frame.Slices[0].Size, frame.Slices[1].Size, frame.Slices[2].Size, frame.Slices[3].Size,
	})

	for _, slice := range frame.Slices[:3] {
		assert.False(t, slice.Shapes.Has(maze.LeftWall))
		assert.False(t, slice.Shapes.Has(maze.RightWall))
	}

	exit := frame.Slices[3]
	assert.True(t, exit.Shapes.Has(maze.LeftWall))
	assert.True(t, exit.Shapes.Has(maze.RightWall))
	assert.True(t, exit.Shapes.Has(maze.Ladder), "exit seen facing south shows the ladder")
}

func TestProjectEdges(t *testing.T) {
	// Looking north from (3,3): the opening left of (3,2) leads to (2,2),
	// whose north wall faces the player.
	m := parseMaze(t,
		"##s##",
		"###.#",
		"#...#",
		"#.#.#",
		"#e###",
	)
	p, err := NewPlayerAt(m, maze.CellPosition{X: 3, Y: 3}, maze.North)
	require.NoError(t, err)

	frame := Project(m, p, 0)
	require.Len(t, frame.Slices, 3)
	assert.Equal(t, DefaultDrawingSize, frame.Slices[0].Size)

	near := frame.Slices[0]
	assert.True(t, near.Shapes.Has(maze.LeftWall))
	assert.True(t, near.Shapes.Has(maze.RightWall))
	assert.False(t, near.Shapes.Has(maze.LeftEdge))

	// (3,2): left neighbour (2,2) is open and has a wall to the north.
	junction := frame.Slices[1]
	assert.Equal(t, maze.CellPosition{X: 3, Y: 2}, junction.Position)
	assert.False(t, junction.Shapes.Has(maze.LeftWall))
	assert.True(t, junction.Shapes.Has(maze.LeftEdge))
	assert.True(t, junction.Shapes.Has(maze.RightWall))
	assert.False(t, junction.Shapes.Has(maze.RightEdge))

	far := frame.Slices[2]
	assert.Equal(t, maze.CellPosition{X: 3, Y: 1}, far.Position)
	assert.True(t, far.Shapes.Has(maze.CenterWall))
}

func TestProjectBlockedImmediately(t *testing.T) {
	m := parseMaze(t,
		"#s#",
		"#.#",
		"#e#",
	)
	p, err := NewPlayer(m, maze.North)
	require.NoError(t, err)

	frame := Project(m, p, 80)
	require.Len(t, frame.Slices, 1)
	assert.True(t, frame.Slices[0].Shapes.Has(maze.CenterWall))
	assert.True(t, frame.Slices[0].Shapes.Has(maze.LeftWall))
	assert.True(t, frame.Slices[0].Shapes.Has(maze.RightWall))
}

func TestProjectDoesNotMutate(t *testing.T) {
	m := parseMaze(t,
		"#s#",
		"#.#",
		"#e#",
	)
	p, err := NewPlayer(m, maze.South)
	require.NoError(t, err)

	before := m.String()
	first := Project(m, p, 80)
	second := Project(m, p, 80)

	assert.Equal(t, first, second)
	assert.Equal(t, before, m.String())
	assert.Equal(t, StatusInit, p.Status())
	assert.Equal(t, m.Entry(), p.Position())
}

func TestLadderOnlyFacingSouth(t *testing.T) {
	m := parseMaze(t,
		"#s#",
		"#.#",
		"#e#",
	)
	p, err := NewPlayerAt(m, m.Exit(), maze.North)
	require.NoError(t, err)

	frame := Project(m, p, 80)
	assert.False(t, frame.Slices[0].Shapes.Has(maze.Ladder))

	p.TurnBackwards()
	frame = Project(m, p, 80)
	require.Len(t, frame.Slices, 1)
	assert.True(t, frame.Slices[0].Shapes.Has(maze.Ladder))
	assert.True(t, frame.Slices[0].Shapes.Has(maze.CenterWall))
}
