package terminal

import (
	"context"
	"strings"
	"testing"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestShapeQuad(t *testing.T) {
	q := ShapeQuad(maze.CenterWall, 80)
	assert.Equal(t, Quad{{80, 16}, {240, 16}, {240, 176}, {80, 176}}, q)

	left := ShapeQuad(maze.LeftWall, 40)
	assert.Equal(t, Point{80, 16}, left[0], "near plane at twice the size")
	assert.Equal(t, Point{120, 56}, left[1], "far plane at the size")

	edge := ShapeQuad(maze.RightEdge, 40)
	assert.Equal(t, Quad{{240, 56}, {200, 56}, {200, 136}, {240, 136}}, edge)

	ladder := ShapeQuad(maze.Ladder, 34)
	assert.InDelta(t, 150.0, ladder[0].X, 1e-9)
	assert.InDelta(t, 51.8, ladder[0].Y, 1e-9)
	assert.InDelta(t, 17.0, ladder[1].X-ladder[0].X, 1e-9)
	assert.InDelta(t, 68.0, ladder[3].Y-ladder[0].Y, 1e-9)

	assert.Equal(t, Quad{}, ShapeQuad(maze.Shape(42), 80))
}

func TestQuadContains(t *testing.T) {
	q := ShapeQuad(maze.LeftWall, 80)

	assert.True(t, q.Contains(Point{40, 96}))
	assert.True(t, q.Contains(Point{80, 16}), "corners are inside")
	assert.False(t, q.Contains(Point{100, 96}))
	assert.False(t, q.Contains(Point{70, 0}), "above the slanted top edge")

	lo, hi := q.Bounds()
	assert.Equal(t, Point{0, -64}, lo)
	assert.Equal(t, Point{80, 256}, hi)
}

func TestRender(t *testing.T) {
	s := newScreen(t, 80, 24)
	r, err := NewRenderer(s)
	require.NoError(t, err)

	frame := game.Frame{
		Facing: maze.South,
		Slices: []game.Slice{
			{Depth: 0, Size: 80, Shapes: maze.ShapeSet(0).With(maze.CenterWall)},
		},
	}
	require.NoError(t, r.Render(frame))

	assert.Equal(t, shades[0], runeAt(s, 50, 12), "centre wall is filled")
	assert.Equal(t, ' ', runeAt(s, 2, 12), "no side wall drawn")
	assert.Equal(t, '│', runeAt(s, 20, 12), "centre wall outline")

	frame.Slices[0].Shapes = frame.Slices[0].Shapes.With(maze.LeftWall)
	require.NoError(t, r.Render(frame))
	assert.Equal(t, shades[0], runeAt(s, 5, 12), "left wall is filled")
}

func TestRenderFarToNear(t *testing.T) {
	s := newScreen(t, 80, 24)
	r, err := NewRenderer(s)
	require.NoError(t, err)

	frame := game.Frame{Slices: []game.Slice{
		{Depth: 0, Size: 80, Shapes: maze.ShapeSet(0).With(maze.LeftWall)},
		{Depth: 1, Size: 40, Shapes: maze.ShapeSet(0).With(maze.CenterWall)},
	}}
	require.NoError(t, r.Render(frame))

	assert.Equal(t, shades[1], runeAt(s, 40, 12), "far wall keeps its shade")
	assert.Equal(t, shades[0], runeAt(s, 5, 12))
}

func TestRenderLadder(t *testing.T) {
	s := newScreen(t, 80, 24)
	r, err := NewRenderer(s)
	require.NoError(t, err)

	frame := game.Frame{Slices: []game.Slice{
		{Size: 80, Shapes: maze.ShapeSet(0).With(maze.CenterWall).With(maze.Ladder)},
	}}
	require.NoError(t, r.Render(frame))

	var found bool
	for y := 0; y < 24; y++ {
		for x := 0; x < 80; x++ {
			if runeAt(s, x, y) == '║' {
				found = true
			}
		}
	}
	assert.True(t, found, "ladder rails are drawn")
}

func TestShowMessage(t *testing.T) {
	s := newScreen(t, 20, 5)
	r, err := NewRenderer(s)
	require.NoError(t, err)

	require.NoError(t, r.ShowMessage(game.BlockedMessage))

	var row strings.Builder
	for x := 0; x < 20; x++ {
		row.WriteRune(runeAt(s, x, 4))
	}
	assert.Contains(t, row.String(), "Ouch!")

	require.NoError(t, r.Render(game.Frame{}))
	assert.Equal(t, ' ', runeAt(s, 10, 4), "render clears the message")
}

func TestNewRendererNil(t *testing.T) {
	_, err := NewRenderer(nil)
	assert.ErrorIs(t, err, ErrNilScreen)
}

func TestCommandForKey(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		cmd  game.Command
		ok   bool
	}{
		{"left arrow", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), game.CommandLeft, true},
		{"right arrow", tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), game.CommandRight, true},
		{"up arrow", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), game.CommandForward, true},
		{"down arrow", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), game.CommandBackward, true},
		{"space", tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), game.CommandClimb, true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), game.CommandQuit, true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), game.CommandQuit, true},
		{"vi k", tcell.NewEventKey(tcell.KeyRune, 'k', tcell.ModNone), game.CommandForward, true},
		{"unbound", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := CommandForKey(tt.ev)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.cmd, cmd)
		})
	}
}

type scriptedEvents struct {
	events []tcell.Event
}

func (s *scriptedEvents) PollEvent() tcell.Event {
	if len(s.events) == 0 {
		return nil
	}
	ev := s.events[0]
	s.events = s.events[1:]
	return ev
}

func TestPump(t *testing.T) {
	src := &scriptedEvents{events: []tcell.Event{
		tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone),
		tcell.NewEventResize(100, 40),
		tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone),
	}}
	commands := make(chan game.Command, 8)

	Pump(context.Background(), src, commands)

	var got []game.Command
	for cmd := range commands {
		got = append(got, cmd)
	}
	assert.Equal(t, []game.Command{game.CommandForward, game.CommandRedraw, game.CommandClimb}, got)
}

func TestPumpCancelled(t *testing.T) {
	src := &scriptedEvents{events: []tcell.Event{
		tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone),
	}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	commands := make(chan game.Command)
	Pump(ctx, src, commands)

	_, open := <-commands
	assert.False(t, open)
}
