package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	frames   []Frame
	messages []string
	err      error
}

func (r *recordingRenderer) Render(frame Frame) error {
	r.frames = append(r.frames, frame)
	return r.err
}

func (r *recordingRenderer) ShowMessage(msg string) error {
	r.messages = append(r.messages, msg)
	return nil
}

type countingSound struct {
	bumps int
}

func (s *countingSound) PlayBump() {
	s.bumps++
}

func newTestSession(t *testing.T, m Maze) (*Session, *recordingRenderer, *countingSound) {
	t.Helper()
	renderer := &recordingRenderer{}
	sound := &countingSound{}
	s, err := NewSession(SessionConfig{
		Maze:     m,
		Facing:   maze.South,
		Renderer: renderer,
		Sound:    sound,
		Logger:   zerolog.Nop(),
	})
	require.NoError(t, err)
	return s, renderer, sound
}

func TestNewSession(t *testing.T) {
	m := parseMaze(t, "#s#", "#.#", "#e#")

	_, err := NewSession(SessionConfig{Maze: m, Facing: maze.South})
	assert.ErrorIs(t, err, ErrNilRenderer)

	_, err = NewSession(SessionConfig{Facing: maze.South, Renderer: &recordingRenderer{}})
	assert.ErrorIs(t, err, ErrNilMaze)

	s, _, _ := newTestSession(t, m)
	assert.NotEqual(t, [16]byte{}, [16]byte(s.ID))
	assert.Equal(t, m.Entry(), s.Player().Position())
}

func TestStepRendersOnlyOnChange(t *testing.T) {
	m := parseMaze(t,
		"#s#",
		"#.#",
		"#.#",
		"#e#",
	)
	s, renderer, sound := newTestSession(t, m)

	res, err := s.Step(CommandForward)
	require.NoError(t, err)
	assert.Equal(t, StatusMoved, res.Status)
	assert.Len(t, renderer.frames, 1)
	assert.Equal(t, StatusIdle, s.Player().Status(), "status is reset after drawing")

	res, err = s.Step(CommandLeft)
	require.NoError(t, err)
	assert.Equal(t, StatusRotated, res.Status)
	assert.Len(t, renderer.frames, 2)

	// Facing east into a wall.
	res, err = s.Step(CommandForward)
	require.NoError(t, err)
	assert.Equal(t, StatusBlocked, res.Status)
	assert.Len(t, renderer.frames, 2, "a blocked step does not redraw")
	assert.Equal(t, []string{BlockedMessage}, renderer.messages)
	assert.Equal(t, 1, sound.bumps)

	res, err = s.Step(CommandClimb)
	require.NoError(t, err)
	assert.False(t, res.Done(), "climbing only works on the exit")
	assert.Len(t, renderer.frames, 2)

	_, err = s.Step(CommandRedraw)
	require.NoError(t, err)
	assert.Len(t, renderer.frames, 3)
}

func TestStepToExit(t *testing.T) {
	m := parseMaze(t,
		"#s#",
		"#.#",
		"#e#",
	)
	s, renderer, sound := newTestSession(t, m)

	res, err := s.Step(CommandForward)
	require.NoError(t, err)
	assert.False(t, res.Solved)

	res, err = s.Step(CommandForward)
	require.NoError(t, err)
	assert.Equal(t, StatusMoved, res.Status)
	assert.True(t, res.Solved)
	assert.False(t, res.Done())

	last := renderer.frames[len(renderer.frames)-1]
	assert.True(t, last.Slices[0].Shapes.Has(maze.Ladder))

	// Bumping into the wall below the exit is silent.
	res, err = s.Step(CommandForward)
	require.NoError(t, err)
	assert.Equal(t, StatusBlocked, res.Status)
	assert.Zero(t, sound.bumps)
	assert.Empty(t, renderer.messages)

	res, err = s.Step(CommandClimb)
	require.NoError(t, err)
	assert.True(t, res.Escaped)
	assert.True(t, res.Done())
}

func TestStepQuit(t *testing.T) {
	m := parseMaze(t, "#s#", "#.#", "#e#")
	s, _, _ := newTestSession(t, m)

	res, err := s.Step(CommandQuit)
	require.NoError(t, err)
	assert.True(t, res.Quit)
	assert.True(t, res.Done())
}

func TestStepRendererError(t *testing.T) {
	m := parseMaze(t, "#s#", "#.#", "#e#")
	s, renderer, _ := newTestSession(t, m)
	renderer.err = errors.New("screen gone")

	_, err := s.Step(CommandLeft)
	assert.EqualError(t, err, "screen gone")
	assert.Equal(t, StatusIdle, s.Player().Status())
}

func TestRun(t *testing.T) {
	m := parseMaze(t,
		"#s#",
		"#.#",
		"#e#",
	)

	t.Run("walks out", func(t *testing.T) {
		s, renderer, _ := newTestSession(t, m)
		commands := make(chan Command, 8)
		commands <- CommandForward
		commands <- Command(200) // ignored
		commands <- CommandForward
		commands <- CommandClimb

		res, err := s.Run(context.Background(), commands)
		require.NoError(t, err)
		assert.True(t, res.Escaped)
		assert.Len(t, renderer.frames, 3, "initial view plus two moves")
	})

	t.Run("closed channel", func(t *testing.T) {
		s, _, _ := newTestSession(t, m)
		commands := make(chan Command)
		close(commands)

		res, err := s.Run(context.Background(), commands)
		require.NoError(t, err)
		assert.True(t, res.Quit)
	})

	t.Run("cancelled", func(t *testing.T) {
		s, _, _ := newTestSession(t, m)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
		defer cancel()

		res, err := s.Run(ctx, make(chan Command))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
		assert.True(t, res.Quit)
	})
}
