package game

import (
	"context"
	"errors"

	"github.com/beka-birhanu/vinom-maze/maze"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// BlockedMessage is shown when a step runs into a wall.
const BlockedMessage = "Ouch!"

// Result summarises one processed command.
type Result struct {
	Status  Status // player status after the command, before it is reset
	Solved  bool   // the player stands on the exit
	Escaped bool   // the player climbed out through the exit
	Quit    bool   // the walk was abandoned
}

// Done reports whether the walk is over.
func (r Result) Done() bool {
	return r.Escaped || r.Quit
}

// SessionConfig holds the collaborators of a walk.
type SessionConfig struct {
	Maze        Maze
	Facing      maze.Direction
	Renderer    Renderer
	Sound       SoundPlayer // optional
	Logger      zerolog.Logger
	DrawingSize float64 // base drawing size, DefaultDrawingSize when zero
}

// Session is one traversal of a maze by a single player. Commands are
// processed one at a time: a command's state change, projection and drawing
// complete before the next command is read.
type Session struct {
	ID       uuid.UUID
	maze     Maze
	player   *Player
	renderer Renderer
	sound    SoundPlayer
	logger   zerolog.Logger
	size     float64
}

// NewSession places a player on the maze entry and prepares a walk.
func NewSession(cfg SessionConfig) (*Session, error) {
	if cfg.Renderer == nil {
		return nil, ErrNilRenderer
	}

	player, err := NewPlayer(cfg.Maze, cfg.Facing)
	if err != nil {
		return nil, err
	}

	size := cfg.DrawingSize
	if size <= 0 {
		size = DefaultDrawingSize
	}

	id := uuid.New()
	return &Session{
		ID:       id,
		maze:     cfg.Maze,
		player:   player,
		renderer: cfg.Renderer,
		sound:    cfg.Sound,
		logger:   cfg.Logger.With().Str("session", id.String()).Logger(),
		size:     size,
	}, nil
}

// Player returns the walking player.
func (s *Session) Player() *Player {
	return s.player
}

// Run draws the initial view and processes commands until the player quits,
// escapes, the channel closes or ctx is cancelled.
func (s *Session) Run(ctx context.Context, commands <-chan Command) (Result, error) {
	s.logger.Info().
		Int("x", s.player.Position().X).
		Str("facing", s.player.Direction().String()).
		Msg("Welcome to the maze")

	if err := s.flush(false); err != nil {
		return Result{}, err
	}

	for {
		select {
		case <-ctx.Done():
			return Result{Quit: true}, ctx.Err()
		case cmd, ok := <-commands:
			if !ok {
				return Result{Quit: true}, nil
			}

			res, err := s.Step(cmd)
			if errors.Is(err, ErrInvalidCommand) {
				s.logger.Warn().Err(err).Msg("Ignoring command")
				continue
			}
			if err != nil {
				return res, err
			}
			if res.Done() {
				return res, nil
			}
		}
	}
}

// Step applies one command, draws the result when something changed and
// resets the player status to StatusIdle.
func (s *Session) Step(cmd Command) (Result, error) {
	force := false

	switch cmd {
	case CommandQuit:
		s.logger.Info().Msg("Walk abandoned")
		return Result{Status: s.player.Status(), Solved: s.player.Solved(), Quit: true}, nil
	case CommandClimb:
		if s.player.Solved() {
			s.logger.Info().Msg("Climbed out of the maze")
			return Result{Status: s.player.Status(), Solved: true, Escaped: true}, nil
		}
	case CommandRedraw:
		force = true
	default:
		if _, err := s.player.Apply(cmd); err != nil {
			return Result{Status: s.player.Status(), Solved: s.player.Solved()}, err
		}
	}

	res := Result{Status: s.player.Status(), Solved: s.player.Solved()}
	pos := s.player.Position()
	s.logger.Debug().
		Stringer("command", cmd).
		Stringer("status", res.Status).
		Int("x", pos.X).
		Int("y", pos.Y).
		Stringer("facing", s.player.Direction()).
		Msg("Step")

	switch {
	case res.Status == StatusBlocked && !res.Solved:
		s.logger.Info().Int("x", pos.X).Int("y", pos.Y).Msg("Bumped into a wall")
		if s.sound != nil {
			s.sound.PlayBump()
		}
		if err := s.renderer.ShowMessage(BlockedMessage); err != nil {
			return res, err
		}
	case res.Status == StatusMoved && res.Solved:
		s.logger.Info().Int("x", pos.X).Int("y", pos.Y).Msg("Exit found")
	}

	return res, s.flush(force)
}

// flush re-projects and draws the corridor when the player state is dirty.
func (s *Session) flush(force bool) error {
	defer s.player.ResetStatus()

	switch s.player.Status() {
	case StatusInit, StatusMoved, StatusRotated:
	default:
		if !force {
			return nil
		}
	}

	return s.renderer.Render(Project(s.maze, s.player, s.size))
}
