package terminal

import (
	"context"

	"github.com/beka-birhanu/vinom-maze/game"
	"github.com/gdamore/tcell/v2"
)

// EventSource yields terminal events. PollEvent returns nil once the source
// is finalized.
type EventSource interface {
	PollEvent() tcell.Event
}

// CommandForKey maps a key press to a walk command.
func CommandForKey(ev *tcell.EventKey) (game.Command, bool) {
	switch ev.Key() {
	case tcell.KeyLeft:
		return game.CommandLeft, true
	case tcell.KeyRight:
		return game.CommandRight, true
	case tcell.KeyUp:
		return game.CommandForward, true
	case tcell.KeyDown:
		return game.CommandBackward, true
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.CommandQuit, true
	case tcell.KeyCtrlL:
		return game.CommandRedraw, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case ' ':
			return game.CommandClimb, true
		case 'q', 'Q':
			return game.CommandQuit, true
		case 'h':
			return game.CommandLeft, true
		case 'l':
			return game.CommandRight, true
		case 'k':
			return game.CommandForward, true
		case 'j':
			return game.CommandBackward, true
		}
	}
	return 0, false
}

// Pump reads events from src and forwards the commands they map to until
// src is finalized or ctx is done. A resize asks for a redraw. The commands
// channel is closed on return.
func Pump(ctx context.Context, src EventSource, commands chan<- game.Command) {
	defer close(commands)

	for {
		ev := src.PollEvent()
		if ev == nil {
			return
		}

		var (
			cmd game.Command
			ok  bool
		)
		switch ev := ev.(type) {
		case *tcell.EventKey:
			cmd, ok = CommandForKey(ev)
		case *tcell.EventResize:
			cmd, ok = game.CommandRedraw, true
		}
		if !ok {
			continue
		}

		select {
		case commands <- cmd:
		case <-ctx.Done():
			return
		}
	}
}
