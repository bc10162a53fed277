package game

import (
	"fmt"
	"strings"

	"github.com/beka-birhanu/vinom-maze/maze"
)

// Command is one input event of a walk.
type Command uint8

const (
	CommandLeft     Command = iota + 1 // turn left
	CommandRight                       // turn right
	CommandForward                     // step forward
	CommandBackward                    // turn around
	CommandClimb                       // climb the ladder out of the exit
	CommandRedraw                      // re-project without changing state
	CommandQuit                        // abandon the walk
)

var commandNames = map[Command]string{
	CommandLeft:     "left",
	CommandRight:    "right",
	CommandForward:  "forward",
	CommandBackward: "backward",
	CommandClimb:    "climb",
	CommandRedraw:   "redraw",
	CommandQuit:     "quit",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// ParseCommand maps an input token to a Command. Unknown tokens are rejected
// as invalid directions.
func ParseCommand(token string) (Command, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "left", "l":
		return CommandLeft, nil
	case "right", "r":
		return CommandRight, nil
	case "up", "forward", "f":
		return CommandForward, nil
	case "down", "backward", "back", "b":
		return CommandBackward, nil
	case "climb", "space":
		return CommandClimb, nil
	case "redraw":
		return CommandRedraw, nil
	case "quit", "q":
		return CommandQuit, nil
	}
	return 0, fmt.Errorf("%w: %w: %q", ErrInvalidCommand, maze.ErrInvalidDirection, token)
}
