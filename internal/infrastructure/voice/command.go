// Package voice carries recognized spoken commands from a background
// recognition worker to the game loop.
package voice

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCommand is returned for tokens outside the vocabulary
var ErrUnknownCommand = errors.New("unknown voice command")

// Command is one keyword of the recognizer vocabulary
type Command string

const (
	CommandNo    Command = "no"
	CommandRight Command = "right"
	CommandYes   Command = "yes"
	CommandUp    Command = "up"
	CommandDown  Command = "down"
	CommandLeft  Command = "left"
	CommandGo    Command = "go"
	CommandStop  Command = "stop"
)

// Vocabulary lists the classifier labels in model output order
var Vocabulary = []Command{
	CommandNo,
	CommandRight,
	CommandYes,
	CommandUp,
	CommandDown,
	CommandLeft,
	CommandGo,
	CommandStop,
}

// ParseCommand converts a token into a vocabulary command
func ParseCommand(s string) (Command, error) {
	token := Command(strings.ToLower(strings.TrimSpace(s)))
	for _, c := range Vocabulary {
		if c == token {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCommand, s)
}

// Forwarded reports whether the worker hands the command to the game loop.
// Down is recognized but never forwarded, so it cannot displace the
// command already in the bridge.
func (c Command) Forwarded() bool {
	switch c {
	case CommandUp, CommandLeft, CommandRight, CommandStop:
		return true
	default:
		return false
	}
}

func (c Command) String() string {
	return string(c)
}
