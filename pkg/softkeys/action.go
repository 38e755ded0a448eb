package softkeys

import (
	"fmt"
	"strings"
)

// Action is what a key does when tapped: either Text or a Command.
// The set is closed; only this package implements it.
type Action interface {
	isAction()
}

// Text is a literal fragment handed to the handler's OnInput.
type Text string

func (Text) isAction() {}

// Command is a special key that mutates keyboard state or triggers a
// non-text effect.
type Command int

const (
	CommandBackspace Command = iota
	CommandCapsLock
	CommandShift
	CommandAlt
	CommandClose
	CommandBottom
)

var commandNames = map[Command]string{
	CommandBackspace: "backspace",
	CommandCapsLock:  "capslock",
	CommandShift:     "shift",
	CommandAlt:       "alt",
	CommandClose:     "close",
	CommandBottom:    "bottom",
}

func (Command) isAction() {}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("command(%d)", int(c))
}

// ParseCommand is the inverse of Command.String, case-insensitive.
func ParseCommand(name string) (Command, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range commandNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
}

// IsCommand reports whether a is the given command.
func IsCommand(a Action, c Command) bool {
	cmd, ok := a.(Command)
	return ok && cmd == c
}
