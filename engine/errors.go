package engine

import "errors"

// CommandError is a player-facing rule violation ("you aren't carrying
// that", "it's locked"). The dispatcher catches it, narrates the message,
// and ends the turn without advancing the game clock. Anything else that
// escapes a command is a programming error and propagates.
type CommandError struct {
	Message string
}

func (e *CommandError) Error() string { return e.Message }

// ErrCommand builds a CommandError.
func ErrCommand(msg string) error { return &CommandError{Message: msg} }

// asCommandError unwraps err to a CommandError if it is one.
func asCommandError(err error) (*CommandError, bool) {
	var ce *CommandError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}
