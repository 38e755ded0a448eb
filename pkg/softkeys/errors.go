package softkeys

import "errors"

var (
	ErrNoPlainState   = errors.New("key has no plain state")
	ErrInvalidWidth   = errors.New("key width must be positive")
	ErrUnknownCommand = errors.New("unknown key command")
	ErrEmptyLayout    = errors.New("layout has no rows")
)
