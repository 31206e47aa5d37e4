package tilewe

import "errors"

var (
	ErrInvalidPlayerCount = errors.New("player count must be between 1 and 4")
	ErrPlayerOutOfRange   = errors.New("player index out of range")
	ErrMalformedMove      = errors.New("malformed move")
	ErrIllegalMove        = errors.New("illegal move")
	ErrGameFinished       = errors.New("game already finished")
	ErrEmptyHistory       = errors.New("no move to take back")
	ErrBadNotation        = errors.New("bad notation")
)
