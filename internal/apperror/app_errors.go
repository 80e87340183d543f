package apperror

import "errors"

var (
	ErrMalformedDimensions = errors.New("malformed dimensions line")
	ErrUnwinnableGame      = errors.New("game cannot be won with these dimensions")
	ErrMalformedMove       = errors.New("malformed move line")
	ErrIllegalColumn       = errors.New("column is outside the grid")
	ErrIllegalRow          = errors.New("column is already full")
	ErrIllegalContinuation = errors.New("move after the game was won")
	ErrSourceUnavailable   = errors.New("move source is unavailable")
)
