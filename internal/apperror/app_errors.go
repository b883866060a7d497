package apperror

import "errors"

var (
	ErrGameFinished = errors.New("game is already finished")
	ErrOutOfBounds  = errors.New("cell is out of bounds")
	ErrInputClosed  = errors.New("input is closed")
)
