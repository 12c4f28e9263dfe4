package mines

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid game configuration")
	ErrOutOfBounds          = errors.New("cell out of bounds")
	ErrGameOver             = errors.New("game is over")
)
