package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/vancomm/minesweeper/internal/mines"
)

// DefaultBoard is the 10x10 board with 10 bombs.
var DefaultBoard = mines.GameParams{Width: 10, Height: 10, BombCount: 10}

func lookupInt(key string, fallback int) (int, error) {
	s, ok := os.LookupEnv(key)
	if !ok || s == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %s to int: %w", key, err)
	}
	return v, nil
}

// Board reads the starting board from MINES_WIDTH, MINES_HEIGHT and
// MINES_BOMBS, falling back to DefaultBoard for unset variables.
func Board() (mines.GameParams, error) {
	var (
		params = DefaultBoard
		err    error
	)
	if params.Width, err = lookupInt("MINES_WIDTH", params.Width); err != nil {
		return params, err
	}
	if params.Height, err = lookupInt("MINES_HEIGHT", params.Height); err != nil {
		return params, err
	}
	if params.BombCount, err = lookupInt("MINES_BOMBS", params.BombCount); err != nil {
		return params, err
	}
	if err := params.Validate(); err != nil {
		return params, fmt.Errorf("bad board in environment: %w", err)
	}
	return params, nil
}
