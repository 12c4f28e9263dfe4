package input

import (
	"fmt"

	"github.com/gorilla/schema"

	"github.com/vancomm/minesweeper/internal/mines"
)

type NewGameDTO struct {
	Width     int `schema:"width"`
	Height    int `schema:"height"`
	BombCount int `schema:"bombs"`
}

// ParseGameParams decodes new game parameters. Keys missing from src keep
// their value from defaults; unknown keys are an error. The result is not
// validated, mines.NewGame does that.
func ParseGameParams(src map[string][]string, defaults mines.GameParams) (mines.GameParams, error) {
	dec := schema.NewDecoder()
	dto := NewGameDTO(defaults)
	if err := dec.Decode(&dto, src); err != nil {
		return defaults, fmt.Errorf("%w: %w", ErrBadArguments, err)
	}
	return mines.GameParams(dto), nil
}
