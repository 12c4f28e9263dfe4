package mines

import (
	"fmt"
	"math"
)

// Source draws bomb positions. *rand.Rand from math/rand/v2 satisfies it.
type Source interface {
	IntN(n int) int
}

type GameParams struct {
	Width, Height, BombCount int
}

// String formats p as WxH(bombs).
func (p GameParams) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Width, p.Height, p.BombCount)
}

func (p GameParams) Validate() error {
	switch {
	case p.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d",
			ErrInvalidConfiguration, p.Width)
	case p.Height <= 0:
		return fmt.Errorf("%w: height must be positive, got %d",
			ErrInvalidConfiguration, p.Height)
	case p.Width > math.MaxInt32/p.Height:
		return fmt.Errorf("%w: %dx%d grid is too large",
			ErrInvalidConfiguration, p.Width, p.Height)
	case p.BombCount < 0:
		return fmt.Errorf("%w: bomb count must not be negative, got %d",
			ErrInvalidConfiguration, p.BombCount)
	case p.BombCount >= p.Width*p.Height:
		return fmt.Errorf("%w: %d bombs leave no safe cell on a %dx%d grid",
			ErrInvalidConfiguration, p.BombCount, p.Width, p.Height)
	}
	return nil
}

func (p GameParams) InBounds(x, y int) bool {
	return 0 <= x && x < p.Width && 0 <= y && y < p.Height
}

func (p GameParams) area() int {
	return p.Width * p.Height
}

// layBombs places p.BombCount bombs on distinct cells, drawing a fresh
// position whenever a draw lands on a bomb, then numbers every other cell.
func (p GameParams) layBombs(src Source) []Cell {
	cells := make([]Cell, p.area())

	for placed := 0; placed < p.BombCount; {
		i := src.IntN(len(cells))
		if cells[i] == Bomb {
			continue
		}
		cells[i] = Bomb
		placed++
	}

	for i := range cells {
		if cells[i] == Bomb {
			continue
		}
		var n Cell
		for j := range p.neighbors(i) {
			if cells[j] == Bomb {
				n++
			}
		}
		cells[i] = n
	}

	return cells
}
