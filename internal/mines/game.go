package mines

import (
	"fmt"
	"log/slog"
)

var Log *slog.Logger = slog.Default()

// GameState is one game of minesweeper. It owns the bomb layout and
// everything the player has done to it. A GameState is not safe for
// concurrent use; independent games share nothing.
type GameState struct {
	params     GameParams
	status     Status
	cells      []Cell       /* real layout */
	visibility []Visibility /* player knowledge */
	revealed   int
	flagged    int
	exploded   int
}

// NewGame lays out a fresh game described by params, drawing bomb positions
// from src.
func NewGame(params GameParams, src Source) (*GameState, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	state := &GameState{
		params:     params,
		cells:      params.layBombs(src),
		visibility: make([]Visibility, params.area()),
		exploded:   -1,
	}
	Log.Debug("new game", "params", params.String())
	return state, nil
}

// locate returns the index of (x, y) if a move may be made there.
func (s *GameState) locate(x, y int) (int, error) {
	if !s.params.InBounds(x, y) {
		return 0, fmt.Errorf("%w: (%d, %d) is outside the %dx%d grid",
			ErrOutOfBounds, x, y, s.params.Width, s.params.Height)
	}
	if s.status.Over() {
		return 0, fmt.Errorf("%w: game %s", ErrGameOver, s.status)
	}
	return y*s.params.Width + x, nil
}

func (s *GameState) index(x, y int) int {
	if !s.params.InBounds(x, y) {
		panic(fmt.Sprintf("mines: (%d, %d) is outside the %dx%d grid",
			x, y, s.params.Width, s.params.Height))
	}
	return y*s.params.Width + x
}

func (s *GameState) point(i int) Point {
	return Point{X: i % s.params.Width, Y: i / s.params.Width}
}

// Reveal opens the cell at (x, y). Opening a cell with no neighboring bombs
// opens its whole zero-valued region and the numbered cells bordering it.
// Revealing an already revealed cell does nothing. Hitting a bomb loses the
// game; the rest of the board stays as it was.
func (s *GameState) Reveal(x, y int) (Outcome, error) {
	i, err := s.locate(x, y)
	if err != nil {
		return Safe, err
	}
	if s.visibility[i] == Revealed {
		return Safe, nil
	}

	s.uncover(i)

	if s.cells[i] == Bomb {
		s.status = Lost
		s.exploded = i
		Log.Debug("game lost", "params", s.params.String(), "x", x, "y", y)
		return BombHit, nil
	}

	if s.cells[i] == 0 {
		s.flood(i)
	}

	if s.revealed == s.params.area()-s.params.BombCount {
		s.status = Won
		Log.Debug("game won", "params", s.params.String(), "flagged", s.flagged)
	}

	return Safe, nil
}

func (s *GameState) uncover(i int) {
	if s.visibility[i] == Flagged {
		s.flagged--
	}
	s.visibility[i] = Revealed
	s.revealed++
}

// flood opens the region around the zero cell start. Zero cells go on an
// explicit stack so that board size does not bound call depth.
func (s *GameState) flood(start int) {
	stack := []int{start}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for j := range s.params.neighbors(i) {
			if s.visibility[j] == Revealed || s.cells[j] == Bomb {
				continue
			}
			s.uncover(j)
			if s.cells[j] == 0 {
				stack = append(stack, j)
			}
		}
	}
}

// ToggleFlag flags a hidden cell or unflags a flagged one. Flagging a
// revealed cell is a no-op.
func (s *GameState) ToggleFlag(x, y int) error {
	i, err := s.locate(x, y)
	if err != nil {
		return err
	}
	switch s.visibility[i] {
	case Hidden:
		s.visibility[i] = Flagged
		s.flagged++
	case Flagged:
		s.visibility[i] = Hidden
		s.flagged--
	}
	return nil
}

// Chord reveals every hidden neighbor of a revealed numbered cell once the
// player has flagged as many neighbors as the number says. Otherwise it does
// nothing.
func (s *GameState) Chord(x, y int) (Outcome, error) {
	i, err := s.locate(x, y)
	if err != nil {
		return Safe, err
	}
	if s.visibility[i] != Revealed || s.cells[i] <= 0 {
		return Safe, nil
	}

	flags := 0
	hidden := make([]int, 0, 8)
	for j := range s.params.neighbors(i) {
		switch s.visibility[j] {
		case Flagged:
			flags++
		case Hidden:
			hidden = append(hidden, j)
		}
	}
	if flags != int(s.cells[i]) {
		return Safe, nil
	}

	for _, j := range hidden {
		p := s.point(j)
		outcome, err := s.Reveal(p.X, p.Y)
		if err != nil {
			return outcome, err
		}
		if s.status.Over() {
			return outcome, nil
		}
	}
	return Safe, nil
}

func (s *GameState) Params() GameParams {
	return s.params
}

func (s *GameState) Size() (width, height int) {
	return s.params.Width, s.params.Height
}

func (s *GameState) Status() Status {
	return s.status
}

// Visibility reports what the player sees at (x, y), which must be inside
// the grid.
func (s *GameState) Visibility(x, y int) Visibility {
	return s.visibility[s.index(x, y)]
}

// Value reports the true content of (x, y) regardless of visibility, for
// game-over views. (x, y) must be inside the grid.
func (s *GameState) Value(x, y int) Cell {
	return s.cells[s.index(x, y)]
}

// Revealed lists the revealed cells in row-major order.
func (s *GameState) Revealed() []Point {
	points := make([]Point, 0, s.revealed)
	for i, v := range s.visibility {
		if v == Revealed {
			points = append(points, s.point(i))
		}
	}
	return points
}

func (s *GameState) RevealedCount() int {
	return s.revealed
}

func (s *GameState) Flagged() int {
	return s.flagged
}

// BombsRemaining is the bomb count minus the number of flags placed. It goes
// negative when the player places more flags than there are bombs.
func (s *GameState) BombsRemaining() int {
	return s.params.BombCount - s.flagged
}

// Exploded returns the bomb that lost the game.
func (s *GameState) Exploded() (Point, bool) {
	if s.exploded < 0 {
		return Point{}, false
	}
	return s.point(s.exploded), true
}

// Bombs lists the bomb cells in row-major order.
func (s *GameState) Bombs() []Point {
	points := make([]Point, 0, s.params.BombCount)
	for i, c := range s.cells {
		if c == Bomb {
			points = append(points, s.point(i))
		}
	}
	return points
}
