package mines

import "strconv"

// Cell is the true content of a square: either a Bomb or the number of
// bombs among its neighbors (0 to 8).
type Cell int8

const Bomb Cell = -1

func (c Cell) String() string {
	if c == Bomb {
		return "*"
	}
	return strconv.Itoa(int(c))
}

// Visibility is what the player knows about a square.
type Visibility uint8

const (
	Hidden Visibility = iota
	Flagged
	Revealed
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Flagged:
		return "flagged"
	case Revealed:
		return "revealed"
	default:
		return "Visibility(" + strconv.Itoa(int(v)) + ")"
	}
}

type Status uint8

const (
	InProgress Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in progress"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "Status(" + strconv.Itoa(int(s)) + ")"
	}
}

// Over reports whether s is terminal.
func (s Status) Over() bool {
	return s == Won || s == Lost
}

// Outcome is the result of a single reveal.
type Outcome uint8

const (
	Safe Outcome = iota
	BombHit
)

func (o Outcome) String() string {
	if o == BombHit {
		return "bomb hit"
	}
	return "safe"
}

type Point struct {
	X, Y int
}
