package input

import (
	"time"

	"github.com/vancomm/minesweeper/internal/mines"
)

// Rect is an axis-aligned hit box in pointer coordinates.
type Rect struct {
	X, Y, Width, Height int
}

func (r Rect) Contains(px, py int) bool {
	return r.X <= px && px < r.X+r.Width && r.Y <= py && py < r.Y+r.Height
}

// Layout places a tile grid in pointer coordinates.
type Layout struct {
	OriginX, OriginY      int
	TileWidth, TileHeight int
	Cols, Rows            int
}

// PyPortal is the 480x320 touchscreen layout: a 20x12 board of 20 pixel
// tiles drawn at (40, 60), with the New Game button in the top left corner.
var (
	PyPortal = Layout{
		OriginX: 40, OriginY: 60,
		TileWidth: 20, TileHeight: 20,
		Cols: 20, Rows: 12,
	}
	PyPortalNewGameButton = Rect{X: 42, Y: 10, Width: 110, Height: 35}
)

func (l Layout) Bounds() Rect {
	return Rect{l.OriginX, l.OriginY, l.Cols * l.TileWidth, l.Rows * l.TileHeight}
}

// Locate finds the tile under a pointer position.
func (l Layout) Locate(px, py int) (mines.Point, bool) {
	if l.TileWidth <= 0 || l.TileHeight <= 0 || !l.Bounds().Contains(px, py) {
		return mines.Point{}, false
	}
	return mines.Point{
		X: (px - l.OriginX) / l.TileWidth,
		Y: (py - l.OriginY) / l.TileHeight,
	}, true
}

// DefaultDebounce is how long a touch is held off after the previous one.
const DefaultDebounce = 200 * time.Millisecond

// Debouncer drops pointer presses that follow an accepted press too closely.
type Debouncer struct {
	Interval time.Duration
	last     time.Time
}

func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{Interval: interval}
}

// Allow reports whether a press at now should be handled, and if so
// remembers it.
func (d *Debouncer) Allow(now time.Time) bool {
	if !d.last.IsZero() && now.Sub(d.last) < d.Interval {
		return false
	}
	d.last = now
	return true
}

// Tap picks the move for a single-button press on a cell the player sees as
// v: a hidden cell gets flagged, a flagged cell gets revealed and a revealed
// cell gets chorded.
func Tap(v mines.Visibility) Action {
	switch v {
	case mines.Hidden:
		return Flag
	case mines.Flagged:
		return Reveal
	default:
		return Chord
	}
}
