package render

import "github.com/vancomm/minesweeper/internal/mines"

// Tile indexes the 4x4 sprite sheet of the tile display. Tiles 0 to 8 are
// the neighbor counts; 13, the question mark sprite, is never drawn.
type Tile uint8

const (
	TileZero     Tile = 0
	TileNew      Tile = 9
	TileExploded Tile = 10
	TileFlag     Tile = 11
	TileNotABomb Tile = 12
	TileBomb     Tile = 14
)

func (t Tile) IsCount() bool {
	return t <= 8
}

// Tiles maps every cell of b to a sprite, row by row.
//
// While the game runs only what the player knows is shown. A lost game also
// shows the exploded bomb, the remaining bombs and crossed-out wrong flags;
// a won game flags every bomb. revealAll additionally shows the counts of
// still hidden safe cells.
func Tiles(b Board, revealAll bool) []Tile {
	width, height := b.Size()
	status := b.Status()
	exploded, hasExploded := b.Exploded()

	tiles := make([]Tile, 0, width*height)
	for y := range height {
		for x := range width {
			tiles = append(tiles, tile(b, x, y, status, revealAll,
				hasExploded && exploded == mines.Point{X: x, Y: y}))
		}
	}
	return tiles
}

func tile(
	b Board, x, y int, status mines.Status, revealAll, exploded bool,
) Tile {
	value := b.Value(x, y)
	visibility := b.Visibility(x, y)

	if exploded {
		return TileExploded
	}

	if value == mines.Bomb {
		switch {
		case status == mines.Won:
			return TileFlag
		case visibility == mines.Flagged:
			return TileFlag
		case status == mines.Lost || revealAll:
			return TileBomb
		default:
			return TileNew
		}
	}

	switch {
	case visibility == mines.Flagged && status == mines.Lost:
		return TileNotABomb
	case visibility == mines.Flagged:
		return TileFlag
	case visibility == mines.Revealed || revealAll:
		return Tile(value)
	default:
		return TileNew
	}
}
