package render

import (
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/mines"
)

type fakeBoard struct {
	width, height int
	cells         []mines.Cell
	visibility    []mines.Visibility
	status        mines.Status
	exploded      *mines.Point
}

func (b *fakeBoard) Size() (int, int) { return b.width, b.height }

func (b *fakeBoard) Visibility(x, y int) mines.Visibility {
	return b.visibility[y*b.width+x]
}

func (b *fakeBoard) Value(x, y int) mines.Cell { return b.cells[y*b.width+x] }

func (b *fakeBoard) Status() mines.Status { return b.status }

func (b *fakeBoard) Exploded() (mines.Point, bool) {
	if b.exploded == nil {
		return mines.Point{}, false
	}
	return *b.exploded, true
}

// smallBoard is 3x2 with a bomb at (1, 0), (0, 0) revealed and (2, 0) flagged.
func smallBoard() *fakeBoard {
	return &fakeBoard{
		width: 3, height: 2,
		cells: []mines.Cell{
			1, mines.Bomb, 1,
			1, 1, 1,
		},
		visibility: []mines.Visibility{
			mines.Revealed, mines.Hidden, mines.Flagged,
			mines.Hidden, mines.Hidden, mines.Hidden,
		},
	}
}

func TestText(t *testing.T) {
	want := strings.Join([]string{
		"   0  1  2",
		"------------",
		"0 |1 |  |F |",
		"1 |  |  |  |",
		"------------",
	}, "\n")
	assert.Equal(t, want, Text(smallBoard(), false))
}

func TestTextRevealAll(t *testing.T) {
	want := strings.Join([]string{
		"   0  1  2",
		"------------",
		"0 |1 |* |1 |",
		"1 |1 |1 |1 |",
		"------------",
	}, "\n")
	assert.Equal(t, want, Text(smallBoard(), true))
}

func TestTextWideBoard(t *testing.T) {
	g, err := mines.NewGame(mines.GameParams{Width: 12, Height: 11, BombCount: 0},
		rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	lines := strings.Split(Text(g, false), "\n")
	require.Len(t, lines, 11+3)
	cells := strings.Repeat("  |", 10) + strings.Repeat("   |", 2)
	assert.Equal(t, "    0  1  2  3  4  5  6  7  8  9  10  11", lines[0])
	assert.Equal(t, " 0 |"+cells, lines[2])
	assert.Equal(t, "10 |"+cells, lines[12])
	assert.Len(t, lines[1], len(lines[2]))
}

func TestTilesInProgress(t *testing.T) {
	b := smallBoard()
	assert.Equal(t, []Tile{
		1, TileNew, TileFlag,
		TileNew, TileNew, TileNew,
	}, Tiles(b, false))
}

func TestTilesLost(t *testing.T) {
	b := smallBoard()
	b.visibility[1] = mines.Revealed
	b.status = mines.Lost
	b.exploded = &mines.Point{X: 1, Y: 0}

	assert.Equal(t, []Tile{
		1, TileExploded, TileNotABomb,
		TileNew, TileNew, TileNew,
	}, Tiles(b, false))

	assert.Equal(t, []Tile{
		1, TileExploded, TileNotABomb,
		1, 1, 1,
	}, Tiles(b, true))
}

func TestTilesLostShowsOtherBombs(t *testing.T) {
	b := &fakeBoard{
		width: 3, height: 1,
		cells:      []mines.Cell{mines.Bomb, 2, mines.Bomb},
		visibility: []mines.Visibility{mines.Flagged, mines.Hidden, mines.Revealed},
		status:     mines.Lost,
		exploded:   &mines.Point{X: 2, Y: 0},
	}
	assert.Equal(t, []Tile{TileFlag, TileNew, TileExploded}, Tiles(b, false))
}

func TestTilesWon(t *testing.T) {
	b := smallBoard()
	for i := range b.visibility {
		if b.cells[i] != mines.Bomb {
			b.visibility[i] = mines.Revealed
		}
	}
	b.status = mines.Won

	assert.Equal(t, []Tile{
		1, TileFlag, 1,
		1, 1, 1,
	}, Tiles(b, false))
}

func TestTileIsCount(t *testing.T) {
	for v := range 9 {
		assert.True(t, Tile(v).IsCount())
	}
	for _, tile := range []Tile{TileNew, TileExploded, TileFlag, TileNotABomb, TileBomb} {
		assert.False(t, tile.IsCount())
	}
}
