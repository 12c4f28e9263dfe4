package mines

import (
	"log/slog"
	"math/rand/v2"
	"os"
	"testing"

	"github.com/lmittmann/tint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Log = slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:   slog.LevelWarn,
		NoColor: true,
	}))
	os.Exit(m.Run())
}

// scripted is a Source that hands out a fixed sequence of draws.
type scripted struct {
	t     *testing.T
	draws []int
}

func (s *scripted) IntN(n int) int {
	require.NotEmpty(s.t, s.draws, "source exhausted")
	v := s.draws[0]
	s.draws = s.draws[1:]
	require.Less(s.t, v, n)
	return v
}

// layout starts a game with bombs exactly at the given points.
func layout(t *testing.T, width, height int, bombs ...Point) *GameState {
	t.Helper()
	src := &scripted{t: t}
	for _, b := range bombs {
		src.draws = append(src.draws, b.Y*width+b.X)
	}
	g, err := NewGame(GameParams{width, height, len(bombs)}, src)
	require.NoError(t, err)
	require.Empty(t, src.draws)
	return g
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		params GameParams
		ok     bool
	}{
		{"1x1(0)", GameParams{1, 1, 0}, true},
		{"9x9(10)", GameParams{9, 9, 10}, true},
		{"5x5(24)", GameParams{5, 5, 24}, true},
		{"5x5(25)", GameParams{5, 5, 25}, false},
		{"5x5(26)", GameParams{5, 5, 26}, false},
		{"0x5(1)", GameParams{0, 5, 1}, false},
		{"5x0(0)", GameParams{5, 0, 0}, false},
		{"-3x5(0)", GameParams{-3, 5, 0}, false},
		{"5x5(-1)", GameParams{5, 5, -1}, false},
		{"huge", GameParams{1 << 20, 1 << 20, 1}, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := test.params.Validate()
			if test.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
			}
		})
	}
}

func TestNewGameInvalidConfiguration(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	g, err := NewGame(GameParams{5, 5, 25}, r)
	require.ErrorIs(t, err, ErrInvalidConfiguration)
	require.Nil(t, g)
}

func TestNewGameNeighborCounts(t *testing.T) {
	t.Parallel()

	tests := []GameParams{
		{1, 1, 0},
		{2, 1, 1},
		{3, 7, 20},
		{5, 5, 24},
		{9, 9, 10},
		{9, 9, 35},
		{16, 16, 40},
		{30, 16, 99},
		{30, 16, 170},
	}

	for _, params := range tests {
		t.Run(params.String(), func(t *testing.T) {
			t.Parallel()
			r := rand.New(rand.NewPCG(1, 2))
			for range 20 {
				g, err := NewGame(params, r)
				require.NoError(t, err)

				bombs := 0
				for y := range params.Height {
					for x := range params.Width {
						assert.Equal(t, Hidden, g.Visibility(x, y))
						if g.Value(x, y) == Bomb {
							bombs++
							continue
						}
						want := 0
						for dy := -1; dy <= 1; dy++ {
							for dx := -1; dx <= 1; dx++ {
								xx, yy := x+dx, y+dy
								if xx >= 0 && xx < params.Width &&
									yy >= 0 && yy < params.Height &&
									g.Value(xx, yy) == Bomb {
									want++
								}
							}
						}
						require.Equal(t, Cell(want), g.Value(x, y),
							"count at %d:%d", x, y)
					}
				}
				require.Equal(t, params.BombCount, bombs)
				require.Len(t, g.Bombs(), params.BombCount)
				require.Equal(t, InProgress, g.Status())
				require.Equal(t, params.BombCount, g.BombsRemaining())
				require.Zero(t, g.RevealedCount())
			}
		})
	}
}

func TestLayBombsResamplesCollisions(t *testing.T) {
	src := &scripted{t: t, draws: []int{4, 4, 4, 0, 4, 8}}
	g, err := NewGame(GameParams{3, 3, 3}, src)
	require.NoError(t, err)
	require.Empty(t, src.draws)
	assert.Equal(t, []Point{{0, 0}, {1, 1}, {2, 2}}, g.Bombs())
	assert.Equal(t, Cell(2), g.Value(1, 0))
	assert.Equal(t, Cell(1), g.Value(2, 0))
	assert.Equal(t, Cell(2), g.Value(0, 1))
}

func TestNeighborsAtEdges(t *testing.T) {
	p := GameParams{Width: 4, Height: 3}
	tests := []struct {
		i    int
		want []int
	}{
		{0, []int{1, 4, 5}},
		{3, []int{2, 6, 7}},
		{5, []int{0, 1, 2, 4, 6, 8, 9, 10}},
		{11, []int{6, 7, 10}},
	}
	for _, test := range tests {
		var got []int
		for j := range p.neighbors(test.i) {
			got = append(got, j)
		}
		assert.Equal(t, test.want, got, "neighbors of %d", test.i)
	}
}
