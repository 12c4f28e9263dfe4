package config

import (
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/minesweeper/internal/mines"
)

func TestDevelopment(t *testing.T) {
	t.Setenv("DEVELOPMENT", "1")
	assert.True(t, Development())
	t.Setenv("DEVELOPMENT", "0")
	assert.False(t, Development())
}

func TestBoardDefaults(t *testing.T) {
	t.Setenv("MINES_WIDTH", "")
	t.Setenv("MINES_HEIGHT", "")
	t.Setenv("MINES_BOMBS", "")

	params, err := Board()
	require.NoError(t, err)
	assert.Equal(t, DefaultBoard, params)
}

func TestBoardFromEnv(t *testing.T) {
	t.Setenv("MINES_WIDTH", "20")
	t.Setenv("MINES_HEIGHT", "12")
	t.Setenv("MINES_BOMBS", "15")

	params, err := Board()
	require.NoError(t, err)
	assert.Equal(t, mines.GameParams{Width: 20, Height: 12, BombCount: 15}, params)
}

func TestBoardErrors(t *testing.T) {
	t.Setenv("MINES_WIDTH", "ten")
	_, err := Board()
	require.Error(t, err)

	t.Setenv("MINES_WIDTH", "5")
	t.Setenv("MINES_HEIGHT", "5")
	t.Setenv("MINES_BOMBS", "25")
	_, err = Board()
	require.ErrorIs(t, err, mines.ErrInvalidConfiguration)
}

func TestRandSeed(t *testing.T) {
	t.Setenv("MINES_SEED", "1:2")
	r, err := Rand()
	require.NoError(t, err)

	want := rand.New(rand.NewPCG(1, 2))
	for range 10 {
		assert.Equal(t, want.IntN(100), r.IntN(100))
	}

	for _, bad := range []string{"12", "a:2", "1:b"} {
		t.Setenv("MINES_SEED", bad)
		_, err := Rand()
		assert.Error(t, err, bad)
	}

	t.Setenv("MINES_SEED", "")
	r, err = Rand()
	require.NoError(t, err)
	require.NotNil(t, r)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(path, []byte("MINES_LOAD_TEST=from-file\n"), 0o600))

	t.Setenv("MINES_LOAD_TEST", "")
	os.Unsetenv("MINES_LOAD_TEST")
	require.NoError(t, Load(path))
	assert.Equal(t, "from-file", os.Getenv("MINES_LOAD_TEST"))

	require.NoError(t, Load(filepath.Join(dir, "missing.env")))
}
