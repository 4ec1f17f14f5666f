package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/hexpools/internal/board"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	gen, err := cfg.GenConfig()
	require.NoError(t, err)
	assert.Equal(t, board.DefaultGenConfig(), gen)
}

func TestParse_FillsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
board:
  radius: 6
  split_on_remove: true
generation:
  seed: 99
  palette: [red, Cyan]
log:
  level: debug
`))
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Board.Radius)
	assert.True(t, cfg.Board.SplitOnRemove)
	assert.Equal(t, int64(99), cfg.Generation.Seed)
	assert.Equal(t, Default().Generation.Fill, cfg.Generation.Fill)
	assert.Equal(t, Default().Pieces, cfg.Pieces)

	palette, err := cfg.Palette()
	require.NoError(t, err)
	assert.Equal(t, []board.Type{board.Red, board.Cyan}, palette)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "board: [radius"},
		{"unknown color", "generation:\n  palette: [octarine]"},
		{"empty color", "generation:\n  palette: [empty]"},
		{"fill out of range", "generation:\n  fill: 2"},
		{"negative radius", "board:\n  radius: -3"},
		{"bad level", "log:\n  level: loud"},
		{"negative piece size", "pieces:\n  size: -1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hexpools.yaml")
	require.NoError(t, os.WriteFile(path, []byte("board:\n  radius: 3\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Board.Radius)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestBoardOptions(t *testing.T) {
	cfg := Default()
	cfg.Board.SplitOnRemove = true
	b, err := board.Generate(board.SmallTestConfig(), cfg.BoardOptions()...)
	require.NoError(t, err)

	// With splitting on, pools stay connected through every removal.
	require.NoError(t, b.VerifyComponents())
	for _, tile := range b.Tiles() {
		_, err := b.Remove(tile.Cell)
		require.NoError(t, err)
		require.NoError(t, b.VerifyComponents())
	}
	assert.Zero(t, b.Len())
}
