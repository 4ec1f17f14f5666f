package board

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/hexpools/internal/hex"
)

func TestGenerate_Deterministic(t *testing.T) {
	cfg := SmallTestConfig()
	a, err := Generate(cfg)
	require.NoError(t, err)
	b, err := Generate(cfg)
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, stateOf(a), stateOf(b))
	assert.Equal(t, a.Components(), b.Components())
}

func TestGenerate_ProducesValidBoard(t *testing.T) {
	cfg := DefaultGenConfig()
	cfg.Seed = 7
	b, err := Generate(cfg)
	require.NoError(t, err)

	assert.Equal(t, cfg.Radius, b.Radius)
	assert.Positive(t, b.Len())
	assert.LessOrEqual(t, b.Len(), hex.DiskSize(cfg.Radius))
	requireConsistent(t, b, true)

	for _, tile := range b.Tiles() {
		assert.Contains(t, cfg.Palette, tile.Type)
		assert.GreaterOrEqual(t, tile.Value, 1)
		assert.LessOrEqual(t, int(tile.Range), MaxRange)
	}
}

func TestGenerate_FullFill(t *testing.T) {
	cfg := SmallTestConfig()
	cfg.Fill = 1
	b, err := Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, hex.DiskSize(cfg.Radius), b.Len())
}

func TestGenerate_AppliesOptions(t *testing.T) {
	cfg := SmallTestConfig()
	b, err := Generate(cfg, WithSplitOnRemove(true))
	require.NoError(t, err)
	assert.True(t, b.splitOnRemove)
}

func TestGenConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*GenConfig)
	}{
		{"negative radius", func(c *GenConfig) { c.Radius = -1 }},
		{"fill above one", func(c *GenConfig) { c.Fill = 1.5 }},
		{"negative fill", func(c *GenConfig) { c.Fill = -0.1 }},
		{"zero frequency", func(c *GenConfig) { c.Frequency = 0 }},
		{"empty palette", func(c *GenConfig) { c.Palette = nil }},
		{"empty type in palette", func(c *GenConfig) { c.Palette = []Type{Red, Empty} }},
		{"unknown type", func(c *GenConfig) { c.Palette = []Type{Type(42)} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultGenConfig()
			tt.modify(&cfg)
			require.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)

			_, err := Generate(cfg)
			require.ErrorIs(t, err, ErrInvalidConfig)
		})
	}

	require.NoError(t, DefaultGenConfig().Validate())
	require.NoError(t, SmallTestConfig().Validate())
}

func TestGeneratePiece(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for size := 1; size <= 7; size++ {
		p, err := GeneratePiece(rng, size, []Type{Red, Blue})
		require.NoError(t, err)
		assert.Equal(t, size, p.Len())
		assert.Equal(t, size-1, p.Radius)
		require.NotNil(t, p.Tile(hex.Origin))
		requireConsistent(t, p, true)

		// The blob is connected regardless of color.
		seen := map[hex.Cell]bool{hex.Origin: true}
		work := []hex.Cell{hex.Origin}
		for len(work) > 0 {
			c := work[len(work)-1]
			work = work[:len(work)-1]
			for _, n := range c.Neighbors() {
				if !seen[n] && p.Tile(n) != nil {
					seen[n] = true
					work = append(work, n)
				}
			}
		}
		assert.Len(t, seen, size)
	}
}

func TestGeneratePiece_Rejections(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	_, err := GeneratePiece(rng, 0, []Type{Red})
	require.ErrorIs(t, err, ErrInvalidConfig)
	_, err = GeneratePiece(rng, 3, nil)
	require.ErrorIs(t, err, ErrInvalidConfig)
}
