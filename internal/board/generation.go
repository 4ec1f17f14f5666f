// Board generation using layered simplex noise.
// One noise layer decides which cells hold a tile, a second picks the
// tile type so colors form organic clusters, then pools are computed in
// a single bulk pass.
package board

import (
	"fmt"
	"math"
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"

	"github.com/talgya/hexpools/internal/hex"
)

// GenConfig holds board generation parameters.
type GenConfig struct {
	Radius    int     // Board radius
	Seed      int64   // Random seed (0 = random)
	Fill      float64 // Approximate share of occupied cells (0.0–1.0)
	Frequency float64 // Noise frequency; lower gives larger color regions
	Palette   []Type  // Tile types to draw from
}

// DefaultGenConfig returns a mid-sized board with every color.
func DefaultGenConfig() GenConfig {
	return GenConfig{
		Radius:    12,
		Seed:      0,
		Fill:      0.65,
		Frequency: 0.15,
		Palette:   Types(),
	}
}

// SmallTestConfig returns a tiny deterministic board for tests.
func SmallTestConfig() GenConfig {
	return GenConfig{
		Radius:    4,
		Seed:      42,
		Fill:      0.8,
		Frequency: 0.3,
		Palette:   []Type{Red, Cyan, Magenta},
	}
}

// Validate reports unusable parameters.
func (cfg GenConfig) Validate() error {
	if cfg.Radius < 0 {
		return fmt.Errorf("radius %d: %w", cfg.Radius, ErrInvalidConfig)
	}
	if cfg.Fill < 0 || cfg.Fill > 1 {
		return fmt.Errorf("fill %.2f: %w", cfg.Fill, ErrInvalidConfig)
	}
	if cfg.Frequency <= 0 {
		return fmt.Errorf("frequency %.2f: %w", cfg.Frequency, ErrInvalidConfig)
	}
	if len(cfg.Palette) == 0 {
		return fmt.Errorf("empty palette: %w", ErrInvalidConfig)
	}
	for _, t := range cfg.Palette {
		if t == Empty || TypeName(t) == "Unknown" {
			return fmt.Errorf("palette type %d: %w", t, ErrInvalidConfig)
		}
	}
	return nil
}

// Generate creates a populated board with pools already computed.
func Generate(cfg GenConfig, opts ...Option) (*Board, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	// Independent layers for occupancy and color.
	occNoise := opensimplex.NewNormalized(seed)
	typeNoise := opensimplex.NewNormalized(seed + 1)
	rng := rand.New(rand.NewSource(seed + 2))

	b := New(cfg.Radius, opts...)
	var tiles []*Tile

	for _, c := range hex.Disk(hex.Origin, cfg.Radius) {
		// Hex axial → cartesian: x = q + r*0.5, y = r * sqrt(3)/2
		x := float64(c.Q) + float64(c.R)*0.5
		y := float64(c.R) * math.Sqrt(3.0) / 2.0

		occ := octaveNoise(occNoise, x, y, 3, cfg.Frequency*2, 0.5)
		if occ < 1-cfg.Fill {
			continue
		}

		kind := octaveNoise(typeNoise, x, y, 2, cfg.Frequency, 0.5)
		idx := min(int(kind*float64(len(cfg.Palette))), len(cfg.Palette)-1)

		t := NewTile(c, cfg.Palette[max(idx, 0)])
		t.Value = 1 + rng.Intn(9)
		t.SetRange(rng.Intn(MaxRange + 1))
		t.Modifier = 0.75 + rng.Float64()*0.5
		tiles = append(tiles, t)
	}

	if err := b.Populate(tiles); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	b.log.Info("board generated",
		"board", b.ID,
		"radius", cfg.Radius,
		"seed", seed,
		"tiles", b.Len(),
		"pools", b.PoolCount(),
	)
	return b, nil
}

// GeneratePiece builds a small connected piece of size tiles around the
// origin, each colored from palette. Pieces are merged onto a main board
// with Merge.
func GeneratePiece(rng *rand.Rand, size int, palette []Type) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("piece size %d: %w", size, ErrInvalidConfig)
	}
	if len(palette) == 0 {
		return nil, fmt.Errorf("empty palette: %w", ErrInvalidConfig)
	}

	radius := size - 1
	cells := []hex.Cell{hex.Origin}
	taken := map[hex.Cell]bool{hex.Origin: true}

	// Grow a blob by stepping off random existing cells.
	for len(cells) < size {
		from := cells[rng.Intn(len(cells))]
		next := from.Neighbor(rng.Intn(6))
		if taken[next] || next.Length() > radius {
			continue
		}
		taken[next] = true
		cells = append(cells, next)
	}

	piece := New(radius)
	tiles := make([]*Tile, len(cells))
	for i, c := range cells {
		tiles[i] = NewTile(c, palette[rng.Intn(len(palette))])
	}
	if err := piece.Populate(tiles); err != nil {
		return nil, fmt.Errorf("piece: %w", err)
	}
	return piece, nil
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
