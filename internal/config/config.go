// Package config loads hexpools settings from YAML.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/talgya/hexpools/internal/board"
)

// Config holds all hexpools settings
type Config struct {
	Board      BoardConfig      `yaml:"board"`
	Generation GenerationConfig `yaml:"generation"`
	Pieces     PiecesConfig     `yaml:"pieces"`
	Log        LogConfig        `yaml:"log"`
}

// BoardConfig holds board geometry and removal behavior
type BoardConfig struct {
	Radius        int  `yaml:"radius"`
	SplitOnRemove bool `yaml:"split_on_remove"`
}

// GenerationConfig holds noise generation settings
type GenerationConfig struct {
	Seed      int64    `yaml:"seed"` // 0 = random
	Fill      float64  `yaml:"fill"`
	Frequency float64  `yaml:"frequency"`
	Palette   []string `yaml:"palette"` // Tile type names, e.g. "red"
}

// PiecesConfig holds inventory piece settings
type PiecesConfig struct {
	Count int `yaml:"count"`
	Size  int `yaml:"size"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	gen := board.DefaultGenConfig()
	cfg := &Config{
		Board: BoardConfig{Radius: gen.Radius},
		Generation: GenerationConfig{
			Seed:      gen.Seed,
			Fill:      gen.Fill,
			Frequency: gen.Frequency,
		},
		Pieces: PiecesConfig{Count: 3, Size: 3},
		Log:    LogConfig{Level: "info"},
	}
	for _, t := range gen.Palette {
		cfg.Generation.Palette = append(cfg.Generation.Palette, strings.ToLower(board.TypeName(t)))
	}
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML and fills unset fields from Default.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Set defaults if not provided
	def := Default()
	if cfg.Board.Radius == 0 {
		cfg.Board.Radius = def.Board.Radius
	}
	if cfg.Generation.Fill == 0 {
		cfg.Generation.Fill = def.Generation.Fill
	}
	if cfg.Generation.Frequency == 0 {
		cfg.Generation.Frequency = def.Generation.Frequency
	}
	if len(cfg.Generation.Palette) == 0 {
		cfg.Generation.Palette = def.Generation.Palette
	}
	if cfg.Pieces.Count == 0 {
		cfg.Pieces.Count = def.Pieces.Count
	}
	if cfg.Pieces.Size == 0 {
		cfg.Pieces.Size = def.Pieces.Size
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = def.Log.Level
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks every section.
func (c *Config) Validate() error {
	if c.Pieces.Count < 0 {
		return fmt.Errorf("pieces.count %d: %w", c.Pieces.Count, board.ErrInvalidConfig)
	}
	if c.Pieces.Size < 1 {
		return fmt.Errorf("pieces.size %d: %w", c.Pieces.Size, board.ErrInvalidConfig)
	}
	if _, err := c.SlogLevel(); err != nil {
		return err
	}
	gen, err := c.GenConfig()
	if err != nil {
		return err
	}
	return gen.Validate()
}

// Palette resolves the configured type names.
func (c *Config) Palette() ([]board.Type, error) {
	out := make([]board.Type, 0, len(c.Generation.Palette))
	for _, name := range c.Generation.Palette {
		t, err := board.ParseType(name)
		if err != nil {
			return nil, fmt.Errorf("generation.palette: %w", err)
		}
		out = append(out, t)
	}
	return out, nil
}

// GenConfig converts the board and generation sections for board.Generate.
func (c *Config) GenConfig() (board.GenConfig, error) {
	palette, err := c.Palette()
	if err != nil {
		return board.GenConfig{}, err
	}
	return board.GenConfig{
		Radius:    c.Board.Radius,
		Seed:      c.Generation.Seed,
		Fill:      c.Generation.Fill,
		Frequency: c.Generation.Frequency,
		Palette:   palette,
	}, nil
}

// BoardOptions returns the board options implied by the config.
func (c *Config) BoardOptions() []board.Option {
	return []board.Option{board.WithSplitOnRemove(c.Board.SplitOnRemove)}
}

// SlogLevel parses Log.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return 0, fmt.Errorf("log.level %q: %w", c.Log.Level, board.ErrInvalidConfig)
	}
	return lvl, nil
}
