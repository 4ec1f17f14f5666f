package board

import (
	"fmt"
	"strings"

	"github.com/talgya/hexpools/internal/hex"
)

// Type is the color category of a tile. Only tiles of the same type pool.
type Type uint8

const (
	Empty   Type = iota // Placeholder; occupies a cell, never pools
	Red
	Yellow
	Green
	Cyan
	Blue
	Magenta
)

// Types returns every non-empty tile type.
func Types() []Type {
	return []Type{Red, Yellow, Green, Cyan, Blue, Magenta}
}

// TypeName returns a human-readable name for a tile type.
func TypeName(t Type) string {
	switch t {
	case Empty:
		return "Empty"
	case Red:
		return "Red"
	case Yellow:
		return "Yellow"
	case Green:
		return "Green"
	case Cyan:
		return "Cyan"
	case Blue:
		return "Blue"
	case Magenta:
		return "Magenta"
	default:
		return "Unknown"
	}
}

func (t Type) String() string { return TypeName(t) }

// ParseType resolves a case-insensitive type name.
func ParseType(name string) (Type, error) {
	for _, t := range append([]Type{Empty}, Types()...) {
		if strings.EqualFold(name, TypeName(t)) {
			return t, nil
		}
	}
	return Empty, fmt.Errorf("board: unknown tile type %q", name)
}

// PoolID identifies a pool within one board.
type PoolID uint32

// NoPool marks a tile with no pool assigned.
const NoPool PoolID = 0

// MaxRange bounds Tile.Range.
const MaxRange = 6

// Tile is a single placed piece. Ownership moves to the board on Add;
// the pool id is managed by the board.
type Tile struct {
	Cell     hex.Cell `json:"cell"`
	Type     Type     `json:"type"`
	Value    int      `json:"value"`
	PoolID   PoolID   `json:"pool_id"`
	Range    uint8    `json:"range"`    // 0..MaxRange
	Modifier float64  `json:"modifier"` // Production multiplier, 1.0 = neutral
}

// NewTile creates an unpooled tile with neutral value and modifier.
func NewTile(cell hex.Cell, typ Type) *Tile {
	return &Tile{
		Cell:     cell,
		Type:     typ,
		Value:    1,
		Modifier: 1.0,
	}
}

// SetRange stores n clamped to 0..MaxRange.
func (t *Tile) SetRange(n int) {
	t.Range = uint8(min(max(n, 0), MaxRange))
}

// Clone returns a copy with no pool assigned.
func (t *Tile) Clone() *Tile {
	c := *t
	c.PoolID = NoPool
	return &c
}

func (t *Tile) String() string {
	return fmt.Sprintf("%s@%s pool=%d", TypeName(t.Type), t.Cell, t.PoolID)
}
