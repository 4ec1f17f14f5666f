package hex

import "fmt"

// Kind enumerates grid tessellations. Only hexagons are implemented.
type Kind uint8

const (
	KindHex Kind = iota // Six neighbors, cube coordinates
)

// String returns the tessellation name.
func (k Kind) String() string {
	switch k {
	case KindHex:
		return "hex"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Tessellation is the geometry a board delegates to for adjacency,
// bounds and rotation.
type Tessellation interface {
	Kind() Kind
	Neighbors(c Cell) []Cell
	Distance(a, b Cell) int
	Rotate(c, pivot Cell, steps int) Cell
	Within(c Cell, radius int) bool
}

// Hexagonal is the cube-coordinate hex tessellation.
type Hexagonal struct{}

func (Hexagonal) Kind() Kind { return KindHex }

func (Hexagonal) Neighbors(c Cell) []Cell {
	n := c.Neighbors()
	return n[:]
}

func (Hexagonal) Distance(a, b Cell) int { return Distance(a, b) }

func (Hexagonal) Rotate(c, pivot Cell, steps int) Cell {
	return c.RotateAround(pivot, steps)
}

// Within reports whether c is a well-formed cell no farther than radius
// from the origin.
func (Hexagonal) Within(c Cell, radius int) bool {
	return c.Valid() && c.Length() <= radius
}

// ForKind returns the tessellation for k.
func ForKind(k Kind) (Tessellation, error) {
	switch k {
	case KindHex:
		return Hexagonal{}, nil
	default:
		return nil, fmt.Errorf("hex: unsupported tessellation %s", k)
	}
}
