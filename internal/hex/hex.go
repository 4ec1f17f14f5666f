// Package hex provides cube-coordinate algebra for the hexagonal board.
// Cells use cube coordinates (q, r, s) with the invariant q + r + s = 0.
package hex

import "fmt"

// Cell is a position on the hex grid in cube coordinates.
type Cell struct {
	Q int `json:"q" yaml:"q"`
	R int `json:"r" yaml:"r"`
	S int `json:"s" yaml:"s"`
}

// Origin is the center of every board.
var Origin = Cell{}

// New returns the cell at axial (q, r). The third coordinate is derived.
func New(q, r int) Cell {
	return Cell{Q: q, R: r, S: -q - r}
}

// Valid reports whether the cube invariant q + r + s = 0 holds.
func (c Cell) Valid() bool {
	return c.Q+c.R+c.S == 0
}

// Directions defines the six neighbor offsets, counter-clockwise from east.
var Directions = [6]Cell{
	{Q: 1, R: 0, S: -1},
	{Q: 1, R: -1, S: 0},
	{Q: 0, R: -1, S: 1},
	{Q: -1, R: 0, S: 1},
	{Q: -1, R: 1, S: 0},
	{Q: 0, R: 1, S: -1},
}

// Add returns c+o.
func (c Cell) Add(o Cell) Cell {
	return Cell{Q: c.Q + o.Q, R: c.R + o.R, S: c.S + o.S}
}

// Sub returns c-o.
func (c Cell) Sub(o Cell) Cell {
	return Cell{Q: c.Q - o.Q, R: c.R - o.R, S: c.S - o.S}
}

// Scale multiplies every component by k.
func (c Cell) Scale(k int) Cell {
	return Cell{Q: c.Q * k, R: c.R * k, S: c.S * k}
}

// RotateLeft rotates c 60° counter-clockwise around the origin.
func (c Cell) RotateLeft() Cell {
	return Cell{Q: -c.S, R: -c.Q, S: -c.R}
}

// RotateRight rotates c 60° clockwise around the origin.
func (c Cell) RotateRight() Cell {
	return Cell{Q: -c.R, R: -c.S, S: -c.Q}
}

// RotateAround rotates c around pivot by steps × 60°. Positive steps turn
// clockwise, negative steps counter-clockwise.
func (c Cell) RotateAround(pivot Cell, steps int) Cell {
	n := NormalizeSteps(steps)
	if n == 0 {
		return c
	}
	v := c.Sub(pivot)
	for i := 0; i < n; i++ {
		v = v.RotateRight()
	}
	return pivot.Add(v)
}

// NormalizeSteps maps any step count into 0..5.
func NormalizeSteps(steps int) int {
	return ((steps % 6) + 6) % 6
}

// Equal reports whether all three components match.
func (c Cell) Equal(o Cell) bool {
	return c == o
}

// Neighbor returns the adjacent cell in direction dir (0..5, wrapped).
func (c Cell) Neighbor(dir int) Cell {
	return c.Add(Directions[NormalizeSteps(dir)])
}

// Neighbors returns the six adjacent cells.
func (c Cell) Neighbors() [6]Cell {
	var result [6]Cell
	for i, dir := range Directions {
		result[i] = c.Add(dir)
	}
	return result
}

// Length returns the grid distance from the origin.
func (c Cell) Length() int {
	return (abs(c.Q) + abs(c.R) + abs(c.S)) / 2
}

// Distance returns the grid distance between two cells.
func Distance(a, b Cell) int {
	return a.Sub(b).Length()
}

// Compare orders cells by q, then r. Useful for deterministic iteration.
func Compare(a, b Cell) int {
	switch {
	case a.Q < b.Q:
		return -1
	case a.Q > b.Q:
		return 1
	case a.R < b.R:
		return -1
	case a.R > b.R:
		return 1
	}
	return 0
}

// String renders the cell as (q,r,s).
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d,%d)", c.Q, c.R, c.S)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
