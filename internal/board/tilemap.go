package board

import (
	"fmt"
	"slices"

	"github.com/talgya/hexpools/internal/hex"
)

// TileMap indexes tiles by cell and owns them.
type TileMap struct {
	tiles map[hex.Cell]*Tile
}

// NewTileMap creates an empty index sized for capacity tiles.
func NewTileMap(capacity int) *TileMap {
	return &TileMap{tiles: make(map[hex.Cell]*Tile, max(capacity, 0))}
}

// Add stores t at its cell, replacing any previous occupant.
// Board.Add refuses occupied cells before reaching this point.
func (m *TileMap) Add(t *Tile) {
	m.tiles[t.Cell] = t
}

// Find returns the tile at c, or nil.
func (m *TileMap) Find(c hex.Cell) *Tile {
	return m.tiles[c]
}

// Remove deletes and returns the tile at c, or nil when c is empty.
func (m *TileMap) Remove(c hex.Cell) *Tile {
	t, ok := m.tiles[c]
	if !ok {
		return nil
	}
	delete(m.tiles, c)
	return t
}

// Contains reports whether c is occupied.
func (m *TileMap) Contains(c hex.Cell) bool {
	_, ok := m.tiles[c]
	return ok
}

// Len returns the number of tiles.
func (m *TileMap) Len() int {
	return len(m.tiles)
}

// Each calls fn for every tile in unspecified order. fn must not add or
// remove tiles.
func (m *TileMap) Each(fn func(*Tile)) {
	for _, t := range m.tiles {
		fn(t)
	}
}

// Cells returns the occupied cells in hex.Compare order.
func (m *TileMap) Cells() []hex.Cell {
	cells := make([]hex.Cell, 0, len(m.tiles))
	for c := range m.tiles {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, hex.Compare)
	return cells
}

// Tiles returns the tiles ordered by cell.
func (m *TileMap) Tiles() []*Tile {
	cells := m.Cells()
	out := make([]*Tile, len(cells))
	for i, c := range cells {
		out[i] = m.tiles[c]
	}
	return out
}

// Clone deep-copies the index, pool ids included.
func (m *TileMap) Clone() *TileMap {
	c := NewTileMap(len(m.tiles))
	for cell, t := range m.tiles {
		cp := *t
		c.tiles[cell] = &cp
	}
	return c
}

func (m *TileMap) String() string {
	return fmt.Sprintf("TileMap(tiles=%d)", len(m.tiles))
}
