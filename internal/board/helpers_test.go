package board

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/talgya/hexpools/internal/hex"
)

// place adds one tile of typ on every cell and fails the test on error.
func place(t *testing.T, b *Board, typ Type, cells ...hex.Cell) {
	t.Helper()
	for _, c := range cells {
		require.NoError(t, b.Add(NewTile(c, typ)), "add %s", c)
	}
}

// line returns n cells walking from start in direction dir.
func line(start hex.Cell, dir, n int) []hex.Cell {
	cells := make([]hex.Cell, n)
	for i := range cells {
		cells[i] = start.Add(hex.Directions[dir].Scale(i))
	}
	return cells
}

// boardState is a comparable picture of a board's tiles and pools.
type boardState struct {
	Tiles map[hex.Cell]Tile
	Pools map[PoolID][]hex.Cell
	Types map[PoolID]Type
}

func stateOf(b *Board) boardState {
	s := boardState{
		Tiles: make(map[hex.Cell]Tile),
		Pools: make(map[PoolID][]hex.Cell),
		Types: make(map[PoolID]Type),
	}
	for _, t := range b.Tiles() {
		s.Tiles[t.Cell] = *t
	}
	for _, p := range b.Pools() {
		s.Pools[p.ID] = p.Cells()
		s.Types[p.ID] = p.Accepted
	}
	return s
}

// requireConsistent asserts bookkeeping and, when maximal, that pools are
// exactly the connected components.
func requireConsistent(t *testing.T, b *Board, maximal bool) {
	t.Helper()
	if maximal {
		require.NoError(t, b.VerifyComponents())
		return
	}
	require.NoError(t, b.Verify())
}
