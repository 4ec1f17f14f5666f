package board

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/talgya/hexpools/internal/hex"
)

type move struct {
	tile *Tile
	to   hex.Cell
}

// Rotate turns every tile steps × 60° around pivot; positive steps turn
// clockwise. If any tile would leave the board radius nothing moves and
// an error wrapping ErrInvalidCell is returned. Pool ids are kept, since
// rotation preserves adjacency. Multiples of six are a no-op.
func (b *Board) Rotate(pivot hex.Cell, steps int) error {
	n := hex.NormalizeSteps(steps)
	if n == 0 {
		return nil
	}

	// Stage every destination before touching the live index.
	moves := make([]move, 0, b.tiles.Len())
	for _, t := range b.tiles.Tiles() {
		to := b.grid.Rotate(t.Cell, pivot, n)
		if !b.InBounds(to) {
			b.log.Debug("rotation rejected", "board", b.ID, "pivot", pivot, "steps", n, "cell", t.Cell, "to", to)
			return fmt.Errorf("rotate %s around %s: %w", t.Cell, pivot, ErrInvalidCell)
		}
		moves = append(moves, move{tile: t, to: to})
	}

	index := NewTileMap(len(moves))
	for _, m := range moves {
		m.tile.Cell = m.to
		index.Add(m.tile)
	}
	b.tiles = index
	b.reindexPools()

	b.emit(DirtyRotated, nil, nil)
	return nil
}

// reindexPools rebuilds every member set from the tiles' pool ids.
func (b *Board) reindexPools() {
	b.pools.Each(func(p *Pool) {
		p.members = mapset.New[hex.Cell]()
	})
	b.tiles.Each(func(t *Tile) {
		if p := b.pools.Find(t.PoolID); p != nil {
			p.members.Put(t.Cell)
		}
	})
}
