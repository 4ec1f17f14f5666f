package board

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"github.com/talgya/hexpools/internal/hex"
)

// Verify checks the tile/pool bookkeeping: every pooled tile is a member
// of the pool its id names, every member resolves to a tile carrying that
// id, pools are non-empty and homogeneous, and empty tiles are unpooled.
// Unpooled colored tiles are allowed; see Board.Remove.
func (b *Board) Verify() error {
	var err error
	b.tiles.Each(func(t *Tile) {
		if err != nil {
			return
		}
		err = b.verifyTile(t)
	})
	if err != nil {
		return err
	}

	b.pools.Each(func(p *Pool) {
		if err != nil {
			return
		}
		err = b.verifyPool(p)
	})
	return err
}

func (b *Board) verifyTile(t *Tile) error {
	if b.tiles.Find(t.Cell) != t {
		return fmt.Errorf("tile %s indexed under another cell: %w", t, ErrInconsistent)
	}
	if !b.InBounds(t.Cell) {
		return fmt.Errorf("tile %s outside radius %d: %w", t, b.Radius, ErrInconsistent)
	}
	if t.Type == Empty {
		if t.PoolID != NoPool {
			return fmt.Errorf("empty tile %s has a pool: %w", t, ErrInconsistent)
		}
		return nil
	}
	if t.PoolID == NoPool {
		return nil
	}
	p := b.pools.Find(t.PoolID)
	if p == nil {
		return fmt.Errorf("tile %s names missing pool: %w", t, ErrInconsistent)
	}
	if !p.Has(t.Cell) {
		return fmt.Errorf("tile %s not a member of its pool: %w", t, ErrInconsistent)
	}
	if p.Accepted != t.Type {
		return fmt.Errorf("tile %s in %s pool %d: %w", t, TypeName(p.Accepted), p.ID, ErrInconsistent)
	}
	return nil
}

func (b *Board) verifyPool(p *Pool) error {
	if b.pools.Find(p.ID) != p {
		return fmt.Errorf("pool %d registered under another id: %w", p.ID, ErrInconsistent)
	}
	if p.Len() == 0 {
		return fmt.Errorf("pool %d is empty: %w", p.ID, ErrInconsistent)
	}
	var err error
	p.Each(func(c hex.Cell) {
		if err != nil {
			return
		}
		t := b.tiles.Find(c)
		switch {
		case t == nil:
			err = fmt.Errorf("pool %d member %s is unoccupied: %w", p.ID, c, ErrInconsistent)
		case t.PoolID != p.ID:
			err = fmt.Errorf("pool %d member %s names pool %d: %w", p.ID, c, t.PoolID, ErrInconsistent)
		}
	})
	return err
}

// VerifyComponents runs Verify and additionally checks that every pool is
// a maximal connected component: same-typed neighbors share a pool and
// each pool is connected. Removal without WithSplitOnRemove can leave a
// disconnected pool, which this reports.
func (b *Board) VerifyComponents() error {
	if err := b.Verify(); err != nil {
		return err
	}

	for _, t := range b.tiles.Tiles() {
		if t.Type == Empty {
			continue
		}
		for _, nc := range b.grid.Neighbors(t.Cell) {
			n := b.tiles.Find(nc)
			if n != nil && n.Type == t.Type && n.PoolID != t.PoolID {
				return fmt.Errorf("adjacent %s and %s in different pools: %w", t, n, ErrInconsistent)
			}
		}
	}

	for _, p := range b.Pools() {
		if reached := b.reachable(p); reached != p.Len() {
			return fmt.Errorf("pool %d is disconnected (%d of %d reachable): %w", p.ID, reached, p.Len(), ErrInconsistent)
		}
	}
	return nil
}

// reachable counts the members of p connected to its lowest cell.
func (b *Board) reachable(p *Pool) int {
	start := p.Cells()[0]
	seen := mapset.New[hex.Cell]()
	seen.Put(start)
	work := stack.New[hex.Cell]()
	work.Push(start)
	for work.Size() > 0 {
		c := work.Pop()
		for _, nc := range b.grid.Neighbors(c) {
			if !seen.Has(nc) && p.Has(nc) {
				seen.Put(nc)
				work.Push(nc)
			}
		}
	}
	return seen.Size()
}
