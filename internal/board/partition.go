package board

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
	"github.com/zyedidia/generic/stack"

	"github.com/talgya/hexpools/internal/hex"
)

// Populate inserts tiles without incremental merging, then recomputes
// every pool with BulkPartition. All tiles are checked first; on error
// the board is unchanged.
func (b *Board) Populate(tiles []*Tile) error {
	seen := mapset.New[hex.Cell]()
	pooled := 0
	for _, t := range tiles {
		if t == nil {
			return ErrNilTile
		}
		if !b.InBounds(t.Cell) {
			return fmt.Errorf("populate %s: %w", t.Cell, ErrInvalidCell)
		}
		if seen.Has(t.Cell) || b.tiles.Contains(t.Cell) {
			return fmt.Errorf("populate %s: %w", t.Cell, ErrOccupiedTarget)
		}
		seen.Put(t.Cell)
		if t.Type != Empty {
			pooled++
		}
	}
	if err := b.pools.reserve(b.pooledTiles() + pooled); err != nil {
		return fmt.Errorf("populate: %w", err)
	}

	for _, t := range tiles {
		t.PoolID = NoPool
		b.tiles.Add(t)
	}
	if err := b.partition(); err != nil {
		return fmt.Errorf("populate: %w", err)
	}

	b.log.Debug("board populated", "board", b.ID, "tiles", len(tiles), "pools", b.pools.Len())
	b.emit(DirtyPartitioned, nil, nil)
	return nil
}

// BulkPartition discards every pool and rebuilds them as the maximal
// connected components of same-typed tiles. Pool ids are freshly
// allocated. On error the board is unchanged.
func (b *Board) BulkPartition() error {
	if err := b.pools.reserve(b.pooledTiles()); err != nil {
		return fmt.Errorf("partition: %w", err)
	}
	if err := b.partition(); err != nil {
		return fmt.Errorf("partition: %w", err)
	}
	b.emit(DirtyPartitioned, nil, nil)
	return nil
}

// partition assumes enough pool ids were reserved.
func (b *Board) partition() error {
	tiles := b.tiles.Tiles()
	for _, t := range tiles {
		t.PoolID = NoPool
	}
	b.pools.reset()

	for _, t := range tiles {
		if t.PoolID != NoPool || t.Type == Empty {
			continue
		}
		p, err := b.pools.Create(t.Type)
		if err != nil {
			return err
		}
		b.floodFill(t, p, nil)
	}
	return nil
}

// floodFill assigns every unpooled tile reachable from start through
// tiles of p's type to p. A non-nil within restricts the fill to those
// cells. The work list is an explicit stack: same-typed regions can span
// tens of thousands of cells.
func (b *Board) floodFill(start *Tile, p *Pool, within *mapset.Set[hex.Cell]) int {
	work := stack.New[*Tile]()
	work.Push(start)

	filled := 0
	for work.Size() > 0 {
		t := work.Pop()
		if t.PoolID != NoPool {
			continue
		}
		p.add(t)
		filled++

		for _, nc := range b.grid.Neighbors(t.Cell) {
			n := b.tiles.Find(nc)
			if n == nil || n.PoolID != NoPool || n.Type != p.Accepted {
				continue
			}
			if within != nil && !within.Has(nc) {
				continue
			}
			work.Push(n)
		}
	}
	return filled
}

// splitPool re-partitions the remaining members of p after a removal.
// The component holding the lowest cell keeps p's id; every other
// component gets a new pool. It returns the ids of the new pools.
func (b *Board) splitPool(p *Pool) []PoolID {
	cells := p.Cells()
	former := mapset.New[hex.Cell]()
	for _, c := range cells {
		former.Put(c)
		b.tiles.Find(c).PoolID = NoPool
	}
	p.members = mapset.New[hex.Cell]()

	var created []PoolID
	for _, c := range cells {
		t := b.tiles.Find(c)
		if t.PoolID != NoPool {
			continue
		}
		target := p
		if p.Len() > 0 {
			np, err := b.pools.Create(p.Accepted)
			if err != nil {
				// Ids were reserved by the caller.
				panic(fmt.Sprintf("board: split pool %d: %v", p.ID, err))
			}
			target = np
			created = append(created, np.ID)
		}
		b.floodFill(t, target, &former)
	}

	if len(created) > 0 {
		b.log.Debug("pool split", "board", b.ID, "pool", p.ID, "new", created)
	}
	return created
}

// pooledTiles counts tiles that need a pool.
func (b *Board) pooledTiles() int {
	n := 0
	b.tiles.Each(func(t *Tile) {
		if t.Type != Empty {
			n++
		}
	})
	return n
}
