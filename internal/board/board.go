// Package board provides the hex board, its tile index, and the pool
// registry that groups same-typed adjacent tiles into connected pools.
//
// A Board is not safe for concurrent use. Callers serialize mutations.
package board

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/talgya/hexpools/internal/hex"
)

// Board holds the tiles within Radius of the origin and their pools.
type Board struct {
	ID     uuid.UUID `json:"id"`
	Radius int       `json:"radius"`

	// OnDirty, when set, is called after every successful mutation.
	OnDirty func(DirtyEvent) `json:"-"`

	grid          hex.Tessellation
	tiles         *TileMap
	pools         *PoolRegistry
	splitOnRemove bool
	log           *slog.Logger
}

// Option configures a Board.
type Option func(*Board)

// WithSplitOnRemove re-partitions a pool locally when removing a tile
// disconnects it. Off by default: a removal only dissolves pools that
// become empty.
func WithSplitOnRemove(enabled bool) Option {
	return func(b *Board) { b.splitOnRemove = enabled }
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.log = l
		}
	}
}

// WithTessellation overrides the grid geometry.
func WithTessellation(t hex.Tessellation) Option {
	return func(b *Board) {
		if t != nil {
			b.grid = t
		}
	}
}

// New creates an empty board of the given radius.
func New(radius int, opts ...Option) *Board {
	b := &Board{
		ID:     uuid.New(),
		Radius: radius,
		grid:   hex.Hexagonal{},
		tiles:  NewTileMap(hex.DiskSize(radius)),
		pools:  NewPoolRegistry(),
		log:    slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// InBounds reports whether c lies within the board radius.
func (b *Board) InBounds(c hex.Cell) bool {
	return b.grid.Within(c, b.Radius)
}

// Add places t and joins it to the pool of its same-typed neighbors,
// merging their pools when t bridges several. The board takes ownership
// of t. On error the board is unchanged.
func (b *Board) Add(t *Tile) error {
	touched, err := b.insert(t)
	if err != nil {
		return err
	}
	b.emit(DirtyAdded, []hex.Cell{t.Cell}, touched)
	return nil
}

// insert performs Add without notifying. It returns the pools touched:
// the surviving pool first, then any pools merged into it.
func (b *Board) insert(t *Tile) ([]PoolID, error) {
	if t == nil {
		return nil, ErrNilTile
	}
	if !b.InBounds(t.Cell) {
		return nil, fmt.Errorf("add %s: %w", t.Cell, ErrInvalidCell)
	}
	if b.tiles.Contains(t.Cell) {
		return nil, fmt.Errorf("add %s: %w", t.Cell, ErrOccupiedTarget)
	}

	t.PoolID = NoPool
	if t.Type == Empty {
		b.tiles.Add(t)
		return nil, nil
	}

	ids := b.neighborPools(t.Cell, t.Type)
	var target *Pool
	switch len(ids) {
	case 0:
		p, err := b.pools.Create(t.Type)
		if err != nil {
			return nil, fmt.Errorf("add %s: %w", t.Cell, err)
		}
		target = p
	case 1:
		target = b.pools.Find(ids[0])
	default:
		target = b.absorb(ids)
	}

	target.add(t)
	b.tiles.Add(t)
	b.adopt(t, target)

	touched := []PoolID{target.ID}
	for _, id := range ids {
		if id != target.ID {
			touched = append(touched, id)
		}
	}
	return touched, nil
}

// neighborPools returns the distinct registered pools of the same-typed
// tiles around c, in direction order.
func (b *Board) neighborPools(c hex.Cell, typ Type) []PoolID {
	var ids []PoolID
	for _, nc := range b.grid.Neighbors(c) {
		n := b.tiles.Find(nc)
		if n == nil || n.Type != typ || n.PoolID == NoPool {
			continue
		}
		if slices.Contains(ids, n.PoolID) || b.pools.Find(n.PoolID) == nil {
			continue
		}
		ids = append(ids, n.PoolID)
	}
	return ids
}

// absorb merges the pools in ids into the largest one (lowest id on a
// tie) and returns it. Emptied pools are removed from the registry.
func (b *Board) absorb(ids []PoolID) *Pool {
	target := b.pools.Find(ids[0])
	for _, id := range ids[1:] {
		p := b.pools.Find(id)
		if p.Len() > target.Len() || (p.Len() == target.Len() && p.ID < target.ID) {
			target = p
		}
	}

	moved := 0
	for _, id := range ids {
		if id == target.ID {
			continue
		}
		p := b.pools.Find(id)
		p.Each(func(c hex.Cell) {
			if member := b.tiles.Find(c); member != nil {
				target.add(member)
				moved++
			}
		})
		b.pools.Remove(id)
	}

	b.log.Debug("pools merged",
		"board", b.ID,
		"survivor", target.ID,
		"absorbed", len(ids)-1,
		"moved", moved,
	)
	return target
}

// adopt pulls unpooled same-typed tiles touching t into target. Such
// tiles are left behind when a removal dissolves their pool.
func (b *Board) adopt(t *Tile, target *Pool) {
	for _, nc := range b.grid.Neighbors(t.Cell) {
		n := b.tiles.Find(nc)
		if n != nil && n.Type == t.Type && n.PoolID == NoPool {
			b.floodFill(n, target, nil)
		}
	}
}

// dissolve unpools the remaining members of p and deletes it.
func (b *Board) dissolve(p *Pool) {
	p.Each(func(c hex.Cell) {
		if t := b.tiles.Find(c); t != nil && t.PoolID == p.ID {
			t.PoolID = NoPool
		}
	})
	b.pools.Remove(p.ID)
}

// Remove takes the tile at c off the board and returns it with its pool
// id cleared. A pool left with a single tile is dissolved: the pool is
// deleted and that tile becomes unpooled until a same-typed tile is
// placed next to it. Unless WithSplitOnRemove is set, larger remainders
// are not re-checked for connectivity.
func (b *Board) Remove(c hex.Cell) (*Tile, error) {
	t := b.tiles.Find(c)
	if t == nil {
		return nil, fmt.Errorf("remove %s: %w", c, ErrNotFound)
	}

	p := b.pools.FindByTile(t)
	split := b.splitOnRemove && p != nil && p.Len() > 2
	if split {
		// A tile has six neighbors, so at most five new pools appear.
		if err := b.pools.reserve(5); err != nil {
			return nil, fmt.Errorf("remove %s: %w", c, err)
		}
	}

	var touched []PoolID
	if p != nil {
		touched = append(touched, p.ID)
		p.remove(t)
		switch p.Len() {
		case 0:
			b.pools.Remove(p.ID)
		case 1:
			b.dissolve(p)
		}
	}
	t.PoolID = NoPool
	b.tiles.Remove(c)

	if split {
		touched = append(touched, b.splitPool(p)...)
	}

	b.emit(DirtyRemoved, []hex.Cell{c}, touched)
	return t, nil
}

// Tile returns the tile at c, or nil.
func (b *Board) Tile(c hex.Cell) *Tile {
	return b.tiles.Find(c)
}

// PoolOf returns the pool holding the tile at c, or nil.
func (b *Board) PoolOf(c hex.Cell) *Pool {
	return b.pools.FindByTile(b.tiles.Find(c))
}

// Pool returns the pool with id, or nil.
func (b *Board) Pool(id PoolID) *Pool {
	return b.pools.Find(id)
}

// PoolSize returns the member count of pool id, 0 when unknown.
func (b *Board) PoolSize(id PoolID) int {
	p := b.pools.Find(id)
	if p == nil {
		return 0
	}
	return p.Len()
}

// Pools returns every pool ordered by id.
func (b *Board) Pools() []*Pool {
	ids := b.pools.IDs()
	out := make([]*Pool, len(ids))
	for i, id := range ids {
		out[i] = b.pools.Find(id)
	}
	return out
}

// PoolCount returns the number of registered pools.
func (b *Board) PoolCount() int {
	return b.pools.Len()
}

// Tiles returns the tiles ordered by cell. The tiles stay owned by the
// board; callers must not change their Cell or PoolID.
func (b *Board) Tiles() []*Tile {
	return b.tiles.Tiles()
}

// Len returns the number of tiles on the board.
func (b *Board) Len() int {
	return b.tiles.Len()
}

// Components returns the cells of every pool, each sorted, ordered by
// their first cell. Two boards with the same grouping compare equal
// regardless of pool ids.
func (b *Board) Components() [][]hex.Cell {
	out := make([][]hex.Cell, 0, b.pools.Len())
	b.pools.Each(func(p *Pool) {
		if p.Len() > 0 {
			out = append(out, p.Cells())
		}
	})
	slices.SortFunc(out, func(x, y []hex.Cell) int {
		return hex.Compare(x[0], y[0])
	})
	return out
}

// Clone returns an independent copy with a fresh ID. OnDirty is not copied.
func (b *Board) Clone() *Board {
	return &Board{
		ID:            uuid.New(),
		Radius:        b.Radius,
		grid:          b.grid,
		tiles:         b.tiles.Clone(),
		pools:         b.pools.clone(),
		splitOnRemove: b.splitOnRemove,
		log:           b.log,
	}
}

// String returns a summary of the board.
func (b *Board) String() string {
	return fmt.Sprintf("Board(radius=%d, tiles=%d, pools=%d)", b.Radius, b.tiles.Len(), b.pools.Len())
}
