package board

import (
	"fmt"
	"math"
	"slices"

	"github.com/zyedidia/generic/mapset"

	"github.com/talgya/hexpools/internal/hex"
)

// Pool is a connected group of same-typed tiles. Members are held as
// cells and resolved through the board's TileMap; a pool never owns tiles.
type Pool struct {
	ID       PoolID `json:"id"`
	Accepted Type   `json:"accepted"`

	members mapset.Set[hex.Cell]
}

func newPool(id PoolID, accepted Type) *Pool {
	return &Pool{
		ID:       id,
		Accepted: accepted,
		members:  mapset.New[hex.Cell](),
	}
}

// Len returns the number of member tiles.
func (p *Pool) Len() int {
	return p.members.Size()
}

// Has reports whether the tile at c belongs to the pool.
func (p *Pool) Has(c hex.Cell) bool {
	return p.members.Has(c)
}

// Each calls fn for every member cell in unspecified order.
func (p *Pool) Each(fn func(hex.Cell)) {
	p.members.Each(fn)
}

// Cells returns member cells in hex.Compare order.
func (p *Pool) Cells() []hex.Cell {
	cells := make([]hex.Cell, 0, p.members.Size())
	p.members.Each(func(c hex.Cell) {
		cells = append(cells, c)
	})
	slices.SortFunc(cells, hex.Compare)
	return cells
}

// add makes t a member and stamps its pool id.
func (p *Pool) add(t *Tile) {
	t.PoolID = p.ID
	p.members.Put(t.Cell)
}

// remove drops t from the member set and clears its pool id.
func (p *Pool) remove(t *Tile) {
	p.members.Remove(t.Cell)
	if t.PoolID == p.ID {
		t.PoolID = NoPool
	}
}

func (p *Pool) String() string {
	return fmt.Sprintf("Pool(id=%d, type=%s, tiles=%d)", p.ID, TypeName(p.Accepted), p.Len())
}

// PoolRegistry maps pool ids to pools. Ids come from a monotonic counter
// and are never reused within one registry.
type PoolRegistry struct {
	pools map[PoolID]*Pool
	next  PoolID // 0 once the id space is spent
}

// NewPoolRegistry creates an empty registry whose first id is 1.
func NewPoolRegistry() *PoolRegistry {
	return &PoolRegistry{
		pools: make(map[PoolID]*Pool),
		next:  1,
	}
}

// Create registers a new empty pool accepting typ.
func (r *PoolRegistry) Create(typ Type) (*Pool, error) {
	if r.next == NoPool {
		return nil, ErrResourceExhausted
	}
	p := newPool(r.next, typ)
	r.pools[p.ID] = p
	r.next++ // wraps to NoPool after math.MaxUint32
	return p, nil
}

// Remaining returns how many more pools Create can allocate.
func (r *PoolRegistry) Remaining() uint64 {
	if r.next == NoPool {
		return 0
	}
	return uint64(math.MaxUint32) - uint64(r.next) + 1
}

// reserve fails when fewer than n ids are left.
func (r *PoolRegistry) reserve(n int) error {
	if uint64(max(n, 0)) > r.Remaining() {
		return fmt.Errorf("need %d pool ids, %d left: %w", n, r.Remaining(), ErrResourceExhausted)
	}
	return nil
}

// Remove deletes the pool entry. Member tiles are not visited.
func (r *PoolRegistry) Remove(id PoolID) {
	delete(r.pools, id)
}

// Find returns the pool with id, or nil.
func (r *PoolRegistry) Find(id PoolID) *Pool {
	return r.pools[id]
}

// FindByTile returns the pool t belongs to, or nil when t is unpooled or
// the registry disagrees with the tile.
func (r *PoolRegistry) FindByTile(t *Tile) *Pool {
	if t == nil || t.PoolID == NoPool {
		return nil
	}
	p := r.pools[t.PoolID]
	if p == nil || !p.Has(t.Cell) {
		return nil
	}
	return p
}

// Len returns the number of registered pools.
func (r *PoolRegistry) Len() int {
	return len(r.pools)
}

// Each calls fn for every pool in unspecified order.
func (r *PoolRegistry) Each(fn func(*Pool)) {
	for _, p := range r.pools {
		fn(p)
	}
}

// IDs returns registered ids in ascending order.
func (r *PoolRegistry) IDs() []PoolID {
	ids := make([]PoolID, 0, len(r.pools))
	for id := range r.pools {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// reset drops every pool but keeps the counter.
func (r *PoolRegistry) reset() {
	clear(r.pools)
}

// clone deep-copies pools and the counter.
func (r *PoolRegistry) clone() *PoolRegistry {
	c := &PoolRegistry{
		pools: make(map[PoolID]*Pool, len(r.pools)),
		next:  r.next,
	}
	for id, p := range r.pools {
		cp := newPool(p.ID, p.Accepted)
		p.members.Each(func(cell hex.Cell) {
			cp.members.Put(cell)
		})
		c.pools[id] = cp
	}
	return c
}
