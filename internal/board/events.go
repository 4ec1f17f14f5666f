package board

import (
	"github.com/google/uuid"

	"github.com/talgya/hexpools/internal/hex"
)

// DirtyKind names the mutation behind a DirtyEvent.
type DirtyKind uint8

const (
	DirtyAdded       DirtyKind = iota // One tile placed
	DirtyRemoved                      // One tile taken off
	DirtyMerged                       // A source board stamped onto this one
	DirtyRotated                      // Every tile moved
	DirtyPartitioned                  // Pools recomputed from scratch
)

func (k DirtyKind) String() string {
	switch k {
	case DirtyAdded:
		return "added"
	case DirtyRemoved:
		return "removed"
	case DirtyMerged:
		return "merged"
	case DirtyRotated:
		return "rotated"
	case DirtyPartitioned:
		return "partitioned"
	default:
		return "unknown"
	}
}

// DirtyEvent tells a caching consumer which region changed. A nil Cells
// slice means the whole board.
type DirtyEvent struct {
	Board uuid.UUID  `json:"board"`
	Kind  DirtyKind  `json:"kind"`
	Cells []hex.Cell `json:"cells,omitempty"`
	Pools []PoolID   `json:"pools,omitempty"` // Pools created, grown, shrunk or deleted
}

func (b *Board) emit(kind DirtyKind, cells []hex.Cell, pools []PoolID) {
	if b.OnDirty == nil {
		return
	}
	b.OnDirty(DirtyEvent{Board: b.ID, Kind: kind, Cells: cells, Pools: pools})
}
