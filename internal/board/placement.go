// Placement search: finds where an inventory piece can be stamped onto a
// board and ranks the spots by how much they grow existing pools.
package board

import (
	"slices"

	"github.com/talgya/hexpools/internal/hex"
)

// Placement is one valid position for a piece.
type Placement struct {
	Center   hex.Cell `json:"center"`   // Target cell the piece center lands on
	Contacts int      `json:"contacts"` // Same-typed edges between piece and board
	Pools    int      `json:"pools"`    // Distinct board pools the piece joins
	Score    float64  `json:"score"`    // Desirability, higher is better
}

// FindPlacements returns every center at which piece merges validly onto
// target, sorted by score descending, then by cell.
func FindPlacements(target, piece *Board, pieceCenter hex.Cell) []Placement {
	var out []Placement
	for _, center := range hex.Disk(hex.Origin, target.Radius) {
		if IsMergeValid(target, piece, center, pieceCenter) != nil {
			continue
		}
		out = append(out, scorePlacement(target, piece, center, pieceCenter))
	}

	slices.SortFunc(out, func(a, b Placement) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return hex.Compare(a.Center, b.Center)
	})
	return out
}

// scorePlacement counts contacts and joined pools. Joining several pools
// at once is worth more than touching one pool many times.
func scorePlacement(target, piece *Board, center, pieceCenter hex.Cell) Placement {
	offset := center.Sub(pieceCenter)
	pl := Placement{Center: center}
	var joined []PoolID

	piece.tiles.Each(func(t *Tile) {
		if t.Type == Empty {
			return
		}
		for _, nc := range target.grid.Neighbors(t.Cell.Add(offset)) {
			n := target.tiles.Find(nc)
			if n == nil || n.Type != t.Type {
				continue
			}
			pl.Contacts++
			if n.PoolID != NoPool {
				joined = appendUnique(joined, n.PoolID)
			}
		}
	})

	pl.Pools = len(joined)
	pl.Score = float64(pl.Contacts) + 2.5*float64(pl.Pools)
	for _, id := range joined {
		pl.Score += 0.1 * float64(target.PoolSize(id))
	}
	return pl
}
