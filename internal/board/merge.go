package board

import (
	"fmt"
	"slices"

	"github.com/talgya/hexpools/internal/hex"
)

// IsMergeValid reports whether source can be stamped onto target so that
// sourceCenter lands on targetCenter. It returns nil when every translated
// tile is inside target's radius and on an empty cell, otherwise an error
// wrapping ErrInvalidCell or ErrOccupiedTarget for the first offending
// tile in cell order.
func IsMergeValid(target, source *Board, targetCenter, sourceCenter hex.Cell) error {
	offset := targetCenter.Sub(sourceCenter)
	for _, c := range source.tiles.Cells() {
		to := c.Add(offset)
		if !target.InBounds(to) {
			return fmt.Errorf("merge %s -> %s: %w", c, to, ErrInvalidCell)
		}
		if target.tiles.Contains(to) {
			return fmt.Errorf("merge %s -> %s: %w", c, to, ErrOccupiedTarget)
		}
	}
	return nil
}

// Merge copies every tile of source onto target, translated so that
// sourceCenter lands on targetCenter. Copies are added one by one, so they
// join and bridge target pools exactly as Add does. source is not
// modified. On error target is unchanged.
func Merge(target, source *Board, targetCenter, sourceCenter hex.Cell) error {
	if err := IsMergeValid(target, source, targetCenter, sourceCenter); err != nil {
		target.log.Debug("merge rejected", "board", target.ID, "source", source.ID, "error", err)
		return err
	}
	if err := target.pools.reserve(source.pooledTiles()); err != nil {
		return fmt.Errorf("merge: %w", err)
	}

	offset := targetCenter.Sub(sourceCenter)
	copies := source.tiles.Tiles()
	for i, t := range copies {
		cp := t.Clone()
		cp.Cell = t.Cell.Add(offset)
		copies[i] = cp
	}

	cells := make([]hex.Cell, 0, len(copies))
	var touched []PoolID
	for _, cp := range copies {
		ids, err := target.insert(cp)
		if err != nil {
			// Validated and reserved above.
			return fmt.Errorf("merge %s: %w", cp.Cell, err)
		}
		cells = append(cells, cp.Cell)
		touched = appendUnique(touched, ids...)
	}

	target.log.Debug("boards merged",
		"board", target.ID,
		"source", source.ID,
		"offset", offset,
		"tiles", len(copies),
	)
	target.emit(DirtyMerged, cells, touched)
	return nil
}

func appendUnique(ids []PoolID, more ...PoolID) []PoolID {
	for _, id := range more {
		if !slices.Contains(ids, id) {
			ids = append(ids, id)
		}
	}
	return ids
}
