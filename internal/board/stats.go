package board

// Summary aggregates pool statistics for reporting.
type Summary struct {
	Tiles       int          `json:"tiles"`
	Pools       int          `json:"pools"`
	PoolsByType map[Type]int `json:"pools_by_type"`
	TilesByType map[Type]int `json:"tiles_by_type"`
	Largest     PoolID       `json:"largest"`
	LargestSize int          `json:"largest_size"`
	MeanSize    float64      `json:"mean_size"`
	Singletons  int          `json:"singletons"` // Pools of one tile
}

// Summarize computes a Summary of b.
func Summarize(b *Board) Summary {
	s := Summary{
		Tiles:       b.Len(),
		Pools:       b.PoolCount(),
		PoolsByType: make(map[Type]int),
		TilesByType: make(map[Type]int),
	}

	b.tiles.Each(func(t *Tile) {
		s.TilesByType[t.Type]++
	})

	pooled := 0
	for _, p := range b.Pools() {
		s.PoolsByType[p.Accepted]++
		pooled += p.Len()
		if p.Len() > s.LargestSize {
			s.Largest = p.ID
			s.LargestSize = p.Len()
		}
		if p.Len() == 1 {
			s.Singletons++
		}
	}
	if s.Pools > 0 {
		s.MeanSize = float64(pooled) / float64(s.Pools)
	}
	return s
}
