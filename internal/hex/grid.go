package hex

// Ring returns the cells at exact distance k from center, starting from
// direction 4 and walking each side in turn. Ring(c, 0) is [c].
func Ring(center Cell, k int) []Cell {
	if k <= 0 {
		return []Cell{center}
	}
	res := make([]Cell, 0, 6*k)
	cur := center.Add(Directions[4].Scale(k))
	for side := 0; side < 6; side++ {
		for step := 0; step < k; step++ {
			res = append(res, cur)
			cur = cur.Neighbor(side)
		}
	}
	return res
}

// Disk returns every cell within distance r of center.
func Disk(center Cell, r int) []Cell {
	if r < 0 {
		return nil
	}
	res := make([]Cell, 0, DiskSize(r))
	for q := -r; q <= r; q++ {
		for r2 := max(-r, -q-r); r2 <= min(r, -q+r); r2++ {
			res = append(res, center.Add(New(q, r2)))
		}
	}
	return res
}

// DiskSize returns the number of cells in a disk of radius r.
func DiskSize(r int) int {
	if r < 0 {
		return 0
	}
	return 1 + 3*r*(r+1)
}
