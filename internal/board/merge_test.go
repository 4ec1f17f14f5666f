package board

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talgya/hexpools/internal/hex"
)

func piece(t *testing.T, radius int, typ Type, cells ...hex.Cell) *Board {
	t.Helper()
	p := New(radius)
	place(t, p, typ, cells...)
	return p
}

func TestMerge_BridgesTargetPools(t *testing.T) {
	target := New(4)
	place(t, target, Green, hex.New(-2, 0), hex.New(-1, 0))
	place(t, target, Green, hex.New(1, 0), hex.New(2, 0))
	require.Equal(t, 2, target.PoolCount())

	src := piece(t, 1, Green, hex.Origin)
	var events []DirtyEvent
	target.OnDirty = func(e DirtyEvent) { events = append(events, e) }

	require.NoError(t, IsMergeValid(target, src, hex.Origin, hex.Origin))
	require.NoError(t, Merge(target, src, hex.Origin, hex.Origin))

	assert.Equal(t, 1, target.PoolCount())
	assert.Equal(t, 5, target.PoolOf(hex.Origin).Len())
	requireConsistent(t, target, true)

	require.Len(t, events, 1, "copies are not reported one by one")
	assert.Equal(t, DirtyMerged, events[0].Kind)
	assert.Equal(t, []hex.Cell{hex.Origin}, events[0].Cells)
	assert.Len(t, events[0].Pools, 2)
}

func TestMerge_TranslatesByCenters(t *testing.T) {
	target := New(5)
	src := New(2)
	place(t, src, Red, hex.Origin, hex.New(1, 0))
	place(t, src, Blue, hex.New(0, 1))

	at := hex.New(2, -1)
	require.NoError(t, Merge(target, src, at, hex.Origin))

	assert.Equal(t, Red, target.Tile(at).Type)
	assert.Equal(t, Red, target.Tile(hex.New(3, -1)).Type)
	assert.Equal(t, Blue, target.Tile(hex.New(2, 0)).Type)
	assert.Equal(t, 3, target.Len())
	assert.Equal(t, 2, target.PoolCount())
	requireConsistent(t, target, true)
}

func TestMerge_NonOriginSourceCenter(t *testing.T) {
	target := New(3)
	src := piece(t, 2, Yellow, hex.New(1, 0))

	require.NoError(t, Merge(target, src, hex.Origin, hex.New(1, 0)))
	assert.Equal(t, Yellow, target.Tile(hex.Origin).Type)
}

func TestMerge_SourceUnchanged(t *testing.T) {
	target := New(3)
	src := New(2)
	place(t, src, Cyan, hex.Origin, hex.New(1, 0))
	place(t, src, Magenta, hex.New(-1, 0))
	before := stateOf(src)

	require.NoError(t, Merge(target, src, hex.Origin, hex.Origin))
	assert.Equal(t, before, stateOf(src))

	// Copies are independent tiles.
	target.Tile(hex.Origin).Value = 99
	assert.Equal(t, 1, src.Tile(hex.Origin).Value)
}

func TestMerge_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		center hex.Cell
		want   error
	}{
		{"occupied", hex.Origin, ErrOccupiedTarget},
		{"outside radius", hex.New(3, 0), ErrInvalidCell},
		{"far outside", hex.New(10, -10), ErrInvalidCell},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := New(3)
			place(t, target, Red, hex.Origin, hex.New(-1, 0))
			src := piece(t, 1, Red, hex.Origin, hex.New(1, 0))
			before := stateOf(target)

			var events int
			target.OnDirty = func(DirtyEvent) { events++ }

			require.ErrorIs(t, IsMergeValid(target, src, tt.center, hex.Origin), tt.want)
			require.ErrorIs(t, Merge(target, src, tt.center, hex.Origin), tt.want)
			assert.Equal(t, before, stateOf(target))
			assert.Zero(t, events)
		})
	}
}

func TestMerge_PartialOverlapLeavesTargetUnchanged(t *testing.T) {
	target := New(3)
	place(t, target, Blue, hex.New(2, 0))
	src := piece(t, 2, Blue, line(hex.Origin, 0, 3)...)
	before := stateOf(target)

	// Only the last source tile collides.
	err := Merge(target, src, hex.Origin, hex.Origin)
	require.ErrorIs(t, err, ErrOccupiedTarget)
	assert.Equal(t, before, stateOf(target))
}

func TestMerge_EmptySource(t *testing.T) {
	target := New(2)
	place(t, target, Red, hex.Origin)
	before := stateOf(target)

	require.NoError(t, Merge(target, New(0), hex.Origin, hex.Origin))
	assert.Equal(t, before, stateOf(target))
}

func TestMerge_ResourceExhausted(t *testing.T) {
	target := New(3)
	place(t, target, Red, hex.Origin)
	target.pools.next = PoolID(^uint32(0))
	src := New(2)
	place(t, src, Cyan, hex.Origin)
	place(t, src, Magenta, hex.New(2, 0))
	before := stateOf(target)

	require.ErrorIs(t, Merge(target, src, hex.New(-1, 0), hex.Origin), ErrResourceExhausted)
	assert.Equal(t, before, stateOf(target))
}

func TestMerge_SelfSizedPieceFillsBoard(t *testing.T) {
	target := New(2)
	src := New(2)
	require.NoError(t, src.Populate(stripes(2, Red, Cyan)))

	require.NoError(t, Merge(target, src, hex.Origin, hex.Origin))
	assert.Equal(t, hex.DiskSize(2), target.Len())
	assert.Equal(t, src.PoolCount(), target.PoolCount())
	requireConsistent(t, target, true)

	require.ErrorIs(t, IsMergeValid(target, src, hex.Origin, hex.Origin), ErrOccupiedTarget)
}
