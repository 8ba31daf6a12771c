package mapcache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func passableIfEmpty(c Cell) bool { return c.Empty() }

func TestFloodFillReachesEdgeOnOpenGrid(t *testing.T) {
	c := NewCache(5, 5, 1, 1)
	require.True(t, c.FloodFillReachesEdge(2, 2, 0, passableIfEmpty))
}

func TestFloodFillDoesNotReachEdgeWhenEnclosed(t *testing.T) {
	c := NewCache(5, 5, 1, 1)
	// Wall off a 1-cell room in the middle.
	for _, p := range [][2]int{{1, 1}, {2, 1}, {3, 1}, {1, 2}, {3, 2}, {1, 3}, {2, 3}, {3, 3}} {
		require.True(t, c.DropTile(p[0], p[1], 0, "wall"))
	}
	require.False(t, c.FloodFillReachesEdge(2, 2, 0, passableIfEmpty))
}

func TestFloodFillFailsFromOccupiedStart(t *testing.T) {
	c := NewCache(5, 5, 1, 1)
	require.True(t, c.DropTile(2, 2, 0, "wall"))
	require.False(t, c.FloodFillReachesEdge(2, 2, 0, passableIfEmpty))
}

func TestMergeLayerFromCopiesOccupiedCellsOnly(t *testing.T) {
	src := NewScratch(4, 4, 1)
	require.True(t, src.DropTile(1, 1, 0, "feature"))

	dst := NewCache(4, 4, 2, 1)
	require.True(t, dst.DropTile(2, 2, 0, "existing"))

	merged := dst.MergeLayerFrom(src, 0, 0)
	require.Equal(t, 1, merged)
	require.True(t, dst.CheckExists(1, 1, 0))
	require.True(t, dst.CheckExists(2, 2, 0))
}

func TestMergeLayerFromSkipsOccupiedDestinationCells(t *testing.T) {
	src := NewScratch(4, 4, 1)
	require.True(t, src.DropTile(1, 1, 0, "feature"))

	dst := NewCache(4, 4, 1, 1)
	require.True(t, dst.DropTile(1, 1, 0, "existing"))

	merged := dst.MergeLayerFrom(src, 0, 0)
	require.Equal(t, 0, merged)
}
