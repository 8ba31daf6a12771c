package mapcache

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tileforge/resources"
)

func TestDropTilesFromTileGroupSkipsCollisionsSilently(t *testing.T) {
	c := NewCache(5, 5, 1, 1)
	require.True(t, c.DropTile(1, 1, 0, "rock"))

	group := resources.NewTileGroup("floors").
		AddTile(resources.Tile{ResourceID: "floor-1", Rate: 1}).
		AddTile(resources.Tile{ResourceID: "floor-2", Rate: 1})
	require.NoError(t, group.Err())

	positions := [][2]int{{0, 0}, {1, 1}, {2, 2}}
	placed, err := c.DropTilesFromTileGroup(group, positions, 0)
	require.NoError(t, err)
	require.Equal(t, 2, placed, "the pre-occupied cell must be skipped, not error")
}

func TestDropTilesFromAutoTileGroupTagsFamily(t *testing.T) {
	c := NewCache(5, 5, 1, 1)
	group := resources.NewTileGroup("walls").
		AddAutoTile(resources.AutoTile{ResourceID: "stone-wall", Method: "blob47"})
	require.NoError(t, group.Err())

	placed, err := c.DropTilesFromTileGroup(group, [][2]int{{0, 0}}, 0)
	require.NoError(t, err)
	require.Equal(t, 1, placed)

	cells := c.GetLayer(0)
	require.Len(t, cells, 1)
	require.Equal(t, CellAutoTileFamily, cells[0].Cell.Kind)
	require.Equal(t, "stone-wall", cells[0].Cell.ResourceID)
}
