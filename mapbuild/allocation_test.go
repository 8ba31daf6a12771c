package mapbuild

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tileforge/resources"
)

func TestBuildAllocationAssignsAscendingByResourceID(t *testing.T) {
	reg := resources.NewRegistry()
	require.NoError(t, reg.Add(resources.TileDescriptor(resources.Tile{ResourceID: "zeta", ImagePath: "z.png"})))
	require.NoError(t, reg.Add(resources.TileDescriptor(resources.Tile{ResourceID: "alpha", ImagePath: "a.png"})))

	alloc := BuildAllocation(reg)

	require.Less(t, alloc.GID("alpha", 0), alloc.GID("zeta", 0))
}

func TestBuildAllocationReservesObstacleSlot(t *testing.T) {
	alloc := BuildAllocation()
	require.NotEqual(t, 0, alloc.GID(obstacleResourceID, 0))
}

func TestBuildAllocationGivesAutoTiles47Slots(t *testing.T) {
	reg := resources.NewRegistry()
	require.NoError(t, reg.Add(resources.TileDescriptor(resources.Tile{ResourceID: "a-tile", ImagePath: "a.png"})))
	require.NoError(t, reg.Add(resources.AutoTileDescriptor(resources.AutoTile{ResourceID: "b-auto", ImagePath: "b.png", Method: "blob47"})))
	require.NoError(t, reg.Add(resources.TileDescriptor(resources.Tile{ResourceID: "c-tile", ImagePath: "c.png"})))

	alloc := BuildAllocation(reg)

	require.Equal(t, alloc.GID("b-auto", 0)+47, alloc.GID("c-tile", 0))
}

func TestBuildAllocationExpandsGroupMembers(t *testing.T) {
	group := resources.NewTileGroup("floors").
		AddTile(resources.Tile{ResourceID: "floor-1", ImagePath: "f1.png"}).
		AddTile(resources.Tile{ResourceID: "floor-2", ImagePath: "f2.png"})
	require.NoError(t, group.Err())

	reg := resources.NewRegistry()
	require.NoError(t, reg.Add(resources.TileGroupDescriptor(group)))

	alloc := BuildAllocation(reg)
	require.NotEqual(t, 0, alloc.GID("floor-1", 0))
	require.NotEqual(t, 0, alloc.GID("floor-2", 0))
	require.Equal(t, 0, alloc.GID("floors", 0), "the group container id itself is never placed, so it has no gid")
}
