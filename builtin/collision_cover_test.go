package builtin

import (
	"testing"

	"github.com/stretchr/testify/require"

	"tileforge/mapcache"
	"tileforge/resources"
)

func flagsFor(flags map[string]Flags) FlagLookup {
	return func(id string) Flags { return flags[id] }
}

func TestRunCollisionMarksSingleCellTile(t *testing.T) {
	c := mapcache.NewCache(10, 10, 10, 1)
	require.True(t, c.DropTile(4, 4, 2, "rock"))

	RunCollision(c, flagsFor(map[string]Flags{"rock": {Collision: true}}))

	require.True(t, c.CheckExists(4, 4, c.CollisionLayer()))
}

func TestRunCollisionIgnoresNonCollisionResources(t *testing.T) {
	c := mapcache.NewCache(10, 10, 10, 1)
	require.True(t, c.DropTile(4, 4, 2, "grass"))

	RunCollision(c, flagsFor(map[string]Flags{"grass": {Collision: false}}))

	require.False(t, c.CheckExists(4, 4, c.CollisionLayer()))
}

func TestRunCollisionMarksEveryFootprintCellOfAMultiCellObject(t *testing.T) {
	c := mapcache.NewCache(20, 20, 10, 1)
	require.True(t, c.DropObject(10, 10, 3, resources.Object{ResourceID: "crate-stack", Width: 3, Height: 2, Collision: true}))

	RunCollision(c, flagsFor(map[string]Flags{"crate-stack": {Collision: true}}))

	for y := 10; y < 12; y++ {
		for x := 10; x < 13; x++ {
			require.True(t, c.CheckExists(x, y, c.CollisionLayer()), "expected collision marker at %d,%d", x, y)
		}
	}
}

func TestRunCollisionSkipsReservedLayers(t *testing.T) {
	c := mapcache.NewCache(10, 10, 10, 1)
	require.True(t, c.DropTile(1, 1, c.CoverLayer(), "canopy"))

	RunCollision(c, flagsFor(map[string]Flags{"canopy": {Collision: true}}))

	require.False(t, c.CheckExists(1, 1, c.CollisionLayer()), "the cover layer itself must not feed the collision pass")
}

func TestRunCoverMarksFlaggedCells(t *testing.T) {
	c := mapcache.NewCache(10, 10, 10, 1)
	require.True(t, c.DropTile(3, 3, 0, "canopy"))

	RunCover(c, flagsFor(map[string]Flags{"canopy": {Cover: true}}))

	require.True(t, c.CheckExists(3, 3, c.CoverLayer()))
}
