package generators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"tileforge/mapcache"
)

func TestRoomsElementPlacesFloorTiles(t *testing.T) {
	cache := mapcache.NewCache(40, 40, 1, 1)
	rooms := NewRoomsElement(0)

	require.NoError(t, rooms.Build(context.Background(), cache, nil))

	cells := cache.GetLayer(0)
	require.NotEmpty(t, cells)

	hasFloor := false
	for _, c := range cells {
		if c.Cell.ResourceID == ResourceFloor {
			hasFloor = true
		}
	}
	require.True(t, hasFloor)
}

func TestRoomsElementIsDeterministicForAFixedSeed(t *testing.T) {
	rooms := NewRoomsElement(0)

	a := mapcache.NewCache(30, 30, 1, 123)
	require.NoError(t, rooms.Build(context.Background(), a, nil))

	b := mapcache.NewCache(30, 30, 1, 123)
	require.NoError(t, rooms.Build(context.Background(), b, nil))

	require.Equal(t, a.GetLayer(0), b.GetLayer(0))
}
