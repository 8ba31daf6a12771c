package generators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"tileforge/mapcache"
	"tileforge/resources"
)

func TestTerrainElementFillsEveryCell(t *testing.T) {
	cache := mapcache.NewCache(10, 10, 2, 5)
	terr := NewTerrainElement(0)

	require.NoError(t, terr.Build(context.Background(), cache, nil))

	require.Len(t, cache.GetLayer(0), 100)
}

func TestTerrainElementIsDeterministicForAFixedSeed(t *testing.T) {
	terr := NewTerrainElement(0)

	a := mapcache.NewCache(8, 8, 1, 99)
	require.NoError(t, terr.Build(context.Background(), a, nil))

	b := mapcache.NewCache(8, 8, 1, 99)
	require.NoError(t, terr.Build(context.Background(), b, nil))

	require.Equal(t, a.GetLayer(0), b.GetLayer(0))
}

func TestTerrainElementSetupResourcesDeclaresFourBiomes(t *testing.T) {
	terr := NewTerrainElement(0)
	reg := resources.NewRegistry()
	terr.SetupResources(reg)
	require.Equal(t, 4, reg.Len())
}
