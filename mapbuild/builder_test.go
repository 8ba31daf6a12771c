package mapbuild

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"tileforge/mapcache"
	"tileforge/resources"
)

type grassElement struct{}

func (grassElement) Name() string { return "grass" }

func (grassElement) SetupResources(reg *resources.Registry) {
	reg.Add(resources.TileDescriptor(resources.Tile{ResourceID: "grass", ImagePath: "grass.png", Rate: 1}))
}

func (grassElement) Build(ctx context.Context, cache *mapcache.Cache, loaded *resources.LoadedSet) error {
	for y := 0; y < cache.H; y++ {
		for x := 0; x < cache.W; x++ {
			cache.DropTile(x, y, 0, "grass")
		}
	}
	return nil
}

type rockElement struct{}

func (rockElement) Name() string { return "rocks" }

func (rockElement) SetupResources(reg *resources.Registry) {
	reg.Add(resources.TileDescriptor(resources.Tile{ResourceID: "rock", ImagePath: "rock.png", Collision: true}))
}

func (rockElement) Build(ctx context.Context, cache *mapcache.Cache, loaded *resources.LoadedSet) error {
	cache.DropTile(1, 1, 1, "rock")
	return nil
}

func withFakeAssets(t *testing.T) {
	t.Helper()
	orig := resources.SetStatFileForTesting(func(string) error { return nil })
	t.Cleanup(orig)
}

func TestBuildRunsElementsInOrderAndCollisionPass(t *testing.T) {
	withFakeAssets(t)

	b := New("test-map", 4, 4, 10, nil, nil)
	b.AddElement(grassElement{}).AddElement(rockElement{})
	require.NoError(t, b.Err())

	result, err := b.Build(context.Background())
	require.NoError(t, err)

	require.True(t, result.Cache.CheckExists(1, 1, 1))
	require.True(t, result.Cache.CheckExists(1, 1, result.Cache.CollisionLayer()), "rock's collision flag must drop an obstacle")
}

func TestBuildRejectsDuplicateElementNames(t *testing.T) {
	b := New("test-map", 4, 4, 10, nil, nil)
	b.AddElement(grassElement{}).AddElement(grassElement{})
	require.Error(t, b.Err())
}

func TestBuildResultRegistriesFeedAllocation(t *testing.T) {
	withFakeAssets(t)

	b := New("test-map", 4, 4, 10, nil, nil)
	b.AddElement(grassElement{}).AddElement(rockElement{})
	require.NoError(t, b.Err())

	result, err := b.Build(context.Background())
	require.NoError(t, err)

	alloc := BuildAllocation(result.Registries...)
	require.NotEqual(t, 0, alloc.GID("grass", 0))
	require.NotEqual(t, 0, alloc.GID("rock", 0))
}

func TestBuildIsDeterministicForAFixedSeed(t *testing.T) {
	withFakeAssets(t)
	seed := int64(42)

	run := func() *Result {
		b := New("test-map", 6, 6, 10, &seed, nil)
		b.AddElement(grassElement{})
		result, err := b.Build(context.Background())
		require.NoError(t, err)
		return result
	}

	a := run()
	b2 := run()
	require.Equal(t, a.Cache.GetLayer(0), b2.Cache.GetLayer(0))
}
