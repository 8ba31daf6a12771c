package resources

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"tileforge/tferrors"
)

func withStatFile(t *testing.T, exists map[string]bool) {
	t.Helper()
	orig := statFile
	statFile = func(path string) error {
		if exists[path] {
			return nil
		}
		return os.ErrNotExist
	}
	t.Cleanup(func() { statFile = orig })
}

func TestLoadProducesLoadedResourcePerDescriptor(t *testing.T) {
	withStatFile(t, map[string]bool{"grass.png": true, "water.png": true})

	reg := NewRegistry()
	require.NoError(t, reg.Add(TileDescriptor(Tile{ResourceID: "grass", ImagePath: "grass.png"})))
	require.NoError(t, reg.Add(TileDescriptor(Tile{ResourceID: "water", ImagePath: "water.png"})))

	set, err := Load(context.Background(), reg)
	require.NoError(t, err)

	grass, ok := set.Get("grass")
	require.True(t, ok)
	require.Equal(t, []string{"grass.png"}, grass.ImagePaths)
}

func TestLoadFailsOnMissingAsset(t *testing.T) {
	withStatFile(t, map[string]bool{"grass.png": true})

	reg := NewRegistry()
	require.NoError(t, reg.Add(TileDescriptor(Tile{ResourceID: "grass", ImagePath: "grass.png"})))
	require.NoError(t, reg.Add(TileDescriptor(Tile{ResourceID: "lava", ImagePath: "lava.png"})))

	_, err := Load(context.Background(), reg)
	require.Error(t, err)

	var assetErr *tferrors.AssetLoadFailedError
	require.ErrorAs(t, err, &assetErr)
	require.Equal(t, "lava", assetErr.ResourceID)
}

func TestLoadCoversEveryMemberOfAGroup(t *testing.T) {
	withStatFile(t, map[string]bool{"a.png": true, "b.png": false})

	reg := NewRegistry()
	group := NewTileGroup("floor").
		AddTile(Tile{ResourceID: "floor-1", ImagePath: "a.png"}).
		AddTile(Tile{ResourceID: "floor-2", ImagePath: "b.png"})
	require.NoError(t, group.Err())
	require.NoError(t, reg.Add(TileGroupDescriptor(group)))

	_, err := Load(context.Background(), reg)
	require.Error(t, err)
}

func TestMustGetReturnsMissingResourceError(t *testing.T) {
	set := &LoadedSet{byID: map[string]LoadedResource{}}

	_, err := set.MustGet("forest", "oak")
	var missing *tferrors.MissingResourceError
	require.ErrorAs(t, err, &missing)
	require.Equal(t, "forest", missing.Element)
	require.Equal(t, "oak", missing.ResourceID)
}
