package resources

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryAddRejectsDuplicateID(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(TileDescriptor(Tile{ResourceID: "grass", ImagePath: "grass.png"})))

	err := r.Add(TileDescriptor(Tile{ResourceID: "grass", ImagePath: "grass2.png"}))
	require.ErrorIs(t, err, ErrDuplicateResource)
}

func TestRegistryPutOverwritesDefaults(t *testing.T) {
	r := NewRegistry()
	r.Put("wall", TileDescriptor(Tile{ResourceID: "wall", ImagePath: "default-wall.png"}))
	r.Put("wall", TileDescriptor(Tile{ResourceID: "wall", ImagePath: "override-wall.png"}))

	d, ok := r.Get("wall")
	require.True(t, ok)
	require.Equal(t, "override-wall.png", d.Tile.ImagePath)
	require.Equal(t, 1, r.Len())
}

func TestRegistryIDsPreservesInsertionOrder(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Add(TileDescriptor(Tile{ResourceID: "c"})))
	require.NoError(t, r.Add(TileDescriptor(Tile{ResourceID: "a"})))
	require.NoError(t, r.Add(TileDescriptor(Tile{ResourceID: "b"})))

	require.Equal(t, []string{"c", "a", "b"}, r.IDs())
}
