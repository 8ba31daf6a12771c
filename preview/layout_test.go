package preview

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTileRectComputesOffsetByColumnAndRow(t *testing.T) {
	require.Equal(t, image.Rect(24, 12, 36, 24), TileRect(2, 1, 12, 12))
}

func TestScreenPositionScalesByTileSize(t *testing.T) {
	x, y := ScreenPosition(3, 2, 32, 32)
	require.Equal(t, 96, x)
	require.Equal(t, 64, y)
}

func TestLocalTileSplitsIndexIntoColRow(t *testing.T) {
	col, row := LocalTile(13, 4)
	require.Equal(t, 1, col)
	require.Equal(t, 3, row)
}

func TestResolveTilesetPicksHighestFirstGIDNotExceedingGID(t *testing.T) {
	ranges := []TilesetRange{
		{Name: "tiles", FirstGID: 1, TileCount: 5},
		{Name: "walls", FirstGID: 6, TileCount: 47},
	}
	ts, local, ok := ResolveTileset(ranges, 20)
	require.True(t, ok)
	require.Equal(t, "walls", ts.Name)
	require.Equal(t, 14, local)
}

func TestResolveTilesetFailsForGIDBelowEveryRange(t *testing.T) {
	ranges := []TilesetRange{{Name: "tiles", FirstGID: 1, TileCount: 5}}
	_, _, ok := ResolveTileset(ranges, 0)
	require.False(t, ok)
}
