// Package preview renders an exported map to a raster image. Spec §4.F
// treats this as optional — "rendering is external; the core's contract is
// that the emitted file is sufficient input" — but the teacher's own
// tileset viewer (test_tileset.go) already shows the idiom for compositing
// a sprite sheet with ebiten, so this package adapts it into a standalone
// exporter-to-PNG step rather than leaving rendering entirely to consumers.
package preview

import "image"

// TileRect computes the source rectangle for tile (col, row) within a
// sprite sheet whose cells are tileWidth x tileHeight, mirroring the
// srcTileSize/sx/sy arithmetic in the teacher's TilesetViewer.Draw.
func TileRect(col, row, tileWidth, tileHeight int) image.Rectangle {
	x0 := col * tileWidth
	y0 := row * tileHeight
	return image.Rect(x0, y0, x0+tileWidth, y0+tileHeight)
}

// ScreenPosition computes the destination pixel origin for grid cell
// (x, y) on a canvas laid out tileWidth x tileHeight per cell.
func ScreenPosition(x, y, tileWidth, tileHeight int) (int, int) {
	return x * tileWidth, y * tileHeight
}

// LocalTile splits a gid's offset from its tileset's firstgid into a
// (col, row) pair within a sheet sheetColumns tiles wide.
func LocalTile(localIndex, sheetColumns int) (col, row int) {
	if sheetColumns <= 0 {
		return 0, 0
	}
	return localIndex % sheetColumns, localIndex / sheetColumns
}

// ResolveTileset returns the tileset entry gid falls into — the one with
// the greatest firstgid not exceeding gid — and gid's offset within it.
// Mirrors the common tile-map editor convention of tileset ranges packed
// ascending by firstgid.
func ResolveTileset(tilesets []TilesetRange, gid int) (TilesetRange, int, bool) {
	var best TilesetRange
	found := false
	for _, ts := range tilesets {
		if gid >= ts.FirstGID && (!found || ts.FirstGID > best.FirstGID) {
			best = ts
			found = true
		}
	}
	if !found {
		return TilesetRange{}, 0, false
	}
	return best, gid - best.FirstGID, true
}

// TilesetRange is the minimal view ResolveTileset needs of an
// mapbuild.ExportedTileset, kept local so this package's pure math has no
// dependency on mapbuild's JSON types.
type TilesetRange struct {
	Name      string
	FirstGID  int
	TileCount int
}
