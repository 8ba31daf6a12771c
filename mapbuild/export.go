package mapbuild

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"

	"tileforge/mapcache"
)

// ExportedMap is the field-for-field schema spec §6 requires: compatible
// with the common tile-map editor format so downstream tools need no
// translation step.
type ExportedMap struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	TileWidth   int    `json:"tilewidth"`
	TileHeight  int    `json:"tileheight"`
	Type        string `json:"type"`
	Orientation string `json:"orientation"`
	RenderOrder string `json:"renderorder"`

	Layers   []ExportedLayer   `json:"layers"`
	Tilesets []ExportedTileset `json:"tilesets"`
}

// ExportedLayer is one tilelayer: a flat, row-major gid array of length
// Width*Height, 0 meaning empty.
type ExportedLayer struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Type   string `json:"type"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Data   []int  `json:"data"`
}

// ExportedTileset describes one resource's slice of the gid space.
type ExportedTileset struct {
	FirstGID   int              `json:"firstgid"`
	Name       string           `json:"name"`
	TileCount  int              `json:"tilecount"`
	TileWidth  int              `json:"tilewidth"`
	TileHeight int              `json:"tileheight"`
	Image      string           `json:"image"`
	Tiles      []ExportedTileProps `json:"tiles,omitempty"`
}

// ExportedTileProps annotates one local tile id within a tileset with
// editor-recognized boolean properties. Recovered from the original
// implementation's per-tile collision/cover annotation (supplementing spec
// §6, which specifies the schema's shape but not this annotation).
type ExportedTileProps struct {
	ID         int                `json:"id"`
	Properties []ExportedProperty `json:"properties"`
}

// ExportedProperty is one name/type/value triple, the common tile-map
// editor format's generic property representation.
type ExportedProperty struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Value bool   `json:"value"`
}

func layerName(index, collisionLayer, coverLayer int) string {
	switch index {
	case collisionLayer:
		return "collision"
	case coverLayer:
		return "cover"
	default:
		return "layer"
	}
}

// Export serializes cache into the standard map schema, resolving each
// placed cell to a gid via alloc and auto-tile cells via autoTileIndices
// (spec §6). tileWidth/tileHeight default to 32 if zero, matching the
// schema's stated default.
func Export(cache *mapcache.Cache, autoTileIndices map[int]map[[2]int]int, alloc *Allocation, tileWidth, tileHeight int) *ExportedMap {
	if tileWidth == 0 {
		tileWidth = 32
	}
	if tileHeight == 0 {
		tileHeight = 32
	}

	out := &ExportedMap{
		Width:       cache.W,
		Height:      cache.H,
		TileWidth:   tileWidth,
		TileHeight:  tileHeight,
		Type:        "map",
		Orientation: "orthogonal",
		RenderOrder: "right-down",
	}

	for layer := 0; layer < cache.L; layer++ {
		data := make([]int, cache.W*cache.H)
		for y := 0; y < cache.H; y++ {
			for x := 0; x < cache.W; x++ {
				data[y*cache.W+x] = gidFor(cache, autoTileIndices, alloc, layer, x, y)
			}
		}
		out.Layers = append(out.Layers, ExportedLayer{
			ID:     layer,
			Name:   layerName(layer, cache.CollisionLayer(), cache.CoverLayer()),
			Type:   "tilelayer",
			Width:  cache.W,
			Height: cache.H,
			Data:   data,
		})
	}

	for _, e := range alloc.entries {
		tileset := ExportedTileset{
			FirstGID:   alloc.firstGID[e.ResourceID],
			Name:       e.ResourceID,
			TileCount:  e.TileCount,
			TileWidth:  tileWidth,
			TileHeight: tileHeight,
			Image:      e.ImagePath,
		}
		if e.Collision || e.Cover {
			for i := 0; i < e.TileCount; i++ {
				tileset.Tiles = append(tileset.Tiles, ExportedTileProps{
					ID: i,
					Properties: []ExportedProperty{
						{Name: "collision", Type: "bool", Value: e.Collision},
						{Name: "cover", Type: "bool", Value: e.Cover},
					},
				})
			}
		}
		out.Tilesets = append(out.Tilesets, tileset)
	}

	return out
}

func gidFor(cache *mapcache.Cache, autoTileIndices map[int]map[[2]int]int, alloc *Allocation, layer, x, y int) int {
	cell := cache.CellAt(layer, x, y)
	switch cell.Kind {
	case mapcache.CellTile, mapcache.CellObjectAnchor:
		return alloc.GID(cell.ResourceID, 0)
	case mapcache.CellAutoTileFamily:
		local := 0
		if byLayer, ok := autoTileIndices[layer]; ok {
			local = byLayer[[2]int{x, y}]
		}
		return alloc.GID(cell.ResourceID, local)
	default:
		return 0 // empty and footprint cells both emit 0 (spec §6)
	}
}

// WriteFile marshals m as indented JSON and writes it to path.
func WriteFile(m *ExportedMap, path string) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return errors.Wrap(err, "mapbuild: marshal export")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "mapbuild: write export to %q", path)
	}
	return nil
}
