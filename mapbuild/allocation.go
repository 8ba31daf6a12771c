package mapbuild

import (
	"sort"

	"tileforge/resources"
)

// tilesetEntry is one row of the GID allocation: a resource id, how many
// local indices its sprite sheet occupies, and the collision/cover flags to
// annotate every local tile with (the tiled_master-style per-tile property
// this format supports — recovered from the original implementation, spec
// §6 only specifies the schema's shape, not this annotation).
type tilesetEntry struct {
	ResourceID string
	ImagePath  string
	TileCount  int
	Collision  bool
	Cover      bool
}

// Allocation is the deterministic gid assignment Export needs: every
// concrete resource id (tiles, auto-tiles, objects — group containers
// themselves are not addressable) gets a firstgid, assigned in ascending
// resource-id order so the same registry set always produces the same
// tileset layout (spec §8: "replay... yields a byte-identical serialized
// map").
type Allocation struct {
	entries  []tilesetEntry
	firstGID map[string]int
}

// obstacleResourceID is the synthetic tile the built-in Collision/Cover
// passes place; it always needs a tileset slot even if no element declared
// it directly.
const obstacleResourceID = "obstacle"

// BuildAllocation flattens every concrete resource across regs (expanding
// TileGroup/ObjectGroup members, since only their members are ever placed
// in the cache) and assigns firstgids ascending by resource id.
func BuildAllocation(regs ...*resources.Registry) *Allocation {
	entries := make(map[string]tilesetEntry)
	entries[obstacleResourceID] = tilesetEntry{ResourceID: obstacleResourceID, TileCount: 1}

	record := func(id, path string, count int, collision, cover bool) {
		entries[id] = tilesetEntry{ResourceID: id, ImagePath: path, TileCount: count, Collision: collision, Cover: cover}
	}

	for _, reg := range regs {
		if reg == nil {
			continue
		}
		for _, id := range reg.IDs() {
			d, _ := reg.Get(id)
			switch d.Kind {
			case resources.KindTile:
				record(d.Tile.ResourceID, d.Tile.ImagePath, 1, d.Tile.Collision, d.Tile.Cover)
			case resources.KindAutoTile:
				record(d.AutoTile.ResourceID, d.AutoTile.ImagePath, 47, d.AutoTile.Collision, d.AutoTile.Cover)
			case resources.KindObject:
				record(d.Object.ResourceID, d.Object.ImagePath, 1, d.Object.Collision, d.Object.Cover)
			case resources.KindTileGroup:
				for _, t := range d.TileGroup.Tiles {
					record(t.ResourceID, t.ImagePath, 1, t.Collision, t.Cover)
				}
				for _, a := range d.TileGroup.AutoTiles {
					record(a.ResourceID, a.ImagePath, 47, a.Collision, a.Cover)
				}
			case resources.KindObjectGroup:
				for _, o := range d.ObjectGroup.Objects {
					record(o.ResourceID, o.ImagePath, 1, o.Collision, o.Cover)
				}
			}
		}
	}

	ids := make([]string, 0, len(entries))
	for id := range entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	alloc := &Allocation{firstGID: make(map[string]int, len(ids))}
	next := 1 // gid 0 is reserved for empty
	for _, id := range ids {
		alloc.entries = append(alloc.entries, entries[id])
		alloc.firstGID[id] = next
		next += entries[id].TileCount
	}
	return alloc
}

// GID returns the global id for resourceID at localIndex (0 for tiles and
// objects, the blob47 index for auto-tiles), or 0 if resourceID was never
// allocated.
func (a *Allocation) GID(resourceID string, localIndex int) int {
	first, ok := a.firstGID[resourceID]
	if !ok {
		return 0
	}
	return first + localIndex
}
