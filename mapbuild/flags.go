package mapbuild

import (
	"tileforge/builtin"
	"tileforge/resources"
)

// collectFlags walks every descriptor across regs and returns a lookup from
// resource id to its collision/cover flags, expanding group members to
// their own ids so the built-in Collision/Cover passes (spec §4.F steps
// 5-6) can resolve a cell's placed resource id regardless of which
// element's registry it came from.
func collectFlags(regs ...*resources.Registry) builtin.FlagLookup {
	flags := make(map[string]builtin.Flags)

	record := func(id string, collision, cover bool) {
		flags[id] = builtin.Flags{Collision: collision, Cover: cover}
	}

	for _, reg := range regs {
		if reg == nil {
			continue
		}
		for _, id := range reg.IDs() {
			d, _ := reg.Get(id)
			switch d.Kind {
			case resources.KindTile:
				record(d.Tile.ResourceID, d.Tile.Collision, d.Tile.Cover)
			case resources.KindAutoTile:
				record(d.AutoTile.ResourceID, d.AutoTile.Collision, d.AutoTile.Cover)
			case resources.KindObject:
				record(d.Object.ResourceID, d.Object.Collision, d.Object.Cover)
			case resources.KindTileGroup:
				for _, t := range d.TileGroup.Tiles {
					record(t.ResourceID, t.Collision, t.Cover)
				}
				for _, a := range d.TileGroup.AutoTiles {
					record(a.ResourceID, a.Collision, a.Cover)
				}
			case resources.KindObjectGroup:
				for _, o := range d.ObjectGroup.Objects {
					record(o.ResourceID, o.Collision, o.Cover)
				}
			}
		}
	}

	return func(id string) builtin.Flags { return flags[id] }
}
