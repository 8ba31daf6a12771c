// Package builtin implements the two passes the Builder always runs after
// every user element has placed content (spec §4.F steps 5-6): deriving the
// collision layer from collision=true resources, and the cover layer from
// cover=true resources.
package builtin

import "tileforge/mapcache"

// Flags reports the collision/cover attributes of a resource id, sourced
// from whatever descriptor produced the cell (spec §4.B Tile/AutoTile/
// Object all carry these two booleans).
type Flags struct {
	Collision bool
	Cover     bool
}

// FlagLookup resolves a resource id placed in the cache to its Flags. The
// Builder constructs one covering every resource loaded across every
// element, since a cell only remembers the id it was placed with.
type FlagLookup func(resourceID string) Flags

// RunCollision scans every non-reserved layer; for each cell whose resource
// has Collision set, it drops an obstacle tile at that exact cell on the
// collision layer. Scanning ScanLayer rather than GetLayer means a
// multi-cell collision object's footprint cells are marked individually,
// not just its anchor (spec §4.F step 5).
func RunCollision(cache *mapcache.Cache, lookup FlagLookup) {
	runDerivation(cache, cache.CollisionLayer(), func(f Flags) bool { return f.Collision }, lookup)
}

// RunCover is RunCollision's analogue for cover=true resources and the
// cover layer (spec §4.F step 6).
func RunCover(cache *mapcache.Cache, lookup FlagLookup) {
	runDerivation(cache, cache.CoverLayer(), func(f Flags) bool { return f.Cover }, lookup)
}

func runDerivation(cache *mapcache.Cache, targetLayer int, want func(Flags) bool, lookup FlagLookup) {
	for layer := 0; layer < cache.L; layer++ {
		if cache.IsReservedLayer(layer) {
			continue
		}
		for _, placed := range cache.ScanLayer(layer) {
			if placed.Cell.ResourceID == "" {
				continue
			}
			if !want(lookup(placed.Cell.ResourceID)) {
				continue
			}
			// Obstacle markers are plain unit tiles; a cell already marked
			// by an earlier layer's pass is left alone rather than erroring.
			cache.DropTile(placed.X, placed.Y, targetLayer, "obstacle")
		}
	}
}
