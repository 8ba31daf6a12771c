// Package mapcache is the heart of the core (spec §4.D): a layered grid of
// cells plus the trial/commit discipline (CreateCopy → mutate → Assign) that
// lets elements attempt speculative placements without ever leaving the
// shared cache in a partially-mutated state.
package mapcache

import (
	"math/rand"

	"tileforge/random"
	"tileforge/resources"
	"tileforge/tferrors"
)

// Cache holds the full layered grid for one build. It is owned exclusively
// by the build in progress (spec §5): once Builder.Build returns, callers
// should treat it as frozen.
type Cache struct {
	W, H, L int
	seed    int64
	rng     *rand.Rand

	layers  [][]Cell          // layers[l][y*W+x]
	anchors []map[anchorKey]anchorKey // layers[l]: cell coord -> anchor coord
}

// NewCache allocates an empty W-by-H grid with L layers, seeded for
// reproducible draws.
func NewCache(w, h, l int, seed int64) *Cache {
	c := &Cache{W: w, H: h, L: l, seed: seed, rng: random.New(seed)}
	c.layers = make([][]Cell, l)
	c.anchors = make([]map[anchorKey]anchorKey, l)
	for i := 0; i < l; i++ {
		c.layers[i] = make([]Cell, w*h)
		c.anchors[i] = make(map[anchorKey]anchorKey)
	}
	return c
}

// Rng returns the cache's random source, for elements and built-in passes
// that need draws tied to the build's reproducible seed.
func (c *Cache) Rng() *rand.Rand { return c.rng }

// Seed returns the seed this cache (or its most recent Assign source) was
// created with, for generators that need to derive their own independent
// seeded fields (e.g. noise) without consuming draws from Rng.
func (c *Cache) Seed() int64 { return c.seed }

// CollisionLayer returns the reserved collision layer index: the second
// highest layer (spec §2: "typically 8 and 9 in a 10-layer map").
func (c *Cache) CollisionLayer() int { return c.L - 2 }

// CoverLayer returns the reserved cover layer index: the highest layer.
func (c *Cache) CoverLayer() int { return c.L - 1 }

// IsReservedLayer reports whether layer is the collision or cover layer,
// the two indices generators must not write to directly (spec §2).
func (c *Cache) IsReservedLayer(layer int) bool {
	return layer == c.CollisionLayer() || layer == c.CoverLayer()
}

func (c *Cache) inBounds(x, y int) bool {
	return x >= 0 && x < c.W && y >= 0 && y < c.H
}

func (c *Cache) index(x, y int) int { return y*c.W + x }

func (c *Cache) cellAt(layer, x, y int) Cell {
	return c.layers[layer][c.index(x, y)]
}

func (c *Cache) setCellAt(layer, x, y int, cell Cell) {
	c.layers[layer][c.index(x, y)] = cell
}

// CellAt returns the cell at (x, y) on layer. Out-of-bounds coordinates
// return the zero (empty) Cell rather than panicking, since exporters and
// built-in passes scan full rectangles without bounds-checking every call.
func (c *Cache) CellAt(layer, x, y int) Cell {
	if !c.inBounds(x, y) {
		return Cell{}
	}
	return c.cellAt(layer, x, y)
}

// CheckExists reports whether (x, y, layer) is occupied by an anchor, a
// footprint reservation, or a unit tile.
func (c *Cache) CheckExists(x, y, layer int) bool {
	if !c.inBounds(x, y) {
		return false
	}
	return !c.cellAt(layer, x, y).Empty()
}

// DropTile places a unit tile, succeeding iff the cell is empty and
// in-bounds. Never panics; always returns false rather than raising on a
// failed placement, per spec §4.D.
func (c *Cache) DropTile(x, y, layer int, resourceID string) bool {
	if layer < 0 || layer >= c.L || !c.inBounds(x, y) || !c.cellAt(layer, x, y).Empty() {
		return false
	}
	c.setCellAt(layer, x, y, Cell{Kind: CellTile, ResourceID: resourceID})
	return true
}

// DropAutoTileFamily tags a cell as belonging to an auto-tile family,
// succeeding under the same conditions as DropTile. The concrete sprite
// variant is resolved later by the auto-tile pass (spec §4.C), not here.
func (c *Cache) DropAutoTileFamily(x, y, layer int, family string) bool {
	if !c.inBounds(x, y) || !c.cellAt(layer, x, y).Empty() {
		return false
	}
	c.setCellAt(layer, x, y, Cell{Kind: CellAutoTileFamily, ResourceID: family})
	return true
}

// DropTilesFromTileGroup draws a member from group by weighted choice for
// each position and attempts to place it; collisions are silently skipped
// (spec §4.D). AutoTile members tag the cell's family rather than storing a
// concrete variant. Returns the count of positions that were actually
// placed.
func (c *Cache) DropTilesFromTileGroup(group *resources.TileGroup, positions [][2]int, layer int) (int, error) {
	placed := 0
	isAutoTile := len(group.AutoTiles) > 0

	if isAutoTile {
		for _, pos := range positions {
			member, err := random.WeightedChoice(c.rng, group.AutoTiles, func(a resources.AutoTile) float64 { return 1 })
			if err != nil {
				return placed, err
			}
			if c.DropAutoTileFamily(pos[0], pos[1], layer, member.ResourceID) {
				placed++
			}
		}
		return placed, nil
	}

	for _, pos := range positions {
		member, err := random.WeightedChoice(c.rng, group.Tiles, func(t resources.Tile) float64 { return t.Rate })
		if err != nil {
			return placed, err
		}
		if c.DropTile(pos[0], pos[1], layer, member.ResourceID) {
			placed++
		}
	}
	return placed, nil
}

// DropObject places an object with its anchor at (x, y). Succeeds iff every
// cell in the footprint rectangle is in-bounds and empty on this layer, and
// (if the object has Collision set) empty on the collision layer too. On
// success the anchor cell gets a full reference, the remaining footprint
// cells get reservations pointing back to the anchor, and the layer's anchor
// map is updated for every covered cell. On failure, no state changes.
func (c *Cache) DropObject(x, y, layer int, obj resources.Object) bool {
	w, h := obj.Width, obj.Height
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}

	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			cx, cy := x+dx, y+dy
			if !c.inBounds(cx, cy) || !c.cellAt(layer, cx, cy).Empty() {
				return false
			}
			if obj.Collision && c.CheckExists(cx, cy, c.CollisionLayer()) {
				return false
			}
		}
	}

	anchor := anchorKey{X: x, Y: y}
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			cx, cy := x+dx, y+dy
			key := anchorKey{X: cx, Y: cy}
			if dx == 0 && dy == 0 {
				c.setCellAt(layer, cx, cy, Cell{Kind: CellObjectAnchor, ResourceID: obj.ResourceID})
			} else {
				c.setCellAt(layer, cx, cy, Cell{
					Kind: CellFootprint, ResourceID: obj.ResourceID,
					AnchorX: x, AnchorY: y,
				})
			}
			c.anchors[layer][key] = anchor
		}
	}
	return true
}

// GetLayer yields only anchor and unit-tile cells (never footprint
// reservations), in row-major order.
func (c *Cache) GetLayer(layer int) []PlacedCell {
	var out []PlacedCell
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			cell := c.cellAt(layer, x, y)
			switch cell.Kind {
			case CellTile, CellAutoTileFamily, CellObjectAnchor:
				out = append(out, PlacedCell{X: x, Y: y, Cell: cell})
			}
		}
	}
	return out
}

// ScanLayer yields every occupied cell on layer, including footprint
// reservations, in row-major order. Unlike GetLayer, this is for passes
// like the built-in Collision/Cover elements that must mark every cell a
// multi-cell object covers, not just its anchor.
func (c *Cache) ScanLayer(layer int) []PlacedCell {
	var out []PlacedCell
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			cell := c.cellAt(layer, x, y)
			if !cell.Empty() {
				out = append(out, PlacedCell{X: x, Y: y, Cell: cell})
			}
		}
	}
	return out
}

// AnchorOf returns the anchor coordinate covering (x, y) on layer, if any.
func (c *Cache) AnchorOf(x, y, layer int) (int, int, bool) {
	if !c.inBounds(x, y) {
		return 0, 0, false
	}
	a, ok := c.anchors[layer][anchorKey{X: x, Y: y}]
	return a.X, a.Y, ok
}

// CreateCopy deep-copies the grid, anchor maps, and rng state. The copy's
// rng is reseeded as DeriveSeed(seed, seedOffset) so that speculative
// branches diverge from the original draw sequence (spec §4.D).
func (c *Cache) CreateCopy(seedOffset int64) *Cache {
	derived := random.DeriveSeed(c.seed, seedOffset)
	out := &Cache{W: c.W, H: c.H, L: c.L, seed: derived, rng: random.New(derived)}
	out.layers = make([][]Cell, c.L)
	out.anchors = make([]map[anchorKey]anchorKey, c.L)
	for i := 0; i < c.L; i++ {
		out.layers[i] = make([]Cell, len(c.layers[i]))
		copy(out.layers[i], c.layers[i])
		out.anchors[i] = make(map[anchorKey]anchorKey, len(c.anchors[i]))
		for k, v := range c.anchors[i] {
			out.anchors[i][k] = v
		}
	}
	return out
}

// Assign overwrites self's grid, anchors, and rng state from other. Used to
// commit a speculative CreateCopy once a multi-step mutation is verified
// (spec §4.D trial/commit idiom).
func (c *Cache) Assign(other *Cache) error {
	if other.W != c.W || other.H != c.H || other.L != c.L {
		return &tferrors.ShapeMismatchError{
			Got:  [3]int{other.W, other.H, other.L},
			Want: [3]int{c.W, c.H, c.L},
		}
	}
	c.seed = other.seed
	c.rng = other.rng
	c.layers = make([][]Cell, c.L)
	c.anchors = make([]map[anchorKey]anchorKey, c.L)
	for i := 0; i < c.L; i++ {
		c.layers[i] = make([]Cell, len(other.layers[i]))
		copy(c.layers[i], other.layers[i])
		c.anchors[i] = make(map[anchorKey]anchorKey, len(other.anchors[i]))
		for k, v := range other.anchors[i] {
			c.anchors[i][k] = v
		}
	}
	return nil
}

// LayerView returns a view of one layer satisfying autotile.Grid, so the
// auto-tile resolver can treat a Cache layer as an adjacency grid without
// autotile knowing about layers or Cache exposing its raw cell slices.
func (c *Cache) LayerView(layer int) *LayerView {
	return &LayerView{cache: c, layer: layer}
}

// LayerView adapts one Cache layer to the autotile.Grid interface.
type LayerView struct {
	cache *Cache
	layer int
}

func (v *LayerView) Width() int  { return v.cache.W }
func (v *LayerView) Height() int { return v.cache.H }

// SameFamily reports whether (x, y) on this layer belongs to family.
func (v *LayerView) SameFamily(x, y int, family string) bool {
	if !v.cache.inBounds(x, y) {
		return false
	}
	cell := v.cache.cellAt(v.layer, x, y)
	return cell.Kind == CellAutoTileFamily && cell.ResourceID == family
}
