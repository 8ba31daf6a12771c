package mapcache

import "tileforge/autotile"

// ResolveAutoTiles runs the blob47 resolver (spec §4.C) over every
// CellAutoTileFamily cell on layer, returning each such cell's canonical
// blob47 index keyed by position. Resolution never mutates the cache:
// generators only ever recorded a family tag, and this pass is the single
// place that turns adjacency into a concrete sprite index at export time.
func (c *Cache) ResolveAutoTiles(layer int) map[[2]int]int {
	view := c.LayerView(layer)
	out := make(map[[2]int]int)
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			cell := c.cellAt(layer, x, y)
			if cell.Kind != CellAutoTileFamily {
				continue
			}
			out[[2]int{x, y}] = autotile.CellIndex(view, x, y, cell.ResourceID)
		}
	}
	return out
}
