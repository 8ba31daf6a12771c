package mapcache

// MergeLayerFrom copies every occupied cell from src's given layer into dst's
// given layer, skipping any destination cell that is already occupied.
// Recovered from the distilled-away merge_layer_from helper in the original
// implementation's map cache (supplementing spec §4.D): useful for elements
// that build a feature on a scratch cache and splice it into the shared one
// without an explicit per-cell loop at the call site.
func (dst *Cache) MergeLayerFrom(src *Cache, srcLayer, dstLayer int) int {
	merged := 0
	for y := 0; y < src.H && y < dst.H; y++ {
		for x := 0; x < src.W && x < dst.W; x++ {
			cell := src.cellAt(srcLayer, x, y)
			if cell.Empty() || !dst.cellAt(dstLayer, x, y).Empty() {
				continue
			}
			dst.setCellAt(dstLayer, x, y, cell)
			if anchor, ok := src.anchors[srcLayer][anchorKey{X: x, Y: y}]; ok {
				dst.anchors[dstLayer][anchorKey{X: x, Y: y}] = anchor
			}
			merged++
		}
	}
	return merged
}

// FloodFillReachesEdge runs an iterative BFS from (startX, startY) on layer,
// treating cells for which passable returns true as traversable, and reports
// whether the fill reaches any edge cell of the grid. Recovered from the
// original implementation's flood_fill_to_edge helper (supplementing spec
// §4.D): generators that carve organic caverns or rooms use this to check
// open-area connectivity to the map boundary before committing a shape.
func (c *Cache) FloodFillReachesEdge(startX, startY, layer int, passable func(Cell) bool) bool {
	if !c.inBounds(startX, startY) {
		return false
	}
	if !passable(c.cellAt(layer, startX, startY)) {
		return false
	}

	visited := make(map[anchorKey]bool)
	queue := []anchorKey{{X: startX, Y: startY}}
	visited[queue[0]] = true

	reachesEdge := false
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		if cur.X == 0 || cur.Y == 0 || cur.X == c.W-1 || cur.Y == c.H-1 {
			reachesEdge = true
		}

		for _, d := range offsets4 {
			nx, ny := cur.X+d[0], cur.Y+d[1]
			if !c.inBounds(nx, ny) {
				continue
			}
			key := anchorKey{X: nx, Y: ny}
			if visited[key] {
				continue
			}
			if !passable(c.cellAt(layer, nx, ny)) {
				continue
			}
			visited[key] = true
			queue = append(queue, key)
		}
	}
	return reachesEdge
}

var offsets4 = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// NewScratch allocates a single-layer cache for generators that need a
// disposable working grid (e.g. carving a room shape before splicing it in
// with MergeLayerFrom) without paying for the full layer count of the real
// build. Recovered from the original implementation's single-layer scratch
// cache (supplementing spec §4.D).
func NewScratch(w, h int, seed int64) *Cache {
	return NewCache(w, h, 1, seed)
}
