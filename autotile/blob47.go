// Package autotile resolves 8-neighbor adjacency into the 47-case blob index
// a composite auto-tile sprite sheet is cut into (spec §4.C). Resolution is
// deliberately lazy: generators only tag a cell as belonging to a family on a
// layer, and the resolver (mapcache.Cache.ResolveAutoTiles, calling CellIndex
// per cell) walks the finished grid once so that cells placed in any order
// converge to the same rendering.
package autotile

// Neighbor identifies one of the 8 directions around a cell. The bit order
// matches the N, NE, E, SE, S, SW, W, NW enumeration in spec §4.C.
type Neighbor int

const (
	North Neighbor = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

var allNeighbors = [8]Neighbor{North, NorthEast, East, SouthEast, South, SouthWest, West, NorthWest}

// offsets gives the (dx, dy) a neighbor direction corresponds to, in a
// row-major grid where +y is south.
var offsets = [8][2]int{
	North:     {0, -1},
	NorthEast: {1, -1},
	East:      {1, 0},
	SouthEast: {1, 1},
	South:     {0, 1},
	SouthWest: {-1, 1},
	West:      {-1, 0},
	NorthWest: {-1, -1},
}

// Grid is the minimal view AdjacencyMask needs of a map layer: whether the cell at
// (x, y) belongs to the given family. Out-of-bounds coordinates are the
// caller's concern — SameFamily is never called for them, since spec §4.C
// treats out-of-bounds neighbors as always occupied.
type Grid interface {
	Width() int
	Height() int
	SameFamily(x, y int, family string) bool
}

// AdjacencyMask computes the raw 8-bit neighbor code for (x, y) within grid,
// for the given family. An out-of-bounds neighbor counts as occupied, per
// spec §4.C, so that map edges render as interior rather than border.
func AdjacencyMask(grid Grid, x, y int, family string) uint8 {
	var mask uint8
	for _, n := range allNeighbors {
		dx, dy := offsets[n][0], offsets[n][1]
		nx, ny := x+dx, y+dy
		occupied := true
		if nx >= 0 && nx < grid.Width() && ny >= 0 && ny < grid.Height() {
			occupied = grid.SameFamily(nx, ny, family)
		}
		if occupied {
			mask |= 1 << uint(n)
		}
	}
	return mask
}

// Reduce collapses a raw 8-bit adjacency mask into blob47's reduced form: a
// diagonal bit survives only if both of its adjacent cardinal bits are also
// set (spec §4.C: "NE contributes only if N and E are set").
func Reduce(raw uint8) uint8 {
	var reduced uint8
	has := func(n Neighbor) bool { return raw&(1<<uint(n)) != 0 }

	if has(North) {
		reduced |= 1 << uint(North)
	}
	if has(East) {
		reduced |= 1 << uint(East)
	}
	if has(South) {
		reduced |= 1 << uint(South)
	}
	if has(West) {
		reduced |= 1 << uint(West)
	}
	if has(NorthEast) && has(North) && has(East) {
		reduced |= 1 << uint(NorthEast)
	}
	if has(SouthEast) && has(South) && has(East) {
		reduced |= 1 << uint(SouthEast)
	}
	if has(SouthWest) && has(South) && has(West) {
		reduced |= 1 << uint(SouthWest)
	}
	if has(NorthWest) && has(North) && has(West) {
		reduced |= 1 << uint(NorthWest)
	}
	return reduced
}

// blob47Table maps every reachable reduced mask to its canonical index.
// Built once at package init by enumerating the 256 raw masks, reducing
// each, deduplicating, and sorting the 47 resulting values ascending. The
// all-zero (fully isolated) mask reduces to 0 and therefore always sorts to
// index 0, resolving spec §9 Open Question (a).
var blob47Table = buildBlob47Table()

func buildBlob47Table() map[uint8]int {
	seen := make(map[uint8]struct{})
	for raw := 0; raw < 256; raw++ {
		seen[Reduce(uint8(raw))] = struct{}{}
	}

	reduced := make([]uint8, 0, len(seen))
	for v := range seen {
		reduced = append(reduced, v)
	}
	// Simple ascending insertion sort; the set is fixed at 47 entries so
	// there's no need to reach for sort.Slice here.
	for i := 1; i < len(reduced); i++ {
		for j := i; j > 0 && reduced[j-1] > reduced[j]; j-- {
			reduced[j-1], reduced[j] = reduced[j], reduced[j-1]
		}
	}

	table := make(map[uint8]int, len(reduced))
	for i, v := range reduced {
		table[v] = i
	}
	return table
}

// Index returns the canonical blob47 index (0-46) for a cell's raw adjacency
// mask, after reduction.
func Index(raw uint8) int {
	return blob47Table[Reduce(raw)]
}

// CellIndex computes the blob47 index for (x, y) in one step: mask, reduce,
// and look up.
func CellIndex(grid Grid, x, y int, family string) int {
	return Index(AdjacencyMask(grid, x, y, family))
}

// TableSize reports how many distinct canonical indices blob47 produces.
// Always 47; exported so callers and tests can assert the invariant without
// hardcoding the constant.
func TableSize() int {
	return len(blob47Table)
}
