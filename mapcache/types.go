package mapcache

// CellKind distinguishes what occupies a grid cell, if anything.
type CellKind int

const (
	// CellEmpty is the zero value: nothing has been placed here.
	CellEmpty CellKind = iota
	// CellTile is a unit tile placed by drop_tile or a tile-group draw.
	CellTile
	// CellAutoTileFamily tags a cell as belonging to an auto-tile family;
	// the concrete sprite variant is resolved lazily at export (spec §4.C).
	CellAutoTileFamily
	// CellObjectAnchor is the origin cell of a placed multi-cell object.
	CellObjectAnchor
	// CellFootprint is a non-anchor cell reserved by an object's footprint.
	CellFootprint
)

// Cell is the per-grid-position state spec §4.D describes as an "optional
// cell." The zero Cell (Kind == CellEmpty) means unoccupied.
type Cell struct {
	Kind       CellKind
	ResourceID string // tile id, auto-tile family id, or object id
	AnchorX    int    // for CellFootprint: the owning object's anchor column
	AnchorY    int    // for CellFootprint: the owning object's anchor row
}

// Empty reports whether the cell holds nothing.
func (c Cell) Empty() bool { return c.Kind == CellEmpty }

// PlacedCell is what GetLayer yields: a coordinate paired with the occupying
// cell. Only anchor and unit-tile cells are yielded, never footprint
// reservations (spec §4.D).
type PlacedCell struct {
	X, Y int
	Cell Cell
}

// anchorKey is a per-layer lookup key into Cache.anchors.
type anchorKey struct{ X, Y int }
