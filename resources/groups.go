package resources

// TileGroup is a weighted union of Tile and AutoTile members. A group must
// be homogeneous (spec §9 Open Question b): once AddTile has been called,
// AddAutoTile fails and vice versa. Construction errors are sticky —
// recorded on the group and surfaced through Err() — so the fluent
// add_tile/add_auto_tile chaining spec §4.B describes reads naturally in Go
// without every call needing an explicit error check.
type TileGroup struct {
	ID        string
	Tiles     []Tile
	AutoTiles []AutoTile

	seen map[string]struct{}
	err  error
}

// NewTileGroup creates an empty, homogeneous-by-construction tile group.
func NewTileGroup(id string) *TileGroup {
	return &TileGroup{ID: id, seen: make(map[string]struct{})}
}

// Err returns the first construction error the group encountered, if any.
func (g *TileGroup) Err() error { return g.err }

func (g *TileGroup) reserve(resourceID string) bool {
	if g.err != nil {
		return false
	}
	if _, dup := g.seen[resourceID]; dup {
		g.err = ErrDuplicateResource
		return false
	}
	g.seen[resourceID] = struct{}{}
	return true
}

// AddTile appends a Tile member, returning the group for chaining.
func (g *TileGroup) AddTile(t Tile) *TileGroup {
	if !g.reserve(t.ResourceID) {
		return g
	}
	if len(g.AutoTiles) > 0 {
		g.err = ErrHeterogeneousGroup
		return g
	}
	g.Tiles = append(g.Tiles, t)
	return g
}

// AddAutoTile appends an AutoTile member, returning the group for chaining.
func (g *TileGroup) AddAutoTile(a AutoTile) *TileGroup {
	if !g.reserve(a.ResourceID) {
		return g
	}
	if len(g.Tiles) > 0 {
		g.err = ErrHeterogeneousGroup
		return g
	}
	g.AutoTiles = append(g.AutoTiles, a)
	return g
}

// ObjectGroup is a weighted union of Object members.
type ObjectGroup struct {
	ID      string
	Objects []Object

	seen map[string]struct{}
	err  error
}

// NewObjectGroup creates an empty object group.
func NewObjectGroup(id string) *ObjectGroup {
	return &ObjectGroup{ID: id, seen: make(map[string]struct{})}
}

// Err returns the first construction error the group encountered, if any.
func (g *ObjectGroup) Err() error { return g.err }

// AddObject appends an Object member, returning the group for chaining.
func (g *ObjectGroup) AddObject(o Object) *ObjectGroup {
	if g.err != nil {
		return g
	}
	if _, dup := g.seen[o.ResourceID]; dup {
		g.err = ErrDuplicateResource
		return g
	}
	g.seen[o.ResourceID] = struct{}{}
	g.Objects = append(g.Objects, o)
	return g
}
