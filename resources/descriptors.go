// Package resources models the declarative resource descriptors described
// in spec §4.B: tiles, auto-tiles, objects, and their weighted groups, plus
// the registry and loader an Element uses to turn descriptors into
// LoadedResource values the build can place.
package resources

import (
	"errors"

	"tileforge/tferrors"
)

// ErrDuplicateResource is returned when a group or registry is asked to add
// a resource id it already holds. It is the same value as
// tferrors.ErrDuplicateResource.
var ErrDuplicateResource = tferrors.ErrDuplicateResource

// ErrHeterogeneousGroup is returned when a TileGroup is asked to mix Tile
// and AutoTile members. Spec §9 Open Question (b) resolves this by
// rejecting heterogeneous groups at construction time.
var ErrHeterogeneousGroup = errors.New("resources: tile group cannot mix tiles and auto-tiles")

// Function is a (verb, noun) pair an Object descriptor can carry, e.g.
// ("open", "door").
type Function struct {
	Verb string
	Noun string
}

// Tile is a single-cell renderable resource descriptor.
type Tile struct {
	ResourceID string
	ImagePath  string
	Rate       float64
	Collision  bool
	Cover      bool
}

// AutoTile is a composite-sprite-sheet resource descriptor whose final
// per-cell sprite is resolved by neighborhood adjacency (spec §4.C).
type AutoTile struct {
	ResourceID string
	ImagePath  string
	Method     string // "blob47"
	Collision  bool
	Cover      bool
}

// Object is a multi-cell renderable resource descriptor.
type Object struct {
	ResourceID string
	ImagePath  string
	Width      int
	Height     int
	Rate       float64
	Collision  bool
	Cover      bool
	Functions  []Function
}

// Kind identifies which concrete descriptor type a Descriptor wraps.
type Kind int

const (
	KindTile Kind = iota
	KindAutoTile
	KindObject
	KindTileGroup
	KindObjectGroup
)

// Descriptor is the sum type over the five resource descriptor kinds,
// mirroring spec §4.B and the polymorphism note in §9. Exactly one of the
// typed fields is populated, selected by Kind.
type Descriptor struct {
	Kind        Kind
	Tile        *Tile
	AutoTile    *AutoTile
	Object      *Object
	TileGroup   *TileGroup
	ObjectGroup *ObjectGroup
}

// ResourceID returns the id the descriptor will be registered under.
func (d Descriptor) ResourceID() string {
	switch d.Kind {
	case KindTile:
		return d.Tile.ResourceID
	case KindAutoTile:
		return d.AutoTile.ResourceID
	case KindObject:
		return d.Object.ResourceID
	case KindTileGroup:
		return d.TileGroup.ID
	case KindObjectGroup:
		return d.ObjectGroup.ID
	default:
		return ""
	}
}

// TileDescriptor wraps a Tile as a Descriptor.
func TileDescriptor(t Tile) Descriptor { return Descriptor{Kind: KindTile, Tile: &t} }

// AutoTileDescriptor wraps an AutoTile as a Descriptor.
func AutoTileDescriptor(a AutoTile) Descriptor { return Descriptor{Kind: KindAutoTile, AutoTile: &a} }

// ObjectDescriptor wraps an Object as a Descriptor.
func ObjectDescriptor(o Object) Descriptor { return Descriptor{Kind: KindObject, Object: &o} }

// TileGroupDescriptor wraps a *TileGroup as a Descriptor.
func TileGroupDescriptor(g *TileGroup) Descriptor { return Descriptor{Kind: KindTileGroup, TileGroup: g} }

// ObjectGroupDescriptor wraps a *ObjectGroup as a Descriptor.
func ObjectGroupDescriptor(g *ObjectGroup) Descriptor {
	return Descriptor{Kind: KindObjectGroup, ObjectGroup: g}
}
