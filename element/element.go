// Package element defines the contract every map generator implements (spec
// §4.E): declare which resources you need, then place them onto a cache that
// already has those resources loaded.
package element

import (
	"context"

	"tileforge/mapcache"
	"tileforge/resources"
)

// Element is one step of a Builder's pipeline. SetupResources must be pure
// with respect to the element's own fields — it populates reg and must not
// touch a cache. Build performs placement and may be cancelled via ctx at
// any suspension point (spec §5).
type Element interface {
	// Name identifies the element; Builder rejects a second element
	// registered under the same name.
	Name() string

	// SetupResources populates reg with the descriptor groups this element
	// uses, keyed by the ids Build will look up in loaded resources.
	SetupResources(reg *resources.Registry)

	// Build places content onto cache. It receives a cache that already has
	// every descriptor from SetupResources (or its override) loaded.
	Build(ctx context.Context, cache *mapcache.Cache, loaded *resources.LoadedSet) error
}

// DefaultDescriptors runs e's SetupResources into a fresh registry, letting
// callers inspect or override an element's defaults without going through a
// Builder (spec §4.B: "used when callers want to inspect or override
// defaults before construction").
func DefaultDescriptors(e Element) *resources.Registry {
	reg := resources.NewRegistry()
	e.SetupResources(reg)
	return reg
}

// Resolve computes the registry Build should see for e: if overrides is
// nil, that's simply e's defaults. Otherwise overrides win per id and any
// id e declares but overrides omits is filled in from the defaults (spec
// §4.E: "missing ids are filled from defaults").
func Resolve(e Element, overrides *resources.Registry) *resources.Registry {
	defaults := DefaultDescriptors(e)
	if overrides == nil {
		return defaults
	}

	out := resources.NewRegistry()
	for _, id := range defaults.IDs() {
		d, _ := defaults.Get(id)
		out.Put(id, d)
	}
	for _, id := range overrides.IDs() {
		d, _ := overrides.Get(id)
		out.Put(id, d)
	}
	return out
}
