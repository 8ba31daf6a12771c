// Package mapbuild orchestrates elements against a map cache end to end:
// resource setup, parallel asset loading, sequential element placement, the
// built-in Collision/Cover passes, auto-tile resolution, and export (spec
// §4.F). It is the one package that imports every other core package.
package mapbuild

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"tileforge/builtin"
	"tileforge/element"
	"tileforge/mapcache"
	"tileforge/random"
	"tileforge/resources"
	"tileforge/tferrors"
)

// DefaultLayers is the layer count a Builder uses when none is given,
// matching spec §4.F's "Builder(map_id, W, H, L=10, seed=?)".
const DefaultLayers = 10

// Builder holds an ordered list of elements and the geometry/seed for one
// map build.
type Builder struct {
	MapID  string
	W, H, L int
	Seed   int64

	elements  []element.Element
	names     map[string]bool
	overrides map[string]*resources.Registry

	logger *log.Logger
	err    error
}

// New creates a Builder for a map of the given dimensions. If seed is nil, a
// seed is derived from mapID (spec §6: "absence means one is drawn from an
// unspecified entropy source and logged for reproducibility") so a build
// without an explicit seed is still reproducible for a given id.
func New(mapID string, w, h, layers int, seed *int64, logger *log.Logger) *Builder {
	if mapID == "" {
		mapID = uuid.NewString()
	}
	if layers <= 0 {
		layers = DefaultLayers
	}
	if logger == nil {
		logger = log.Default()
	}

	resolvedSeed := random.StableSeed(mapID)
	if seed != nil {
		resolvedSeed = *seed
	} else {
		logger.Printf("mapbuild: no seed supplied for %q, derived %d from map id", mapID, resolvedSeed)
	}

	return &Builder{
		MapID:  mapID,
		W:      w,
		H:      h,
		L:      layers,
		Seed:   resolvedSeed,
		names:  make(map[string]bool),
		overrides: make(map[string]*resources.Registry),
		logger: logger,
	}
}

// Err returns the first construction error AddElement encountered, if any.
func (b *Builder) Err() error { return b.err }

// AddElement appends e, returning the Builder for chaining. A second
// element registered under a name already present is rejected (spec §4.F).
func (b *Builder) AddElement(e element.Element) *Builder {
	if b.err != nil {
		return b
	}
	if b.names[e.Name()] {
		b.err = errors.Wrapf(tferrors.ErrDuplicateResource, "mapbuild: element %q already added", e.Name())
		return b
	}
	b.names[e.Name()] = true
	b.elements = append(b.elements, e)
	return b
}

// WithOverride installs override descriptors for the named element, applied
// over its defaults per spec §4.E. Must be called before Build.
func (b *Builder) WithOverride(elementName string, overrides *resources.Registry) *Builder {
	b.overrides[elementName] = overrides
	return b
}

// Result is everything a build produces: the finalized cache plus the
// auto-tile indices resolved from it, keyed by layer and position, since
// the cache itself only ever remembers a family tag (spec §4.C).
type Result struct {
	Cache           *mapcache.Cache
	AutoTileIndices map[int]map[[2]int]int
	Registries      []*resources.Registry // every element's resolved registry, for BuildAllocation
}

// Build runs the full pipeline described in spec §4.F. The returned error,
// if any, is one of the tferrors kinds, or ctx.Err() when ctx is cancelled
// before an element runs; on error the cache is discarded, never partially
// exported (spec §7).
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	if b.err != nil {
		return nil, b.err
	}

	registries := make(map[string]*resources.Registry, len(b.elements))
	for _, e := range b.elements {
		registries[e.Name()] = element.Resolve(e, b.overrides[e.Name()])
	}

	loaded := make(map[string]*resources.LoadedSet, len(b.elements))
	for _, e := range b.elements {
		set, err := resources.Load(ctx, registries[e.Name()])
		if err != nil {
			return nil, errors.Wrapf(err, "mapbuild: loading assets for element %q", e.Name())
		}
		loaded[e.Name()] = set
	}

	cache := mapcache.NewCache(b.W, b.H, b.L, b.Seed)
	b.logger.Printf("mapbuild: build %q starting, %dx%dx%d seed=%d", b.MapID, b.W, b.H, b.L, b.Seed)

	for _, e := range b.elements {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if err := e.Build(ctx, cache, loaded[e.Name()]); err != nil {
			return nil, &tferrors.BuildAbortedError{Element: e.Name(), Cause: err}
		}
		b.logger.Printf("mapbuild: element %q complete", e.Name())
	}

	regs := make([]*resources.Registry, 0, len(registries))
	for _, reg := range registries {
		regs = append(regs, reg)
	}
	lookup := collectFlags(regs...)

	builtin.RunCollision(cache, lookup)
	builtin.RunCover(cache, lookup)
	b.logger.Printf("mapbuild: build %q collision/cover passes complete", b.MapID)

	autoTileIndices := make(map[int]map[[2]int]int)
	for layer := 0; layer < cache.L; layer++ {
		resolved := cache.ResolveAutoTiles(layer)
		if len(resolved) > 0 {
			autoTileIndices[layer] = resolved
		}
	}
	b.logger.Printf("mapbuild: build %q finished", b.MapID)

	return &Result{Cache: cache, AutoTileIndices: autoTileIndices, Registries: regs}, nil
}
