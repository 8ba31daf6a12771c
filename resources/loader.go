package resources

import (
	"context"
	"os"

	"golang.org/x/sync/errgroup"

	"tileforge/tferrors"
)

// LoadedResource is what a Registry descriptor turns into once its backing
// image has been confirmed to exist (spec §4.B: "the loader... resolves
// image paths... and produces a LoadedResource keyed by the same id the
// element used"). Build-time placement only ever touches LoadedResource
// values, never raw Descriptors, so a resource that failed to load can never
// reach the cache.
type LoadedResource struct {
	Descriptor Descriptor
	ImagePaths []string // every image path the descriptor references, one per member
}

// LoadedSet is the id-keyed result of loading a Registry.
type LoadedSet struct {
	byID map[string]LoadedResource
}

// Get returns the loaded resource registered under id.
func (s *LoadedSet) Get(id string) (LoadedResource, bool) {
	r, ok := s.byID[id]
	return r, ok
}

// MustGet returns the loaded resource registered under id, or a
// *tferrors.MissingResourceError naming element as the caller.
func (s *LoadedSet) MustGet(element, id string) (LoadedResource, error) {
	r, ok := s.byID[id]
	if !ok {
		return LoadedResource{}, &tferrors.MissingResourceError{Element: element, ResourceID: id}
	}
	return r, nil
}

// imagePaths enumerates the distinct paths a descriptor's existence must be
// verified against before it can be placed.
func imagePaths(d Descriptor) []string {
	switch d.Kind {
	case KindTile:
		return []string{d.Tile.ImagePath}
	case KindAutoTile:
		return []string{d.AutoTile.ImagePath}
	case KindObject:
		return []string{d.Object.ImagePath}
	case KindTileGroup:
		paths := make([]string, 0, len(d.TileGroup.Tiles)+len(d.TileGroup.AutoTiles))
		for _, t := range d.TileGroup.Tiles {
			paths = append(paths, t.ImagePath)
		}
		for _, a := range d.TileGroup.AutoTiles {
			paths = append(paths, a.ImagePath)
		}
		return paths
	case KindObjectGroup:
		paths := make([]string, 0, len(d.ObjectGroup.Objects))
		for _, o := range d.ObjectGroup.Objects {
			paths = append(paths, o.ImagePath)
		}
		return paths
	default:
		return nil
	}
}

// statFile is overridable in tests so loader behavior can be exercised
// without a real asset directory on disk.
var statFile = func(path string) error {
	_, err := os.Stat(path)
	return err
}

// Load walks every descriptor in reg and, per spec §5's note that asset
// loading is the one step allowed to run in parallel, fans one goroutine out
// per descriptor to confirm its image path(s) exist. The first failure
// cancels the remaining checks and is returned wrapped as an
// *tferrors.AssetLoadFailedError.
func Load(ctx context.Context, reg *Registry) (*LoadedSet, error) {
	ids := reg.IDs()
	group, ctx := errgroup.WithContext(ctx)

	for _, id := range ids {
		id := id
		d, _ := reg.Get(id)
		group.Go(func() error {
			for _, path := range imagePaths(d) {
				if err := ctx.Err(); err != nil {
					return err
				}
				if path == "" {
					continue
				}
				if err := statFile(path); err != nil {
					return &tferrors.AssetLoadFailedError{ResourceID: id, Path: path, Cause: err}
				}
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	out := &LoadedSet{byID: make(map[string]LoadedResource, len(ids))}
	for _, id := range ids {
		d, _ := reg.Get(id)
		out.byID[id] = LoadedResource{Descriptor: d, ImagePaths: imagePaths(d)}
	}
	return out, nil
}
