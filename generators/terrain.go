// Package generators holds reference Element implementations built on the
// core protocol (element.Element, mapcache.Cache, resources.Registry).
// Adapted from the teacher's generation package: TerrainElement generalizes
// WorldMapGenerator's elevation/moisture biome selection, and RoomsElement
// generalizes DungeonGenerator's room-and-corridor carving.
package generators

import (
	"context"

	"tileforge/mapcache"
	"tileforge/random"
	"tileforge/resources"
)

// Terrain resource ids, exposed so templates can override individual
// biome tiles without needing to know the rest.
const (
	ResourceWater = "terrain-water"
	ResourceSand  = "terrain-sand"
	ResourceGrass = "terrain-grass"
	ResourceRock  = "terrain-rock"
)

// TerrainElement paints a base biome layer using two independently-scaled
// noise fields, the same elevation/moisture pairing WorldMapGenerator.
// GenerateWorldMap uses, generalized from a single hardcoded tile set to a
// configurable descriptor registry.
type TerrainElement struct {
	Layer          int
	ElevationScale float64
	MoistureScale  float64
	WaterThreshold float64 // elevation below this: water if moisture > 0.6, else sand
	RockThreshold  float64 // elevation above this -> rock
}

// NewTerrainElement returns a TerrainElement whose elevation and moisture
// fields both use scale 40 (noise sampled at tile coordinates divided by 40).
func NewTerrainElement(layer int) *TerrainElement {
	return &TerrainElement{
		Layer:          layer,
		ElevationScale: 40,
		MoistureScale:  40,
		WaterThreshold: 0.45,
		RockThreshold:  0.65,
	}
}

func (t *TerrainElement) Name() string { return "terrain" }

func (t *TerrainElement) SetupResources(reg *resources.Registry) {
	reg.Add(resources.TileDescriptor(resources.Tile{ResourceID: ResourceWater, ImagePath: "assets/terrain/water.png", Rate: 1}))
	reg.Add(resources.TileDescriptor(resources.Tile{ResourceID: ResourceSand, ImagePath: "assets/terrain/sand.png", Rate: 1}))
	reg.Add(resources.TileDescriptor(resources.Tile{ResourceID: ResourceGrass, ImagePath: "assets/terrain/grass.png", Rate: 1}))
	reg.Add(resources.TileDescriptor(resources.Tile{ResourceID: ResourceRock, ImagePath: "assets/terrain/rock.png", Collision: true, Rate: 1}))
}

// Build fills every cell of Layer with a biome tile chosen by elevation and
// moisture, mirroring determineBiome's elevation/moisture thresholds.
func (t *TerrainElement) Build(ctx context.Context, cache *mapcache.Cache, loaded *resources.LoadedSet) error {
	elevation := random.Perlin(cache.W, cache.H, seedFor(cache, "elevation"), t.ElevationScale, 4)
	moisture := random.Perlin(cache.W, cache.H, seedFor(cache, "moisture"), t.MoistureScale, 4)

	for y := 0; y < cache.H; y++ {
		for x := 0; x < cache.W; x++ {
			biome := t.determineBiome(elevation[y][x], moisture[y][x])
			cache.DropTile(x, y, t.Layer, biome)
		}
	}
	return nil
}

func (t *TerrainElement) determineBiome(elevation, moisture float32) string {
	switch {
	case elevation > float32(t.RockThreshold):
		return ResourceRock
	case elevation < float32(t.WaterThreshold) && moisture > 0.6:
		return ResourceWater
	case elevation < float32(t.WaterThreshold):
		return ResourceSand
	default:
		return ResourceGrass
	}
}

// seedFor derives a field-specific seed from the cache's seed so elevation
// and moisture sample independent noise fields without consuming draws
// from the cache's shared rng (spec §4.D reserves rng mutation for cache
// methods, not ambient generator bookkeeping).
func seedFor(cache *mapcache.Cache, field string) int64 {
	return random.DeriveSeed(cache.Seed(), random.StableSeed(field))
}
