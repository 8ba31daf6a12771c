package generators

import (
	"context"

	"tileforge/mapcache"
	"tileforge/random"
	"tileforge/resources"
)

const (
	ResourceFloor = "rooms-floor"
	ResourceWall  = "rooms-wall"
)

// RoomsElement carves a sequence of random rectangular rooms connected by
// L-shaped corridors, generalized from DungeonGenerator.GenerateRoomsAndCorridors.
// Each room is attempted via the cache's trial/commit idiom: it's carved on
// a speculative copy with CreateCopy, and only assigned back if it doesn't
// overlap a previously-placed room's walls.
type RoomsElement struct {
	Layer       int
	RoomCount   int
	MinRoomSize int
	MaxRoomSize int
}

// NewRoomsElement returns a RoomsElement that attempts 7 rooms, each 5x5 to
// 10x10.
func NewRoomsElement(layer int) *RoomsElement {
	return &RoomsElement{Layer: layer, RoomCount: 7, MinRoomSize: 5, MaxRoomSize: 10}
}

func (r *RoomsElement) Name() string { return "rooms" }

func (r *RoomsElement) SetupResources(reg *resources.Registry) {
	reg.Add(resources.TileDescriptor(resources.Tile{ResourceID: ResourceFloor, ImagePath: "assets/rooms/floor.png", Rate: 1}))
	reg.Add(resources.TileDescriptor(resources.Tile{ResourceID: ResourceWall, ImagePath: "assets/rooms/wall.png", Collision: true, Rate: 1}))
}

type room struct{ x, y, w, h int }

func (r *RoomsElement) Build(ctx context.Context, cache *mapcache.Cache, loaded *resources.LoadedSet) error {
	rng := cache.Rng()
	var placed []room

	for i := 0; i < r.RoomCount; i++ {
		w := r.MinRoomSize + rng.Intn(r.MaxRoomSize-r.MinRoomSize+1)
		h := r.MinRoomSize + rng.Intn(r.MaxRoomSize-r.MinRoomSize+1)
		if cache.W-w-1 <= 1 || cache.H-h-1 <= 1 {
			continue
		}
		x := 1 + rng.Intn(cache.W-w-1)
		y := 1 + rng.Intn(cache.H-h-1)

		candidate := room{x: x, y: y, w: w, h: h}
		overlaps := false
		for _, p := range placed {
			// Walled extents are inclusive: [x-1, x+w] by [y-1, y+h].
			if candidate.x-1 <= p.x+p.w && p.x-1 <= candidate.x+candidate.w &&
				candidate.y-1 <= p.y+p.h && p.y-1 <= candidate.y+candidate.h {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}
		copyCache := cache.CreateCopy(random.StableSeed("rooms") + int64(i))
		r.carveRoom(copyCache, candidate)
		if len(placed) > 0 {
			prev := placed[len(placed)-1]
			r.carveCorridor(copyCache, candidate.x+candidate.w/2, candidate.y+candidate.h/2, prev.x+prev.w/2, prev.y+prev.h/2)
		}

		if err := cache.Assign(copyCache); err != nil {
			return err
		}
		placed = append(placed, candidate)
	}
	return nil
}

func (r *RoomsElement) carveRoom(cache *mapcache.Cache, rm room) {
	for y := rm.y - 1; y <= rm.y+rm.h; y++ {
		for x := rm.x - 1; x <= rm.x+rm.w; x++ {
			inRoom := x >= rm.x && x < rm.x+rm.w && y >= rm.y && y < rm.y+rm.h
			if inRoom {
				cache.DropTile(x, y, r.Layer, ResourceFloor)
			} else {
				cache.DropTile(x, y, r.Layer, ResourceWall)
			}
		}
	}
}

func (r *RoomsElement) carveCorridor(cache *mapcache.Cache, x1, y1, x2, y2 int) {
	x, y := x1, y1
	for x != x2 {
		cache.DropTile(x, y, r.Layer, ResourceFloor)
		if x < x2 {
			x++
		} else {
			x--
		}
	}
	for y != y2 {
		cache.DropTile(x, y, r.Layer, ResourceFloor)
		if y < y2 {
			y++
		} else {
			y--
		}
	}
}
