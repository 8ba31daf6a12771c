// Package random is the deterministic substrate the rest of tileforge builds
// on: a seeded RNG source, weighted choice over arbitrary items, and
// Perlin/double-Perlin noise fields. Nothing here is domain-specific — the
// map cache and generators are the only callers that know what a "tile" is.
package random

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand"
)

// New returns a deterministic random source seeded from seed. Two sources
// created from the same seed produce the same draw sequence.
func New(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// DeriveSeed combines a base seed with an offset into a new seed, the way
// mapcache.Cache.CreateCopy diverges a speculative branch's RNG stream
// without disturbing the original. Equal (seed, offset) pairs always derive
// the same value.
func DeriveSeed(seed int64, offset int64) int64 {
	h := fnv.New64a()
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[0:8], uint64(seed))
	binary.LittleEndian.PutUint64(buf[8:16], uint64(offset))
	h.Write(buf[:])
	return int64(h.Sum64())
}

// StableSeed hashes an arbitrary string (typically a map id) into a seed.
// Used when a build omits an explicit seed and a caller still wants the
// draw to be reproducible for a given identifier rather than purely random.
func StableSeed(key string) int64 {
	h := fnv.New64a()
	h.Write([]byte(key))
	return int64(h.Sum64())
}
