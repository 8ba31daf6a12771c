package random

import (
	"math/rand"

	"tileforge/tferrors"
)

// ErrEmptyDistribution is returned by WeightedChoice when every candidate
// has zero (or negative) weight, so no item can be drawn. It is the same
// value as tferrors.ErrEmptyDistribution.
var ErrEmptyDistribution = tferrors.ErrEmptyDistribution

// WeightedChoice draws one item from items with probability proportional to
// weight(item). Ties among zero-weight items never matter since the total
// must be strictly positive; when several items would straddle the drawn
// point due to floating point rounding, the first one whose cumulative
// weight reaches the draw wins, preserving insertion order as the
// tie-break.
func WeightedChoice[T any](rng *rand.Rand, items []T, weight func(T) float64) (T, error) {
	var zero T
	var total float64
	for _, it := range items {
		w := weight(it)
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return zero, ErrEmptyDistribution
	}

	draw := rng.Float64() * total
	var running float64
	for _, it := range items {
		w := weight(it)
		if w <= 0 {
			continue
		}
		running += w
		if draw < running {
			return it, nil
		}
	}
	// Floating point rounding can leave draw infinitesimally past the last
	// cumulative sum; fall back to the last positive-weight item.
	for i := len(items) - 1; i >= 0; i-- {
		if weight(items[i]) > 0 {
			return items[i], nil
		}
	}
	return zero, ErrEmptyDistribution
}
