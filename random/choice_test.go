package random

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWeightedChoiceReturnsErrorOnEmptyDistribution(t *testing.T) {
	rng := New(1)
	_, err := WeightedChoice(rng, []int{1, 2, 3}, func(int) float64 { return 0 })
	require.ErrorIs(t, err, ErrEmptyDistribution)
}

func TestWeightedChoiceOnlyDrawsPositiveWeightItems(t *testing.T) {
	rng := New(1)
	items := []string{"never", "always"}
	weight := func(s string) float64 {
		if s == "never" {
			return 0
		}
		return 1
	}
	for i := 0; i < 50; i++ {
		got, err := WeightedChoice(rng, items, weight)
		require.NoError(t, err)
		require.Equal(t, "always", got)
	}
}

func TestWeightedChoiceIsReproducibleForAGivenSeed(t *testing.T) {
	items := []int{1, 2, 3, 4}
	weight := func(i int) float64 { return float64(i) }

	a := New(99)
	b := New(99)
	for i := 0; i < 20; i++ {
		va, erra := WeightedChoice(a, items, weight)
		vb, errb := WeightedChoice(b, items, weight)
		require.NoError(t, erra)
		require.NoError(t, errb)
		require.Equal(t, va, vb)
	}
}
