package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight of every edge unless a WeightFn says otherwise.
const DefaultEdgeWeight float64 = 1

// WeightFn draws one edge weight. rng may be nil when no random source was set.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Negative values are allowed so that
// Bellman-Ford inputs can be generated too.
func ConstantWeightFn(value float64) WeightFn {
	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn draws integers uniformly from [lo, hi]. Without a random
// source it returns lo. Panics if hi < lo.
func UniformWeightFn(lo, hi int) WeightFn {
	if hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || hi == lo {
			return float64(lo)
		}

		return float64(lo + rng.Intn(hi-lo+1))
	}
}
