package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/bestpath/core"
)

// DefaultEdgeWeight is the weight of every edge unless WithWeightFn is given.
const DefaultEdgeWeight core.Weight = 1

// WeightFn draws one edge weight. rng may be nil for deterministic policies.
type WeightFn func(rng *rand.Rand) core.Weight

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) core.Weight {
	return DefaultEdgeWeight
}

// ConstantWeightFn always returns value. Panics if value < 0.
func ConstantWeightFn(value core.Weight) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) core.Weight {
		return value
	}
}

// UniformWeightFn draws integers uniformly from [min, max]. With a nil rng
// it returns min. Panics unless 0 ≤ min ≤ max.
func UniformWeightFn(min, max core.Weight) WeightFn {
	if min < 0 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand) core.Weight {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Int63n(max-min+1)
	}
}
