package sample

import (
	"math"
	"math/rand"
	"time"
)

// Sampler draws one value for a field. Implementations must stay within
// [spec.Min, spec.Max]; the generator does not re-check bounds.
type Sampler interface {
	Draw(spec FieldSpec) float64
}

// UniformSampler draws uniformly from each field's range and rounds to the
// field's precision.
type UniformSampler struct {
	rng *rand.Rand
}

// NewUniformSampler creates a sampler. A seed of 0 seeds from the clock.
func NewUniformSampler(seed int64) *UniformSampler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &UniformSampler{rng: rand.New(rand.NewSource(seed))}
}

func (s *UniformSampler) Draw(spec FieldSpec) float64 {
	v := spec.Min + s.rng.Float64()*(spec.Max-spec.Min)
	return roundTo(v, spec.Precision)
}

// roundTo rounds v to the given number of decimal places.
func roundTo(v float64, decimals int) float64 {
	if decimals <= 0 {
		return math.Round(v)
	}
	pow := math.Pow(10, float64(decimals))
	return math.Round(v*pow) / pow
}
