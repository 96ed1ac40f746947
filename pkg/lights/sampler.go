package lights

import "github.com/calder-r/go-light-tracer/pkg/core"

// WeightedLightSampler selects lights proportionally to their weights.
// Weights are typically the emitted power of each light so that bright
// emitters receive more particles.
type WeightedLightSampler struct {
	lights  []Light
	weights []float64
	cdf     []float64
	total   float64
}

// NewWeightedLightSampler creates a sampler over the given lights. The
// weights slice must have one positive entry per light.
func NewWeightedLightSampler(lightList []Light, weights []float64) *WeightedLightSampler {
	if len(lightList) != len(weights) {
		panic("light and weight counts do not match")
	}

	total := 0.0
	cdf := make([]float64, len(weights))
	for i, w := range weights {
		if w <= 0 {
			panic("light weights must be positive")
		}
		total += w
		cdf[i] = total
	}

	return &WeightedLightSampler{
		lights:  lightList,
		weights: weights,
		cdf:     cdf,
		total:   total,
	}
}

// NewPowerLightSampler weights each light by the luminance of its emitted
// radiance times its surface area.
func NewPowerLightSampler(lightList []Light) *WeightedLightSampler {
	weights := make([]float64, len(lightList))
	for i, l := range lightList {
		value, _ := l.Material().EDF.Evaluate(core.Vec3{Z: 1}, core.NewBasis(core.Vec3{Z: 1}), core.Vec3{Z: 1})
		weights[i] = value.Luminance() * l.Area()
	}
	return NewWeightedLightSampler(lightList, weights)
}

// NewUniformLightSampler gives every light the same selection probability
func NewUniformLightSampler(lightList []Light) *WeightedLightSampler {
	weights := make([]float64, len(lightList))
	for i := range weights {
		weights[i] = 1
	}
	return NewWeightedLightSampler(lightList, weights)
}

// Sample selects a light using a uniform sample in [0,1) and returns it
// with its selection probability.
func (s *WeightedLightSampler) Sample(u float64) (Light, float64) {
	target := u * s.total

	// Binary search the CDF
	lo, hi := 0, len(s.cdf)-1
	for lo < hi {
		mid := (lo + hi) / 2
		if s.cdf[mid] <= target {
			lo = mid + 1
		} else {
			hi = mid
		}
	}

	return s.lights[lo], s.weights[lo] / s.total
}

// Probability returns the selection probability of the light at index i
func (s *WeightedLightSampler) Probability(i int) float64 {
	return s.weights[i] / s.total
}

// Count returns the number of lights
func (s *WeightedLightSampler) Count() int {
	return len(s.lights)
}
