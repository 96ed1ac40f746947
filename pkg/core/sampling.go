package core

import "math"

// SamplingContext supplies a deterministic stream of uniform samples in
// [0,1). Streams are splittable: value-copying a context (Fork) yields an
// independent substream, and two contexts built from the same seed and
// instance produce identical streams. This is what makes sample
// generation reproducible per sequence index across render passes.
type SamplingContext struct {
	state uint64
}

// NewSamplingContext creates a sampling context for the given base seed
// and instance number (typically a sequence index).
func NewSamplingContext(seed, instance uint64) SamplingContext {
	return SamplingContext{state: mix64(seed ^ mix64(instance+0x9e3779b97f4a7c15))}
}

// mix64 is the splitmix64 finalizer, used both to step the stream and to
// derive decorrelated child states.
func mix64(x uint64) uint64 {
	x += 0x9e3779b97f4a7c15
	z := x
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// next advances the stream and returns 64 raw bits
func (s *SamplingContext) next() uint64 {
	s.state = mix64(s.state)
	return s.state
}

// Next1D returns one uniform sample in [0,1)
func (s *SamplingContext) Next1D() float64 {
	return float64(s.next()>>11) * (1.0 / (1 << 53))
}

// Next2D returns one uniform sample in [0,1)²
func (s *SamplingContext) Next2D() Vec2 {
	x := s.Next1D()
	y := s.Next1D()
	return Vec2{X: x, Y: y}
}

// SplitInPlace decorrelates the stream before drawing count samples of
// the given dimension, so that sample batches drawn for different
// purposes do not alias each other.
func (s *SamplingContext) SplitInPlace(dims, count int) {
	s.state = mix64(s.state ^ uint64(dims)<<32 ^ uint64(count))
}

// Fork returns an independent child stream and advances this stream so
// that parent and child are decorrelated.
func (s *SamplingContext) Fork() SamplingContext {
	child := SamplingContext{state: mix64(s.state ^ 0x5851f42d4c957f2d)}
	s.state = mix64(s.state)
	return child
}

// SampleCosineHemisphere generates a cosine-weighted direction in the
// hemisphere around the normal. The corresponding density is cos(θ)/π.
func SampleCosineHemisphere(normal Vec3, sample Vec2) Vec3 {
	a := 2.0 * math.Pi * sample.X
	z := sample.Y
	r := math.Sqrt(z)

	local := Vec3{
		X: r * math.Cos(a),
		Y: r * math.Sin(a),
		Z: math.Sqrt(1.0 - z),
	}

	return NewBasis(normal).ToWorld(local)
}

// SampleCone samples a direction uniformly within a cone around the axis.
// cosTotalWidth is the cosine of the cone's half angle.
func SampleCone(axis Vec3, cosTotalWidth float64, sample Vec2) Vec3 {
	cosTheta := 1.0 - sample.X*(1.0-cosTotalWidth)
	sinTheta := math.Sqrt(math.Max(0, 1.0-cosTheta*cosTheta))
	phi := 2.0 * math.Pi * sample.Y

	local := Vec3{
		X: sinTheta * math.Cos(phi),
		Y: sinTheta * math.Sin(phi),
		Z: cosTheta,
	}

	return NewBasis(axis).ToWorld(local)
}

// SampleConePDF returns the density of SampleCone over solid angle
func SampleConePDF(cosTotalWidth float64) float64 {
	return 1.0 / (2.0 * math.Pi * (1.0 - cosTotalWidth))
}

// SampleUniformSphere generates a uniform direction on the unit sphere
func SampleUniformSphere(sample Vec2) Vec3 {
	z := 1.0 - 2.0*sample.X
	r := math.Sqrt(math.Max(0, 1.0-z*z))
	phi := 2.0 * math.Pi * sample.Y
	return Vec3{X: r * math.Cos(phi), Y: r * math.Sin(phi), Z: z}
}

// UniformSpherePDF is the density of SampleUniformSphere over solid angle
func UniformSpherePDF() float64 {
	return 1.0 / (4.0 * math.Pi)
}
