package material

import "github.com/calder-r/go-light-tracer/pkg/core"

// SpecularInputs holds the evaluated inputs of a specular BRDF
type SpecularInputs struct {
	Reflectance core.Spectrum
}

// SpecularBRDF is a perfect mirror. Its sampling density is a Dirac
// delta: sampled values are used as-is, never divided by a density.
type SpecularBRDF struct {
	Reflectance ColorSource
}

// NewSpecularBRDF creates a mirror BRDF with a solid reflectance
func NewSpecularBRDF(reflectance core.Spectrum) *SpecularBRDF {
	return &SpecularBRDF{Reflectance: NewSolidColor(reflectance)}
}

// EvaluateInputs implements core.BSDF
func (s *SpecularBRDF) EvaluateInputs(tc core.TextureCache, uv core.Vec2) core.BSDFInputs {
	return SpecularInputs{Reflectance: s.Reflectance.Evaluate(tc, uv)}
}

// Sample implements core.BSDF with deterministic mirror reflection
func (s *SpecularBRDF) Sample(sctx *core.SamplingContext, inputs core.BSDFInputs, adjoint bool, geometricNormal core.Vec3, basis core.Basis, outgoing core.Vec3) (core.BSDFSample, bool) {
	incoming := reflect(outgoing.Negate(), basis.Normal)
	if incoming.Dot(geometricNormal) <= 0 {
		return core.BSDFSample{}, false
	}

	return core.BSDFSample{
		Incoming: incoming,
		// The cosine term cancels against the delta distribution
		Value:       inputs.(SpecularInputs).Reflectance,
		Probability: core.DeltaDensity(),
		Mode:        core.ScatterSpecular,
	}, true
}

// Evaluate implements core.BSDF; a delta lobe is never defined for an
// arbitrarily chosen direction pair.
func (s *SpecularBRDF) Evaluate(inputs core.BSDFInputs, adjoint bool, geometricNormal core.Vec3, basis core.Basis, outgoing, incoming core.Vec3) (core.Spectrum, float64, bool) {
	return core.Spectrum{}, 0, false
}

// reflect calculates the reflection of a vector v off a surface with normal n
func reflect(v, n core.Vec3) core.Vec3 {
	return v.Subtract(n.Multiply(2 * v.Dot(n)))
}
