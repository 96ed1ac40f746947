package material

import (
	"math"

	"github.com/calder-r/go-light-tracer/pkg/core"
)

// LambertianInputs holds the evaluated inputs of a Lambertian BRDF
type LambertianInputs struct {
	Reflectance core.Spectrum
}

// LambertianBRDF is a perfectly diffuse reflector
type LambertianBRDF struct {
	Reflectance ColorSource
}

// NewLambertianBRDF creates a diffuse BRDF with a solid reflectance
func NewLambertianBRDF(reflectance core.Spectrum) *LambertianBRDF {
	return &LambertianBRDF{Reflectance: NewSolidColor(reflectance)}
}

// NewTexturedLambertianBRDF creates a diffuse BRDF with a textured reflectance
func NewTexturedLambertianBRDF(reflectance ColorSource) *LambertianBRDF {
	return &LambertianBRDF{Reflectance: reflectance}
}

// EvaluateInputs implements core.BSDF
func (l *LambertianBRDF) EvaluateInputs(tc core.TextureCache, uv core.Vec2) core.BSDFInputs {
	return LambertianInputs{Reflectance: l.Reflectance.Evaluate(tc, uv)}
}

// Sample implements core.BSDF with cosine-weighted hemisphere sampling
func (l *LambertianBRDF) Sample(sctx *core.SamplingContext, inputs core.BSDFInputs, adjoint bool, geometricNormal core.Vec3, basis core.Basis, outgoing core.Vec3) (core.BSDFSample, bool) {
	if outgoing.Dot(geometricNormal) <= 0 {
		return core.BSDFSample{}, false
	}

	incoming := core.SampleCosineHemisphere(basis.Normal, sctx.Next2D())
	cosIn := incoming.Dot(basis.Normal)
	if cosIn <= 0 {
		return core.BSDFSample{}, false
	}

	reflectance := inputs.(LambertianInputs).Reflectance

	return core.BSDFSample{
		Incoming: incoming,
		// BRDF (reflectance/π) multiplied by |cos(incoming, normal)|
		Value:       reflectance.Scale(cosIn / math.Pi),
		Probability: core.NewDensity(cosIn / math.Pi),
		Mode:        core.ScatterDiffuse,
	}, true
}

// Evaluate implements core.BSDF for a fixed direction pair
func (l *LambertianBRDF) Evaluate(inputs core.BSDFInputs, adjoint bool, geometricNormal core.Vec3, basis core.Basis, outgoing, incoming core.Vec3) (core.Spectrum, float64, bool) {
	cosIn := incoming.Dot(basis.Normal)
	cosOut := outgoing.Dot(basis.Normal)
	if cosIn <= 0 || cosOut <= 0 {
		return core.Spectrum{}, 0, false
	}

	reflectance := inputs.(LambertianInputs).Reflectance
	value := reflectance.Scale(cosIn / math.Pi)
	probability := cosIn / math.Pi

	return value, probability, true
}
