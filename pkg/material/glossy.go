package material

import (
	"math"

	"github.com/calder-r/go-light-tracer/pkg/core"
)

// GlossyInputs holds the evaluated inputs of a glossy BRDF
type GlossyInputs struct {
	Reflectance core.Spectrum
	Exponent    float64
}

// GlossyBRDF is a cosine-power lobe around the mirror direction.
// Higher exponents give tighter highlights.
type GlossyBRDF struct {
	Reflectance ColorSource
	Exponent    float64
}

// NewGlossyBRDF creates a glossy BRDF with a solid reflectance
func NewGlossyBRDF(reflectance core.Spectrum, exponent float64) *GlossyBRDF {
	return &GlossyBRDF{Reflectance: NewSolidColor(reflectance), Exponent: exponent}
}

// EvaluateInputs implements core.BSDF
func (g *GlossyBRDF) EvaluateInputs(tc core.TextureCache, uv core.Vec2) core.BSDFInputs {
	return GlossyInputs{Reflectance: g.Reflectance.Evaluate(tc, uv), Exponent: g.Exponent}
}

// samplePowerCosineLobe draws a direction around the axis with density
// proportional to cos(α)^exponent.
func samplePowerCosineLobe(axis core.Vec3, exponent float64, s core.Vec2) core.Vec3 {
	cosAlpha := math.Pow(s.X, 1.0/(exponent+1.0))
	sinAlpha := math.Sqrt(math.Max(0, 1.0-cosAlpha*cosAlpha))
	phi := 2.0 * math.Pi * s.Y

	local := core.Vec3{
		X: sinAlpha * math.Cos(phi),
		Y: sinAlpha * math.Sin(phi),
		Z: cosAlpha,
	}
	return core.NewBasis(axis).ToWorld(local)
}

// Sample implements core.BSDF by sampling the lobe around the mirror direction
func (g *GlossyBRDF) Sample(sctx *core.SamplingContext, inputs core.BSDFInputs, adjoint bool, geometricNormal core.Vec3, basis core.Basis, outgoing core.Vec3) (core.BSDFSample, bool) {
	if outgoing.Dot(geometricNormal) <= 0 {
		return core.BSDFSample{}, false
	}

	in := inputs.(GlossyInputs)
	mirror := reflect(outgoing.Negate(), basis.Normal)
	incoming := samplePowerCosineLobe(mirror, in.Exponent, sctx.Next2D())

	cosIn := incoming.Dot(basis.Normal)
	if cosIn <= 0 || incoming.Dot(geometricNormal) <= 0 {
		return core.BSDFSample{}, false
	}

	value, probability := g.lobe(in, mirror, incoming, cosIn)
	if probability <= 0 {
		return core.BSDFSample{}, false
	}

	return core.BSDFSample{
		Incoming:    incoming,
		Value:       value,
		Probability: core.NewDensity(probability),
		Mode:        core.ScatterGlossy,
	}, true
}

// Evaluate implements core.BSDF for a fixed direction pair
func (g *GlossyBRDF) Evaluate(inputs core.BSDFInputs, adjoint bool, geometricNormal core.Vec3, basis core.Basis, outgoing, incoming core.Vec3) (core.Spectrum, float64, bool) {
	cosIn := incoming.Dot(basis.Normal)
	cosOut := outgoing.Dot(basis.Normal)
	if cosIn <= 0 || cosOut <= 0 {
		return core.Spectrum{}, 0, false
	}

	in := inputs.(GlossyInputs)
	mirror := reflect(outgoing.Negate(), basis.Normal)
	value, probability := g.lobe(in, mirror, incoming, cosIn)
	if probability <= 0 {
		return core.Spectrum{}, 0, false
	}

	return value, probability, true
}

// lobe evaluates the normalized cosine-power lobe and its density,
// with the BRDF value already multiplied by |cos(incoming, normal)|.
func (g *GlossyBRDF) lobe(in GlossyInputs, mirror, incoming core.Vec3, cosIn float64) (core.Spectrum, float64) {
	cosAlpha := incoming.Dot(mirror)
	if cosAlpha <= 0 {
		return core.Spectrum{}, 0
	}

	n := in.Exponent
	lobeShape := math.Pow(cosAlpha, n)

	// Normalized lobe value: (n+2)/2π · cosⁿ(α), density: (n+1)/2π · cosⁿ(α)
	value := in.Reflectance.Scale((n + 2.0) / (2.0 * math.Pi) * lobeShape * cosIn)
	probability := (n + 1.0) / (2.0 * math.Pi) * lobeShape

	return value, probability
}
