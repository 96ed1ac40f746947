package material

import (
	"math"

	"github.com/calder-r/go-light-tracer/pkg/core"
)

// DiffuseEDF is a Lambertian emitter: radiance is constant over the
// emitting hemisphere, emission directions are cosine distributed.
type DiffuseEDF struct {
	Radiance core.Spectrum
}

func NewDiffuseEDF(radiance core.Spectrum) *DiffuseEDF {
	return &DiffuseEDF{Radiance: radiance}
}

// Sample implements core.EDF
func (e *DiffuseEDF) Sample(geometricNormal core.Vec3, basis core.Basis, s core.Vec2) (core.Vec3, core.Spectrum, float64) {
	direction := core.SampleCosineHemisphere(basis.Normal, s)
	probability := direction.Dot(basis.Normal) / math.Pi
	return direction, e.Radiance, probability
}

// Evaluate implements core.EDF
func (e *DiffuseEDF) Evaluate(geometricNormal core.Vec3, basis core.Basis, outgoing core.Vec3) (core.Spectrum, float64) {
	cosOut := outgoing.Dot(basis.Normal)
	if cosOut <= 0 {
		return core.Spectrum{}, 0
	}
	return e.Radiance, cosOut / math.Pi
}

// ConeEDF emits uniformly inside a cone around the surface normal,
// useful for spot-like area emitters.
type ConeEDF struct {
	Radiance core.Spectrum
	cosWidth float64
}

// NewConeEDF creates a cone emitter with the given half-angle in radians
func NewConeEDF(radiance core.Spectrum, halfAngle float64) *ConeEDF {
	return &ConeEDF{Radiance: radiance, cosWidth: math.Cos(halfAngle)}
}

// Sample implements core.EDF
func (e *ConeEDF) Sample(geometricNormal core.Vec3, basis core.Basis, s core.Vec2) (core.Vec3, core.Spectrum, float64) {
	direction := core.SampleCone(basis.Normal, e.cosWidth, s)
	return direction, e.Radiance, core.SampleConePDF(e.cosWidth)
}

// Evaluate implements core.EDF. Directions outside the cone carry no energy.
func (e *ConeEDF) Evaluate(geometricNormal core.Vec3, basis core.Basis, outgoing core.Vec3) (core.Spectrum, float64) {
	cosOut := outgoing.Dot(basis.Normal)
	if cosOut < e.cosWidth {
		return core.Spectrum{}, 0
	}
	return e.Radiance, core.SampleConePDF(e.cosWidth)
}
