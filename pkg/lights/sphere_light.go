package lights

import (
	"math"

	"github.com/calder-r/go-light-tracer/pkg/core"
	"github.com/calder-r/go-light-tracer/pkg/geometry"
)

// SphereLight is an area emitter shaped as a sphere
type SphereLight struct {
	Sphere *geometry.Sphere
	area   float64
}

// NewSphereLight creates a sphere light. The sphere's material must carry an EDF.
func NewSphereLight(sphere *geometry.Sphere) *SphereLight {
	if sphere.Material == nil || sphere.Material.EDF == nil {
		panic("sphere light requires a material with an EDF")
	}
	return &SphereLight{
		Sphere: sphere,
		area:   4.0 * math.Pi * sphere.Radius * sphere.Radius,
	}
}

// SamplePosition implements Light by sampling the sphere surface uniformly
func (l *SphereLight) SamplePosition(s core.Vec2) LightSample {
	normal := core.SampleUniformSphere(s)
	point := l.Sphere.Center.Add(normal.Multiply(l.Sphere.Radius))

	return LightSample{
		Light:           l,
		Point:           point,
		GeometricNormal: normal,
		Basis:           core.NewBasis(normal),
		Probability:     1.0 / l.area,
	}
}

// Material implements Light
func (l *SphereLight) Material() *core.Material {
	return l.Sphere.Material
}

// Area implements Light
func (l *SphereLight) Area() float64 {
	return l.area
}
