package lights

import (
	"math"

	"github.com/calder-r/go-light-tracer/pkg/core"
	"github.com/calder-r/go-light-tracer/pkg/geometry"
)

// DiscLight is a flat circular area emitter
type DiscLight struct {
	Disc *geometry.Disc
}

// NewDiscLight creates a disc light. The disc's material must carry an EDF.
func NewDiscLight(disc *geometry.Disc) *DiscLight {
	if disc.Material == nil || disc.Material.EDF == nil {
		panic("disc light requires a material with an EDF")
	}
	return &DiscLight{Disc: disc}
}

// SamplePosition implements Light by sampling the disc area uniformly
func (l *DiscLight) SamplePosition(s core.Vec2) LightSample {
	radius := math.Sqrt(s.X)
	phi := 2 * math.Pi * s.Y
	point := l.Disc.PointAt(core.NewVec2(radius*math.Cos(phi), radius*math.Sin(phi)))

	return LightSample{
		Light:           l,
		Point:           point,
		GeometricNormal: l.Disc.Normal,
		Basis:           core.NewBasis(l.Disc.Normal),
		Probability:     1.0 / l.Disc.Area(),
	}
}

// Material implements Light
func (l *DiscLight) Material() *core.Material {
	return l.Disc.Material
}

// Area implements Light
func (l *DiscLight) Area() float64 {
	return l.Disc.Area()
}
