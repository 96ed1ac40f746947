package lights

import (
	"github.com/calder-r/go-light-tracer/pkg/core"
	"github.com/calder-r/go-light-tracer/pkg/geometry"
)

// QuadLight is an area emitter shaped as a parallelogram
type QuadLight struct {
	Quad *geometry.Quad
	area float64
}

// NewQuadLight creates a quad light. The quad's material must carry an EDF.
func NewQuadLight(quad *geometry.Quad) *QuadLight {
	if quad.Material == nil || quad.Material.EDF == nil {
		panic("quad light requires a material with an EDF")
	}
	return &QuadLight{Quad: quad, area: quad.Area()}
}

// SamplePosition implements Light by sampling the parallelogram uniformly
func (l *QuadLight) SamplePosition(s core.Vec2) LightSample {
	point := l.Quad.Corner.
		Add(l.Quad.U.Multiply(s.X)).
		Add(l.Quad.V.Multiply(s.Y))

	return LightSample{
		Light:           l,
		Point:           point,
		GeometricNormal: l.Quad.Normal,
		Basis:           core.NewBasis(l.Quad.Normal),
		Probability:     1.0 / l.area,
	}
}

// Material implements Light
func (l *QuadLight) Material() *core.Material {
	return l.Quad.Material
}

// Area implements Light
func (l *QuadLight) Area() float64 {
	return l.area
}
