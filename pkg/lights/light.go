package lights

import "github.com/calder-r/go-light-tracer/pkg/core"

// LightSample is a position drawn on the surface of an emitter
type LightSample struct {
	Light           Light
	Point           core.Vec3
	GeometricNormal core.Vec3
	Basis           core.Basis
	Probability     float64 // area measure
}

// Light is an area emitter that supports surface sampling. Emission
// itself is described by the EDF of the light's material.
type Light interface {
	// SamplePosition draws a point on the light surface with a density
	// expressed with respect to surface area.
	SamplePosition(s core.Vec2) LightSample

	// Material returns the material bound to the light surface. It always
	// carries a non-nil EDF.
	Material() *core.Material

	// Area returns the surface area of the emitter
	Area() float64
}
