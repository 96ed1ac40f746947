package lights

import "github.com/calder-r/go-light-tracer/pkg/core"

// UniformEnvironment emits constant radiance from every direction
type UniformEnvironment struct {
	Radiance core.Spectrum
}

func NewUniformEnvironment(radiance core.Spectrum) *UniformEnvironment {
	return &UniformEnvironment{Radiance: radiance}
}

// Sample implements core.EnvironmentLight
func (e *UniformEnvironment) Sample(s core.Vec2) (core.Vec3, core.Spectrum, float64) {
	direction := core.SampleUniformSphere(s)
	return direction, e.Radiance, core.UniformSpherePDF()
}

// Evaluate implements core.EnvironmentLight
func (e *UniformEnvironment) Evaluate(direction core.Vec3) (core.Spectrum, float64) {
	return e.Radiance, core.UniformSpherePDF()
}

// GradientEnvironment blends between a horizon and a zenith color based
// on the vertical component of the direction, a simple sky model.
type GradientEnvironment struct {
	Horizon core.Spectrum
	Zenith  core.Spectrum
}

func NewGradientEnvironment(horizon, zenith core.Spectrum) *GradientEnvironment {
	return &GradientEnvironment{Horizon: horizon, Zenith: zenith}
}

// Sample implements core.EnvironmentLight with uniform sphere sampling
func (e *GradientEnvironment) Sample(s core.Vec2) (core.Vec3, core.Spectrum, float64) {
	direction := core.SampleUniformSphere(s)
	value, _ := e.Evaluate(direction)
	return direction, value, core.UniformSpherePDF()
}

// Evaluate implements core.EnvironmentLight
func (e *GradientEnvironment) Evaluate(direction core.Vec3) (core.Spectrum, float64) {
	t := 0.5 * (direction.Y + 1.0)
	value := e.Horizon.Scale(1.0 - t).Add(e.Zenith.Scale(t))
	return value, core.UniformSpherePDF()
}
