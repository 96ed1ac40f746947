package material

import "github.com/calder-r/go-light-tracer/pkg/core"

// ColorSource provides spectral input values that can be solid or textured
type ColorSource interface {
	Evaluate(tc core.TextureCache, uv core.Vec2) core.Spectrum
}

// ScalarSource provides scalar input values that can be solid or textured
type ScalarSource interface {
	Evaluate(tc core.TextureCache, uv core.Vec2) float64
}

// SolidColor is a constant color source
type SolidColor struct {
	Color core.Spectrum
}

// NewSolidColor creates a solid color source
func NewSolidColor(color core.Spectrum) SolidColor {
	return SolidColor{Color: color}
}

// Evaluate implements ColorSource
func (s SolidColor) Evaluate(tc core.TextureCache, uv core.Vec2) core.Spectrum {
	return s.Color
}

// TexturedColor reads a color from a texture through the cache
type TexturedColor struct {
	Texture core.Texture
}

// NewTexturedColor creates a texture-backed color source
func NewTexturedColor(texture core.Texture) TexturedColor {
	return TexturedColor{Texture: texture}
}

// Evaluate implements ColorSource
func (s TexturedColor) Evaluate(tc core.TextureCache, uv core.Vec2) core.Spectrum {
	if tc != nil {
		return tc.Evaluate(s.Texture, uv)
	}
	return s.Texture.Sample(uv)
}

// SolidScalar is a constant scalar source
type SolidScalar struct {
	Value float64
}

// NewSolidScalar creates a solid scalar source
func NewSolidScalar(value float64) SolidScalar {
	return SolidScalar{Value: value}
}

// Evaluate implements ScalarSource
func (s SolidScalar) Evaluate(tc core.TextureCache, uv core.Vec2) float64 {
	return s.Value
}

// TexturedScalar reads a scalar from a texture's luminance through the cache
type TexturedScalar struct {
	Texture core.Texture
}

// NewTexturedScalar creates a texture-backed scalar source
func NewTexturedScalar(texture core.Texture) TexturedScalar {
	return TexturedScalar{Texture: texture}
}

// Evaluate implements ScalarSource
func (s TexturedScalar) Evaluate(tc core.TextureCache, uv core.Vec2) float64 {
	if tc != nil {
		return tc.Evaluate(s.Texture, uv).Luminance()
	}
	return s.Texture.Sample(uv).Luminance()
}
