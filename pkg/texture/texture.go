// Package texture provides texture sources and a byte-bounded lookup
// cache shared by the shading components that read textures.
package texture

import (
	"math"

	"github.com/calder-r/go-light-tracer/pkg/core"
)

// SolidTexture returns the same value for every uv
type SolidTexture struct {
	Value core.Spectrum
}

// NewSolidTexture creates a constant-valued texture
func NewSolidTexture(value core.Spectrum) *SolidTexture {
	return &SolidTexture{Value: value}
}

// Sample implements core.Texture
func (t *SolidTexture) Sample(uv core.Vec2) core.Spectrum {
	return t.Value
}

// CheckerTexture alternates two values on a uv grid
type CheckerTexture struct {
	Odd, Even core.Spectrum
	Scale     float64 // number of checker cells per unit uv
}

// NewCheckerTexture creates a checker texture with the given cell scale
func NewCheckerTexture(odd, even core.Spectrum, scale float64) *CheckerTexture {
	return &CheckerTexture{Odd: odd, Even: even, Scale: scale}
}

// Sample implements core.Texture
func (t *CheckerTexture) Sample(uv core.Vec2) core.Spectrum {
	iu := int(math.Floor(uv.X * t.Scale))
	iv := int(math.Floor(uv.Y * t.Scale))
	if (iu+iv)%2 != 0 {
		return t.Odd
	}
	return t.Even
}
