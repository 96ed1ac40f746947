package core

import "math"

// Spectrum holds a radiometric quantity (radiance, exitance, throughput)
// as linear RGB samples. Components are never negative in valid data.
type Spectrum struct {
	R, G, B float64
}

// NewSpectrum creates a spectrum from individual samples
func NewSpectrum(r, g, b float64) Spectrum {
	return Spectrum{R: r, G: g, B: b}
}

// NewUniformSpectrum creates a spectrum with all samples set to v
func NewUniformSpectrum(v float64) Spectrum {
	return Spectrum{R: v, G: v, B: v}
}

// WhiteSpectrum is the multiplicative identity, the initial value of a path throughput.
func WhiteSpectrum() Spectrum {
	return Spectrum{R: 1, G: 1, B: 1}
}

// Add returns the sum of two spectra
func (s Spectrum) Add(other Spectrum) Spectrum {
	return Spectrum{s.R + other.R, s.G + other.G, s.B + other.B}
}

// Scale returns the spectrum scaled by a scalar
func (s Spectrum) Scale(factor float64) Spectrum {
	return Spectrum{s.R * factor, s.G * factor, s.B * factor}
}

// Mul returns component-wise multiplication of two spectra
func (s Spectrum) Mul(other Spectrum) Spectrum {
	return Spectrum{s.R * other.R, s.G * other.G, s.B * other.B}
}

// MaxComponent returns the largest spectral sample
func (s Spectrum) MaxComponent() float64 {
	return math.Max(s.R, math.Max(s.G, s.B))
}

// Luminance returns the perceptual luminance of the spectrum
// using standard weights: 0.299*R + 0.587*G + 0.114*B
func (s Spectrum) Luminance() float64 {
	return 0.299*s.R + 0.587*s.G + 0.114*s.B
}

// IsBlack reports whether every spectral sample is zero
func (s Spectrum) IsBlack() bool {
	return s.R == 0 && s.G == 0 && s.B == 0
}

// IsFinite reports whether every spectral sample is a finite number
func (s Spectrum) IsFinite() bool {
	return !math.IsNaN(s.R) && !math.IsInf(s.R, 0) &&
		!math.IsNaN(s.G) && !math.IsInf(s.G, 0) &&
		!math.IsNaN(s.B) && !math.IsInf(s.B, 0)
}

// ToRGB converts spectral radiance to a linear display RGB triple.
// Spectra are stored as linear RGB samples, so this is the identity;
// it marks the boundary where radiometry becomes color.
func (s Spectrum) ToRGB() Vec3 {
	return Vec3{X: s.R, Y: s.G, Z: s.B}
}

// ImageSample is a single weighted contribution to the image plane,
// positioned in normalized device coordinates in [0,1)².
// Samples are accumulated additively; their order does not matter.
type ImageSample struct {
	Position Vec2
	Color    Spectrum
	Alpha    float64
}
