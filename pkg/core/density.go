package core

// ScatteringMode classifies BSDF lobes. Modes combine as a bitmask to
// select which lobes a path tracer is allowed to follow.
type ScatteringMode int

const (
	// ScatterNone matches no scattering mode
	ScatterNone ScatteringMode = 0
	// ScatterDiffuse marks diffuse reflection or transmission
	ScatterDiffuse ScatteringMode = 1 << iota
	// ScatterGlossy marks glossy reflection or transmission
	ScatterGlossy
	// ScatterSpecular marks perfectly specular (Dirac delta) scattering
	ScatterSpecular

	// ScatterAll matches every scattering mode
	ScatterAll = ScatterDiffuse | ScatterGlossy | ScatterSpecular
)

// Has reports whether mode is included in the mask
func (m ScatteringMode) Has(mode ScatteringMode) bool {
	return m&mode != 0
}

// Density is a probability density that may be a Dirac delta.
// Delta densities arise from perfectly specular scattering, where the
// density is not defined in the usual sense and must never be used as a
// Monte Carlo divisor or compared against a regular density.
type Density struct {
	value float64
	delta bool
}

// NewDensity creates a regular probability density. Valid densities used
// as Monte Carlo weights are strictly positive.
func NewDensity(value float64) Density {
	return Density{value: value}
}

// DeltaDensity creates the Dirac delta density
func DeltaDensity() Density {
	return Density{delta: true}
}

// IsDelta reports whether this density is a Dirac delta
func (d Density) IsDelta() bool {
	return d.delta
}

// Value returns the density value. It must not be called on a delta density.
func (d Density) Value() float64 {
	if d.delta {
		panic("core: Value called on a Dirac delta density")
	}
	return d.value
}

// BSDFSample is the result of sampling a BSDF: a sampled incoming
// direction, the BSDF value for that direction (already multiplied by
// |cos(incoming, normal)|), the sampling density and the sampled lobe.
type BSDFSample struct {
	Incoming    Vec3
	Value       Spectrum
	Probability Density
	Mode        ScatteringMode
}
