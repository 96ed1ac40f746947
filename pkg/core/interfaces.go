package core

// Logger interface for renderer logging
type Logger interface {
	Printf(format string, args ...interface{})
}

// Intersector finds the nearest intersection of a ray with scene geometry.
// A parent shading point, when available, identifies the surface the ray
// originates from so implementations can avoid self-intersections.
type Intersector interface {
	// Trace intersects the ray and fills sp with the result. It reports
	// whether anything was hit; on a miss sp still records the ray.
	Trace(ray Ray, sp *ShadingPoint, parent *ShadingPoint) bool

	// Offset biases a surface point along its normal to keep secondary
	// rays from re-hitting the surface they leave.
	Offset(point, normal Vec3) Vec3
}

// BSDFInputs carries the evaluated input values of a BSDF at a surface
// point. Each BSDF implementation defines its own concrete input struct
// and receives it back in Sample and Evaluate.
type BSDFInputs interface{}

// BSDF models surface scattering.
// All direction arguments are unit vectors pointing away from the surface.
type BSDF interface {
	// Sample draws an incoming direction for the given outgoing direction.
	// The returned value is the BSDF value multiplied by
	// |cos(incoming, shading normal)|. Sampling can fail (for example when
	// the outgoing direction is below the surface), in which case ok is false.
	Sample(sctx *SamplingContext, inputs BSDFInputs, adjoint bool, geometricNormal Vec3, basis Basis, outgoing Vec3) (sample BSDFSample, ok bool)

	// Evaluate computes the BSDF value and sampling density for a fixed
	// pair of directions. It reports false when the BSDF is not defined
	// for that pair (wrong hemisphere, or a Dirac delta lobe).
	Evaluate(inputs BSDFInputs, adjoint bool, geometricNormal Vec3, basis Basis, outgoing, incoming Vec3) (value Spectrum, probability float64, defined bool)

	// EvaluateInputs resolves the BSDF's inputs at a surface
	// parameterization, reading any bound textures through the cache.
	EvaluateInputs(tc TextureCache, uv Vec2) BSDFInputs
}

// EDF models directional emission from a light surface
type EDF interface {
	// Sample draws an emission direction from the surface described by
	// the geometric normal and shading basis, returning the emitted
	// value and the sampling density over solid angle.
	Sample(geometricNormal Vec3, basis Basis, s Vec2) (direction Vec3, value Spectrum, probability float64)

	// Evaluate returns the emitted value and sampling density toward a
	// given outgoing direction. Value is zero outside the emission cone.
	Evaluate(geometricNormal Vec3, basis Basis, outgoing Vec3) (value Spectrum, probability float64)
}

// EnvironmentLight models illumination arriving from infinity.
// Directions point from the scene toward the environment.
type EnvironmentLight interface {
	// Sample draws a direction toward the environment with its radiance
	// and sampling density over solid angle.
	Sample(s Vec2) (direction Vec3, value Spectrum, probability float64)

	// Evaluate returns the environment radiance and sampling density for
	// a fixed direction.
	Evaluate(direction Vec3) (value Spectrum, probability float64)
}

// Texture is a source of color values addressed by uv coordinates
type Texture interface {
	Sample(uv Vec2) Spectrum
}

// TextureCache memoizes texture lookups. Implementations are safe for
// use by a single worker; each worker owns its own cache handle.
type TextureCache interface {
	Evaluate(texture Texture, uv Vec2) Spectrum
}

// SurfaceShader computes the alpha mask of a surface at a shading point.
// An alpha below one makes the surface stochastically transparent.
type SurfaceShader interface {
	EvaluateAlphaMask(sctx *SamplingContext, tc TextureCache, sp *ShadingPoint) float64
}

// Material binds the shading components of a surface. Fields may be nil;
// the path tracer treats a missing shader or BSDF as a terminal state.
type Material struct {
	Shader SurfaceShader
	BSDF   BSDF
	EDF    EDF
}

// Camera projects world-space points onto the image plane and provides
// the film geometry needed to convert particle flux to radiance.
type Camera interface {
	// Project maps a world-space point to normalized device coordinates.
	// ok is false when the point lies behind the camera; callers must
	// still range-check the returned position against [0,1)².
	Project(point Vec3) (ndc Vec2, ok bool)

	// Position returns the camera position in world space
	Position() Vec3

	// Forward returns the unit gaze direction in world space
	Forward() Vec3

	// FilmDimensions returns the physical film width and height in meters
	FilmDimensions() Vec2

	// FocalLength returns the focal length in meters
	FocalLength() float64
}
