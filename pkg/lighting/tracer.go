package lighting

import "github.com/calder-r/go-light-tracer/pkg/core"

// ShadingContext bundles the scene services lighting computations need
type ShadingContext struct {
	Intersector  core.Intersector
	TextureCache core.TextureCache
}

// Tracer answers visibility queries. Unlike a plain intersection test it
// understands alpha masks: surfaces with partial alpha attenuate the ray
// instead of blocking it.
type Tracer struct {
	intersector core.Intersector
	tc          core.TextureCache
}

// NewTracer creates a tracer over the given shading context
func NewTracer(sc ShadingContext) *Tracer {
	return &Tracer{intersector: sc.Intersector, tc: sc.TextureCache}
}

// maxOccluderCount bounds the number of alpha-masked surfaces a
// visibility ray will step through.
const maxOccluderCount = 1000

// Trace follows a ray from origin toward direction and returns the first
// blocking shading point together with the transmission accumulated
// through any alpha-masked surfaces crossed on the way. A returned
// shading point with Hit false means the ray reached the environment.
func (t *Tracer) Trace(
	sctx *core.SamplingContext,
	origin core.Vec3,
	direction core.Vec3,
	time float64,
	parent *core.ShadingPoint) (core.ShadingPoint, float64) {

	// Two recycled shading points so the previous hit stays valid as the
	// parent of the next trace.
	var pair [2]core.ShadingPoint
	pairIndex := 0
	transmission := 1.0

	for i := 0; i < maxOccluderCount; i++ {
		ray := core.NewRayAtTime(origin, direction, time)

		sp := &pair[pairIndex]
		sp.Clear()
		if !t.intersector.Trace(ray, sp, parent) {
			return *sp, transmission
		}

		alpha := t.occluderAlpha(sctx, sp)
		if alpha >= 1.0 {
			// Opaque surface, the ray stops here.
			return *sp, transmission
		}

		transmission *= 1.0 - alpha
		if transmission == 0 {
			return *sp, 0
		}

		// Step through the surface and keep going.
		origin = sp.Point
		parent = sp
		pairIndex = 1 - pairIndex
	}

	return pair[1-pairIndex], transmission
}

// TraceBetween computes the transmission between two points. It returns
// zero when an opaque surface blocks the segment.
func (t *Tracer) TraceBetween(
	sctx *core.SamplingContext,
	origin core.Vec3,
	target core.Vec3,
	time float64,
	parent *core.ShadingPoint) float64 {

	var pair [2]core.ShadingPoint
	pairIndex := 0
	transmission := 1.0

	segment := target.Subtract(origin)
	remaining := segment.Length()
	direction := segment.Multiply(1.0 / remaining)

	for i := 0; i < maxOccluderCount; i++ {
		ray := core.NewRayAtTime(origin, direction, time)

		sp := &pair[pairIndex]
		sp.Clear()
		if !t.intersector.Trace(ray, sp, parent) {
			return transmission
		}

		// Hits at or beyond the target do not occlude the segment.
		if sp.Distance >= remaining-segmentEpsilon {
			return transmission
		}

		alpha := t.occluderAlpha(sctx, sp)
		if alpha >= 1.0 {
			return 0
		}

		transmission *= 1.0 - alpha
		if transmission == 0 {
			return 0
		}

		remaining -= sp.Distance
		origin = sp.Point
		parent = sp
		pairIndex = 1 - pairIndex
	}

	return transmission
}

// segmentEpsilon absorbs intersection jitter at the far end of a
// visibility segment, typically the surface of the light being sampled.
const segmentEpsilon = 1e-3

// occluderAlpha evaluates the alpha mask of a hit surface. Surfaces
// without a shader are opaque.
func (t *Tracer) occluderAlpha(sctx *core.SamplingContext, sp *core.ShadingPoint) float64 {
	if sp.Material == nil || sp.Material.Shader == nil {
		return 1.0
	}
	return sp.Material.Shader.EvaluateAlphaMask(sctx, t.tc, sp)
}
