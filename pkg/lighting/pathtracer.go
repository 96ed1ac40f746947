package lighting

import (
	"math"

	"github.com/calder-r/go-light-tracer/pkg/core"
)

// PathVisitor receives the vertices of a traced path. The path tracer
// itself only walks the path; all radiance accounting happens in the
// visitor, which lets the same loop serve both camera paths and light
// paths.
type PathVisitor interface {
	// VisitVertex is called at every surface vertex with a scatterable
	// material. prevMode and prevProb describe the scattering event that
	// led to this vertex. Returning false terminates the path.
	VisitVertex(
		sctx *core.SamplingContext,
		sp *core.ShadingPoint,
		outgoing core.Vec3,
		bsdf core.BSDF,
		inputs core.BSDFInputs,
		prevMode core.ScatteringMode,
		prevProb core.Density,
		throughput core.Spectrum) bool

	// VisitEnvironment is called when the path escapes the scene.
	// outgoing points from the environment back toward the last vertex.
	VisitEnvironment(
		sp *core.ShadingPoint,
		outgoing core.Vec3,
		prevMode core.ScatteringMode,
		throughput core.Spectrum)
}

// hardPathLengthLimit caps runaway paths that user settings do not
// bound, for example two parallel mirrors with a zero max path length.
const hardPathLengthLimit = 10000

// PathTracer walks scattering paths through a scene, calling a
// PathVisitor at every vertex. It is generic over the transport
// direction: adjoint tracers propagate importance (light paths), nonadjoint
// tracers propagate radiance (camera paths).
type PathTracer struct {
	visitor         PathVisitor
	modes           core.ScatteringMode
	adjoint         bool
	rrMinPathLength int
	maxPathLength   int
	logger          core.Logger
}

// NewPathTracer creates a path tracer.
// modes masks the scattering modes the tracer is allowed to follow;
// sampling a lobe outside the mask terminates the path.
// rrMinPathLength is the path length at which Russian Roulette starts
// (zero disables it). maxPathLength bounds the path (zero means unbounded).
func NewPathTracer(
	visitor PathVisitor,
	modes core.ScatteringMode,
	adjoint bool,
	rrMinPathLength int,
	maxPathLength int,
	logger core.Logger) *PathTracer {

	return &PathTracer{
		visitor:         visitor,
		modes:           modes,
		adjoint:         adjoint,
		rrMinPathLength: rrMinPathLength,
		maxPathLength:   maxPathLength,
		logger:          logger,
	}
}

// Trace casts the ray into the scene and walks the resulting path. It
// returns the number of vertices of the path. parent, when non-nil,
// identifies the surface the ray leaves.
func (t *PathTracer) Trace(
	sctx *core.SamplingContext,
	intersector core.Intersector,
	tc core.TextureCache,
	ray core.Ray,
	parent *core.ShadingPoint) int {

	var sp core.ShadingPoint
	intersector.Trace(ray, &sp, parent)

	return t.TracePoint(sctx, intersector, tc, &sp)
}

// TracePoint walks the path starting at an already-intersected shading
// point and returns the number of vertices of the path.
func (t *PathTracer) TracePoint(
	sctx *core.SamplingContext,
	intersector core.Intersector,
	tc core.TextureCache,
	sp *core.ShadingPoint) int {

	// Two recycled shading points, flipped at each bounce. The current
	// vertex and its parent must both stay alive so the intersector can
	// use the parent for self-intersection avoidance.
	var pair [2]core.ShadingPoint
	pairIndex := 0

	throughput := core.WhiteSpectrum()
	pathLength := 1
	prevMode := core.ScatterSpecular
	prevProb := core.DeltaDensity()

	for {
		ray := sp.Ray

		// The path escaped the scene.
		if !sp.Hit {
			outgoing := ray.Direction.Negate().Normalize()
			t.visitor.VisitEnvironment(sp, outgoing, prevMode, throughput)
			break
		}

		material := sp.Material
		if material == nil {
			break
		}
		if material.Shader == nil {
			break
		}

		alpha := material.Shader.EvaluateAlphaMask(sctx, tc, sp)
		if alpha < 1.0 {
			sctx.SplitInPlace(1, 1)
			if sctx.Next1D() >= alpha {
				// Pass through: re-cast from the surface point in the
				// same direction without counting a bounce.
				cutoffRay := core.NewRayAtTime(sp.Point, ray.Direction, ray.Time)

				pair[pairIndex].Clear()
				intersector.Trace(cutoffRay, &pair[pairIndex], sp)

				sp = &pair[pairIndex]
				pairIndex = 1 - pairIndex
				continue
			}
		}

		bsdf := material.BSDF
		if bsdf == nil {
			break
		}

		inputs := bsdf.EvaluateInputs(tc, sp.UV)
		outgoing := ray.Direction.Negate().Normalize()

		if !t.visitor.VisitVertex(sctx, sp, outgoing, bsdf, inputs, prevMode, prevProb, throughput) {
			break
		}

		sample, ok := bsdf.Sample(sctx, inputs, t.adjoint, sp.GeometricNormal, sp.ShadingBasis, outgoing)
		if !ok {
			break
		}

		if !t.modes.Has(sample.Mode) {
			break
		}

		value := sample.Value
		if !sample.Probability.IsDelta() {
			value = value.Scale(1.0 / sample.Probability.Value())
		}

		throughput = throughput.Mul(value)

		// Russian Roulette keeps the estimator unbiased while cutting
		// low-contribution paths.
		if t.rrMinPathLength > 0 && pathLength >= t.rrMinPathLength {
			sctx.SplitInPlace(1, 1)
			s := sctx.Next1D()

			continueProb := math.Min(value.MaxComponent(), 1.0)
			if s >= continueProb {
				break
			}
			throughput = throughput.Scale(1.0 / continueProb)
		}

		if t.maxPathLength > 0 && pathLength >= t.maxPathLength {
			break
		}

		if pathLength >= hardPathLengthLimit {
			if t.logger != nil {
				t.logger.Printf("reached hard path length limit (%d), terminating path", pathLength)
			}
			break
		}

		pathLength++
		prevMode = sample.Mode
		prevProb = sample.Probability

		scatteredRay := core.NewRayAtTime(sp.Point, sample.Incoming, ray.Time)

		pair[pairIndex].Clear()
		intersector.Trace(scatteredRay, &pair[pairIndex], sp)

		sp = &pair[pairIndex]
		pairIndex = 1 - pairIndex
	}

	return pathLength
}
