package lighting

import (
	"github.com/calder-r/go-light-tracer/pkg/core"
	"github.com/calder-r/go-light-tracer/pkg/lights"
)

// GeneratorStats aggregates per-generator path statistics
type GeneratorStats struct {
	PathCount  uint64
	PathLength core.Population
}

// Merge folds another set of statistics into this one
func (s *GeneratorStats) Merge(other GeneratorStats) {
	s.PathCount += other.PathCount
	s.PathLength.Merge(other.PathLength)
}

// LightTracingSampleGenerator generates image samples by tracing light
// paths from the emitters toward the scene and connecting every vertex
// to the camera. Each generator owns its state and must not be shared
// between goroutines; run one generator per worker.
type LightTracingSampleGenerator struct {
	camera      core.Camera
	sampler     *lights.WeightedLightSampler
	intersector core.Intersector
	tc          core.TextureCache

	seed          uint64
	minPathLength int
	maxPathLength int
	logger        core.Logger

	stats GeneratorStats
}

// NewLightTracingSampleGenerator creates a generator.
// minPathLength is the path length at which Russian Roulette starts.
// maxPathLength bounds light paths (zero means unbounded). seed makes
// the generator deterministic per sequence index.
func NewLightTracingSampleGenerator(
	camera core.Camera,
	sampler *lights.WeightedLightSampler,
	intersector core.Intersector,
	tc core.TextureCache,
	seed uint64,
	minPathLength int,
	maxPathLength int,
	logger core.Logger) *LightTracingSampleGenerator {

	return &LightTracingSampleGenerator{
		camera:        camera,
		sampler:       sampler,
		intersector:   intersector,
		tc:            tc,
		seed:          seed,
		minPathLength: minPathLength,
		maxPathLength: maxPathLength,
		logger:        logger,
	}
}

// Stats returns the statistics accumulated so far
func (g *LightTracingSampleGenerator) Stats() GeneratorStats {
	return g.stats
}

// GenerateSamples traces one light path for the given sequence index and
// appends the image samples it produces to samples. It returns the
// number of samples appended. The same sequence index always yields the
// same samples.
func (g *LightTracingSampleGenerator) GenerateSamples(sequenceIndex uint64, samples *[]core.ImageSample) int {
	sctx := core.NewSamplingContext(g.seed, sequenceIndex)

	// Draw the emission direction sample up front so its position in the
	// stream is independent of how many dimensions light selection uses.
	sctx.SplitInPlace(2, 1)
	s := sctx.Next2D()

	// Select a light and a point on its surface.
	sctx.SplitInPlace(3, 1)
	light, selectionProb := g.sampler.Sample(sctx.Next1D())
	position := light.SamplePosition(sctx.Next2D())

	// Sample the EDF to get an emission direction.
	edf := light.Material().EDF
	emissionDir, edfValue, emissionProb := edf.Sample(position.GeometricNormal, position.Basis, s)
	if emissionProb <= 0 {
		return 0
	}

	// The initial particle weight is the emitted flux divided by the
	// densities of every sampling decision made so far.
	initialAlpha := edfValue.Scale(1.0 / (selectionProb * position.Probability * emissionProb))

	lightRay := core.NewRay(
		g.intersector.Offset(position.Point, position.GeometricNormal),
		emissionDir)

	visitor := &lightPathVisitor{
		camera:         g.camera,
		shadingContext: ShadingContext{Intersector: g.intersector, TextureCache: g.tc},
		samples:        samples,
		alpha:          initialAlpha,
	}
	visitor.cacheCameraGeometry()

	tracer := NewPathTracer(visitor, core.ScatterAll, true, g.minPathLength, g.maxPathLength, g.logger)

	// The light vertex itself connects to the camera like any other
	// vertex, but the path tracer never sees it; handle it here.
	visitor.VisitLightVertex(&sctx, position.Point)

	pathLength := tracer.Trace(&sctx, g.intersector, g.tc, lightRay, nil)

	g.stats.PathCount++
	g.stats.PathLength.Insert(float64(pathLength))

	return visitor.sampleCount
}

// lightPathVisitor connects every vertex of a light path to the camera
// and converts the arriving flux to image-plane radiance.
type lightPathVisitor struct {
	camera         core.Camera
	shadingContext ShadingContext

	cameraPosition  core.Vec3
	cameraDirection core.Vec3
	rcpFilmArea     float64
	focalLength     float64

	samples     *[]core.ImageSample
	sampleCount int
	alpha       core.Spectrum // flux of the current particle (in W)
}

func (v *lightPathVisitor) cacheCameraGeometry() {
	v.cameraPosition = v.camera.Position()
	v.cameraDirection = v.camera.Forward()

	film := v.camera.FilmDimensions()
	v.rcpFilmArea = 1.0 / (film.X * film.Y)
	v.focalLength = v.camera.FocalLength()
}

// connectToCamera projects a vertex onto the image plane and computes
// the transmission toward the camera. ok is false when the vertex does
// not contribute: off screen, behind the camera or fully occluded.
func (v *lightPathVisitor) connectToCamera(
	sctx *core.SamplingContext,
	vertex core.Vec3) (ndc core.Vec2, vertexToCamera core.Vec3, squareDistance, transmission float64, ok bool) {

	ndc, visible := v.camera.Project(vertex)
	if !visible {
		return core.Vec2{}, core.Vec3{}, 0, 0, false
	}

	// The image plane is the half-open unit square.
	if ndc.X < 0 || ndc.X >= 1 || ndc.Y < 0 || ndc.Y >= 1 {
		return core.Vec2{}, core.Vec3{}, 0, 0, false
	}

	// Cast from the camera toward the vertex so the shadow ray cannot
	// self-intersect the surface the vertex sits on.
	tracer := NewTracer(v.shadingContext)
	transmission = tracer.TraceBetween(sctx, v.cameraPosition, vertex, 0, nil)
	if transmission == 0 {
		return core.Vec2{}, core.Vec3{}, 0, 0, false
	}

	toCamera := v.cameraPosition.Subtract(vertex)
	squareDistance = toCamera.LengthSquared()
	vertexToCamera = toCamera.Multiply(1.0 / toCamera.Length())

	return ndc, vertexToCamera, squareDistance, transmission, true
}

// fluxToRadiance converts particle flux arriving at the camera from the
// given direction into radiance on the image plane.
func (v *lightPathVisitor) fluxToRadiance(vertexToCamera core.Vec3) (factor, cosTheta float64) {
	cosTheta = vertexToCamera.Negate().AbsDot(v.cameraDirection)
	distPixelToCamera := v.focalLength / cosTheta
	factor = distPixelToCamera / cosTheta * (distPixelToCamera / cosTheta) * v.rcpFilmArea
	return factor, cosTheta
}

// VisitLightVertex connects the emission point itself to the camera
func (v *lightPathVisitor) VisitLightVertex(sctx *core.SamplingContext, vertex core.Vec3) {
	ndc, vertexToCamera, squareDistance, transmission, ok := v.connectToCamera(sctx, vertex)
	if !ok {
		return
	}

	fluxToRadiance, cosTheta := v.fluxToRadiance(vertexToCamera)

	// Geometric term. Visibility is one at this point; the cosine at the
	// emitter is part of the particle weight.
	g := cosTheta / squareDistance

	radiance := v.alpha.Scale(transmission * g * fluxToRadiance)

	v.store(ndc, radiance)
}

// VisitVertex implements PathVisitor by connecting a surface vertex to
// the camera. It always continues the path.
func (v *lightPathVisitor) VisitVertex(
	sctx *core.SamplingContext,
	sp *core.ShadingPoint,
	outgoing core.Vec3, // toward the light
	bsdf core.BSDF,
	inputs core.BSDFInputs,
	prevMode core.ScatteringMode,
	prevProb core.Density,
	throughput core.Spectrum) bool {

	ndc, vertexToCamera, squareDistance, transmission, ok := v.connectToCamera(sctx, sp.Point)
	if !ok {
		return true
	}

	// Keep the geometric normal in the hemisphere of the shading normal.
	geometricNormal := sp.GeometricNormal
	if sp.ShadingNormal.Dot(geometricNormal) < 0 {
		geometricNormal = geometricNormal.Negate()
	}

	// Fold the scattering throughput into the particle weight before the
	// camera connection, specular vertices included.
	v.alpha = v.alpha.Mul(throughput)

	bsdfValue, _, defined := bsdf.Evaluate(
		inputs,
		true, // adjoint
		geometricNormal,
		sp.ShadingBasis,
		outgoing,
		vertexToCamera)
	if !defined {
		return true
	}

	fluxToRadiance, cosTheta := v.fluxToRadiance(vertexToCamera)

	// Geometric term. Visibility is one, and the cosine at the vertex is
	// already folded into the BSDF value.
	g := cosTheta / squareDistance

	radiance := v.alpha.Mul(bsdfValue).Scale(transmission * g * fluxToRadiance)

	v.store(ndc, radiance)
	return true
}

// VisitEnvironment implements PathVisitor. A light path escaping into
// the environment contributes nothing.
func (v *lightPathVisitor) VisitEnvironment(
	sp *core.ShadingPoint,
	outgoing core.Vec3,
	prevMode core.ScatteringMode,
	throughput core.Spectrum) {
}

func (v *lightPathVisitor) store(ndc core.Vec2, radiance core.Spectrum) {
	*v.samples = append(*v.samples, core.ImageSample{
		Position: ndc,
		Color:    radiance,
		Alpha:    1.0,
	})
	v.sampleCount++
}
