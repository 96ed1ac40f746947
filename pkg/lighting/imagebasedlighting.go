package lighting

import "github.com/calder-r/go-light-tracer/pkg/core"

// Image-based lighting: direct illumination from an environment light,
// estimated by combining two sampling strategies (BSDF sampling and
// environment sampling) with the power-2 multiple importance sampling
// heuristic.

// computeIBLBSDFSampling estimates environment lighting by sampling the
// BSDF. Only diffuse samples contribute; glossy and specular lobes are
// the responsibility of the caller's own indirect bounce, counting them
// here would double their contribution.
func computeIBLBSDFSampling(
	sctx *core.SamplingContext,
	sc ShadingContext,
	environment core.EnvironmentLight,
	point core.Vec3,
	geometricNormal core.Vec3,
	basis core.Basis,
	time float64,
	outgoing core.Vec3,
	bsdf core.BSDF,
	inputs core.BSDFInputs,
	bsdfSampleCount int,
	envSampleCount int,
	parent *core.ShadingPoint) core.Spectrum {

	radiance := core.Spectrum{}

	for i := 0; i < bsdfSampleCount; i++ {
		sample, ok := bsdf.Sample(sctx, inputs, false, geometricNormal, basis, outgoing)
		if !ok {
			continue
		}

		if sample.Mode != core.ScatterDiffuse {
			continue
		}

		tracer := NewTracer(sc)
		sp, transmission := tracer.Trace(sctx, point, sample.Incoming, time, parent)
		if sp.Hit {
			continue
		}

		envValue, envProb := environment.Evaluate(sample.Incoming)

		misWeight := 1.0
		if !sample.Probability.IsDelta() {
			misWeight = core.MISPower2(
				float64(bsdfSampleCount)*sample.Probability.Value(),
				float64(envSampleCount)*envProb)
		}

		weight := transmission * misWeight
		if !sample.Probability.IsDelta() {
			weight /= sample.Probability.Value()
		}

		radiance = radiance.Add(envValue.Scale(weight).Mul(sample.Value))
	}

	if bsdfSampleCount > 1 {
		radiance = radiance.Scale(1.0 / float64(bsdfSampleCount))
	}

	return radiance
}

// computeIBLEnvironmentSampling estimates environment lighting by
// sampling the environment's own distribution.
func computeIBLEnvironmentSampling(
	sctx *core.SamplingContext,
	sc ShadingContext,
	environment core.EnvironmentLight,
	point core.Vec3,
	geometricNormal core.Vec3,
	basis core.Basis,
	time float64,
	outgoing core.Vec3,
	bsdf core.BSDF,
	inputs core.BSDFInputs,
	bsdfSampleCount int,
	envSampleCount int,
	parent *core.ShadingPoint) core.Spectrum {

	radiance := core.Spectrum{}

	sctx.SplitInPlace(2, envSampleCount)

	for i := 0; i < envSampleCount; i++ {
		s := sctx.Next2D()

		incoming, envValue, envProb := environment.Sample(s)
		if envProb <= 0 {
			continue
		}

		// Visibility uses a child stream so the number of samples the
		// tracer consumes cannot shift the environment sample sequence.
		childCtx := sctx.Fork()
		tracer := NewTracer(sc)
		sp, transmission := tracer.Trace(&childCtx, point, incoming, time, parent)
		if sp.Hit {
			continue
		}

		bsdfValue, bsdfProb, defined := bsdf.Evaluate(inputs, false, geometricNormal, basis, outgoing, incoming)
		if !defined {
			continue
		}

		misWeight := core.MISPower2(
			float64(envSampleCount)*envProb,
			float64(bsdfSampleCount)*bsdfProb)

		radiance = radiance.Add(envValue.Scale(transmission / envProb * misWeight).Mul(bsdfValue))
	}

	if envSampleCount > 1 {
		radiance = radiance.Scale(1.0 / float64(envSampleCount))
	}

	return radiance
}

// ComputeImageBasedLighting estimates the direct environment lighting
// arriving at a surface point toward the outgoing direction. Both
// sampling strategies run with their own sample counts and their MIS
// weights sum to one for every direction, so the returned estimate stays
// unbiased regardless of the counts chosen.
func ComputeImageBasedLighting(
	sctx *core.SamplingContext,
	sc ShadingContext,
	environment core.EnvironmentLight,
	point core.Vec3,
	geometricNormal core.Vec3,
	basis core.Basis,
	time float64,
	outgoing core.Vec3,
	bsdf core.BSDF,
	inputs core.BSDFInputs,
	bsdfSampleCount int,
	envSampleCount int,
	parent *core.ShadingPoint) core.Spectrum {

	radiance := computeIBLBSDFSampling(
		sctx, sc, environment,
		point, geometricNormal, basis, time, outgoing,
		bsdf, inputs,
		bsdfSampleCount, envSampleCount,
		parent)

	return radiance.Add(computeIBLEnvironmentSampling(
		sctx, sc, environment,
		point, geometricNormal, basis, time, outgoing,
		bsdf, inputs,
		bsdfSampleCount, envSampleCount,
		parent))
}
