package renderer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/calder-r/go-light-tracer/pkg/core"
	"github.com/calder-r/go-light-tracer/pkg/geometry"
	"github.com/calder-r/go-light-tracer/pkg/lighting"
	"github.com/calder-r/go-light-tracer/pkg/lights"
	"github.com/calder-r/go-light-tracer/pkg/material"
	"github.com/calder-r/go-light-tracer/pkg/texture"
)

// testScene is a small closed box lit by a ceiling quad
func testScene() (Scene, core.Camera) {
	white := &core.Material{
		Shader: material.NewDefaultShader(),
		BSDF:   material.NewLambertianBRDF(core.NewSpectrum(0.7, 0.7, 0.7)),
	}
	lightQuad := geometry.NewQuad(
		core.NewVec3(0.4, 0.99, 0.6),
		core.NewVec3(0.2, 0, 0),
		core.NewVec3(0, 0, -0.2),
		&core.Material{
			Shader: material.NewDefaultShader(),
			EDF:    material.NewDiffuseEDF(core.NewSpectrum(20, 20, 20)),
		})

	scene := Scene{
		Shapes: []geometry.Shape{
			geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), white),
			geometry.NewQuad(core.NewVec3(0, 1, 1), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, -1), white),
			geometry.NewQuad(core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), white),
			lightQuad,
		},
		Lights: []lights.Light{lights.NewQuadLight(lightQuad)},
	}

	camera := NewPinholeCamera(
		core.NewVec3(0.5, 0.5, -1.2),
		core.NewVec3(0.5, 0.5, 0.5),
		core.NewVec3(0, 1, 0),
		0.035, 1.0, 0.035)

	return scene, camera
}

func testRenderConfig() Config {
	cfg := DefaultConfig()
	cfg.Width = 16
	cfg.Height = 16
	cfg.PathsPerPixel = 4
	cfg.Workers = 2
	cfg.MaxPathLength = 4
	return cfg
}

func TestRendererProducesImage(t *testing.T) {
	scene, camera := testScene()
	r := NewRenderer(testRenderConfig(), scene, camera, nil)

	img, stats, err := r.Render(context.Background())
	require.NoError(t, err)
	require.NotNil(t, img)

	assert.Equal(t, 16, img.Bounds().Dx())
	assert.Equal(t, 16, img.Bounds().Dy())
	assert.Equal(t, uint64(16*16*4), stats.PathsTraced)
	assert.Greater(t, stats.SamplesGenerated, uint64(0))
	assert.Equal(t, stats.PathsTraced, stats.Generator.PathCount)
}

func TestRendererRequiresLights(t *testing.T) {
	scene, camera := testScene()
	scene.Lights = nil

	r := NewRenderer(testRenderConfig(), scene, camera, nil)
	_, _, err := r.Render(context.Background())
	assert.Error(t, err)
}

func TestRendererRejectsInvalidConfig(t *testing.T) {
	scene, camera := testScene()
	cfg := testRenderConfig()
	cfg.Width = 0

	r := NewRenderer(cfg, scene, camera, nil)
	_, _, err := r.Render(context.Background())
	assert.Error(t, err)
}

func TestRendererCancellation(t *testing.T) {
	scene, camera := testScene()
	cfg := testRenderConfig()
	cfg.PathsPerPixel = 1000 // enough work that cancellation lands mid-render

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRenderer(cfg, scene, camera, nil)
	_, _, err := r.Render(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGeneratorPoolDeterministicAcrossWorkerCounts(t *testing.T) {
	scene, camera := testScene()
	intersector := geometry.NewSceneIntersector(scene.Shapes, false, nil)
	sampler := lights.NewPowerLightSampler(scene.Lights)

	render := func(workers int) uint64 {
		queue := NewSampleQueue()
		factory := func(generatorIndex, generatorCount int) *lighting.LightTracingSampleGenerator {
			return lighting.NewLightTracingSampleGenerator(
				camera, sampler, intersector,
				texture.NewCache(texture.DefaultCacheSize),
				7, 3, 4, nil)
		}

		pool := NewGeneratorPool(factory, workers, queue)
		stats, err := pool.Run(context.Background(), 256)
		require.NoError(t, err)
		require.Equal(t, uint64(256), stats.PathsTraced)

		return stats.SamplesGenerated
	}

	// The set of traced sequences is the same regardless of how they are
	// partitioned across workers.
	one := render(1)
	four := render(4)
	assert.Equal(t, one, four)
}
