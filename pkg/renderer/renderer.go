package renderer

import (
	"context"
	"fmt"
	"image"

	"github.com/calder-r/go-light-tracer/pkg/core"
	"github.com/calder-r/go-light-tracer/pkg/geometry"
	"github.com/calder-r/go-light-tracer/pkg/lighting"
	"github.com/calder-r/go-light-tracer/pkg/lights"
	"github.com/calder-r/go-light-tracer/pkg/texture"
)

// Scene holds everything a render needs besides the camera
type Scene struct {
	Shapes []geometry.Shape
	Lights []lights.Light

	// Environment is kept for callers that estimate environment
	// illumination themselves (lighting.ComputeImageBasedLighting).
	// Light paths start at the area lights, so the light-tracing render
	// path never samples it. May be nil.
	Environment core.EnvironmentLight
}

// Renderer renders a scene with light tracing: light paths start at the
// emitters and every vertex is connected to the camera.
type Renderer struct {
	config Config
	scene  Scene
	camera core.Camera
	logger core.Logger
}

// NewRenderer creates a renderer
func NewRenderer(config Config, scene Scene, camera core.Camera, logger core.Logger) *Renderer {
	return &Renderer{
		config: config,
		scene:  scene,
		camera: camera,
		logger: logger,
	}
}

// Render traces the configured number of light paths and develops the
// accumulated samples into an image.
func (r *Renderer) Render(ctx context.Context) (*image.RGBA, RenderStats, error) {
	if err := r.config.Validate(); err != nil {
		return nil, RenderStats{}, err
	}
	if len(r.scene.Lights) == 0 {
		return nil, RenderStats{}, fmt.Errorf("render: scene has no lights")
	}

	intersector := geometry.NewSceneIntersector(r.scene.Shapes, r.config.ReportSelfIntersections, r.logger)
	sampler := lights.NewPowerLightSampler(r.scene.Lights)

	queue := NewSampleQueue()

	// Each worker owns its generator and texture cache. The seed is
	// shared: determinism comes from sequence indices, which the pool
	// partitions disjointly across workers.
	factory := func(generatorIndex, generatorCount int) *lighting.LightTracingSampleGenerator {
		return lighting.NewLightTracingSampleGenerator(
			r.camera,
			sampler,
			intersector,
			texture.NewCache(r.config.TextureCacheSize),
			r.config.Seed,
			r.config.MinimumPathLength,
			r.config.MaxPathLength,
			r.logger)
	}

	pool := NewGeneratorPool(factory, r.config.Workers, queue)

	if r.logger != nil {
		r.logger.Printf("rendering %dx%d: %d light paths across %d workers",
			r.config.Width, r.config.Height, r.config.PathCount(), pool.Workers())
	}

	stats, err := pool.Run(ctx, r.config.PathCount())
	if err != nil {
		return nil, stats, err
	}

	frame := NewFrame(r.config.Width, r.config.Height)
	queue.FlushTo(frame)

	// Normalize for sample density: each pixel's estimate is the mean
	// contribution over all traced paths, times the pixel count since
	// the flux-to-radiance factor is expressed per unit film area.
	scale := float64(r.config.Width*r.config.Height) / float64(stats.PathsTraced)
	img := frame.Develop(scale)

	if r.logger != nil {
		r.logger.Printf("%s", stats)
	}

	return img, stats, nil
}
