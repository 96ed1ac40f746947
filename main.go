package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/calder-r/go-light-tracer/pkg/core"
	"github.com/calder-r/go-light-tracer/pkg/geometry"
	"github.com/calder-r/go-light-tracer/pkg/lights"
	"github.com/calder-r/go-light-tracer/pkg/material"
	"github.com/calder-r/go-light-tracer/pkg/renderer"
	"github.com/calder-r/go-light-tracer/pkg/texture"
)

func main() {
	sceneType := flag.String("scene", "cornell", "Scene type: 'cornell' or 'spheres'")
	configPath := flag.String("config", "", "Path to a TOML config file")
	paths := flag.Int("paths", 0, "Light paths per pixel (overrides config)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Light Tracer")
		fmt.Println("Usage: light-tracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  cornell - Cornell box with a quad area light")
		fmt.Println("  spheres - Open sphere arrangement with sphere and disc lights")
		fmt.Println()
		fmt.Println("Output will be saved to output/<scene_type>/render_<timestamp>.png")
		return
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)

	config := renderer.DefaultConfig()
	if *configPath != "" {
		loaded, err := renderer.LoadConfig(*configPath)
		if err != nil {
			logger.Printf("error loading config: %v", err)
			os.Exit(1)
		}
		config = loaded
	}
	if *paths > 0 {
		config.PathsPerPixel = *paths
	}

	var scene renderer.Scene
	var camera core.Camera

	switch *sceneType {
	case "spheres":
		scene, camera = buildSphereScene(float64(config.Width) / float64(config.Height))
	case "cornell":
		scene, camera = buildCornellScene(float64(config.Width) / float64(config.Height))
	default:
		logger.Printf("unknown scene type %q, using cornell", *sceneType)
		*sceneType = "cornell"
		scene, camera = buildCornellScene(float64(config.Width) / float64(config.Height))
	}

	outputDir := filepath.Join("output", *sceneType)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		logger.Printf("error creating output directory: %v", err)
		os.Exit(1)
	}

	r := renderer.NewRenderer(config, scene, camera, logger)

	img, stats, err := r.Render(context.Background())
	if err != nil {
		logger.Printf("render failed: %v", err)
		os.Exit(1)
	}
	logger.Printf("%s", stats.String())

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))

	file, err := os.Create(filename)
	if err != nil {
		logger.Printf("error creating file: %v", err)
		os.Exit(1)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		logger.Printf("error saving PNG: %v", err)
		os.Exit(1)
	}

	logger.Printf("render saved as %s", filename)
}

// buildCornellScene creates the classic enclosed box with a quad area
// light in the ceiling.
func buildCornellScene(aspect float64) (renderer.Scene, core.Camera) {
	white := newDiffuse(core.NewSpectrum(0.73, 0.73, 0.73))
	red := newDiffuse(core.NewSpectrum(0.65, 0.05, 0.05))
	green := newDiffuse(core.NewSpectrum(0.12, 0.45, 0.15))

	mirror := &core.Material{
		Shader: material.NewDefaultShader(),
		BSDF:   material.NewSpecularBRDF(core.NewSpectrum(0.9, 0.9, 0.9)),
	}

	lightMaterial := &core.Material{
		Shader: material.NewDefaultShader(),
		EDF:    material.NewDiffuseEDF(core.NewSpectrum(15, 15, 15)),
	}

	// Box interior, one unit on each side
	floor := geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, 1), white)
	ceiling := geometry.NewQuad(core.NewVec3(0, 1, 1), core.NewVec3(1, 0, 0), core.NewVec3(0, 0, -1), white)
	back := geometry.NewQuad(core.NewVec3(0, 0, 1), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), white)
	left := geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), core.NewVec3(0, 1, 0), red)
	right := geometry.NewQuad(core.NewVec3(1, 0, 1), core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0), green)

	lightQuad := geometry.NewQuad(
		core.NewVec3(0.35, 0.999, 0.65),
		core.NewVec3(0.3, 0, 0),
		core.NewVec3(0, 0, -0.3),
		lightMaterial)

	sphere := geometry.NewSphere(core.NewVec3(0.3, 0.2, 0.6), 0.2, mirror)
	glossySphere := geometry.NewSphere(core.NewVec3(0.72, 0.16, 0.35), 0.16, &core.Material{
		Shader: material.NewDefaultShader(),
		BSDF:   material.NewGlossyBRDF(core.NewSpectrum(0.8, 0.7, 0.4), 64),
	})

	scene := renderer.Scene{
		Shapes: []geometry.Shape{floor, ceiling, back, left, right, lightQuad, sphere, glossySphere},
		Lights: []lights.Light{lights.NewQuadLight(lightQuad)},
	}

	camera := renderer.NewPinholeCamera(
		core.NewVec3(0.5, 0.5, -1.4),
		core.NewVec3(0.5, 0.5, 0.5),
		core.NewVec3(0, 1, 0),
		0.035, aspect, 0.035)

	return scene, camera
}

// buildSphereScene creates an open scene with a checkered ground plane,
// a sphere light and a disc fill light.
func buildSphereScene(aspect float64) (renderer.Scene, core.Camera) {
	checker := texture.NewCheckerTexture(
		core.NewSpectrum(0.8, 0.8, 0.8),
		core.NewSpectrum(0.2, 0.3, 0.2),
		8)

	ground := &core.Material{
		Shader: material.NewDefaultShader(),
		BSDF: material.NewTexturedLambertianBRDF(
			material.NewTexturedColor(checker)),
	}

	matte := newDiffuse(core.NewSpectrum(0.6, 0.2, 0.2))
	glossy := &core.Material{
		Shader: material.NewDefaultShader(),
		BSDF:   material.NewGlossyBRDF(core.NewSpectrum(0.7, 0.7, 0.8), 128),
	}

	lightMaterial := &core.Material{
		Shader: material.NewDefaultShader(),
		EDF:    material.NewDiffuseEDF(core.NewSpectrum(40, 38, 34)),
	}
	lightSphere := geometry.NewSphere(core.NewVec3(0, 4, 0), 0.5, lightMaterial)

	fillMaterial := &core.Material{
		Shader: material.NewDefaultShader(),
		EDF:    material.NewDiffuseEDF(core.NewSpectrum(6, 7, 9)),
	}
	fillDisc := geometry.NewDisc(
		core.NewVec3(-4, 3, -3),
		core.NewVec3(1, -0.4, 0.6),
		0.8,
		fillMaterial)

	scene := renderer.Scene{
		Shapes: []geometry.Shape{
			geometry.NewPlane(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), ground),
			geometry.NewSphere(core.NewVec3(-1.1, 1, 0), 1, matte),
			geometry.NewSphere(core.NewVec3(1.1, 1, 0), 1, glossy),
			lightSphere,
			fillDisc,
		},
		Lights: []lights.Light{
			lights.NewSphereLight(lightSphere),
			lights.NewDiscLight(fillDisc),
		},
	}

	camera := renderer.NewPinholeCamera(
		core.NewVec3(0, 2, -6),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 1, 0),
		0.035, aspect, 0.05)

	return scene, camera
}

func newDiffuse(reflectance core.Spectrum) *core.Material {
	return &core.Material{
		Shader: material.NewDefaultShader(),
		BSDF:   material.NewLambertianBRDF(reflectance),
	}
}
