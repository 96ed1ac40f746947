package main

import (
	"testing"

	"github.com/calder-r/go-light-tracer/pkg/core"
	"github.com/calder-r/go-light-tracer/pkg/renderer"
)

func TestBuildScenes(t *testing.T) {
	tests := []struct {
		name  string
		build func(aspect float64) (renderer.Scene, core.Camera)
	}{
		{"cornell", buildCornellScene},
		{"spheres", buildSphereScene},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scene, camera := tt.build(1.0)

			if len(scene.Shapes) == 0 {
				t.Error("scene has no shapes")
			}
			if len(scene.Lights) == 0 {
				t.Error("scene has no lights")
			}
			for i, l := range scene.Lights {
				if l.Material() == nil || l.Material().EDF == nil {
					t.Errorf("light %d has no EDF", i)
				}
				if l.Area() <= 0 {
					t.Errorf("light %d has non-positive area %v", i, l.Area())
				}
			}
			if camera == nil {
				t.Fatal("scene has no camera")
			}

			film := camera.FilmDimensions()
			if film.X <= 0 || film.Y <= 0 {
				t.Errorf("camera film dimensions %v should be positive", film)
			}
			if camera.FocalLength() <= 0 {
				t.Errorf("camera focal length %v should be positive", camera.FocalLength())
			}
		})
	}
}
