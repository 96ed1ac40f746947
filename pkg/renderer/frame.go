package renderer

import (
	"image"
	"image/color"
	"math"

	"github.com/calder-r/go-light-tracer/pkg/core"
)

// Frame accumulates image samples additively. Accumulation is pure
// addition, so the order samples arrive in does not affect the result.
// Frame itself is not safe for concurrent use; route concurrent
// producers through a SampleQueue and flush it into the frame.
type Frame struct {
	width  int
	height int
	pixels []core.Spectrum
	alpha  []float64
}

// NewFrame creates an empty frame of the given pixel dimensions
func NewFrame(width, height int) *Frame {
	return &Frame{
		width:  width,
		height: height,
		pixels: make([]core.Spectrum, width*height),
		alpha:  make([]float64, width*height),
	}
}

// Width returns the frame width in pixels
func (f *Frame) Width() int { return f.width }

// Height returns the frame height in pixels
func (f *Frame) Height() int { return f.height }

// AddSample splats one sample into the pixel its NDC position falls in.
// Samples outside [0,1)² are discarded.
func (f *Frame) AddSample(sample core.ImageSample) {
	if sample.Position.X < 0 || sample.Position.X >= 1 ||
		sample.Position.Y < 0 || sample.Position.Y >= 1 {
		return
	}

	x := int(sample.Position.X * float64(f.width))
	y := int(sample.Position.Y * float64(f.height))
	i := y*f.width + x

	f.pixels[i] = f.pixels[i].Add(sample.Color)
	f.alpha[i] += sample.Alpha
}

// AddSamples splats a batch of samples
func (f *Frame) AddSamples(samples []core.ImageSample) {
	for _, s := range samples {
		f.AddSample(s)
	}
}

// Pixel returns the accumulated value of the pixel at (x, y)
func (f *Frame) Pixel(x, y int) core.Spectrum {
	return f.pixels[y*f.width+x]
}

// Develop converts the accumulated radiance to a display image.
// scale normalizes for sample density; for a particle render it is the
// pixel count divided by the number of paths traced. Development applies
// gamma 2.2 and clamps to the display range.
func (f *Frame) Develop(scale float64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))

	invGamma := 1.0 / 2.2
	for y := 0; y < f.height; y++ {
		for x := 0; x < f.width; x++ {
			p := f.pixels[y*f.width+x].Scale(scale)

			img.SetRGBA(x, y, color.RGBA{
				R: toDisplay(p.R, invGamma),
				G: toDisplay(p.G, invGamma),
				B: toDisplay(p.B, invGamma),
				A: 255,
			})
		}
	}

	return img
}

// toDisplay gamma-corrects and quantizes one linear radiance sample
func toDisplay(v, invGamma float64) uint8 {
	if v <= 0 {
		return 0
	}
	v = math.Pow(v, invGamma)
	if v >= 1 {
		return 255
	}
	return uint8(v * 255.0)
}
