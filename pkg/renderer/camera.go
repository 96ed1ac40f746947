package renderer

import (
	"github.com/calder-r/go-light-tracer/pkg/core"
)

// PinholeCamera is a physically parameterized pinhole camera: a film of
// given physical dimensions behind a pinhole at the focal length.
type PinholeCamera struct {
	position core.Vec3
	forward  core.Vec3
	right    core.Vec3
	up       core.Vec3

	filmWidth   float64 // meters
	filmHeight  float64 // meters
	focalLength float64 // meters
}

// NewPinholeCamera creates a camera at position looking at target.
// filmWidth and focalLength are in meters; aspect is width over height.
func NewPinholeCamera(position, target, worldUp core.Vec3, filmWidth, aspect, focalLength float64) *PinholeCamera {
	forward := target.Subtract(position).Normalize()
	right := forward.Cross(worldUp).Normalize()
	up := right.Cross(forward)

	return &PinholeCamera{
		position:    position,
		forward:     forward,
		right:       right,
		up:          up,
		filmWidth:   filmWidth,
		filmHeight:  filmWidth / aspect,
		focalLength: focalLength,
	}
}

// Project implements core.Camera by mapping a world point to normalized
// device coordinates, with (0,0) the top-left corner of the image.
func (c *PinholeCamera) Project(point core.Vec3) (core.Vec2, bool) {
	v := point.Subtract(c.position)

	depth := v.Dot(c.forward)
	if depth <= 0 {
		return core.Vec2{}, false
	}

	// Position on the image plane, in meters
	planeX := v.Dot(c.right) * c.focalLength / depth
	planeY := v.Dot(c.up) * c.focalLength / depth

	ndc := core.NewVec2(
		0.5+planeX/c.filmWidth,
		0.5-planeY/c.filmHeight)

	return ndc, true
}

// GenerateRay returns the camera ray through a point in normalized
// device coordinates, the inverse of Project.
func (c *PinholeCamera) GenerateRay(ndc core.Vec2) core.Ray {
	planeX := (ndc.X - 0.5) * c.filmWidth
	planeY := (0.5 - ndc.Y) * c.filmHeight

	direction := c.forward.Multiply(c.focalLength).
		Add(c.right.Multiply(planeX)).
		Add(c.up.Multiply(planeY)).
		Normalize()

	return core.NewRay(c.position, direction)
}

// Position implements core.Camera
func (c *PinholeCamera) Position() core.Vec3 {
	return c.position
}

// Forward implements core.Camera
func (c *PinholeCamera) Forward() core.Vec3 {
	return c.forward
}

// FilmDimensions implements core.Camera
func (c *PinholeCamera) FilmDimensions() core.Vec2 {
	return core.NewVec2(c.filmWidth, c.filmHeight)
}

// FocalLength implements core.Camera
func (c *PinholeCamera) FocalLength() float64 {
	return c.focalLength
}
