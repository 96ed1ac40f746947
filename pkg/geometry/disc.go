package geometry

import (
	"math"

	"github.com/calder-r/go-light-tracer/pkg/core"
)

// Disc is a flat circular surface defined by its center, normal and radius
type Disc struct {
	Center   core.Vec3
	Normal   core.Vec3 // unit normal
	Radius   float64
	Material *core.Material

	basis core.Basis
}

// NewDisc creates a new disc
func NewDisc(center, normal core.Vec3, radius float64, material *core.Material) *Disc {
	n := normal.Normalize()
	return &Disc{
		Center:   center,
		Normal:   n,
		Radius:   radius,
		Material: material,
		basis:    core.NewBasis(n),
	}
}

// Intersect tests if a ray intersects the disc
func (d *Disc) Intersect(ray core.Ray, tMin, tMax float64, sp *core.ShadingPoint) bool {
	denominator := ray.Direction.Dot(d.Normal)
	if math.Abs(denominator) < 1e-12 {
		return false
	}

	t := d.Center.Subtract(ray.Origin).Dot(d.Normal) / denominator
	if t < tMin || t > tMax {
		return false
	}

	offset := ray.At(t).Subtract(d.Center)
	if offset.LengthSquared() > d.Radius*d.Radius {
		return false
	}

	// Polar uv: radius fraction and angle
	local := d.basis.ToLocal(offset)
	u := math.Sqrt(local.X*local.X+local.Y*local.Y) / d.Radius
	v := (math.Atan2(local.Y, local.X) + math.Pi) / (2 * math.Pi)

	fillShadingPoint(sp, ray, t, d.Normal, core.NewVec2(u, v), d.Material)
	return true
}

// BoundingBox returns the axis-aligned bounding box for this disc
func (d *Disc) BoundingBox() AABB {
	r := core.NewVec3(d.Radius, d.Radius, d.Radius)
	box := AABB{Min: d.Center.Subtract(r), Max: d.Center.Add(r)}
	return box.Expand(1e-4)
}

// Area returns the surface area of the disc
func (d *Disc) Area() float64 {
	return math.Pi * d.Radius * d.Radius
}

// PointAt maps a point from the unit disc onto the surface
func (d *Disc) PointAt(local core.Vec2) core.Vec3 {
	return d.Center.
		Add(d.basis.Tangent.Multiply(local.X * d.Radius)).
		Add(d.basis.Bitangent.Multiply(local.Y * d.Radius))
}
