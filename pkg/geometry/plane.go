package geometry

import (
	"math"

	"github.com/calder-r/go-light-tracer/pkg/core"
)

// Plane represents an infinite plane through a point with a normal
type Plane struct {
	Point    core.Vec3
	Normal   core.Vec3 // unit normal
	Material *core.Material
}

// NewPlane creates a new plane
func NewPlane(point, normal core.Vec3, material *core.Material) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize(), Material: material}
}

// Intersect tests if a ray intersects the plane
func (p *Plane) Intersect(ray core.Ray, tMin, tMax float64, sp *core.ShadingPoint) bool {
	denominator := ray.Direction.Dot(p.Normal)
	if math.Abs(denominator) < 1e-12 {
		return false
	}

	t := p.Point.Subtract(ray.Origin).Dot(p.Normal) / denominator
	if t < tMin || t > tMax {
		return false
	}

	// Planar uv from the tangent frame, wrapped to [0,1)
	basis := core.NewBasis(p.Normal)
	local := basis.ToLocal(ray.At(t).Subtract(p.Point))
	uv := core.NewVec2(local.X-math.Floor(local.X), local.Y-math.Floor(local.Y))

	fillShadingPoint(sp, ray, t, p.Normal, uv, p.Material)
	return true
}

// BoundingBox returns a large but finite box so the plane can live in a BVH
func (p *Plane) BoundingBox() AABB {
	const extent = 1e6
	return NewAABB(
		core.NewVec3(-extent, -extent, -extent),
		core.NewVec3(extent, extent, extent),
	)
}
