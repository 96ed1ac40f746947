package geometry

import (
	"math"

	"github.com/calder-r/go-light-tracer/pkg/core"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3
	U        core.Vec3 // first edge vector
	V        core.Vec3 // second edge vector
	Normal   core.Vec3 // unit normal, U × V
	Material *core.Material

	d float64   // plane equation constant: normal · corner
	w core.Vec3 // cached vector for barycentric coordinates
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, material *core.Material) *Quad {
	cross := u.Cross(v)
	normal := cross.Normalize()

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: material,
		d:        normal.Dot(corner),
		w:        normal.Multiply(1.0 / normal.Dot(cross)),
	}
}

// Intersect tests if a ray intersects the quad
func (q *Quad) Intersect(ray core.Ray, tMin, tMax float64, sp *core.ShadingPoint) bool {
	denominator := ray.Direction.Dot(q.Normal)
	if math.Abs(denominator) < 1e-12 {
		return false
	}

	t := (q.d - ray.Origin.Dot(q.Normal)) / denominator
	if t < tMin || t > tMax {
		return false
	}

	// Barycentric coordinates within the parallelogram
	hitVector := ray.At(t).Subtract(q.Corner)
	alpha := q.w.Dot(hitVector.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(hitVector))
	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return false
	}

	fillShadingPoint(sp, ray, t, q.Normal, core.NewVec2(alpha, beta), q.Material)
	return true
}

// BoundingBox returns the axis-aligned bounding box for this quad
func (q *Quad) BoundingBox() AABB {
	p0 := q.Corner
	p1 := q.Corner.Add(q.U)
	p2 := q.Corner.Add(q.V)
	p3 := q.Corner.Add(q.U).Add(q.V)

	box := AABB{Min: p0, Max: p0}
	for _, p := range []core.Vec3{p1, p2, p3} {
		box = box.Union(AABB{Min: p, Max: p})
	}

	// Pad so an axis-aligned quad still has finite thickness
	return box.Expand(1e-4)
}

// Area returns the surface area of the quad
func (q *Quad) Area() float64 {
	return q.U.Cross(q.V).Length()
}
