package geometry

import "github.com/calder-r/go-light-tracer/pkg/core"

// Shape is a piece of scene geometry that can be intersected by rays
type Shape interface {
	// Intersect tests the ray against the shape within (tMin, tMax).
	// On a hit it fills sp (distance, point, normals, basis, uv,
	// material) and returns true; on a miss sp is left untouched.
	Intersect(ray core.Ray, tMin, tMax float64, sp *core.ShadingPoint) bool

	// BoundingBox returns the shape's axis-aligned bounds
	BoundingBox() AABB
}

// fillShadingPoint populates the fields shared by all shapes. The
// geometric normal is oriented against the ray; the shading normal
// equals the geometric normal for these analytic shapes.
func fillShadingPoint(sp *core.ShadingPoint, ray core.Ray, t float64, outwardNormal core.Vec3, uv core.Vec2, material *core.Material) {
	sp.Ray = ray
	sp.Hit = true
	sp.Distance = t
	sp.Point = ray.At(t)

	normal := outwardNormal
	if ray.Direction.Dot(outwardNormal) > 0 {
		normal = outwardNormal.Negate()
	}
	sp.GeometricNormal = normal
	sp.ShadingNormal = normal
	sp.ShadingBasis = core.NewBasis(normal)
	sp.UV = uv
	sp.Material = material
}
