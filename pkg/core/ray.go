package core

// VisibilityFlags marks which ray queries a ray participates in.
// All current tracing paths use AllFlags; the field exists so that
// intersector implementations can filter geometry per ray kind.
type VisibilityFlags uint32

// AllFlags enables a ray for every visibility query.
const AllFlags VisibilityFlags = ^VisibilityFlags(0)

// Ray represents a ray with an origin, a direction and a time value.
// Rays are immutable once constructed.
type Ray struct {
	Origin    Vec3
	Direction Vec3
	Time      float64
	Flags     VisibilityFlags
}

// NewRay creates a new ray at time zero
func NewRay(origin, direction Vec3) Ray {
	return Ray{Origin: origin, Direction: direction, Flags: AllFlags}
}

// NewRayAtTime creates a new ray with an explicit time value
func NewRayAtTime(origin, direction Vec3, time float64) Ray {
	return Ray{Origin: origin, Direction: direction, Time: time, Flags: AllFlags}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Multiply(t))
}
