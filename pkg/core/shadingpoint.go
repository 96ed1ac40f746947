package core

// ShadingPoint is the result of intersecting a ray with scene geometry.
// Instances are stack-local and recycled: the path tracer keeps exactly
// two of them alive and flips between them at each bounce, so Clear must
// reset every field a previous intersection may have written.
type ShadingPoint struct {
	Ray             Ray
	Hit             bool
	Distance        float64
	Point           Vec3
	GeometricNormal Vec3
	ShadingNormal   Vec3
	ShadingBasis    Basis
	UV              Vec2
	Material        *Material
}

// Clear resets the shading point for reuse
func (sp *ShadingPoint) Clear() {
	*sp = ShadingPoint{}
}
