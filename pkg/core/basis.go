package core

import "math"

// Basis is an orthonormal tangent frame at a surface point. The normal is
// the frame's "up" axis; tangent and bitangent span the tangent plane.
type Basis struct {
	Tangent   Vec3
	Bitangent Vec3
	Normal    Vec3
}

// NewBasis builds an orthonormal basis around a unit normal
func NewBasis(normal Vec3) Basis {
	// Pick a helper axis that is not nearly parallel to the normal
	var helper Vec3
	if math.Abs(normal.X) > 0.1 {
		helper = NewVec3(0, 1, 0)
	} else {
		helper = NewVec3(1, 0, 0)
	}

	tangent := helper.Cross(normal).Normalize()
	bitangent := normal.Cross(tangent)

	return Basis{Tangent: tangent, Bitangent: bitangent, Normal: normal}
}

// ToWorld transforms a vector from local frame coordinates (x along the
// tangent, y along the bitangent, z along the normal) to world space.
func (b Basis) ToWorld(local Vec3) Vec3 {
	return b.Tangent.Multiply(local.X).
		Add(b.Bitangent.Multiply(local.Y)).
		Add(b.Normal.Multiply(local.Z))
}

// ToLocal transforms a world-space vector into frame coordinates
func (b Basis) ToLocal(world Vec3) Vec3 {
	return Vec3{
		X: world.Dot(b.Tangent),
		Y: world.Dot(b.Bitangent),
		Z: world.Dot(b.Normal),
	}
}
