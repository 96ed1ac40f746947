package geometry

import (
	"math"
	"testing"

	"github.com/calder-r/go-light-tracer/pkg/core"
)

func testMaterial() *core.Material {
	return &core.Material{}
}

func TestSphereIntersect(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	var sp core.ShadingPoint
	if !sphere.Intersect(ray, 0.001, 1e30, &sp) {
		t.Fatal("ray through sphere center missed")
	}

	if math.Abs(sp.Distance-4) > 1e-9 {
		t.Errorf("Distance = %v, want 4", sp.Distance)
	}
	if sp.GeometricNormal.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-9 {
		t.Errorf("GeometricNormal = %v, want (0,0,-1)", sp.GeometricNormal)
	}
	if sp.Material != sphere.Material {
		t.Error("material not propagated to the shading point")
	}
}

func TestSphereMiss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, 0, 1))

	var sp core.ShadingPoint
	if sphere.Intersect(ray, 0.001, 1e30, &sp) {
		t.Error("offset ray should miss the sphere")
	}
	if sp.Hit {
		t.Error("miss left the shading point marked as hit")
	}
}

func TestSphereInsideHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2, testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))

	var sp core.ShadingPoint
	if !sphere.Intersect(ray, 0.001, 1e30, &sp) {
		t.Fatal("ray from inside the sphere missed")
	}

	// Normal is oriented against the ray even from the inside.
	if sp.GeometricNormal.Dot(ray.Direction) >= 0 {
		t.Errorf("normal %v not oriented against the ray", sp.GeometricNormal)
	}
}

func TestQuadIntersect(t *testing.T) {
	quad := NewQuad(core.NewVec3(-1, -1, 3), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), testMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1))

	var sp core.ShadingPoint
	if !quad.Intersect(ray, 0.001, 1e30, &sp) {
		t.Fatal("ray through quad center missed")
	}

	if math.Abs(sp.Distance-3) > 1e-9 {
		t.Errorf("Distance = %v, want 3", sp.Distance)
	}
	if math.Abs(sp.UV.X-0.5) > 1e-9 || math.Abs(sp.UV.Y-0.5) > 1e-9 {
		t.Errorf("UV = %v, want (0.5, 0.5)", sp.UV)
	}
}

func TestQuadEdgeMiss(t *testing.T) {
	quad := NewQuad(core.NewVec3(-1, -1, 3), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), testMaterial())
	ray := core.NewRay(core.NewVec3(1.5, 0, 0), core.NewVec3(0, 0, 1))

	var sp core.ShadingPoint
	if quad.Intersect(ray, 0.001, 1e30, &sp) {
		t.Error("ray outside the quad extent reported a hit")
	}
}

func TestQuadArea(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(3, 0, 0), core.NewVec3(0, 2, 0), testMaterial())
	if got := quad.Area(); math.Abs(got-6) > 1e-12 {
		t.Errorf("Area() = %v, want 6", got)
	}
}

func TestPlaneIntersect(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), testMaterial())
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	var sp core.ShadingPoint
	if !plane.Intersect(ray, 0.001, 1e30, &sp) {
		t.Fatal("downward ray missed the ground plane")
	}

	if math.Abs(sp.Distance-2) > 1e-9 {
		t.Errorf("Distance = %v, want 2", sp.Distance)
	}
}

func TestPlaneParallelMiss(t *testing.T) {
	plane := NewPlane(core.NewVec3(0, -1, 0), core.NewVec3(0, 1, 0), testMaterial())
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(1, 0, 0))

	var sp core.ShadingPoint
	if plane.Intersect(ray, 0.001, 1e30, &sp) {
		t.Error("parallel ray reported a hit")
	}
}

func TestShadingBasisMatchesNormal(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1, testMaterial())
	ray := core.NewRay(core.NewVec3(0.3, 0.2, 0), core.NewVec3(0, 0, 1))

	var sp core.ShadingPoint
	if !sphere.Intersect(ray, 0.001, 1e30, &sp) {
		t.Fatal("ray missed")
	}

	if sp.ShadingBasis.Normal.Subtract(sp.ShadingNormal).Length() > 1e-12 {
		t.Errorf("basis normal %v differs from shading normal %v", sp.ShadingBasis.Normal, sp.ShadingNormal)
	}
}

func TestDiscIntersect(t *testing.T) {
	disc := NewDisc(core.NewVec3(0, 0, 5), core.NewVec3(0, 0, -1), 2, nil)

	var sp core.ShadingPoint
	ray := core.NewRay(core.NewVec3(0.5, 0.5, 0), core.NewVec3(0, 0, 1))
	if !disc.Intersect(ray, 0.001, math.Inf(1), &sp) {
		t.Fatal("expected hit inside disc radius")
	}
	if math.Abs(sp.Distance-5) > 1e-9 {
		t.Errorf("Distance = %v, want 5", sp.Distance)
	}
	if sp.GeometricNormal.Dot(core.NewVec3(0, 0, -1)) < 0.999 {
		t.Errorf("GeometricNormal = %v, want facing the ray", sp.GeometricNormal)
	}

	edge := core.NewRay(core.NewVec3(2.5, 0, 0), core.NewVec3(0, 0, 1))
	if disc.Intersect(edge, 0.001, math.Inf(1), &sp) {
		t.Error("expected miss outside disc radius")
	}

	parallel := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0))
	if disc.Intersect(parallel, 0.001, math.Inf(1), &sp) {
		t.Error("expected miss for ray parallel to disc")
	}
}

func TestDiscArea(t *testing.T) {
	disc := NewDisc(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0), 3, nil)
	if math.Abs(disc.Area()-9*math.Pi) > 1e-9 {
		t.Errorf("Area() = %v, want 9*pi", disc.Area())
	}
}
