package geometry

import (
	"testing"

	"github.com/calder-r/go-light-tracer/pkg/core"
)

// gridScene builds a grid of spheres large enough to force interior BVH nodes
func gridScene() []Shape {
	var shapes []Shape
	for x := -2; x <= 2; x++ {
		for y := -2; y <= 2; y++ {
			for z := 1; z <= 5; z++ {
				shapes = append(shapes, NewSphere(
					core.NewVec3(float64(x)*3, float64(y)*3, float64(z)*3),
					0.5, testMaterial()))
			}
		}
	}
	return shapes
}

// linearIntersect is the brute-force reference the BVH must agree with
func linearIntersect(shapes []Shape, ray core.Ray, sp *core.ShadingPoint) bool {
	hit := false
	closest := 1e30
	for _, s := range shapes {
		if s.Intersect(ray, 1e-4, closest, sp) {
			hit = true
			closest = sp.Distance
		}
	}
	return hit
}

func TestBVHMatchesLinearScan(t *testing.T) {
	shapes := gridScene()
	bvh := NewBVH(shapes)

	sctx := core.NewSamplingContext(17, 0)
	for i := 0; i < 500; i++ {
		s := sctx.Next2D()
		origin := core.NewVec3(s.X*20-10, sctx.Next1D()*20-10, -2)
		direction := core.SampleUniformSphere(sctx.Next2D())

		ray := core.NewRay(origin, direction)

		var bvhSP, linearSP core.ShadingPoint
		bvhHit := bvh.Intersect(ray, 1e-4, 1e30, &bvhSP)
		linearHit := linearIntersect(shapes, ray, &linearSP)

		if bvhHit != linearHit {
			t.Fatalf("ray %d: BVH hit=%v, linear hit=%v", i, bvhHit, linearHit)
		}
		if bvhHit && bvhSP.Point.Subtract(linearSP.Point).Length() > 1e-9 {
			t.Fatalf("ray %d: BVH hit %v, linear hit %v", i, bvhSP.Point, linearSP.Point)
		}
	}
}

func TestBVHBounds(t *testing.T) {
	shapes := gridScene()
	bounds := NewBVH(shapes).Bounds()

	for _, s := range shapes {
		b := s.BoundingBox()
		if b.Min.X < bounds.Min.X || b.Max.X > bounds.Max.X ||
			b.Min.Y < bounds.Min.Y || b.Max.Y > bounds.Max.Y ||
			b.Min.Z < bounds.Min.Z || b.Max.Z > bounds.Max.Z {
			t.Fatalf("shape bounds %v outside BVH bounds %v", b, bounds)
		}
	}
}

func TestSceneIntersectorOffset(t *testing.T) {
	si := NewSceneIntersector([]Shape{
		NewSphere(core.NewVec3(0, 0, 5), 1, testMaterial()),
	}, false, nil)

	point := core.NewVec3(0, 0, 4)
	normal := core.NewVec3(0, 0, -1)
	offset := si.Offset(point, normal)

	if offset.Subtract(point).Dot(normal) <= 0 {
		t.Errorf("Offset moved the point against the normal: %v", offset)
	}
}

func TestSceneIntersectorTraceClearsPoint(t *testing.T) {
	si := NewSceneIntersector([]Shape{
		NewSphere(core.NewVec3(0, 0, 5), 1, testMaterial()),
	}, false, nil)

	var sp core.ShadingPoint
	sp.Hit = true
	sp.Distance = 123

	ray := core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, 0, 1))
	if si.Trace(ray, &sp, nil) {
		t.Fatal("offset ray should miss")
	}

	if sp.Hit {
		t.Error("stale hit flag survived a miss")
	}
	if sp.Ray != ray {
		t.Error("miss did not record the ray")
	}
}

func TestSceneIntersectorSecondaryRays(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 5), 1, testMaterial())
	si := NewSceneIntersector([]Shape{sphere}, false, nil)

	var first core.ShadingPoint
	if !si.Trace(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)), &first, nil) {
		t.Fatal("primary ray missed")
	}

	// A ray leaving the hit point along the normal must not re-hit the
	// surface it originates from.
	origin := si.Offset(first.Point, first.GeometricNormal)
	var second core.ShadingPoint
	if si.Trace(core.NewRay(origin, first.GeometricNormal), &second, &first) {
		t.Errorf("secondary ray re-hit the surface at distance %v", second.Distance)
	}
}
