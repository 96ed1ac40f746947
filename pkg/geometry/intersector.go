package geometry

import (
	"github.com/calder-r/go-light-tracer/pkg/core"
)

// Ray epsilon used as the minimum intersection distance. Combined with
// origin offsetting it keeps secondary rays from re-hitting the surface
// they originate from.
const rayEpsilon = 1e-4

// SceneIntersector implements core.Intersector on top of a BVH over the
// scene's shapes. It is read-only after construction and safe to share
// across workers.
type SceneIntersector struct {
	bvh                     *BVH
	reportSelfIntersections bool
	logger                  core.Logger
}

// NewSceneIntersector builds an intersector for the given shapes.
// When reportSelfIntersections is set, hits suspiciously close to the
// parent shading point are logged as diagnostics.
func NewSceneIntersector(shapes []Shape, reportSelfIntersections bool, logger core.Logger) *SceneIntersector {
	return &SceneIntersector{
		bvh:                     NewBVH(shapes),
		reportSelfIntersections: reportSelfIntersections,
		logger:                  logger,
	}
}

// Trace finds the nearest intersection of the ray with the scene
func (si *SceneIntersector) Trace(ray core.Ray, sp *core.ShadingPoint, parent *core.ShadingPoint) bool {
	sp.Clear()
	sp.Ray = ray

	if !si.bvh.Intersect(ray, rayEpsilon, 1e30, sp) {
		return false
	}

	if si.reportSelfIntersections && parent != nil && parent.Hit {
		if sp.Point.Subtract(parent.Point).Length() < rayEpsilon && si.logger != nil {
			si.logger.Printf("warning: detected potential self-intersection at distance %g\n", sp.Distance)
		}
	}

	return true
}

// Offset biases a point along its normal to avoid self-intersection
func (si *SceneIntersector) Offset(point, normal core.Vec3) core.Vec3 {
	return point.Add(normal.Multiply(rayEpsilon))
}

// Bounds returns the bounding box of the scene geometry
func (si *SceneIntersector) Bounds() AABB {
	return si.bvh.Bounds()
}
