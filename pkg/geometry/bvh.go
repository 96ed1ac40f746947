package geometry

import (
	"sort"

	"github.com/calder-r/go-light-tracer/pkg/core"
)

// BVHNode represents a node in the bounding volume hierarchy
type BVHNode struct {
	BoundingBox AABB
	Left        *BVHNode
	Right       *BVHNode
	Shapes      []Shape // non-nil for leaf nodes
}

// BVH is a bounding volume hierarchy for fast ray-shape intersection
type BVH struct {
	Root *BVHNode
}

// Leaf threshold: at or below this many shapes a leaf uses linear search
const leafThreshold = 8

// NewBVH constructs a BVH from a slice of shapes
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{Root: nil}
	}

	// Copy so concurrent builders never reorder the caller's slice
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)

	return &BVH{Root: buildBVH(shapesCopy)}
}

// buildBVH recursively splits shapes at the median of the longest axis
func buildBVH(shapes []Shape) *BVHNode {
	boundingBox := shapes[0].BoundingBox()
	for i := 1; i < len(shapes); i++ {
		boundingBox = boundingBox.Union(shapes[i].BoundingBox())
	}

	if len(shapes) <= leafThreshold {
		return &BVHNode{BoundingBox: boundingBox, Shapes: shapes}
	}

	axis := boundingBox.LongestAxis()
	sortShapesByAxis(shapes, axis)

	mid := len(shapes) / 2
	return &BVHNode{
		BoundingBox: boundingBox,
		Left:        buildBVH(shapes[:mid]),
		Right:       buildBVH(shapes[mid:]),
	}
}

// sortShapesByAxis sorts shapes by bounding box center along the axis
func sortShapesByAxis(shapes []Shape, axis int) {
	sort.Slice(shapes, func(i, j int) bool {
		centerI := shapes[i].BoundingBox().Center()
		centerJ := shapes[j].BoundingBox().Center()
		switch axis {
		case 0:
			return centerI.X < centerJ.X
		case 1:
			return centerI.Y < centerJ.Y
		default:
			return centerI.Z < centerJ.Z
		}
	})
}

// Intersect finds the nearest intersection within (tMin, tMax), filling sp
func (bvh *BVH) Intersect(ray core.Ray, tMin, tMax float64, sp *core.ShadingPoint) bool {
	if bvh.Root == nil {
		return false
	}
	return bvh.intersectNode(bvh.Root, ray, tMin, tMax, sp)
}

// intersectNode recursively tests ray intersection against BVH nodes.
// Shapes only write sp on a hit, so the nearest hit survives.
func (bvh *BVH) intersectNode(node *BVHNode, ray core.Ray, tMin, tMax float64, sp *core.ShadingPoint) bool {
	if !node.BoundingBox.Hit(ray, tMin, tMax) {
		return false
	}

	if node.Shapes != nil {
		hitAnything := false
		closestSoFar := tMax
		for _, shape := range node.Shapes {
			if shape.Intersect(ray, tMin, closestSoFar, sp) {
				hitAnything = true
				closestSoFar = sp.Distance
			}
		}
		return hitAnything
	}

	hitAnything := false
	closestSoFar := tMax
	if node.Left != nil && bvh.intersectNode(node.Left, ray, tMin, closestSoFar, sp) {
		hitAnything = true
		closestSoFar = sp.Distance
	}
	if node.Right != nil && bvh.intersectNode(node.Right, ray, tMin, closestSoFar, sp) {
		hitAnything = true
	}

	return hitAnything
}

// Bounds returns the bounding box of the whole hierarchy
func (bvh *BVH) Bounds() AABB {
	if bvh.Root == nil {
		return AABB{}
	}
	return bvh.Root.BoundingBox
}
