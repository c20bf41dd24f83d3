package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// ClosestPointOnLineSegment returns the point of segment v0-v1 nearest
// point. The segment must have non-zero length: a zero-length segment has
// no direction and every component of the result is NaN.
func ClosestPointOnLineSegment(v0, v1, point rl.Vector3) rl.Vector3 {
	edge := rl.Vector3Subtract(v1, v0)
	edgeLength := rl.Vector3Length(edge)
	return closestPointOnSegmentDir(v0, v1, rl.Vector3Scale(edge, 1/edgeLength), edgeLength, point)
}

// closestPointOnSegmentDir is ClosestPointOnLineSegment with the unit edge
// direction and length precomputed.
func closestPointOnSegmentDir(v0, v1, edgeDirection rl.Vector3, edgeLength float32, point rl.Vector3) rl.Vector3 {
	t := dot(edgeDirection, rl.Vector3Subtract(point, v0))
	switch {
	case t < 0:
		return v0
	case t > edgeLength:
		return v1
	default:
		return rl.Vector3Add(v0, rl.Vector3Scale(edgeDirection, t))
	}
}

// nearest returns the candidate closest to point. Ties keep the later
// candidate.
func nearest(point rl.Vector3, candidates ...rl.Vector3) rl.Vector3 {
	best := candidates[0]
	bestD := lengthSq(rl.Vector3Subtract(best, point))
	for _, c := range candidates[1:] {
		if d := lengthSq(rl.Vector3Subtract(c, point)); d <= bestD {
			best, bestD = c, d
		}
	}
	return best
}

// ClosestPointToTrianglePerimeter returns the point on the edges of
// triangle v0 v1 v2 nearest point.
func ClosestPointToTrianglePerimeter(v0, v1, v2, point rl.Vector3) rl.Vector3 {
	return NewTriangle(v0, v1, v2).closestPointToPerimeter(point)
}

func (t Triangle) closestPointToPerimeter(point rl.Vector3) rl.Vector3 {
	var r [3]rl.Vector3
	for i := 0; i < 3; i++ {
		r[i] = closestPointOnSegmentDir(t.vertex[i], t.vertex[triangleNext[i]], t.edgeDirection[i], t.EdgeLength(i), point)
	}
	return nearest(point, r[0], r[1], r[2])
}

// ClosestPointToRectanglePerimeter returns the point on the four edges
// v0-v1, v1-v2, v2-v3, v3-v0 nearest point.
func ClosestPointToRectanglePerimeter(v0, v1, v2, v3, point rl.Vector3) rl.Vector3 {
	return nearest(point,
		ClosestPointOnLineSegment(v0, v1, point),
		ClosestPointOnLineSegment(v1, v2, point),
		ClosestPointOnLineSegment(v2, v3, point),
		ClosestPointOnLineSegment(v3, v0, point),
	)
}

// ClosestPointToRectangle returns the point of the filled rectangle nearest
// point.
func ClosestPointToRectangle(v0, v1, v2, v3, point rl.Vector3) rl.Vector3 {
	plane := NewPlaneFromPoints(v0, v1, v2)
	planePoint := plane.Project(point)
	if IsPointInsideRectangle(v0, v1, v2, v3, plane.Normal, planePoint) {
		return planePoint
	}
	return ClosestPointToRectanglePerimeter(v0, v1, v2, v3, planePoint)
}

// projectionAxes returns the two axes spanning the 2D plane used for the
// inside tests when the normal is mostly along primary.
func projectionAxes(primary Axis) (Axis, Axis) {
	switch primary {
	case AxisX:
		return AxisZ, AxisY
	case AxisY:
		return AxisZ, AxisX
	case AxisZ:
		return AxisX, AxisY
	}
	panic("physics: projection for undetermined axis")
}

// IsPointInsideTriangle tests whether point, assumed to lie in the plane of
// the triangle, is inside it or on its boundary. The test projects onto the
// two axes orthogonal to primary; pass AxisDetect to derive primary from
// normal. A triangle of zero projected area contains only v0.
func IsPointInsideTriangle(v0, v1, v2, normal, point rl.Vector3, primary Axis) bool {
	if primary == AxisDetect {
		primary = NormalToPrimaryAxis(normal)
	}
	i, j := projectionAxes(primary)

	area2 := func(d, e, f rl.Vector3) float32 {
		return (component(e, i)-component(d, i))*(component(f, j)-component(d, j)) -
			(component(f, i)-component(d, i))*(component(e, j)-component(d, j))
	}

	area := area2(v0, v1, v2)
	if area == 0 {
		return point == v0
	}

	a := area2(point, v1, v2) / area
	if a < 0 {
		return false
	}
	b := area2(v0, point, v2) / area
	return b >= 0 && 1-(a+b) >= 0
}

// IsPointInsideRectangle tests an in-plane point against rectangle
// v0 v1 v2 v3 by splitting it along the v0-v2 diagonal.
func IsPointInsideRectangle(v0, v1, v2, v3, normal, point rl.Vector3) bool {
	return IsPointInsideTriangle(v0, v1, v2, normal, point, AxisDetect) ||
		IsPointInsideTriangle(v2, v3, v0, normal, point, AxisDetect)
}
