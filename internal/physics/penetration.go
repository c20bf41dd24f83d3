package physics

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ContactPoint is one point of a penetration manifold.
type ContactPoint struct {
	Point  rl.Vector3
	Normal rl.Vector3
}

// BoxFeature is the part of a box closest to a sphere center.
type BoxFeature int

const (
	FeatureVolume BoxFeature = iota // center inside the box
	FeatureFace
	FeatureEdge
	FeatureVertex
)

func (f BoxFeature) String() string {
	switch f {
	case FeatureVolume:
		return "volume"
	case FeatureFace:
		return "face"
	case FeatureEdge:
		return "edge"
	case FeatureVertex:
		return "vertex"
	}
	return fmt.Sprintf("BoxFeature(%d)", int(f))
}

// sphereBoxRegion locates a box-local point relative to the slabs of a box
// with the given half-extents. For each axis, region is -1 or +1 when the
// point lies beyond the low or high face and 0 inside the slab; signed is
// the distance to the nearer face, negative inside. outside counts the
// axes with a non-zero region.
func sphereBoxRegion(center, half rl.Vector3) (region, signed rl.Vector3, outside int) {
	for _, a := range [3]Axis{AxisX, AxisY, AxisZ} {
		c, h := component(center, a), component(half, a)
		fromLow := -h - c
		fromHigh := c - h
		if fromLow > 0 && fromHigh > 0 {
			panic("physics: distanceFromLow and distanceFromHigh cannot both be positive")
		}
		switch {
		case fromLow > 0:
			setComponent(&region, a, -1)
			setComponent(&signed, a, fromLow)
			outside++
		case fromHigh > 0:
			setComponent(&region, a, 1)
			setComponent(&signed, a, fromHigh)
			outside++
		default:
			setComponent(&signed, a, math32.Max(fromLow, fromHigh))
		}
	}
	return region, signed, outside
}

// ClassifySphereBox reports which feature of the box is closest to the
// sphere center, whether or not the two overlap.
func ClassifySphereBox(sphere Sphere, box Box) BoxFeature {
	_, _, outside := sphereBoxRegion(box.ToLocal(sphere.Center), box.HalfSize)
	return BoxFeature(outside)
}

// leastPenetratingAxis picks the axis whose signed face distance is
// largest. Ties go to X, then Y, then Z.
func leastPenetratingAxis(d rl.Vector3) Axis {
	axis := AxisX
	if d.Y > d.X {
		axis = AxisY
	}
	if d.Z > component(d, axis) {
		axis = AxisZ
	}
	return axis
}

// PenetrationSphereBox returns how deep the sphere sinks into the box, or
// -1 when they do not overlap. The single contact normal points out of the
// box towards the sphere center.
func PenetrationSphereBox(sphere Sphere, box Box) (float32, []ContactPoint) {
	center := box.ToLocal(sphere.Center)
	region, signed, outside := sphereBoxRegion(center, box.HalfSize)

	// Squared distance from the center to the box
	var d2 float32
	for _, a := range [3]Axis{AxisX, AxisY, AxisZ} {
		if component(region, a) != 0 {
			s := component(signed, a)
			d2 += s * s
		}
	}
	if d2 > sphere.Radius*sphere.Radius {
		return -1, nil
	}

	var depth float32
	var point, normal rl.Vector3

	switch BoxFeature(outside) {
	case FeatureVertex, FeatureEdge:
		// Snap the outside coordinates onto the box; what remains is the
		// nearest vertex, or the projection onto the nearest edge.
		point = center
		for _, a := range [3]Axis{AxisX, AxisY, AxisZ} {
			if r := component(region, a); r != 0 {
				setComponent(&point, a, r*component(box.HalfSize, a))
			}
		}
		normal = direction(rl.Vector3Subtract(center, point))
		depth = sphere.Radius - math32.Sqrt(d2)

	case FeatureFace:
		// region is already the unit face normal
		normal = region
		var s float32
		for _, a := range [3]Axis{AxisX, AxisY, AxisZ} {
			if component(region, a) != 0 {
				s = component(signed, a)
			}
		}
		depth = sphere.Radius - s
		point = rl.Vector3Subtract(center, rl.Vector3Scale(normal, sphere.Radius-depth))

	case FeatureVolume:
		axis := leastPenetratingAxis(signed)
		if component(center, axis) >= 0 {
			setComponent(&normal, axis, 1)
		} else {
			setComponent(&normal, axis, -1)
		}
		depth = sphere.Radius - component(signed, axis)
		point = center

	default:
		panic(fmt.Sprintf("physics: %d axes outside the box", outside))
	}

	return depth, []ContactPoint{{
		Point:  box.ToWorld(point),
		Normal: box.NormalToWorld(normal),
	}}
}

// PenetrationSphereSphere returns (ra + rb) - |cb - ca|, negative when the
// spheres are apart. The contact normal points from a towards b.
func PenetrationSphereSphere(a, b Sphere) (float32, []ContactPoint) {
	axis := rl.Vector3Subtract(b.Center, a.Center)
	depth := a.Radius + b.Radius - rl.Vector3Length(axis)
	if depth < 0 {
		return depth, nil
	}
	normal := rl.Vector3Normalize(axis)
	return depth, []ContactPoint{{
		Point:  rl.Vector3Add(a.Center, rl.Vector3Scale(normal, a.Radius-depth/2)),
		Normal: normal,
	}}
}

// PenetrationSpherePlane measures how far the sphere reaches behind the
// front of the plane. The contact is the center's projection onto the
// plane, with the plane normal.
func PenetrationSpherePlane(sphere Sphere, plane Plane) (float32, []ContactPoint) {
	normal, d := plane.Equation()
	distance := dot(sphere.Center, normal) + d
	depth := sphere.Radius - distance
	if depth < 0 {
		return depth, nil
	}
	return depth, []ContactPoint{{
		Point:  rl.Vector3Subtract(sphere.Center, rl.Vector3Scale(normal, distance)),
		Normal: normal,
	}}
}

// PenetrationBoxPlane returns one contact per box corner on or behind the
// plane, each with normal -plane.Normal. The depth is how far the deepest
// corner lies behind the plane.
func PenetrationBoxPlane(box Box, plane Plane) (float32, []ContactPoint) {
	normal, d := plane.Equation()
	lowest := inf
	var contacts []ContactPoint
	for _, c := range box.corners {
		distance := dot(normal, c) + d
		if distance < lowest {
			lowest = distance
		}
		if distance <= 0 {
			contacts = append(contacts, ContactPoint{Point: c, Normal: rl.Vector3Negate(normal)})
		}
	}
	return -lowest, contacts
}
