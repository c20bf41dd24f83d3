package physics

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// cornerSigns gives the side of each corner along the local X, Y, Z axes.
// Corners 0-3 lie on the +Z face, 4-7 on the -Z face.
var cornerSigns = [8][3]float32{
	{-1, -1, 1},
	{1, -1, 1},
	{1, 1, 1},
	{-1, 1, 1},
	{-1, -1, -1},
	{1, -1, -1},
	{1, 1, -1},
	{-1, 1, -1},
}

// faceCorners lists the corners of each face, wound so that the plane
// through the first three faces outward: +Z, +X, -Z, +Y, -X, -Y.
var faceCorners = [6][4]int{
	{0, 1, 2, 3},
	{1, 5, 6, 2},
	{7, 6, 5, 4},
	{2, 6, 7, 3},
	{3, 7, 4, 0},
	{1, 0, 4, 5},
}

// Box is an oriented box. Corners, area and volume are computed once by the
// constructors.
type Box struct {
	Center   rl.Vector3    // World-space center
	HalfSize rl.Vector3    // Half-extents along local axes
	Axes     [3]rl.Vector3 // Local X, Y, Z axes (rotated)

	corners [8]rl.Vector3
	area    float32
	volume  float32
}

// NewBox creates an axis-aligned box from two opposite corners.
func NewBox(min, max rl.Vector3) Box {
	center := rl.Vector3Scale(rl.Vector3Add(min, max), 0.5)
	size := rl.Vector3Subtract(max, min)
	return newBox(center, size, [3]rl.Vector3{
		{X: 1, Y: 0, Z: 0},
		{X: 0, Y: 1, Z: 0},
		{X: 0, Y: 0, Z: 1},
	})
}

// NewRotatedBox creates a box from center, size, and euler rotation (degrees)
func NewRotatedBox(center, size, rotation rl.Vector3) Box {
	// Rotation order X, Y, Z
	rotX := rl.MatrixRotateX(rotation.X * rl.Deg2rad)
	rotY := rl.MatrixRotateY(rotation.Y * rl.Deg2rad)
	rotZ := rl.MatrixRotateZ(rotation.Z * rl.Deg2rad)
	rotMatrix := rl.MatrixMultiply(rl.MatrixMultiply(rotX, rotY), rotZ)

	// Extract rotated axes
	axes := [3]rl.Vector3{
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M0, Y: rotMatrix.M1, Z: rotMatrix.M2}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M4, Y: rotMatrix.M5, Z: rotMatrix.M6}),
		rl.Vector3Normalize(rl.Vector3{X: rotMatrix.M8, Y: rotMatrix.M9, Z: rotMatrix.M10}),
	}
	return newBox(center, size, axes)
}

func newBox(center, size rl.Vector3, axes [3]rl.Vector3) Box {
	b := Box{
		Center:   center,
		HalfSize: rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2},
		Axes:     axes,
	}
	for i, s := range cornerSigns {
		b.corners[i] = b.ToWorld(rl.Vector3{
			X: s[0] * b.HalfSize.X,
			Y: s[1] * b.HalfSize.Y,
			Z: s[2] * b.HalfSize.Z,
		})
	}
	b.volume = size.X * size.Y * size.Z
	b.area = 2 * (size.X*size.Y + size.Y*size.Z + size.Z*size.X)
	return b
}

func (b Box) Corner(i int) rl.Vector3 { return b.corners[i] }
func (b Box) Volume() float32         { return b.volume }
func (b Box) SurfaceArea() float32    { return b.area }

// Extent returns the full edge length along local axis a.
func (b Box) Extent(a Axis) float32 {
	return 2 * component(b.HalfSize, a)
}

// FaceCorners returns the four corners of face f (0-5) in outward winding.
func (b Box) FaceCorners(f int) (v0, v1, v2, v3 rl.Vector3) {
	if f < 0 || f >= len(faceCorners) {
		panic(fmt.Sprintf("physics: box face %d out of range", f))
	}
	c := faceCorners[f]
	return b.corners[c[0]], b.corners[c[1]], b.corners[c[2]], b.corners[c[3]]
}

// ToLocal transforms a world point into the box frame (origin at Center).
func (b Box) ToLocal(p rl.Vector3) rl.Vector3 {
	local := rl.Vector3Subtract(p, b.Center)
	return rl.Vector3{
		X: dot(local, b.Axes[0]),
		Y: dot(local, b.Axes[1]),
		Z: dot(local, b.Axes[2]),
	}
}

// ToWorld transforms a point in the box frame back to world space.
func (b Box) ToWorld(local rl.Vector3) rl.Vector3 {
	return rl.Vector3Add(b.Center, b.NormalToWorld(local))
}

// NormalToWorld rotates a box-frame direction into world space.
func (b Box) NormalToWorld(n rl.Vector3) rl.Vector3 {
	result := rl.Vector3Scale(b.Axes[0], n.X)
	result = rl.Vector3Add(result, rl.Vector3Scale(b.Axes[1], n.Y))
	return rl.Vector3Add(result, rl.Vector3Scale(b.Axes[2], n.Z))
}

// Contains reports whether p is inside or on the box.
func (b Box) Contains(p rl.Vector3) bool {
	local := b.ToLocal(p)
	return absf(local.X) <= b.HalfSize.X &&
		absf(local.Y) <= b.HalfSize.Y &&
		absf(local.Z) <= b.HalfSize.Z
}

// ClosestPoint returns the point of the solid box closest to point.
func (b Box) ClosestPoint(point rl.Vector3) rl.Vector3 {
	local := b.ToLocal(point)
	return b.ToWorld(rl.Vector3{
		X: clamp(local.X, -b.HalfSize.X, b.HalfSize.X),
		Y: clamp(local.Y, -b.HalfSize.Y, b.HalfSize.Y),
		Z: clamp(local.Z, -b.HalfSize.Z, b.HalfSize.Z),
	})
}

// BoxIntersectsBox tests if two boxes intersect using the Separating Axis Theorem
func BoxIntersectsBox(a, b Box) bool {
	t := rl.Vector3Subtract(b.Center, a.Center)
	intersects := true
	forEachSeparatingAxis(a, b, func(axis rl.Vector3) bool {
		if !overlapOnAxis(a, b, axis, t) {
			intersects = false
			return false
		}
		return true
	})
	return intersects
}

// forEachSeparatingAxis visits the 15 candidate axes: 3 face normals of a,
// 3 of b, and the 9 edge cross products. Near-zero cross products (parallel
// edges) are skipped. Iteration stops when fn returns false.
func forEachSeparatingAxis(a, b Box, fn func(axis rl.Vector3) bool) {
	for i := 0; i < 3; i++ {
		if !fn(a.Axes[i]) {
			return
		}
	}
	for i := 0; i < 3; i++ {
		if !fn(b.Axes[i]) {
			return
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			axis := cross(a.Axes[i], b.Axes[j])
			if rl.Vector3Length(axis) <= 0.0001 {
				continue
			}
			if !fn(rl.Vector3Normalize(axis)) {
				return
			}
		}
	}
}

// projectedRadius projects the half-sizes of a box onto a unit axis
func projectedRadius(o Box, axis rl.Vector3) float32 {
	return o.HalfSize.X*absf(dot(o.Axes[0], axis)) +
		o.HalfSize.Y*absf(dot(o.Axes[1], axis)) +
		o.HalfSize.Z*absf(dot(o.Axes[2], axis))
}

// overlapOnAxis checks if two boxes overlap when projected onto a given axis
func overlapOnAxis(a, b Box, axis, t rl.Vector3) bool {
	distance := absf(dot(t, axis))
	return distance <= projectedRadius(a, axis)+projectedRadius(b, axis)
}

// PenetrationBoxBox finds the axis of least overlap between two boxes.
// The depth is negative when a separating axis exists. On overlap a single
// contact is returned whose normal points from a into b; it sits halfway
// between b's deepest vertex along the normal and the surface of a.
func PenetrationBoxBox(a, b Box) (float32, []ContactPoint) {
	t := rl.Vector3Subtract(b.Center, a.Center)
	minPenetration := inf
	var normal rl.Vector3

	forEachSeparatingAxis(a, b, func(axis rl.Vector3) bool {
		penetration := projectedRadius(a, axis) + projectedRadius(b, axis) - absf(dot(t, axis))
		if penetration < minPenetration {
			minPenetration = penetration
			// Orient from a towards b
			if dot(t, axis) < 0 {
				normal = rl.Vector3Negate(axis)
			} else {
				normal = axis
			}
		}
		return penetration >= 0
	})

	if minPenetration < 0 {
		return minPenetration, nil
	}

	// Deepest point of b along -normal, pulled back by half the depth.
	deepest := b.corners[0]
	best := dot(deepest, normal)
	for _, c := range b.corners[1:] {
		if d := dot(c, normal); d < best {
			best = d
			deepest = c
		}
	}
	contact := rl.Vector3Add(deepest, rl.Vector3Scale(normal, minPenetration/2))
	return minPenetration, []ContactPoint{{Point: contact, Normal: normal}}
}

func absf(x float32) float32 {
	return math32.Abs(x)
}
