package physics

import (
	"fmt"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Axis names a coordinate axis. AxisDetect asks a function to derive the
// axis itself.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
	AxisDetect
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	case AxisDetect:
		return "Detect"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// NormalToPrimaryAxis returns the axis most nearly parallel to n.
func NormalToPrimaryAxis(n rl.Vector3) Axis {
	nx, ny, nz := math32.Abs(n.X), math32.Abs(n.Y), math32.Abs(n.Z)
	if nx > ny {
		if nx > nz {
			return AxisX
		}
		return AxisZ
	}
	if ny > nz {
		return AxisY
	}
	return AxisZ
}

type Sphere struct {
	Center rl.Vector3
	Radius float32
}

func NewSphere(center rl.Vector3, radius float32) Sphere {
	return Sphere{Center: center, Radius: radius}
}

// Contains reports whether p lies in the closed ball.
func (s Sphere) Contains(p rl.Vector3) bool {
	return lengthSq(rl.Vector3Subtract(p, s.Center)) <= s.Radius*s.Radius
}

// Plane holds the points X with Normal·X = Distance. Normal is unit length.
type Plane struct {
	Normal   rl.Vector3
	Distance float32
}

// NewPlaneFromPoints builds the plane through three points. The normal is
// (p1-p0)×(p2-p0), so counter-clockwise points face the viewer.
func NewPlaneFromPoints(p0, p1, p2 rl.Vector3) Plane {
	n := direction(cross(rl.Vector3Subtract(p1, p0), rl.Vector3Subtract(p2, p0)))
	return Plane{Normal: n, Distance: dot(n, p0)}
}

// NewPlaneFromNormal builds the plane with normal n through point.
func NewPlaneFromNormal(n, point rl.Vector3) Plane {
	n = direction(n)
	return Plane{Normal: n, Distance: dot(n, point)}
}

// NewPlaneFromEquation builds the plane ax + by + cz + d = 0.
func NewPlaneFromEquation(a, b, c, d float32) Plane {
	n := rl.Vector3{X: a, Y: b, Z: c}
	l := rl.Vector3Length(n)
	return Plane{Normal: rl.Vector3Scale(n, 1/l), Distance: -d / l}
}

// Equation returns n and d such that n·X + d = 0 on the plane.
func (p Plane) Equation() (rl.Vector3, float32) {
	return p.Normal, -p.Distance
}

// SignedDistance is positive on the side the normal points to.
func (p Plane) SignedDistance(point rl.Vector3) float32 {
	return dot(p.Normal, point) - p.Distance
}

func (p Plane) HalfSpaceContains(point rl.Vector3) bool {
	return p.SignedDistance(point) >= 0
}

func (p Plane) Flip() Plane {
	return Plane{Normal: rl.Vector3Negate(p.Normal), Distance: -p.Distance}
}

// Project returns the point of the plane closest to point.
func (p Plane) Project(point rl.Vector3) rl.Vector3 {
	return rl.Vector3Subtract(point, rl.Vector3Scale(p.Normal, p.SignedDistance(point)))
}

// LineSegment is the finite segment P0-P1.
type LineSegment struct {
	P0, P1 rl.Vector3
}

func (l LineSegment) Length() float32 {
	return rl.Vector3Length(rl.Vector3Subtract(l.P1, l.P0))
}

// ClosestPoint returns the point on the segment nearest p. The segment must
// have non-zero length.
func (l LineSegment) ClosestPoint(p rl.Vector3) rl.Vector3 {
	return ClosestPointOnLineSegment(l.P0, l.P1, p)
}

// Ray starts at Origin and heads along Direction, which is unit length by
// convention but is not required to be.
type Ray struct {
	Origin    rl.Vector3
	Direction rl.Vector3
}

// RayFromTwoPoints returns the unit ray from a towards b.
func RayFromTwoPoints(a, b rl.Vector3) Ray {
	return Ray{Origin: a, Direction: direction(rl.Vector3Subtract(b, a))}
}

func (r Ray) PointAt(t float32) rl.Vector3 {
	return rl.Vector3Add(r.Origin, rl.Vector3Scale(r.Direction, t))
}

// RL converts the ray to raylib's representation.
func (r Ray) RL() rl.Ray {
	return rl.Ray{Position: r.Origin, Direction: r.Direction}
}

// Capsule is the set of points within Radius of the segment P1-P2.
type Capsule struct {
	P1, P2 rl.Vector3
	Radius float32
}

func NewCapsule(p1, p2 rl.Vector3, radius float32) Capsule {
	return Capsule{P1: p1, P2: p2, Radius: radius}
}

// Axis returns the core segment.
func (c Capsule) Axis() LineSegment {
	return LineSegment{P0: c.P1, P1: c.P2}
}

// Degenerate reports whether the capsule is a plain sphere.
func (c Capsule) Degenerate() bool {
	return c.P1 == c.P2
}

func (c Capsule) Volume() float32 {
	h := rl.Vector3Distance(c.P1, c.P2)
	return math32.Pi*c.Radius*c.Radius*h + 4.0/3.0*math32.Pi*c.Radius*c.Radius*c.Radius
}

func (c Capsule) SurfaceArea() float32 {
	h := rl.Vector3Distance(c.P1, c.P2)
	return 2*math32.Pi*c.Radius*h + 4*math32.Pi*c.Radius*c.Radius
}

// ClosestPoint returns the point of the capsule's core segment nearest p.
// Degenerate capsules answer with P1.
func (c Capsule) ClosestPoint(p rl.Vector3) rl.Vector3 {
	if c.Degenerate() {
		return c.P1
	}
	return ClosestPointOnLineSegment(c.P1, c.P2, p)
}

var triangleNext = [3]int{1, 2, 0}

// Triangle caches the edge, plane and projection data the solvers need.
// Build it with NewTriangle; the cache is never refreshed afterwards.
type Triangle struct {
	vertex        [3]rl.Vector3
	edgeDirection [3]rl.Vector3
	edgeLength    [3]float32
	plane         Plane
	primaryAxis   Axis
	area          float32
}

func NewTriangle(v0, v1, v2 rl.Vector3) Triangle {
	t := Triangle{vertex: [3]rl.Vector3{v0, v1, v2}}
	for i := 0; i < 3; i++ {
		e := rl.Vector3Subtract(t.vertex[triangleNext[i]], t.vertex[i])
		t.edgeLength[i] = rl.Vector3Length(e)
		t.edgeDirection[i] = rl.Vector3Scale(e, 1/t.edgeLength[i])
	}
	n := cross(rl.Vector3Subtract(v1, v0), rl.Vector3Subtract(v2, v0))
	t.area = rl.Vector3Length(n) / 2
	t.plane = NewPlaneFromPoints(v0, v1, v2)
	t.primaryAxis = NormalToPrimaryAxis(t.plane.Normal)
	return t
}

func (t Triangle) Vertex(i int) rl.Vector3 { return t.vertex[i] }
func (t Triangle) Plane() Plane           { return t.plane }
func (t Triangle) Normal() rl.Vector3     { return t.plane.Normal }
func (t Triangle) PrimaryAxis() Axis      { return t.primaryAxis }

// Area is half the length of (v1-v0)×(v2-v0).
func (t Triangle) Area() float32 { return t.area }

func (t Triangle) EdgeLength(i int) float32 { return t.edgeLength[i] }
