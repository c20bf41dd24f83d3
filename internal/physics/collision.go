package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Contact describes the first touch between a moving primitive and a fixed
// one. Time is in units of the velocity passed to the solver, so the moving
// primitive has travelled velocity*Time. Normal is the outward surface
// normal of the fixed primitive at Location.
type Contact struct {
	Time     float32
	Location rl.Vector3
	Normal   rl.Vector3
}

// NoContact is returned alongside false by every solver when the primitives
// never touch for t >= 0.
var NoContact = Contact{Time: inf, Location: Inf3}

// Hit reports whether c describes an actual contact.
func (c Contact) Hit() bool {
	return !math32.IsInf(c.Time, 1)
}

func miss() (Contact, bool) {
	return NoContact, false
}

// MovingPointFixedPlane returns when point, moving with velocity, reaches
// the front of plane. The plane is one sided: only a point approaching
// against the normal collides. A point already in the plane collides at
// time 0 whatever its velocity.
func MovingPointFixedPlane(point, velocity rl.Vector3, plane Plane) (Contact, bool) {
	normal, d := plane.Equation()
	vdotN := dot(velocity, normal)
	pdotN := dot(point, normal)

	if fuzzyEq(pdotN+d, 0) {
		return Contact{Time: 0, Location: point, Normal: normal}, true
	}

	if vdotN >= 0 {
		// Moving away from or parallel to the front face
		return miss()
	}

	t := -(pdotN + d) / vdotN
	if t < 0 {
		return miss()
	}
	return Contact{
		Time:     t,
		Location: rl.Vector3Add(point, rl.Vector3Scale(velocity, t)),
		Normal:   normal,
	}, true
}

// MovingPointFixedTriangle hits the front face of the triangle.
func MovingPointFixedTriangle(point, velocity rl.Vector3, tri Triangle) (Contact, bool) {
	c, ok := MovingPointFixedPlane(point, velocity, tri.plane)
	if !ok {
		return miss()
	}
	if !IsPointInsideTriangle(tri.vertex[0], tri.vertex[1], tri.vertex[2], tri.plane.Normal, c.Location, tri.primaryAxis) {
		return miss()
	}
	return c, true
}

// MovingPointFixedRectangle hits the front face of rectangle v0 v1 v2 v3,
// whose normal is (v1-v0)×(v2-v0).
func MovingPointFixedRectangle(point, velocity, v0, v1, v2, v3 rl.Vector3) (Contact, bool) {
	plane := NewPlaneFromPoints(v0, v1, v2)
	c, ok := MovingPointFixedPlane(point, velocity, plane)
	if !ok {
		return miss()
	}
	if !IsPointInsideRectangle(v0, v1, v2, v3, plane.Normal, c.Location) {
		return miss()
	}
	return c, true
}

// MovingPointFixedBox returns the earliest hit on the outside of any face.
// A point that starts inside the box never collides.
func MovingPointFixedBox(point, velocity rl.Vector3, box Box) (Contact, bool) {
	best, found := NoContact, false
	for f := 0; f < 6; f++ {
		v0, v1, v2, v3 := box.FaceCorners(f)
		if c, ok := MovingPointFixedRectangle(point, velocity, v0, v1, v2, v3); ok && c.Time < best.Time {
			best, found = c, true
		}
	}
	return best, found
}

// MovingPointFixedAABox is the slab test for an axis-aligned box. When the
// point starts inside the box there is no collision and inside is true.
func MovingPointFixedAABox(point, velocity rl.Vector3, box AABox) (c Contact, ok, inside bool) {
	const epsilon = 1e-5

	inside = true
	var candidate rl.Vector3
	maxT := [3]float32{-1, -1, -1}

	for _, a := range [3]Axis{AxisX, AxisY, AxisZ} {
		p, v := component(point, a), component(velocity, a)
		lo, hi := component(box.Min, a), component(box.Max, a)
		switch {
		case p < lo:
			setComponent(&candidate, a, lo)
			inside = false
			if v != 0 {
				maxT[a] = (lo - p) / v
			}
		case p > hi:
			setComponent(&candidate, a, hi)
			inside = false
			if v != 0 {
				maxT[a] = (hi - p) / v
			}
		}
	}

	if inside {
		return NoContact, false, true
	}

	// The last slab entered decides the face
	which := AxisX
	if maxT[AxisY] > maxT[which] {
		which = AxisY
	}
	if maxT[AxisZ] > maxT[which] {
		which = AxisZ
	}
	t := maxT[which]
	if t < 0 {
		return NoContact, false, false
	}

	var location, normal rl.Vector3
	for _, a := range [3]Axis{AxisX, AxisY, AxisZ} {
		if a == which {
			setComponent(&location, a, component(candidate, a))
			continue
		}
		x := component(point, a) + t*component(velocity, a)
		if x < component(box.Min, a)-epsilon || x > component(box.Max, a)+epsilon {
			return NoContact, false, false
		}
		setComponent(&location, a, x)
	}
	if component(candidate, which) == component(box.Min, which) {
		setComponent(&normal, which, -1)
	} else {
		setComponent(&normal, which, 1)
	}
	return Contact{Time: t, Location: location, Normal: normal}, true, false
}

// MovingPointFixedSphere solves the ray-sphere intersection. A point that
// starts inside the sphere reports the time it leaves, not 0.
func MovingPointFixedSphere(point, velocity rl.Vector3, sphere Sphere) (Contact, bool) {
	speed := rl.Vector3Length(velocity)
	if speed == 0 {
		return miss()
	}
	dir := rl.Vector3Scale(velocity, 1/speed)

	L := rl.Vector3Subtract(sphere.Center, point)
	d := dot(L, dir)
	L2 := dot(L, L)
	R2 := sphere.Radius * sphere.Radius

	if d < 0 && L2 > R2 {
		// Outside and heading away
		return miss()
	}

	M2 := L2 - d*d
	if M2 > R2 {
		return miss()
	}

	q := math32.Sqrt(R2 - M2)
	var t float32
	if L2 > R2 {
		t = d - q
	} else {
		t = d + q
	}
	t /= speed

	location := rl.Vector3Add(point, rl.Vector3Scale(velocity, t))
	return Contact{
		Time:     t,
		Location: location,
		Normal:   rl.Vector3Normalize(rl.Vector3Subtract(location, sphere.Center)),
	}, true
}

// MovingPointFixedCapsule returns when the point enters the capsule. A
// point that starts inside only exits, which is not a collision.
func MovingPointFixedCapsule(point, velocity rl.Vector3, capsule Capsule) (Contact, bool) {
	if capsule.Degenerate() {
		return movingPointEntersSphere(point, velocity, Sphere{Center: capsule.P1, Radius: capsule.Radius})
	}

	timeScale := rl.Vector3Length(velocity)
	if timeScale == 0 {
		timeScale = 1
	}
	dir := rl.Vector3Scale(velocity, 1/timeScale)

	roots, n := rayCapsuleRoots(point, dir, capsule)

	// Only intersections in the future count
	var hits [2]rl.Vector3
	count := 0
	for i := 0; i < n; i++ {
		if roots[i] >= 0 {
			hits[count] = rl.Vector3Add(point, rl.Vector3Scale(dir, roots[i]))
			count++
		}
	}

	// One intersection means the point is leaving the capsule
	if count != 2 {
		return miss()
	}

	location := hits[0]
	d := lengthSq(rl.Vector3Subtract(hits[0], point))
	if d1 := lengthSq(rl.Vector3Subtract(hits[1], point)); d > d1 {
		location, d = hits[1], d1
	}

	return Contact{
		Time:     math32.Sqrt(d) / timeScale,
		Location: location,
		Normal:   rl.Vector3Normalize(rl.Vector3Subtract(location, capsule.ClosestPoint(location))),
	}, true
}

// movingPointEntersSphere is MovingPointFixedSphere restricted to entering
// contacts, used for capsules whose core has collapsed to a point.
func movingPointEntersSphere(point, velocity rl.Vector3, sphere Sphere) (Contact, bool) {
	offset := rl.Vector3Subtract(point, sphere.Center)
	R2 := sphere.Radius * sphere.Radius
	switch d2 := lengthSq(offset); {
	case d2 < R2:
		return miss()
	case d2 == R2:
		if dot(velocity, offset) >= 0 {
			return miss()
		}
		return Contact{Time: 0, Location: point, Normal: rl.Vector3Normalize(offset)}, true
	}
	return MovingPointFixedSphere(point, velocity, sphere)
}

// rayCapsuleRoots intersects the line origin + t*dir with the capsule
// surface, working in a frame whose Z axis runs along the capsule core.
// dir must be unit length or zero. Returns up to two parameters t.
func rayCapsuleRoots(origin, dir rl.Vector3, capsule Capsule) (roots [2]float32, n int) {
	const epsilon = 1e-6

	axis := rl.Vector3Subtract(capsule.P2, capsule.P1)
	wLength := rl.Vector3Length(axis)
	w := rl.Vector3Scale(axis, 1/wLength)
	u, v := orthonormalBasis(w)

	D := rl.Vector3{X: dot(u, dir), Y: dot(v, dir), Z: dot(w, dir)}
	dLength := rl.Vector3Length(D)
	D = rl.Vector3Scale(D, 1/dLength)
	invDLength := 1 / dLength

	diff := rl.Vector3Subtract(origin, capsule.P1)
	P := rl.Vector3{X: dot(u, diff), Y: dot(v, diff), Z: dot(w, diff)}
	radiusSq := capsule.Radius * capsule.Radius

	// Moving along the core (or not at all)
	if math32.Abs(D.Z) >= 1-epsilon || dLength < epsilon {
		axisDir := dot(dir, axis)
		discr := radiusSq - P.X*P.X - P.Y*P.Y
		if discr < 0 || axisDir == 0 {
			return roots, 0
		}
		root := math32.Sqrt(discr)
		if axisDir < 0 {
			roots[0] = (P.Z + root) * invDLength
			roots[1] = -(wLength - P.Z + root) * invDLength
		} else {
			roots[0] = -(P.Z + root) * invDLength
			roots[1] = (wLength - P.Z + root) * invDLength
		}
		return roots, 2
	}

	// Infinite cylinder: a*t^2 + 2*b*t + c = 0
	a := D.X*D.X + D.Y*D.Y
	b := P.X*D.X + P.Y*D.Y
	c := P.X*P.X + P.Y*P.Y - radiusSq
	discr := b*b - a*c
	if discr < 0 {
		return roots, 0
	}

	onWall := func(z float32) bool { return 0 <= z && z <= wLength }
	if discr > 0 {
		root := math32.Sqrt(discr)
		inv := 1 / a
		for _, t := range [2]float32{(-b - root) * inv, (-b + root) * inv} {
			if onWall(P.Z + t*D.Z) {
				roots[n] = t * invDLength
				n++
			}
		}
		if n == 2 {
			return roots, n
		}
	} else {
		// Tangent to the cylinder
		t := -b / a
		if onWall(P.Z + t*D.Z) {
			roots[0] = t * invDLength
			return roots, 1
		}
	}

	// Caps. With |D| = 1 the quadratic is t^2 + 2*b*t + c = 0.
	capRoots := func(b, c float32, onCap func(z float32) bool) bool {
		discr := b*b - c
		var ts []float32
		switch {
		case discr > 0:
			root := math32.Sqrt(discr)
			ts = []float32{-b - root, -b + root}
		case discr == 0:
			ts = []float32{-b}
		}
		for _, t := range ts {
			if onCap(P.Z + t*D.Z) {
				roots[n] = t * invDLength
				n++
				if n == 2 {
					return true
				}
			}
		}
		return false
	}

	// Hemisphere around P1
	b += P.Z * D.Z
	c += P.Z * P.Z
	if capRoots(b, c, func(z float32) bool { return z <= 0 }) {
		return roots, n
	}

	// Hemisphere around P2
	b -= D.Z * wLength
	c += wLength * (wLength - 2*P.Z)
	capRoots(b, c, func(z float32) bool { return z >= wLength })
	return roots, n
}

// MovingSphereFixedPlane returns when the sphere first touches the front of
// the plane. A sphere already straddling the plane collides at time 0 with
// the contact at its center's projection onto the plane.
func MovingSphereFixedPlane(sphere Sphere, velocity rl.Vector3, plane Plane) (Contact, bool) {
	if sphere.Radius == 0 {
		return MovingPointFixedPlane(sphere.Center, velocity, plane)
	}

	normal, d := plane.Equation()
	distance := dot(sphere.Center, normal) + d

	if fuzzyLe(math32.Abs(distance), sphere.Radius) {
		return Contact{
			Time:     0,
			Location: rl.Vector3Subtract(sphere.Center, rl.Vector3Scale(normal, distance)),
			Normal:   normal,
		}, true
	}

	if !fuzzyLt(dot(velocity, normal), 0) {
		// Heading for the back face, or parallel
		return miss()
	}

	// The first point of the sphere to reach the plane
	point := rl.Vector3Subtract(sphere.Center, rl.Vector3Scale(normal, sphere.Radius))
	return MovingPointFixedPlane(point, velocity, plane)
}

// MovingSphereFixedTriangle tries the face first and falls back to the
// triangle's edges and vertices.
func MovingSphereFixedTriangle(sphere Sphere, velocity rl.Vector3, tri Triangle) (Contact, bool) {
	c, ok := MovingSphereFixedPlane(sphere, velocity, tri.plane)
	if !ok {
		return miss()
	}
	if IsPointInsideTriangle(tri.vertex[0], tri.vertex[1], tri.vertex[2], tri.plane.Normal, c.Location, tri.primaryAxis) {
		return c, true
	}
	return movingSphereFixedPerimeterPoint(sphere, velocity, tri.closestPointToPerimeter(sphere.Center), tri.plane.Normal)
}

// MovingSphereFixedRectangle tries the face first and falls back to the
// rectangle's edges and corners.
func MovingSphereFixedRectangle(sphere Sphere, velocity, v0, v1, v2, v3 rl.Vector3) (Contact, bool) {
	plane := NewPlaneFromPoints(v0, v1, v2)
	c, ok := MovingSphereFixedPlane(sphere, velocity, plane)
	if !ok {
		return miss()
	}
	if IsPointInsideRectangle(v0, v1, v2, v3, plane.Normal, c.Location) {
		return c, true
	}
	return movingSphereFixedPerimeterPoint(sphere, velocity, ClosestPointToRectanglePerimeter(v0, v1, v2, v3, sphere.Center), plane.Normal)
}

// movingSphereFixedPerimeterPoint handles the grazing case: in the sphere's
// frame the fixed perimeter point moves with -velocity towards a still
// sphere. faceNormal is used when the normal cannot be derived.
func movingSphereFixedPerimeterPoint(sphere Sphere, velocity, point, faceNormal rl.Vector3) (Contact, bool) {
	offset := rl.Vector3Subtract(sphere.Center, point)
	if lengthSq(offset) <= sphere.Radius*sphere.Radius {
		// Already touching the edge
		return Contact{Time: 0, Location: point, Normal: normalOr(offset, faceNormal)}, true
	}

	pc, ok := MovingPointFixedSphere(point, rl.Vector3Negate(velocity), sphere)
	if !ok {
		return miss()
	}
	center := rl.Vector3Add(sphere.Center, rl.Vector3Scale(velocity, pc.Time))
	return Contact{
		Time:     pc.Time,
		Location: point,
		Normal:   normalOr(rl.Vector3Subtract(center, point), faceNormal),
	}, true
}

// normalOr normalizes v, or returns fallback when v is (nearly) zero.
func normalOr(v, fallback rl.Vector3) rl.Vector3 {
	if fuzzyEq(lengthSq(v), 0) {
		return fallback
	}
	return direction(v)
}

// MovingSphereFixedBox returns the earliest contact with any face, edge or
// corner of the box.
func MovingSphereFixedBox(sphere Sphere, velocity rl.Vector3, box Box) (Contact, bool) {
	best, found := NoContact, false
	for f := 0; f < 6; f++ {
		v0, v1, v2, v3 := box.FaceCorners(f)
		if c, ok := MovingSphereFixedRectangle(sphere, velocity, v0, v1, v2, v3); ok && c.Time < best.Time {
			best, found = c, true
		}
	}
	return best, found
}

// MovingSphereFixedSphere grows the fixed sphere by the moving radius and
// casts the moving center against it. Spheres that already overlap collide
// at time 0.
func MovingSphereFixedSphere(moving Sphere, velocity rl.Vector3, fixed Sphere) (Contact, bool) {
	grown := Sphere{Center: fixed.Center, Radius: fixed.Radius + moving.Radius}

	var center rl.Vector3
	var t float32
	if grown.Contains(moving.Center) {
		center = moving.Center
	} else {
		c, ok := MovingPointFixedSphere(moving.Center, velocity, grown)
		if !ok {
			return miss()
		}
		center, t = c.Location, c.Time
	}

	// Spheres touch along the line between their centers
	normal := rl.Vector3Normalize(rl.Vector3Subtract(center, fixed.Center))
	return Contact{
		Time:     t,
		Location: rl.Vector3Subtract(center, rl.Vector3Scale(normal, moving.Radius)),
		Normal:   normal,
	}, true
}

// MovingSphereFixedCapsule grows the capsule by the sphere radius and casts
// the sphere center against it.
func MovingSphereFixedCapsule(sphere Sphere, velocity rl.Vector3, capsule Capsule) (Contact, bool) {
	grown := Capsule{P1: capsule.P1, P2: capsule.P2, Radius: capsule.Radius + sphere.Radius}
	c, ok := MovingPointFixedCapsule(sphere.Center, velocity, grown)
	if !ok {
		return miss()
	}
	// Location is the sphere center at contact; step back onto the capsule
	c.Location = rl.Vector3Subtract(c.Location, rl.Vector3Scale(c.Normal, sphere.Radius))
	return c, true
}

// RayTriangleTime is the one-sided Möller-Trumbore test. It returns the
// parameter t with ray.PointAt(t) on the triangle, or +Inf when the ray
// misses, starts past it, or approaches from the back.
func RayTriangleTime(ray Ray, v0, v1, v2 rl.Vector3) float32 {
	const epsilon = 1e-6

	edge1 := rl.Vector3Subtract(v1, v0)
	edge2 := rl.Vector3Subtract(v2, v0)

	pvec := cross(ray.Direction, edge2)
	det := dot(edge1, pvec)
	if det < epsilon {
		// Parallel, or hitting the back face
		return inf
	}

	tvec := rl.Vector3Subtract(ray.Origin, v0)
	u := dot(tvec, pvec)
	if u < 0 || u > det {
		return inf
	}

	qvec := cross(tvec, edge1)
	v := dot(ray.Direction, qvec)
	if v < 0 || u+v > det {
		return inf
	}

	t := dot(edge2, qvec) / det
	if t < 0 {
		return inf
	}
	return t
}
