package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// SphereIntersectsSphere reports whether the two balls overlap. Spheres
// that only touch do not intersect.
func SphereIntersectsSphere(a, b Sphere) bool {
	r := a.Radius + b.Radius
	return lengthSq(rl.Vector3Subtract(a.Center, b.Center)) < r*r
}

// SphereIntersectsBox reports whether the sphere touches the solid box.
func SphereIntersectsBox(s Sphere, b Box) bool {
	if b.Contains(s.Center) {
		return true
	}
	closest := b.ClosestPoint(s.Center)
	return lengthSq(rl.Vector3Subtract(closest, s.Center)) <= s.Radius*s.Radius
}

// MovingSpherePassesThroughBox reports whether the sphere, moving with
// velocity, touches the box before timeLimit. A sphere that already
// intersects the box passes through it.
func MovingSpherePassesThroughBox(s Sphere, velocity rl.Vector3, b Box, timeLimit float32) bool {
	if SphereIntersectsBox(s, b) {
		return true
	}
	c, ok := MovingSphereFixedBox(s, velocity, b)
	return ok && c.Time < timeLimit
}

// MovingSpherePassesThroughSphere is MovingSpherePassesThroughBox for a
// fixed sphere.
func MovingSpherePassesThroughSphere(s Sphere, velocity rl.Vector3, fixed Sphere, timeLimit float32) bool {
	if SphereIntersectsSphere(s, fixed) {
		return true
	}
	c, ok := MovingSphereFixedSphere(s, velocity, fixed)
	return ok && c.Time < timeLimit
}
