package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// Collider is a fixed primitive that points and spheres can be swept
// against.
type Collider interface {
	Name() string
	SweepPoint(point, velocity rl.Vector3) (Contact, bool)
	SweepSphere(s Sphere, velocity rl.Vector3) (Contact, bool)
}

// Penetrator is a Collider that can also measure a static overlap with a
// sphere. The contact normals point from the collider towards the sphere.
type Penetrator interface {
	Collider
	PenetrateSphere(s Sphere) (float32, []ContactPoint)
}

type PlaneCollider struct {
	Label string
	Plane Plane
}

func (c PlaneCollider) Name() string { return c.Label }

func (c PlaneCollider) SweepPoint(point, velocity rl.Vector3) (Contact, bool) {
	return MovingPointFixedPlane(point, velocity, c.Plane)
}

func (c PlaneCollider) SweepSphere(s Sphere, velocity rl.Vector3) (Contact, bool) {
	return MovingSphereFixedPlane(s, velocity, c.Plane)
}

func (c PlaneCollider) PenetrateSphere(s Sphere) (float32, []ContactPoint) {
	return PenetrationSpherePlane(s, c.Plane)
}

type SphereCollider struct {
	Label  string
	Sphere Sphere
}

func (c SphereCollider) Name() string { return c.Label }

func (c SphereCollider) SweepPoint(point, velocity rl.Vector3) (Contact, bool) {
	return MovingPointFixedSphere(point, velocity, c.Sphere)
}

func (c SphereCollider) SweepSphere(s Sphere, velocity rl.Vector3) (Contact, bool) {
	return MovingSphereFixedSphere(s, velocity, c.Sphere)
}

// PenetrateSphere measures from the fixed sphere into s, so the normal
// points away from the collider.
func (c SphereCollider) PenetrateSphere(s Sphere) (float32, []ContactPoint) {
	return PenetrationSphereSphere(c.Sphere, s)
}

type BoxCollider struct {
	Label string
	Box   Box
}

func (c BoxCollider) Name() string { return c.Label }

func (c BoxCollider) SweepPoint(point, velocity rl.Vector3) (Contact, bool) {
	return MovingPointFixedBox(point, velocity, c.Box)
}

func (c BoxCollider) SweepSphere(s Sphere, velocity rl.Vector3) (Contact, bool) {
	return MovingSphereFixedBox(s, velocity, c.Box)
}

func (c BoxCollider) PenetrateSphere(s Sphere) (float32, []ContactPoint) {
	return PenetrationSphereBox(s, c.Box)
}

type CapsuleCollider struct {
	Label   string
	Capsule Capsule
}

func (c CapsuleCollider) Name() string { return c.Label }

func (c CapsuleCollider) SweepPoint(point, velocity rl.Vector3) (Contact, bool) {
	return MovingPointFixedCapsule(point, velocity, c.Capsule)
}

func (c CapsuleCollider) SweepSphere(s Sphere, velocity rl.Vector3) (Contact, bool) {
	return MovingSphereFixedCapsule(s, velocity, c.Capsule)
}

type TriangleCollider struct {
	Label    string
	Triangle Triangle
}

func (c TriangleCollider) Name() string { return c.Label }

func (c TriangleCollider) SweepPoint(point, velocity rl.Vector3) (Contact, bool) {
	return MovingPointFixedTriangle(point, velocity, c.Triangle)
}

func (c TriangleCollider) SweepSphere(s Sphere, velocity rl.Vector3) (Contact, bool) {
	return MovingSphereFixedTriangle(s, velocity, c.Triangle)
}

// RectangleCollider is the one-sided quad V0 V1 V2 V3; its front faces
// along (V1-V0)×(V2-V0).
type RectangleCollider struct {
	Label          string
	V0, V1, V2, V3 rl.Vector3
}

func (c RectangleCollider) Name() string { return c.Label }

func (c RectangleCollider) SweepPoint(point, velocity rl.Vector3) (Contact, bool) {
	return MovingPointFixedRectangle(point, velocity, c.V0, c.V1, c.V2, c.V3)
}

func (c RectangleCollider) SweepSphere(s Sphere, velocity rl.Vector3) (Contact, bool) {
	return MovingSphereFixedRectangle(s, velocity, c.V0, c.V1, c.V2, c.V3)
}
