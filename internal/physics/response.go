package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// BounceDirection reflects the sphere's direction of travel about the
// contact normal. The normal is taken from the contact location towards
// the sphere center at collisionTime; when the two coincide the supplied
// normal is used instead. The result is unit length for non-zero velocity.
func BounceDirection(sphere Sphere, velocity rl.Vector3, collisionTime float32, location, normal rl.Vector3) rl.Vector3 {
	center := rl.Vector3Add(sphere.Center, rl.Vector3Scale(velocity, collisionTime))
	n := normalOr(rl.Vector3Subtract(center, location), normal)
	dir := rl.Vector3Normalize(velocity)
	return rl.Vector3Subtract(dir, rl.Vector3Scale(n, 2*dot(n, dir)))
}

// SlideDirection removes the normal component from the sphere's direction
// of travel. The result is not renormalized: its length shrinks as the
// approach gets steeper.
func SlideDirection(sphere Sphere, velocity rl.Vector3, collisionTime float32, location rl.Vector3) rl.Vector3 {
	center := rl.Vector3Add(sphere.Center, rl.Vector3Scale(velocity, collisionTime))
	n := rl.Vector3Normalize(rl.Vector3Subtract(center, location))
	dir := rl.Vector3Normalize(velocity)
	return rl.Vector3Subtract(dir, rl.Vector3Scale(n, dot(n, dir)))
}
