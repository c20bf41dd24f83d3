package physics

import rl "github.com/gen2brain/raylib-go/raylib"

type RaycastHit struct {
	Collider Collider
	Point    rl.Vector3
	Normal   rl.Vector3
	Distance float32
}

// Raycast returns the closest collider hit by the ray within maxDistance.
// The ray direction is normalized first, so Distance is in world units.
func (w *StaticWorld) Raycast(ray Ray, maxDistance float32) (RaycastHit, bool) {
	direction := rl.Vector3Normalize(ray.Direction)
	if direction == (rl.Vector3{}) {
		return RaycastHit{}, false
	}

	c, collider, ok := w.SweepPoint(ray.Origin, direction)
	if !ok || c.Time > maxDistance {
		return RaycastHit{}, false
	}
	return RaycastHit{
		Collider: collider,
		Point:    c.Location,
		Normal:   c.Normal,
		Distance: c.Time,
	}, true
}

// RaycastAABox is the slab test against an axis-aligned box. A ray starting
// inside the box reports where it leaves.
func RaycastAABox(ray Ray, box AABox, maxDistance float32) (RaycastHit, bool) {
	direction := rl.Vector3Normalize(ray.Direction)
	origin := ray.Origin

	tmin, tmax := -inf, inf
	for _, a := range [3]Axis{AxisX, AxisY, AxisZ} {
		o, d := component(origin, a), component(direction, a)
		lo, hi := component(box.Min, a), component(box.Max, a)
		if d == 0 {
			if o < lo || o > hi {
				return RaycastHit{}, false
			}
			continue
		}
		t1, t2 := (lo-o)/d, (hi-o)/d
		if t1 > t2 {
			t1, t2 = t2, t1
		}
		if t1 > tmin {
			tmin = t1
		}
		if t2 < tmax {
			tmax = t2
		}
		if tmin > tmax {
			return RaycastHit{}, false
		}
	}

	t := tmin
	if t < 0 {
		t = tmax
	}
	if t < 0 || t > maxDistance {
		return RaycastHit{}, false
	}

	point := rl.Vector3Add(origin, rl.Vector3Scale(direction, t))

	// Calculate normal based on which face was hit
	var normal rl.Vector3
	const epsilon = 0.001
	switch {
	case absf(point.X-box.Min.X) < epsilon:
		normal = rl.Vector3{X: -1}
	case absf(point.X-box.Max.X) < epsilon:
		normal = rl.Vector3{X: 1}
	case absf(point.Y-box.Min.Y) < epsilon:
		normal = rl.Vector3{Y: -1}
	case absf(point.Y-box.Max.Y) < epsilon:
		normal = rl.Vector3{Y: 1}
	case absf(point.Z-box.Min.Z) < epsilon:
		normal = rl.Vector3{Z: -1}
	default:
		normal = rl.Vector3{Z: 1}
	}

	return RaycastHit{Point: point, Normal: normal, Distance: t}, true
}
