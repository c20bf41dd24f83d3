package physics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// fuzzyEpsilon is the relative tolerance used by the fuzzy comparisons.
const fuzzyEpsilon = 1e-5

// Inf3 is the all-infinity vector reported as the location of a miss.
var Inf3 = rl.Vector3{X: math32.Inf(1), Y: math32.Inf(1), Z: math32.Inf(1)}

var inf = math32.Inf(1)

func fuzzyTolerance(a, b float32) float32 {
	scale := math32.Max(math32.Abs(a), math32.Abs(b))
	if scale < 1 {
		scale = 1
	}
	return fuzzyEpsilon * scale
}

func fuzzyEq(a, b float32) bool {
	return a == b || math32.Abs(a-b) <= fuzzyTolerance(a, b)
}

func fuzzyLe(a, b float32) bool {
	return a <= b+fuzzyTolerance(a, b)
}

func fuzzyLt(a, b float32) bool {
	return a < b-fuzzyTolerance(a, b)
}

// cross computes the cross product of two vectors
func cross(a, b rl.Vector3) rl.Vector3 {
	return rl.Vector3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func dot(a, b rl.Vector3) float32 {
	return rl.Vector3DotProduct(a, b)
}

func lengthSq(v rl.Vector3) float32 {
	return rl.Vector3DotProduct(v, v)
}

// direction scales v to unit length. Unlike rl.Vector3Normalize a zero
// vector is not passed through: the result is NaN, which callers treat as
// degenerate input.
func direction(v rl.Vector3) rl.Vector3 {
	return rl.Vector3Scale(v, 1/rl.Vector3Length(v))
}

// clamp restricts a value to a range
func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// component returns v[axis]; axis must be AxisX, AxisY or AxisZ.
func component(v rl.Vector3, axis Axis) float32 {
	switch axis {
	case AxisX:
		return v.X
	case AxisY:
		return v.Y
	case AxisZ:
		return v.Z
	}
	panic("physics: component of undetermined axis")
}

func setComponent(v *rl.Vector3, axis Axis, value float32) {
	switch axis {
	case AxisX:
		v.X = value
	case AxisY:
		v.Y = value
	case AxisZ:
		v.Z = value
	default:
		panic("physics: component of undetermined axis")
	}
}

// orthonormalBasis returns u, v such that (u, v, w) is a right-handed
// orthonormal frame. w must be unit length.
func orthonormalBasis(w rl.Vector3) (u, v rl.Vector3) {
	ax, ay, az := math32.Abs(w.X), math32.Abs(w.Y), math32.Abs(w.Z)
	if ax >= ay && ax >= az {
		u = rl.Vector3{X: -w.Y, Y: w.X}
	} else {
		u = rl.Vector3{Y: w.Z, Z: -w.Y}
	}
	u = rl.Vector3Normalize(u)
	v = cross(w, u)
	return u, v
}
