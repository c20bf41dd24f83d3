package physics

import rl "github.com/gen2brain/raylib-go/raylib"

// AABox is an axis-aligned box with Min <= Max componentwise.
type AABox struct {
	Min rl.Vector3
	Max rl.Vector3
}

// NewAABoxFromCenter creates an AABox from a center point and full size dimensions.
func NewAABoxFromCenter(center, size rl.Vector3) AABox {
	half := rl.Vector3{X: size.X / 2, Y: size.Y / 2, Z: size.Z / 2}
	return AABox{
		Min: rl.Vector3Subtract(center, half),
		Max: rl.Vector3Add(center, half),
	}
}

// NewAABoxFromBoundingBox converts raylib's bounding box.
func NewAABoxFromBoundingBox(b rl.BoundingBox) AABox {
	return AABox{Min: b.Min, Max: b.Max}
}

func (a AABox) BoundingBox() rl.BoundingBox {
	return rl.NewBoundingBox(a.Min, a.Max)
}

// Box returns the same volume as an oriented box with the standard corner winding.
func (a AABox) Box() Box {
	return NewBox(a.Min, a.Max)
}

func (a AABox) Center() rl.Vector3 {
	return rl.Vector3Scale(rl.Vector3Add(a.Min, a.Max), 0.5)
}

func (a AABox) Contains(p rl.Vector3) bool {
	return p.X >= a.Min.X && p.X <= a.Max.X &&
		p.Y >= a.Min.Y && p.Y <= a.Max.Y &&
		p.Z >= a.Min.Z && p.Z <= a.Max.Z
}

func (a AABox) Intersects(b AABox) bool {
	return a.Min.X <= b.Max.X && a.Max.X >= b.Min.X &&
		a.Min.Y <= b.Max.Y && a.Max.Y >= b.Min.Y &&
		a.Min.Z <= b.Max.Z && a.Max.Z >= b.Min.Z
}

// Resolve returns the minimum translation vector to push 'a' out of 'b'.
// Returns zero vector if no overlap.
func (a AABox) Resolve(b AABox) rl.Vector3 {
	if !a.Intersects(b) {
		return rl.Vector3Zero()
	}

	// Candidate pushes, +X -X +Y -Y +Z -Z
	pushes := [6]rl.Vector3{
		{X: b.Max.X - a.Min.X},
		{X: -(a.Max.X - b.Min.X)},
		{Y: b.Max.Y - a.Min.Y},
		{Y: -(a.Max.Y - b.Min.Y)},
		{Z: b.Max.Z - a.Min.Z},
		{Z: -(a.Max.Z - b.Min.Z)},
	}
	result := pushes[0]
	min := rl.Vector3Length(result)
	for _, p := range pushes[1:] {
		if l := rl.Vector3Length(p); l < min {
			min = l
			result = p
		}
	}
	return result
}
