package physics

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestNewBoxCorners(t *testing.T) {
	box := NewBox(v3(-1, -2, -3), v3(1, 2, 3))

	want := [8]rl.Vector3{
		v3(-1, -2, 3), v3(1, -2, 3), v3(1, 2, 3), v3(-1, 2, 3),
		v3(-1, -2, -3), v3(1, -2, -3), v3(1, 2, -3), v3(-1, 2, -3),
	}
	for i, w := range want {
		if got := box.Corner(i); !vecNear(got, w) {
			t.Errorf("Corner %d: expected %v, got %v", i, w, got)
		}
	}

	if box.Volume() != 48 {
		t.Errorf("Expected volume 48, got %v", box.Volume())
	}
	if box.SurfaceArea() != 88 {
		t.Errorf("Expected surface area 88, got %v", box.SurfaceArea())
	}
	if box.Extent(AxisZ) != 6 {
		t.Errorf("Expected Z extent 6, got %v", box.Extent(AxisZ))
	}
}

func TestBoxFacesPointOutward(t *testing.T) {
	boxes := map[string]Box{
		"axis aligned": NewBox(v3(-1, -1, -1), v3(1, 2, 3)),
		"rotated":      NewRotatedBox(v3(4, -2, 1), v3(1, 2, 3), v3(15, 40, -70)),
	}
	wantAxis := [6]rl.Vector3{v3(0, 0, 1), v3(1, 0, 0), v3(0, 0, -1), v3(0, 1, 0), v3(-1, 0, 0), v3(0, -1, 0)}

	for name, box := range boxes {
		t.Run(name, func(t *testing.T) {
			for f := 0; f < 6; f++ {
				c0, c1, c2, c3 := box.FaceCorners(f)
				plane := NewPlaneFromPoints(c0, c1, c2)

				if want := box.NormalToWorld(wantAxis[f]); !vecNear(plane.Normal, want) {
					t.Errorf("Face %d: expected normal %v, got %v", f, want, plane.Normal)
				}
				if plane.SignedDistance(box.Center) >= 0 {
					t.Errorf("Face %d: box center is in front of the face", f)
				}
				if d := plane.SignedDistance(c3); !near(d, 0) {
					t.Errorf("Face %d: fourth corner is %v off the face plane", f, d)
				}
			}
		})
	}
}

func TestBoxFaceCornersOutOfRange(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for face 6")
		}
	}()
	NewBox(v3(0, 0, 0), v3(1, 1, 1)).FaceCorners(6)
}

func TestBoxLocalRoundTrip(t *testing.T) {
	box := NewRotatedBox(v3(1, 2, 3), v3(2, 2, 2), v3(30, 45, 60))
	p := v3(-0.5, 4, 2)
	if got := box.ToWorld(box.ToLocal(p)); !vecNear(got, p) {
		t.Errorf("Expected %v, got %v", p, got)
	}
	if !box.Contains(box.Center) {
		t.Error("Box should contain its center")
	}
	if got := box.ClosestPoint(box.Center); !vecNear(got, box.Center) {
		t.Errorf("Expected closest point to the center to be the center, got %v", got)
	}
}

func TestBoxIntersectsBox(t *testing.T) {
	a := NewBox(v3(-1, -1, -1), v3(1, 1, 1))

	tests := []struct {
		name string
		b    Box
		want bool
	}{
		{"overlapping", NewRotatedBox(v3(1.5, 0, 0), v3(2, 2, 2), v3(0, 0, 0)), true},
		{"apart", NewRotatedBox(v3(3, 0, 0), v3(2, 2, 2), v3(0, 0, 0)), false},
		{"rotated corner in", NewRotatedBox(v3(2.3, 0, 0), v3(2, 2, 2), v3(0, 0, 45)), true},
		{"rotated corner out", NewRotatedBox(v3(2.5, 0, 0), v3(2, 2, 2), v3(0, 0, 45)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BoxIntersectsBox(a, tt.b); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestAABox(t *testing.T) {
	a := NewAABoxFromCenter(v3(0, 0, 0), v3(2, 2, 2))
	b := AABox{Min: v3(0.5, -1, -1), Max: v3(2.5, 1, 1)}

	if !a.Intersects(b) {
		t.Fatal("Expected boxes to intersect")
	}
	push := a.Resolve(b)
	if !vecNear(push, v3(-0.5, 0, 0)) {
		t.Errorf("Expected push (-0.5,0,0), got %v", push)
	}

	c := AABox{Min: v3(5, 5, 5), Max: v3(6, 6, 6)}
	if got := a.Resolve(c); got != rl.Vector3Zero() {
		t.Errorf("Expected zero push for disjoint boxes, got %v", got)
	}

	if got := NewAABoxFromBoundingBox(a.BoundingBox()); got != a {
		t.Errorf("Expected %v after bounding box round trip, got %v", a, got)
	}

	box := a.Box()
	if box.Volume() != 8 || !vecNear(box.Center, a.Center()) {
		t.Errorf("Expected a 2x2x2 box at %v, got volume %v center %v", a.Center(), box.Volume(), box.Center)
	}
}

func TestCapsuleGeometry(t *testing.T) {
	c := NewCapsule(v3(0, 0, 0), v3(0, 2, 0), 1)
	if got := c.ClosestPoint(v3(5, 1, 0)); !vecNear(got, v3(0, 1, 0)) {
		t.Errorf("Expected (0,1,0), got %v", got)
	}
	if c.Axis().Length() != 2 {
		t.Errorf("Expected axis length 2, got %v", c.Axis().Length())
	}
	if c.Degenerate() {
		t.Error("Capsule with distinct endpoints reported as degenerate")
	}

	d := NewCapsule(v3(1, 1, 1), v3(1, 1, 1), 1)
	if got := d.ClosestPoint(v3(5, 5, 5)); got != d.P1 {
		t.Errorf("Expected degenerate capsule to answer P1, got %v", got)
	}
}

func TestPlaneEquation(t *testing.T) {
	p := NewPlaneFromEquation(0, 2, 0, -4)
	if !vecNear(p.Normal, v3(0, 1, 0)) || !near(p.Distance, 2) {
		t.Errorf("Expected normal (0,1,0) distance 2, got %v %v", p.Normal, p.Distance)
	}
	n, d := p.Equation()
	if !near(d, -2) || n != p.Normal {
		t.Errorf("Expected equation d=-2, got %v", d)
	}
	if !p.HalfSpaceContains(v3(0, 3, 0)) || p.HalfSpaceContains(v3(0, 1, 0)) {
		t.Error("Half-space test disagrees with the normal")
	}
	if f := p.Flip(); f.SignedDistance(v3(0, 3, 0)) >= 0 {
		t.Error("Flipped plane should face down")
	}
}
