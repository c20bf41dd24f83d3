package physics

import (
	"testing"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestClosestPointOnLineSegment(t *testing.T) {
	v0, v1 := v3(0, 0, 0), v3(2, 0, 0)

	tests := []struct {
		point rl.Vector3
		want  rl.Vector3
	}{
		{v3(1, 1, 0), v3(1, 0, 0)},
		{v3(-1, 1, 0), v3(0, 0, 0)},
		{v3(5, 0, 0), v3(2, 0, 0)},
		{v3(0.5, -3, 4), v3(0.5, 0, 0)},
	}

	for _, tt := range tests {
		if got := ClosestPointOnLineSegment(v0, v1, tt.point); !vecNear(got, tt.want) {
			t.Errorf("ClosestPointOnLineSegment(%v): expected %v, got %v", tt.point, tt.want, got)
		}
	}
}

func TestClosestPointOnDegenerateSegment(t *testing.T) {
	p := v3(1, 2, 3)
	got := ClosestPointOnLineSegment(p, p, v3(0, 0, 0))
	if !math32.IsNaN(got.X) || !math32.IsNaN(got.Y) || !math32.IsNaN(got.Z) {
		t.Errorf("Expected NaN for a zero-length segment, got %v", got)
	}

	seg := LineSegment{P0: p, P1: p}
	if seg.Length() != 0 {
		t.Errorf("Expected length 0, got %v", seg.Length())
	}
	if got := seg.ClosestPoint(v3(0, 0, 0)); !math32.IsNaN(got.X) {
		t.Errorf("Expected NaN, got %v", got)
	}
}

func TestClosestPointToTrianglePerimeter(t *testing.T) {
	v0, v1, v2 := v3(0, 0, 0), v3(2, 0, 0), v3(0, 2, 0)

	// Nearest the hypotenuse
	got := ClosestPointToTrianglePerimeter(v0, v1, v2, v3(2, 2, 0))
	if !vecNear(got, v3(1, 1, 0)) {
		t.Errorf("Expected (1,1,0), got %v", got)
	}

	// Inside points still land on an edge
	got = ClosestPointToTrianglePerimeter(v0, v1, v2, v3(0.2, 0.5, 0))
	if !vecNear(got, v3(0, 0.5, 0)) {
		t.Errorf("Expected (0,0.5,0), got %v", got)
	}

	got = ClosestPointToTrianglePerimeter(v0, v1, v2, v3(-1, -1, 3))
	if !vecNear(got, v0) {
		t.Errorf("Expected %v, got %v", v0, got)
	}
}

func TestTriangleCachedPerimeter(t *testing.T) {
	tri := NewTriangle(v3(0, 0, 0), v3(2, 0, 0), v3(0, 2, 0))

	want := [3]float32{2, 2 * math32.Sqrt(2), 2}
	for i, w := range want {
		if got := tri.EdgeLength(i); !near(got, w) {
			t.Errorf("Edge %d: expected length %v, got %v", i, w, got)
		}
	}

	for _, p := range []rl.Vector3{v3(2, 2, 0), v3(0.2, 0.5, 0), v3(-1, -1, 3), v3(1, -3, -1)} {
		want := ClosestPointToTrianglePerimeter(tri.Vertex(0), tri.Vertex(1), tri.Vertex(2), p)
		if got := tri.closestPointToPerimeter(p); !vecNear(got, want) {
			t.Errorf("Point %v: expected %v, got %v", p, want, got)
		}
	}
}

func TestClosestPointToRectangle(t *testing.T) {
	v0, v1, vv2, vv3 := v3(0, 0, 0), v3(1, 0, 0), v3(1, 1, 0), v3(0, 1, 0)

	if got := ClosestPointToRectangle(v0, v1, vv2, vv3, v3(0.5, 0.25, 3)); !vecNear(got, v3(0.5, 0.25, 0)) {
		t.Errorf("Expected (0.5,0.25,0), got %v", got)
	}
	if got := ClosestPointToRectangle(v0, v1, vv2, vv3, v3(2, 0.5, 3)); !vecNear(got, v3(1, 0.5, 0)) {
		t.Errorf("Expected (1,0.5,0), got %v", got)
	}
	if got := ClosestPointToRectanglePerimeter(v0, v1, vv2, vv3, v3(0.5, 0.9, 0)); !vecNear(got, v3(0.5, 1, 0)) {
		t.Errorf("Expected (0.5,1,0), got %v", got)
	}
}

func TestIsPointInsideTriangle(t *testing.T) {
	v0, v1, v2 := v3(0, 0, 0), v3(2, 0, 0), v3(0, 2, 0)
	normal := NewPlaneFromPoints(v0, v1, v2).Normal

	tests := []struct {
		point rl.Vector3
		want  bool
	}{
		{v3(0.5, 0.5, 0), true},
		{v3(1, 1, 0), true}, // on the hypotenuse
		{v0, true},
		{v3(1.5, 1.5, 0), false},
		{v3(-0.1, 0.5, 0), false},
	}

	for _, tt := range tests {
		if got := IsPointInsideTriangle(v0, v1, v2, normal, tt.point, AxisDetect); got != tt.want {
			t.Errorf("IsPointInsideTriangle(%v): expected %v, got %v", tt.point, tt.want, got)
		}
	}
}

func TestIsPointInsideTriangleWinding(t *testing.T) {
	v0, v1, v2 := v3(1, 0, 0), v3(0, 1, 0), v3(0, 0, 1)
	ccw := NewPlaneFromPoints(v0, v1, v2).Normal
	cw := NewPlaneFromPoints(v0, v2, v1).Normal

	points := []rl.Vector3{
		v3(1.0/3, 1.0/3, 1.0/3),
		v3(0.5, 0.5, 0),
		v3(0.8, 0.1, 0.1),
		v3(1, 1, -1),
		v3(-0.2, 0.6, 0.6),
	}

	for _, p := range points {
		a := IsPointInsideTriangle(v0, v1, v2, ccw, p, AxisDetect)
		b := IsPointInsideTriangle(v0, v2, v1, cw, p, AxisDetect)
		if a != b {
			t.Errorf("Winding changed the result for %v: %v vs %v", p, a, b)
		}
	}
}

func TestIsPointInsideDegenerateTriangle(t *testing.T) {
	v0, v1, v2 := v3(0, 0, 0), v3(1, 0, 0), v3(2, 0, 0)
	n := v3(0, 0, 1)
	if !IsPointInsideTriangle(v0, v1, v2, n, v0, AxisZ) {
		t.Error("Expected v0 to be inside a zero-area triangle")
	}
	if IsPointInsideTriangle(v0, v1, v2, n, v1, AxisZ) {
		t.Error("Expected only v0 to be inside a zero-area triangle")
	}
}

func TestIsPointInsideRectangle(t *testing.T) {
	v0, v1, vv2, vv3 := v3(0, 0, 0), v3(0, 0, -2), v3(-1, 0, -2), v3(-1, 0, 0)
	normal := NewPlaneFromPoints(v0, v1, vv2).Normal

	if !IsPointInsideRectangle(v0, v1, vv2, vv3, normal, v3(-0.5, 0, -1)) {
		t.Error("Expected center to be inside")
	}
	if !IsPointInsideRectangle(v0, v1, vv2, vv3, normal, v3(-0.9, 0, -0.1)) {
		t.Error("Expected point near v3 to be inside")
	}
	if IsPointInsideRectangle(v0, v1, vv2, vv3, normal, v3(0.5, 0, -1)) {
		t.Error("Expected point beyond the v0-v1 edge to be outside")
	}
}

func TestNormalToPrimaryAxis(t *testing.T) {
	tests := []struct {
		n    rl.Vector3
		want Axis
	}{
		{v3(1, 0, 0), AxisX},
		{v3(0, -1, 0), AxisY},
		{v3(0.1, 0.2, -0.9), AxisZ},
		{v3(1, 1, 0), AxisY},
		{v3(0, 1, 1), AxisZ},
		{v3(1, 0, 1), AxisZ},
	}

	for _, tt := range tests {
		if got := NormalToPrimaryAxis(tt.n); got != tt.want {
			t.Errorf("NormalToPrimaryAxis(%v): expected %v, got %v", tt.n, tt.want, got)
		}
	}
}
