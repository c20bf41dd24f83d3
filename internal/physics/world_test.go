package physics

import (
	"sync"
	"testing"

	"github.com/chewxy/math32"
)

func testWorld() *StaticWorld {
	w := NewStaticWorld()
	w.Add(PlaneCollider{Label: "Floor", Plane: groundPlane})
	w.Add(BoxCollider{Label: "Wall", Box: NewBox(v3(5, -1, -1), v3(6, 3, 1))})
	w.Add(CapsuleCollider{Label: "Pillar", Capsule: NewCapsule(v3(-5, 0, 0), v3(-5, 3, 0), 0.5)})
	return w
}

func TestStaticWorldAdd(t *testing.T) {
	w := testWorld()
	if w.Len() != 3 {
		t.Errorf("Expected 3 colliders, got %d", w.Len())
	}
}

func TestStaticWorldSweepSphere(t *testing.T) {
	w := testWorld()

	c, hit, ok := w.SweepSphere(NewSphere(v3(0, 1, 0), 0.5), v3(10, 0, 0))
	if !ok {
		t.Fatal("Expected a contact")
	}
	if hit.Name() != "Wall" {
		t.Errorf("Expected to hit Wall, got %s", hit.Name())
	}
	expectContact(t, c, ok, 0.45, v3(5, 1, 0), v3(-1, 0, 0))

	c, hit, ok = w.SweepSphere(NewSphere(v3(0, 1, 0), 0.5), v3(-1, 0, 0))
	if !ok || hit.Name() != "Pillar" {
		t.Fatalf("Expected to hit Pillar, got %v", hit)
	}
	expectContact(t, c, ok, 4, v3(-4.5, 1, 0), v3(1, 0, 0))

	_, hit, ok = w.SweepSphere(NewSphere(v3(0, 1, 0), 0.5), v3(0, 0, 1))
	if ok || hit != nil {
		t.Errorf("Expected no contact, got %v", hit)
	}
}

func TestStaticWorldSweepPoint(t *testing.T) {
	w := testWorld()
	c, hit, ok := w.SweepPoint(v3(0, 2, 0), v3(0, -1, 0))
	if !ok || hit.Name() != "Floor" {
		t.Fatalf("Expected to hit Floor, got %v", hit)
	}
	expectContact(t, c, ok, 2, v3(0, 0, 0), v3(0, 1, 0))
}

func TestStaticWorldMoveBounce(t *testing.T) {
	w := testWorld()
	r := w.Move(NewSphere(v3(0, 1, 0), 0.5), v3(10, 0, 0), 1, Bounce, 4)

	if len(r.Contacts) != 1 {
		t.Fatalf("Expected 1 contact, got %d", len(r.Contacts))
	}
	if r.Contacts[0].Collider.Name() != "Wall" || !near(r.Contacts[0].Time, 0.45) {
		t.Errorf("Expected Wall at t=0.45, got %s at t=%v", r.Contacts[0].Collider.Name(), r.Contacts[0].Time)
	}
	if !vecNear(r.Velocity, v3(-10, 0, 0)) {
		t.Errorf("Expected velocity (-10,0,0), got %v", r.Velocity)
	}
	if !vecNear(r.Sphere.Center, v3(-1, 1, 0)) {
		t.Errorf("Expected center (-1,1,0), got %v", r.Sphere.Center)
	}
}

func TestStaticWorldMoveSlide(t *testing.T) {
	w := testWorld()
	r := w.Move(NewSphere(v3(0, 1, 0), 0.5), v3(10, -10, 0), 1, Slide, 4)

	if len(r.Contacts) != 2 {
		t.Fatalf("Expected 2 contacts, got %d", len(r.Contacts))
	}
	if r.Contacts[0].Collider.Name() != "Floor" || !near(r.Contacts[0].Time, 0.05) {
		t.Errorf("Expected Floor at t=0.05, got %s at t=%v", r.Contacts[0].Collider.Name(), r.Contacts[0].Time)
	}
	// Sliding keeps the full speed of 10√2 along the floor
	wallTime := 0.05 + 4/(10*math32.Sqrt(2))
	if r.Contacts[1].Collider.Name() != "Wall" || !near(r.Contacts[1].Time, wallTime) {
		t.Errorf("Expected Wall at t=%v, got %s at t=%v", wallTime, r.Contacts[1].Collider.Name(), r.Contacts[1].Time)
	}
	if !vecNear(r.Sphere.Center, v3(4.5, 0.5, 0)) {
		t.Errorf("Expected center (4.5,0.5,0), got %v", r.Sphere.Center)
	}
	if !vecNear(r.Velocity, v3(0, 0, 0)) {
		t.Errorf("Expected the wall to stop the sphere, got velocity %v", r.Velocity)
	}
}

func TestStaticWorldMoveFree(t *testing.T) {
	w := testWorld()
	r := w.Move(NewSphere(v3(0, 2, 0), 0.5), v3(0, 0, 3), 0.5, Bounce, 4)
	if len(r.Contacts) != 0 {
		t.Errorf("Expected no contacts, got %d", len(r.Contacts))
	}
	if !vecNear(r.Sphere.Center, v3(0, 2, 1.5)) {
		t.Errorf("Expected center (0,2,1.5), got %v", r.Sphere.Center)
	}
}

func TestStaticWorldMoveSlideKeepsSpeed(t *testing.T) {
	w := NewStaticWorld()
	w.Add(PlaneCollider{Label: "Floor", Plane: groundPlane})

	r := w.Move(NewSphere(v3(0, 2, 0), 1), v3(3, -4, 0), 1, Slide, 4)
	if len(r.Contacts) != 1 || !near(r.Contacts[0].Time, 0.25) {
		t.Fatalf("Expected one contact at t=0.25, got %+v", r.Contacts)
	}
	if !vecNear(r.Velocity, v3(5, 0, 0)) {
		t.Errorf("Expected velocity (5,0,0), got %v", r.Velocity)
	}
	if !vecNear(r.Sphere.Center, v3(4.5, 1, 0)) {
		t.Errorf("Expected center (4.5,1,0), got %v", r.Sphere.Center)
	}
}

func TestStaticWorldMoveMaxContacts(t *testing.T) {
	w := testWorld()
	r := w.Move(NewSphere(v3(0, 1, 0), 0.5), v3(10, 0, 0), 1, Bounce, 0)
	if len(r.Contacts) != 0 {
		t.Errorf("Expected no contacts, got %d", len(r.Contacts))
	}
	if !vecNear(r.Sphere.Center, v3(4.5, 1, 0)) {
		t.Errorf("Expected the sphere to stop against the wall, got %v", r.Sphere.Center)
	}
	if r.Velocity != v3(10, 0, 0) {
		t.Errorf("Expected velocity unchanged, got %v", r.Velocity)
	}

	// Nothing in the way: the limit does not hold the sphere back
	r = w.Move(NewSphere(v3(0, 2, 0), 0.5), v3(0, 0, 3), 0.5, Bounce, 0)
	if !vecNear(r.Sphere.Center, v3(0, 2, 1.5)) {
		t.Errorf("Expected center (0,2,1.5), got %v", r.Sphere.Center)
	}
}

func TestStaticWorldOverlaps(t *testing.T) {
	w := testWorld()
	overlaps := w.Overlaps(NewSphere(v3(0, 0.25, 0), 0.5))
	if len(overlaps) != 1 {
		t.Fatalf("Expected 1 overlap, got %d", len(overlaps))
	}
	if overlaps[0].Collider.Name() != "Floor" || !near(overlaps[0].Depth, 0.25) {
		t.Errorf("Expected Floor at depth 0.25, got %s at %v", overlaps[0].Collider.Name(), overlaps[0].Depth)
	}

	// The pillar has no penetration solver
	if got := w.Overlaps(NewSphere(v3(-5, 1, 0), 0.5)); len(got) != 0 {
		t.Errorf("Expected no overlaps, got %d", len(got))
	}
}

func TestStaticWorldRaycast(t *testing.T) {
	w := testWorld()

	hit, ok := w.Raycast(Ray{Origin: v3(0, 1, 0), Direction: v3(2, 0, 0)}, 100)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if hit.Collider.Name() != "Wall" || !near(hit.Distance, 5) {
		t.Errorf("Expected Wall at distance 5, got %s at %v", hit.Collider.Name(), hit.Distance)
	}
	if !vecNear(hit.Normal, v3(-1, 0, 0)) {
		t.Errorf("Expected normal (-1,0,0), got %v", hit.Normal)
	}

	if _, ok := w.Raycast(Ray{Origin: v3(0, 1, 0), Direction: v3(1, 0, 0)}, 3); ok {
		t.Error("Expected the wall to be out of range")
	}
	if _, ok := w.Raycast(Ray{Origin: v3(0, 1, 0)}, 100); ok {
		t.Error("Expected no hit for a zero direction")
	}
}

func TestRaycastAABox(t *testing.T) {
	box := AABox{Min: v3(0, 0, 0), Max: v3(1, 1, 1)}

	ray := RayFromTwoPoints(v3(-1, 0.5, 0.5), v3(1, 0.5, 0.5))
	if r := ray.RL(); r.Position != ray.Origin || !vecNear(r.Direction, v3(1, 0, 0)) {
		t.Errorf("Expected raylib ray from (-1,0.5,0.5) along +X, got %+v", r)
	}

	hit, ok := RaycastAABox(ray, box, 10)
	if !ok {
		t.Fatal("Expected a hit")
	}
	if !near(hit.Distance, 1) || !vecNear(hit.Point, v3(0, 0.5, 0.5)) || !vecNear(hit.Normal, v3(-1, 0, 0)) {
		t.Errorf("Expected hit at (0,0.5,0.5) distance 1, got %+v", hit)
	}

	if _, ok := RaycastAABox(Ray{Origin: v3(-1, 2, 0.5), Direction: v3(1, 0, 0)}, box, 10); ok {
		t.Error("Expected a miss above the box")
	}
}

func TestStaticWorldConcurrentSweeps(t *testing.T) {
	w := testWorld()
	var wg sync.WaitGroup
	errs := make(chan string, 8)

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				c, _, ok := w.SweepSphere(NewSphere(v3(0, 1, 0), 0.5), v3(10, 0, 0))
				if !ok || !near(c.Time, 0.45) {
					errs <- "unexpected sweep result"
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}
