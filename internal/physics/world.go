package physics

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// StaticWorld is a flat list of fixed colliders. Queries scan every
// collider; there is no broad phase. Queries may run concurrently once all
// colliders are added.
type StaticWorld struct {
	Colliders []Collider
}

func NewStaticWorld() *StaticWorld {
	return &StaticWorld{
		Colliders: make([]Collider, 0),
	}
}

func (w *StaticWorld) Add(c Collider) {
	w.Colliders = append(w.Colliders, c)
}

func (w *StaticWorld) Len() int {
	return len(w.Colliders)
}

// SweepSphere returns the earliest contact of the moving sphere over all
// colliders, together with the collider it hits.
func (w *StaticWorld) SweepSphere(s Sphere, velocity rl.Vector3) (Contact, Collider, bool) {
	return w.sweep(func(c Collider) (Contact, bool) {
		return c.SweepSphere(s, velocity)
	})
}

// SweepPoint is SweepSphere for a moving point.
func (w *StaticWorld) SweepPoint(point, velocity rl.Vector3) (Contact, Collider, bool) {
	return w.sweep(func(c Collider) (Contact, bool) {
		return c.SweepPoint(point, velocity)
	})
}

func (w *StaticWorld) sweep(test func(Collider) (Contact, bool)) (Contact, Collider, bool) {
	best := NoContact
	var hit Collider
	for _, c := range w.Colliders {
		if contact, ok := test(c); ok && contact.Time < best.Time {
			best = contact
			hit = c
		}
	}
	return best, hit, hit != nil
}

// Overlap is the penetration of a sphere into one collider.
type Overlap struct {
	Collider Collider
	Depth    float32
	Contacts []ContactPoint
}

// Overlaps lists every Penetrator the sphere currently sinks into.
// Colliders without a penetration solver are skipped.
func (w *StaticWorld) Overlaps(s Sphere) []Overlap {
	var overlaps []Overlap
	for _, c := range w.Colliders {
		p, ok := c.(Penetrator)
		if !ok {
			continue
		}
		if depth, contacts := p.PenetrateSphere(s); depth >= 0 && len(contacts) > 0 {
			overlaps = append(overlaps, Overlap{Collider: c, Depth: depth, Contacts: contacts})
		}
	}
	return overlaps
}

// ResponseMode selects how Move redirects a sphere after a contact.
type ResponseMode int

const (
	Bounce ResponseMode = iota
	Slide
)

func (m ResponseMode) String() string {
	switch m {
	case Bounce:
		return "bounce"
	case Slide:
		return "slide"
	}
	return fmt.Sprintf("ResponseMode(%d)", int(m))
}

// ParseResponseMode accepts the names printed by ResponseMode.String.
func ParseResponseMode(s string) (ResponseMode, error) {
	switch s {
	case "bounce":
		return Bounce, nil
	case "slide":
		return Slide, nil
	}
	return 0, fmt.Errorf("unknown response mode %q", s)
}

// StepContact records one contact met during Move. Time is measured from
// the start of the step.
type StepContact struct {
	Collider Collider
	Time     float32
	Contact  Contact
}

type MoveResult struct {
	Sphere   Sphere
	Velocity rl.Vector3
	Contacts []StepContact
}

// Move advances a sphere for dt seconds through the world. At each contact
// the sphere stops, its velocity is redirected by the response mode with
// its speed kept, and the rest of the step continues. A head-on slide
// leaves no direction to follow and stops the sphere. Once maxContacts
// contacts are resolved the sphere moves on until the next contact and
// stays there. Contacts with a surface the sphere is already leaving are
// ignored, so a sphere resting on a plane can lift off.
func (w *StaticWorld) Move(s Sphere, velocity rl.Vector3, dt float32, mode ResponseMode, maxContacts int) MoveResult {
	result := MoveResult{Sphere: s, Velocity: velocity}
	elapsed := float32(0)

	for {
		remaining := dt - elapsed
		sphere, v := result.Sphere, result.Velocity

		contact, collider, ok := w.sweep(func(c Collider) (Contact, bool) {
			contact, ok := c.SweepSphere(sphere, v)
			if ok && !fuzzyLt(dot(rl.Vector3Normalize(v), contact.Normal), 0) {
				return NoContact, false
			}
			return contact, ok
		})
		if !ok || contact.Time >= remaining {
			result.Sphere.Center = rl.Vector3Add(sphere.Center, rl.Vector3Scale(v, remaining))
			return result
		}

		result.Sphere.Center = rl.Vector3Add(sphere.Center, rl.Vector3Scale(v, contact.Time))
		if len(result.Contacts) >= maxContacts {
			return result
		}

		speed := rl.Vector3Length(v)
		var dir rl.Vector3
		switch mode {
		case Bounce:
			dir = BounceDirection(sphere, v, contact.Time, contact.Location, contact.Normal)
		case Slide:
			if slide := SlideDirection(sphere, v, contact.Time, contact.Location); !fuzzyEq(rl.Vector3Length(slide), 0) {
				dir = rl.Vector3Normalize(slide)
			}
		default:
			panic(fmt.Sprintf("physics: unknown response mode %d", int(mode)))
		}

		elapsed += contact.Time
		result.Velocity = rl.Vector3Scale(dir, speed)
		result.Contacts = append(result.Contacts, StepContact{
			Collider: collider,
			Time:     elapsed,
			Contact:  contact,
		})
	}
}
