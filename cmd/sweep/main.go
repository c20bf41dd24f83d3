// Sweeps the moving spheres of a scene file through its fixed colliders
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"collide3d/internal/physics"
	"collide3d/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func main() {
	scenePath := flag.String("scene", "assets/scenes/demo.json", "scene file to load")
	steps := flag.Int("steps", 120, "number of time steps")
	dt := flag.Float64("dt", 1.0/60.0, "time step in seconds")
	modeName := flag.String("mode", "bounce", "collision response: bounce or slide")
	maxContacts := flag.Int("max-contacts", 4, "contacts resolved per body per step")
	out := flag.String("out", "", "write the final scene to this file")
	flag.Parse()

	mode, err := physics.ParseResponseMode(*modeName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Usage: sweep -scene <file> [-mode bounce|slide]: %v\n", err)
		os.Exit(2)
	}

	s, err := scene.Load(*scenePath)
	if err != nil {
		log.Fatalf("Sweep: %v", err)
	}
	log.Printf("Sweep: %d colliders, %d bodies, gravity %v, %s", s.World.Len(), len(s.Bodies), s.Gravity, mode)

	step := float32(*dt)
	for i := 0; i < *steps; i++ {
		for _, b := range s.Bodies {
			if b.UseGravity {
				b.Velocity = rl.Vector3Add(b.Velocity, rl.Vector3Scale(s.Gravity, step))
			}

			r := s.World.Move(b.Sphere, b.Velocity, step, mode, *maxContacts)
			for _, c := range r.Contacts {
				log.Printf("Step %d: %s hit %s at t=%.4f location=%v normal=%v",
					i, b.Name, c.Collider.Name(), float32(i)*step+c.Time, c.Contact.Location, c.Contact.Normal)
			}
			b.Sphere, b.Velocity = r.Sphere, r.Velocity

			for _, o := range s.World.Overlaps(b.Sphere) {
				if o.Depth > 0.01 {
					log.Printf("Step %d: %s sinks %.4f into %s", i, b.Name, o.Depth, o.Collider.Name())
				}
			}
		}
	}

	for _, b := range s.Bodies {
		fmt.Printf("%-16s center=%v velocity=%v\n", b.Name, b.Sphere.Center, b.Velocity)
	}

	if *out != "" {
		if err := s.Save(*out); err != nil {
			log.Fatalf("Sweep: %v", err)
		}
		log.Printf("Sweep: wrote %s", *out)
	}
}
