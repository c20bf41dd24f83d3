// Throughput of the sphere sweep solvers on random scenes
package main

import (
	"fmt"
	"math/rand"
	"time"

	"collide3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

type solver struct {
	name  string
	fixed func(r *rand.Rand, spawnSize float32) physics.Collider
}

var solvers = []solver{
	{"sphere", func(r *rand.Rand, spawnSize float32) physics.Collider {
		return physics.SphereCollider{Sphere: physics.NewSphere(randomPoint(r, spawnSize), 0.5+r.Float32())}
	}},
	{"box", func(r *rand.Rand, spawnSize float32) physics.Collider {
		size := rl.Vector3{X: 0.5 + r.Float32()*2, Y: 0.5 + r.Float32()*2, Z: 0.5 + r.Float32()*2}
		rotation := rl.Vector3{X: r.Float32() * 90, Y: r.Float32() * 90, Z: r.Float32() * 90}
		return physics.BoxCollider{Box: physics.NewRotatedBox(randomPoint(r, spawnSize), size, rotation)}
	}},
	{"capsule", func(r *rand.Rand, spawnSize float32) physics.Collider {
		p1 := randomPoint(r, spawnSize)
		p2 := rl.Vector3Add(p1, randomPoint(r, 4))
		return physics.CapsuleCollider{Capsule: physics.NewCapsule(p1, p2, 0.25+r.Float32()*0.5)}
	}},
	{"triangle", func(r *rand.Rand, spawnSize float32) physics.Collider {
		v0 := randomPoint(r, spawnSize)
		return physics.TriangleCollider{Triangle: physics.NewTriangle(
			v0,
			rl.Vector3Add(v0, randomPoint(r, 4)),
			rl.Vector3Add(v0, randomPoint(r, 4)),
		)}
	}},
}

func main() {
	// Test various object counts
	testCounts := []int{100, 1000, 10000, 100000}

	for _, s := range solvers {
		for _, count := range testCounts {
			benchSolver(s, count)
		}
		fmt.Println()
	}
}

func randomPoint(r *rand.Rand, size float32) rl.Vector3 {
	return rl.Vector3{
		X: r.Float32()*size - size/2,
		Y: r.Float32()*size - size/2,
		Z: r.Float32()*size - size/2,
	}
}

func benchSolver(s solver, count int) {
	r := rand.New(rand.NewSource(42)) // Consistent results

	// Spawn in a cube, size scales with count to keep density reasonable
	spawnSize := float32(20.0) + float32(count)/1000.0

	fixed := make([]physics.Collider, count)
	moving := make([]physics.Sphere, count)
	velocity := make([]rl.Vector3, count)
	for i := range fixed {
		fixed[i] = s.fixed(r, spawnSize)
		moving[i] = physics.NewSphere(randomPoint(r, spawnSize), 0.5+r.Float32()*0.5)
		velocity[i] = randomPoint(r, spawnSize)
	}

	// Warm up
	for i := range fixed {
		fixed[i].SweepSphere(moving[i], velocity[i])
	}

	const iterations = 10
	hits := 0
	start := time.Now()
	for iter := 0; iter < iterations; iter++ {
		hits = 0
		for i := range fixed {
			if c, ok := fixed[i].SweepSphere(moving[i], velocity[i]); ok && c.Time <= 1 {
				hits++
			}
		}
	}
	elapsed := time.Since(start)
	perCall := float64(elapsed.Nanoseconds()) / float64(iterations*count)

	fmt.Printf("%-8s %6d calls: %8.1f ns/call | %5.1f%% hit within one step\n",
		s.name, count, perCall, 100*float64(hits)/float64(count))
}
