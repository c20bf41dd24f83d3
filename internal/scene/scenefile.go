package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"collide3d/internal/physics"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// DefaultGravity applies when a scene file does not set one.
var DefaultGravity = rl.Vector3{X: 0, Y: -20.0, Z: 0}

// --- JSON types ---

type SceneFile struct {
	Gravity *[3]float32 `json:"gravity,omitempty"`
	Objects []ObjectDef `json:"objects"`
}

type ObjectDef struct {
	Name       string            `json:"name"`
	Position   [3]float32        `json:"position"`
	Rotation   [3]float32        `json:"rotation"`
	Components []json.RawMessage `json:"components"`
}

type componentHeader struct {
	Type string `json:"type"`
}

type planeColliderDef struct {
	Type   string     `json:"type"`
	Normal [3]float32 `json:"normal"`
}

type boxColliderDef struct {
	Type   string     `json:"type"`
	Size   [3]float32 `json:"size"`
	Offset [3]float32 `json:"offset,omitempty"`
}

type sphereColliderDef struct {
	Type   string  `json:"type"`
	Radius float32 `json:"radius"`
}

type capsuleColliderDef struct {
	Type   string     `json:"type"`
	P1     [3]float32 `json:"p1"`
	P2     [3]float32 `json:"p2"`
	Radius float32    `json:"radius"`
}

type triangleColliderDef struct {
	Type     string        `json:"type"`
	Vertices [3][3]float32 `json:"vertices"`
}

type rectangleColliderDef struct {
	Type     string        `json:"type"`
	Vertices [4][3]float32 `json:"vertices"`
}

type rigidbodyDef struct {
	Type       string     `json:"type"`
	Velocity   [3]float32 `json:"velocity"`
	UseGravity *bool      `json:"useGravity,omitempty"`
}

// ErrInvalidScene is wrapped by every validation error.
var ErrInvalidScene = errors.New("invalid scene")

// Body is a sphere moving through the fixed colliders of a scene.
type Body struct {
	Name       string
	Sphere     physics.Sphere
	Velocity   rl.Vector3
	UseGravity bool

	def int // index into the scene file's objects
}

// Scene is a loaded scene file: fixed colliders in World and moving
// spheres in Bodies.
type Scene struct {
	Gravity rl.Vector3
	World   *physics.StaticWorld
	Bodies  []*Body

	file SceneFile
}

func vec(v [3]float32) rl.Vector3 {
	return rl.Vector3{X: v[0], Y: v[1], Z: v[2]}
}

func array(v rl.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// --- Loading ---

func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return s, nil
}

// Parse builds a scene from a JSON document. An object carrying both a
// Rigidbody and a SphereCollider becomes a Body; every collider of any
// other object is added to the world.
func Parse(data []byte) (*Scene, error) {
	var sf SceneFile
	if err := json.Unmarshal(data, &sf); err != nil {
		return nil, fmt.Errorf("parse scene: %w", err)
	}

	s := &Scene{
		Gravity: DefaultGravity,
		World:   physics.NewStaticWorld(),
		file:    sf,
	}
	if sf.Gravity != nil {
		s.Gravity = vec(*sf.Gravity)
	}

	for i, objDef := range sf.Objects {
		if err := s.loadObject(i, objDef); err != nil {
			return nil, fmt.Errorf("object %d (%q): %w", i, objDef.Name, err)
		}
	}
	return s, nil
}

func (s *Scene) loadObject(index int, objDef ObjectDef) error {
	position := vec(objDef.Position)

	var colliders []physics.Collider
	var rb *rigidbodyDef
	var sphere *physics.Sphere

	for _, raw := range objDef.Components {
		var header componentHeader
		if err := json.Unmarshal(raw, &header); err != nil {
			return fmt.Errorf("component header: %w", err)
		}

		var c physics.Collider
		var err error
		switch header.Type {
		case "PlaneCollider":
			c, err = loadPlaneCollider(objDef.Name, position, raw)
		case "BoxCollider":
			c, err = loadBoxCollider(objDef.Name, position, vec(objDef.Rotation), raw)
		case "SphereCollider":
			var sc physics.SphereCollider
			sc, err = loadSphereCollider(objDef.Name, position, raw)
			sphere = &sc.Sphere
			c = sc
		case "CapsuleCollider":
			c, err = loadCapsuleCollider(objDef.Name, position, raw)
		case "TriangleCollider":
			c, err = loadTriangleCollider(objDef.Name, position, raw)
		case "RectangleCollider":
			c, err = loadRectangleCollider(objDef.Name, position, raw)
		case "Rigidbody":
			rb = &rigidbodyDef{}
			err = unmarshalDef(raw, rb)
		default:
			err = fmt.Errorf("%w: unknown component type %q", ErrInvalidScene, header.Type)
		}
		if err != nil {
			return err
		}
		if c != nil {
			colliders = append(colliders, c)
		}
	}

	if rb != nil {
		if sphere == nil || len(colliders) != 1 {
			return fmt.Errorf("%w: a Rigidbody needs exactly one SphereCollider", ErrInvalidScene)
		}
		body := &Body{
			Name:       objDef.Name,
			Sphere:     *sphere,
			Velocity:   vec(rb.Velocity),
			UseGravity: true,
			def:        index,
		}
		if rb.UseGravity != nil {
			body.UseGravity = *rb.UseGravity
		}
		s.Bodies = append(s.Bodies, body)
		return nil
	}

	for _, c := range colliders {
		s.World.Add(c)
	}
	return nil
}

func unmarshalDef(raw json.RawMessage, def any) error {
	if err := json.Unmarshal(raw, def); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidScene, err)
	}
	return nil
}

// loadPlaneCollider builds the plane through the object position.
func loadPlaneCollider(name string, position rl.Vector3, raw json.RawMessage) (physics.Collider, error) {
	var def planeColliderDef
	if err := unmarshalDef(raw, &def); err != nil {
		return nil, err
	}
	normal := vec(def.Normal)
	if rl.Vector3Length(normal) == 0 {
		return nil, fmt.Errorf("%w: plane normal is zero", ErrInvalidScene)
	}
	return physics.PlaneCollider{Label: name, Plane: physics.NewPlaneFromNormal(normal, position)}, nil
}

func loadBoxCollider(name string, position, rotation rl.Vector3, raw json.RawMessage) (physics.Collider, error) {
	var def boxColliderDef
	if err := unmarshalDef(raw, &def); err != nil {
		return nil, err
	}
	size := vec(def.Size)
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, fmt.Errorf("%w: box size %v must be positive", ErrInvalidScene, def.Size)
	}
	center := rl.Vector3Add(position, vec(def.Offset))
	return physics.BoxCollider{Label: name, Box: physics.NewRotatedBox(center, size, rotation)}, nil
}

func loadSphereCollider(name string, position rl.Vector3, raw json.RawMessage) (physics.SphereCollider, error) {
	var def sphereColliderDef
	if err := unmarshalDef(raw, &def); err != nil {
		return physics.SphereCollider{}, err
	}
	if def.Radius < 0 {
		return physics.SphereCollider{}, fmt.Errorf("%w: sphere radius %g is negative", ErrInvalidScene, def.Radius)
	}
	return physics.SphereCollider{Label: name, Sphere: physics.NewSphere(position, def.Radius)}, nil
}

// loadCapsuleCollider reads endpoints relative to the object position.
func loadCapsuleCollider(name string, position rl.Vector3, raw json.RawMessage) (physics.Collider, error) {
	var def capsuleColliderDef
	if err := unmarshalDef(raw, &def); err != nil {
		return nil, err
	}
	if def.Radius < 0 {
		return nil, fmt.Errorf("%w: capsule radius %g is negative", ErrInvalidScene, def.Radius)
	}
	return physics.CapsuleCollider{Label: name, Capsule: physics.NewCapsule(
		rl.Vector3Add(position, vec(def.P1)),
		rl.Vector3Add(position, vec(def.P2)),
		def.Radius,
	)}, nil
}

func loadTriangleCollider(name string, position rl.Vector3, raw json.RawMessage) (physics.Collider, error) {
	var def triangleColliderDef
	if err := unmarshalDef(raw, &def); err != nil {
		return nil, err
	}
	var v [3]rl.Vector3
	for i := range v {
		v[i] = rl.Vector3Add(position, vec(def.Vertices[i]))
	}
	tri := physics.NewTriangle(v[0], v[1], v[2])
	if !(tri.Area() > 0) {
		return nil, fmt.Errorf("%w: triangle is degenerate", ErrInvalidScene)
	}
	return physics.TriangleCollider{Label: name, Triangle: tri}, nil
}

func loadRectangleCollider(name string, position rl.Vector3, raw json.RawMessage) (physics.Collider, error) {
	var def rectangleColliderDef
	if err := unmarshalDef(raw, &def); err != nil {
		return nil, err
	}
	var v [4]rl.Vector3
	for i := range v {
		v[i] = rl.Vector3Add(position, vec(def.Vertices[i]))
	}
	if !(physics.NewTriangle(v[0], v[1], v[2]).Area() > 0) {
		return nil, fmt.Errorf("%w: rectangle is degenerate", ErrInvalidScene)
	}
	return physics.RectangleCollider{Label: name, V0: v[0], V1: v[1], V2: v[2], V3: v[3]}, nil
}

// --- Saving ---

// Save writes the scene back out with every body's current position and
// velocity.
func (s *Scene) Save(path string) error {
	sf := s.file
	sf.Objects = make([]ObjectDef, len(s.file.Objects))
	copy(sf.Objects, s.file.Objects)

	for _, b := range s.Bodies {
		objDef := sf.Objects[b.def]
		objDef.Position = array(b.Sphere.Center)

		components := make([]json.RawMessage, 0, len(objDef.Components))
		for _, raw := range objDef.Components {
			var header componentHeader
			if err := json.Unmarshal(raw, &header); err != nil {
				return fmt.Errorf("component header: %w", err)
			}
			if header.Type == "Rigidbody" {
				useGravity := b.UseGravity
				data, err := json.Marshal(rigidbodyDef{
					Type:       "Rigidbody",
					Velocity:   array(b.Velocity),
					UseGravity: &useGravity,
				})
				if err != nil {
					return fmt.Errorf("marshal rigidbody: %w", err)
				}
				raw = data
			}
			components = append(components, raw)
		}
		objDef.Components = components
		sf.Objects[b.def] = objDef
	}

	data, err := json.MarshalIndent(sf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal scene: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write scene: %w", err)
	}

	return nil
}
