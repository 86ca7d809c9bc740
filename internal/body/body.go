// Package body implements rigid objects and their per-frame transform:
// angle advance, Euler rotation, fused rotation and translation, and
// perspective projection.
package body

import (
	"fmt"
	stdmath "math"

	"github.com/Faultbox/vectorviewer/internal/geometry"
	"github.com/Faultbox/vectorviewer/pkg/math"
)

// Object is a rigid body. Nodes and surface topology are fixed at creation;
// position, angles and speed may change between frames.
type Object struct {
	Name     string
	Surfaces []geometry.Surface

	Position math.Vec3 // world-space anchor of object-local (0,0,0)
	Angles   math.Vec3 // degrees, each in [0,360)
	Speed    math.Vec3 // degrees added to Angles per frame

	nodes  geometry.VertexSet
	world  []math.Vec3
	screen []math.Vec2
}

// New creates an object. It fails if any surface references a node that
// does not exist, repeats a node or has fewer than three nodes.
func New(name string, nodes geometry.VertexSet, surfaces []geometry.Surface) (*Object, error) {
	if err := geometry.Validate(nodes, surfaces); err != nil {
		return nil, fmt.Errorf("object %q: %w", name, err)
	}

	s := make([]geometry.Surface, len(surfaces))
	copy(s, surfaces)

	o := &Object{
		Name:     name,
		Surfaces: s,
		nodes:    nodes,
	}
	// Until the first Rotate, world space is object space.
	o.world = make([]math.Vec3, nodes.Len())
	for i := range o.world {
		o.world[i] = nodes.At(i).XYZ()
	}
	return o, nil
}

// Nodes returns the object-space vertex set.
func (o *Object) Nodes() geometry.VertexSet {
	return o.nodes
}

// World returns the rotated and translated vertices from the last Rotate.
func (o *Object) World() []math.Vec3 {
	return o.world
}

// Screen returns the projected vertices from the last Project.
func (o *Object) Screen() []math.Vec2 {
	return o.screen
}

// IncreaseAngles adds Speed to Angles and wraps each angle into [0,360).
func (o *Object) IncreaseAngles() {
	o.Angles = math.Vec3{
		X: wrapDegrees(o.Angles.X + o.Speed.X),
		Y: wrapDegrees(o.Angles.Y + o.Speed.Y),
		Z: wrapDegrees(o.Angles.Z + o.Speed.Z),
	}
}

// RotationMatrix returns the X-then-Y-then-Z rotation for the current angles.
func (o *Object) RotationMatrix() math.Mat3 {
	return math.RotationXYZ(o.Angles)
}

// Transform returns the combined 4x3 rotation and translation transform.
func (o *Object) Transform() math.Affine {
	return math.NewAffine(o.RotationMatrix(), o.Position)
}

// Rotate recomputes world-space vertices from the current angles and position.
func (o *Object) Rotate() {
	o.world = o.Transform().ApplyAll(o.nodes.Nodes())
}

// Project recomputes screen-space vertices from world space. A vertex at
// Z <= 0 is divided through as is and yields infinite, NaN or mirrored
// coordinates.
func (o *Object) Project(zScale float64, mid math.Vec2) {
	o.screen = Project(o.world, zScale, mid)
}

// Step runs one frame of the transform: advance, rotate, project.
func (o *Object) Step(zScale float64, mid math.Vec2) {
	o.IncreaseAngles()
	o.Rotate()
	o.Project(zScale, mid)
}

// Project maps world-space points to the screen with a pinhole projection.
func Project(world []math.Vec3, zScale float64, mid math.Vec2) []math.Vec2 {
	out := make([]math.Vec2, len(world))
	for i, p := range world {
		out[i] = math.Vec2{
			X: p.X*zScale/p.Z + mid.X,
			Y: p.Y*zScale/p.Z + mid.Y,
		}
	}
	return out
}

func wrapDegrees(a float64) float64 {
	a = stdmath.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	if a >= 360 || a == 0 {
		// a tiny negative remainder rounds up to 360; also folds -0 into 0
		return 0
	}
	return a
}
