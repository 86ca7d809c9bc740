package viewer

import (
	"image/color"

	"github.com/Faultbox/vectorviewer/internal/body"
	"github.com/Faultbox/vectorviewer/pkg/math"
)

// Scene is the set of objects drawn each frame plus global render settings.
type Scene struct {
	Background color.RGBA
	ZScale     float64   // projection scale in pixels
	MidScreen  math.Vec2 // screen-space position of the optical axis

	// LightPosition is carried with the scene but no shading uses it yet.
	LightPosition math.Vec3

	Objects []*body.Object
}

// Add appends an object to the scene.
func (s *Scene) Add(o *body.Object) {
	s.Objects = append(s.Objects, o)
}

// Step advances and transforms every object by one frame.
func (s *Scene) Step() {
	for _, o := range s.Objects {
		o.Step(s.ZScale, s.MidScreen)
	}
}
