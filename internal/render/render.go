// Package render draws transformed objects back to front (painter's
// algorithm). There is no depth buffer: a surface drawn later overwrites
// whatever it overlaps.
package render

import (
	"cmp"
	"fmt"
	"image/color"
	"slices"

	"go.uber.org/zap"

	"github.com/Faultbox/vectorviewer/internal/body"
	"github.com/Faultbox/vectorviewer/internal/geometry"
	"github.com/Faultbox/vectorviewer/internal/logger"
	"github.com/Faultbox/vectorviewer/pkg/math"
)

// Surface is the drawing target for one frame. Draw calls are only valid
// between Acquire and Release.
type Surface interface {
	Acquire() error
	Release() error
	Clear(c color.RGBA)
	// DrawPolyline draws an anti-aliased closed outline through points.
	DrawPolyline(points []math.Vec2, c color.RGBA) error
	// DrawPolygon fills the polygon when width is 0, else strokes it.
	DrawPolygon(points []math.Vec2, c color.RGBA, width int) error
}

// Stats summarizes one rendered frame.
type Stats struct {
	Objects  int
	Surfaces int
	Skipped  int // surfaces with a non-finite projected point
}

// UpdateDepth sets each surface's depth to the mean world-space Z of its nodes.
func UpdateDepth(o *body.Object) {
	world := o.World()
	for i := range o.Surfaces {
		s := &o.Surfaces[i]
		var sum float64
		for _, n := range s.Nodes {
			sum += world[n].Z
		}
		s.Depth = sum / float64(len(s.Nodes))
	}
}

// SortByDepth orders surfaces most distant first. Equal depths keep their
// previous relative order.
func SortByDepth(o *body.Object) {
	slices.SortStableFunc(o.Surfaces, func(a, b geometry.Surface) int {
		return cmp.Compare(b.Depth, a.Depth)
	})
}

// Render clears s to background and draws every object. Objects are drawn
// in the given order; surfaces are ordered within each object.
func Render(s Surface, background color.RGBA, objects []*body.Object) (stats Stats, err error) {
	if err := s.Acquire(); err != nil {
		return stats, fmt.Errorf("acquiring surface: %w", err)
	}
	defer func() {
		if rerr := s.Release(); rerr != nil && err == nil {
			err = fmt.Errorf("releasing surface: %w", rerr)
		}
	}()

	s.Clear(background)

	for _, o := range objects {
		UpdateDepth(o)
		SortByDepth(o)
		n, skipped, err := drawObject(s, o)
		stats.Surfaces += n
		stats.Skipped += skipped
		if err != nil {
			return stats, fmt.Errorf("object %q: %w", o.Name, err)
		}
		stats.Objects++
	}
	return stats, nil
}

func drawObject(s Surface, o *body.Object) (drawn, skipped int, err error) {
	screen := o.Screen()
	for _, surf := range o.Surfaces {
		points, ok := SurfacePoints(surf.Nodes, screen)
		if !ok {
			skipped++
			logger.Debug("skipping surface with non-finite projection",
				zap.String("object", o.Name),
				zap.Int("surface", surf.ID),
				zap.Float64("depth", surf.Depth),
			)
			continue
		}
		if err := s.DrawPolyline(points, surf.Color); err != nil {
			return drawn, skipped, fmt.Errorf("surface %d outline: %w", surf.ID, err)
		}
		if err := s.DrawPolygon(points, surf.Color, surf.EdgeWidth); err != nil {
			return drawn, skipped, fmt.Errorf("surface %d polygon: %w", surf.ID, err)
		}
		drawn++
	}
	return drawn, skipped, nil
}

// SurfacePoints gathers the screen points of nodes in order. ok is false if
// any point is not finite.
func SurfacePoints(nodes []int, screen []math.Vec2) (points []math.Vec2, ok bool) {
	points = make([]math.Vec2, len(nodes))
	for i, n := range nodes {
		p := screen[n]
		if !p.IsFinite() {
			return nil, false
		}
		points[i] = p
	}
	return points, true
}
