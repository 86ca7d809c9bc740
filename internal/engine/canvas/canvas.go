// Package canvas implements the viewer's drawing surface on top of the gg
// software rasterizer.
package canvas

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gg"

	"github.com/Faultbox/vectorviewer/pkg/math"
)

var (
	// ErrNotAcquired is returned by draw calls made outside Acquire/Release.
	ErrNotAcquired = errors.New("canvas not acquired")
	// ErrAlreadyAcquired is returned when Acquire is called twice.
	ErrAlreadyAcquired = errors.New("canvas already acquired")
)

// Canvas is an RGBA frame buffer with exclusive access during a draw pass.
type Canvas struct {
	width    int
	height   int
	pixmap   *gg.Pixmap
	dc       *gg.Context
	acquired bool
}

// New creates a canvas of the given size.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	pm := gg.NewPixmap(width, height)
	return &Canvas{
		width:  width,
		height: height,
		pixmap: pm,
		dc:     gg.NewContext(width, height, gg.WithPixmap(pm)),
	}, nil
}

// Close releases the drawing context.
func (c *Canvas) Close() error {
	return c.dc.Close()
}

// Size returns the canvas dimensions.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Acquire grants exclusive pixel access until Release.
func (c *Canvas) Acquire() error {
	if c.acquired {
		return ErrAlreadyAcquired
	}
	c.acquired = true
	return nil
}

// Release ends the draw pass.
func (c *Canvas) Release() error {
	if !c.acquired {
		return ErrNotAcquired
	}
	c.acquired = false
	return nil
}

// Clear fills the whole canvas.
func (c *Canvas) Clear(col color.RGBA) {
	c.dc.ClearWithColor(gg.FromColor(col))
}

// DrawPolyline strokes a one pixel, anti-aliased closed outline.
func (c *Canvas) DrawPolyline(points []math.Vec2, col color.RGBA) error {
	if !c.acquired {
		return ErrNotAcquired
	}
	if len(points) < 2 {
		return nil
	}
	c.path(points)
	c.dc.SetColor(col)
	c.dc.SetLineWidth(1)
	return c.dc.Stroke()
}

// DrawPolygon fills the polygon when width is 0 and strokes its outline
// with the given width otherwise.
func (c *Canvas) DrawPolygon(points []math.Vec2, col color.RGBA, width int) error {
	if !c.acquired {
		return ErrNotAcquired
	}
	if len(points) < 3 {
		return nil
	}
	c.path(points)
	c.dc.SetColor(col)
	if width <= 0 {
		return c.dc.Fill()
	}
	c.dc.SetLineWidth(float64(width))
	return c.dc.Stroke()
}

// Frame returns the current pixels. The image shares the canvas memory and
// is overwritten by the next draw pass.
func (c *Canvas) Frame() *image.RGBA {
	return &image.RGBA{
		Pix:    c.pixmap.Data(),
		Stride: c.width * 4,
		Rect:   image.Rect(0, 0, c.width, c.height),
	}
}

func (c *Canvas) path(points []math.Vec2) {
	c.dc.ClearPath()
	c.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
}
