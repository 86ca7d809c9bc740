// Package renderer presents CPU-rasterized frames through OpenGL.
package renderer

import (
	"errors"
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/vectorviewer/internal/logger"
)

// ErrFrameSize is returned when a frame does not match the texture size.
var ErrFrameSize = errors.New("frame size does not match presenter")

// Swapper shows the default framebuffer, normally a window.
type Swapper interface {
	SwapBuffers()
	DrawableSize() (int, int)
}

// Config holds presenter configuration.
type Config struct {
	Width  int // frame width in pixels
	Height int // frame height in pixels
}

// Presenter uploads each frame into a texture and blits it onto the window.
type Presenter struct {
	config  Config
	target  Swapper
	texture uint32
	readFBO uint32
}

// New creates a presenter.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config, target Swapper) (*Presenter, error) {
	p := &Presenter{
		config: cfg,
		target: target,
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.GenTextures(1, &p.texture)
	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(cfg.Width), int32(cfg.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	gl.GenFramebuffers(1, &p.readFBO)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, p.readFBO)
	gl.FramebufferTexture2D(gl.READ_FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, p.texture, 0)

	status := gl.CheckFramebufferStatus(gl.READ_FRAMEBUFFER)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		p.Close()
		return nil, fmt.Errorf("framebuffer incomplete: 0x%x", status)
	}

	logger.Debug("presenter created",
		zap.Uint32("texture", p.texture),
		zap.Uint32("fbo", p.readFBO),
	)
	return p, nil
}

// Close releases GL resources.
func (p *Presenter) Close() {
	logger.Info("closing presenter")
	if p.readFBO != 0 {
		gl.DeleteFramebuffers(1, &p.readFBO)
		p.readFBO = 0
	}
	if p.texture != 0 {
		gl.DeleteTextures(1, &p.texture)
		p.texture = 0
	}
}

// Present uploads frame, stretches it over the drawable and swaps buffers.
func (p *Presenter) Present(frame *image.RGBA) error {
	b := frame.Bounds()
	if b.Dx() != p.config.Width || b.Dy() != p.config.Height || frame.Stride != 4*b.Dx() {
		return fmt.Errorf("%w: got %dx%d stride %d, want %dx%d",
			ErrFrameSize, b.Dx(), b.Dy(), frame.Stride, p.config.Width, p.config.Height)
	}

	gl.BindTexture(gl.TEXTURE_2D, p.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(b.Dx()), int32(b.Dy()), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(frame.Pix))

	dw, dh := p.target.DrawableSize()
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, p.readFBO)
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, 0)
	// Texture rows start at the top of the image; GL's origin is bottom-left.
	gl.BlitFramebuffer(
		0, 0, int32(b.Dx()), int32(b.Dy()),
		0, int32(dh), int32(dw), 0,
		gl.COLOR_BUFFER_BIT, gl.NEAREST,
	)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("blit failed: GL error 0x%x", code)
	}

	p.target.SwapBuffers()
	return nil
}
