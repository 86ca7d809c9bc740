// Package app wires the viewer to its window, presenter, input and clock.
package app

import (
	"context"
	"fmt"
	"image/color"

	"go.uber.org/zap"

	"github.com/Faultbox/vectorviewer/internal/body"
	"github.com/Faultbox/vectorviewer/internal/capture"
	"github.com/Faultbox/vectorviewer/internal/config"
	"github.com/Faultbox/vectorviewer/internal/engine/canvas"
	"github.com/Faultbox/vectorviewer/internal/engine/clock"
	"github.com/Faultbox/vectorviewer/internal/engine/input"
	"github.com/Faultbox/vectorviewer/internal/engine/renderer"
	"github.com/Faultbox/vectorviewer/internal/engine/window"
	"github.com/Faultbox/vectorviewer/internal/logger"
	"github.com/Faultbox/vectorviewer/internal/scene"
	"github.com/Faultbox/vectorviewer/internal/viewer"
	"github.com/Faultbox/vectorviewer/pkg/math"
)

const windowTitle = "VectorViewer"

// App owns every resource of a viewer run.
type App struct {
	cfg       *config.Config
	canvas    *canvas.Canvas
	window    *window.Window
	presenter *renderer.Presenter
	viewer    *viewer.Viewer
}

// New loads the scene and opens either a window or a capture directory.
func New(cfg *config.Config) (*App, error) {
	objects, err := LoadObjects(cfg.Scene.Path)
	if err != nil {
		return nil, err
	}
	sc := NewScene(cfg, objects)

	a := &App{cfg: cfg}
	a.canvas, err = canvas.New(cfg.Graphics.Width, cfg.Graphics.Height)
	if err != nil {
		return nil, err
	}

	deps := viewer.Deps{Canvas: a.canvas}
	if cfg.Capture.Headless {
		p, err := capture.NewPresenter(cfg.Capture.OutputDir, cfg.Capture.Prefix)
		if err != nil {
			a.Close()
			return nil, err
		}
		deps.Presenter = p
		deps.Input = input.NewScript()
		deps.Clock = clock.NewUnpaced()
		logger.Info("headless capture", zap.String("dir", cfg.Capture.OutputDir), zap.Int("frames", cfg.Capture.Frames))
	} else {
		a.window, err = window.New(window.Config{
			Title:      windowTitle,
			Width:      cfg.Graphics.Width,
			Height:     cfg.Graphics.Height,
			Fullscreen: cfg.Graphics.Fullscreen,
			VSync:      cfg.Graphics.VSync,
		})
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to create window: %w", err)
		}

		// Presenter needs the GL context the window just created.
		a.presenter, err = renderer.New(renderer.Config{
			Width:  cfg.Graphics.Width,
			Height: cfg.Graphics.Height,
		}, a.window)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to create presenter: %w", err)
		}
		deps.Presenter = a.presenter
		deps.Input = input.New()
		deps.Clock = clock.New()
	}

	a.viewer, err = viewer.New(sc, deps, viewer.Options{
		TargetFPS:   cfg.Graphics.FPSLimit,
		PausePoll:   cfg.Viewer.PausePoll,
		MaxFrames:   cfg.Capture.Frames,
		StartPaused: cfg.Viewer.StartPaused,
	})
	if err != nil {
		a.Close()
		return nil, err
	}

	logger.Info("viewer initialized",
		zap.Int("objects", len(sc.Objects)),
		zap.Float64("z_scale", sc.ZScale),
		zap.Bool("headless", cfg.Capture.Headless),
	)
	return a, nil
}

// Run blocks until the viewer stops.
func (a *App) Run(ctx context.Context) error {
	return a.viewer.Run(ctx)
}

// Close releases resources in reverse order of creation.
func (a *App) Close() {
	if a.presenter != nil {
		a.presenter.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
	if a.canvas != nil {
		_ = a.canvas.Close()
	}
}

// LoadObjects reads the scene at path, or the built-in cube when path is empty.
func LoadObjects(path string) ([]*body.Object, error) {
	if path == "" {
		return scene.Builtin("cube")
	}
	return scene.Load(path)
}

// NewScene applies the configured render settings to objects.
func NewScene(cfg *config.Config, objects []*body.Object) *viewer.Scene {
	bg := cfg.Viewer.Background
	lp := cfg.Viewer.LightPosition
	return &viewer.Scene{
		Background:    color.RGBA{R: bg[0], G: bg[1], B: bg[2], A: 255},
		ZScale:        cfg.ZScale(),
		MidScreen:     math.Vec2{X: float64(cfg.Graphics.Width) / 2, Y: float64(cfg.Graphics.Height) / 2},
		LightPosition: math.Vec3{X: lp[0], Y: lp[1], Z: lp[2]},
		Objects:       objects,
	}
}
