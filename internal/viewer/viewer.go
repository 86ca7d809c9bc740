// Package viewer drives the frame loop: input, transform, render, present
// and pacing, with a running/paused/stopped state machine.
package viewer

import (
	"context"
	"errors"
	"fmt"
	"image"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/vectorviewer/internal/logger"
	"github.com/Faultbox/vectorviewer/internal/render"
)

// Canvas is a render target whose pixels can be handed to a Presenter.
type Canvas interface {
	render.Surface
	Frame() *image.RGBA
}

// Presenter shows a finished frame.
type Presenter interface {
	Present(frame *image.RGBA) error
}

// Input delivers the signals received since the last poll.
type Input interface {
	Poll() []Signal
}

// Clock paces the loop.
type Clock interface {
	WaitUntilNextTick(fps int)
	Sleep(d time.Duration)
}

// Deps are the collaborators the viewer drives.
type Deps struct {
	Canvas    Canvas
	Presenter Presenter
	Input     Input
	Clock     Clock
}

// Options holds loop settings.
type Options struct {
	TargetFPS   int
	PausePoll   time.Duration // sleep between input polls while paused
	MaxFrames   int           // stop after this many presented frames; 0 means no limit
	StartPaused bool
}

// Viewer runs a scene.
type Viewer struct {
	scene  *Scene
	deps   Deps
	opts   Options
	state  State
	frames int
	log    *zap.Logger
}

// New creates a viewer.
func New(scene *Scene, deps Deps, opts Options) (*Viewer, error) {
	if scene == nil {
		return nil, errors.New("viewer: nil scene")
	}
	if deps.Canvas == nil || deps.Presenter == nil || deps.Input == nil || deps.Clock == nil {
		return nil, errors.New("viewer: missing collaborator")
	}
	if opts.TargetFPS <= 0 {
		return nil, fmt.Errorf("viewer: target fps must be positive, got %d", opts.TargetFPS)
	}
	if opts.PausePoll <= 0 {
		opts.PausePoll = 100 * time.Millisecond
	}

	v := &Viewer{
		scene: scene,
		deps:  deps,
		opts:  opts,
		state: Running,
		log:   logger.Named("viewer"),
	}
	if opts.StartPaused {
		v.state = Paused
	}
	return v, nil
}

// State returns the current loop state.
func (v *Viewer) State() State {
	return v.state
}

// Frames returns the number of frames presented so far.
func (v *Viewer) Frames() int {
	return v.frames
}

// Run loops until a terminate or close signal, ctx cancellation, MaxFrames,
// or a render or present failure. Failures stop the loop and are returned.
func (v *Viewer) Run(ctx context.Context) error {
	frameCount := 0
	fpsTimer := time.Now()

	v.log.Info("starting frame loop",
		zap.Int("objects", len(v.scene.Objects)),
		zap.Int("target_fps", v.opts.TargetFPS),
		zap.Stringer("state", v.state),
	)

	for v.state != Stopped {
		if ctx.Err() != nil {
			v.log.Info("close requested", zap.Error(ctx.Err()))
			v.state = Stopped
			break
		}

		for _, sig := range v.deps.Input.Poll() {
			v.apply(sig)
		}

		switch v.state {
		case Stopped:
			continue
		case Paused:
			v.deps.Clock.Sleep(v.opts.PausePoll)
			continue
		}

		if err := v.frame(); err != nil {
			v.state = Stopped
			return err
		}

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			v.log.Debug("fps", zap.Int("count", frameCount), zap.Int("total", v.frames))
			frameCount = 0
			fpsTimer = time.Now()
		}

		if v.opts.MaxFrames > 0 && v.frames >= v.opts.MaxFrames {
			v.log.Info("frame limit reached", zap.Int("frames", v.frames))
			v.state = Stopped
			break
		}

		v.deps.Clock.WaitUntilNextTick(v.opts.TargetFPS)
	}

	v.log.Info("frame loop stopped", zap.Int("frames", v.frames))
	return nil
}

// Frame runs a single transform, render and present pass regardless of
// the loop state.
func (v *Viewer) Frame() error {
	return v.frame()
}

func (v *Viewer) apply(sig Signal) {
	next := Next(v.state, sig)
	if next != v.state {
		v.log.Debug("state change",
			zap.Stringer("signal", sig),
			zap.Stringer("from", v.state),
			zap.Stringer("to", next),
		)
	}
	v.state = next
}

func (v *Viewer) frame() error {
	v.scene.Step()

	stats, err := render.Render(v.deps.Canvas, v.scene.Background, v.scene.Objects)
	if err != nil {
		return fmt.Errorf("render frame %d: %w", v.frames, err)
	}
	if stats.Skipped > 0 {
		v.log.Debug("surfaces skipped", zap.Int("frame", v.frames), zap.Int("skipped", stats.Skipped))
	}

	if err := v.deps.Presenter.Present(v.deps.Canvas.Frame()); err != nil {
		return fmt.Errorf("present frame %d: %w", v.frames, err)
	}
	v.frames++
	return nil
}
