// Package input turns SDL2 events into viewer signals.
package input

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/vectorviewer/internal/viewer"
)

// Input polls SDL events.
type Input struct {
	signals []viewer.Signal
}

// New creates a new input handler.
func New() *Input {
	return &Input{
		signals: make([]viewer.Signal, 0, 8),
	}
}

// Poll drains the SDL event queue and returns the recognized signals in
// arrival order. The returned slice is reused by the next Poll.
func (i *Input) Poll() []viewer.Signal {
	i.signals = i.signals[:0]

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		if sig := Translate(event); sig != viewer.SignalNone {
			i.signals = append(i.signals, sig)
		}
	}

	return i.signals
}

// Translate maps one SDL event to a signal. Window close requests become
// Close, Escape becomes Terminate and Space toggles pause.
func Translate(event sdl.Event) viewer.Signal {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		return viewer.Close

	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_CLOSE {
			return viewer.Close
		}

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN || e.Repeat != 0 {
			return viewer.SignalNone
		}
		return keySignal(e.Keysym.Sym)
	}
	return viewer.SignalNone
}

func keySignal(key sdl.Keycode) viewer.Signal {
	switch key {
	case sdl.K_ESCAPE:
		return viewer.Terminate
	case sdl.K_SPACE:
		return viewer.TogglePause
	default:
		return viewer.SignalNone
	}
}
