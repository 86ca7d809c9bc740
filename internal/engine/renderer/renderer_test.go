package renderer

import (
	"errors"
	"image"
	"testing"
)

type nopSwapper struct{ swaps int }

func (s *nopSwapper) SwapBuffers()             { s.swaps++ }
func (s *nopSwapper) DrawableSize() (int, int) { return 64, 48 }

func TestPresentRejectsWrongSize(t *testing.T) {
	sw := &nopSwapper{}
	// no GL context: the size check runs before any GL call
	p := &Presenter{config: Config{Width: 64, Height: 48}, target: sw}

	tests := []struct {
		name  string
		frame *image.RGBA
	}{
		{"too small", image.NewRGBA(image.Rect(0, 0, 32, 48))},
		{"too tall", image.NewRGBA(image.Rect(0, 0, 64, 64))},
		{"sub image", image.NewRGBA(image.Rect(0, 0, 128, 48)).SubImage(image.Rect(0, 0, 64, 48)).(*image.RGBA)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := p.Present(tt.frame); !errors.Is(err, ErrFrameSize) {
				t.Errorf("Present() = %v, want ErrFrameSize", err)
			}
		})
	}
	if sw.swaps != 0 {
		t.Errorf("swapped %d times on rejected frames", sw.swaps)
	}
}
