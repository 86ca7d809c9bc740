package capture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func testFrame(c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestPresentWritesNumberedFrames(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "frames")
	p, err := NewPresenter(dir, "cube")
	if err != nil {
		t.Fatalf("NewPresenter: %v", err)
	}

	red := color.RGBA{255, 0, 0, 255}
	for i := 0; i < 3; i++ {
		if err := p.Present(testFrame(red)); err != nil {
			t.Fatalf("Present %d: %v", i, err)
		}
	}
	if p.Count() != 3 {
		t.Errorf("Count() = %d, want 3", p.Count())
	}

	path := filepath.Join(dir, "cube_000002.png")
	if p.FramePath(2) != path {
		t.Errorf("FramePath(2) = %s, want %s", p.FramePath(2), path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening frame: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decoding frame: %v", err)
	}
	if img.Bounds().Dx() != 4 || img.Bounds().Dy() != 3 {
		t.Errorf("frame size %v, want 4x3", img.Bounds())
	}
	if r, _, _, _ := img.At(1, 1).RGBA(); r>>8 != 255 {
		t.Errorf("pixel red = %d, want 255", r>>8)
	}
}

func TestPresentFailsOnMissingDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "gone")
	p, err := NewPresenter(dir, "f")
	if err != nil {
		t.Fatal(err)
	}
	if err := os.RemoveAll(dir); err != nil {
		t.Fatal(err)
	}
	if err := p.Present(testFrame(color.RGBA{})); err == nil {
		t.Error("Present() = nil, want error")
	}
	if p.Count() != 0 {
		t.Errorf("Count() = %d after failure, want 0", p.Count())
	}
}

func TestScreenshot(t *testing.T) {
	dir := t.TempDir()
	p, err := NewPresenter(dir, "shot")
	if err != nil {
		t.Fatal(err)
	}
	path, err := p.Screenshot(testFrame(color.RGBA{0, 0, 255, 255}))
	if err != nil {
		t.Fatalf("Screenshot: %v", err)
	}
	if !strings.HasPrefix(filepath.Base(path), "shot_") || filepath.Ext(path) != ".png" {
		t.Errorf("unexpected screenshot path %s", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("screenshot missing: %v", err)
	}
}
