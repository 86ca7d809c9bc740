package app

import (
	"context"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/vectorviewer/internal/config"
	"github.com/Faultbox/vectorviewer/pkg/math"
)

func TestNewScene(t *testing.T) {
	cfg := config.Default()
	cfg.Viewer.Background = [3]uint8{1, 2, 3}

	objs, err := LoadObjects("")
	if err != nil {
		t.Fatalf("LoadObjects: %v", err)
	}
	sc := NewScene(cfg, objs)

	if sc.MidScreen != (math.Vec2{640, 400}) {
		t.Errorf("mid screen = %v, want {640 400}", sc.MidScreen)
	}
	if sc.ZScale != 896 {
		t.Errorf("z scale = %v, want 896", sc.ZScale)
	}
	if sc.Background != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("background = %v", sc.Background)
	}
	if sc.LightPosition != (math.Vec3{400, 800, -500}) {
		t.Errorf("light position = %v", sc.LightPosition)
	}
	if len(sc.Objects) != 1 {
		t.Errorf("objects = %d, want 1", len(sc.Objects))
	}
}

func TestLoadObjectsMissingFile(t *testing.T) {
	if _, err := LoadObjects(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("LoadObjects(missing) = nil error")
	}
}

func TestHeadlessRun(t *testing.T) {
	cfg := config.Default()
	cfg.Graphics.Width = 160
	cfg.Graphics.Height = 100
	cfg.Capture.Headless = true
	cfg.Capture.OutputDir = filepath.Join(t.TempDir(), "frames")
	cfg.Capture.Frames = 3

	a, err := New(cfg)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer a.Close()

	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}

	entries, err := os.ReadDir(cfg.Capture.OutputDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("wrote %d frames, want 3", len(entries))
	}
	if _, err := os.Stat(filepath.Join(cfg.Capture.OutputDir, "frame_000000.png")); err != nil {
		t.Errorf("first frame missing: %v", err)
	}
}
