// Package config handles viewer configuration loading and management.
package config

import "time"

// Config holds all viewer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Scene    SceneConfig    `yaml:"scene"`
	Capture  CaptureConfig  `yaml:"capture"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FPSLimit   int  `yaml:"fps_limit"` // target frames per second; also scales rotation speed
}

// ViewerConfig holds projection and loop settings.
type ViewerConfig struct {
	ZScaleFactor  float64       `yaml:"z_scale_factor"` // projection scale as a fraction of width
	Background    [3]uint8      `yaml:"background"`
	LightPosition [3]float64    `yaml:"light_position"` // stored, not used by the renderer
	PausePoll     time.Duration `yaml:"pause_poll"`
	StartPaused   bool          `yaml:"start_paused"`
}

// SceneConfig selects the scene to load.
type SceneConfig struct {
	Path string `yaml:"path"` // empty means the built-in cube
}

// CaptureConfig holds headless rendering settings.
type CaptureConfig struct {
	Headless  bool   `yaml:"headless"`
	OutputDir string `yaml:"output_dir"`
	Prefix    string `yaml:"prefix"`
	Frames    int    `yaml:"frames"` // 0 runs until stopped
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   60,
		},
		Viewer: ViewerConfig{
			ZScaleFactor:  0.7,
			Background:    [3]uint8{0, 0, 0},
			LightPosition: [3]float64{400, 800, -500},
			PausePoll:     100 * time.Millisecond,
		},
		Capture: CaptureConfig{
			OutputDir: "frames",
			Prefix:    "frame",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// ZScale returns the projection scale in pixels.
func (c *Config) ZScale() float64 {
	return float64(c.Graphics.Width) * c.Viewer.ZScaleFactor
}
