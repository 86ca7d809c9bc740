package config

import "flag"

var (
	flagConfig     = flag.String("config", "", "Path to config file")
	flagDebug      = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed   = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth      = flag.Int("width", 0, "Window width")
	flagHeight     = flag.Int("height", 0, "Window height")
	flagScene      = flag.String("scene", "", "Path to a scene file")
	flagHeadless   = flag.Bool("headless", false, "Render to PNG files instead of a window")
	flagFrames     = flag.Int("frames", 0, "Stop after this many frames")
	flagOut        = flag.String("out", "", "Output directory for captured frames")
	flagPaused     = flag.Bool("paused", false, "Start paused")
	flagSave       = flag.Bool("save-config", false, "Write the effective config to the user config directory and exit")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// SaveRequested reports whether --save-config was given.
func SaveRequested() bool {
	return *flagSave
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagScene != "" {
		cfg.Scene.Path = *flagScene
	}
	if *flagHeadless {
		cfg.Capture.Headless = true
	}
	if *flagFrames > 0 {
		cfg.Capture.Frames = *flagFrames
	}
	if *flagOut != "" {
		cfg.Capture.OutputDir = *flagOut
	}
	if *flagPaused {
		cfg.Viewer.StartPaused = true
	}
}
