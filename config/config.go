package config

import (
	"strings"

	jconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Config holds the runtime settings. Every field can be overridden from
// the environment.
type Config struct {
	AtlasPath         string  `config:"CALENDAR_ATLAS"`
	WindowWidth       int     `config:"CALENDAR_WINDOW_WIDTH"`
	WindowHeight      int     `config:"CALENDAR_WINDOW_HEIGHT"`
	Fullscreen        bool    `config:"CALENDAR_FULLSCREEN"`
	CameraScale       float64 `config:"CALENDAR_CAMERA_SCALE"`
	CameraZoomSeconds float64 `config:"CALENDAR_ZOOM_SECONDS"`
	LogLevel          string  `config:"CALENDAR_LOG_LEVEL"`
}

// Default returns the built-in settings. An empty AtlasPath selects the
// embedded atlas.
func Default() Config {
	return Config{
		WindowWidth:  1024,
		WindowHeight: 768,
		CameraScale:  0.3,
		LogLevel:     "info",
	}
}

// Load starts from Default and applies environment overrides.
func Load() (Config, error) {
	cfg := Default()
	if err := jconfig.FromEnv().To(&cfg); err != nil {
		return Config{}, eris.Wrap(err, "read environment config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the scene cannot render with.
func (c Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return eris.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.CameraScale <= 0 {
		return eris.Errorf("camera scale must be positive, got %v", c.CameraScale)
	}
	if c.CameraZoomSeconds < 0 {
		return eris.Errorf("zoom duration must not be negative, got %v", c.CameraZoomSeconds)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c Config) Level() (zerolog.Level, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(c.LogLevel))
	if err != nil {
		return zerolog.NoLevel, eris.Wrapf(err, "invalid log level %q", c.LogLevel)
	}
	return lvl, nil
}
