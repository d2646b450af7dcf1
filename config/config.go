package config

import (
	jconfig "github.com/JeremyLoy/config"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog"
)

// Config holds runtime settings. Values come from Default, then an optional
// KEY=VALUE file, then the environment.
type Config struct {
	TimeStep     float64 `config:"CIRCLES_TIME_STEP"`
	CircleRadius float64 `config:"CIRCLES_CIRCLE_RADIUS"`
	CircleStroke float64 `config:"CIRCLES_CIRCLE_STROKE"`

	WindowWidth  int    `config:"CIRCLES_WINDOW_WIDTH"`
	WindowHeight int    `config:"CIRCLES_WINDOW_HEIGHT"`
	WindowTitle  string `config:"CIRCLES_WINDOW_TITLE"`
	TPS          int    `config:"CIRCLES_TPS"`
	ShowFPS      bool   `config:"CIRCLES_SHOW_FPS"`

	LogLevel  string `config:"CIRCLES_LOG_LEVEL"`
	PrettyLog bool   `config:"CIRCLES_PRETTY_LOG"`

	// Scene is a path to a scene file; empty means the embedded default scene
	Scene string `config:"CIRCLES_SCENE"`
}

// Default returns the reference configuration
func Default() Config {
	return Config{
		TimeStep:     TimeStep,
		CircleRadius: CircleRadius,
		CircleStroke: CircleStroke,
		WindowWidth:  WindowWidth,
		WindowHeight: WindowHeight,
		WindowTitle:  WindowTitle,
		TPS:          TicksPerSecond,
		LogLevel:     zerolog.LevelInfoValue,
		PrettyLog:    true,
	}
}

// Load builds a Config from defaults, the file at path when path is not
// empty, and the environment, then validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	var builder *jconfig.Builder
	if path != "" {
		builder = jconfig.From(path).FromEnv()
	} else {
		builder = jconfig.FromEnv()
	}
	if err := builder.To(&cfg); err != nil {
		return cfg, eris.Wrap(err, "failed to load config")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with
func (c Config) Validate() error {
	if c.TimeStep <= 0 {
		return eris.Errorf("time step must be positive, got %v", c.TimeStep)
	}
	if c.CircleRadius <= 0 {
		return eris.Errorf("circle radius must be positive, got %v", c.CircleRadius)
	}
	if c.CircleStroke < 0 {
		return eris.Errorf("circle stroke must not be negative, got %v", c.CircleStroke)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return eris.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.TPS <= 0 {
		return eris.Errorf("ticks per second must be positive, got %d", c.TPS)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return eris.Wrapf(err, "invalid log level %q", c.LogLevel)
	}
	return nil
}
