// Package config holds the runtime settings of benchcharts. Values come from
// built-in defaults, then an optional INI file, then command line flags.
//
//	[render]
//	backend = chart   ; chart (go-chart) or plot (gonum/plot)
//	width   = 1000
//	height  = 600
//
//	[viewer]
//	theme        = dark
//	follow_width = true
//
//	[export]
//	dir    = charts
//	format = png
//
//	[log]
//	level = info
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/CarlosSanchess/benchcharts/src/chartspec"
	"github.com/CarlosSanchess/benchcharts/src/logging"
	"github.com/CarlosSanchess/benchcharts/src/render"
)

// DefaultFile is picked up from the working directory when no --config is given.
const DefaultFile = "benchcharts.ini"

type Config struct {
	Render RenderConfig `ini:"render"`
	Viewer ViewerConfig `ini:"viewer"`
	Export ExportConfig `ini:"export"`
	Log    LogConfig    `ini:"log"`
}

type RenderConfig struct {
	Backend string `ini:"backend"`
	// Width and Height override per-chart sizes when non-zero.
	Width  int `ini:"width"`
	Height int `ini:"height"`
}

type ViewerConfig struct {
	Theme string `ini:"theme"`
	// FollowWidth re-renders the chart when the window is resized.
	FollowWidth bool `ini:"follow_width"`
}

type ExportConfig struct {
	Dir    string `ini:"dir"`
	Format string `ini:"format"`
}

type LogConfig struct {
	Level string `ini:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Render: RenderConfig{Backend: "chart"},
		Viewer: ViewerConfig{Theme: "dark", FollowWidth: true},
		Export: ExportConfig{Dir: "charts", Format: "png"},
		Log:    LogConfig{Level: "info"},
	}
}

// Discover returns DefaultFile when it exists in the working directory, otherwise "".
func Discover() string {
	if st, err := os.Stat(DefaultFile); err == nil && !st.IsDir() {
		return DefaultFile
	}
	return ""
}

// Load reads path over the defaults. An empty path yields the defaults.
// Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	f, err := ini.Load(path)
	if err != nil {
		return c, fmt.Errorf("load config %s: %w", path, err)
	}
	if err := f.MapTo(&c); err != nil {
		return c, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

// Validate checks enumerations and ranges.
func (c Config) Validate() error {
	if _, err := render.New(c.Render.Backend); err != nil {
		return fmt.Errorf("render.backend: %w", err)
	}
	if c.Render.Width < 0 || c.Render.Height < 0 {
		return fmt.Errorf("render.width/height must not be negative (got %dx%d)", c.Render.Width, c.Render.Height)
	}
	switch strings.ToLower(c.Viewer.Theme) {
	case "dark", "light", "":
	default:
		return fmt.Errorf("viewer.theme: unknown theme %q (want dark or light)", c.Viewer.Theme)
	}
	if _, err := render.ParseFormat(c.Export.Format); err != nil {
		return fmt.Errorf("export.format: %w", err)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// Size returns the configured size override; zero fields defer to the chart.
func (c Config) Size() chartspec.Size {
	return chartspec.Size{Width: c.Render.Width, Height: c.Render.Height}
}
