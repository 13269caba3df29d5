// Package config holds the launch settings of both pads.
package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/BurntSushi/toml"
)

type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

type Web struct {
	Addr      string `toml:"addr"`
	Advertise bool   `toml:"advertise"`
}

type Config struct {
	Window   Window `toml:"window"`
	Web      Web    `toml:"web"`
	LogLevel string `toml:"log_level"`
}

func Default() Config {
	return Config{
		Window:   Window{Title: "Drawing Pad", Width: 800, Height: 600},
		Web:      Web{Addr: ":8888", Advertise: true},
		LogLevel: "info",
	}
}

// Load reads a TOML file over the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("could not read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("unknown config keys in %s: %v", path, undecoded)
	}
	return cfg, cfg.Validate()
}

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Web.Addr == "" {
		return fmt.Errorf("web address must not be empty")
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel into a slog level.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return l, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return l, nil
}
