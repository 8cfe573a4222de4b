package core

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Config for the engine run.
type Config struct {
	Title      string     `yaml:"title"`
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	VSync      bool       `yaml:"vsync"`
	ClearColor [4]float32 `yaml:"clear_color"` // RGBA
	TickRate   int        `yaml:"tick_rate"`   // fixed updates per second
	LogLevel   string     `yaml:"log_level"`
	Icon       string     `yaml:"icon"` // PNG path; empty uses the embedded icon
	FontSize   float64    `yaml:"font_size"`

	// KeepStaleHitRegions keeps mouse registrations across frames instead of
	// clearing them before each frame function runs.
	KeepStaleHitRegions bool `yaml:"keep_stale_hit_regions"`
}

func DefaultConfig() Config {
	return Config{
		Title:      "poliosis",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: [4]float32{0, 0, 0, 1},
		TickRate:   60,
		LogLevel:   "info",
		FontSize:   48,
	}
}

// LoadConfig reads YAML from path over the defaults. A missing file yields
// the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("window size %dx%d must be positive", c.Width, c.Height)
	}
	if c.TickRate < 0 {
		return fmt.Errorf("tick_rate %d must not be negative", c.TickRate)
	}
	if c.FontSize <= 0 {
		return fmt.Errorf("font_size %v must be positive", c.FontSize)
	}
	return nil
}
