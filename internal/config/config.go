// Package config loads the viewer settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"
	"time"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"uhtml/pkg/text"
)

// Config is the uhtml.yaml configuration.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Font   FontConfig   `yaml:"font"`
	Colors ColorConfig  `yaml:"colors"`

	// FrameRate is the number of frames per second drawn by the viewer.
	FrameRate int `yaml:"frame_rate"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type FontConfig struct {
	// Path to a TrueType/OpenType file. Empty selects the built-in face.
	Path string  `yaml:"path"`
	Size float64 `yaml:"size"`
}

type ColorConfig struct {
	// Text and Background accept CSS colour names or #rrggbb.
	Text       string `yaml:"text"`
	Background string `yaml:"background"`
}

// Default returns the settings used when no file is given: an 800x600
// window, white text on black, 30 frames per second.
func Default() *Config {
	return &Config{
		Window:    WindowConfig{Title: "uhtml", Width: 800, Height: 600},
		Font:      FontConfig{Size: text.DefaultSize},
		Colors:    ColorConfig{Text: "white", Background: "black"},
		FrameRate: 30,
		LogLevel:  "info",
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks value ranges and colour syntax.
func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Font.Size < 0 {
		errs = append(errs, fmt.Errorf("font size %v must not be negative", c.Font.Size))
	}
	if c.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("frame rate %d must be positive", c.FrameRate))
	}
	if _, err := ParseColor(c.Colors.Text); err != nil {
		errs = append(errs, fmt.Errorf("text colour: %w", err))
	}
	if _, err := ParseColor(c.Colors.Background); err != nil {
		errs = append(errs, fmt.Errorf("background colour: %w", err))
	}
	return errors.Join(errs...)
}

// FontConfig returns the font settings for package text.
func (c *Config) FontConfig() text.FontConfig {
	return text.FontConfig{Path: c.Font.Path, Size: c.Font.Size}
}

// FrameInterval is the time between two frames.
func (c *Config) FrameInterval() time.Duration {
	if c.FrameRate <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.FrameRate)
}

// TextColor and BackgroundColor resolve the configured colours. They fall
// back to white and black for values Validate would reject.
func (c *Config) TextColor() color.Color {
	if col, err := ParseColor(c.Colors.Text); err == nil {
		return col
	}
	return color.White
}

func (c *Config) BackgroundColor() color.Color {
	if col, err := ParseColor(c.Colors.Background); err == nil {
		return col
	}
	return color.Black
}

// ParseColor accepts a CSS colour name ("red", "SteelBlue"), #rgb or
// #rrggbb.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if col, ok := colornames.Map[s]; ok {
		return col, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("unknown colour %q", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("bad hex colour %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex colour %q", s)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}
