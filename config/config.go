// Package config loads the startup configuration: display class and
// geometry, timing, input and theme. The display class is resolved here
// once at startup and selects which buffer layout and callback set the
// render loop installs.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strings"
	"time"

	"golang.org/x/image/colornames"
	"gopkg.in/yaml.v3"

	"glimmer/hal"
)

// Config is the full startup configuration.
type Config struct {
	Display      Display `yaml:"display"`
	TickPeriodMS int     `yaml:"tick_period_ms"`
	QuantumMS    int     `yaml:"quantum_ms"`
	Input        bool    `yaml:"input"`
	Theme        Theme   `yaml:"theme"`
}

// Display selects the panel class and geometry.
type Display struct {
	Class       string `yaml:"class"` // color-double | color-single | mono
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	BufferLines int    `yaml:"buffer_lines"`
}

// Theme names colors from the SVG 1.1 palette.
type Theme struct {
	Background string `yaml:"background"`
	Foreground string `yaml:"foreground"`
	Accent     string `yaml:"accent"`
}

// Default returns the configuration used when no file is supplied: a
// double-buffered 320x240 color panel with input enabled.
func Default() Config {
	return Config{
		Display: Display{
			Class:       "color-double",
			Width:       320,
			Height:      240,
			BufferLines: 40,
		},
		TickPeriodMS: 1,
		QuantumMS:    10,
		Input:        true,
		Theme: Theme{
			Background: "black",
			Foreground: "white",
			Accent:     "limegreen",
		},
	}
}

// Load reads a YAML file over the defaults. A missing, unreadable or
// invalid file is an error: configuration problems are boot-time fatal.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks invariants that would otherwise surface as subtle
// render bugs.
func (c Config) Validate() error {
	if _, err := c.DisplayClass(); err != nil {
		return err
	}
	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		return fmt.Errorf("config: invalid display size %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Display.BufferLines < 0 {
		return fmt.Errorf("config: negative buffer_lines %d", c.Display.BufferLines)
	}
	if c.TickPeriodMS < 1 {
		return fmt.Errorf("config: tick_period_ms %d below 1", c.TickPeriodMS)
	}
	if c.QuantumMS < c.TickPeriodMS {
		return fmt.Errorf("config: quantum_ms %d below tick_period_ms %d", c.QuantumMS, c.TickPeriodMS)
	}
	for _, name := range []string{c.Theme.Background, c.Theme.Foreground, c.Theme.Accent} {
		if _, err := namedColor(name); err != nil {
			return err
		}
	}
	return nil
}

// DisplayClass resolves the configured class string.
func (c Config) DisplayClass() (hal.DisplayClass, error) {
	switch c.Display.Class {
	case "color-double":
		return hal.ColorDouble, nil
	case "color-single":
		return hal.ColorSingle, nil
	case "mono":
		return hal.Mono, nil
	default:
		return 0, fmt.Errorf("config: unknown display class %q", c.Display.Class)
	}
}

func (c Config) TickPeriod() time.Duration {
	return time.Duration(c.TickPeriodMS) * time.Millisecond
}

func (c Config) Quantum() time.Duration {
	return time.Duration(c.QuantumMS) * time.Millisecond
}

// Colors resolves the theme to concrete colors.
func (t Theme) Colors() (bg, fg, accent color.RGBA, err error) {
	if bg, err = namedColor(t.Background); err != nil {
		return
	}
	if fg, err = namedColor(t.Foreground); err != nil {
		return
	}
	accent, err = namedColor(t.Accent)
	return
}

func namedColor(name string) (color.RGBA, error) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return color.RGBA{}, fmt.Errorf("config: unknown color %q", name)
	}
	return c, nil
}
