package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	qt "github.com/frankban/quicktest"
	"golang.org/x/image/colornames"

	"glimmer/hal"
)

func TestDefaults(t *testing.T) {
	c := qt.New(t)
	cfg := Default()
	c.Assert(cfg.Validate(), qt.IsNil)

	class, err := cfg.DisplayClass()
	c.Assert(err, qt.IsNil)
	c.Assert(class, qt.Equals, hal.ColorDouble)
	c.Assert(cfg.Display.Width, qt.Equals, 320)
	c.Assert(cfg.Display.Height, qt.Equals, 240)
	c.Assert(cfg.TickPeriod(), qt.Equals, time.Millisecond)
	c.Assert(cfg.Quantum(), qt.Equals, 10*time.Millisecond)
	c.Assert(cfg.Input, qt.Equals, true)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(t.TempDir(), "glimmer.yaml")
	doc := `display:
  class: mono
  width: 128
  height: 64
quantum_ms: 20
theme:
  background: navy
`
	c.Assert(os.WriteFile(path, []byte(doc), 0o644), qt.IsNil)

	cfg, err := Load(path)
	c.Assert(err, qt.IsNil)
	c.Assert(cfg.Display.Class, qt.Equals, "mono")
	c.Assert(cfg.Display.Width, qt.Equals, 128)
	c.Assert(cfg.Display.Height, qt.Equals, 64)
	c.Assert(cfg.QuantumMS, qt.Equals, 20)
	c.Assert(cfg.Theme.Background, qt.Equals, "navy")
	// Unset fields keep their defaults.
	c.Assert(cfg.TickPeriodMS, qt.Equals, 1)
	c.Assert(cfg.Theme.Foreground, qt.Equals, "white")
}

func TestLoadMissingFileFails(t *testing.T) {
	c := qt.New(t)
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	c.Assert(err, qt.IsNotNil)
}

func TestLoadMalformedFileFails(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(t.TempDir(), "glimmer.yaml")
	c.Assert(os.WriteFile(path, []byte("display: [not: a: mapping"), 0o644), qt.IsNil)
	_, err := Load(path)
	c.Assert(err, qt.IsNotNil)
}

func TestLoadInvalidConfigFails(t *testing.T) {
	c := qt.New(t)
	path := filepath.Join(t.TempDir(), "glimmer.yaml")
	c.Assert(os.WriteFile(path, []byte("display:\n  class: plasma\n"), 0o644), qt.IsNil)
	_, err := Load(path)
	c.Assert(err, qt.IsNotNil)
}

func TestValidateRejections(t *testing.T) {
	c := qt.New(t)
	cases := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown class", func(c *Config) { c.Display.Class = "plasma" }},
		{"zero width", func(c *Config) { c.Display.Width = 0 }},
		{"negative height", func(c *Config) { c.Display.Height = -1 }},
		{"negative buffer lines", func(c *Config) { c.Display.BufferLines = -1 }},
		{"tick below one ms", func(c *Config) { c.TickPeriodMS = 0 }},
		{"quantum below tick", func(c *Config) { c.TickPeriodMS = 5; c.QuantumMS = 1 }},
		{"unknown color", func(c *Config) { c.Theme.Accent = "glimmergreen" }},
	}
	for _, tc := range cases {
		cfg := Default()
		tc.mutate(&cfg)
		c.Assert(cfg.Validate(), qt.IsNotNil, qt.Commentf("case %q", tc.name))
	}
}

func TestDisplayClassNames(t *testing.T) {
	c := qt.New(t)
	for name, want := range map[string]hal.DisplayClass{
		"color-double": hal.ColorDouble,
		"color-single": hal.ColorSingle,
		"mono":         hal.Mono,
	} {
		cfg := Default()
		cfg.Display.Class = name
		got, err := cfg.DisplayClass()
		c.Assert(err, qt.IsNil)
		c.Assert(got, qt.Equals, want)
		c.Assert(got.String(), qt.Equals, name)
	}
}

func TestThemeColors(t *testing.T) {
	c := qt.New(t)
	th := Theme{Background: "Black", Foreground: " white ", Accent: "limegreen"}
	bg, fg, accent, err := th.Colors()
	c.Assert(err, qt.IsNil)
	c.Assert(bg, qt.Equals, colornames.Black)
	c.Assert(fg, qt.Equals, colornames.White)
	c.Assert(accent, qt.Equals, colornames.Limegreen)

	_, _, _, err = Theme{Background: "black", Foreground: "white", Accent: "nope"}.Colors()
	c.Assert(err, qt.IsNotNil)
}
