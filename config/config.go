package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type PowerCfg struct {
	LimitMA  float64 `yaml:"limit_ma"`
	ChanMA   float64 `yaml:"chan_ma"`
	Knee     float64 `yaml:"knee"`
	WhiteCap float64 `yaml:"white_cap"`
}

type SenseHAT struct {
	Dev          string `yaml:"dev"` // e.g. /dev/fb1; empty finds it by name
	ClearOnClose *bool  `yaml:"clear_on_close,omitempty"`
}

type Matrix struct {
	Port          string `yaml:"port"` // periph SPI port name, e.g. /dev/spidev0.0
	XFlipEveryRow bool   `yaml:"x_flip_every_row"`
	YFlip         bool   `yaml:"y_flip"`
}

type Config struct {
	Driver     string  `yaml:"driver"`   // "sensehat" | "matrix" | "console" | "sim"
	Frontend   string  `yaml:"frontend"` // "window" | "headless"
	Script     string  `yaml:"script,omitempty"`
	FPS        int     `yaml:"fps"`
	Brightness float64 `yaml:"brightness"`
	LogLevel   string  `yaml:"log_level"`
	TileSize   int     `yaml:"tile_size"`
	Brush      string  `yaml:"brush"` // initial slider colour, "#rrggbb"
	Snapshot   string  `yaml:"snapshot,omitempty"` // png of the final LED frame

	SenseHAT SenseHAT `yaml:"sensehat"`
	Matrix   Matrix   `yaml:"matrix"`
	Power    PowerCfg `yaml:"power"`
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

// Override copies the values set in o over c. Scalars only win when non-zero;
// the device sections are taken from o as a whole.
func (c *Config) Override(o *Config) {
	if o.Driver != "" {
		c.Driver = o.Driver
	}
	if o.Frontend != "" {
		c.Frontend = o.Frontend
	}
	if o.Script != "" {
		c.Script = o.Script
	}
	if o.FPS > 0 {
		c.FPS = o.FPS
	}
	if o.Brightness > 0 {
		c.Brightness = o.Brightness
	}
	if o.LogLevel != "" {
		c.LogLevel = o.LogLevel
	}
	if o.TileSize > 0 {
		c.TileSize = o.TileSize
	}
	if o.Brush != "" {
		c.Brush = o.Brush
	}
	if o.Snapshot != "" {
		c.Snapshot = o.Snapshot
	}
	c.SenseHAT = o.SenseHAT
	c.Matrix = o.Matrix
	c.Power = o.Power
}

// ClearOnClose reports whether the Sense HAT is blanked on exit; default yes.
func (c *Config) ClearOnClose() bool {
	if c.SenseHAT.ClearOnClose == nil {
		return true
	}
	return *c.SenseHAT.ClearOnClose
}
