package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
driver: matrix
frontend: headless
fps: 24
brightness: 0.4
brush: "#ff8800"
matrix:
  port: /dev/spidev0.0
  x_flip_every_row: true
power:
  limit_ma: 1500
  chan_ma: 20
`

func TestLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte(sample), 0o644))

	c, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "matrix", c.Driver)
	assert.Equal(t, "headless", c.Frontend)
	assert.Equal(t, 24, c.FPS)
	assert.Equal(t, 0.4, c.Brightness)
	assert.Equal(t, "#ff8800", c.Brush)
	assert.Equal(t, "/dev/spidev0.0", c.Matrix.Port)
	assert.True(t, c.Matrix.XFlipEveryRow)
	assert.Equal(t, 1500.0, c.Power.LimitMA)
	assert.True(t, c.ClearOnClose())
}

func TestLoadMissing(t *testing.T) {
	p := filepath.Join(t.TempDir(), "nope.yaml")
	_, err := Load(p)
	assert.True(t, errors.Is(err, fs.ErrNotExist))
	assert.Contains(t, err.Error(), p)
}

func TestLoadInvalid(t *testing.T) {
	p := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(p, []byte("fps: [1, 2"), 0o644))
	_, err := Load(p)
	assert.Error(t, err)
}

func TestSaveThenLoad(t *testing.T) {
	p := filepath.Join(t.TempDir(), "out.yaml")
	keep := false
	in := &Config{
		Driver:   "sensehat",
		FPS:      30,
		SenseHAT: SenseHAT{ClearOnClose: &keep},
	}
	require.NoError(t, Save(p, in))

	out, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "sensehat", out.Driver)
	assert.Equal(t, 30, out.FPS)
	assert.False(t, out.ClearOnClose())
}

func TestOverride(t *testing.T) {
	flags := func() *Config {
		return &Config{
			Driver:     "sensehat",
			Frontend:   "window",
			FPS:        30,
			Brightness: 1,
			LogLevel:   "info",
			TileSize:   50,
			Brush:      "#000000",
		}
	}
	keep := false

	tests := []struct {
		name string
		file *Config
		want *Config
	}{
		{
			name: "empty file keeps flags",
			file: &Config{},
			want: flags(),
		},
		{
			name: "set scalars win",
			file: &Config{Driver: "matrix", Frontend: "headless", Script: "s.yaml", FPS: 60,
				Brightness: 0.25, LogLevel: "debug", TileSize: 40, Brush: "#ff0000", Snapshot: "out.png"},
			want: &Config{Driver: "matrix", Frontend: "headless", Script: "s.yaml", FPS: 60,
				Brightness: 0.25, LogLevel: "debug", TileSize: 40, Brush: "#ff0000", Snapshot: "out.png"},
		},
		{
			name: "device sections are copied",
			file: &Config{
				SenseHAT: SenseHAT{Dev: "/dev/fb1", ClearOnClose: &keep},
				Matrix:   Matrix{Port: "/dev/spidev0.0", YFlip: true},
				Power:    PowerCfg{LimitMA: 900, Knee: 0.8},
			},
			want: func() *Config {
				c := flags()
				c.SenseHAT = SenseHAT{Dev: "/dev/fb1", ClearOnClose: &keep}
				c.Matrix = Matrix{Port: "/dev/spidev0.0", YFlip: true}
				c.Power = PowerCfg{LimitMA: 900, Knee: 0.8}
				return c
			}(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := flags()
			got.Override(tt.file)
			assert.Equal(t, tt.want, got)
		})
	}
}
