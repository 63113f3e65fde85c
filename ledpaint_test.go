package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/funtimes-ledpaint/app"
	"github.com/coreman2200/funtimes-ledpaint/config"
	"github.com/coreman2200/funtimes-ledpaint/model"
)

func TestLoadSource(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "script.yaml")
	require.NoError(t, os.WriteFile(good, []byte("- {quit: true}\n"), 0o644))

	src, err := loadSource(&config.Config{Frontend: "window", Script: good})
	require.NoError(t, err)
	assert.Equal(t, app.Idle{}, src)

	src, err = loadSource(&config.Config{Frontend: "headless"})
	require.NoError(t, err)
	assert.Equal(t, app.Idle{}, src)

	src, err = loadSource(&config.Config{Frontend: "headless", Script: good})
	require.NoError(t, err)
	require.IsType(t, &app.Script{}, src)
	assert.Len(t, src.(*app.Script).Steps, 1)

	_, err = loadSource(&config.Config{Frontend: "headless", Script: filepath.Join(dir, "missing.yaml")})
	assert.Error(t, err)
}

func TestWriteSnapshot(t *testing.T) {
	var f model.Frame
	f[9] = model.RGB{G: 200}
	p := filepath.Join(t.TempDir(), "frame.png")
	require.NoError(t, writeSnapshot(p, f))

	in, err := os.Open(p)
	require.NoError(t, err)
	defer in.Close()
	im, err := png.Decode(in)
	require.NoError(t, err)

	assert.Equal(t, model.GridSize*snapshotScale, im.Bounds().Dx())
	_, g, _, _ := im.At(snapshotScale+1, snapshotScale+1).RGBA()
	assert.Equal(t, uint32(200)<<8|200, g)
}
