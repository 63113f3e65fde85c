//go:build linux

package led

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFrameBuffer(t *testing.T) {
	class := t.TempDir()
	for dev, name := range map[string]string{
		"fb0": "BCM2708 FB\n",
		"fb1": SenseHATName + "\n",
	} {
		require.NoError(t, os.MkdirAll(filepath.Join(class, dev), 0o755))
		require.NoError(t, os.WriteFile(filepath.Join(class, dev, "name"), []byte(name), 0o644))
	}

	dev, err := FindFrameBuffer(class, SenseHATName)
	require.NoError(t, err)
	assert.Equal(t, "/dev/fb1", dev)

	_, err = FindFrameBuffer(class, "nope")
	assert.Error(t, err)
}

func TestOpenSenseHATRejectsPlainFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "fb")
	require.NoError(t, os.WriteFile(p, make([]byte, 128), 0o644))

	_, err := OpenSenseHAT(p, false)
	assert.Error(t, err)
}
