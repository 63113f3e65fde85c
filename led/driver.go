package led

import (
	"errors"

	"github.com/coreman2200/funtimes-ledpaint/model"
)

var (
	ErrNotSupported = errors.New("led: driver not supported on this platform")
	ErrClosed       = errors.New("led: driver closed")
)

// Driver abstracts the LED matrix the grid is mirrored to.
type Driver interface {
	// Push writes a full 8x8 frame to the device.
	Push(f model.Frame) error
	// Close releases resources.
	Close() error
}
