package led

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/coreman2200/funtimes-ledpaint/model"
)

// SenseHATName is the fbdev identification string of the Sense HAT LED matrix.
const SenseHATName = "RPi-Sense FB"

type frameBuffer interface {
	io.WriterAt
	io.Closer
}

// SenseHAT writes frames to the Raspberry Pi Sense HAT framebuffer. The
// device is a 8x8 RGB565 framebuffer, row major, native byte order.
type SenseHAT struct {
	fb           frameBuffer
	order        binary.ByteOrder
	clearOnClose bool
	buf          [model.PixelCount * 2]byte
}

func newSenseHAT(fb frameBuffer, clearOnClose bool) *SenseHAT {
	return &SenseHAT{
		fb:           fb,
		order:        binary.LittleEndian,
		clearOnClose: clearOnClose,
	}
}

// Encode packs f into the framebuffer's byte layout.
func (s *SenseHAT) Encode(f model.Frame) []byte {
	for i, c := range f {
		s.order.PutUint16(s.buf[i*2:], c.ToRGB565())
	}
	return s.buf[:]
}

func (s *SenseHAT) Push(f model.Frame) error {
	if s.fb == nil {
		return ErrClosed
	}
	if _, err := s.fb.WriteAt(s.Encode(f), 0); err != nil {
		return fmt.Errorf("sensehat write: %w", err)
	}
	return nil
}

func (s *SenseHAT) Close() error {
	if s.fb == nil {
		return nil
	}
	var err error
	if s.clearOnClose {
		var blank model.Frame
		_, err = s.fb.WriteAt(s.Encode(blank), 0)
	}
	if cerr := s.fb.Close(); err == nil {
		err = cerr
	}
	s.fb = nil
	return err
}
