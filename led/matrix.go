package led

import (
	"fmt"
	"image"

	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/devices/v3/nrzled"
	"periph.io/x/host/v3"

	"github.com/coreman2200/funtimes-ledpaint/model"
)

const DFLT_REFRESH_RATE physic.Frequency = 800

// MatrixOpts configures a WS2812 8x8 panel on SPI.
type MatrixOpts struct {
	Port       string
	Layout     Layout
	Brightness float64
	Power      Power
}

// Matrix drives a WS2812 8x8 panel through periph's nrzled SPI encoder.
type Matrix struct {
	drawer display.Drawer
	port   spi.PortCloser
	opts   MatrixOpts
	closed bool
}

// OpenMatrix initialises the host drivers and opens the SPI port by name;
// an empty name picks the first port found.
func OpenMatrix(o MatrixOpts) (*Matrix, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("host init: %w", err)
	}
	p, err := spireg.Open(o.Port)
	if err != nil {
		return nil, fmt.Errorf("open spi port %q: %w", o.Port, err)
	}
	m, err := NewMatrix(p, o)
	if err != nil {
		_ = p.Close()
		return nil, err
	}
	m.port = p
	return m, nil
}

// NewMatrix wraps an already opened SPI port.
func NewMatrix(p spi.Port, o MatrixOpts) (*Matrix, error) {
	opts := nrzled.Opts{
		NumPixels: model.PixelCount,
		Channels:  3,
		Freq:      ((DFLT_REFRESH_RATE * 3) + 100) * physic.KiloHertz,
	}
	d, err := nrzled.NewSPI(p, &opts)
	if err != nil {
		return nil, fmt.Errorf("nrzled: %w", err)
	}
	if o.Brightness <= 0 || o.Brightness > 1 {
		o.Brightness = 1
	}
	return &Matrix{drawer: d, opts: o}, nil
}

func (m *Matrix) String() string {
	return m.drawer.String()
}

// Strip returns the frame as the 1 pixel high strip image sent to the panel,
// in wiring order with brightness and power limits applied.
func (m *Matrix) Strip(f model.Frame) *image.NRGBA {
	for i, c := range f {
		f[i] = c.Scale(m.opts.Brightness)
	}
	f = m.opts.Power.Limit(f)
	return stripImage(m.opts.Layout.Strip(f))
}

func (m *Matrix) Push(f model.Frame) error {
	if m.closed {
		return ErrClosed
	}
	if err := m.drawer.Draw(m.drawer.Bounds(), m.Strip(f), image.Point{}); err != nil {
		return fmt.Errorf("matrix draw: %w", err)
	}
	return nil
}

// Close blanks the panel and releases the port.
func (m *Matrix) Close() error {
	if m.closed {
		return nil
	}
	m.closed = true
	err := m.drawer.Halt()
	if m.port != nil {
		if cerr := m.port.Close(); err == nil {
			err = cerr
		}
	}
	return err
}
