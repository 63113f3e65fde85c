package led

import (
	"fmt"
	"image"

	"periph.io/x/devices/v3/screen1d"

	"github.com/coreman2200/funtimes-ledpaint/model"
)

// Console prints each pushed frame as a row of ANSI coloured cells, for
// trying the app on machines without a matrix attached.
type Console struct {
	dev *screen1d.Dev
}

func NewConsole() *Console {
	return &Console{
		dev: screen1d.New(&screen1d.Opts{X: model.PixelCount}),
	}
}

func (c *Console) Push(f model.Frame) error {
	if c.dev == nil {
		return ErrClosed
	}
	if err := c.dev.Draw(c.dev.Bounds(), stripImage(f), image.Point{}); err != nil {
		return fmt.Errorf("console draw: %w", err)
	}
	return nil
}

func (c *Console) Close() error {
	if c.dev == nil {
		return nil
	}
	err := c.dev.Halt()
	c.dev = nil
	return err
}
