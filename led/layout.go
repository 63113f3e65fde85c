package led

import (
	"image"

	"github.com/coreman2200/funtimes-ledpaint/model"
)

// Layout describes how a strip is wired through the 8x8 panel.
type Layout struct {
	// XFlipEveryRow is set for serpentine panels where odd rows run right to left.
	XFlipEveryRow bool
	// YFlip puts the first LED on the bottom row.
	YFlip bool
}

// Index maps grid x,y to the LED's position on the strip.
func (l Layout) Index(x, y int) int {
	if l.YFlip {
		y = model.GridSize - 1 - y
	}
	if l.XFlipEveryRow && y%2 == 1 {
		x = model.GridSize - 1 - x
	}
	return y*model.GridSize + x
}

// Strip reorders a frame into wiring order.
func (l Layout) Strip(f model.Frame) model.Frame {
	var out model.Frame
	for i, c := range f {
		out[l.Index(i%model.GridSize, i/model.GridSize)] = c
	}
	return out
}

// stripImage lays f out as a single row, the shape of strip drawers.
func stripImage(f model.Frame) *image.NRGBA {
	im := image.NewNRGBA(image.Rect(0, 0, model.PixelCount, 1))
	for x, c := range f {
		im.SetNRGBA(x, 0, c.ToNRGBA())
	}
	return im
}
