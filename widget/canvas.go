// Package widget holds the on-screen controls and the drawing surface they
// render to. Coordinates are window pixels, top-left 0,0.
package widget

import (
	"image"
	"image/color"
)

// Canvas is a surface widgets draw on. Implementations clip to their own
// bounds.
type Canvas interface {
	Bounds() image.Rectangle
	Fill(c color.Color)
	FillRect(r image.Rectangle, c color.Color)
	FillCircle(center image.Point, radius int, c color.Color)
}

// Pointer is the pointer state sampled once per frame.
type Pointer struct {
	Pos     image.Point
	Primary bool
}
