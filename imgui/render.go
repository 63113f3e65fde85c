package imgui

import (
	"image"
	"image/color"

	"github.com/AllenDang/giu"
)

// canvas draws through the current window's imgui draw list. It is only
// valid inside a giu.Custom builder.
type canvas struct {
	bounds image.Rectangle
	c      *giu.Canvas
}

func newCanvas(w, h int) *canvas {
	return &canvas{
		bounds: image.Rect(0, 0, w, h),
		c:      giu.GetCanvas(),
	}
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}

func (r *canvas) Bounds() image.Rectangle {
	return r.bounds
}

func (r *canvas) Fill(c color.Color) {
	r.FillRect(r.bounds, c)
}

func (r *canvas) FillRect(rect image.Rectangle, c color.Color) {
	r.c.AddRectFilled(rect.Min, rect.Max, rgba(c), 0, 0)
}

func (r *canvas) FillCircle(center image.Point, radius int, c color.Color) {
	r.c.AddCircleFilled(center, float32(radius), rgba(c))
}
