package widget

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// ImageCanvas renders into an in-memory RGBA image. It backs the headless
// frontend and the tests.
type ImageCanvas struct {
	*image.RGBA
}

func NewImageCanvas(w, h int) *ImageCanvas {
	return &ImageCanvas{RGBA: image.NewRGBA(image.Rect(0, 0, w, h))}
}

func (c *ImageCanvas) Fill(col color.Color) {
	draw.Draw(c.RGBA, c.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *ImageCanvas) FillRect(r image.Rectangle, col color.Color) {
	r = r.Intersect(c.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(c.RGBA, r, image.NewUniform(col), image.Point{}, draw.Over)
}

// FillCircle fills every pixel whose centre lies within radius of center.
func (c *ImageCanvas) FillCircle(center image.Point, radius int, col color.Color) {
	if radius <= 0 {
		return
	}
	rr := radius * radius
	src := image.NewUniform(col)
	for dy := -radius; dy <= radius; dy++ {
		// widest dx on this row
		dx := 0
		for (dx+1)*(dx+1)+dy*dy <= rr {
			dx++
		}
		row := image.Rect(center.X-dx, center.Y+dy, center.X+dx+1, center.Y+dy+1)
		row = row.Intersect(c.Bounds())
		if row.Empty() {
			continue
		}
		draw.Draw(c.RGBA, row, src, image.Point{}, draw.Over)
	}
}
