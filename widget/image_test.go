package widget

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageCanvasFill(t *testing.T) {
	c := NewImageCanvas(10, 10)
	c.Fill(color.RGBA{1, 2, 3, 255})
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, c.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{1, 2, 3, 255}, c.RGBAAt(9, 9))
}

func TestImageCanvasFillRectClips(t *testing.T) {
	c := NewImageCanvas(10, 10)
	red := color.RGBA{255, 0, 0, 255}
	c.FillRect(image.Rect(5, 5, 50, 50), red)
	c.FillRect(image.Rect(-20, -20, -10, -10), red)

	assert.Equal(t, red, c.RGBAAt(9, 9))
	assert.Equal(t, red, c.RGBAAt(5, 5))
	assert.Equal(t, color.RGBA{}, c.RGBAAt(4, 4))
}

func TestImageCanvasFillCircle(t *testing.T) {
	c := NewImageCanvas(21, 21)
	blue := color.RGBA{0, 0, 255, 255}
	c.FillCircle(image.Pt(10, 10), 5, blue)

	assert.Equal(t, blue, c.RGBAAt(10, 10))
	assert.Equal(t, blue, c.RGBAAt(15, 10))
	assert.Equal(t, blue, c.RGBAAt(10, 5))
	assert.Equal(t, color.RGBA{}, c.RGBAAt(15, 15), "corner lies outside the radius")
	assert.Equal(t, color.RGBA{}, c.RGBAAt(16, 10))

	// partially off canvas
	c.FillCircle(image.Pt(0, 0), 3, blue)
	assert.Equal(t, blue, c.RGBAAt(0, 0))
	c.FillCircle(image.Pt(0, 0), 0, blue)
}
