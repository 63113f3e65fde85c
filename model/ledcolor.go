package model

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

var (
	White = RGB{255, 255, 255}
	Black = RGB{}
)

// RGB is a single LED colour, one byte per channel.
type RGB struct {
	R, G, B uint8
}

// ParseRGB reads a "#rrggbb" colour.
func ParseRGB(s string) (RGB, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return RGB{}, fmt.Errorf("parse colour %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return RGB{r, g, b}, nil
}

func (c RGB) RGBA() (r, g, b, a uint32) {
	return c.ToNRGBA().RGBA()
}

func (c RGB) ToNRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func (c RGB) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// ToRGB565 packs the colour the way 16 bit framebuffers expect it.
func (c RGB) ToRGB565() uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}

// Scale multiplies every channel by s, s in [0,1].
func (c RGB) Scale(s float64) RGB {
	if s >= 1.0 {
		return c
	}
	if s <= 0 {
		return Black
	}
	return RGB{
		R: uint8(float64(c.R) * s),
		G: uint8(float64(c.G) * s),
		B: uint8(float64(c.B) * s),
	}
}

func (c RGB) String() string {
	return fmt.Sprintf("[%d,%d,%d]", c.R, c.G, c.B)
}

// RGBModel converts any colour to RGB, dropping alpha.
var RGBModel color.Model = color.ModelFunc(rgbModel)

func rgbModel(c color.Color) color.Color {
	if _, ok := c.(RGB); ok {
		return c
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGB{n.R, n.G, n.B}
}
