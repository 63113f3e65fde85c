package widget

import (
	"image"
	"image/color"
	"math"

	"github.com/coreman2200/funtimes-ledpaint/model"
)

type Channel uint8

const (
	Red Channel = iota
	Green
	Blue
)

func (c Channel) String() string {
	switch c {
	case Red:
		return "r"
	case Green:
		return "g"
	case Blue:
		return "b"
	}
	return "?"
}

// Color is the pure channel colour at intensity v.
func (c Channel) Color(v uint8) model.RGB {
	switch c {
	case Red:
		return model.RGB{R: v}
	case Green:
		return model.RGB{G: v}
	case Blue:
		return model.RGB{B: v}
	}
	return model.Black
}

var sliderBackground = color.RGBA{255, 255, 255, 255}

// Slider is a horizontal control selecting 0-255 for one colour channel.
type Slider struct {
	rect    image.Rectangle
	channel Channel
	p       float64
	rad     int
	pwidth  int
	track   []color.RGBA
}

func NewSlider(r image.Rectangle, c Channel) *Slider {
	s := &Slider{
		rect:    r.Canon(),
		channel: c,
	}
	s.rad = s.rect.Dy() / 2
	s.pwidth = s.rect.Dx() - s.rad*2
	if s.pwidth < 1 {
		s.pwidth = 1
	}

	s.track = make([]color.RGBA, s.pwidth)
	for i := range s.track {
		s.track[i] = c.Color(uint8(255 * i / s.pwidth)).ToRGBA()
	}

	return s
}

func (s *Slider) Channel() Channel {
	return s.channel
}

func (s *Slider) Rect() image.Rectangle {
	return s.rect
}

// Fraction is the knob position in [0,1].
func (s *Slider) Fraction() float64 {
	return s.p
}

// Value is the fraction scaled to 0-255, rounded half away from zero.
func (s *Slider) Value() uint8 {
	return uint8(math.Round(s.p * 255))
}

// SetValue moves the knob to v.
func (s *Slider) SetValue(v uint8) {
	s.p = float64(v) / 255
}

// Update drags the knob when the primary button is held over the slider.
func (s *Slider) Update(p Pointer) bool {
	if !p.Primary || !p.Pos.In(s.rect) {
		return false
	}
	f := float64(p.Pos.X-s.rect.Min.X-s.rad) / float64(s.pwidth)
	s.p = math.Max(0, math.Min(f, 1))
	return true
}

// Knob returns the knob centre for the current fraction.
func (s *Slider) Knob() image.Point {
	x := s.rect.Min.X + s.rad + int(s.p*float64(s.pwidth))
	y := s.rect.Min.Y + s.rect.Dy()/2
	return image.Pt(x, y)
}

func (s *Slider) Render(c Canvas) {
	c.FillRect(s.rect, sliderBackground)

	h := s.rect.Dy()
	top := s.rect.Min.Y + h/3
	bottom := s.rect.Min.Y + h - h/3
	for i, col := range s.track {
		x := s.rect.Min.X + s.rad + i
		c.FillRect(image.Rect(x, top, x+1, bottom), col)
	}

	c.FillCircle(s.Knob(), h/2, s.channel.Color(s.Value()))
}
