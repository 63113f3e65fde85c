package led

import (
	"math"

	"github.com/coreman2200/funtimes-ledpaint/model"
)

// Power bounds what a frame may draw from the supply.
//
//   - WhiteCap: per-LED cap on R+G+B in linear 0..3 units; 0 or >=3 disables it
//   - ChanMA: current of one channel at full scale, WS2812 is about 20mA
//   - BudgetMA: global budget; 0 disables the global stage
//   - Knee: fraction of the budget where soft limiting starts
type Power struct {
	WhiteCap float64
	ChanMA   float64
	BudgetMA float64
	Knee     float64
}

// Current estimates the frame's draw in mA.
func (p Power) Current(f model.Frame) float64 {
	chanmA := p.ChanMA
	if chanmA <= 0 {
		chanmA = 20
	}
	total := 0.0
	for _, c := range f {
		total += (float64(c.R) + float64(c.G) + float64(c.B)) / 255 * chanmA
	}
	return total
}

// Limit applies the white cap and then scales the whole frame so its
// estimated current stays under the budget. Above Knee*BudgetMA the current
// is compressed smoothly toward the budget instead of clipped.
func (p Power) Limit(f model.Frame) model.Frame {
	if p.WhiteCap > 0 && p.WhiteCap < 3 {
		for i, c := range f {
			s := (float64(c.R) + float64(c.G) + float64(c.B)) / 255
			if s > p.WhiteCap {
				f[i] = c.Scale(p.WhiteCap / s)
			}
		}
	}

	if p.BudgetMA <= 0 {
		return f
	}
	total := p.Current(f)
	knee := p.Knee
	if knee <= 0 || knee >= 1 {
		knee = 0.9
	}
	start := knee * p.BudgetMA
	if total <= start {
		return f
	}

	span := p.BudgetMA - start
	target := start + span*(1-math.Exp(-(total-start)/span))
	s := target / total
	for i, c := range f {
		f[i] = c.Scale(s)
	}
	return f
}
