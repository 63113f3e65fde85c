package led

import (
	"testing"

	"github.com/coreman2200/funtimes-ledpaint/model"
)

func whiteFrame() model.Frame {
	var f model.Frame
	for i := range f {
		f[i] = model.White
	}
	return f
}

func TestLimiterBudgetClamp(t *testing.T) {
	f := whiteFrame()
	p := Power{ChanMA: 20, BudgetMA: 1000, Knee: 0.9}

	// 64 white LEDs at 60mA each
	if cur := p.Current(f); cur < 3839 || cur > 3841 {
		t.Fatalf("expected 3840mA before limit, got %.2f", cur)
	}
	f = p.Limit(f)
	if cur := p.Current(f); cur > 1000 {
		t.Fatalf("expected <= 1000mA after limit, got %.2f mA", cur)
	}
	if f[0] != f[63] {
		t.Fatalf("expected uniform scaling, got %v and %v", f[0], f[63])
	}
}

func TestLimiterUnderKneeUntouched(t *testing.T) {
	var f model.Frame
	f[0] = model.White
	p := Power{ChanMA: 20, BudgetMA: 1000, Knee: 0.9}
	if got := p.Limit(f); got != f {
		t.Fatalf("expected frame untouched under knee, got %v", got[0])
	}
}

func TestLimiterSoftKnee(t *testing.T) {
	// 16 white LEDs, 960mA: above the 900mA knee, under the budget
	var f model.Frame
	for i := 0; i < 16; i++ {
		f[i] = model.White
	}
	p := Power{ChanMA: 20, BudgetMA: 1000, Knee: 0.9}
	cur := p.Current(p.Limit(f))
	if cur >= 960 || cur < 900 {
		t.Fatalf("expected soft compression into [900,960), got %.2f", cur)
	}
}

func TestWhiteCap(t *testing.T) {
	f := whiteFrame()
	f = Power{WhiteCap: 1.5}.Limit(f)
	sum := (float64(f[0].R) + float64(f[0].G) + float64(f[0].B)) / 255
	if sum > 1.5001 {
		t.Fatalf("expected sum <= 1.5, got %f", sum)
	}

	var red model.Frame
	red[0] = model.RGB{R: 255}
	if got := (Power{WhiteCap: 1.5}).Limit(red); got[0] != red[0] {
		t.Fatalf("expected saturated red to pass the white cap, got %v", got[0])
	}
}
