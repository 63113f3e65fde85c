// Package app wires the pixel grid, the colour sliders and the LED driver into
// the per-frame update, render and push cycle.
package app

import (
	"image"

	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-ledpaint/led"
	"github.com/coreman2200/funtimes-ledpaint/model"
	"github.com/coreman2200/funtimes-ledpaint/widget"
)

const (
	WinWidth  = 424
	WinHeight = 600

	sliderX      = 12
	sliderWidth  = 400
	sliderHeight = 60
)

type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

type EventKind int

const (
	PointerDown EventKind = iota
	PointerUp
	Quit
)

type Event struct {
	Kind EventKind
}

// Input is everything a frontend collected since the previous frame.
type Input struct {
	Events  []Event
	Pointer widget.Pointer
	// Clear is set while the clear key (space) is held.
	Clear bool
}

type Options struct {
	TileSize int
	Brush    model.RGB
}

// App is the paint application. All methods are called from one goroutine.
type App struct {
	state   State
	pressed bool

	grid    *model.Grid
	sliders [3]*widget.Slider

	drv         led.Driver
	last        model.Frame
	pushed      bool
	pushFailing bool
	pushes      int
}

func New(drv led.Driver, o Options) *App {
	if o.TileSize <= 0 {
		o.TileSize = model.DFLT_TILE_SIZE
	}
	grid, sliders := layout(o.TileSize)
	if !fits(grid, sliders) {
		log.Warn().Int("tile_size", o.TileSize).Int("default", model.DFLT_TILE_SIZE).
			Msg("tile size does not fit the window; using default")
		grid, sliders = layout(model.DFLT_TILE_SIZE)
	}

	a := &App{
		state:   Running,
		grid:    grid,
		sliders: sliders,
		drv:     drv,
	}
	a.sliders[0].SetValue(o.Brush.R)
	a.sliders[1].SetValue(o.Brush.G)
	a.sliders[2].SetValue(o.Brush.B)

	return a
}

// layout places the grid and the three sliders beneath it for a tile size.
func layout(tileSize int) (*model.Grid, [3]*widget.Slider) {
	var sliders [3]*widget.Slider
	grid := model.NewGrid(tileSize)

	t := grid.TileSize()
	ys := [3]int{t*7 + 64, t*7 + 4 + sliderHeight*2, t*7 + 4 + sliderHeight*3}
	for i, ch := range []widget.Channel{widget.Red, widget.Green, widget.Blue} {
		r := image.Rect(sliderX, ys[i], sliderX+sliderWidth, ys[i]+sliderHeight)
		sliders[i] = widget.NewSlider(r, ch)
	}
	return grid, sliders
}

// fits reports whether every tile and slider lies inside the window.
func fits(g *model.Grid, sliders [3]*widget.Slider) bool {
	win := image.Rect(0, 0, WinWidth, WinHeight)
	if !g.Bounds().In(win) {
		return false
	}
	for _, s := range sliders {
		if !s.Rect().In(win) {
			return false
		}
	}
	return true
}

func (a *App) State() State {
	return a.state
}

func (a *App) Running() bool {
	return a.state == Running
}

func (a *App) Grid() *model.Grid {
	return a.grid
}

func (a *App) Slider(c widget.Channel) *widget.Slider {
	return a.sliders[c]
}

// Pushes counts frames written to the driver.
func (a *App) Pushes() int {
	return a.pushes
}

// Color is the brush colour picked on the sliders.
func (a *App) Color() model.RGB {
	return model.RGB{
		R: a.sliders[widget.Red].Value(),
		G: a.sliders[widget.Green].Value(),
		B: a.sliders[widget.Blue].Value(),
	}
}

func (a *App) dispatch(e Event) {
	switch e.Kind {
	case Quit:
		a.state = Stopped
	case PointerDown:
		a.pressed = true
	case PointerUp:
		a.pressed = false
	}
}

// Frame handles input, updates widgets and paints, then renders to c.
func (a *App) Frame(in Input, c widget.Canvas) {
	for _, e := range in.Events {
		a.dispatch(e)
	}

	for _, s := range a.sliders {
		s.Update(in.Pointer)
	}
	if in.Clear {
		a.grid.Clear()
	}
	if a.pressed {
		a.grid.PaintAt(in.Pointer.Pos, a.Color())
	}

	if c != nil {
		a.Render(c)
	}
}

func (a *App) Render(c widget.Canvas) {
	c.Fill(a.Color())
	for i := 0; i < model.PixelCount; i++ {
		c.FillRect(a.grid.Rect(i), a.grid.At(i))
	}
	for _, s := range a.sliders {
		s.Render(c)
	}
}

// Flush pushes the grid to the driver if it changed since the last
// successful push. A failed push is retried on the next call.
func (a *App) Flush() error {
	if a.drv == nil {
		return led.ErrClosed
	}
	f := a.grid.Frame()
	if a.pushed && f == a.last {
		return nil
	}
	if err := a.drv.Push(f); err != nil {
		if !a.pushFailing {
			log.Error().Err(err).Msg("led push failed")
		}
		a.pushFailing = true
		return err
	}
	if a.pushFailing {
		log.Info().Msg("led push recovered")
	}
	a.pushFailing = false
	a.last = f
	a.pushed = true
	a.pushes++
	return nil
}

// Step runs one whole frame.
func (a *App) Step(in Input, c widget.Canvas) error {
	a.Frame(in, c)
	return a.Flush()
}

// Close stops the app and releases the driver.
func (a *App) Close() error {
	a.state = Stopped
	if a.drv == nil {
		return nil
	}
	err := a.drv.Close()
	a.drv = nil
	return err
}
