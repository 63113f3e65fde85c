// Package imgui is the desktop frontend: a fixed size giu window that polls
// pointer and keyboard each frame and drives the app.
package imgui

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AllenDang/giu"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-ledpaint/app"
	"github.com/coreman2200/funtimes-ledpaint/widget"
)

const Title = "LED Paint"

type IMWindow struct {
	Win  *giu.MasterWindow
	app  *app.App
	fps  int
	down bool
}

func NewIMWindow(a *app.App, fps int) *IMWindow {
	if fps <= 0 {
		fps = app.DFLT_FPS
	}
	return &IMWindow{
		Win: giu.NewMasterWindow(Title, app.WinWidth, app.WinHeight, giu.MasterWindowFlagsNotResizable),
		app: a,
		fps: fps,
	}
}

// poll samples the pointer and keyboard, turning button edges into events.
func (w *IMWindow) poll() app.Input {
	down := giu.IsMouseDown(giu.MouseButtonLeft)
	in := app.Input{
		Pointer: widget.Pointer{Pos: giu.GetMousePos(), Primary: down},
		Clear:   giu.IsKeyDown(giu.KeySpace),
	}
	if giu.IsMouseClicked(giu.MouseButtonLeft) || (down && !w.down) {
		in.Events = append(in.Events, app.Event{Kind: app.PointerDown})
	}
	if giu.IsMouseReleased(giu.MouseButtonLeft) || (!down && w.down) {
		in.Events = append(in.Events, app.Event{Kind: app.PointerUp})
	}
	w.down = down
	return in
}

func (w *IMWindow) loop() {
	in := w.poll()
	giu.SingleWindow().Layout(
		giu.Custom(func() {
			// push failures are logged by the app and retried next frame
			_ = w.app.Step(in, newCanvas(app.WinWidth, app.WinHeight))
			if !w.app.Running() {
				w.Win.SetShouldClose(true)
			}
		}),
	)
}

// refresh keeps frames coming while the user is idle so held keys are seen.
func (w *IMWindow) refresh(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(w.fps))
	defer ticker.Stop()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)

	for {
		select {
		case <-ticker.C:
			giu.Update()

		case sig := <-c:
			log.Info().Str("signal", sig.String()).Msg("closing window")
			w.Win.SetShouldClose(true)
			giu.Update()

		case <-ctx.Done():
			return
		}
	}
}

// Start runs the window until it is closed, then stops the app.
func (w *IMWindow) Start(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go w.refresh(ctx)

	w.Win.Run(w.loop)

	if w.app.Running() {
		_ = w.app.Step(app.Input{Events: []app.Event{{Kind: app.Quit}}}, nil)
	}
}
