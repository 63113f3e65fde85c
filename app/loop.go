package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-ledpaint/widget"
)

const DFLT_FPS = 30

// Looper runs the app without a window: input comes from a Source and frames
// are rendered into an in-memory canvas.
type Looper struct {
	app    *App
	src    Source
	canvas *widget.ImageCanvas
	delta  time.Duration
	frames int
}

func NewLooper(a *App, src Source, fps int) *Looper {
	if fps <= 0 {
		fps = DFLT_FPS
	}
	return &Looper{
		app:    a,
		src:    src,
		canvas: widget.NewImageCanvas(WinWidth, WinHeight),
		delta:  time.Second / time.Duration(fps),
	}
}

// Canvas is the last rendered frame.
func (l *Looper) Canvas() *widget.ImageCanvas {
	return l.canvas
}

func (l *Looper) Frames() int {
	return l.frames
}

// Run steps the app once per tick until it stops. An exhausted source, a
// cancelled context or SIGINT/SIGTERM feed a final Quit frame.
func (l *Looper) Run(ctx context.Context) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(c)

	ticker := time.NewTicker(l.delta)
	defer ticker.Stop()

	for l.app.Running() {
		var in Input
		select {
		case <-ticker.C:
			var ok bool
			if in, ok = l.src.Next(); !ok {
				log.Debug().Int("frames", l.frames).Msg("input source exhausted")
				in.Events = append(in.Events, Event{Kind: Quit})
			}

		case sig := <-c:
			log.Info().Str("signal", sig.String()).Msg("aborting")
			in.Events = []Event{{Kind: Quit}}

		case <-ctx.Done():
			in.Events = []Event{{Kind: Quit}}
		}

		// push errors are logged by the app and retried next frame
		_ = l.app.Step(in, l.canvas)
		l.frames++
	}
}
