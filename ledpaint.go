package main

import (
	"context"
	"errors"
	"flag"
	"image/png"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-ledpaint/app"
	"github.com/coreman2200/funtimes-ledpaint/config"
	"github.com/coreman2200/funtimes-ledpaint/imgui"
	"github.com/coreman2200/funtimes-ledpaint/led"
	"github.com/coreman2200/funtimes-ledpaint/model"
)

const snapshotScale = 32

func main() {
	// ---- Flags (config.yaml overrides them where set) ----
	var (
		configPath  = flag.String("config", "config.yaml", "path to config.yaml")
		driver      = flag.String("driver", "sensehat", "driver: sensehat | matrix | console | sim")
		frontend    = flag.String("frontend", "window", "frontend: window | headless")
		script      = flag.String("script", "", "headless input script (yaml)")
		fps         = flag.Int("fps", app.DFLT_FPS, "target frames per second")
		brightness  = flag.Float64("brightness", 1.0, "matrix brightness 0..1")
		logLevel    = flag.String("log-level", "info", "log level")
		strict      = flag.Bool("strict", false, "fail instead of falling back to sim when the driver cannot open")
		writeConfig = flag.String("write-config", "", "write the effective config to this path and exit")
		snapshot    = flag.String("snapshot", "", "write the final LED frame as a png")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// ---- Effective config ----
	cfg := &config.Config{
		Driver:     *driver,
		Frontend:   *frontend,
		Script:     *script,
		FPS:        *fps,
		Brightness: *brightness,
		LogLevel:   *logLevel,
		TileSize:   model.DFLT_TILE_SIZE,
		Snapshot:   *snapshot,
	}
	if c, err := config.Load(*configPath); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Warn().Err(err).Msg("config load failed; proceeding with flags")
		}
	} else {
		cfg.Override(c)
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("unknown log level; using info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	if *writeConfig != "" {
		if err := config.Save(*writeConfig, cfg); err != nil {
			log.Fatal().Err(err).Str("path", *writeConfig).Msg("write config")
		}
		log.Info().Str("path", *writeConfig).Msg("config written")
		return
	}

	brush := model.Black
	if cfg.Brush != "" {
		if brush, err = model.ParseRGB(cfg.Brush); err != nil {
			log.Warn().Err(err).Msg("ignoring brush")
		}
	}

	// read the script before claiming the driver
	src, err := loadSource(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("load script")
	}

	drv := openDriver(cfg, *strict)
	a := app.New(drv, app.Options{TileSize: cfg.TileSize, Brush: brush})
	defer func() {
		if err := a.Close(); err != nil {
			log.Warn().Err(err).Msg("driver close")
		}
	}()

	ctx := context.Background()
	log.Info().Str("driver", cfg.Driver).Str("frontend", cfg.Frontend).Int("fps", cfg.FPS).Msg("starting")

	switch cfg.Frontend {
	case "headless":
		app.NewLooper(a, src, cfg.FPS).Run(ctx)

	default:
		imgui.NewIMWindow(a, cfg.FPS).Start(ctx)
	}

	if cfg.Snapshot != "" {
		if err := writeSnapshot(cfg.Snapshot, a.Grid().Frame()); err != nil {
			log.Warn().Err(err).Msg("snapshot")
		} else {
			log.Info().Str("path", cfg.Snapshot).Msg("snapshot written")
		}
	}
	log.Info().Int("pushes", a.Pushes()).Msg("stopped")
}

func openDriver(cfg *config.Config, strict bool) led.Driver {
	var (
		drv led.Driver
		err error
	)
	switch cfg.Driver {
	case "sim":
		return led.NewSim()

	case "console":
		return led.NewConsole()

	case "sensehat":
		drv, err = led.OpenSenseHAT(cfg.SenseHAT.Dev, cfg.ClearOnClose())

	case "matrix":
		drv, err = led.OpenMatrix(led.MatrixOpts{
			Port: cfg.Matrix.Port,
			Layout: led.Layout{
				XFlipEveryRow: cfg.Matrix.XFlipEveryRow,
				YFlip:         cfg.Matrix.YFlip,
			},
			Brightness: cfg.Brightness,
			Power: led.Power{
				WhiteCap: cfg.Power.WhiteCap,
				ChanMA:   cfg.Power.ChanMA,
				BudgetMA: cfg.Power.LimitMA,
				Knee:     cfg.Power.Knee,
			},
		})

	default:
		log.Warn().Str("driver", cfg.Driver).Msg("unknown driver; using SIM")
		return led.NewSim()
	}

	if err != nil {
		if strict {
			log.Fatal().Err(err).Str("driver", cfg.Driver).Msg("driver init failed")
		}
		log.Warn().Err(err).Str("driver", cfg.Driver).Msg("driver init failed; falling back to SIM")
		return led.NewSim()
	}
	return drv
}

// loadSource picks the headless input: the configured script, or idle input
// until a signal arrives.
func loadSource(cfg *config.Config) (app.Source, error) {
	if cfg.Frontend != "headless" || cfg.Script == "" {
		return app.Idle{}, nil
	}
	s, err := app.LoadScript(cfg.Script)
	if err != nil {
		return nil, err
	}
	return s, nil
}

func writeSnapshot(path string, f model.Frame) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(out, f.Scaled(snapshotScale)); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
