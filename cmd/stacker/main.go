package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/lixenwraith/stacker/camera"
	"github.com/lixenwraith/stacker/core"
	"github.com/lixenwraith/stacker/engine"
	"github.com/lixenwraith/stacker/input"
	"github.com/lixenwraith/stacker/render"
	"github.com/lixenwraith/stacker/settings"
	"github.com/lixenwraith/stacker/status"
	"github.com/lixenwraith/stacker/tower"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "stacker: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		return err
	}

	logger, closeLog, err := setupLogging(cfg.Debug, cfg.LogDir)
	if err != nil {
		return err
	}
	defer closeLog()

	s, err := settings.Load(cfg.SettingsPath)
	if err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	metrics, err := status.NewRegistry(prometheus.DefaultRegisterer)
	if err != nil {
		return fmt.Errorf("metrics: %w", err)
	}
	if cfg.MetricsAddr != "" {
		serveMetrics(cfg.MetricsAddr, logger)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()
	core.SetCrashTerminal(screen)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	screen.EnableMouse(tcell.MouseButtonEvents)
	screen.HideCursor()

	follower := camera.NewFollower(s.Camera)
	pool := tower.NewPool(s.Height())
	game, err := tower.NewEngine(s, tower.Deps{
		Pool:      pool,
		Camera:    follower,
		Scheduler: engine.NewScheduler(logger),
		Recorder:  metrics,
		Logger:    logger,
	})
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	clock := engine.NewPausableClock(nil)
	renderer := render.NewTowerRenderer(screen)
	draw := func() {
		renderer.Draw(render.Frame{
			Blocks:  pool.Snapshot(),
			State:   game.Snapshot(),
			Camera:  follower.Position(),
			MaxSize: s.FootprintMax(),
			Height:  s.Height(),
			Paused:  clock.IsPaused(),
		})
	}

	loop := engine.NewLoop(clock, cfg.TickRate, func(dt time.Duration) {
		game.OnFrameTick(dt)
		follower.Update(dt)
		draw()
	}, logger)

	machine := input.NewMachine()
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			intent := machine.Process(ev)
			if intent == input.IntentNone {
				continue
			}
			if intent == input.IntentQuit {
				cancel()
				return
			}
			loop.Post(func() { dispatch(intent, game, clock, screen, draw, logger) })
		}
	})

	logger.Info("stacker started",
		zap.String("settings", cfg.SettingsPath),
		zap.Duration("tick", cfg.TickRate))

	err = loop.Run(ctx)
	logger.Info("stacker stopped", zap.Uint64("ticks", loop.TickCount()), zap.Uint64("dropped_commands", loop.Dropped()))
	return err
}

// dispatch applies one intent on the loop goroutine
func dispatch(intent input.IntentType, game *tower.Engine, clock *engine.PausableClock, screen tcell.Screen, draw func(), logger *zap.Logger) {
	switch intent {
	case input.IntentBegin:
		if !clock.IsPaused() {
			game.OnInputBegin()
		}
	case input.IntentEnd:
		// Applied even while paused, the machine has already released the press
		if err := game.OnInputEnd(); err != nil {
			if errors.Is(err, tower.ErrNoBlockInProgress) {
				logger.Debug("input end without block in progress", zap.Error(err), zap.Bool("paused", clock.IsPaused()))
			} else {
				logger.Warn("input end rejected", zap.Error(err))
			}
		}
	case input.IntentPause:
		paused := clock.Toggle()
		logger.Debug("pause toggled", zap.Bool("paused", paused))
		draw()
	case input.IntentResize:
		screen.Sync()
		draw()
	}
}

func serveMetrics(addr string, logger *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	core.Go(func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server stopped", zap.Error(err))
		}
	})
}
