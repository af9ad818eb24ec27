package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/lixenwraith/arpg/audio"
	"github.com/lixenwraith/arpg/bridge"
	"github.com/lixenwraith/arpg/config"
	"github.com/lixenwraith/arpg/core"
	"github.com/lixenwraith/arpg/engine"
	"github.com/lixenwraith/arpg/logging"
	"github.com/lixenwraith/arpg/scene"
	"github.com/lixenwraith/arpg/system"
	"github.com/lixenwraith/arpg/viewer"
)

var (
	configFlag   = flag.String("config", "", "Config file (toml, yaml or json)")
	debugFlag    = flag.Bool("debug", false, "Write debug log to logs/arpg.log")
	listenFlag   = flag.String("listen", "", "Websocket bridge address, overrides bridge.listen")
	headlessFlag = flag.Bool("headless", false, "Run without terminal viewer (bridge only)")
	muteFlag     = flag.Bool("mute", false, "Disable audio cues")
)

func main() {
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "arpg: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return err
	}
	if *listenFlag != "" {
		cfg.Bridge.Listen = *listenFlag
	}
	if *headlessFlag && cfg.Bridge.Listen == "" {
		return errors.New("headless mode needs -listen or bridge.listen")
	}

	logger, logCloser, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer logCloser.Close()

	// Terminal first so a crash anywhere can restore it
	var screen tcell.Screen
	if !*headlessFlag {
		screen, err = tcell.NewScreen()
		if err != nil {
			return fmt.Errorf("failed to create screen: %w", err)
		}
		if err := screen.Init(); err != nil {
			return fmt.Errorf("failed to initialize terminal: %w", err)
		}
		defer screen.Fini()
		core.SetCrashReset(screen.Fini)
	}
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	game := engine.NewGameContext(logger)
	sc, err := scene.Setup(game.World, scene.Options{CameraOffset: cfg.CameraOffset(), Floor: true})
	if err != nil {
		return fmt.Errorf("scene setup: %w", err)
	}
	logger.Info().Uint64("player", uint64(sc.Player)).Uint64("camera", uint64(sc.Camera)).Int("tiles", len(sc.Floor)).Msg("scene ready")

	game.AddSystem(system.NewDestinationSystem(game))
	game.AddSystem(system.NewCameraSystem(game))
	game.AddSystem(system.NewMotionSystem(game, cfg.MotionParams()))

	sounds := audio.NewSoundManager()
	sounds.SetMuted(*muteFlag || !cfg.Audio.Enabled)
	if !sounds.Muted() {
		if err := sounds.Initialize(); err != nil {
			// Non-fatal, game runs without sound
			logger.Warn().Err(err).Msg("audio initialization failed")
		}
	}
	defer sounds.Cleanup()
	game.AddSystem(audio.NewCueSystem(game, sounds))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	if cfg.Bridge.Listen != "" {
		hub := bridge.NewHub(game)
		game.AddSystem(bridge.NewSnapshotSystem(game, hub))
		srv := &http.Server{Addr: cfg.Bridge.Listen, Handler: hub.Handler()}

		g.Go(func() error {
			logger.Info().Str("addr", srv.Addr).Msg("bridge listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("bridge: %w", err)
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			hub.Close()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	// All systems are registered before the first frame
	scheduler := engine.NewClockScheduler(game, engine.NewTimeProvider(), cfg.Engine.FPS, cfg.Engine.MaxDelta)
	g.Go(func() error {
		return scheduler.Run(gctx)
	})

	if screen != nil {
		v := viewer.New(screen, game)
		g.Go(func() error {
			return v.Run(gctx)
		})
	}

	err = g.Wait()
	logger.Info().Interface("status", game.Status.Snapshot()).Msg("shutdown")
	if errors.Is(err, viewer.ErrQuit) {
		return nil
	}
	return err
}

func setupLogging(cfg *config.Config) (zerolog.Logger, io.Closer, error) {
	opt := logging.Options{
		Level:      cfg.Log.Level,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
	}
	if *debugFlag {
		opt.Level = "debug"
		if opt.File == "" {
			opt.File = logging.DebugFile()
		}
	}
	if *headlessFlag && opt.File == "" {
		opt.Console = os.Stderr
	}
	return logging.Setup(opt)
}
