// cmd/termgame/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"card-tower-defense/internal/app"
	"card-tower-defense/internal/clock"
	"card-tower-defense/internal/config"
	"card-tower-defense/internal/deck"
	"card-tower-defense/internal/telemetry"
	"card-tower-defense/internal/termui"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outputDir := flag.String("out", "", "Directory for round CSV and config snapshot (overrides telemetry.dir)")
	seed := flag.Int64("seed", 0, "Card RNG seed (0 = time-based)")
	sound := flag.Bool("sound", false, "Play sound cues")
	logFile := flag.String("log", "termgame.log", "Log file (the terminal is taken by the game)")
	flag.Parse()

	if err := run(*configPath, *outputDir, *seed, *sound, *logFile); err != nil {
		slog.Error("termgame failed", "error", err)
		os.Exit(1)
	}
}

func run(configPath, outputDir string, seed int64, sound bool, logPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logOut, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	defer logOut.Close()
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: cfg.Derived.LogLevel})))

	if outputDir != "" {
		cfg.Telemetry.Dir = outputDir
	}
	om, err := telemetry.NewOutputManager(cfg.Telemetry.Dir)
	if err != nil {
		return err
	}
	defer om.Close()
	if err := om.WriteConfig(cfg); err != nil {
		slog.Warn("failed to write config snapshot", "error", err)
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	driver := clock.New(cfg.Derived.TickDuration, cfg.Derived.VisualDuration)
	game, err := app.NewGame(cfg, deck.New(seed), app.WithTelemetry(om), app.WithTimeControl(driver))
	if err != nil {
		return err
	}

	if sound {
		cues, err := termui.NewCues()
		if err != nil {
			slog.Warn("audio unavailable", "error", err)
		}
		defer cues.Close()
		cues.Subscribe(game.EventDispatcher)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.EnableMouse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("starting", "seed", seed, "session", game.Session(), "output", om.Dir())
	err = termui.Run(ctx, screen, game, driver)
	slog.Info("session ended", "ticks", game.Ticks(), "outcome", game.Outcome())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
