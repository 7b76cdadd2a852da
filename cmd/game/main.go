// cmd/game/main.go
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"card-tower-defense/internal/app"
	"card-tower-defense/internal/clock"
	"card-tower-defense/internal/config"
	"card-tower-defense/internal/deck"
	"card-tower-defense/internal/render"
	"card-tower-defense/internal/state"
	"card-tower-defense/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
)

// pollRate is how often ebiten calls Update; the driver decides which calls
// run a gameplay tick.
const pollRate = 240

type AppGame struct {
	stateMachine *state.StateMachine
	width        int
	height       int
}

func (a *AppGame) Update() error {
	return a.stateMachine.Update()
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.width, a.height
}

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	outputDir := flag.String("out", "", "Directory for round CSV and config snapshot (overrides telemetry.dir)")
	seed := flag.Int64("seed", 0, "Card RNG seed (0 = time-based)")
	skipMenu := flag.Bool("skip-menu", false, "Start directly in the game")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Derived.LogLevel})))

	if *outputDir != "" {
		cfg.Telemetry.Dir = *outputDir
	}
	om, err := telemetry.NewOutputManager(cfg.Telemetry.Dir)
	if err != nil {
		slog.Error("failed to create output", "error", err)
		os.Exit(1)
	}
	defer om.Close()
	if err := om.WriteConfig(cfg); err != nil {
		slog.Warn("failed to write config snapshot", "error", err)
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	driver := clock.New(cfg.Derived.TickDuration, cfg.Derived.VisualDuration)
	game, err := app.NewGame(cfg, deck.New(rngSeed), app.WithTelemetry(om), app.WithTimeControl(driver))
	if err != nil {
		slog.Error("failed to create game", "error", err)
		os.Exit(1)
	}
	slog.Info("starting", "seed", rngSeed, "session", game.Session(), "output", om.Dir())

	sm := state.NewStateMachine()
	gs := state.NewGameState(sm, game, driver, render.NewGridRenderer(cfg.Screen.Width, cfg.Screen.Height))
	if *skipMenu {
		sm.SetState(gs)
	} else {
		sm.SetState(state.NewMenuState(sm, gs))
	}

	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle("Card Tower Defense")
	ebiten.SetTPS(pollRate)
	err = ebiten.RunGame(&AppGame{stateMachine: sm, width: cfg.Screen.Width, height: cfg.Screen.Height})
	slog.Info("session ended", "ticks", game.Ticks(), "outcome", game.Outcome())
	if err != nil {
		slog.Error("game loop failed", "error", err)
		os.Exit(1)
	}
}
