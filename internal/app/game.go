// internal/app/game.go
package app

import (
	"errors"
	"fmt"
	"log/slog"

	"card-tower-defense/internal/component"
	"card-tower-defense/internal/config"
	"card-tower-defense/internal/defs"
	"card-tower-defense/internal/entity"
	"card-tower-defense/internal/event"
	"card-tower-defense/internal/grid"
	"card-tower-defense/internal/system"
	"card-tower-defense/internal/telemetry"
	"card-tower-defense/internal/types"
	"card-tower-defense/pkg/geom"
)

var (
	ErrNoTile           = errors.New("app: no tile there")
	ErrNoTower          = errors.New("app: no tower on tile")
	ErrInsufficientGold = errors.New("app: not enough gold")
	ErrEntryOccupied    = errors.New("app: entry tile holds a tower")
	ErrQuit             = errors.New("app: quit requested")
)

// CardSource supplies the tower kind of each newly drawn card.
type CardSource interface {
	Draw() defs.TowerKind
}

// TimeControl is the frame driver's developer controls.
type TimeControl interface {
	Slower()
	Faster()
	ToggleUncapped()
}

// Game holds one play session: grid, actors, player, and round scheduler.
// It is not safe for concurrent use.
type Game struct {
	Config          *config.Config
	Grid            *grid.Grid
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Library         defs.TowerLibrary
	Player          component.PlayerInfo

	UnitSystem       *system.UnitSystem
	TowerSystem      *system.TowerSystem
	ProjectileSystem *system.ProjectileSystem
	RoundSystem      *system.RoundSystem

	Hand *Hand

	cards     CardSource
	timeCtl   TimeControl
	collector *telemetry.Collector
	output    *telemetry.OutputManager

	pointer geom.Vec
	hover   grid.TileID
	ticks   int
}

// Option configures optional collaborators of a Game.
type Option func(*Game)

// WithTelemetry records per-round statistics to om. A nil om keeps
// statistics in memory only.
func WithTelemetry(om *telemetry.OutputManager) Option {
	return func(g *Game) { g.output = om }
}

// WithTimeControl routes the time-scale keys to tc.
func WithTimeControl(tc TimeControl) Option {
	return func(g *Game) { g.timeCtl = tc }
}

// NewGame builds a session from cfg. cards fills and refills the hand.
func NewGame(cfg *config.Config, cards CardSource, opts ...Option) (*Game, error) {
	if cards == nil {
		return nil, fmt.Errorf("failed to create game: nil card source")
	}
	lib, err := defs.NewTowerLibrary(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	screen := geom.Vec{X: float64(cfg.Screen.Width), Y: float64(cfg.Screen.Height)}
	origin := geom.Vec{X: cfg.Grid.OriginX * screen.X, Y: cfg.Grid.OriginY * screen.Y}
	size := geom.Vec{X: cfg.Grid.Width * screen.X, Y: cfg.Grid.Height * screen.Y}
	g0, err := grid.New(origin, size, cfg.Grid.Rows, cfg.Grid.Cols)
	if err != nil {
		return nil, fmt.Errorf("failed to create grid: %w", err)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	g := &Game{
		Config:          cfg,
		Grid:            g0,
		ECS:             ecs,
		EventDispatcher: eventDispatcher,
		Library:         lib,
		Player:          component.PlayerInfo{Health: cfg.Player.Health, Gold: cfg.Player.Gold},
		cards:           cards,
		collector:       telemetry.NewCollector(),
		hover:           grid.NoTile,
	}
	for _, opt := range opts {
		opt(g)
	}

	g.UnitSystem = system.NewUnitSystem(ecs, g0, eventDispatcher)
	g.ProjectileSystem = system.NewProjectileSystem(ecs, g0, eventDispatcher, g.UnitSystem)
	g.TowerSystem = system.NewTowerSystem(ecs, g0, eventDispatcher, lib, g.UnitSystem, g.ProjectileSystem)

	listener := &GameEventListener{game: g}
	for _, t := range []event.EventType{
		event.UnitSpawned, event.UnitDied, event.UnitExited,
		event.TowerPlaced, event.TowerRemoved,
		event.RoundStarted, event.RoundEnded, event.GameOver,
	} {
		eventDispatcher.Subscribe(t, listener)
	}

	g.RoundSystem = system.NewRoundSystem(cfg.Rounds, defs.RoundPlan(cfg), g, eventDispatcher)
	g.Hand = newHand(cfg, cards)

	slog.Info("game created",
		"session", g.collector.Session(),
		"rows", cfg.Grid.Rows, "cols", cfg.Grid.Cols,
		"rounds", g.RoundSystem.Remaining()+1)
	return g, nil
}

// Tick runs one gameplay tick: the round scheduler first, then every actor
// registered before the tick in registration order.
func (g *Game) Tick() {
	g.RoundSystem.Update()
	for _, id := range g.ECS.TickOrder() {
		switch g.ECS.Kind(id) {
		case types.KindUnit:
			g.UnitSystem.Tick(id)
		case types.KindTower:
			g.TowerSystem.Tick(id)
		case types.KindProjectile:
			g.ProjectileSystem.Tick(id)
		}
	}
	g.ECS.Compact()
	g.collector.Tick()
	g.ticks++
}

// Ticks is the number of gameplay ticks run so far.
func (g *Game) Ticks() int { return g.ticks }

// Session is the telemetry session id.
func (g *Game) Session() string { return g.collector.Session() }

// Outcome reports whether the session has ended.
func (g *Game) Outcome() component.Outcome { return g.RoundSystem.Outcome }

// SpawnUnit puts a unit on the entry tile with stats for the current round.
// Counted units take part in the round's remaining-unit accounting.
func (g *Game) SpawnUnit(counted bool) (types.EntityID, error) {
	entry := g.Grid.Tile(g.Grid.Entry())
	if entry.HasTower() {
		return 0, ErrEntryOccupied
	}
	round := 0
	if cur := g.RoundSystem.Current; cur != nil {
		round = cur.Number
	}
	return g.UnitSystem.Spawn(entry.ID, defs.UnitStatsFor(g.Config.Units, round), counted)
}

// SpawnRoundUnit implements system.RoundGameContext.
func (g *Game) SpawnRoundUnit(n int) error {
	entry := g.Grid.Tile(g.Grid.Entry())
	if entry.HasTower() {
		return ErrEntryOccupied
	}
	_, err := g.UnitSystem.Spawn(entry.ID, defs.UnitStatsFor(g.Config.Units, n), true)
	return err
}

// AddGold implements system.RoundGameContext.
func (g *Game) AddGold(amount int) {
	g.Player.Gold += amount
}

// GameEventListener keeps player and round accounting in step with actor
// events.
type GameEventListener struct {
	game *Game
}

// OnEvent implements event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	g := l.game
	switch e.Type {
	case event.UnitSpawned:
		g.collector.UnitSpawned()
	case event.UnitDied:
		data := e.Data.(event.UnitData)
		g.Player.Gold += data.Gold
		g.collector.UnitKilled()
		if data.Counted {
			g.RoundSystem.UnitGone()
		}
	case event.UnitExited:
		data := e.Data.(event.UnitData)
		g.Player.Health--
		g.collector.UnitExited()
		if data.Counted {
			g.RoundSystem.UnitGone()
		}
		if g.Player.Health <= 0 {
			g.RoundSystem.Finish(component.Defeat)
		}
	case event.TowerPlaced, event.TowerRemoved:
		if g.Config.Game.RepathOnTowerChange {
			g.UnitSystem.Repath()
		}
	case event.RoundStarted:
		g.collector.StartRound(e.Data.(event.RoundData).Number)
	case event.RoundEnded, event.GameOver:
		g.closeRound()
	}
}

func (g *Game) closeRound() {
	stats, ok := g.collector.EndRound(g.Player.Gold, g.Player.Health, g.ECS.Count(types.KindTower))
	if !ok {
		return
	}
	slog.Info("round stats", "stats", stats)
	if err := g.output.WriteRound(stats); err != nil {
		slog.Warn("failed to write round stats", "err", err)
	}
}
