// internal/state/game_state.go
package state

import (
	"errors"
	"fmt"
	"log/slog"

	"card-tower-defense/internal/app"
	"card-tower-defense/internal/clock"
	"card-tower-defense/internal/render"
	"card-tower-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// keyBindings maps window keys to game commands.
var keyBindings = map[ebiten.Key]app.Key{
	ebiten.KeyU:          app.KeySpawnUnit,
	ebiten.KeySpace:      app.KeyStartRound,
	ebiten.KeyArrowLeft:  app.KeySlower,
	ebiten.KeyArrowRight: app.KeyFaster,
	ebiten.KeyArrowUp:    app.KeyToggleUncapped,
	ebiten.KeyG:          app.KeyUpgrade,
	ebiten.KeyEscape:     app.KeyQuit,
}

// GameState runs a session: it turns window input into game input and lets
// the driver pace gameplay ticks.
type GameState struct {
	sm       *StateMachine
	game     *app.Game
	driver   *clock.Driver
	renderer *render.GridRenderer
	cursor   geom.Vec
	keys     []ebiten.Key
}

func NewGameState(sm *StateMachine, game *app.Game, driver *clock.Driver, renderer *render.GridRenderer) *GameState {
	return &GameState{
		sm:       sm,
		game:     game,
		driver:   driver,
		renderer: renderer,
	}
}

func (g *GameState) Enter() {}

func (g *GameState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sm.SetState(NewPauseState(g.sm, g))
		return nil
	}

	for _, ev := range g.pollInput() {
		err := g.game.HandleInput(ev)
		switch {
		case err == nil:
		case errors.Is(err, app.ErrQuit):
			return ebiten.Termination
		case app.IsRejection(err):
			slog.Debug("action rejected", "err", err)
		default:
			slog.Warn("input failed", "err", err)
		}
	}

	g.driver.Step(g.game.Tick)
	return nil
}

// pollInput collects this frame's input as game events, pointer first.
func (g *GameState) pollInput() []app.InputEvent {
	var events []app.InputEvent
	x, y := ebiten.CursorPosition()
	pos := geom.Vec{X: float64(x), Y: float64(y)}
	if pos != g.cursor {
		g.cursor = pos
		events = append(events, app.PointerMoved{Pos: pos})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, app.PrimaryDown{Pos: pos})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		events = append(events, app.PrimaryUp{Pos: pos})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		events = append(events, app.SecondaryDown{Pos: pos})
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if key, ok := keyBindings[k]; ok {
			events = append(events, app.KeyPressed{Key: key})
		}
	}
	return events
}

func (g *GameState) Draw(screen *ebiten.Image) {
	snapshot := g.game.Snapshot(g.driver.Alpha())
	g.renderer.Draw(screen, &snapshot)

	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	ebitenutil.DebugPrintAt(screen,
		fmt.Sprintf("TPS %.0f  FPS %.0f  frame %v  dropped %d", ebiten.ActualTPS(), ebiten.ActualFPS(),
			g.driver.GameplayFrame(), g.driver.Dropped()),
		w-300, h-20)
}

func (g *GameState) Exit() {}
