// internal/termui/loop.go
package termui

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"card-tower-defense/internal/app"
	"card-tower-defense/internal/clock"

	"github.com/gdamore/tcell/v2"
)

// Run plays g on screen until ctx is cancelled or the quit key is pressed.
// Every game call happens on the calling goroutine; terminal events arrive
// through a channel fed by a poller.
func Run(ctx context.Context, screen tcell.Screen, g *app.Game, d *clock.Driver) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	renderer := NewRenderer(screen)
	translator := NewTranslator(renderer)
	snapshot := g.Snapshot(1)
	renderer.Draw(&snapshot)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	timer := time.NewTimer(d.Next())
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
			}
			for _, in := range translator.Translate(ev) {
				err := g.HandleInput(in)
				switch {
				case err == nil:
				case errors.Is(err, app.ErrQuit):
					return nil
				case app.IsRejection(err):
					slog.Debug("action rejected", "err", err)
				default:
					slog.Warn("input failed", "err", err)
				}
			}

		case <-timer.C:
			if d.Step(g.Tick) {
				snapshot := g.Snapshot(d.Alpha())
				renderer.Draw(&snapshot)
			}
			timer.Reset(d.Next())
		}
	}
}
