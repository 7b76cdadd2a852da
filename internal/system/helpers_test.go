package system

import (
	"testing"

	"card-tower-defense/internal/config"
	"card-tower-defense/internal/defs"
	"card-tower-defense/internal/entity"
	"card-tower-defense/internal/event"
	"card-tower-defense/internal/grid"
	"card-tower-defense/pkg/geom"
)

const tilePx = 20.0

// world wires the actor systems over a small grid of 20px tiles at the
// origin and records every dispatched event.
type world struct {
	ecs         *entity.ECS
	grid        *grid.Grid
	events      *event.Dispatcher
	units       *UnitSystem
	projectiles *ProjectileSystem
	towers      *TowerSystem
	seen        map[event.EventType][]event.Event
}

func newWorld(t *testing.T, rows, cols int) *world {
	t.Helper()
	g, err := grid.New(geom.Vec{}, geom.Vec{X: tilePx * float64(cols), Y: tilePx * float64(rows)}, rows, cols)
	if err != nil {
		t.Fatalf("grid.New: %v", err)
	}
	lib, err := defs.NewTowerLibrary(config.Default())
	if err != nil {
		t.Fatalf("NewTowerLibrary: %v", err)
	}

	w := &world{
		ecs:    entity.NewECS(),
		grid:   g,
		events: event.NewDispatcher(),
		seen:   map[event.EventType][]event.Event{},
	}
	w.units = NewUnitSystem(w.ecs, g, w.events)
	w.projectiles = NewProjectileSystem(w.ecs, g, w.events, w.units)
	w.towers = NewTowerSystem(w.ecs, g, w.events, lib, w.units, w.projectiles)

	for _, et := range []event.EventType{event.UnitSpawned, event.UnitDied, event.UnitExited, event.ProjectileExpired} {
		et := et
		w.events.SubscribeFunc(et, func(e event.Event) { w.seen[et] = append(w.seen[et], e) })
	}
	return w
}

func (w *world) tile(t *testing.T, row, col int) grid.TileID {
	t.Helper()
	id, ok := w.grid.TileAt(row, col)
	if !ok {
		t.Fatalf("no tile at (%d,%d)", row, col)
	}
	return id
}

// tick runs every live actor once in registration order, like a game tick.
func (w *world) tick() {
	for _, id := range w.ecs.TickOrder() {
		w.units.Tick(id)
		w.towers.Tick(id)
		w.projectiles.Tick(id)
	}
	w.ecs.Compact()
}

func stats(health int, speed float64) defs.UnitStats {
	return defs.UnitStats{Health: health, Speed: speed, Gold: 1, Size: 5}
}
