package system

import (
	"errors"
	"testing"

	"card-tower-defense/internal/defs"
	"card-tower-defense/internal/event"
	"card-tower-defense/internal/grid"
	"card-tower-defense/internal/types"
)

func TestUnitWalksToExit(t *testing.T) {
	w := newWorld(t, 3, 3)
	id, err := w.units.Spawn(w.grid.Entry(), stats(100, 5), true)
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}

	visited := map[grid.TileID]bool{}
	for i := 0; i < 500 && w.ecs.Alive(id); i++ {
		visited[w.ecs.Units[id].Tile] = true
		w.tick()
	}

	if w.ecs.Alive(id) {
		t.Fatal("unit never reached the exit")
	}
	if got := len(w.seen[event.UnitExited]); got != 1 {
		t.Errorf("exit events = %d, want 1", got)
	}
	if got := len(w.seen[event.UnitDied]); got != 0 {
		t.Errorf("death events = %d, want 0", got)
	}
	if !visited[w.grid.Exit()] {
		t.Errorf("unit exited without standing on the exit tile; visited %v", visited)
	}
	// Fewest-hop route on 3x3 covers five tiles.
	if len(visited) != 5 {
		t.Errorf("visited %d tiles, want 5", len(visited))
	}
	for _, tile := range w.grid.Tiles() {
		if tile.Contains(id) {
			t.Errorf("tile %d still lists the unit", tile.ID)
		}
	}
}

func TestUnitSpeedCappedAtTileSize(t *testing.T) {
	w := newWorld(t, 2, 2)
	id, err := w.units.Spawn(w.grid.Entry(), stats(1, 500), false)
	if err != nil {
		t.Fatal(err)
	}
	if got := w.ecs.Units[id].Speed; got != tilePx {
		t.Errorf("speed = %v, want %v", got, tilePx)
	}
}

func TestSpawnOnInvalidTile(t *testing.T) {
	w := newWorld(t, 2, 2)
	if _, err := w.units.Spawn(grid.NoTile, stats(1, 1), false); !errors.Is(err, ErrNoTile) {
		t.Errorf("err = %v, want ErrNoTile", err)
	}
	if w.ecs.Len() != 0 {
		t.Errorf("registry has %d actors after failed spawn", w.ecs.Len())
	}
}

func TestDamageDeathIdempotent(t *testing.T) {
	w := newWorld(t, 2, 2)
	id, err := w.units.Spawn(w.grid.Entry(), stats(10, 1), false)
	if err != nil {
		t.Fatal(err)
	}

	landed := 0
	for i := 1; i <= 6; i++ {
		if w.units.TakeDamage(id, 3) {
			landed++
		}
		wantDeaths := 0
		if i >= 4 {
			wantDeaths = 1
		}
		if got := len(w.seen[event.UnitDied]); got != wantDeaths {
			t.Fatalf("after hit %d: deaths = %d, want %d", i, got, wantDeaths)
		}
	}
	if landed != 4 {
		t.Errorf("landed hits = %d, want 4", landed)
	}
	if w.ecs.Alive(id) || w.grid.Tile(w.grid.Entry()).Contains(id) {
		t.Errorf("dead unit still registered")
	}
	if w.ecs.Count(types.KindUnit) != 0 {
		t.Errorf("unit count = %d, want 0", w.ecs.Count(types.KindUnit))
	}
}

func TestRepathAroundNewTower(t *testing.T) {
	w := newWorld(t, 3, 3)
	id, err := w.units.Spawn(w.grid.Entry(), stats(100, 5), false)
	if err != nil {
		t.Fatal(err)
	}
	u := w.ecs.Units[id]
	next, _ := u.NextTile()

	if !w.grid.CanPlaceTower(next) {
		t.Fatalf("cannot block tile %d", next)
	}
	if _, err := w.towers.Create(defs.KindMaze, next); err != nil {
		t.Fatalf("Create: %v", err)
	}
	w.units.Repath()

	for _, tile := range u.Path {
		if tile == next {
			t.Fatalf("path %v still runs through tower tile %d", u.Path, next)
		}
	}
}
