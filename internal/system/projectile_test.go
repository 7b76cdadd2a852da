package system

import (
	"math"
	"testing"

	"card-tower-defense/internal/event"
	"card-tower-defense/internal/types"
	"card-tower-defense/pkg/geom"
)

func TestProjectileLeavesGrid(t *testing.T) {
	w := newWorld(t, 3, 3)
	uid, _ := w.units.Spawn(w.tile(t, 2, 2), stats(100, 1), false)

	start := w.grid.Tile(w.grid.Entry()).Center()
	const speed = 3.0
	pid, err := w.projectiles.Spawn(0, w.grid.Entry(), start, geom.Vec{X: -1}, speed, 10, 2)
	if err != nil {
		t.Fatal(err)
	}

	limit := int(math.Ceil(start.X/speed)) + 1
	ticks := 0
	for ; ticks < limit && w.ecs.Alive(pid); ticks++ {
		w.projectiles.Update()
	}
	if w.ecs.Alive(pid) {
		t.Fatalf("projectile alive after %d ticks", limit)
	}
	for i := 0; i < 5; i++ {
		w.projectiles.Update()
	}

	expired := w.seen[event.ProjectileExpired]
	if len(expired) != 1 {
		t.Fatalf("expired events = %d, want 1", len(expired))
	}
	if expired[0].Data.(event.ProjectileData).Hit {
		t.Errorf("projectile leaving the grid reported a hit")
	}
	if got := w.ecs.Units[uid].Health; got != 100 {
		t.Errorf("unit health = %d, want 100", got)
	}
	if w.grid.Tile(w.grid.Entry()).Contains(pid) {
		t.Errorf("destroyed projectile still on its tile")
	}
}

func TestProjectileMigratesAndHits(t *testing.T) {
	w := newWorld(t, 3, 3)
	target := w.tile(t, 0, 2)
	uid, _ := w.units.Spawn(target, stats(100, 1), false)

	start := w.grid.Tile(w.grid.Entry()).Center()
	pid, err := w.projectiles.Spawn(0, w.grid.Entry(), start, geom.Vec{X: 1}, 5, 30, 2)
	if err != nil {
		t.Fatal(err)
	}

	sawMiddle := false
	for i := 0; i < 20 && w.ecs.Alive(pid); i++ {
		w.projectiles.Update()
		if p, ok := w.ecs.Projectiles[pid]; ok && p.Tile == w.tile(t, 0, 1) {
			sawMiddle = true
		}
	}
	if w.ecs.Alive(pid) {
		t.Fatal("projectile never hit")
	}
	if !sawMiddle {
		t.Errorf("projectile skipped the middle tile")
	}
	if got := w.ecs.Units[uid].Health; got != 70 {
		t.Errorf("unit health = %d, want 70", got)
	}
	if n := w.ecs.Count(types.KindProjectile); n != 0 {
		t.Errorf("projectiles = %d, want 0", n)
	}
}
