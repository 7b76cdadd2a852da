// internal/app/verify.go
package app

import (
	"fmt"

	"card-tower-defense/internal/grid"
	"card-tower-defense/internal/types"
)

// Verify checks that the registry and tile occupancy agree: every live
// actor stands on exactly the tile it records, every occupant is alive,
// and the exit is reachable from the entry.
func (g *Game) Verify() error {
	onTile := map[types.EntityID]grid.TileID{}
	for _, t := range g.Grid.Tiles() {
		towers := 0
		for _, o := range t.Occupants() {
			if !g.ECS.Alive(o.ID) {
				return fmt.Errorf("tile %d lists dead actor %d", t.ID, o.ID)
			}
			if k := g.ECS.Kind(o.ID); k != o.Kind {
				return fmt.Errorf("tile %d lists actor %d as %v, registry says %v", t.ID, o.ID, o.Kind, k)
			}
			if prev, dup := onTile[o.ID]; dup {
				return fmt.Errorf("actor %d on tiles %d and %d", o.ID, prev, t.ID)
			}
			onTile[o.ID] = t.ID
			if o.Kind == types.KindTower {
				towers++
			}
		}
		if towers > 1 {
			return fmt.Errorf("tile %d holds %d towers", t.ID, towers)
		}
	}

	check := func(id types.EntityID, want grid.TileID) error {
		if got, ok := onTile[id]; !ok || got != want {
			return fmt.Errorf("actor %d records tile %d, grid has it on %d (found %v)", id, want, got, ok)
		}
		return nil
	}
	for id, u := range g.ECS.Units {
		if err := check(id, u.Tile); err != nil {
			return err
		}
	}
	for id, tw := range g.ECS.Towers {
		if err := check(id, tw.Tile); err != nil {
			return err
		}
	}
	for id, p := range g.ECS.Projectiles {
		if err := check(id, p.Tile); err != nil {
			return err
		}
	}

	if !g.Grid.ExitReachable() {
		return fmt.Errorf("exit unreachable from entry")
	}
	route := g.Grid.Route()
	if route == nil {
		return fmt.Errorf("path cache has no route to the exit")
	}
	for _, id := range route {
		if g.Grid.Tile(id).HasTower() {
			return fmt.Errorf("cached route crosses tower tile %d", id)
		}
	}
	return nil
}
