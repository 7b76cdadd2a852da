// internal/app/tower_management.go
package app

import (
	"fmt"
	"log/slog"

	"card-tower-defense/internal/defs"
	"card-tower-defense/internal/event"
	"card-tower-defense/internal/grid"
	"card-tower-defense/internal/types"
)

// CanPlaceTower checks a placement without changing anything. The guard
// order matches PlaceTower.
func (g *Game) CanPlaceTower(kind defs.TowerKind, tile grid.TileID) error {
	def, err := g.Library.Get(kind)
	if err != nil {
		return err
	}
	t := g.Grid.Tile(tile)
	if t == nil {
		return fmt.Errorf("%w: %d", ErrNoTile, tile)
	}
	if t.HasTower() {
		return fmt.Errorf("%w: tile %d", grid.ErrTileHasTower, tile)
	}
	if !g.Grid.CanPlaceTower(tile) {
		return fmt.Errorf("%w: tile %d", grid.ErrPathBlocked, tile)
	}
	if !g.Player.CanAfford(def.Cost) {
		return fmt.Errorf("%w: %s costs %d, have %d", ErrInsufficientGold, kind, def.Cost, g.Player.Gold)
	}
	return nil
}

// PlaceTower builds a tower of kind on tile and charges its cost.
func (g *Game) PlaceTower(kind defs.TowerKind, tile grid.TileID) (types.EntityID, error) {
	if err := g.CanPlaceTower(kind, tile); err != nil {
		return 0, err
	}
	def, _ := g.Library.Get(kind)

	id, err := g.TowerSystem.Create(kind, tile)
	if err != nil {
		return 0, err
	}
	g.Player.Gold -= def.Cost

	slog.Info("tower placed", "tower", id, "kind", kind, "tile", tile, "gold", g.Player.Gold)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerData{ID: id, Kind: kind, Tile: tile},
	})
	return id, nil
}

// RemoveTower takes the tower off tile. Removal is free and not refunded.
func (g *Game) RemoveTower(tile grid.TileID) (types.EntityID, bool) {
	t := g.Grid.Tile(tile)
	if t == nil {
		return 0, false
	}
	id, ok := t.Tower()
	if !ok {
		return 0, false
	}
	kind := g.ECS.Towers[id].Kind
	g.TowerSystem.Remove(id)

	slog.Info("tower removed", "tower", id, "kind", kind, "tile", tile)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerRemoved,
		Data: event.TowerData{ID: id, Kind: kind, Tile: tile},
	})
	return id, true
}

// UpgradeTower upgrades the tower on tile and charges the upgrade cost.
// Nothing changes on error.
func (g *Game) UpgradeTower(tile grid.TileID) error {
	t := g.Grid.Tile(tile)
	if t == nil {
		return fmt.Errorf("%w: %d", ErrNoTile, tile)
	}
	id, ok := t.Tower()
	if !ok {
		return fmt.Errorf("%w: %d", ErrNoTower, tile)
	}
	tw := g.ECS.Towers[id]
	def, err := g.Library.Get(tw.Kind)
	if err != nil {
		return err
	}
	if _, _, _, err := def.Upgrade(tw.Tier, tw.Size, tw.Damage); err != nil {
		return err
	}
	if !g.Player.CanAfford(def.UpgradeCost) {
		return fmt.Errorf("%w: upgrade costs %d, have %d", ErrInsufficientGold, def.UpgradeCost, g.Player.Gold)
	}
	if err := g.TowerSystem.Upgrade(id); err != nil {
		return err
	}
	g.Player.Gold -= def.UpgradeCost

	slog.Info("tower upgraded", "tower", id, "kind", tw.Kind, "damage", tw.Damage)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerUpgraded,
		Data: event.TowerData{ID: id, Kind: tw.Kind, Tile: tile},
	})
	return nil
}
