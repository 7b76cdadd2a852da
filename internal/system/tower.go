// internal/system/tower.go
package system

import (
	"fmt"
	"log/slog"

	"card-tower-defense/internal/component"
	"card-tower-defense/internal/config"
	"card-tower-defense/internal/defs"
	"card-tower-defense/internal/entity"
	"card-tower-defense/internal/event"
	"card-tower-defense/internal/grid"
	"card-tower-defense/internal/types"
	"card-tower-defense/pkg/geom"
)

// TowerSystem runs the attack cycle of every placed tower.
type TowerSystem struct {
	ecs             *entity.ECS
	grid            *grid.Grid
	eventDispatcher *event.Dispatcher
	library         defs.TowerLibrary
	units           *UnitSystem
	projectiles     *ProjectileSystem
}

func NewTowerSystem(ecs *entity.ECS, g *grid.Grid, eventDispatcher *event.Dispatcher,
	library defs.TowerLibrary, units *UnitSystem, projectiles *ProjectileSystem) *TowerSystem {
	return &TowerSystem{
		ecs:             ecs,
		grid:            g,
		eventDispatcher: eventDispatcher,
		library:         library,
		units:           units,
		projectiles:     projectiles,
	}
}

// Create registers a tower of kind on tile and initializes it. Gold and
// placement checks belong to the caller; the grid still refuses a second
// tower or a blocking one.
func (s *TowerSystem) Create(kind defs.TowerKind, tile grid.TileID) (types.EntityID, error) {
	def, err := s.library.Get(kind)
	if err != nil {
		return 0, err
	}
	t := s.grid.Tile(tile)
	if t == nil {
		return 0, fmt.Errorf("%w: tower on tile %d", ErrNoTile, tile)
	}

	id := s.ecs.NewEntity(types.KindTower)
	s.ecs.Towers[id] = &component.Tower{
		Kind:   kind,
		Tier:   defs.TierBase,
		Tile:   tile,
		Damage: def.Damage,
		Size:   def.Size,
	}
	s.ecs.Positions[id] = &component.Position{Pos: t.Center(), Prev: t.Center()}
	s.ecs.Renderables[id] = &component.Renderable{
		Shape: component.ShapeRect,
		Size:  def.Size,
		Color: def.Color,
	}

	if err := s.grid.AddOccupant(tile, grid.Occupant{ID: id, Kind: types.KindTower}); err != nil {
		s.ecs.Remove(id)
		return 0, fmt.Errorf("failed to place %s tower: %w", kind, err)
	}
	if err := s.Initialize(id); err != nil {
		s.grid.RemoveOccupant(tile, id)
		s.ecs.Remove(id)
		return 0, err
	}
	return id, nil
}

// Initialize computes the tower's visible tiles from its kind.
func (s *TowerSystem) Initialize(id types.EntityID) error {
	tw, ok := s.ecs.Towers[id]
	if !ok {
		return fmt.Errorf("%w: unknown tower %d", ErrNoTile, id)
	}
	t := s.grid.Tile(tw.Tile)
	if t == nil {
		return fmt.Errorf("%w: tower %d", ErrNoTile, id)
	}
	def, err := s.library.Get(tw.Kind)
	if err != nil {
		return err
	}

	switch def.Visibility {
	case defs.VisibleNeighbors:
		tw.Visible = append([]grid.TileID(nil), t.Neighbors()...)
	case defs.VisibleRadius:
		tw.Visible = s.grid.TilesInRange(tw.Tile, def.Range)
	default:
		tw.Visible = nil
	}
	return nil
}

// Remove takes a tower off the grid and out of the registry.
func (s *TowerSystem) Remove(id types.EntityID) bool {
	tw, ok := s.ecs.Towers[id]
	if !ok {
		return false
	}
	s.grid.RemoveOccupant(tw.Tile, id)
	s.ecs.Remove(id)
	return true
}

// Upgrade moves a tower to its upgraded tier. On error nothing changes.
func (s *TowerSystem) Upgrade(id types.EntityID) error {
	tw, ok := s.ecs.Towers[id]
	if !ok {
		return fmt.Errorf("%w: unknown tower %d", ErrNoTile, id)
	}
	def, err := s.library.Get(tw.Kind)
	if err != nil {
		return err
	}
	tier, size, damage, err := def.Upgrade(tw.Tier, tw.Size, tw.Damage)
	if err != nil {
		return err
	}
	tw.Tier, tw.Size, tw.Damage = tier, size, damage
	if r := s.ecs.Renderables[id]; r != nil {
		r.Size = size
	}
	return nil
}

// ShouldAttack rescans the visible tiles and records every unit found as a
// target.
func (s *TowerSystem) ShouldAttack(tw *component.Tower) bool {
	tw.Targets = tw.Targets[:0]
	for _, tid := range tw.Visible {
		if t := s.grid.Tile(tid); t != nil {
			tw.Targets = append(tw.Targets, t.Units()...)
		}
	}
	return len(tw.Targets) > 0
}

// Update ticks every tower in registration order.
func (s *TowerSystem) Update() {
	for _, id := range s.ecs.TickOrder() {
		s.Tick(id)
	}
}

// Tick advances one tower's attack cycle. A counter of 0 is ready: the tower
// scans for targets and starts counting once it finds one. Every other tick
// runs the phase picked by the counter, then the counter advances and wraps
// back to ready after a full period.
func (s *TowerSystem) Tick(id types.EntityID) {
	tw, ok := s.ecs.Towers[id]
	if !ok {
		return
	}
	def, err := s.library.Get(tw.Kind)
	if err != nil || def.Effect == defs.EffectNone {
		return
	}

	if tw.Tick == 0 {
		tw.Phase = defs.PhaseReady
		if s.ShouldAttack(tw) {
			tw.Tick = 1
		}
		s.paint(id, tw, def)
		return
	}

	tw.Phase = def.Timing.PhaseAt(tw.Tick)
	if tw.Phase == defs.PhaseActive {
		s.attack(id, tw, def)
	}
	s.paint(id, tw, def)

	tw.Tick++
	if tw.Tick >= def.Timing.Period() {
		tw.Tick = 0
	}
}

func (s *TowerSystem) attack(id types.EntityID, tw *component.Tower, def defs.TowerDefinition) {
	switch def.Effect {
	case defs.EffectStomp:
		s.stomp(tw)
	case defs.EffectProjectile:
		s.shoot(id, tw, def)
	}
}

// shoot fires one projectile at the first tracked target that is still
// alive. With none left it holds fire.
func (s *TowerSystem) shoot(id types.EntityID, tw *component.Tower, def defs.TowerDefinition) {
	origin := s.grid.Tile(tw.Tile).Center()
	for _, target := range tw.Targets {
		u, ok := s.ecs.Units[target]
		if !ok || !u.Active {
			continue
		}
		aim := geom.ApproxAim(s.ecs.Positions[target].Pos.Sub(origin))
		if _, err := s.projectiles.Spawn(id, tw.Tile, origin, aim, def.Projectile.Speed, tw.Damage, def.Projectile.Size); err != nil {
			slog.Warn("tower failed to fire", "tower", id, "err", err)
		}
		return
	}
}

func (s *TowerSystem) paint(id types.EntityID, tw *component.Tower, def defs.TowerDefinition) {
	r := s.ecs.Renderables[id]
	if r == nil {
		return
	}
	switch tw.Phase {
	case defs.PhaseReady:
		r.Color = def.Color
	case defs.PhaseActive:
		r.Color = config.AttackColor
	default:
		r.Color = config.RecoverColor
	}
}
