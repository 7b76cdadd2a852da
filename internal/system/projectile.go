// internal/system/projectile.go
package system

import (
	"fmt"

	"card-tower-defense/internal/component"
	"card-tower-defense/internal/config"
	"card-tower-defense/internal/entity"
	"card-tower-defense/internal/event"
	"card-tower-defense/internal/grid"
	"card-tower-defense/internal/types"
	"card-tower-defense/pkg/geom"
)

// ProjectileSystem moves projectiles and resolves their hits.
type ProjectileSystem struct {
	ecs             *entity.ECS
	grid            *grid.Grid
	eventDispatcher *event.Dispatcher
	units           *UnitSystem
}

func NewProjectileSystem(ecs *entity.ECS, g *grid.Grid, eventDispatcher *event.Dispatcher, units *UnitSystem) *ProjectileSystem {
	return &ProjectileSystem{
		ecs:             ecs,
		grid:            g,
		eventDispatcher: eventDispatcher,
		units:           units,
	}
}

// Spawn launches a projectile from pos on tile. dir is normalized here.
func (s *ProjectileSystem) Spawn(source types.EntityID, tile grid.TileID, pos, dir geom.Vec,
	speed float64, damage int, size float64) (types.EntityID, error) {
	if s.grid.Tile(tile) == nil {
		return 0, fmt.Errorf("%w: projectile on tile %d", ErrNoTile, tile)
	}
	id := s.ecs.NewEntity(types.KindProjectile)
	s.ecs.Projectiles[id] = &component.Projectile{
		Source:    source,
		Direction: geom.Normalize(dir),
		Speed:     speed,
		Damage:    damage,
		Tile:      tile,
		Active:    true,
	}
	s.ecs.Positions[id] = &component.Position{Pos: pos, Prev: pos}
	s.ecs.Renderables[id] = &component.Renderable{
		Shape: component.ShapeCircle,
		Size:  size,
		Color: config.ProjectileColor,
	}
	if err := s.grid.AddOccupant(tile, grid.Occupant{ID: id, Kind: types.KindProjectile}); err != nil {
		s.ecs.Remove(id)
		return 0, fmt.Errorf("failed to place projectile: %w", err)
	}
	return id, nil
}

// Update ticks every projectile in registration order.
func (s *ProjectileSystem) Update() {
	for _, id := range s.ecs.TickOrder() {
		s.Tick(id)
	}
}

// Tick moves a projectile one step. Leaving the grid destroys it without a
// hit. Otherwise it moves onto whichever of its tile and that tile's
// neighbors has the closest center, then hits the first unit there.
func (s *ProjectileSystem) Tick(id types.EntityID) {
	p, ok := s.ecs.Projectiles[id]
	pos := s.ecs.Positions[id]
	if !ok || !p.Active || pos == nil {
		return
	}
	pos.Begin()

	candidate := pos.Pos.Add(p.Direction.Scale(p.Speed))
	if !s.grid.InBounds(candidate) {
		s.destroy(id, p, false)
		return
	}
	pos.Set(candidate)

	s.migrate(id, p, pos.Pos)

	if s.attemptHit(p) {
		s.destroy(id, p, true)
	}
}

func (s *ProjectileSystem) migrate(id types.EntityID, p *component.Projectile, at geom.Vec) {
	cur := s.grid.Tile(p.Tile)
	closest := p.Tile
	best := geom.SqDist(at, cur.Center())
	for _, n := range cur.Neighbors() {
		if d := geom.SqDist(at, s.grid.Tile(n).Center()); d < best {
			best = d
			closest = n
		}
	}
	if closest == p.Tile {
		return
	}
	s.grid.RemoveOccupant(p.Tile, id)
	p.Tile = closest
	s.grid.AddOccupant(closest, grid.Occupant{ID: id, Kind: types.KindProjectile})
}

func (s *ProjectileSystem) attemptHit(p *component.Projectile) bool {
	units := s.grid.Tile(p.Tile).Units()
	if len(units) == 0 {
		return false
	}
	return s.units.TakeDamage(units[0], p.Damage)
}

func (s *ProjectileSystem) destroy(id types.EntityID, p *component.Projectile, hit bool) {
	p.Active = false
	s.grid.RemoveOccupant(p.Tile, id)
	s.ecs.Remove(id)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.ProjectileExpired,
		Data: event.ProjectileData{ID: id, Hit: hit},
	})
}
