// internal/system/movement.go
package system

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
	"card-tower-defense/internal/types"
	"card-tower-defense/pkg/geom"
)

// ErrNoTile is returned when an actor is created or initialized without a
// valid tile.
var ErrNoTile = errors.New("system: actor has no tile")

// UnitSystem moves units along their tile paths and applies damage to them.
type UnitSystem struct {
	ecs             *entity.ECS
	grid            *grid.Grid
	eventDispatcher *event.Dispatcher
}

func NewUnitSystem(ecs *entity.ECS, g *grid.Grid, eventDispatcher *event.Dispatcher) *UnitSystem {
	return &UnitSystem{ecs: ecs, grid: g, eventDispatcher: eventDispatcher}
}

// Spawn puts a new unit at the center of tile, facing down, with a path to
// the exit. The unit first moves on the tick after it was spawned.
func (s *UnitSystem) Spawn(tile grid.TileID, stats defs.UnitStats, counted bool) (types.EntityID, error) {
	t := s.grid.Tile(tile)
	if t == nil {
		return 0, fmt.Errorf("%w: spawn on tile %d", ErrNoTile, tile)
	}

	ts := s.grid.TileSize()
	id := s.ecs.NewEntity(types.KindUnit)
	u := &component.Unit{
		Tile:    tile,
		Facing:  grid.DirDown,
		Health:  stats.Health,
		Speed:   min(stats.Speed, ts.X, ts.Y),
		Gold:    stats.Gold,
		Counted: counted,
	}
	s.ecs.Units[id] = u
	s.ecs.Positions[id] = &component.Position{Pos: t.Center(), Prev: t.Center()}
	s.ecs.Renderables[id] = &component.Renderable{
		Shape: component.ShapeCircle,
		Size:  stats.Size,
		Color: config.UnitColor,
	}
	if err := s.grid.AddOccupant(tile, grid.Occupant{ID: id, Kind: types.KindUnit}); err != nil {
		s.ecs.Remove(id)
		return 0, fmt.Errorf("failed to place unit: %w", err)
	}

	s.findPath(u)
	u.Active = true
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.UnitSpawned,
		Data: event.UnitData{ID: id, Tile: tile, Gold: u.Gold, Counted: counted},
	})
	return id, nil
}

// findPath replaces the path queue with the route from the unit's tile to
// the exit, dropping the current tile. An unreachable exit keeps the old
// queue.
func (s *UnitSystem) findPath(u *component.Unit) bool {
	path := s.grid.PathToExit(u.Tile)
	if path == nil {
		return false
	}
	u.Path = path[:len(path)-1]
	return true
}

// Repath recomputes the path of every active unit.
func (s *UnitSystem) Repath() {
	for _, id := range s.ecs.TickOrder() {
		u, ok := s.ecs.Units[id]
		if !ok || !u.Active {
			continue
		}
		if !s.findPath(u) {
			slog.Debug("unit kept its path", "unit", id, "tile", u.Tile)
		}
	}
}

// Update ticks every unit in registration order.
func (s *UnitSystem) Update() {
	for _, id := range s.ecs.TickOrder() {
		s.Tick(id)
	}
}

// Tick advances one unit by one step.
func (s *UnitSystem) Tick(id types.EntityID) {
	u, ok := s.ecs.Units[id]
	pos := s.ecs.Positions[id]
	if !ok || !u.Active || pos == nil || u.Facing == grid.DirUnknown {
		return
	}
	tile := s.grid.Tile(u.Tile)
	if tile == nil {
		return
	}
	pos.Begin()

	center := tile.Center()
	candidate := pos.Pos.Add(u.Facing.Vec().Scale(u.Speed))

	// Still closing in on the current tile's center.
	if geom.SqDist(candidate, center) <= geom.SqDist(pos.Pos, center) {
		pos.Set(candidate)
		return
	}

	next, ok := u.NextTile()
	if !ok {
		s.exit(id, u)
		return
	}

	dir := tile.DirectionTo(next)
	if dir == grid.DirUnknown {
		// The queue no longer starts next to us; route again from here.
		s.findPath(u)
		return
	}
	if dir != u.Facing {
		u.Facing = dir
		candidate = pos.Pos.Add(dir.Vec().Scale(u.Speed))
	}
	pos.Set(candidate)

	nextCenter := s.grid.Tile(next).Center()
	if geom.SqDist(pos.Pos, nextCenter) <= geom.SqDist(pos.Pos, center) {
		s.grid.RemoveOccupant(u.Tile, id)
		u.Tile = u.PopTile()
		if err := s.grid.AddOccupant(u.Tile, grid.Occupant{ID: id, Kind: types.KindUnit}); err != nil {
			slog.Warn("unit could not enter tile", "unit", id, "tile", u.Tile, "err", err)
		}
	}
}

// exit retires a unit that ran out of path at a tile boundary.
func (s *UnitSystem) exit(id types.EntityID, u *component.Unit) {
	u.Active = false
	tile := u.Tile
	s.remove(id, u)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.UnitExited,
		Data: event.UnitData{ID: id, Tile: tile, Gold: u.Gold, Counted: u.Counted},
	})
}

func (s *UnitSystem) remove(id types.EntityID, u *component.Unit) {
	s.grid.RemoveOccupant(u.Tile, id)
	s.ecs.Remove(id)
}
