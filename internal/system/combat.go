// internal/system/combat.go
package system

import (
	"card-tower-defense/internal/event"
	"card-tower-defense/internal/types"
)

// TakeDamage applies damage to a unit. The unit dies once its health drops
// to zero or below; damage to a dead or unknown unit is ignored. It reports
// whether the damage landed.
func (s *UnitSystem) TakeDamage(id types.EntityID, amount int) bool {
	u, ok := s.ecs.Units[id]
	if !ok || !u.Active {
		return false
	}
	u.Health -= amount
	if u.Health <= 0 {
		u.Active = false
		tile := u.Tile
		s.remove(id, u)
		s.eventDispatcher.Dispatch(event.Event{
			Type: event.UnitDied,
			Data: event.UnitData{ID: id, Tile: tile, Gold: u.Gold, Counted: u.Counted},
		})
	}
	return true
}
