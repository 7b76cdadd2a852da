// internal/entity/ecs.go
package entity

import (
	"card-tower-defense/internal/component"
	"card-tower-defense/internal/types"
)

// ECS owns every actor of a session. Components live in per-kind maps; the
// tick list keeps registration order so actors tick deterministically.
type ECS struct {
	NextID      types.EntityID
	Kinds       map[types.EntityID]types.Kind
	Positions   map[types.EntityID]*component.Position
	Renderables map[types.EntityID]*component.Renderable
	Units       map[types.EntityID]*component.Unit
	Towers      map[types.EntityID]*component.Tower
	Projectiles map[types.EntityID]*component.Projectile

	order   []types.EntityID
	removed int
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Kinds:       make(map[types.EntityID]types.Kind),
		Positions:   make(map[types.EntityID]*component.Position),
		Renderables: make(map[types.EntityID]*component.Renderable),
		Units:       make(map[types.EntityID]*component.Unit),
		Towers:      make(map[types.EntityID]*component.Tower),
		Projectiles: make(map[types.EntityID]*component.Projectile),
	}
}

// NewEntity registers a new actor of the given kind at the end of the tick
// list.
func (ecs *ECS) NewEntity(kind types.Kind) types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	ecs.Kinds[id] = kind
	ecs.order = append(ecs.order, id)
	return id
}

// Alive reports whether id is still registered.
func (ecs *ECS) Alive(id types.EntityID) bool {
	_, ok := ecs.Kinds[id]
	return ok
}

// Kind returns the kind of id, or KindNone.
func (ecs *ECS) Kind(id types.EntityID) types.Kind {
	return ecs.Kinds[id]
}

// Remove drops every component of id. The tick list slot is cleared by the
// next Compact, so iterating a snapshot taken earlier stays safe.
func (ecs *ECS) Remove(id types.EntityID) {
	if !ecs.Alive(id) {
		return
	}
	delete(ecs.Kinds, id)
	delete(ecs.Positions, id)
	delete(ecs.Renderables, id)
	delete(ecs.Units, id)
	delete(ecs.Towers, id)
	delete(ecs.Projectiles, id)
	ecs.removed++
}

// TickOrder returns a snapshot of the tick list. Entries may refer to actors
// removed since the last Compact; callers check Alive.
func (ecs *ECS) TickOrder() []types.EntityID {
	out := make([]types.EntityID, len(ecs.order))
	copy(out, ecs.order)
	return out
}

// Compact drops removed actors from the tick list, keeping order.
func (ecs *ECS) Compact() {
	if ecs.removed == 0 {
		return
	}
	kept := ecs.order[:0]
	for _, id := range ecs.order {
		if ecs.Alive(id) {
			kept = append(kept, id)
		}
	}
	clear(ecs.order[len(kept):])
	ecs.order = kept
	ecs.removed = 0
}

// Len is the number of live actors.
func (ecs *ECS) Len() int {
	return len(ecs.Kinds)
}

// Count returns the number of live actors of kind.
func (ecs *ECS) Count(kind types.Kind) int {
	switch kind {
	case types.KindUnit:
		return len(ecs.Units)
	case types.KindTower:
		return len(ecs.Towers)
	case types.KindProjectile:
		return len(ecs.Projectiles)
	}
	return 0
}
