package entity

import (
	"slices"
	"testing"

	"card-tower-defense/internal/component"
	"card-tower-defense/internal/types"
)

func TestTickOrderKeepsRegistration(t *testing.T) {
	ecs := NewECS()
	a := ecs.NewEntity(types.KindTower)
	b := ecs.NewEntity(types.KindUnit)
	c := ecs.NewEntity(types.KindProjectile)

	if got, want := ecs.TickOrder(), []types.EntityID{a, b, c}; !slices.Equal(got, want) {
		t.Fatalf("TickOrder = %v, want %v", got, want)
	}
}

func TestRemoveDuringIteration(t *testing.T) {
	ecs := NewECS()
	var ids []types.EntityID
	for i := 0; i < 4; i++ {
		id := ecs.NewEntity(types.KindUnit)
		ecs.Units[id] = &component.Unit{Active: true}
		ids = append(ids, id)
	}

	var ticked []types.EntityID
	for _, id := range ecs.TickOrder() {
		if !ecs.Alive(id) {
			continue
		}
		ticked = append(ticked, id)
		if id == ids[0] {
			ecs.Remove(ids[1])
			ecs.NewEntity(types.KindUnit)
		}
	}
	if want := []types.EntityID{ids[0], ids[2], ids[3]}; !slices.Equal(ticked, want) {
		t.Errorf("ticked = %v, want %v", ticked, want)
	}

	ecs.Compact()
	order := ecs.TickOrder()
	if len(order) != 4 || slices.Contains(order, ids[1]) {
		t.Errorf("after Compact order = %v", order)
	}
	if ecs.Count(types.KindUnit) != 3 {
		t.Errorf("Count(unit) = %d, want 3", ecs.Count(types.KindUnit))
	}
}

func TestRemoveTwice(t *testing.T) {
	ecs := NewECS()
	id := ecs.NewEntity(types.KindTower)
	ecs.Remove(id)
	ecs.Remove(id)
	ecs.Compact()
	if ecs.Len() != 0 || len(ecs.TickOrder()) != 0 {
		t.Errorf("registry not empty: len=%d order=%v", ecs.Len(), ecs.TickOrder())
	}
}
