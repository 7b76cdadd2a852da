// internal/component/tower.go
package component

import (
	"card-tower-defense/internal/defs"
	"card-tower-defense/internal/grid"
	"card-tower-defense/internal/types"
)

// Tower is a placed tower instance.
type Tower struct {
	Kind defs.TowerKind
	Tier defs.Tier
	Tile grid.TileID
	// Tick is the attack cycle counter; 0 means ready.
	Tick    int
	Targets []types.EntityID
	Visible []grid.TileID
	Damage  int
	Size    float64
	Phase   defs.Phase
}
