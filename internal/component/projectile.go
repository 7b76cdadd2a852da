// internal/component/projectile.go
package component

import (
	"card-tower-defense/internal/grid"
	"card-tower-defense/internal/types"
	"card-tower-defense/pkg/geom"
)

// Projectile flies in a straight line and hits the first unit on its tile.
type Projectile struct {
	Source    types.EntityID
	Direction geom.Vec
	Speed     float64
	Damage    int
	Tile      grid.TileID
	Active    bool
}
