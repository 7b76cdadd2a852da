// internal/component/movement.go
package component

import "card-tower-defense/pkg/geom"

// Position is the center of an actor in world coordinates. Prev is where the
// actor stood at the start of the last gameplay tick.
type Position struct {
	Pos  geom.Vec
	Prev geom.Vec
}

// Set moves the actor without touching Prev.
func (p *Position) Set(v geom.Vec) {
	p.Pos = v
}

// Begin records the start-of-tick position for interpolation.
func (p *Position) Begin() {
	p.Prev = p.Pos
}

// At interpolates between Prev and Pos.
func (p Position) At(alpha float64) geom.Vec {
	return geom.Lerp(p.Prev, p.Pos, alpha)
}
