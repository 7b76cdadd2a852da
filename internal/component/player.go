// internal/component/player.go
package component

// PlayerInfo holds the player's counters for the session.
type PlayerInfo struct {
	Health int
	Gold   int
}

// CanAfford reports whether the player holds at least cost gold.
func (p *PlayerInfo) CanAfford(cost int) bool {
	return p.Gold >= cost
}
