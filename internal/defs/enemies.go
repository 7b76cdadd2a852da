// internal/defs/enemies.go
package defs

import "card-tower-defense/internal/config"

// UnitStats are the per-round stats of a spawned unit.
type UnitStats struct {
	Health int
	Speed  float64
	Gold   int
	Size   float64
}

// UnitStatsFor scales unit stats with the round number.
func UnitStatsFor(c config.UnitsConfig, round int) UnitStats {
	speed := c.BaseSpeed
	if c.SpeedRoundDivisor > 0 {
		speed = c.BaseSpeed * (float64(round)/c.SpeedRoundDivisor + 1)
	}
	return UnitStats{
		Health: c.BaseHealth + c.HealthPerRound*round,
		Speed:  speed,
		Gold:   c.Gold,
		Size:   c.Size,
	}
}
