// internal/defs/waves.go
package defs

import "card-tower-defense/internal/config"

// RoundDefinition is the immutable part of a round.
type RoundDefinition struct {
	Number    int
	Units     int
	PrepTicks int
}

// RoundPlan returns the pre-generated rounds as a stack: the last element is
// round 0 and is consumed first.
func RoundPlan(cfg *config.Config) []RoundDefinition {
	r := cfg.Rounds
	plan := make([]RoundDefinition, 0, r.Count+1)
	for i := r.Count; i >= 1; i-- {
		plan = append(plan, RoundDefinition{
			Number:    i,
			Units:     i * r.UnitsPerRound,
			PrepTicks: cfg.PrepTicks(r.PrepBaseSeconds + i),
		})
	}
	return append(plan, RoundDefinition{
		Number:    0,
		Units:     r.FirstRoundUnits,
		PrepTicks: cfg.PrepTicks(r.FirstRoundPrepSeconds),
	})
}

// SpawnInterval is the tick spacing between spawns in round n.
func SpawnInterval(r config.RoundsConfig, n int) int {
	return max(r.SpawnIntervalFloor, r.SpawnIntervalBase-r.SpawnIntervalStep*n)
}
