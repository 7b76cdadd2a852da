// internal/component/game_state.go
package component

import "card-tower-defense/internal/defs"

// RoundState is the phase of the round scheduler.
type RoundState int

const (
	RoundPrep RoundState = iota
	RoundActive
	RoundPost
)

func (s RoundState) String() string {
	switch s {
	case RoundPrep:
		return "prep"
	case RoundActive:
		return "round"
	case RoundPost:
		return "post"
	}
	return "unknown"
}

// Outcome is the terminal state of a session, if any.
type Outcome int

const (
	Playing Outcome = iota
	Victory
	Defeat
)

func (o Outcome) String() string {
	switch o {
	case Playing:
		return "playing"
	case Victory:
		return "victory"
	case Defeat:
		return "defeat"
	}
	return "unknown"
}

// RoundInfo is a round definition plus its running counters.
type RoundInfo struct {
	defs.RoundDefinition
	UnitsSummoned  int
	UnitsRemaining int
}

// NewRoundInfo starts the counters of a round.
func NewRoundInfo(def defs.RoundDefinition) *RoundInfo {
	return &RoundInfo{RoundDefinition: def, UnitsRemaining: def.Units}
}
