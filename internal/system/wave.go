// internal/system/wave.go
package system

import (
	"log/slog"

	"card-tower-defense/internal/component"
	"card-tower-defense/internal/config"
	"card-tower-defense/internal/defs"
	"card-tower-defense/internal/event"
)

// RoundGameContext is what the round scheduler needs from the game.
type RoundGameContext interface {
	// SpawnRoundUnit spawns one counted unit for round n at the entry tile.
	SpawnRoundUnit(n int) error
	AddGold(amount int)
}

// RoundSystem paces rounds: PREP counts down, ROUND spawns units until every
// counted unit is gone, POST pays the bonus and pops the next round.
type RoundSystem struct {
	cfg             config.RoundsConfig
	game            RoundGameContext
	eventDispatcher *event.Dispatcher

	State   component.RoundState
	Current *component.RoundInfo
	Outcome component.Outcome
	// Ticks counts ticks since the last state change.
	Ticks int

	rounds []defs.RoundDefinition
}

// NewRoundSystem takes the round stack (last element first) and pops the
// first round.
func NewRoundSystem(cfg config.RoundsConfig, plan []defs.RoundDefinition, game RoundGameContext, eventDispatcher *event.Dispatcher) *RoundSystem {
	s := &RoundSystem{
		cfg:             cfg,
		game:            game,
		eventDispatcher: eventDispatcher,
		State:           component.RoundPrep,
		rounds:          append([]defs.RoundDefinition(nil), plan...),
	}
	if !s.pop() {
		s.Finish(component.Victory)
	}
	return s
}

// Remaining is the number of rounds still on the stack.
func (s *RoundSystem) Remaining() int {
	return len(s.rounds)
}

func (s *RoundSystem) pop() bool {
	n := len(s.rounds)
	if n == 0 {
		return false
	}
	s.Current = component.NewRoundInfo(s.rounds[n-1])
	s.rounds = s.rounds[:n-1]
	return true
}

// Update runs one scheduler tick. Terminal sessions no longer schedule.
func (s *RoundSystem) Update() {
	if s.Outcome != component.Playing || s.Current == nil {
		return
	}
	s.Ticks++
	cur := s.Current

	switch s.State {
	case component.RoundPrep:
		cur.PrepTicks--
		if cur.PrepTicks < 0 {
			s.begin()
		}
	case component.RoundActive:
		if cur.UnitsRemaining <= 0 {
			s.State = component.RoundPost
			s.Ticks = 0
			slog.Info("round ended", "round", cur.Number)
			s.eventDispatcher.Dispatch(event.Event{
				Type: event.RoundEnded,
				Data: event.RoundData{Number: cur.Number, Units: cur.Units},
			})
			return
		}
		interval := defs.SpawnInterval(s.cfg, cur.Number)
		if s.Ticks%interval == 0 && cur.UnitsSummoned < cur.Units {
			if err := s.game.SpawnRoundUnit(cur.Number); err != nil {
				slog.Warn("unit spawn failed", "round", cur.Number, "err", err)
				return
			}
			cur.UnitsSummoned++
		}
	case component.RoundPost:
		s.Ticks = 0
		s.game.AddGold(s.cfg.GoldBonus)
		if !s.pop() {
			s.Finish(component.Victory)
			return
		}
		s.State = component.RoundPrep
	}
}

func (s *RoundSystem) begin() {
	s.State = component.RoundActive
	s.Current.UnitsRemaining = s.Current.Units
	s.Ticks = 0
	slog.Info("round started", "round", s.Current.Number, "units", s.Current.Units)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.RoundStarted,
		Data: event.RoundData{Number: s.Current.Number, Units: s.Current.Units},
	})
}

// StartNow skips the rest of the prep phase.
func (s *RoundSystem) StartNow() bool {
	if s.Outcome != component.Playing || s.State != component.RoundPrep || s.Current == nil {
		return false
	}
	s.Current.PrepTicks = 0
	s.begin()
	return true
}

// UnitGone accounts for a counted unit that died or exited.
func (s *RoundSystem) UnitGone() {
	if s.Current != nil {
		s.Current.UnitsRemaining--
	}
}

// Finish puts the session in a terminal state. Only the first call counts.
func (s *RoundSystem) Finish(o component.Outcome) {
	if s.Outcome != component.Playing || o == component.Playing {
		return
	}
	s.Outcome = o
	round := 0
	if s.Current != nil {
		round = s.Current.Number
	}
	slog.Info("game over", "outcome", o, "round", round)
	s.eventDispatcher.Dispatch(event.Event{
		Type: event.GameOver,
		Data: event.GameOverData{Victory: o == component.Victory, Round: round},
	})
}
