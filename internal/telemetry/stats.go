package telemetry

import "log/slog"

// RoundStats summarizes one finished round.
type RoundStats struct {
	Session string `csv:"session"`
	Round   int    `csv:"round"`
	Ticks   int    `csv:"ticks"`
	Spawned int    `csv:"spawned"`
	Killed  int    `csv:"killed"`
	Exited  int    `csv:"exited"`
	Gold    int    `csv:"gold"`
	Health  int    `csv:"health"`
	Towers  int    `csv:"towers"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s RoundStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("round", s.Round),
		slog.Int("ticks", s.Ticks),
		slog.Int("spawned", s.Spawned),
		slog.Int("killed", s.Killed),
		slog.Int("exited", s.Exited),
		slog.Int("gold", s.Gold),
		slog.Int("health", s.Health),
		slog.Int("towers", s.Towers),
	)
}
