// internal/clock/driver.go
package clock

import (
	"log/slog"
	"time"
)

const (
	minFrame = time.Millisecond
	maxFrame = time.Second
)

// Driver paces gameplay and visual ticks against wall-clock time. A gameplay
// tick runs once its frame time has elapsed, or on every step when uncapped.
// If a gameplay tick overruns its frame time the visual tick of that step is
// dropped. Driver is not safe for concurrent use.
type Driver struct {
	now func() time.Time

	gameplayFrame time.Duration
	visualFrame   time.Duration
	uncapped      bool

	lastGameplay time.Time
	lastVisual   time.Time

	ticks   int
	dropped int
}

// Option configures a Driver.
type Option func(*Driver)

// WithClock replaces time.Now, mostly for tests.
func WithClock(now func() time.Time) Option {
	return func(d *Driver) { d.now = now }
}

// New returns a driver with the given gameplay and visual frame times.
func New(gameplayFrame, visualFrame time.Duration, opts ...Option) *Driver {
	d := &Driver{
		now:           time.Now,
		gameplayFrame: clampFrame(gameplayFrame),
		visualFrame:   clampFrame(visualFrame),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

func clampFrame(f time.Duration) time.Duration {
	return min(max(f, minFrame), maxFrame)
}

// Step runs tick if a gameplay frame is due and reports whether the caller
// should run its visual tick now.
func (d *Driver) Step(tick func()) bool {
	start := d.now()
	overran := false
	if d.uncapped || start.Sub(d.lastGameplay) >= d.gameplayFrame {
		d.lastGameplay = start
		tick()
		d.ticks++
		if spent := d.now().Sub(start); spent > d.gameplayFrame {
			overran = true
			d.dropped++
			slog.Debug("dropped gameplay frame", "tick", d.ticks, "spent", spent, "budget", d.gameplayFrame)
		}
	}
	if overran {
		return false
	}
	now := d.now()
	if now.Sub(d.lastVisual) < d.visualFrame {
		return false
	}
	d.lastVisual = now
	return true
}

// Alpha is how far wall time has moved into the current gameplay frame, in
// [0, 1]. Renderers interpolate actor positions with it.
func (d *Driver) Alpha() float64 {
	if d.uncapped {
		return 1
	}
	a := float64(d.now().Sub(d.lastGameplay)) / float64(d.gameplayFrame)
	return min(max(a, 0), 1)
}

// Next is the wait until the next gameplay or visual tick is due.
func (d *Driver) Next() time.Duration {
	if d.uncapped {
		return 0
	}
	now := d.now()
	wait := min(d.gameplayFrame-now.Sub(d.lastGameplay), d.visualFrame-now.Sub(d.lastVisual))
	return max(wait, 0)
}

// Slower doubles the gameplay frame time.
func (d *Driver) Slower() {
	d.gameplayFrame = clampFrame(d.gameplayFrame * 2)
	slog.Info("gameplay frame time changed", "frame", d.gameplayFrame)
}

// Faster halves the gameplay frame time.
func (d *Driver) Faster() {
	d.gameplayFrame = clampFrame(d.gameplayFrame / 2)
	slog.Info("gameplay frame time changed", "frame", d.gameplayFrame)
}

// ToggleUncapped switches between paced and back-to-back gameplay ticks.
func (d *Driver) ToggleUncapped() {
	d.uncapped = !d.uncapped
	slog.Info("frame cap toggled", "uncapped", d.uncapped)
}

// GameplayFrame is the current gameplay frame time.
func (d *Driver) GameplayFrame() time.Duration { return d.gameplayFrame }

// Uncapped reports whether gameplay ticks run on every step.
func (d *Driver) Uncapped() bool { return d.uncapped }

// Ticks is the number of gameplay ticks run.
func (d *Driver) Ticks() int { return d.ticks }

// Dropped is the number of gameplay ticks that overran their frame.
func (d *Driver) Dropped() int { return d.dropped }
