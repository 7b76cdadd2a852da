package telemetry

import "github.com/google/uuid"

// Collector accumulates counters for the round in progress.
type Collector struct {
	session string
	current RoundStats
	open    bool
}

// NewCollector starts a collector under a fresh session id.
func NewCollector() *Collector {
	return &Collector{session: uuid.NewString()}
}

// Session returns the id stamped on every record.
func (c *Collector) Session() string {
	return c.session
}

// StartRound resets the counters for round n.
func (c *Collector) StartRound(n int) {
	c.current = RoundStats{Session: c.session, Round: n}
	c.open = true
}

// Tick counts one gameplay tick of the open round.
func (c *Collector) Tick() {
	if c.open {
		c.current.Ticks++
	}
}

func (c *Collector) UnitSpawned() {
	if c.open {
		c.current.Spawned++
	}
}

func (c *Collector) UnitKilled() {
	if c.open {
		c.current.Killed++
	}
}

func (c *Collector) UnitExited() {
	if c.open {
		c.current.Exited++
	}
}

// EndRound closes the open round with the player's end-of-round state.
func (c *Collector) EndRound(gold, health, towers int) (RoundStats, bool) {
	if !c.open {
		return RoundStats{}, false
	}
	c.open = false
	c.current.Gold = gold
	c.current.Health = health
	c.current.Towers = towers
	return c.current, true
}
