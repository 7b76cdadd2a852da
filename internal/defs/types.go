// internal/defs/types.go
package defs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownKind   = errors.New("defs: unknown tower kind")
	ErrMaxTier       = errors.New("defs: tower already at max tier")
	ErrNotUpgradable = errors.New("defs: tower kind cannot be upgraded")
)

// TowerKind is the closed set of tower types a card can authorize.
type TowerKind int

const (
	KindMaze TowerKind = iota
	KindStomp
	KindShoot
)

// AllKinds lists every tower kind in card-draw order.
var AllKinds = []TowerKind{KindMaze, KindStomp, KindShoot}

func (k TowerKind) String() string {
	switch k {
	case KindMaze:
		return "maze"
	case KindStomp:
		return "stomp"
	case KindShoot:
		return "shoot"
	}
	return fmt.Sprintf("TowerKind(%d)", int(k))
}

// ParseKind is the inverse of String.
func ParseKind(s string) (TowerKind, error) {
	for _, k := range AllKinds {
		if strings.EqualFold(s, k.String()) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Visibility selects the tiles a tower can affect, fixed at placement.
type Visibility int

const (
	VisibleNone      Visibility = iota // never attacks
	VisibleNeighbors                   // the four linked tiles
	VisibleRadius                      // tiles whose center lies within Range
)

// Effect is what a tower does on each active tick.
type Effect int

const (
	EffectNone       Effect = iota
	EffectStomp             // flat damage to every unit on every visible tile
	EffectProjectile        // one projectile aimed at the first tracked target
)

// Phase of the tower attack cycle.
type Phase int

const (
	PhaseReady Phase = iota
	PhaseStartup
	PhaseActive
	PhasePost
	PhaseReload
)

func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhaseStartup:
		return "startup"
	case PhaseActive:
		return "active"
	case PhasePost:
		return "post"
	case PhaseReload:
		return "reload"
	}
	return "unknown"
}

// Tier of a tower instance.
type Tier int

const (
	TierBase Tier = iota
	TierUpgraded
)
