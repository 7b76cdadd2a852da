// internal/defs/towers.go
package defs

import (
	"fmt"
	"image/color"
	"math"

	"card-tower-defense/internal/config"
)

// UpgradeFactor scales size and damage on the single upgrade.
const UpgradeFactor = 1.5

// Timing is the attack cycle length of each phase, in ticks.
type Timing struct {
	Startup int
	Active  int
	End     int
	Reload  int
}

// Period is the tick count after which the counter wraps back to ready.
func (t Timing) Period() int {
	return t.Startup + t.Active + t.End + t.Reload
}

// PhaseAt maps a running counter (>= 1) to its phase.
func (t Timing) PhaseAt(counter int) Phase {
	switch {
	case counter <= 0:
		return PhaseReady
	case counter < t.Startup:
		return PhaseStartup
	case counter < t.Startup+t.Active:
		return PhaseActive
	case counter < t.Startup+t.Active+t.End:
		return PhasePost
	}
	return PhaseReload
}

// ProjectileDef describes what a ranged tower fires.
type ProjectileDef struct {
	Speed  float64
	Damage int
	Size   float64
}

// TowerDefinition holds all the static data for a tower kind.
type TowerDefinition struct {
	Kind        TowerKind
	Cost        int
	UpgradeCost int
	Upgradable  bool
	Damage      int
	Timing      Timing
	Visibility  Visibility
	Range       float64
	Effect      Effect
	Projectile  ProjectileDef
	Size        float64
	Color       color.RGBA
}

// Upgrade returns the stats of a tower after its single upgrade. The tower
// is left as is when an error is returned.
func (d TowerDefinition) Upgrade(tier Tier, size float64, damage int) (Tier, float64, int, error) {
	if !d.Upgradable {
		return tier, size, damage, fmt.Errorf("%w: %s", ErrNotUpgradable, d.Kind)
	}
	if tier >= TierUpgraded {
		return tier, size, damage, fmt.Errorf("%w: %s", ErrMaxTier, d.Kind)
	}
	return TierUpgraded, size * UpgradeFactor, int(math.Round(float64(damage) * UpgradeFactor)), nil
}

func timingFrom(c config.TowerConfig) Timing {
	return Timing{
		Startup: c.StartupTicks,
		Active:  c.ActiveTicks,
		End:     c.EndTicks,
		Reload:  c.ReloadTicks,
	}
}

func newMaze(c config.TowerConfig) TowerDefinition {
	return TowerDefinition{
		Kind:        KindMaze,
		Cost:        c.Cost,
		UpgradeCost: c.UpgradeCost,
		Visibility:  VisibleNone,
		Effect:      EffectNone,
		Size:        c.Size,
		Color:       config.MazeColor,
	}
}

func newStomp(c config.TowerConfig) TowerDefinition {
	return TowerDefinition{
		Kind:        KindStomp,
		Cost:        c.Cost,
		UpgradeCost: c.UpgradeCost,
		Upgradable:  true,
		Damage:      c.Damage,
		Timing:      timingFrom(c),
		Visibility:  VisibleNeighbors,
		Effect:      EffectStomp,
		Size:        c.Size,
		Color:       config.StompColor,
	}
}

func newShoot(c config.TowerConfig) TowerDefinition {
	return TowerDefinition{
		Kind:        KindShoot,
		Cost:        c.Cost,
		UpgradeCost: c.UpgradeCost,
		Upgradable:  true,
		// Shoot towers deal their damage through projectiles.
		Damage:     c.ProjectileDamage,
		Timing:     timingFrom(c),
		Visibility: VisibleRadius,
		Range:      c.Range,
		Effect:     EffectProjectile,
		Projectile: ProjectileDef{
			Speed:  c.ProjectileSpeed,
			Damage: c.ProjectileDamage,
			Size:   c.ProjectileSize,
		},
		Size:  c.Size,
		Color: config.ShootColor,
	}
}
