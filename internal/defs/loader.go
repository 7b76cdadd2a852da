// internal/defs/loader.go
package defs

import (
	"fmt"
	"log/slog"

	"card-tower-defense/internal/config"
)

// TowerLibrary holds the definition of every tower kind.
type TowerLibrary map[TowerKind]TowerDefinition

// NewTowerLibrary builds the tower table from the loaded configuration.
func NewTowerLibrary(cfg *config.Config) (TowerLibrary, error) {
	lib := TowerLibrary{
		KindMaze:  newMaze(cfg.Towers.Maze),
		KindStomp: newStomp(cfg.Towers.Stomp),
		KindShoot: newShoot(cfg.Towers.Shoot),
	}
	for kind, def := range lib {
		if def.Effect != EffectNone && def.Timing.Period() <= def.Timing.Startup {
			return nil, fmt.Errorf("failed to build %s definition: attack cycle has no active window", kind)
		}
		if def.Cost < 0 {
			return nil, fmt.Errorf("failed to build %s definition: negative cost", kind)
		}
	}
	slog.Debug("loaded tower definitions", "count", len(lib))
	return lib, nil
}

// Get returns the definition for kind.
func (l TowerLibrary) Get(kind TowerKind) (TowerDefinition, error) {
	def, ok := l[kind]
	if !ok {
		return TowerDefinition{}, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	return def, nil
}
