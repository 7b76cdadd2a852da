// internal/event/types.go
package event

import (
	"card-tower-defense/internal/defs"
	"card-tower-defense/internal/grid"
	"card-tower-defense/internal/types"
)

const (
	UnitSpawned       EventType = "UnitSpawned"       // UnitData
	UnitDied          EventType = "UnitDied"          // UnitData
	UnitExited        EventType = "UnitExited"        // UnitData
	TowerPlaced       EventType = "TowerPlaced"       // TowerData
	TowerRemoved      EventType = "TowerRemoved"      // TowerData
	TowerUpgraded     EventType = "TowerUpgraded"     // TowerData
	ProjectileExpired EventType = "ProjectileExpired" // ProjectileData
	RoundStarted      EventType = "RoundStarted"      // RoundData
	RoundEnded        EventType = "RoundEnded"        // RoundData
	GameOver          EventType = "GameOver"          // GameOverData
)

type UnitData struct {
	ID      types.EntityID
	Tile    grid.TileID
	Gold    int
	Counted bool
}

type TowerData struct {
	ID   types.EntityID
	Kind defs.TowerKind
	Tile grid.TileID
}

type ProjectileData struct {
	ID  types.EntityID
	Hit bool
}

type RoundData struct {
	Number int
	Units  int
}

// GameOverData.Victory is false on defeat.
type GameOverData struct {
	Victory bool
	Round   int
}
