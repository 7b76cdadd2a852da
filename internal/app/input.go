// internal/app/input.go
package app

import (
	"errors"

	"card-tower-defense/internal/defs"
	"card-tower-defense/internal/grid"
	"card-tower-defense/pkg/geom"
)

// InputEvent is a discrete input from a front-end.
type InputEvent interface {
	isInput()
}

type (
	PrimaryDown   struct{ Pos geom.Vec }
	PrimaryUp     struct{ Pos geom.Vec }
	SecondaryDown struct{ Pos geom.Vec }
	PointerMoved  struct{ Pos geom.Vec }
	KeyPressed    struct{ Key Key }
)

func (PrimaryDown) isInput()   {}
func (PrimaryUp) isInput()     {}
func (SecondaryDown) isInput() {}
func (PointerMoved) isInput()  {}
func (KeyPressed) isInput()    {}

// Key is a front-end independent command key.
type Key int

const (
	KeyNone Key = iota
	KeySpawnUnit
	KeyStartRound
	KeySlower
	KeyFaster
	KeyToggleUncapped
	KeyUpgrade
	KeyQuit
)

func (k Key) String() string {
	switch k {
	case KeySpawnUnit:
		return "spawn-unit"
	case KeyStartRound:
		return "start-round"
	case KeySlower:
		return "slower"
	case KeyFaster:
		return "faster"
	case KeyToggleUncapped:
		return "toggle-uncapped"
	case KeyUpgrade:
		return "upgrade"
	case KeyQuit:
		return "quit"
	}
	return "none"
}

// HandleInput applies one input event. Rejected actions are returned as
// errors and leave the game unchanged; KeyQuit returns ErrQuit.
func (g *Game) HandleInput(ev InputEvent) error {
	switch ev := ev.(type) {
	case PointerMoved:
		g.movePointer(ev.Pos)
	case PrimaryDown:
		g.movePointer(ev.Pos)
		if i, ok := g.Hand.CardAt(ev.Pos); ok {
			g.Hand.pick(i)
		}
	case PrimaryUp:
		g.movePointer(ev.Pos)
		return g.dropCard(ev.Pos)
	case SecondaryDown:
		g.movePointer(ev.Pos)
		if tile, ok := g.Grid.ClosestTile(ev.Pos); ok {
			g.RemoveTower(tile)
		}
	case KeyPressed:
		return g.handleKey(ev.Key)
	}
	return nil
}

// dropCard tries to play the held card on the tile under p. The card goes
// back to its slot either way; a played card is replaced.
func (g *Game) dropCard(p geom.Vec) error {
	card, ok := g.Hand.Held()
	if !ok {
		return nil
	}
	slot := g.Hand.held
	g.Hand.release()

	tile, ok := g.Grid.ClosestTile(p)
	if !ok {
		return nil
	}
	if _, err := g.PlaceTower(card.Kind, tile); err != nil {
		return err
	}
	g.Hand.replace(slot, g.cards)
	return nil
}

func (g *Game) handleKey(k Key) error {
	switch k {
	case KeyQuit:
		return ErrQuit
	case KeySpawnUnit:
		if _, err := g.SpawnUnit(false); err != nil {
			return err
		}
	case KeyStartRound:
		g.RoundSystem.StartNow()
	case KeySlower, KeyFaster, KeyToggleUncapped:
		if g.timeCtl == nil {
			return nil
		}
		switch k {
		case KeySlower:
			g.timeCtl.Slower()
		case KeyFaster:
			g.timeCtl.Faster()
		default:
			g.timeCtl.ToggleUncapped()
		}
	case KeyUpgrade:
		tile, ok := g.Grid.ClosestTile(g.pointer)
		if !ok {
			return ErrNoTile
		}
		return g.UpgradeTower(tile)
	}
	return nil
}

func (g *Game) movePointer(p geom.Vec) {
	g.pointer = p
	g.Hand.drag(p)
	if tile, ok := g.Grid.ClosestTile(p); ok {
		g.hover = tile
	} else {
		g.hover = grid.NoTile
	}
}

// Hovered returns the tile under the pointer.
func (g *Game) Hovered() (grid.TileID, bool) {
	return g.hover, g.hover != grid.NoTile
}

// IsRejection reports whether err is an ordinary refused action rather than
// a fault, so front-ends can log it quietly.
func IsRejection(err error) bool {
	for _, target := range rejections {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

var rejections = []error{
	ErrNoTile, ErrNoTower, ErrInsufficientGold, ErrEntryOccupied,
	grid.ErrTileHasTower, grid.ErrPathBlocked,
	defs.ErrMaxTier, defs.ErrNotUpgradable,
}
