// internal/grid/tile.go
package grid

import (
	"card-tower-defense/internal/types"
	"card-tower-defense/pkg/geom"
)

// TileID is a handle into the grid's tile slice.
type TileID int

// NoTile marks a missing neighbor or a failed lookup.
const NoTile TileID = -1

// Direction is one of the four grid directions.
type Direction int

const (
	DirUnknown Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

var directionVecs = map[Direction]geom.Vec{
	DirLeft:  {X: -1, Y: 0},
	DirRight: {X: 1, Y: 0},
	DirUp:    {X: 0, Y: -1},
	DirDown:  {X: 0, Y: 1},
}

// Vec returns the unit step for d. DirUnknown has no step.
func (d Direction) Vec() geom.Vec {
	return directionVecs[d]
}

func (d Direction) String() string {
	switch d {
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "unknown"
	}
}

// Occupant is an actor standing on a tile.
type Occupant struct {
	ID   types.EntityID
	Kind types.Kind
}

// Tile is one grid cell. Only the owning Grid mutates its occupants.
type Tile struct {
	ID       TileID
	Row, Col int
	Rect     geom.Rect

	left, right, up, down TileID
	linked                []TileID
	occupants             []Occupant
}

func (t *Tile) Center() geom.Vec {
	return t.Rect.Center()
}

// Neighbor returns the linked tile in direction d, or NoTile at an edge.
func (t *Tile) Neighbor(d Direction) TileID {
	switch d {
	case DirLeft:
		return t.left
	case DirRight:
		return t.right
	case DirUp:
		return t.up
	case DirDown:
		return t.down
	}
	return NoTile
}

// Neighbors returns the existing linked tiles (left, right, up, down order).
func (t *Tile) Neighbors() []TileID {
	return t.linked
}

// DirectionTo returns the direction of a linked neighbor, or DirUnknown.
func (t *Tile) DirectionTo(other TileID) Direction {
	switch other {
	case NoTile:
		return DirUnknown
	case t.right:
		return DirRight
	case t.left:
		return DirLeft
	case t.down:
		return DirDown
	case t.up:
		return DirUp
	}
	return DirUnknown
}

// HasTower reports whether the tile is path-blocking.
func (t *Tile) HasTower() bool {
	_, ok := t.Tower()
	return ok
}

// Tower returns the tower standing on the tile, if any.
func (t *Tile) Tower() (types.EntityID, bool) {
	for _, o := range t.occupants {
		if o.Kind == types.KindTower {
			return o.ID, true
		}
	}
	return 0, false
}

// Units returns the units on the tile in occupant order.
func (t *Tile) Units() []types.EntityID {
	return t.ofKind(types.KindUnit)
}

func (t *Tile) HasUnits() bool {
	for _, o := range t.occupants {
		if o.Kind == types.KindUnit {
			return true
		}
	}
	return false
}

func (t *Tile) ofKind(k types.Kind) []types.EntityID {
	var ids []types.EntityID
	for _, o := range t.occupants {
		if o.Kind == k {
			ids = append(ids, o.ID)
		}
	}
	return ids
}

// Contains reports whether id stands on the tile.
func (t *Tile) Contains(id types.EntityID) bool {
	for _, o := range t.occupants {
		if o.ID == id {
			return true
		}
	}
	return false
}

// Occupants returns a copy of the occupant list.
func (t *Tile) Occupants() []Occupant {
	out := make([]Occupant, len(t.occupants))
	copy(out, t.occupants)
	return out
}

func (t *Tile) add(o Occupant) {
	t.occupants = append(t.occupants, o)
}

func (t *Tile) remove(id types.EntityID) (Occupant, bool) {
	for i, o := range t.occupants {
		if o.ID == id {
			t.occupants = append(t.occupants[:i], t.occupants[i+1:]...)
			return o, true
		}
	}
	return Occupant{}, false
}
