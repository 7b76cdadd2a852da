// internal/component/unit.go
package component

import "card-tower-defense/internal/grid"

// Unit walks a tile path towards the exit.
type Unit struct {
	Tile grid.TileID
	// Path is consumed back to front; the last element is the next tile.
	Path   []grid.TileID
	Facing grid.Direction
	Health int
	Speed  float64
	Gold   int
	Active bool
	// Counted units were spawned by the round scheduler and take part in
	// the round's remaining-unit accounting.
	Counted bool
}

// NextTile returns the top of the path queue.
func (u *Unit) NextTile() (grid.TileID, bool) {
	if len(u.Path) == 0 {
		return grid.NoTile, false
	}
	return u.Path[len(u.Path)-1], true
}

// PopTile removes the top of the path queue.
func (u *Unit) PopTile() grid.TileID {
	n := len(u.Path)
	if n == 0 {
		return grid.NoTile
	}
	top := u.Path[n-1]
	u.Path = u.Path[:n-1]
	return top
}
