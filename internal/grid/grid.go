// internal/grid/grid.go
package grid

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"card-tower-defense/internal/types"
	"card-tower-defense/pkg/geom"
	"card-tower-defense/pkg/graph"
)

var (
	ErrInvalidDims  = errors.New("grid: invalid dimensions")
	ErrNoTile       = errors.New("grid: no such tile")
	ErrTileHasTower = errors.New("grid: tile already holds a tower")
	ErrPathBlocked  = errors.New("grid: exit would become unreachable")
)

// Grid owns a rowsxcols array of tiles and the cached shortest-path
// predecessor map rooted at the entry tile.
type Grid struct {
	bounds     geom.Rect
	rows, cols int
	tiles      []Tile
	entry      TileID
	exit       TileID

	// prev maps every tile reachable from entry to its predecessor on a
	// fewest-hop path. Only replaced by a successful rebuild.
	prev map[TileID]TileID
}

// New builds the grid at origin with the given overall size.
// Entry is the top-left tile, exit the bottom-right one.
func New(origin, size geom.Vec, rows, cols int) (*Grid, error) {
	if rows <= 0 || cols <= 0 || rows*cols < 2 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDims, rows, cols)
	}
	if size.X <= 0 || size.Y <= 0 {
		return nil, fmt.Errorf("%w: size %vx%v", ErrInvalidDims, size.X, size.Y)
	}

	g := &Grid{
		bounds: geom.Rect{Min: origin, Size: size},
		rows:   rows,
		cols:   cols,
		tiles:  make([]Tile, rows*cols),
	}

	w := size.X / float64(cols)
	h := size.Y / float64(rows)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			id := g.index(r, c)
			g.tiles[id] = Tile{
				ID:  id,
				Row: r,
				Col: c,
				Rect: geom.Rect{
					Min:  geom.Vec{X: origin.X + w*float64(c), Y: origin.Y + h*float64(r)},
					Size: geom.Vec{X: w, Y: h},
				},
			}
		}
	}

	for i := range g.tiles {
		t := &g.tiles[i]
		t.left, t.right, t.up, t.down = NoTile, NoTile, NoTile, NoTile
		if t.Col > 0 {
			t.left = g.index(t.Row, t.Col-1)
		}
		if t.Col+1 < cols {
			t.right = g.index(t.Row, t.Col+1)
		}
		if t.Row > 0 {
			t.up = g.index(t.Row-1, t.Col)
		}
		if t.Row+1 < rows {
			t.down = g.index(t.Row+1, t.Col)
		}
		for _, n := range []TileID{t.left, t.right, t.up, t.down} {
			if n != NoTile {
				t.linked = append(t.linked, n)
			}
		}
	}

	g.entry = g.index(0, 0)
	g.exit = g.index(rows-1, cols-1)
	g.prev = map[TileID]TileID{}
	if !g.UpdateShortestPathCache() {
		return nil, fmt.Errorf("%w: empty grid has no route", ErrPathBlocked)
	}
	return g, nil
}

func (g *Grid) index(row, col int) TileID {
	return TileID(row*g.cols + col)
}

func (g *Grid) Entry() TileID { return g.entry }
func (g *Grid) Exit() TileID  { return g.exit }

// Dims returns (rows, cols).
func (g *Grid) Dims() (int, int) { return g.rows, g.cols }

// Len is the number of tiles.
func (g *Grid) Len() int { return len(g.tiles) }

func (g *Grid) Bounds() geom.Rect { return g.bounds }

// TileSize is the size of a single tile.
func (g *Grid) TileSize() geom.Vec {
	return g.tiles[0].Rect.Size
}

// Tiles returns every tile in id order. Callers must not mutate occupancy.
func (g *Grid) Tiles() []*Tile {
	out := make([]*Tile, len(g.tiles))
	for i := range g.tiles {
		out[i] = &g.tiles[i]
	}
	return out
}

// Valid reports whether id refers to a tile of this grid.
func (g *Grid) Valid(id TileID) bool {
	return id >= 0 && int(id) < len(g.tiles)
}

// Tile returns the tile for id, or nil for an invalid handle.
func (g *Grid) Tile(id TileID) *Tile {
	if !g.Valid(id) {
		return nil
	}
	return &g.tiles[id]
}

// TileAt looks a tile up by row and column.
func (g *Grid) TileAt(row, col int) (TileID, bool) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return NoTile, false
	}
	return g.index(row, col), true
}

// InBounds reports whether p lies on the grid, edges included.
func (g *Grid) InBounds(p geom.Vec) bool {
	return g.bounds.Contains(p)
}

// ClosestTile returns the tile whose center is nearest to p. Points outside
// the grid have no result.
func (g *Grid) ClosestTile(p geom.Vec) (TileID, bool) {
	if !g.InBounds(p) {
		return NoTile, false
	}
	ts := g.TileSize()
	col := int(math.Floor((p.X - g.bounds.Min.X) / ts.X))
	row := int(math.Floor((p.Y - g.bounds.Min.Y) / ts.Y))
	col = min(max(col, 0), g.cols-1)
	row = min(max(row, 0), g.rows-1)
	return g.index(row, col), true
}

// TilesInRange returns every tile whose center lies within radius of the
// center of id, id itself included.
func (g *Grid) TilesInRange(id TileID, radius float64) []TileID {
	origin := g.Tile(id)
	if origin == nil {
		return nil
	}
	c := origin.Center()
	ts := g.TileSize()
	dc := int(math.Ceil(radius / ts.X))
	dr := int(math.Ceil(radius / ts.Y))

	var out []TileID
	for r := max(origin.Row-dr, 0); r <= min(origin.Row+dr, g.rows-1); r++ {
		for col := max(origin.Col-dc, 0); col <= min(origin.Col+dc, g.cols-1); col++ {
			t := &g.tiles[g.index(r, col)]
			if geom.Distance(t.Center(), c) <= radius {
				out = append(out, t.ID)
			}
		}
	}
	return out
}

// tileGraph adapts the grid for the path search. Tiles holding towers and the
// optional excluded tile are blocked.
type tileGraph struct {
	g       *Grid
	exclude TileID
}

func (tg tileGraph) Neighbors(n TileID) []TileID { return tg.g.tiles[n].linked }
func (tg tileGraph) Blocked(n TileID) bool {
	return n == tg.exclude || tg.g.tiles[n].HasTower()
}
func (tg tileGraph) Cost(u, v TileID) int { return 1 }

func (g *Grid) ids() []TileID {
	ids := make([]TileID, len(g.tiles))
	for i := range g.tiles {
		ids[i] = TileID(i)
	}
	return ids
}

func (g *Grid) search(source, exclude TileID) graph.Result[TileID] {
	return graph.ShortestPaths(g.ids(), source, tileGraph{g: g, exclude: exclude})
}

// ShortestPath returns the tiles from `from` to `to`, ordered [to, ..., from].
// Paths rooted at the entry tile come from the cache; any other source runs a
// fresh search. nil means `to` is unreachable.
func (g *Grid) ShortestPath(from, to TileID) []TileID {
	if !g.Valid(from) || !g.Valid(to) {
		return nil
	}
	if from == g.entry {
		return graph.WalkBack(g.prev, from, to)
	}
	return g.search(from, NoTile).PathTo(from, to)
}

// PathToExit is ShortestPath(from, Exit()).
func (g *Grid) PathToExit(from TileID) []TileID {
	return g.ShortestPath(from, g.exit)
}

// Route returns the cached entry->exit route, ordered [exit, ..., entry].
func (g *Grid) Route() []TileID {
	return graph.WalkBack(g.prev, g.entry, g.exit)
}

// CanPlaceTower reports whether a tower may go on id: the tile must be free of
// towers and the exit must stay reachable from the entry without it. Grid
// state is not touched.
func (g *Grid) CanPlaceTower(id TileID) bool {
	t := g.Tile(id)
	if t == nil || t.HasTower() {
		return false
	}
	return g.search(g.entry, id).Reachable(g.exit)
}

// ExitReachable runs a fresh search and reports whether the exit can be
// reached from the entry.
func (g *Grid) ExitReachable() bool {
	return g.search(g.entry, NoTile).Reachable(g.exit)
}

// UpdateShortestPathCache rebuilds the path cache from the entry tile. If the
// exit is unreachable the previous cache is kept and false is returned.
func (g *Grid) UpdateShortestPathCache() bool {
	res := g.search(g.entry, NoTile)
	if !res.Reachable(g.exit) {
		slog.Debug("path cache rebuild kept previous cache", "unreachable", len(res.Unreachable))
		return false
	}
	g.prev = res.Prev
	return true
}

// AddOccupant puts an actor on a tile. Adding a tower rebuilds the path
// cache; if that leaves the exit unreachable the tower is taken off again and
// ErrPathBlocked is returned.
func (g *Grid) AddOccupant(id TileID, o Occupant) error {
	t := g.Tile(id)
	if t == nil {
		return fmt.Errorf("%w: %d", ErrNoTile, id)
	}
	if t.Contains(o.ID) {
		return nil
	}
	wasBlocked := t.HasTower()
	if o.Kind == types.KindTower && wasBlocked {
		return fmt.Errorf("%w: tile %d", ErrTileHasTower, id)
	}
	t.add(o)
	if t.HasTower() != wasBlocked && !g.UpdateShortestPathCache() {
		t.remove(o.ID)
		return fmt.Errorf("%w: tile %d", ErrPathBlocked, id)
	}
	return nil
}

// RemoveOccupant takes an actor off a tile, rebuilding the path cache when the
// tile stops blocking.
func (g *Grid) RemoveOccupant(id TileID, eid types.EntityID) (Occupant, bool) {
	t := g.Tile(id)
	if t == nil {
		return Occupant{}, false
	}
	wasBlocked := t.HasTower()
	o, ok := t.remove(eid)
	if ok && t.HasTower() != wasBlocked {
		g.UpdateShortestPathCache()
	}
	return o, ok
}

// RemoveTower takes the tower off id, if there is one.
func (g *Grid) RemoveTower(id TileID) (types.EntityID, bool) {
	t := g.Tile(id)
	if t == nil {
		return 0, false
	}
	tid, ok := t.Tower()
	if !ok {
		return 0, false
	}
	g.RemoveOccupant(id, tid)
	return tid, true
}

// CacheSnapshot returns a copy of the predecessor map.
func (g *Grid) CacheSnapshot() map[TileID]TileID {
	out := make(map[TileID]TileID, len(g.prev))
	for k, v := range g.prev {
		out[k] = v
	}
	return out
}
