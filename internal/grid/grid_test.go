package grid

import (
	"errors"
	"reflect"
	"testing"

	"card-tower-defense/internal/types"
	"card-tower-defense/pkg/geom"
)

// forceOccupant places an occupant with no guard and no cache rebuild, to
// reach states the public API refuses to build.
func (g *Grid) forceOccupant(id TileID, o Occupant) {
	g.tiles[id].add(o)
}

func newTestGrid(t *testing.T, rows, cols int) *Grid {
	t.Helper()
	g, err := New(geom.Vec{}, geom.Vec{X: float64(cols) * 10, Y: float64(rows) * 10}, rows, cols)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g
}

func at(t *testing.T, g *Grid, row, col int) TileID {
	t.Helper()
	id, ok := g.TileAt(row, col)
	if !ok {
		t.Fatalf("TileAt(%d, %d) missing", row, col)
	}
	return id
}

func tower(id types.EntityID) Occupant {
	return Occupant{ID: id, Kind: types.KindTower}
}

func TestNewLinksNeighbors(t *testing.T) {
	g := newTestGrid(t, 3, 4)

	if g.Entry() != at(t, g, 0, 0) || g.Exit() != at(t, g, 2, 3) {
		t.Fatalf("entry/exit = %d/%d, want corners", g.Entry(), g.Exit())
	}

	corner := g.Tile(g.Entry())
	if corner.Neighbor(DirLeft) != NoTile || corner.Neighbor(DirUp) != NoTile {
		t.Errorf("corner has neighbors off the grid")
	}
	if got := len(corner.Neighbors()); got != 2 {
		t.Errorf("corner neighbors = %d, want 2", got)
	}
	mid := g.Tile(at(t, g, 1, 1))
	if got := len(mid.Neighbors()); got != 4 {
		t.Errorf("inner neighbors = %d, want 4", got)
	}
	if mid.DirectionTo(at(t, g, 1, 2)) != DirRight || mid.DirectionTo(at(t, g, 0, 1)) != DirUp {
		t.Errorf("DirectionTo disagrees with layout")
	}
	if c := mid.Center(); c != (geom.Vec{X: 15, Y: 15}) {
		t.Errorf("center = %v, want {15 15}", c)
	}
}

func TestNewRejectsBadDims(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {1, 1}, {-2, 4}} {
		if _, err := New(geom.Vec{}, geom.Vec{X: 10, Y: 10}, dims[0], dims[1]); !errors.Is(err, ErrInvalidDims) {
			t.Errorf("New(%v) err = %v, want ErrInvalidDims", dims, err)
		}
	}
}

func TestShortestPathFromEntryUsesFewestHops(t *testing.T) {
	g := newTestGrid(t, 3, 4)
	path := g.PathToExit(g.Entry())
	if len(path) != 6 {
		t.Fatalf("len(path) = %d, want 6", len(path))
	}
	if path[0] != g.Exit() || path[len(path)-1] != g.Entry() {
		t.Errorf("path endpoints wrong: %v", path)
	}

	// Non-entry source runs its own search.
	from := at(t, g, 2, 0)
	p2 := g.PathToExit(from)
	if len(p2) != 4 || p2[len(p2)-1] != from {
		t.Errorf("path from (2,0) = %v, want 4 tiles ending at %d", p2, from)
	}
}

// corridor builds
//
//	E . . .
//	T T T .
//	. . . X
//
// so every route runs along the top row and down the right column.
func corridor(t *testing.T) *Grid {
	g := newTestGrid(t, 3, 4)
	for c := 0; c < 3; c++ {
		if err := g.AddOccupant(at(t, g, 1, c), tower(types.EntityID(c+1))); err != nil {
			t.Fatalf("AddOccupant(1,%d): %v", c, err)
		}
	}
	return g
}

func TestCanPlaceTowerCorridor(t *testing.T) {
	g := corridor(t)

	tests := []struct {
		name     string
		row, col int
		want     bool
	}{
		{"occupied", 1, 0, false},
		{"entry", 0, 0, false},
		{"exit", 2, 3, false},
		{"corridor top", 0, 2, false},
		{"corridor bend", 1, 3, false},
		{"dead end", 2, 0, true},
		{"off route", 2, 2, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.CanPlaceTower(at(t, g, tc.row, tc.col)); got != tc.want {
				t.Errorf("CanPlaceTower(%d,%d) = %v, want %v", tc.row, tc.col, got, tc.want)
			}
		})
	}

	if g.CanPlaceTower(NoTile) {
		t.Errorf("CanPlaceTower(NoTile) = true")
	}
}

func TestCanPlaceTowerDoesNotMutate(t *testing.T) {
	g := corridor(t)
	before := g.CacheSnapshot()
	g.CanPlaceTower(at(t, g, 1, 3))
	if !reflect.DeepEqual(before, g.CacheSnapshot()) {
		t.Errorf("CanPlaceTower changed the cache")
	}
	if g.Tile(at(t, g, 1, 3)).HasTower() {
		t.Errorf("CanPlaceTower left a tower behind")
	}
}

func TestAddTowerRollsBackWhenBlocking(t *testing.T) {
	g := corridor(t)
	bend := at(t, g, 1, 3)
	err := g.AddOccupant(bend, tower(99))
	if !errors.Is(err, ErrPathBlocked) {
		t.Fatalf("err = %v, want ErrPathBlocked", err)
	}
	if g.Tile(bend).HasTower() {
		t.Errorf("blocking tower was not rolled back")
	}
	if g.Route() == nil {
		t.Errorf("route lost after rejected add")
	}
}

func TestAddSecondTower(t *testing.T) {
	g := newTestGrid(t, 3, 4)
	id := at(t, g, 2, 0)
	if err := g.AddOccupant(id, tower(1)); err != nil {
		t.Fatalf("first tower: %v", err)
	}
	if err := g.AddOccupant(id, tower(2)); !errors.Is(err, ErrTileHasTower) {
		t.Errorf("second tower err = %v, want ErrTileHasTower", err)
	}
	// Units and projectiles share the tile freely.
	if err := g.AddOccupant(id, Occupant{ID: 3, Kind: types.KindUnit}); err != nil {
		t.Errorf("unit on tower tile: %v", err)
	}
	if units := g.Tile(id).Units(); len(units) != 1 || units[0] != 3 {
		t.Errorf("Units() = %v, want [3]", units)
	}
}

func TestUnreachableRebuildKeepsCache(t *testing.T) {
	g := newTestGrid(t, 3, 4)
	before := g.CacheSnapshot()

	for c := 0; c < 4; c++ {
		g.forceOccupant(at(t, g, 1, c), tower(types.EntityID(c+1)))
	}

	if g.UpdateShortestPathCache() {
		t.Fatalf("rebuild succeeded with the exit walled off")
	}
	if after := g.CacheSnapshot(); !reflect.DeepEqual(before, after) {
		t.Errorf("cache changed on failed rebuild")
	}
}

func TestRemoveTowerRebuildsCache(t *testing.T) {
	g := corridor(t)
	if n := len(g.Route()); n != 6 {
		t.Fatalf("corridor route len = %d, want 6", n)
	}
	id, ok := g.RemoveTower(at(t, g, 1, 1))
	if !ok || id != 2 {
		t.Fatalf("RemoveTower = %d, %v", id, ok)
	}
	if !g.CanPlaceTower(at(t, g, 1, 3)) {
		t.Errorf("bend still required after opening the wall")
	}
	if _, ok := g.RemoveTower(at(t, g, 1, 1)); ok {
		t.Errorf("second RemoveTower succeeded")
	}
}

func TestClosestTile(t *testing.T) {
	g := newTestGrid(t, 3, 4)
	tests := []struct {
		p      geom.Vec
		want   TileID
		wantOK bool
	}{
		{geom.Vec{X: 1, Y: 1}, at(t, g, 0, 0), true},
		{geom.Vec{X: 39.9, Y: 29.9}, at(t, g, 2, 3), true},
		{geom.Vec{X: 40, Y: 30}, at(t, g, 2, 3), true},
		{geom.Vec{X: 25, Y: 12}, at(t, g, 1, 2), true},
		{geom.Vec{X: -1, Y: 5}, NoTile, false},
		{geom.Vec{X: 5, Y: 31}, NoTile, false},
	}
	for _, tc := range tests {
		got, ok := g.ClosestTile(tc.p)
		if got != tc.want || ok != tc.wantOK {
			t.Errorf("ClosestTile(%v) = %d, %v; want %d, %v", tc.p, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestTilesInRange(t *testing.T) {
	g := newTestGrid(t, 5, 5)
	center := at(t, g, 2, 2)

	if got := len(g.TilesInRange(center, 10)); got != 5 {
		t.Errorf("radius 10: %d tiles, want 5", got)
	}
	if got := len(g.TilesInRange(center, 15)); got != 9 {
		t.Errorf("radius 15: %d tiles, want 9", got)
	}
	if got := len(g.TilesInRange(at(t, g, 0, 0), 10)); got != 3 {
		t.Errorf("corner radius 10: %d tiles, want 3", got)
	}
}
