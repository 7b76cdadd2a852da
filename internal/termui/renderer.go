// internal/termui/renderer.go
package termui

import (
	"image/color"
	"math"

	"card-tower-defense/internal/app"
	"card-tower-defense/internal/types"
	"card-tower-defense/pkg/geom"

	"github.com/gdamore/tcell/v2"
)

const (
	hudRows   = 4
	cardX     = 1
	cardWidth = 9
	gridX     = cardX + cardWidth + 3
	gridY     = hudRows + 1
	tileCells = 2 // terminal columns per tile
)

// Renderer draws snapshots as text cells. Each tile takes two columns and
// one row; the hand is listed to the left of the grid.
type Renderer struct {
	screen tcell.Screen

	// last drawn layout, for mapping cells back to world positions
	tiles []app.TileView
	cards []app.CardView
	rows  int
	cols  int
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Draw renders s and shows the screen.
func (r *Renderer) Draw(s *app.Snapshot) {
	r.remember(s)
	r.screen.Clear()

	for i, line := range s.Status() {
		r.text(1, i, line, tcell.StyleDefault.Bold(true))
	}

	reach := map[int]bool{}
	if s.Reach != nil {
		for _, id := range s.Reach.Tiles {
			reach[int(id)] = true
		}
	}
	for _, t := range s.Tiles {
		bg := rgb(tileColor(s, t))
		if reach[int(t.ID)] {
			bg = tcell.ColorDarkRed
		}
		style := tcell.StyleDefault.Background(bg)
		if t.Hovered {
			style = style.Reverse(true)
		}
		x, y := gridX+t.Col*tileCells, gridY+t.Row
		r.screen.SetContent(x, y, '.', nil, style)
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}

	for _, a := range s.Actors {
		row, col, ok := r.cellOf(a.Pos)
		if !ok {
			continue
		}
		x, y := gridX+col*tileCells, gridY+row
		_, _, style, _ := r.screen.GetContent(x, y)
		r.screen.SetContent(x, y, actorGlyph(a), nil, style.Foreground(rgb(a.Color)))
	}

	for i, c := range s.Cards {
		style := tcell.StyleDefault.Foreground(rgb(c.Color))
		if c.Held {
			style = style.Reverse(true)
		}
		r.text(cardX, gridY+i, "["+pad(c.Kind.String(), cardWidth-2)+"]", style)
	}

	r.screen.Show()
}

func (r *Renderer) remember(s *app.Snapshot) {
	r.tiles = s.Tiles
	r.cards = s.Cards
	r.rows, r.cols = 0, 0
	for _, t := range s.Tiles {
		r.rows = max(r.rows, t.Row+1)
		r.cols = max(r.cols, t.Col+1)
	}
}

// cellOf maps a world position to the tile row and column it lies on.
func (r *Renderer) cellOf(p geom.Vec) (int, int, bool) {
	if len(r.tiles) == 0 {
		return 0, 0, false
	}
	first := r.tiles[0].Rect
	col := int(math.Floor((p.X - first.Min.X) / first.Size.X))
	row := int(math.Floor((p.Y - first.Min.Y) / first.Size.Y))
	if row < 0 || row >= r.rows || col < 0 || col >= r.cols {
		return 0, 0, false
	}
	return row, col, true
}

// ToWorld maps a screen cell to the world position a pointer there stands
// for: the center of a tile or of a card.
func (r *Renderer) ToWorld(x, y int) (geom.Vec, bool) {
	if y >= gridY && y < gridY+len(r.cards) && x >= cardX && x < cardX+cardWidth {
		return r.cards[y-gridY].Rect.Center(), true
	}
	col, row := (x-gridX)/tileCells, y-gridY
	if x < gridX || row < 0 || row >= r.rows || col >= r.cols {
		return geom.Vec{}, false
	}
	return r.tiles[row*r.cols+col].Rect.Center(), true
}

func (r *Renderer) text(x, y int, s string, style tcell.Style) {
	for i, ch := range []rune(s) {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}

func tileColor(s *app.Snapshot, t app.TileView) color.RGBA {
	switch {
	case t.ID == s.Entry:
		return color.RGBA{0, 120, 0, 255}
	case t.ID == s.Exit:
		return color.RGBA{120, 0, 0, 255}
	case t.OnRoute:
		return color.RGBA{40, 60, 80, 255}
	}
	return color.RGBA{20, 30, 40, 255}
}

func actorGlyph(a app.ActorView) rune {
	switch a.Kind {
	case types.KindTower:
		return '#'
	case types.KindUnit:
		return 'o'
	case types.KindProjectile:
		return '*'
	}
	return '?'
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func pad(s string, n int) string {
	for len(s) < n {
		s += " "
	}
	return s
}
