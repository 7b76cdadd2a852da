// internal/render/grid_renderer.go
package render

import (
	"image/color"

	"card-tower-defense/internal/app"
	"card-tower-defense/internal/component"
	"card-tower-defense/internal/config"
	"card-tower-defense/pkg/geom"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// GridRenderer draws a game snapshot. The tile background is pre-rendered
// and only redrawn when the route changes.
type GridRenderer struct {
	fontFace font.Face
	mapImage *ebiten.Image
	routeKey string
}

func NewGridRenderer(screenWidth, screenHeight int) *GridRenderer {
	return &GridRenderer{
		fontFace: basicfont.Face7x13,
		mapImage: ebiten.NewImage(screenWidth, screenHeight),
	}
}

// RenderMapImage redraws the tile background.
func (r *GridRenderer) RenderMapImage(s *app.Snapshot) {
	r.mapImage.Clear()
	r.mapImage.Fill(config.BackgroundColor)
	for _, t := range s.Tiles {
		fill := config.TileColor
		switch {
		case t.ID == s.Entry:
			fill = config.EntryColor
		case t.ID == s.Exit:
			fill = config.ExitColor
		case t.OnRoute:
			fill = config.RouteColor
		}
		fillRect(r.mapImage, t.Rect, fill)
		strokeRect(r.mapImage, t.Rect, LightenColor(DarkenColor(fill), 40))
	}
}

// Draw renders s onto screen.
func (r *GridRenderer) Draw(screen *ebiten.Image, s *app.Snapshot) {
	if key := routeKey(s); key != r.routeKey {
		r.RenderMapImage(s)
		r.routeKey = key
	}
	screen.DrawImage(r.mapImage, nil)

	for _, t := range s.Tiles {
		if t.Hovered {
			strokeRect(screen, t.Rect, config.HoverTileColor)
		}
	}
	r.drawReach(screen, s)

	for _, a := range s.Actors {
		switch a.Shape {
		case component.ShapeCircle:
			vector.DrawFilledCircle(screen, float32(a.Pos.X), float32(a.Pos.Y), float32(a.Size/2), a.Color, true)
		default:
			rect := geom.Rect{Min: a.Pos.Sub(geom.Vec{X: a.Size / 2, Y: a.Size / 2}), Size: geom.Vec{X: a.Size, Y: a.Size}}
			fillRect(screen, rect, a.Color)
		}
	}

	for _, c := range s.Cards {
		r.drawCard(screen, c)
	}
	r.drawHUD(screen, s)
}

func (r *GridRenderer) drawReach(screen *ebiten.Image, s *app.Snapshot) {
	if s.Reach == nil {
		return
	}
	if s.Reach.Radius > 0 {
		vector.StrokeCircle(screen, float32(s.Reach.Center.X), float32(s.Reach.Center.Y),
			float32(s.Reach.Radius), float32(config.StrokeWidth), config.ReachColor, true)
		return
	}
	for _, id := range s.Reach.Tiles {
		if int(id) < len(s.Tiles) {
			strokeRect(screen, s.Tiles[id].Rect, config.ReachColor)
		}
	}
}

func (r *GridRenderer) drawCard(screen *ebiten.Image, c app.CardView) {
	fill := c.Color
	if c.Held {
		fill = DarkenColor(fill)
	}
	fillRect(screen, c.Rect, fill)
	strokeRect(screen, c.Rect, config.CardOutlineColor)
	label := c.Kind.String()
	bounds := text.BoundString(r.fontFace, label)
	center := c.Rect.Center()
	text.Draw(screen, label, r.fontFace,
		int(center.X)-bounds.Dx()/2, int(center.Y)+bounds.Dy()/2, config.TextLightColor)
}

func (r *GridRenderer) drawHUD(screen *ebiten.Image, s *app.Snapshot) {
	for i, line := range s.Status() {
		text.Draw(screen, line, r.fontFace, 10, (i+1)*config.HUDLineHeight, config.TextLightColor)
	}
}

// routeKey identifies the set of route tiles so the background is only
// redrawn when the route changes.
func routeKey(s *app.Snapshot) string {
	key := make([]byte, len(s.Tiles))
	for i, t := range s.Tiles {
		key[i] = '0'
		if t.OnRoute {
			key[i] = '1'
		}
	}
	return string(key)
}

func fillRect(dst *ebiten.Image, rect geom.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(rect.Min.X), float32(rect.Min.Y),
		float32(rect.Size.X), float32(rect.Size.Y), clr, false)
}

func strokeRect(dst *ebiten.Image, rect geom.Rect, clr color.Color) {
	vector.StrokeRect(dst, float32(rect.Min.X), float32(rect.Min.Y),
		float32(rect.Size.X), float32(rect.Size.Y), float32(config.StrokeWidth), clr, false)
}
