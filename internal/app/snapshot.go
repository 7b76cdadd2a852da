// internal/app/snapshot.go
package app

import (
	"fmt"
	"image/color"

	"card-tower-defense/internal/component"
	"card-tower-defense/internal/defs"
	"card-tower-defense/internal/grid"
	"card-tower-defense/internal/types"
	"card-tower-defense/pkg/geom"
)

// TileView is one grid cell as the renderer sees it.
type TileView struct {
	ID      grid.TileID
	Row     int
	Col     int
	Rect    geom.Rect
	OnRoute bool
	Hovered bool
}

// ActorView is one visible actor at an interpolated position.
type ActorView struct {
	ID    types.EntityID
	Kind  types.Kind
	Shape component.Shape
	Pos   geom.Vec
	Size  float64
	Color color.RGBA
}

// CardView is one card in the hand.
type CardView struct {
	Kind  defs.TowerKind
	Rect  geom.Rect
	Held  bool
	Color color.RGBA
}

// ReachView outlines what the hovered tower can hit. Radius is zero for
// towers that only reach their neighbors.
type ReachView struct {
	Tower  types.EntityID
	Tiles  []grid.TileID
	Center geom.Vec
	Radius float64
}

// Snapshot is a read-only copy of everything the visual tick draws.
type Snapshot struct {
	Tiles      []TileView
	Entry      grid.TileID
	Exit       grid.TileID
	Actors     []ActorView
	Cards      []CardView
	Reach      *ReachView
	Player     component.PlayerInfo
	Round      component.RoundInfo
	RoundState component.RoundState
	Outcome    component.Outcome
	Tick       int
	// PrepSeconds is the prep time left, rounded down.
	PrepSeconds int
}

// Snapshot copies the state for drawing, placing moving actors at alpha
// between their previous and current positions. It never mutates the game.
func (g *Game) Snapshot(alpha float64) Snapshot {
	s := Snapshot{
		Entry:      g.Grid.Entry(),
		Exit:       g.Grid.Exit(),
		Player:     g.Player,
		RoundState: g.RoundSystem.State,
		Outcome:    g.RoundSystem.Outcome,
		Tick:       g.ticks,
	}
	if cur := g.RoundSystem.Current; cur != nil {
		s.Round = *cur
		s.PrepSeconds = max(cur.PrepTicks, 0) / g.Config.Timing.TicksPerSecond
	}

	route := map[grid.TileID]bool{}
	for _, id := range g.Grid.Route() {
		route[id] = true
	}
	for _, t := range g.Grid.Tiles() {
		s.Tiles = append(s.Tiles, TileView{
			ID:      t.ID,
			Row:     t.Row,
			Col:     t.Col,
			Rect:    t.Rect,
			OnRoute: route[t.ID],
			Hovered: t.ID == g.hover,
		})
	}

	for _, id := range g.ECS.TickOrder() {
		pos, ok := g.ECS.Positions[id]
		r := g.ECS.Renderables[id]
		if !ok || r == nil {
			continue
		}
		s.Actors = append(s.Actors, ActorView{
			ID:    id,
			Kind:  g.ECS.Kind(id),
			Shape: r.Shape,
			Pos:   pos.At(alpha),
			Size:  r.Size,
			Color: r.Color,
		})
	}

	for _, c := range g.Hand.Cards {
		view := CardView{Kind: c.Kind, Rect: c.Rect(), Held: c.Held}
		if def, err := g.Library.Get(c.Kind); err == nil {
			view.Color = def.Color
		}
		s.Cards = append(s.Cards, view)
	}

	s.Reach = g.hoveredReach()
	return s
}

func (g *Game) hoveredReach() *ReachView {
	t := g.Grid.Tile(g.hover)
	if t == nil {
		return nil
	}
	id, ok := t.Tower()
	if !ok {
		return nil
	}
	tw := g.ECS.Towers[id]
	if tw == nil || len(tw.Visible) == 0 {
		return nil
	}
	reach := &ReachView{
		Tower:  id,
		Tiles:  append([]grid.TileID(nil), tw.Visible...),
		Center: t.Center(),
	}
	if def, err := g.Library.Get(tw.Kind); err == nil && def.Visibility == defs.VisibleRadius {
		reach.Radius = def.Range
	}
	return reach
}

// Status is the HUD text shared by the front-ends, one line per entry.
func (s Snapshot) Status() []string {
	lines := []string{
		fmt.Sprintf("Health: %d", s.Player.Health),
		fmt.Sprintf("Gold: %d", s.Player.Gold),
	}
	switch s.RoundState {
	case component.RoundPrep:
		lines = append(lines, fmt.Sprintf("Round %d starts in %ds", s.Round.Number, s.PrepSeconds))
	default:
		lines = append(lines, fmt.Sprintf("Round %d: %d/%d left", s.Round.Number, s.Round.UnitsRemaining, s.Round.Units))
	}
	switch s.Outcome {
	case component.Victory:
		lines = append(lines, "Victory!")
	case component.Defeat:
		lines = append(lines, "Defeat")
	}
	return lines
}
