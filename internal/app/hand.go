// internal/app/hand.go
package app

import (
	"card-tower-defense/internal/config"
	"card-tower-defense/internal/defs"
	"card-tower-defense/pkg/geom"
)

// Card authorizes one tower placement. Pos is its current top-left corner;
// Home is its slot in the hand.
type Card struct {
	Kind defs.TowerKind
	Home geom.Rect
	Pos  geom.Vec
	Held bool
}

// Rect is the card's current on-screen area.
func (c *Card) Rect() geom.Rect {
	return geom.Rect{Min: c.Pos, Size: c.Home.Size}
}

// Hand is a fixed row of card slots down the left side of the screen.
type Hand struct {
	Cards []*Card
	held  int
}

func newHand(cfg *config.Config, cards CardSource) *Hand {
	w, h := float64(cfg.Screen.Width), float64(cfg.Screen.Height)
	n := cfg.Hand.Size
	hand := &Hand{held: -1}
	if n == 0 {
		return hand
	}
	step := 0.75 / float64(n)
	size := geom.Vec{X: 0.1 * w, Y: min(0.1, step*0.9) * h}
	for i := 0; i < n; i++ {
		home := geom.Rect{Min: geom.Vec{X: 0.1 * w, Y: step * float64(i+1) * h}, Size: size}
		hand.Cards = append(hand.Cards, &Card{Kind: cards.Draw(), Home: home, Pos: home.Min})
	}
	return hand
}

// CardAt returns the topmost card under p.
func (h *Hand) CardAt(p geom.Vec) (int, bool) {
	for i := len(h.Cards) - 1; i >= 0; i-- {
		if h.Cards[i].Rect().Contains(p) {
			return i, true
		}
	}
	return -1, false
}

// Held returns the card being dragged, if any.
func (h *Hand) Held() (*Card, bool) {
	if h.held < 0 {
		return nil, false
	}
	return h.Cards[h.held], true
}

func (h *Hand) pick(i int) {
	h.Cards[i].Held = true
	h.held = i
}

// drag centers the held card on p.
func (h *Hand) drag(p geom.Vec) {
	if c, ok := h.Held(); ok {
		c.Pos = p.Sub(c.Home.Size.Scale(0.5))
	}
}

// release drops the held card back into its slot.
func (h *Hand) release() {
	if c, ok := h.Held(); ok {
		c.Held = false
		c.Pos = c.Home.Min
	}
	h.held = -1
}

// replace swaps the card in slot i for a freshly drawn one.
func (h *Hand) replace(i int, cards CardSource) {
	home := h.Cards[i].Home
	h.Cards[i] = &Card{Kind: cards.Draw(), Home: home, Pos: home.Min}
}
