// internal/deck/deck.go
package deck

import "card-tower-defense/internal/defs"

// Entry is one card kind and its draw weight.
type Entry struct {
	Kind   defs.TowerKind
	Weight int
}

// Deck hands out tower cards. It never runs out.
type Deck struct {
	rng     *PRNGService
	entries []Entry
	weights []int
}

// New returns a deck drawing every tower kind with equal odds.
func New(seed int64) *Deck {
	entries := make([]Entry, len(defs.AllKinds))
	for i, k := range defs.AllKinds {
		entries[i] = Entry{Kind: k, Weight: 1}
	}
	return NewWeighted(seed, entries)
}

// NewWeighted returns a deck with custom draw weights.
func NewWeighted(seed int64, entries []Entry) *Deck {
	d := &Deck{rng: NewPRNGService(seed), entries: entries}
	for _, e := range entries {
		d.weights = append(d.weights, e.Weight)
	}
	return d
}

// Draw returns the kind authorized by the next card.
func (d *Deck) Draw() defs.TowerKind {
	i := d.rng.ChooseWeighted(d.weights)
	if i < 0 {
		return defs.KindMaze
	}
	return d.entries[i].Kind
}
