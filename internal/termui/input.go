// internal/termui/input.go
package termui

import (
	"card-tower-defense/internal/app"

	"github.com/gdamore/tcell/v2"
)

var runeBindings = map[rune]app.Key{
	'u': app.KeySpawnUnit,
	' ': app.KeyStartRound,
	'g': app.KeyUpgrade,
	'q': app.KeyQuit,
}

var keyBindings = map[tcell.Key]app.Key{
	tcell.KeyLeft:   app.KeySlower,
	tcell.KeyRight:  app.KeyFaster,
	tcell.KeyUp:     app.KeyToggleUncapped,
	tcell.KeyEscape: app.KeyQuit,
	tcell.KeyCtrlC:  app.KeyQuit,
}

// Translator turns terminal events into game input. Mouse buttons are
// reported as a mask, so it remembers the last mask to tell presses from
// releases.
type Translator struct {
	renderer *Renderer
	buttons  tcell.ButtonMask
}

func NewTranslator(r *Renderer) *Translator {
	return &Translator{renderer: r}
}

// Translate returns the game input for ev, if any.
func (t *Translator) Translate(ev tcell.Event) []app.InputEvent {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyRune {
			if k, ok := runeBindings[ev.Rune()]; ok {
				return []app.InputEvent{app.KeyPressed{Key: k}}
			}
			return nil
		}
		if k, ok := keyBindings[ev.Key()]; ok {
			return []app.InputEvent{app.KeyPressed{Key: k}}
		}
	case *tcell.EventMouse:
		return t.mouse(ev)
	}
	return nil
}

func (t *Translator) mouse(ev *tcell.EventMouse) []app.InputEvent {
	prev := t.buttons
	t.buttons = ev.Buttons()
	pos, ok := t.renderer.ToWorld(ev.Position())
	if !ok {
		// Releasing off the board still drops a held card.
		if prev&tcell.Button1 != 0 && t.buttons&tcell.Button1 == 0 {
			return []app.InputEvent{app.PrimaryUp{Pos: pos}}
		}
		return nil
	}

	events := []app.InputEvent{app.PointerMoved{Pos: pos}}
	pressed := t.buttons &^ prev
	released := prev &^ t.buttons
	if pressed&tcell.Button1 != 0 {
		events = append(events, app.PrimaryDown{Pos: pos})
	}
	if released&tcell.Button1 != 0 {
		events = append(events, app.PrimaryUp{Pos: pos})
	}
	if pressed&tcell.Button2 != 0 {
		events = append(events, app.SecondaryDown{Pos: pos})
	}
	return events
}
