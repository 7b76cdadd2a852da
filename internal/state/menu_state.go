// internal/state/menu_state.go
package state

import (
	"card-tower-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

var menuLines = []string{
	"CARD TOWER DEFENSE",
	"",
	"Drag a card onto the grid to build a tower.",
	"Right click removes a tower, G upgrades the one under the cursor.",
	"Space starts the round early, U sends a test unit.",
	"Left/Right change game speed, Up uncaps it. P pauses, Esc quits.",
	"",
	"Press Enter to start",
}

// MenuState is the title screen. Enter switches to next.
type MenuState struct {
	sm   *StateMachine
	next State
}

func NewMenuState(sm *StateMachine, next State) *MenuState {
	return &MenuState{sm: sm, next: next}
}

func (m *MenuState) Enter() {}

func (m *MenuState) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(m.next)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	return nil
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	h := screen.Bounds().Dy()
	top := h/2 - len(menuLines)*config.HUDLineHeight/2
	for i, line := range menuLines {
		text.Draw(screen, line, basicfont.Face7x13, 40, top+i*config.HUDLineHeight, config.TextLightColor)
	}
}

func (m *MenuState) Exit() {}
