package termui

import (
	"testing"

	"card-tower-defense/internal/app"
	"card-tower-defense/internal/config"
	"card-tower-defense/internal/defs"
	"card-tower-defense/internal/event"

	"github.com/gdamore/tcell/v2"
)

type mazeCards struct{}

func (mazeCards) Draw() defs.TowerKind { return defs.KindMaze }

func newTestUI(t *testing.T) (*app.Game, tcell.SimulationScreen, *Renderer) {
	t.Helper()
	cfg := config.Default()
	cfg.Grid.Rows, cfg.Grid.Cols = 3, 4
	cfg.Hand.Size = 3
	g, err := app.NewGame(cfg, mazeCards{})
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	r := NewRenderer(screen)
	s := g.Snapshot(1)
	r.Draw(&s)
	return g, screen, r
}

func rowText(screen tcell.SimulationScreen, y, width int) string {
	var out []rune
	for x := 0; x < width; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		out = append(out, ch)
	}
	return string(out)
}

func TestDrawLayout(t *testing.T) {
	_, screen, _ := newTestUI(t)

	if got := rowText(screen, 0, 11); got != " Health: 10" {
		t.Errorf("hud row = %q", got)
	}
	if got := rowText(screen, gridY, cardX+cardWidth); got != " [maze   ]" {
		t.Errorf("card row = %q", got)
	}
	for row := 0; row < 3; row++ {
		for col := 0; col < 4; col++ {
			if ch, _, _, _ := screen.GetContent(gridX+col*tileCells, gridY+row); ch != '.' {
				t.Errorf("tile (%d,%d) glyph = %q, want '.'", row, col, ch)
			}
		}
	}
}

func TestDrawActors(t *testing.T) {
	g, screen, r := newTestUI(t)
	tile, _ := g.Grid.TileAt(1, 2)
	if _, err := g.PlaceTower(defs.KindMaze, tile); err != nil {
		t.Fatal(err)
	}
	if _, err := g.SpawnUnit(false); err != nil {
		t.Fatal(err)
	}
	s := g.Snapshot(1)
	r.Draw(&s)

	if ch, _, _, _ := screen.GetContent(gridX+2*tileCells, gridY+1); ch != '#' {
		t.Errorf("tower glyph = %q, want '#'", ch)
	}
	if ch, _, _, _ := screen.GetContent(gridX, gridY); ch != 'o' {
		t.Errorf("unit glyph = %q, want 'o'", ch)
	}
}

func TestToWorld(t *testing.T) {
	g, _, r := newTestUI(t)

	tile, _ := g.Grid.TileAt(2, 3)
	pos, ok := r.ToWorld(gridX+3*tileCells+1, gridY+2)
	if !ok || pos != g.Grid.Tile(tile).Center() {
		t.Errorf("tile cell -> %v, %v", pos, ok)
	}

	pos, ok = r.ToWorld(cardX+2, gridY+1)
	if !ok || pos != g.Hand.Cards[1].Home.Center() {
		t.Errorf("card cell -> %v, %v", pos, ok)
	}

	for _, cell := range [][2]int{{0, 0}, {gridX + 4*tileCells, gridY}, {gridX, gridY + 3}} {
		if _, ok := r.ToWorld(cell[0], cell[1]); ok {
			t.Errorf("cell %v should map to nothing", cell)
		}
	}
}

func TestTranslateDragPlacesTower(t *testing.T) {
	g, _, r := newTestUI(t)
	tr := NewTranslator(r)

	steps := []*tcell.EventMouse{
		tcell.NewEventMouse(cardX+1, gridY, tcell.Button1, tcell.ModNone),
		tcell.NewEventMouse(gridX+2*tileCells, gridY+1, tcell.Button1, tcell.ModNone),
		tcell.NewEventMouse(gridX+2*tileCells, gridY+1, tcell.ButtonNone, tcell.ModNone),
	}
	for _, ev := range steps {
		for _, in := range tr.Translate(ev) {
			if err := g.HandleInput(in); err != nil {
				t.Fatalf("HandleInput(%T): %v", in, err)
			}
		}
	}

	tile, _ := g.Grid.TileAt(1, 2)
	if !g.Grid.Tile(tile).HasTower() {
		t.Fatal("drag did not place a tower")
	}

	right := tcell.NewEventMouse(gridX+2*tileCells, gridY+1, tcell.Button2, tcell.ModNone)
	for _, in := range tr.Translate(right) {
		g.HandleInput(in)
	}
	if g.Grid.Tile(tile).HasTower() {
		t.Errorf("right click did not remove the tower")
	}
}

func TestTranslateKeys(t *testing.T) {
	tr := NewTranslator(NewRenderer(nil))
	tests := []struct {
		ev   *tcell.EventKey
		want app.Key
	}{
		{tcell.NewEventKey(tcell.KeyRune, 'u', tcell.ModNone), app.KeySpawnUnit},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), app.KeyStartRound},
		{tcell.NewEventKey(tcell.KeyRune, 'g', tcell.ModNone), app.KeyUpgrade},
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), app.KeySlower},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), app.KeyFaster},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), app.KeyToggleUncapped},
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), app.KeyQuit},
	}
	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			got := tr.Translate(tt.ev)
			if len(got) != 1 || got[0] != (app.KeyPressed{Key: tt.want}) {
				t.Errorf("Translate = %v, want %v", got, tt.want)
			}
		})
	}

	if got := tr.Translate(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone)); len(got) != 0 {
		t.Errorf("unbound rune produced %v", got)
	}
}

func TestCuesPlayOnEvents(t *testing.T) {
	var played []Tone
	c := &Cues{play: func(tone Tone) { played = append(played, tone) }}
	d := event.NewDispatcher()
	c.Subscribe(d)

	d.Dispatch(event.Event{Type: event.UnitDied, Data: event.UnitData{}})
	d.Dispatch(event.Event{Type: event.TowerRemoved, Data: event.TowerData{}})
	d.Dispatch(event.Event{Type: event.UnitExited, Data: event.UnitData{}})

	if len(played) != 2 {
		t.Fatalf("played %d tones, want 2", len(played))
	}
	if played[0] != cueTones[event.UnitDied] || played[1] != cueTones[event.UnitExited] {
		t.Errorf("tones = %v", played)
	}
}
