// internal/termui/sound.go
package termui

import (
	"fmt"
	"time"

	"card-tower-defense/internal/event"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Tone is one short sine beep.
type Tone struct {
	Freq     float64
	Duration time.Duration
}

var cueTones = map[event.EventType]Tone{
	event.UnitDied:     {Freq: 880, Duration: 50 * time.Millisecond},
	event.UnitExited:   {Freq: 220, Duration: 150 * time.Millisecond},
	event.TowerPlaced:  {Freq: 440, Duration: 40 * time.Millisecond},
	event.RoundStarted: {Freq: 660, Duration: 120 * time.Millisecond},
	event.GameOver:     {Freq: 330, Duration: 400 * time.Millisecond},
}

// Cues plays a tone for notable game events.
type Cues struct {
	play  func(Tone)
	ready bool
}

// NewCues initializes the speaker. The returned Cues is usable even when
// audio is unavailable; it then stays silent and the error says why.
func NewCues() (*Cues, error) {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return &Cues{play: func(Tone) {}}, fmt.Errorf("initializing speaker: %w", err)
	}
	return &Cues{play: playTone, ready: true}, nil
}

// Subscribe hooks the cues to every event type that has a tone.
func (c *Cues) Subscribe(d *event.Dispatcher) {
	for et := range cueTones {
		d.Subscribe(et, c)
	}
}

// OnEvent implements event.Listener.
func (c *Cues) OnEvent(e event.Event) {
	if tone, ok := cueTones[e.Type]; ok {
		c.play(tone)
	}
}

// Close releases the speaker.
func (c *Cues) Close() {
	if c.ready {
		speaker.Close()
	}
}

func playTone(t Tone) {
	sine, err := generators.SineTone(sampleRate, t.Freq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(t.Duration), sine))
}
