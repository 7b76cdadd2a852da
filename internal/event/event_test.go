package event

import "testing"

type counter struct{ n int }

func (c *counter) OnEvent(Event) { c.n++ }

func TestDispatchOrderAndFilter(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.SubscribeFunc(UnitDied, func(Event) { order = append(order, "first") })
	d.SubscribeFunc(UnitDied, func(Event) { order = append(order, "second") })
	c := &counter{}
	d.Subscribe(UnitExited, c)

	d.Dispatch(Event{Type: UnitDied, Data: UnitData{ID: 1}})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("order = %v, want [first second]", order)
	}
	if c.n != 0 {
		t.Errorf("exit listener called %d times, want 0", c.n)
	}
	d.Dispatch(Event{Type: UnitExited})
	if c.n != 1 {
		t.Errorf("exit listener called %d times, want 1", c.n)
	}
}
