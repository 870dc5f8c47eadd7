package event

import "testing"

type captureListener struct {
	got []Event
}

func (c *captureListener) OnEvent(e Event) {
	c.got = append(c.got, e)
}

func TestDispatchRoutesByType(t *testing.T) {
	d := NewDispatcher()
	waves := &captureListener{}
	kills := &captureListener{}
	d.Subscribe(WaveCompleted, waves)
	d.Subscribe(MonsterKilled, kills)

	d.Dispatch(Event{Type: WaveCompleted, Data: 10})
	d.Dispatch(Event{Type: WaveStarted, Data: 11}) // никто не подписан

	if len(waves.got) != 1 || waves.got[0].Data != 10 {
		t.Errorf("waves.got = %+v, want one WaveCompleted with wave 10", waves.got)
	}
	if len(kills.got) != 0 {
		t.Errorf("kills.got = %+v, want no deliveries", kills.got)
	}
}

func TestDispatchDeliversInSubscriptionOrder(t *testing.T) {
	d := NewDispatcher()
	var order []string
	d.Subscribe(CastleDestroyed, listenerFunc(func(Event) { order = append(order, "first") }))
	d.Subscribe(CastleDestroyed, listenerFunc(func(Event) { order = append(order, "second") }))

	d.Dispatch(Event{Type: CastleDestroyed, Data: 7})

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("order = %v, want [first second]", order)
	}
}

type listenerFunc func(Event)

func (f listenerFunc) OnEvent(e Event) { f(e) }
