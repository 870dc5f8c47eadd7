// internal/event/event.go
//
// Шина событий игры. Менеджер волн и системы публикуют события жизненного
// цикла (волны, смерти, постройки), подписчики вроде автосейва реагируют,
// не зная об источнике.
package event

// EventType различает события по имени.
type EventType string

// Event carries the type tag and an optional payload: the wave number
// for wave events, the entity for kill and placement events.
type Event struct {
	Type EventType
	Data any
}

// Listener получает события, на которые подписан.
type Listener interface {
	OnEvent(event Event)
}

// Dispatcher fans an event out to everything subscribed to its type.
// Subscriptions live for the whole game; delivery is synchronous, in
// subscription order.
type Dispatcher struct {
	listeners map[EventType][]Listener
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		listeners: make(map[EventType][]Listener),
	}
}

// Subscribe регистрирует подписчика на события типа eventType.
func (d *Dispatcher) Subscribe(eventType EventType, listener Listener) {
	d.listeners[eventType] = append(d.listeners[eventType], listener)
}

// Dispatch доставляет событие всем подписчикам его типа.
func (d *Dispatcher) Dispatch(event Event) {
	for _, listener := range d.listeners[event.Type] {
		listener.OnEvent(event)
	}
}
