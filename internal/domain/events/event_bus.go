package events

import (
	"context"
	"log"
	"sort"

	"github.com/KirkDiggler/creature-battle/internal/errors"
)

// Listener receives every emitted event
type Listener interface {
	HandleEvent(ctx context.Context, event Event) error
	Priority() int
}

// Bus dispatches events to listeners in priority order. Listeners with the
// same priority run in subscription order.
type Bus struct {
	listeners []Listener
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		listeners: make([]Listener, 0),
	}
}

// Subscribe adds a listener
func (b *Bus) Subscribe(listener Listener) {
	b.listeners = append(b.listeners, listener)
	sort.SliceStable(b.listeners, func(i, j int) bool {
		return b.listeners[i].Priority() < b.listeners[j].Priority()
	})
}

// Unsubscribe removes a listener
func (b *Bus) Unsubscribe(listener Listener) {
	for i, l := range b.listeners {
		if l == listener {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return
		}
	}
}

// Emit fires the event to all listeners, stopping at the first listener
// error. An event that fails validation is logged and dropped.
func (b *Bus) Emit(ctx context.Context, event Event) error {
	if err := Validate(event); err != nil {
		log.Printf("[EVENTS] Warning: dropping event: %v", err)
		return nil
	}

	for _, listener := range b.listeners {
		if err := listener.HandleEvent(ctx, event); err != nil {
			return errors.Wrapf(err, "error handling %s %s event", event.Timing(), event.Kind())
		}
	}
	return nil
}

// ListenerCount returns the number of subscribed listeners
func (b *Bus) ListenerCount() int {
	return len(b.listeners)
}
