package event

import (
	"time"
)

// Events is a slice of Event instances.
type Events = []Event

// Event represents a business event that has occurred in the domain.
type Event interface {
	// EventName returns the string identifier handlers are registered under.
	EventName() string

	// HasOccurredAt returns when this event occurred.
	HasOccurredAt() time.Time
}

// Handler reacts to an Event it was registered for.
// Handlers have no error channel: whatever they do with the event must be dealt with inside Handle.
type Handler interface {
	Handle(event Event)
}

// HandlerFunc adapts an ordinary function to the Handler interface.
//
// Func values are not comparable, so a HandlerFunc can't be removed with Dispatcher.Unregister.
// Wrap it in a pointer type if it must be unregistered later.
type HandlerFunc func(event Event)

// Handle calls f(event).
func (f HandlerFunc) Handle(event Event) {
	f(event)
}

// ToOccurredAt converts a time to the normalized form stored in events: UTC with microsecond precision.
func ToOccurredAt(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
