package event

import (
	"reflect"
	"slices"
)

// Dispatcher keeps handlers registered per event name and notifies them synchronously.
//
// The zero value is not usable, construct it with NewDispatcher.
type Dispatcher struct {
	handlers map[string][]Handler
}

// NewDispatcher creates an empty Dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		handlers: make(map[string][]Handler),
	}
}

// Register appends handler to the handlers of eventName.
// Registering the same handler twice for one name means it will be invoked twice per notification.
func (d *Dispatcher) Register(eventName string, handler Handler) {
	d.handlers[eventName] = append(d.handlers[eventName], handler)
}

// Unregister removes the first registration of handler for eventName.
// Unknown names or handlers are ignored.
func (d *Dispatcher) Unregister(eventName string, handler Handler) {
	registered, ok := d.handlers[eventName]
	if !ok {
		return
	}

	idx := slices.IndexFunc(registered, func(h Handler) bool {
		return sameHandler(h, handler)
	})

	if idx < 0 {
		return
	}

	registered = slices.Delete(registered, idx, idx+1)

	if len(registered) == 0 {
		delete(d.handlers, eventName)
		return
	}

	d.handlers[eventName] = registered
}

// UnregisterAll drops every registration.
func (d *Dispatcher) UnregisterAll() {
	d.handlers = make(map[string][]Handler)
}

// Notify invokes all handlers registered for event.EventName() in registration order.
func (d *Dispatcher) Notify(event Event) {
	registered := d.handlers[event.EventName()]

	for _, handler := range registered {
		handler.Handle(event)
	}
}

// Handlers returns a copy of the handlers currently registered for eventName.
func (d *Dispatcher) Handlers(eventName string) []Handler {
	return slices.Clone(d.handlers[eventName])
}

// sameHandler compares handler identity without panicking on uncomparable dynamic types like HandlerFunc.
func sameHandler(a, b Handler) bool {
	typeA := reflect.TypeOf(a)
	if typeA == nil || typeA != reflect.TypeOf(b) || !typeA.Comparable() {
		return false
	}

	return a == b
}
