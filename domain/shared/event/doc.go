// Package event provides the in-process domain event dispatcher shared by all aggregates.
//
// Events are plain value structs that name themselves via EventName().
// Handlers are registered under that name and are invoked synchronously,
// in registration order, on the goroutine that calls Notify.
//
// Typical usage:
//
//	dispatcher := event.NewDispatcher()
//	dispatcher.Register(customer.CustomerCreatedEventName, customer.NewConsoleLog1WhenCustomerIsCreated(os.Stdout))
//
//	dispatcher.Notify(customer.BuildCustomerCreated(id, name, time.Now()))
//
// The Dispatcher is not safe for concurrent use. Each aggregate owns (or shares
// within one goroutine) its dispatcher.
//
// In Domain-Driven Design terminology, this is part of the shared kernel.
package event
