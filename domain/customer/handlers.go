package customer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/AntonStoeckl/ddd-shop-go/domain/shared/event"
)

const (
	msgFirstConsoleLog      = "Esse é o primeiro console.log do evento: " + CustomerCreatedEventName
	msgSecondConsoleLog     = "Esse é o segundo console.log do evento: " + CustomerCreatedEventName
	msgAddressChangedFormat = "Endereço do cliente '%s' alterado. %s"
	msgOldAddressFormat     = "Endereço antigo: %s"
	msgNewAddressFormat     = "Novo endereço: %s"
	undefinedAddress        = "undefined"
)

// DefaultEventDispatcher returns a dispatcher with all stock customer handlers registered, printing to stdout.
func DefaultEventDispatcher() *event.Dispatcher {
	return NewEventDispatcher(os.Stdout)
}

// NewEventDispatcher returns a dispatcher with all stock customer handlers registered, printing to out.
func NewEventDispatcher(out io.Writer) *event.Dispatcher {
	dispatcher := event.NewDispatcher()
	RegisterConsoleHandlers(dispatcher, out)

	return dispatcher
}

// RegisterConsoleHandlers registers the stock customer handlers on an existing dispatcher.
func RegisterConsoleHandlers(dispatcher *event.Dispatcher, out io.Writer) {
	dispatcher.Register(CustomerCreatedEventName, NewConsoleLog1WhenCustomerIsCreated(out))
	dispatcher.Register(CustomerCreatedEventName, NewConsoleLog2WhenCustomerIsCreated(out))
	dispatcher.Register(CustomerAddressChangedEventName, NewConsoleLogWhenCustomerAddressIsChanged(out))
}

// ConsoleLog1WhenCustomerIsCreated prints one line per CustomerCreated event.
type ConsoleLog1WhenCustomerIsCreated struct {
	out io.Writer
}

// NewConsoleLog1WhenCustomerIsCreated creates the handler writing to out.
func NewConsoleLog1WhenCustomerIsCreated(out io.Writer) *ConsoleLog1WhenCustomerIsCreated {
	return &ConsoleLog1WhenCustomerIsCreated{out: out}
}

// Handle prints the first creation message.
func (h *ConsoleLog1WhenCustomerIsCreated) Handle(e event.Event) {
	if _, ok := e.(CustomerCreated); !ok {
		return
	}

	_, _ = fmt.Fprintln(h.out, msgFirstConsoleLog)
}

// ConsoleLog2WhenCustomerIsCreated prints one line per CustomerCreated event.
type ConsoleLog2WhenCustomerIsCreated struct {
	out io.Writer
}

// NewConsoleLog2WhenCustomerIsCreated creates the handler writing to out.
func NewConsoleLog2WhenCustomerIsCreated(out io.Writer) *ConsoleLog2WhenCustomerIsCreated {
	return &ConsoleLog2WhenCustomerIsCreated{out: out}
}

// Handle prints the second creation message.
func (h *ConsoleLog2WhenCustomerIsCreated) Handle(e event.Event) {
	if _, ok := e.(CustomerCreated); !ok {
		return
	}

	_, _ = fmt.Fprintln(h.out, msgSecondConsoleLog)
}

// ConsoleLogWhenCustomerAddressIsChanged prints three lines per CustomerAddressChanged event:
// the headline, the old address and the new address.
type ConsoleLogWhenCustomerAddressIsChanged struct {
	out io.Writer
}

// NewConsoleLogWhenCustomerAddressIsChanged creates the handler writing to out.
func NewConsoleLogWhenCustomerAddressIsChanged(out io.Writer) *ConsoleLogWhenCustomerAddressIsChanged {
	return &ConsoleLogWhenCustomerAddressIsChanged{out: out}
}

// Handle prints the address change.
func (h *ConsoleLogWhenCustomerAddressIsChanged) Handle(e event.Event) {
	changed, ok := e.(CustomerAddressChanged)
	if !ok {
		return
	}

	oldAddress := undefinedAddress
	if changed.OldAddress != nil {
		oldAddress = addressToJSON(*changed.OldAddress)
	}

	_, _ = fmt.Fprintf(h.out, msgAddressChangedFormat+"\n", changed.CustomerID, changed.OccurredAt.Format(time.RFC3339))
	_, _ = fmt.Fprintf(h.out, msgOldAddressFormat+"\n", oldAddress)
	_, _ = fmt.Fprintf(h.out, msgNewAddressFormat+"\n", addressToJSON(changed.NewAddress))
}

func addressToJSON(address Address) string {
	raw, err := json.Marshal(address)
	if err != nil {
		return address.String()
	}

	return string(raw)
}
