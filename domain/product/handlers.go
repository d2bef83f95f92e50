package product

import (
	"fmt"
	"io"

	"github.com/AntonStoeckl/ddd-shop-go/domain/shared/event"
)

const msgSendingEmailFormat = "Sending email to %s: product %s created"

// SendEmailWhenProductIsCreated pretends to notify a mailbox about each new product.
type SendEmailWhenProductIsCreated struct {
	out       io.Writer
	recipient string
}

// NewSendEmailWhenProductIsCreated creates the handler writing to out.
func NewSendEmailWhenProductIsCreated(out io.Writer, recipient string) *SendEmailWhenProductIsCreated {
	return &SendEmailWhenProductIsCreated{out: out, recipient: recipient}
}

// Handle prints the email notice.
func (h *SendEmailWhenProductIsCreated) Handle(e event.Event) {
	created, ok := e.(ProductCreated)
	if !ok {
		return
	}

	_, _ = fmt.Fprintf(h.out, msgSendingEmailFormat+"\n", h.recipient, created.Name)
}
