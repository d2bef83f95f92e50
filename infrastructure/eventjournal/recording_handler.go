package eventjournal

import (
	"context"
	"time"

	"github.com/AntonStoeckl/ddd-shop-go/domain/shared/event"
)

const (
	defaultAppendTimeout = 5 * time.Second

	logMsgRecordingFailed = "failed to record domain event"
	logAttrEventType      = "event_type"
)

// Appender is the part of the Journal the RecordingHandler needs.
type Appender interface {
	Append(ctx context.Context, storableEvents ...StorableEvent) error
}

// RecordingHandler is an event.Handler that appends every event it receives to a journal.
//
// Handle can't return errors, so failures are logged and the event is lost for the journal.
type RecordingHandler struct {
	journal  Appender
	logger   Logger
	timeout  time.Duration
	metadata []byte
}

// HandlerOption defines a functional option for configuring a RecordingHandler.
type HandlerOption func(*RecordingHandler)

// WithHandlerLogger sets the logger the handler reports failures to.
func WithHandlerLogger(logger Logger) HandlerOption {
	return func(h *RecordingHandler) {
		h.logger = logger
	}
}

// WithAppendTimeout bounds each Append call, default is 5 seconds.
func WithAppendTimeout(timeout time.Duration) HandlerOption {
	return func(h *RecordingHandler) {
		h.timeout = timeout
	}
}

// WithMetadata sets the metadata JSON stored with every event, default is "{}".
func WithMetadata(metadataJSON []byte) HandlerOption {
	return func(h *RecordingHandler) {
		h.metadata = metadataJSON
	}
}

// NewRecordingHandler creates a RecordingHandler appending to journal.
func NewRecordingHandler(journal Appender, options ...HandlerOption) *RecordingHandler {
	h := &RecordingHandler{
		journal: journal,
		timeout: defaultAppendTimeout,
	}

	for _, option := range options {
		option(h)
	}

	return h
}

// RegisterFor registers the handler under each of the event names.
func (h *RecordingHandler) RegisterFor(dispatcher *event.Dispatcher, eventNames ...string) {
	for _, eventName := range eventNames {
		dispatcher.Register(eventName, h)
	}
}

// Handle serializes e and appends it to the journal.
func (h *RecordingHandler) Handle(e event.Event) {
	storableEvent, err := ToStorableEvent(e, h.metadata)
	if err != nil {
		h.logFailure(e, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	if err = h.journal.Append(ctx, storableEvent); err != nil {
		h.logFailure(e, err)
	}
}

func (h *RecordingHandler) logFailure(e event.Event, err error) {
	if h.logger != nil {
		h.logger.Error(logMsgRecordingFailed, logAttrEventType, e.EventName(), logAttrError, err.Error())
	}
}
