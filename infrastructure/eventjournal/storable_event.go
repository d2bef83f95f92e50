package eventjournal

import (
	"encoding/json"
	"errors"
	"time"

	jsoniter "github.com/json-iterator/go"

	"github.com/AntonStoeckl/ddd-shop-go/domain/shared/event"
)

// Standard library compatible config, so custom marshalers like customer.Address are honored.
var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// StorableEvents is an alias type for a slice of StorableEvent
type StorableEvents = []StorableEvent

// StorableEvent is the journal's representation of a domain event.
//
// It is built on scalars, so the journal does not depend on the concrete event types.
// It should only be constructed with BuildStorableEvent, BuildStorableEventWithEmptyMetadata
// or ToStorableEvent.
type StorableEvent struct {
	SequenceNumber int64
	EventType      string
	OccurredAt     time.Time
	PayloadJSON    []byte
	MetadataJSON   []byte
}

// BuildStorableEvent is a factory method for StorableEvent.
// Returns an error if payloadJSON or metadataJSON are not valid JSON.
func BuildStorableEvent(eventType string, occurredAt time.Time, payloadJSON []byte, metadataJSON []byte) (StorableEvent, error) {
	if !json.Valid(payloadJSON) {
		return StorableEvent{}, ErrInvalidPayloadJSON
	}

	if !json.Valid(metadataJSON) {
		return StorableEvent{}, ErrInvalidMetadataJSON
	}

	return StorableEvent{
		EventType:    eventType,
		OccurredAt:   occurredAt,
		PayloadJSON:  payloadJSON,
		MetadataJSON: metadataJSON,
	}, nil
}

// BuildStorableEventWithEmptyMetadata is like BuildStorableEvent with "{}" as metadata.
func BuildStorableEventWithEmptyMetadata(eventType string, occurredAt time.Time, payloadJSON []byte) (StorableEvent, error) {
	return BuildStorableEvent(eventType, occurredAt, payloadJSON, []byte("{}"))
}

// ToStorableEvent serializes a domain event, its exported fields become the payload.
func ToStorableEvent(e event.Event, metadataJSON []byte) (StorableEvent, error) {
	payloadJSON, err := jsonAPI.Marshal(e)
	if err != nil {
		return StorableEvent{}, errors.Join(ErrSerializingEventFailed, err)
	}

	if metadataJSON == nil {
		return BuildStorableEventWithEmptyMetadata(e.EventName(), e.HasOccurredAt(), payloadJSON)
	}

	return BuildStorableEvent(e.EventName(), e.HasOccurredAt(), payloadJSON, metadataJSON)
}
