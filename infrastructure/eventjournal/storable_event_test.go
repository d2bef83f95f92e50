package eventjournal_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/ddd-shop-go/domain/customer"
	. "github.com/AntonStoeckl/ddd-shop-go/infrastructure/eventjournal"
)

func Test_BuildStorableEvent_ErrorCases(t *testing.T) {
	validTime := time.Now()
	validPayloadJSON := []byte(`{"key": "value"}`)
	validMetadataJSON := []byte(`{"meta": "data"}`)

	tests := []struct {
		name         string
		payloadJSON  []byte
		metadataJSON []byte
		expectedErr  error
	}{
		{
			name:         "invalid payload JSON",
			payloadJSON:  []byte(`{"invalid": json}`),
			metadataJSON: validMetadataJSON,
			expectedErr:  ErrInvalidPayloadJSON,
		},
		{
			name:         "invalid metadata JSON",
			payloadJSON:  validPayloadJSON,
			metadataJSON: []byte(`{"invalid": json}`),
			expectedErr:  ErrInvalidMetadataJSON,
		},
		{
			name:         "empty payload JSON",
			payloadJSON:  []byte(``),
			metadataJSON: validMetadataJSON,
			expectedErr:  ErrInvalidPayloadJSON,
		},
		{
			name:         "nil metadata JSON",
			payloadJSON:  validPayloadJSON,
			metadataJSON: nil,
			expectedErr:  ErrInvalidMetadataJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildStorableEvent("TestEvent", validTime, tt.payloadJSON, tt.metadataJSON)
			assert.ErrorIs(t, err, tt.expectedErr)
		})
	}
}

func Test_BuildStorableEventWithEmptyMetadata_Success(t *testing.T) {
	// arrange
	occurredAt := time.Now()
	payloadJSON := []byte(`{"CustomerID": "123"}`)

	// act
	storableEvent, err := BuildStorableEventWithEmptyMetadata(customer.CustomerCreatedEventName, occurredAt, payloadJSON)

	// assert
	assert.NoError(t, err)
	assert.Equal(t, customer.CustomerCreatedEventName, storableEvent.EventType)
	assert.Equal(t, occurredAt, storableEvent.OccurredAt)
	assert.Equal(t, payloadJSON, storableEvent.PayloadJSON)
	assert.Equal(t, []byte(`{}`), storableEvent.MetadataJSON)
}

func Test_ToStorableEvent_SerializesTheEvent(t *testing.T) {
	// arrange
	occurredAt := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	address, err := customer.NewAddress("New Street", 1, "54321", "New City")
	assert.NoError(t, err, "error in arranging test data")
	e := customer.BuildCustomerAddressChanged("123", nil, address, occurredAt)

	// act
	storableEvent, err := ToStorableEvent(e, []byte(`{"source":"test"}`))

	// assert
	assert.NoError(t, err)
	assert.Equal(t, customer.CustomerAddressChangedEventName, storableEvent.EventType)
	assert.Equal(t, occurredAt, storableEvent.OccurredAt)
	assert.JSONEq(
		t,
		`{"CustomerID":"123","OldAddress":null,`+
			`"NewAddress":{"street":"New Street","number":1,"zip":"54321","city":"New City"},`+
			`"OccurredAt":"2025-01-02T03:04:05Z"}`,
		string(storableEvent.PayloadJSON),
	)
	assert.Equal(t, []byte(`{"source":"test"}`), storableEvent.MetadataJSON)
}

func Test_ToStorableEvent_ShouldFail_WithInvalidMetadata(t *testing.T) {
	// arrange
	e := customer.BuildCustomerCreated("123", "Customer 1", time.Now())

	// act
	_, err := ToStorableEvent(e, []byte(`not json`))

	// assert
	assert.ErrorIs(t, err, ErrInvalidMetadataJSON)
}
