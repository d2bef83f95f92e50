package eventjournal_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/AntonStoeckl/ddd-shop-go/domain/customer"
	"github.com/AntonStoeckl/ddd-shop-go/domain/shared/event"
	. "github.com/AntonStoeckl/ddd-shop-go/infrastructure/eventjournal"
	"github.com/AntonStoeckl/ddd-shop-go/testutil/pgtest"
)

func Test_Journal_AppendAndQuery(t *testing.T) {
	// arrange
	ctx := context.Background()
	journal := pgtest.Connect(t).Journal(t, WithTableName("journal_test_events"))
	occurredAt := event.ToOccurredAt(time.Now())
	created, err := ToStorableEvent(customer.BuildCustomerCreated("123", "Customer 1", occurredAt), nil)
	assert.NoError(t, err, "error in arranging test data")
	address, err := customer.NewAddress("Street 1", 1, "Zipcode 1", "City 1")
	assert.NoError(t, err, "error in arranging test data")
	changed, err := ToStorableEvent(customer.BuildCustomerAddressChanged("123", nil, address, occurredAt), nil)
	assert.NoError(t, err, "error in arranging test data")

	// act
	appendErr := journal.Append(ctx, created, changed)
	all, queryAllErr := journal.Query(ctx)
	filtered, queryErr := journal.Query(ctx, customer.CustomerAddressChangedEventName)

	// assert
	assert.NoError(t, appendErr)
	assert.NoError(t, queryAllErr)
	assert.NoError(t, queryErr)
	assert.Len(t, all, 2)
	assert.Less(t, all[0].SequenceNumber, all[1].SequenceNumber)
	assert.Equal(t, customer.CustomerCreatedEventName, all[0].EventType)
	assert.True(t, occurredAt.Equal(all[0].OccurredAt))
	assert.JSONEq(t, string(created.PayloadJSON), string(all[0].PayloadJSON))
	assert.Len(t, filtered, 1)
	assert.JSONEq(t, string(changed.PayloadJSON), string(filtered[0].PayloadJSON))
}

func Test_RecordingHandler_RecordsIntoTheJournal(t *testing.T) {
	// arrange
	journal := pgtest.Connect(t).Journal(t, WithTableName("journal_test_recorded"))
	dispatcher := event.NewDispatcher()
	NewRecordingHandler(journal).RegisterFor(dispatcher, customer.CustomerCreatedEventName)

	// act
	_, err := customer.New("123", "Customer 1", customer.WithEventDispatcher(dispatcher))
	recorded, queryErr := journal.Query(context.Background())

	// assert
	assert.NoError(t, err)
	assert.NoError(t, queryErr)
	assert.Len(t, recorded, 1)
	assert.Equal(t, customer.CustomerCreatedEventName, recorded[0].EventType)
}
