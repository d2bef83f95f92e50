// Package eventjournal records domain events in a PostgreSQL table.
//
// Domain events are synchronous and in-process. The journal does not replace
// the dispatcher, it is one more Handler: RecordingHandler serializes each event
// it receives into a StorableEvent and appends it to the Journal.
//
// Table layout:
//
//	sequence_number  BIGSERIAL primary key, defines the order of the journal
//	event_type       the event name, e.g. CustomerCreated
//	occurred_at      TIMESTAMPTZ
//	payload          JSONB, the serialized event
//	metadata         JSONB
package eventjournal
