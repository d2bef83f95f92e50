package eventjournal

import "errors"

var ErrInvalidPayloadJSON = errors.New("payload json is not valid")
var ErrInvalidMetadataJSON = errors.New("metadata json is not valid")
var ErrNilDatabaseConnection = errors.New("database connection must not be nil")
var ErrInvalidTableName = errors.New("table name must only contain lowercase letters, digits and underscores")
var ErrSerializingEventFailed = errors.New("serializing the event failed")
var ErrBuildingQueryFailed = errors.New("building the sql query failed")
var ErrQueryingFailed = errors.New("querying the database failed")
var ErrExecutingFailed = errors.New("executing the sql statement failed")
var ErrScanningDBRowFailed = errors.New("scanning db row failed")
