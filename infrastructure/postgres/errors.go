package postgres

import "errors"

var ErrNilDatabaseConnection = errors.New("database connection must not be nil")
var ErrInvalidTablePrefix = errors.New("table prefix must only contain lowercase letters, digits and underscores")
var ErrBuildingQueryFailed = errors.New("building the sql query failed")
var ErrQueryingFailed = errors.New("querying the database failed")
var ErrExecutingFailed = errors.New("executing the sql statement failed")
var ErrGettingRowsAffectedFailed = errors.New("getting rows affected failed")
var ErrScanningDBRowFailed = errors.New("scanning db row failed")
var ErrRestoringAggregateFailed = errors.New("restoring an aggregate from its row failed")
var ErrCreatingSchemaFailed = errors.New("creating the schema failed")
