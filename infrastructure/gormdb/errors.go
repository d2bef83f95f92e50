package gormdb

import "errors"

var ErrNilDatabaseConnection = errors.New("database connection must not be nil")
var ErrConnectingFailed = errors.New("connecting to the database failed")
var ErrPingingDatabaseFailed = errors.New("pinging database failed")
var ErrMigratingFailed = errors.New("migrating the schema failed")
var ErrSavingFailed = errors.New("saving the aggregate failed")
var ErrLoadingFailed = errors.New("loading the aggregate failed")
var ErrRestoringAggregateFailed = errors.New("restoring an aggregate from its row failed")
