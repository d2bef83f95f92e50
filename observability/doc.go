// Package observability builds the loggers handed to the infrastructure packages.
//
// The infrastructure packages only depend on small slog-shaped Logger
// interfaces. This package provides plain log/slog loggers for terminals and
// an OpenTelemetry backed one: the otelslog bridge feeds an SDK
// LoggerProvider whose stdout exporter writes the records as JSON.
package observability
