package observability

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"go.opentelemetry.io/contrib/bridges/otelslog"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutlog"
	"go.opentelemetry.io/otel/log"
	sdklog "go.opentelemetry.io/otel/sdk/log"
)

var ErrUnknownLogLevel = errors.New("unknown log level")
var ErrUnknownLogFormat = errors.New("unknown log format")
var ErrCreatingExporterFailed = errors.New("creating the log exporter failed")

// SlogBridgeLogger satisfies the Logger interfaces of the infrastructure packages on top of a *slog.Logger.
type SlogBridgeLogger struct {
	logger   *slog.Logger
	shutdown func(ctx context.Context) error
}

// NewSlogBridgeLogger creates a logger using the OpenTelemetry slog bridge with provider,
// records below level are dropped before they reach the provider.
func NewSlogBridgeLogger(name string, provider log.LoggerProvider, level slog.Leveler) *SlogBridgeLogger {
	handler := otelslog.NewHandler(name, otelslog.WithLoggerProvider(provider))

	return &SlogBridgeLogger{logger: slog.New(&levelHandler{level: level, next: handler})}
}

// NewSlogBridgeLoggerWithHandler creates a logger using handler as-is.
func NewSlogBridgeLoggerWithHandler(handler slog.Handler) *SlogBridgeLogger {
	return &SlogBridgeLogger{logger: slog.New(handler)}
}

// Debug logs at debug level.
func (l *SlogBridgeLogger) Debug(msg string, args ...any) {
	l.logger.Debug(msg, args...)
}

// Info logs at info level.
func (l *SlogBridgeLogger) Info(msg string, args ...any) {
	l.logger.Info(msg, args...)
}

// Warn logs at warn level.
func (l *SlogBridgeLogger) Warn(msg string, args ...any) {
	l.logger.Warn(msg, args...)
}

// Error logs at error level.
func (l *SlogBridgeLogger) Error(msg string, args ...any) {
	l.logger.Error(msg, args...)
}

// Shutdown flushes and stops the LoggerProvider owned by the logger, if any.
func (l *SlogBridgeLogger) Shutdown(ctx context.Context) error {
	if l.shutdown == nil {
		return nil
	}

	return l.shutdown(ctx)
}

// ParseLevel maps debug, info, warn and error (case-insensitive) to a slog.Level.
func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, errors.Join(ErrUnknownLogLevel, errors.New(level))
	}
}

// NewOTelLoggerProvider creates an SDK LoggerProvider that exports every record synchronously to out as JSON.
func NewOTelLoggerProvider(out io.Writer) (*sdklog.LoggerProvider, error) {
	exporter, err := stdoutlog.New(stdoutlog.WithWriter(out))
	if err != nil {
		return nil, errors.Join(ErrCreatingExporterFailed, err)
	}

	return sdklog.NewLoggerProvider(sdklog.WithProcessor(sdklog.NewSimpleProcessor(exporter))), nil
}

// NewLogger creates the logger for the given format, all of them write to out:
// "text" and "json" through log/slog handlers, "otel" as OpenTelemetry log records.
// Callers should Shutdown the returned logger when done.
func NewLogger(name string, format string, level string, out io.Writer) (*SlogBridgeLogger, error) {
	slogLevel, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}

	options := &slog.HandlerOptions{Level: slogLevel}

	switch format {
	case "text":
		return NewSlogBridgeLoggerWithHandler(slog.NewTextHandler(out, options)), nil
	case "json":
		return NewSlogBridgeLoggerWithHandler(slog.NewJSONHandler(out, options)), nil
	case "otel":
		provider, providerErr := NewOTelLoggerProvider(out)
		if providerErr != nil {
			return nil, providerErr
		}

		logger := NewSlogBridgeLogger(name, provider, slogLevel)
		logger.shutdown = provider.Shutdown

		return logger, nil
	default:
		return nil, errors.Join(ErrUnknownLogFormat, errors.New(format))
	}
}

// levelHandler drops records below level and hands the rest to next.
type levelHandler struct {
	level slog.Leveler
	next  slog.Handler
}

func (h *levelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= h.level.Level() && h.next.Enabled(ctx, level)
}

func (h *levelHandler) Handle(ctx context.Context, record slog.Record) error {
	return h.next.Handle(ctx, record)
}

func (h *levelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelHandler{level: h.level, next: h.next.WithAttrs(attrs)}
}

func (h *levelHandler) WithGroup(name string) slog.Handler {
	return &levelHandler{level: h.level, next: h.next.WithGroup(name)}
}
