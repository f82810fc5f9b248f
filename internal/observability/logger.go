package observability

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Logger is the process-wide structured logger. It is a no-op logger until
// InitLogger runs so packages can log from tests without setup.
var Logger = zap.NewNop()

// InitLogger replaces Logger with a production JSON logger writing to stderr.
func InitLogger() error {
	l, err := zap.NewProduction()
	if err != nil {
		return err
	}

	Logger = l
	return nil
}

func SyncLogger() {
	_ = Logger.Sync()
}

// LoggerWithTrace returns a child logger enriched with trace_id and span_id
// fields from the active OTel span in ctx.
//
// ctx is also attached as a zap.Any("context", ctx) field: the otelzap core
// uses a context-valued field as the context for log.Logger.Emit, so exported
// OTLP records carry the native TraceID/SpanID and not zeros. The string
// trace_id/span_id fields keep stdout JSON greppable.
func LoggerWithTrace(ctx context.Context) *zap.Logger {
	span := trace.SpanContextFromContext(ctx)

	if !span.IsValid() {
		return Logger
	}

	return Logger.With(
		zap.Any("context", ctx),
		zap.String("trace_id", span.TraceID().String()),
		zap.String("span_id", span.SpanID().String()),
	)
}
