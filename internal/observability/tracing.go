package observability

import (
	"context"
	"os"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

func InitTracing(ctx context.Context) (func(context.Context) error, error) {

	exporter, err := otlptracehttp.New(ctx)
	if err != nil {
		return nil, err
	}

	res, err := newResource(ctx)
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)

	otel.SetTracerProvider(provider)

	return provider.Shutdown, nil
}

// newResource describes this process to every OTel signal provider.
func newResource(ctx context.Context) (*resource.Resource, error) {
	return resource.New(
		ctx,
		resource.WithFromEnv(),
		resource.WithAttributes(
			semconv.ServiceName(ServiceName()),
		),
	)
}

var serviceName string

// SetServiceName sets the name reported by every OTel signal. Call it before
// the Init functions.
func SetServiceName(name string) {
	serviceName = name
}

// ServiceName returns the configured service name, falling back to
// OTEL_SERVICE_NAME and then "fitness-tracker".
func ServiceName() string {
	if serviceName != "" {
		return serviceName
	}
	name := os.Getenv("OTEL_SERVICE_NAME")
	if name == "" {
		name = "fitness-tracker"
	}
	return name
}
