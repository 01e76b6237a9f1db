// Package trace exports open/close sequences of letter cards as OpenTelemetry spans.
//
// Tracing is off unless OTEL_EXPORTER_OTLP_ENDPOINT is set.
package trace

import (
	"context"
	"fmt"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Environment variables read by NewOTLPExporter.
const (
	EndpointEnv    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	ServiceNameEnv = "OTEL_SERVICE_NAME"
)

// DefaultServiceName is reported when OTEL_SERVICE_NAME is unset.
const DefaultServiceName = "openwhen"

// InstrumentationName names the tracer spans are created with.
const InstrumentationName = "openwhen/envelope"

// OTLPExporter owns the tracer provider spans are exported through.
type OTLPExporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewOTLPExporter creates an OTLP/HTTP exporter if OTEL_EXPORTER_OTLP_ENDPOINT is set.
// Returns nil, nil when the endpoint is not configured (disabled).
func NewOTLPExporter(ctx context.Context) (*OTLPExporter, error) {
	endpoint := os.Getenv(EndpointEnv)
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(endpoint))
	if err != nil {
		return nil, fmt.Errorf("otlp exporter %q: %w", endpoint, err)
	}

	serviceName := os.Getenv(ServiceNameEnv)
	if serviceName == "" {
		serviceName = DefaultServiceName
	}
	return NewExporterWith(sdktrace.WithBatcher(exporter), serviceName), nil
}

// NewExporterWith builds an OTLPExporter around an arbitrary span processor.
// Tests pass a synchronous processor over an in-memory exporter.
func NewExporterWith(processor sdktrace.TracerProviderOption, serviceName string) *OTLPExporter {
	res := resource.NewWithAttributes("",
		attribute.String("service.name", serviceName),
	)
	provider := sdktrace.NewTracerProvider(
		processor,
		sdktrace.WithResource(res),
	)
	return &OTLPExporter{
		provider: provider,
		tracer:   provider.Tracer(InstrumentationName),
	}
}

// Tracer returns the tracer spans are started on.
func (e *OTLPExporter) Tracer() oteltrace.Tracer {
	return e.tracer
}

// Shutdown flushes and closes the exporter. Safe on a nil exporter.
func (e *OTLPExporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
