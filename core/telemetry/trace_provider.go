package telemetry

import (
	"context"
	"fmt"

	"github.com/anoideaopen/invoker/core/config"
	"github.com/anoideaopen/invoker/core/logger"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
)

// TracerName is the instrumentation name of the tracers created by this package.
const TracerName = "github.com/anoideaopen/invoker"

// InstallTraceProvider installs the global trace provider and propagator described by
// settings. Without an endpoint a noop provider is installed. The returned function
// flushes and stops the exporter.
func InstallTraceProvider(settings config.Tracing) (func(context.Context) error, error) {
	var tracerProvider trace.TracerProvider = noop.NewTracerProvider()
	shutdown := func(context.Context) error { return nil }

	defer func() {
		otel.SetTracerProvider(tracerProvider)
		otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(propagation.TraceContext{}, propagation.Baggage{}))
	}()

	if !settings.Enabled() {
		return shutdown, nil
	}

	opts := []otlptracehttp.Option{otlptracehttp.WithEndpoint(settings.Endpoint)}
	switch {
	case settings.CACerts != "":
		tlsConfig, err := getTLSConfig(settings.CACerts)
		if err != nil {
			return shutdown, err
		}
		opts = append(opts, otlptracehttp.WithTLSClientConfig(tlsConfig))
	case settings.Insecure:
		opts = append(opts, otlptracehttp.WithInsecure())
	}

	exporter, err := otlptrace.New(context.Background(), otlptracehttp.NewClient(opts...))
	if err != nil {
		return shutdown, fmt.Errorf("creating OTLP trace exporter: %w", err)
	}

	r, err := resource.Merge(
		resource.Default(),
		resource.NewSchemaless(semconv.ServiceName(settings.ServiceName)),
	)
	if err != nil {
		return shutdown, fmt.Errorf("creating resource: %w", err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(r))

	logger.Logger().
		WithField("endpoint", settings.Endpoint).
		WithField("service", settings.ServiceName).
		Info("trace exporter installed")

	tracerProvider = provider

	return provider.Shutdown, nil
}
