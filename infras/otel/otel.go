package otel

import (
	"context"
	"estate/config"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"google.golang.org/grpc/credentials/insecure"
)

// Otel opens spans for handlers, services, repositories and infrastructure calls.
type Otel interface {
	NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope)
}

type otelImpl struct {
	TracerProvider *trace.TracerProvider
}

func (o *otelImpl) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope) {
	ctx, span := o.TracerProvider.Tracer(scopeName).Start(ctx, spanName)

	return ctx, NewScope(span)
}

// NewWithProvider opens scopes on provider, e.g. one with a tracetest.SpanRecorder.
func NewWithProvider(provider *trace.TracerProvider) Otel {
	return NewWithProvider(provider)
}

// New exports spans over OTLP gRPC when EXTERNAL_OTEL_ENDPOINT is set. Without an
// endpoint spans are created but never exported.
func New(cfg *config.Config) Otel {
	serviceResource := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(cfg.App.Name),
		semconv.DeploymentEnvironmentKey.String(cfg.Server.Env),
	)

	endpoint := cfg.External.Otel.Endpoint
	if endpoint == "" {
		log.Warn().Msg("OTLP endpoint is not configured, spans will not be exported")

		return NewWithProvider(trace.NewTracerProvider(trace.WithResource(serviceResource)))
	}

	exporter, err := otlptracegrpc.New(context.Background(),
		otlptracegrpc.WithEndpoint(endpoint),
		otlptracegrpc.WithTLSCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		log.Fatal().Err(err).Str("endpoint", endpoint).Msg("Failed to create OTLP exporter")
	}

	provider := trace.NewTracerProvider(
		trace.WithBatcher(exporter),
		trace.WithResource(serviceResource),
	)

	otel.SetTracerProvider(provider)

	log.Info().Str("endpoint", endpoint).Msg("Exporting traces over OTLP")

	return NewWithProvider(provider)
}
