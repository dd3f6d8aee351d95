package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"
)

var _ propagation.TextMapCarrier = MetadataCarrier{}

// MetadataCarrier carries trace context in gRPC metadata.
type MetadataCarrier metadata.MD

func (c MetadataCarrier) Get(key string) string {
	values := metadata.MD(c).Get(key)
	if len(values) == 0 {
		return ""
	}

	return values[0]
}

func (c MetadataCarrier) Set(key, value string) {
	metadata.MD(c).Set(key, value)
}

func (c MetadataCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}

	return keys
}

// UnaryServerTracing returns an interceptor that continues the trace found in the
// incoming metadata and wraps the call in a server span. Nil arguments mean the global
// tracer and propagator.
func UnaryServerTracing(tracer trace.Tracer, prop propagation.TextMapPropagator) grpc.UnaryServerInterceptor {
	if tracer == nil {
		tracer = otel.Tracer(TracerName)
	}

	return func(
		ctx context.Context,
		req any,
		info *grpc.UnaryServerInfo,
		handler grpc.UnaryHandler,
	) (any, error) {
		md, _ := metadata.FromIncomingContext(ctx)
		ctx = propagator(prop).Extract(ctx, MetadataCarrier(md))

		ctx, span := tracer.Start(ctx, info.FullMethod,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(RPCMethod(info.FullMethod)),
		)
		defer span.End()

		resp, err := handler(ctx, req)
		record(span, err)

		return resp, err
	}
}

// UnaryClientTracing returns an interceptor that writes the trace context of the call
// into the outgoing metadata.
func UnaryClientTracing(prop propagation.TextMapPropagator) grpc.UnaryClientInterceptor {
	return func(
		ctx context.Context,
		method string,
		req, reply any,
		cc *grpc.ClientConn,
		invoker grpc.UnaryInvoker,
		opts ...grpc.CallOption,
	) error {
		md, ok := metadata.FromOutgoingContext(ctx)
		if ok {
			md = md.Copy()
		} else {
			md = metadata.MD{}
		}

		propagator(prop).Inject(ctx, MetadataCarrier(md))

		return invoker(metadata.NewOutgoingContext(ctx, md), method, req, reply, cc, opts...)
	}
}

func propagator(prop propagation.TextMapPropagator) propagation.TextMapPropagator {
	if prop == nil {
		return otel.GetTextMapPropagator()
	}

	return prop
}
