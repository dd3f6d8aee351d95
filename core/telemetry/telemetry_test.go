package telemetry

import (
	"context"
	"encoding/base64"
	"net"
	"testing"
	"time"

	"github.com/anoideaopen/invoker/core/callable"
	"github.com/anoideaopen/invoker/core/config"
	"github.com/anoideaopen/invoker/core/routing"
	invokergrpc "github.com/anoideaopen/invoker/core/routing/grpc"
	"github.com/anoideaopen/invoker/core/routing/table"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace/noop"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"
)

func newTracer() (*tracetest.SpanRecorder, *sdktrace.TracerProvider) {
	sr := tracetest.NewSpanRecorder()
	return sr, sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(sr))
}

func sumRouter() *table.Router {
	return table.NewRouter().
		MustRegister("sum", callable.Func2(func(a, b int32) int32 { return a + b }))
}

func byName(spans []sdktrace.ReadOnlySpan, name string) sdktrace.ReadOnlySpan {
	for _, s := range spans {
		if s.Name() == name {
			return s
		}
	}

	return nil
}

func TestRouterSpans(t *testing.T) {
	sr, tp := newTracer()
	r := NewRouter(sumRouter(), tp.Tracer("test"))

	out, err := r.Invoke("sum", "3,4")
	require.NoError(t, err)
	require.Equal(t, "7", out)

	require.Error(t, r.Check("sum", "x,1"))

	_, err = r.InvokeDocument("nope", nil)
	require.ErrorIs(t, err, routing.ErrUnsupportedMethod)

	require.Len(t, r.Methods(), 1)

	spans := sr.Ended()
	require.Len(t, spans, 3)

	invoke := spans[0]
	require.Equal(t, "invoke", invoke.Name())
	require.Contains(t, invoke.Attributes(), Function("sum"))
	require.Contains(t, invoke.Attributes(), Signature("5:2:5,5"))
	require.Contains(t, invoke.Attributes(), OperationAttr(OpInvoke))
	require.Equal(t, codes.Unset, invoke.Status().Code)

	check := spans[1]
	require.Equal(t, "check", check.Name())
	require.Equal(t, codes.Error, check.Status().Code)
	require.Len(t, check.Events(), 1)

	document := spans[2]
	require.Equal(t, "invoke_document", document.Name())
	require.Equal(t, codes.Error, document.Status().Code)
	for _, kv := range document.Attributes() {
		require.NotEqual(t, KeySignature, kv.Key)
	}
}

func TestRouterWithContext(t *testing.T) {
	sr, tp := newTracer()
	tracer := tp.Tracer("test")
	r := NewRouter(sumRouter(), tracer)

	ctx, parent := tracer.Start(context.Background(), "parent")
	_, err := routing.BindContext(ctx, r).Invoke("sum", "1,1")
	require.NoError(t, err)
	parent.End()

	child := byName(sr.Ended(), "invoke")
	require.NotNil(t, child)
	require.Equal(t, parent.SpanContext().TraceID(), child.SpanContext().TraceID())
	require.Equal(t, parent.SpanContext().SpanID(), child.Parent().SpanID())
}

func TestGRPCPropagation(t *testing.T) {
	sr, tp := newTracer()
	tracer := tp.Tracer("test")
	prop := propagation.TraceContext{}

	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer(grpc.ChainUnaryInterceptor(UnaryServerTracing(tracer, prop)))
	invokergrpc.RegisterInvokerServer(server, invokergrpc.NewService(NewRouter(sumRouter(), tracer)))
	go func() { _ = server.Serve(lis) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(UnaryClientTracing(prop)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ctx, root := tracer.Start(context.Background(), "client")
	out, err := invokergrpc.NewClient(conn).Invoke(ctx, "sum", "20,22")
	require.NoError(t, err)
	require.Equal(t, "42", out)
	root.End()

	spans := sr.Ended()
	serverSpan := byName(spans, "/invoker.v1.Invoker/Invoke")
	routerSpan := byName(spans, "invoke")
	require.NotNil(t, serverSpan)
	require.NotNil(t, routerSpan)

	require.Equal(t, root.SpanContext().TraceID(), serverSpan.SpanContext().TraceID())
	require.Equal(t, root.SpanContext().SpanID(), serverSpan.Parent().SpanID())
	require.True(t, serverSpan.Parent().IsRemote())
	require.Equal(t, serverSpan.SpanContext().SpanID(), routerSpan.Parent().SpanID())
}

func TestMetadataCarrier(t *testing.T) {
	c := MetadataCarrier(metadata.MD{})
	c.Set("Traceparent", "00-abc")

	require.Equal(t, "00-abc", c.Get("traceparent"))
	require.Equal(t, "", c.Get("missing"))
	require.Equal(t, []string{"traceparent"}, c.Keys())
}

func TestInstallTraceProvider(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	shutdown, err := InstallTraceProvider(config.Tracing{})
	require.NoError(t, err)
	require.NoError(t, shutdown(ctx))
	require.IsType(t, noop.TracerProvider{}, otel.GetTracerProvider())

	shutdown, err = InstallTraceProvider(config.Tracing{
		Endpoint:    "localhost:4318",
		ServiceName: "test",
		Insecure:    true,
	})
	require.NoError(t, err)
	require.IsType(t, &sdktrace.TracerProvider{}, otel.GetTracerProvider())
	require.NoError(t, shutdown(ctx))

	_, err = InstallTraceProvider(config.Tracing{
		Endpoint: "localhost:4318",
		CACerts:  base64.StdEncoding.EncodeToString([]byte("not a certificate")),
	})
	require.ErrorIs(t, err, ErrNoCertificates)
}
