package telemetry

import (
	"context"

	"github.com/anoideaopen/invoker/core/params"
	"github.com/anoideaopen/invoker/core/routing"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var _ routing.ContextBinder = (*Router)(nil)

// Router decorates a routing.Router with a span per dispatched call. Spans are children
// of the span found in the context bound with WithContext.
type Router struct {
	next   routing.Router
	tracer trace.Tracer
	ctx    context.Context
}

// NewRouter wraps next. A nil tracer means the tracer of the global provider.
func NewRouter(next routing.Router, tracer trace.Tracer) *Router {
	if tracer == nil {
		tracer = otel.Tracer(TracerName)
	}

	return &Router{
		next:   next,
		tracer: tracer,
		ctx:    context.Background(),
	}
}

// WithContext returns a copy of r whose spans are children of the span in ctx.
func (r *Router) WithContext(ctx context.Context) routing.Router {
	c := *r
	c.ctx = ctx

	return &c
}

func (r *Router) Check(function, args string) error {
	span := r.start(OpCheck, function)
	defer span.End()

	err := r.next.Check(function, args)
	record(span, err)

	return err
}

func (r *Router) Invoke(function, args string) (string, error) {
	span := r.start(OpInvoke, function)
	defer span.End()

	out, err := r.next.Invoke(function, args)
	record(span, err)

	return out, err
}

func (r *Router) InvokeDocument(function string, node params.Node) (string, error) {
	span := r.start(OpInvokeDocument, function)
	defer span.End()

	out, err := r.next.InvokeDocument(function, node)
	record(span, err)

	return out, err
}

func (r *Router) Methods() map[routing.Function]routing.Method {
	return r.next.Methods()
}

func (r *Router) start(op Operation, function string) trace.Span {
	attrs := []attribute.KeyValue{OperationAttr(op), Function(function)}
	if m, ok := r.next.Methods()[function]; ok {
		attrs = append(attrs, Signature(m.Signature))
	}

	_, span := r.tracer.Start(r.ctx, op.String(),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(attrs...),
	)

	return span
}

func record(span trace.Span, err error) {
	if err == nil {
		return
	}

	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
