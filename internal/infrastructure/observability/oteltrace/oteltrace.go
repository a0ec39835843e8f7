package oteltrace

import (
	"context"

	"github.com/Zhima-Mochi/stockroom/internal/observability"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type tracer struct{ t trace.Tracer }

// New adapts the global otel tracer provider to the observability.Tracer
// port. Without an SDK tracer provider installed the spans are no-ops.
func New(name string) observability.Tracer {
	if name == "" {
		name = "stockroom"
	}
	return &tracer{t: otel.Tracer(name)}
}

func (t *tracer) Start(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	return t.t.Start(ctx, name, trace.WithAttributes(attrs...))
}
