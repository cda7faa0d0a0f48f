package cli

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"
)

// actionContext gives one menu action its own trace ID, seeded from a fresh
// UUID, so its booking events can be tied together in the event log.
func actionContext(ctx context.Context) context.Context {
	id := uuid.New()

	var spanID trace.SpanID

	copy(spanID[:], id[8:])

	sc := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: trace.TraceID(id),
		SpanID:  spanID,
	})

	return trace.ContextWithSpanContext(ctx, sc)
}
