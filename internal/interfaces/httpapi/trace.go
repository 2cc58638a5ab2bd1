package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/riskibarqy/worldcup-shotmap/internal/usecase"
)

var apiTracer = otel.Tracer("worldcup-shotmap/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// startSpan only opens spans for handlers, and only under a traced request.
// Middleware and helper calls reuse the noop span.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() || !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}

// annotateSelection tags the current span with the parsed dashboard selection.
func annotateSelection(ctx context.Context, input usecase.RenderInput) {
	span := trace.SpanFromContext(ctx)
	if !span.IsRecording() {
		return
	}
	span.SetAttributes(selectionAttributes(input)...)
}

func selectionAttributes(input usecase.RenderInput) []attribute.KeyValue {
	attrs := []attribute.KeyValue{
		attribute.String("shotmap.match", input.MatchID),
		attribute.String("shotmap.outcome", string(input.Outcome)),
		attribute.String("shotmap.view", string(input.View)),
		attribute.Bool("shotmap.teams_default", input.Teams == nil),
	}
	if input.Teams != nil {
		attrs = append(attrs, attribute.StringSlice("shotmap.teams", input.Teams))
	}
	return attrs
}
