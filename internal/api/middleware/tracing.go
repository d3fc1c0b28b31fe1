package middleware

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// Tracing starts an OpenTelemetry span for each HTTP request and
// propagates the context to downstream handlers and services. An incoming
// traceparent header makes the span a child of the caller's trace.
func Tracing(next http.Handler) http.Handler {
	tracer := otel.Tracer("energy-tracker-api/http")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
		ctx, span := tracer.Start(ctx, r.Method+" "+r.URL.Path,
			trace.WithSpanKind(trace.SpanKindServer),
			trace.WithAttributes(
				attribute.String("http.method", r.Method),
				attribute.String("http.target", r.URL.Path),
			),
		)
		defer span.End()

		// Attach generic HTTP request metadata as Langfuse input
		inputPayload := map[string]any{
			"method": r.Method,
			"path":   r.URL.Path,
		}
		if r.URL.RawQuery != "" {
			inputPayload["query"] = r.URL.RawQuery
		}
		if r.RemoteAddr != "" {
			inputPayload["remote_addr"] = r.RemoteAddr
		}
		if inJSON, err := json.Marshal(inputPayload); err == nil {
			span.SetAttributes(attribute.String("langfuse.observation.input", string(inJSON)))
		}

		rw := newStatusRecorder(w)
		start := time.Now()

		next.ServeHTTP(rw, r.WithContext(ctx))

		// The route pattern is only known once chi has matched the request.
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if pattern := rctx.RoutePattern(); pattern != "" {
				span.SetName(r.Method + " " + pattern)
				span.SetAttributes(attribute.String("http.route", pattern))
			}
		}

		span.SetAttributes(attribute.Int("http.status_code", rw.status))
		if rw.status >= http.StatusInternalServerError {
			span.SetStatus(codes.Error, http.StatusText(rw.status))
		}
		outputPayload := map[string]any{
			"status_code": rw.status,
			"duration_ms": time.Since(start).Milliseconds(),
		}
		if outJSON, err := json.Marshal(outputPayload); err == nil {
			span.SetAttributes(attribute.String("langfuse.observation.output", string(outJSON)))
		}
	})
}
