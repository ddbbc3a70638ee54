// Package tracing provides OpenTelemetry tracing integration.
//
// The HTTP middleware creates a server span per request, propagates W3C
// trace context and exposes the trace ID to clients via the X-Trace-Id
// response header. Pipeline stages can create child spans through GetTracer.
//
// Example usage:
//
//	import "docdigest/internal/observability/tracing"
//
//	mux := http.NewServeMux()
//	handler := tracing.Middleware(mux)
//
//	func summarize(ctx context.Context) {
//	    ctx, span := tracing.GetTracer().Start(ctx, "summarize-document")
//	    defer span.End()
//	    // ... run the pipeline ...
//	}
package tracing
