package tracing

import (
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("docdigest")

// GetTracer returns the application tracer. Pipeline stages use it to
// create child spans under the request span:
//
//	ctx, span := tracing.GetTracer().Start(ctx, "document.extract")
//	defer span.End()
func GetTracer() trace.Tracer {
	return tracer
}
