// Package observability groups the logging, metrics and tracing
// infrastructure for the summarization service.
//
// Subpackages:
//   - logging: slog logger construction and request ID propagation
//   - metrics: Prometheus counters and histograms for the pipeline,
//     the HTTP layer and the database
//   - tracing: OpenTelemetry server spans and trace ID correlation
package observability
