// Package metrics provides Prometheus metrics registry and recording utilities.
//
// This package centralizes all application metrics including:
//   - HTTP request metrics (duration, count)
//   - Pipeline metrics (documents, extraction, chunks, compression, bullets)
//   - Database query metrics
//
// All metrics are automatically registered with the Prometheus default registry
// and exposed via the /metrics endpoint.
//
// Example usage:
//
//	import "docdigest/internal/observability/metrics"
//
//	func summarizeDocument() {
//	    start := time.Now()
//	    // ... run the pipeline ...
//	    metrics.RecordDocumentProcessed(true)
//	    metrics.RecordPipelineDuration(time.Since(start))
//	}
package metrics
