// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track HTTP request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// ActiveConnections tracks the number of active HTTP connections
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)
)

// Pipeline metrics track document summarization operations
var (
	// DocumentsProcessedTotal counts summarization requests by outcome
	DocumentsProcessedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "documents_processed_total",
			Help: "Total number of documents run through the summarization pipeline",
		},
		[]string{"status"},
	)

	// ExtractionDuration measures time to extract text from a document
	ExtractionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "document_extraction_duration_seconds",
			Help:    "Time taken to extract text from a document",
			Buckets: prometheus.ExponentialBuckets(0.05, 2, 10),
		},
		[]string{"method"}, // method: pdf-text, pdf-ocr, plain
	)

	// ChunksPerDocument measures how many chunks each document produced
	ChunksPerDocument = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "document_chunks_total",
			Help:    "Distribution of chunk counts per document",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100},
		},
	)

	// ChunkSummariesTotal counts per-chunk summarizer calls by outcome
	ChunkSummariesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "chunk_summaries_total",
			Help: "Total number of per-chunk summarization calls",
		},
		[]string{"status"}, // status: success, failure, skipped
	)

	// PipelineDuration measures end-to-end summarization time
	PipelineDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summarization_pipeline_duration_seconds",
			Help:    "End-to-end time for one summarization request",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
	)

	// SummaryCompressionRatio measures achieved compression ratios
	SummaryCompressionRatio = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summary_compression_ratio",
			Help:    "Ratio of original document length to final summary length",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 200},
		},
	)

	// BulletPointsPerSummary measures how many bullet points each summary produced
	BulletPointsPerSummary = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summary_bullet_points_total",
			Help:    "Distribution of bullet point counts per summary",
			Buckets: []float64{1, 3, 5, 10, 15, 20},
		},
	)
)

// Database metrics track the optional report store
var (
	// DBQueryDuration measures database query duration by operation
	DBQueryDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "db_query_duration_seconds",
			Help:    "Database query duration in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 10),
		},
		[]string{"operation"},
	)
)

// RecordHTTPRequest records an HTTP request with its metadata
func RecordHTTPRequest(method, path, status string, duration time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}
