package metrics

import (
	"time"
)

// RecordDocumentProcessed records the outcome of one summarization request
// ("success", "extraction_failed" or "pipeline_failed").
func RecordDocumentProcessed(status string) {
	DocumentsProcessedTotal.WithLabelValues(status).Inc()
}

// RecordExtraction records the duration of a text extraction by method
// ("pdf-text", "pdf-ocr" or "plain").
func RecordExtraction(method string, duration time.Duration) {
	ExtractionDuration.WithLabelValues(method).Observe(duration.Seconds())
}

// RecordChunkCount records how many chunks a document produced.
func RecordChunkCount(count int) {
	ChunksPerDocument.Observe(float64(count))
}

// RecordChunkSummary records the outcome of a single per-chunk summarizer call.
// Status should be "success", "failure" or "skipped".
func RecordChunkSummary(status string) {
	ChunkSummariesTotal.WithLabelValues(status).Inc()
}

// RecordPipelineDuration records the end-to-end time of one request.
func RecordPipelineDuration(duration time.Duration) {
	PipelineDuration.Observe(duration.Seconds())
}

// RecordCompressionRatio records the achieved compression ratio for a summary.
func RecordCompressionRatio(ratio int) {
	SummaryCompressionRatio.Observe(float64(ratio))
}

// RecordBulletCount records how many bullet points a summary produced.
func RecordBulletCount(count int) {
	BulletPointsPerSummary.Observe(float64(count))
}

// RecordDBQuery records the duration of a database query operation.
// Operation should describe the query type (e.g., "insert_report", "list_reports").
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}
