package summarizer

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// SummaryMetricsRecorder defines the interface for recording summary-related metrics.
// This interface abstracts the metrics recording implementation, enabling:
//   - Mocking in unit tests (inject mock recorder instead of Prometheus)
//   - Swapping metrics systems without touching the providers
//   - Reusability across the Claude and OpenAI adapters
type SummaryMetricsRecorder interface {
	// RecordLength records the length of a generated summary in characters.
	RecordLength(length int)

	// RecordLimitExceeded increments the counter when a summary exceeds the requested max length.
	RecordLimitExceeded()

	// RecordCompliance records whether a summary is within the requested max length.
	RecordCompliance(withinLimit bool)

	// RecordDuration records the time taken to generate a summary.
	RecordDuration(duration time.Duration)
}

// PrometheusSummaryMetrics implements SummaryMetricsRecorder using Prometheus metrics.
// This is the production implementation that records metrics to Prometheus.
type PrometheusSummaryMetrics struct {
	lengthHistogram   prometheus.Histogram
	exceededCounter   prometheus.Counter
	complianceGauge   prometheus.Gauge
	durationHistogram prometheus.Histogram
}

var (
	prometheusMetricsInstance *PrometheusSummaryMetrics
	prometheusMetricsOnce     sync.Once
)

// NewPrometheusSummaryMetrics creates a new Prometheus-based metrics recorder.
// Uses singleton pattern to avoid duplicate metric registration: both
// providers and every test share one set of collectors.
func NewPrometheusSummaryMetrics() *PrometheusSummaryMetrics {
	prometheusMetricsOnce.Do(func() {
		prometheusMetricsInstance = &PrometheusSummaryMetrics{
			lengthHistogram: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "chunk_summary_length_characters",
				Help:    "Distribution of provider summary lengths in characters (Unicode runes)",
				Buckets: []float64{50, 100, 200, 300, 400, 600, 900, 1500},
			}),
			exceededCounter: promauto.NewCounter(prometheus.CounterOpts{
				Name: "chunk_summary_limit_exceeded_total",
				Help: "Total number of summaries exceeding the requested max length",
			}),
			complianceGauge: promauto.NewGauge(prometheus.GaugeOpts{
				Name: "chunk_summary_within_limit",
				Help: "Whether the most recent summary was within the requested max length (1 = yes)",
			}),
			durationHistogram: promauto.NewHistogram(prometheus.HistogramOpts{
				Name:    "chunk_summary_duration_seconds",
				Help:    "Time taken for one provider summarization call",
				Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
			}),
		}
	})
	return prometheusMetricsInstance
}

// RecordLength records the summary length in the length histogram.
func (p *PrometheusSummaryMetrics) RecordLength(length int) {
	p.lengthHistogram.Observe(float64(length))
}

// RecordLimitExceeded increments the limit-exceeded counter.
func (p *PrometheusSummaryMetrics) RecordLimitExceeded() {
	p.exceededCounter.Inc()
}

// RecordCompliance sets the compliance gauge for the most recent summary.
func (p *PrometheusSummaryMetrics) RecordCompliance(withinLimit bool) {
	if withinLimit {
		p.complianceGauge.Set(1)
	} else {
		p.complianceGauge.Set(0)
	}
}

// RecordDuration records the call duration in the duration histogram.
func (p *PrometheusSummaryMetrics) RecordDuration(duration time.Duration) {
	p.durationHistogram.Observe(duration.Seconds())
}
