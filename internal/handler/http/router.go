package http

import (
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"docdigest/internal/common/pagination"
	"docdigest/internal/handler/http/requestid"
	"docdigest/internal/observability/tracing"
	"docdigest/internal/repository"
	"docdigest/internal/usecase/document"
)

// RouterConfig collects the dependencies and knobs for the API routes.
type RouterConfig struct {
	Documents *document.Service
	Reports   repository.ReportRepository
	DB        *sql.DB

	Version      string
	OCRAvailable bool

	// Parallelism bounds concurrent chunk summarization per request.
	Parallelism int

	// RequestTimeout bounds each request end to end.
	RequestTimeout time.Duration

	// MaxUploadBytes caps the request body size.
	MaxUploadBytes int64

	// RateLimitRPS and RateLimitBurst configure the per-IP limiter.
	// Zero RPS disables rate limiting.
	RateLimitRPS   float64
	RateLimitBurst int
}

// NewRouter assembles the HTTP routes with the full middleware chain:
// request ID, tracing, logging, metrics, panic recovery, body limit,
// rate limit and timeout.
func NewRouter(logger *slog.Logger, cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/summarize", &SummarizeHandler{
		Svc:         cfg.Documents,
		Parallelism: cfg.Parallelism,
	})
	if cfg.Reports != nil {
		mux.Handle("/reports", &ListReportsHandler{
			Repo:       cfg.Reports,
			Pagination: pagination.LoadFromEnv(),
		})
		mux.Handle("/reports/", &GetReportHandler{Repo: cfg.Reports})
	}
	mux.Handle("/healthz", &HealthHandler{
		DB:           cfg.DB,
		Version:      cfg.Version,
		OCRAvailable: cfg.OCRAvailable,
	})
	mux.Handle("/livez", LiveHandler{})
	mux.Handle("/metrics", MetricsHandler())

	var handler http.Handler = mux
	if cfg.RequestTimeout > 0 {
		handler = Timeout(cfg.RequestTimeout)(handler)
	}
	if cfg.MaxUploadBytes > 0 {
		handler = LimitRequestBody(cfg.MaxUploadBytes)(handler)
	}
	if cfg.RateLimitRPS > 0 {
		handler = NewIPRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware(handler)
	}
	handler = Recover(logger)(handler)
	handler = Metrics()(handler)
	handler = Logging(logger)(handler)
	handler = tracing.Middleware(handler)
	handler = requestid.Middleware(handler)

	return handler
}
