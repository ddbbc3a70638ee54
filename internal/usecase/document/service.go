// Package document orchestrates a full summarization request: text
// extraction, the chunked summarization pipeline, and optional report
// persistence.
package document

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"docdigest/internal/domain/entity"
	"docdigest/internal/infra/extractor"
	"docdigest/internal/observability/metrics"
	"docdigest/internal/observability/tracing"
	"docdigest/internal/repository"
	"docdigest/internal/usecase/summarize"
)

// TextExtractor supplies document text with page and OCR provenance.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (extractor.Result, error)
}

// Pipeline runs the summarization pipeline over extracted text.
type Pipeline interface {
	Summarize(ctx context.Context, text string, opts summarize.Options) (*entity.Summary, error)
}

// PipelineFactory builds a pipeline bound to the given model identifier.
// An empty model selects the configured default. The identifier is opaque
// to this package and passed through unchanged.
type PipelineFactory func(model string) (Pipeline, error)

// Request describes one summarization request.
type Request struct {
	// Path is the local path of the uploaded document.
	Path string

	// Filename is the original name, recorded on the stored report.
	Filename string

	// DetailLevel selects the summary budgets. Empty means detailed.
	DetailLevel entity.DetailLevel

	// Model is the summarizer model identifier, passed through unchanged.
	Model string

	// Parallelism bounds concurrent chunk summarization. Zero keeps the
	// sequential behavior.
	Parallelism int

	// Progress, when non-nil, receives chunk-level progress updates.
	Progress summarize.ProgressFunc
}

// Result is the outcome of one processed document.
type Result struct {
	// ReportID is the stored report's ID, empty when persistence is
	// disabled or failed.
	ReportID string

	Summary *entity.Summary

	// Document stats surfaced alongside the summary.
	Pages   int
	OCRUsed bool
	Words   int
	Chars   int
}

// Service wires extraction, summarization and persistence together.
type Service struct {
	extractor TextExtractor
	pipeline  PipelineFactory
	reports   repository.ReportRepository
}

// NewService creates a document service. reports may be nil to disable
// report persistence.
func NewService(ex TextExtractor, pipeline PipelineFactory, reports repository.ReportRepository) *Service {
	return &Service{extractor: ex, pipeline: pipeline, reports: reports}
}

// Process runs the full flow for one document. Extraction and pipeline
// failures are terminal; a persistence failure only logs a warning and
// clears the report ID.
func (s *Service) Process(ctx context.Context, req Request) (*Result, error) {
	ctx, span := tracing.GetTracer().Start(ctx, "document.process")
	defer span.End()

	if req.Path == "" {
		return nil, &entity.ValidationError{Field: "path", Message: "path is required"}
	}
	level, err := entity.ParseDetailLevel(string(req.DetailLevel))
	if err != nil {
		return nil, err
	}

	start := time.Now()

	extracted, err := s.extractor.Extract(ctx, req.Path)
	if err != nil {
		metrics.RecordDocumentProcessed("extraction_failed")
		return nil, fmt.Errorf("extract document: %w", err)
	}
	doc := extracted.Document()

	pipeline, err := s.pipeline(req.Model)
	if err != nil {
		metrics.RecordDocumentProcessed("pipeline_failed")
		return nil, fmt.Errorf("build pipeline: %w", err)
	}

	summary, err := pipeline.Summarize(ctx, doc.Text, summarize.Options{
		DetailLevel: level,
		Parallelism: req.Parallelism,
		Progress:    req.Progress,
	})
	if err != nil {
		metrics.RecordDocumentProcessed("pipeline_failed")
		return nil, fmt.Errorf("summarize document: %w", err)
	}
	summary.Model = req.Model

	result := &Result{
		Summary: summary,
		Pages:   doc.Pages,
		OCRUsed: doc.OCRUsed,
		Words:   doc.Words(),
		Chars:   doc.Chars(),
	}
	result.ReportID = s.persist(ctx, req, doc, summary)

	metrics.RecordPipelineDuration(time.Since(start))
	metrics.RecordDocumentProcessed("success")
	slog.InfoContext(ctx, "document processed",
		slog.String("filename", req.Filename),
		slog.String("detail_level", string(level)),
		slog.Int("chunks", summary.ChunkCount),
		slog.Int("failed_chunks", summary.FailedChunks),
		slog.Int("bullets", len(summary.Bullets)),
		slog.Duration("duration", time.Since(start)))

	return result, nil
}

// persist stores the report when a repository is configured. Returns the
// new report ID, or empty when persistence is disabled or failed.
func (s *Service) persist(ctx context.Context, req Request, doc entity.Document, summary *entity.Summary) string {
	if s.reports == nil {
		return ""
	}

	report := &entity.Report{
		ID:          uuid.NewString(),
		Filename:    req.Filename,
		DetailLevel: summary.DetailLevel,
		Model:       req.Model,
		Summary:     summary.Text,
		Bullets:     summary.Bullets,
		Pages:       doc.Pages,
		OCRUsed:     doc.OCRUsed,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.reports.Save(ctx, report); err != nil {
		slog.WarnContext(ctx, "failed to persist report",
			slog.String("filename", req.Filename),
			slog.Any("error", err))
		return ""
	}
	return report.ID
}
