// Package extractor turns uploaded documents into plain text for the
// summarization pipeline. PDF files are read through their text layer
// first; when a PDF carries no text layer at all (scanned documents),
// extraction falls back to rasterizing pages and running OCR over them.
// Plain text files pass through unchanged.
package extractor

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"docdigest/internal/domain/entity"
	"docdigest/internal/observability/metrics"
)

// Extraction methods reported on the result and used as metric labels.
const (
	MethodPDFText = "pdf-text"
	MethodPDFOCR  = "pdf-ocr"
	MethodPlain   = "plain"
)

// Result is the outcome of one extraction: the full document text plus
// provenance the caller surfaces in its response.
type Result struct {
	Text    string
	Pages   int
	OCRUsed bool
	Method  string
}

// Document converts the result into the pipeline's input entity.
func (r Result) Document() entity.Document {
	return entity.Document{Text: r.Text, Pages: r.Pages, OCRUsed: r.OCRUsed}
}

// TextExtractor extracts the full text of a document file.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (Result, error)
}

// Service routes files to the PDF or plain-text extractor based on the
// file extension, and records extraction metrics.
type Service struct {
	pdf   TextExtractor
	plain TextExtractor
}

// NewService creates an extraction service with the default PDF and
// plain-text extractors. ocr may be nil to disable the OCR fallback.
func NewService(ocr OCRRunner) *Service {
	return &Service{
		pdf:   NewPDFExtractor(ocr),
		plain: PlainTextExtractor{},
	}
}

// Extract extracts text from the file at path. It returns
// entity.ErrNoExtractableText when the document yields no text even after
// the OCR fallback.
func (s *Service) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	var (
		result Result
		err    error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		result, err = s.pdf.Extract(ctx, path)
	case ".txt", ".md", ".text":
		result, err = s.plain.Extract(ctx, path)
	default:
		return Result{}, fmt.Errorf("%w: unsupported file type %q",
			entity.ErrInvalidInput, filepath.Ext(path))
	}
	if err != nil {
		return Result{}, err
	}

	if strings.TrimSpace(result.Text) == "" {
		return Result{}, entity.ErrNoExtractableText
	}

	metrics.RecordExtraction(result.Method, time.Since(start))
	slog.InfoContext(ctx, "document text extracted",
		slog.String("method", result.Method),
		slog.Int("pages", result.Pages),
		slog.Bool("ocr_used", result.OCRUsed),
		slog.Int("chars", len(result.Text)))

	return result, nil
}
