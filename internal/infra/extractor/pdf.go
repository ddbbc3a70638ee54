package extractor

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"
)

// PDFExtractor reads a PDF's embedded text layer page by page. When the
// whole document produces no text (a scanned PDF), it falls back to the
// configured OCR runner.
type PDFExtractor struct {
	ocr OCRRunner
}

// NewPDFExtractor creates a PDF extractor. ocr may be nil, in which case
// text-layer-less PDFs yield an empty result.
func NewPDFExtractor(ocr OCRRunner) *PDFExtractor {
	return &PDFExtractor{ocr: ocr}
}

// Extract reads the text layer of every page. Pages that fail to decode
// are skipped so one malformed page cannot sink the whole document.
func (e *PDFExtractor) Extract(ctx context.Context, path string) (Result, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return Result{}, fmt.Errorf("open pdf %s: %w", path, err)
	}
	defer f.Close()

	pages := reader.NumPage()
	var sb strings.Builder
	for i := 1; i <= pages; i++ {
		if ctx.Err() != nil {
			return Result{}, fmt.Errorf("extract pdf text: %w", ctx.Err())
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			slog.WarnContext(ctx, "failed to read pdf page, skipping",
				slog.String("path", path),
				slog.Int("page", i),
				slog.Any("error", err))
			continue
		}
		sb.WriteString(text)
		sb.WriteString("\n")
	}

	if strings.TrimSpace(sb.String()) != "" {
		return Result{Text: sb.String(), Pages: pages, Method: MethodPDFText}, nil
	}

	// No text layer anywhere in the document: OCR the whole file.
	if e.ocr == nil {
		return Result{Pages: pages, Method: MethodPDFText}, nil
	}
	slog.InfoContext(ctx, "pdf has no text layer, running ocr",
		slog.String("path", path),
		slog.Int("pages", pages))

	text, err := e.ocr.Run(ctx, path)
	if err != nil {
		return Result{}, fmt.Errorf("ocr fallback for %s: %w", path, err)
	}
	return Result{Text: text, Pages: pages, OCRUsed: true, Method: MethodPDFOCR}, nil
}
