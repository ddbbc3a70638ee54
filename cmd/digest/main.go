// Package main provides a CLI for summarizing a local document.
// Usage: digest --file report.pdf [--detail brief|detailed|comprehensive] [--output json]
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"docdigest/internal/domain/entity"
	"docdigest/internal/infra/extractor"
	"docdigest/internal/infra/summarizer"
	"docdigest/internal/observability/logging"
	"docdigest/internal/usecase/document"
	"docdigest/internal/usecase/summarize"
)

// ReportOutput is the JSON output format for a summarized document.
type ReportOutput struct {
	Filename         string   `json:"filename"`
	DetailLevel      string   `json:"detail_level"`
	Model            string   `json:"model,omitempty"`
	Summary          string   `json:"summary"`
	BulletPoints     []string `json:"bullet_points"`
	Pages            int      `json:"pages"`
	OCRUsed          bool     `json:"ocr_used"`
	OriginalChars    int      `json:"original_chars"`
	OriginalWords    int      `json:"original_words"`
	SummaryChars     int      `json:"summary_chars"`
	CompressionRatio int      `json:"compression_ratio"`
	ChunkCount       int      `json:"chunk_count"`
	FailedChunks     int      `json:"failed_chunks"`
}

func main() {
	var (
		file         string
		detail       string
		model        string
		provider     string
		parallelism  int
		outputFormat string
		timeout      time.Duration
	)

	flag.StringVar(&file, "file", "", "Document to summarize (.pdf, .txt or .md)")
	flag.StringVar(&detail, "detail", "detailed", "Detail level: brief, detailed or comprehensive")
	flag.StringVar(&model, "model", "", "Summarizer model identifier (provider default when empty)")
	flag.StringVar(&provider, "provider", "", "Summarizer provider: openai, claude or noop (SUMMARIZER_PROVIDER when empty)")
	flag.IntVar(&parallelism, "parallel", 1, "Concurrent chunk summarization calls")
	flag.StringVar(&outputFormat, "output", "text", "Output format: text or json")
	flag.DurationVar(&timeout, "timeout", 10*time.Minute, "Overall processing timeout")
	flag.Parse()

	if file == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage: digest --file report.pdf [--detail brief|detailed|comprehensive] [--output json]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Examples:")
		fmt.Fprintln(os.Stderr, "  digest --file report.pdf")
		fmt.Fprintln(os.Stderr, "  digest --file scan.pdf --detail comprehensive")
		fmt.Fprintln(os.Stderr, "  digest --file notes.txt --provider openai --model gpt-4o-mini --output json")
		os.Exit(1)
	}

	logger := logging.New(os.Stderr)

	level, err := entity.ParseDetailLevel(detail)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	svc, err := buildService(provider)
	if err != nil {
		logger.Error("failed to build pipeline", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	var progress summarize.ProgressFunc
	if outputFormat == "text" {
		progress = func(percent int, message string) {
			fmt.Fprintf(os.Stderr, "\r%3d%% %s", percent, message)
		}
	}

	result, err := svc.Process(ctx, document.Request{
		Path:        file,
		Filename:    file,
		DetailLevel: level,
		Model:       model,
		Parallelism: parallelism,
		Progress:    progress,
	})
	if progress != nil {
		fmt.Fprintln(os.Stderr)
	}
	if err != nil {
		logger.Error("summarization failed", slog.Any("error", err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	out := buildOutput(file, result)
	if outputFormat == "json" {
		outputJSON(out)
	} else {
		outputText(out)
	}
}

// buildService wires the extractor and summarizer into a document service.
// Persistence is not used from the CLI.
func buildService(providerOverride string) (*document.Service, error) {
	var ocr extractor.OCRRunner
	if t := extractor.NewTesseractOCR(extractor.LoadOCRConfig()); t.Available() {
		ocr = t
	}

	factory := func(model string) (document.Pipeline, error) {
		cfg := summarizer.LoadConfig()
		if providerOverride != "" {
			cfg.Provider = providerOverride
		}
		if model != "" {
			cfg.Model = model
		}
		s, err := summarizer.New(cfg)
		if err != nil {
			return nil, err
		}
		return summarize.NewService(s), nil
	}

	return document.NewService(extractor.NewService(ocr), factory, nil), nil
}

func buildOutput(file string, result *document.Result) ReportOutput {
	summary := result.Summary
	return ReportOutput{
		Filename:         file,
		DetailLevel:      string(summary.DetailLevel),
		Model:            summary.Model,
		Summary:          summary.Text,
		BulletPoints:     summary.Bullets,
		Pages:            result.Pages,
		OCRUsed:          result.OCRUsed,
		OriginalChars:    result.Chars,
		OriginalWords:    result.Words,
		SummaryChars:     summary.SummaryLength,
		CompressionRatio: summary.CompressionRatio,
		ChunkCount:       summary.ChunkCount,
		FailedChunks:     summary.FailedChunks,
	}
}

// outputText prints the report in human-readable form.
func outputText(out ReportOutput) {
	fmt.Printf("Summary of %s (%s)\n", out.Filename, out.DetailLevel)
	fmt.Printf("Pages: %d", out.Pages)
	if out.OCRUsed {
		fmt.Printf(" (OCR)")
	}
	fmt.Printf("  Words: %d  Compression: %dx\n\n", out.OriginalWords, out.CompressionRatio)

	fmt.Println("Key points:")
	for _, point := range out.BulletPoints {
		fmt.Printf("  - %s\n", point)
	}

	if out.FailedChunks > 0 {
		fmt.Printf("\nWarning: %d of %d chunks could not be summarized\n",
			out.FailedChunks, out.ChunkCount)
	}
}

// outputJSON prints the report as indented JSON.
func outputJSON(out ReportOutput) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "Error: Failed to encode JSON: %v\n", err)
		os.Exit(1)
	}
}

