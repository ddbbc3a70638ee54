// Package summarize implements the chunking, hierarchical summarization and
// bullet-extraction pipeline. Raw text flows strictly forward: chunks, then
// per-chunk summaries from the external summarizer, then a recombined and
// possibly compressed final summary, then deduplicated bullet points.
package summarize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"docdigest/internal/domain/entity"
	"docdigest/internal/observability/metrics"
)

const (
	// minChunkChars is the minimum trimmed chunk length worth summarizing.
	// Shorter chunks carry too little signal and are skipped entirely.
	minChunkChars = 30

	// NoSummaryText is returned as the summary when every chunk failed or
	// was skipped. Callers receive this sentinel instead of an empty string.
	NoSummaryText = "No summary could be generated."
)

// Summarizer is the external summarization operation consumed by the pipeline.
// It shortens text to roughly [minLength, maxLength] characters.
type Summarizer interface {
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}

// ProgressFunc receives incremental progress while chunks are summarized.
// It is invoked synchronously with a percentage (0-100) and a short message.
type ProgressFunc func(percent int, message string)

// Options configures one summarization request.
type Options struct {
	// DetailLevel selects the length budgets. Zero value falls back to
	// entity.DetailDetailed.
	DetailLevel entity.DetailLevel

	// ChunkSize overrides the chunk character size. Zero uses the detail
	// level's default.
	ChunkSize int

	// Parallelism bounds concurrent per-chunk summarizer calls. Zero or
	// one keeps the reference sequential behavior. Results and progress
	// are always reassembled in chunk order.
	Parallelism int

	// Progress, when non-nil, receives per-chunk progress updates.
	Progress ProgressFunc
}

// Service runs the summarization pipeline against an injected external
// summarizer. The zero value is not usable; construct with NewService.
type Service struct {
	summarizer Summarizer
	ranker     SentenceRanker
}

// NewService creates a pipeline service using the length-based sentence
// ranking strategy for compression.
func NewService(s Summarizer) *Service {
	return &Service{summarizer: s, ranker: ByLengthRanker{}}
}

// NewServiceWithRanker creates a pipeline service with a custom sentence
// ranking strategy.
func NewServiceWithRanker(s Summarizer, r SentenceRanker) *Service {
	return &Service{summarizer: s, ranker: r}
}

// Summarize runs the full pipeline over the given text and returns the
// final summary with bullet points and derived statistics.
//
// Per-chunk summarizer failures are recorded and skipped; they never abort
// the request. Only a cancelled context propagates as an error.
func (s *Service) Summarize(ctx context.Context, input string, opts Options) (*entity.Summary, error) {
	if !opts.DetailLevel.Valid() {
		opts.DetailLevel = entity.DetailDetailed
	}
	chunkSize := opts.ChunkSize
	if chunkSize <= 0 {
		chunkSize = opts.DetailLevel.ChunkSize()
	}

	chunks := SplitChunks(input, chunkSize)
	metrics.RecordChunkCount(len(chunks))

	budget := opts.DetailLevel.Budget().ScaleFor(len(chunks))

	var (
		finalText string
		failed    int
	)

	switch {
	case len(chunks) == 0:
		finalText = NoSummaryText

	case len(chunks) == 1:
		// Single-chunk path: one direct call against the final budget,
		// no recombination.
		out, err := s.summarizer.Summarize(ctx, chunks[0].Text, budget.FinalMax, budget.MinPerChunk*2)
		if err != nil {
			if ctx.Err() != nil {
				return nil, fmt.Errorf("summarize document: %w", ctx.Err())
			}
			slog.WarnContext(ctx, "single-chunk summarization failed",
				slog.Any("error", err))
			metrics.RecordChunkSummary("failure")
			failed = 1
			finalText = NoSummaryText
		} else if finalText = strings.TrimSpace(out); finalText == "" {
			slog.WarnContext(ctx, "single-chunk summarizer returned empty output")
			metrics.RecordChunkSummary("failure")
			failed = 1
			finalText = NoSummaryText
		} else {
			metrics.RecordChunkSummary("success")
		}
		reportProgress(opts.Progress, 100, "summarized 1/1 chunks")

	default:
		summaries, failedCount, err := s.summarizeChunks(ctx, chunks, budget, opts)
		if err != nil {
			return nil, err
		}
		failed = failedCount

		if len(summaries) == 0 {
			finalText = NoSummaryText
		} else {
			combined := strings.Join(summaries, " ")
			finalText = s.compress(ctx, combined, budget)
		}
	}

	summary := &entity.Summary{
		Text:             finalText,
		Bullets:          FormatBullets(finalText),
		OriginalLength:   len(input),
		SummaryLength:    len(finalText),
		CompressionRatio: entity.CompressionRatio(len(input), len(finalText)),
		ChunkCount:       len(chunks),
		FailedChunks:     failed,
		DetailLevel:      opts.DetailLevel,
	}
	metrics.RecordCompressionRatio(summary.CompressionRatio)
	metrics.RecordBulletCount(len(summary.Bullets))

	return summary, nil
}

// summarizeChunks invokes the external summarizer once per eligible chunk
// and returns the surviving summaries in chunk order. A failed chunk is
// logged and skipped. Only context cancellation aborts the loop.
func (s *Service) summarizeChunks(ctx context.Context, chunks []entity.Chunk, budget entity.Budget, opts Options) ([]string, int, error) {
	results := make([]string, len(chunks))
	var failed int

	if opts.Parallelism > 1 {
		var err error
		failed, err = s.summarizeChunksParallel(ctx, chunks, budget, opts, results)
		if err != nil {
			return nil, 0, err
		}
	} else {
		for i, chunk := range chunks {
			if ctx.Err() != nil {
				return nil, 0, fmt.Errorf("summarize chunks: %w", ctx.Err())
			}
			out, ok := s.summarizeOne(ctx, chunk, budget)
			if ok {
				results[i] = out
			} else if len(strings.TrimSpace(chunk.Text)) >= minChunkChars {
				failed++
			}
			reportProgress(opts.Progress, (i+1)*100/len(chunks),
				fmt.Sprintf("summarized %d/%d chunks", i+1, len(chunks)))
		}
	}

	summaries := make([]string, 0, len(results))
	for _, r := range results {
		if r != "" {
			summaries = append(summaries, r)
		}
	}
	return summaries, failed, nil
}

// summarizeChunksParallel is the bounded-concurrency variant. Results land
// in their chunk's slot so document order is preserved; progress reflects
// completion counts.
func (s *Service) summarizeChunksParallel(ctx context.Context, chunks []entity.Chunk, budget entity.Budget, opts Options, results []string) (int, error) {
	var (
		mu        sync.Mutex
		completed int
		failed    int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Parallelism)

	for _, chunk := range chunks {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			out, ok := s.summarizeOne(gctx, chunk, budget)

			mu.Lock()
			defer mu.Unlock()
			if ok {
				results[chunk.Index] = out
			} else if len(strings.TrimSpace(chunk.Text)) >= minChunkChars {
				failed++
			}
			completed++
			reportProgress(opts.Progress, completed*100/len(chunks),
				fmt.Sprintf("summarized %d/%d chunks", completed, len(chunks)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, fmt.Errorf("summarize chunks: %w", err)
	}
	return failed, nil
}

// summarizeOne handles a single chunk. The boolean result distinguishes a
// usable summary from a skip (short chunk) or failure.
func (s *Service) summarizeOne(ctx context.Context, chunk entity.Chunk, budget entity.Budget) (string, bool) {
	trimmed := strings.TrimSpace(chunk.Text)
	if len(trimmed) < minChunkChars {
		metrics.RecordChunkSummary("skipped")
		return "", false
	}

	out, err := s.summarizer.Summarize(ctx, trimmed, budget.MaxPerChunk, budget.MinPerChunk)
	if err != nil {
		slog.WarnContext(ctx, "chunk summarization failed, skipping chunk",
			slog.Int("chunk_index", chunk.Index),
			slog.Int("chunk_length", chunk.Length()),
			slog.Any("error", err))
		metrics.RecordChunkSummary("failure")
		return "", false
	}

	summary := strings.TrimSpace(out)
	if summary == "" {
		slog.WarnContext(ctx, "chunk summarizer returned empty output, skipping chunk",
			slog.Int("chunk_index", chunk.Index),
			slog.Int("chunk_length", chunk.Length()))
		metrics.RecordChunkSummary("failure")
		return "", false
	}

	metrics.RecordChunkSummary("success")
	return summary, true
}

func reportProgress(fn ProgressFunc, percent int, message string) {
	if fn == nil {
		return
	}
	if percent > 100 {
		percent = 100
	}
	fn(percent, message)
}
