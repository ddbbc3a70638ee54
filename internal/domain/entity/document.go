// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Document and Summary, along with
// the detail-level presets and domain-specific errors.
package entity

import (
	"strings"
	"time"
)

// Document represents the extracted text of one uploaded document.
// The text is produced once by the extraction collaborator and is
// never mutated afterwards.
type Document struct {
	// Text is the full extracted text, including the OCR fallback output
	// when the document had no text layer.
	Text string

	// Pages is the number of pages reported by the extractor.
	Pages int

	// OCRUsed indicates whether the OCR fallback produced the text.
	OCRUsed bool
}

// Words returns the number of whitespace-separated words in the document.
func (d Document) Words() int {
	return len(strings.Fields(d.Text))
}

// Chars returns the number of characters in the document text.
func (d Document) Chars() int {
	return len(d.Text)
}

// Chunk is a word-aligned, contiguous slice of a document's text.
// Chunks partition the document in original order with no overlap.
type Chunk struct {
	// Index is the zero-based position of the chunk in document order.
	Index int

	// Text is the chunk content. Its length stays below the configured
	// chunk size except for a single word longer than the size itself.
	Text string
}

// Length returns the character length of the chunk text.
func (c Chunk) Length() int {
	return len(c.Text)
}

// Summary is the final result of one summarization request.
type Summary struct {
	// Text is the final summary after recombination and compression.
	Text string

	// Bullets are the deduplicated statements extracted from Text,
	// in order of first appearance, capped at the formatter limit.
	Bullets []string

	// OriginalLength is the character length of the source document text.
	OriginalLength int

	// SummaryLength is the character length of Text.
	SummaryLength int

	// CompressionRatio is OriginalLength / SummaryLength using integer
	// division, with the denominator floored at 1.
	CompressionRatio int

	// ChunkCount is how many chunks the document produced.
	ChunkCount int

	// FailedChunks is how many chunks were skipped because the external
	// summarizer failed on them.
	FailedChunks int

	// DetailLevel is the preset the request was made with.
	DetailLevel DetailLevel

	// Model is the summarization model identifier, passed through unchanged.
	Model string
}

// CompressionRatio computes the integer compression ratio between an
// original text length and a summary length. The denominator is floored
// at 1 so an empty summary never divides by zero.
func CompressionRatio(originalLen, summaryLen int) int {
	if summaryLen < 1 {
		summaryLen = 1
	}
	return originalLen / summaryLen
}

// Report is a persisted record of one completed summarization.
// Persistence is an external concern; the pipeline itself never reads reports.
type Report struct {
	ID          string
	Filename    string
	DetailLevel DetailLevel
	Model       string
	Summary     string
	Bullets     []string
	Pages       int
	OCRUsed     bool
	CreatedAt   time.Time
}
