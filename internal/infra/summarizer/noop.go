package summarizer

import (
	"context"
	"strings"
)

// NoOp is a summarizer that truncates instead of summarizing.
// This is useful for testing and development when no model is available:
// it honors the maxLength bound deterministically without any API call.
type NoOp struct{}

// NewNoOp creates a new NoOp summarizer.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Summarize returns the original text truncated to maxLength characters.
// Truncation backtracks to the last word boundary so the output never ends
// mid-word.
func (n *NoOp) Summarize(_ context.Context, input string, maxLength, minLength int) (string, error) {
	if err := ValidateLengthBounds(maxLength, minLength); err != nil {
		return "", err
	}

	runes := []rune(input)
	if len(runes) <= maxLength {
		return input, nil
	}

	cut := string(runes[:maxLength])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimSpace(cut), nil
}
