package summarize

import (
	"context"
	"log/slog"
	"strings"

	"docdigest/internal/domain/entity"
)

// compress bounds a combined chunk summary to the detail level's final
// budget. Text at or below finalMax*2 passes through untouched. Longer
// text goes through sentence selection under the ranking strategy, then,
// if the selection still exceeds finalMax, one last external
// summarization pass. Any failure degrades to the uncompressed combined
// text rather than failing the request.
func (s *Service) compress(ctx context.Context, combined string, budget entity.Budget) string {
	threshold := budget.FinalMax * 2
	if len(combined) <= threshold {
		return combined
	}

	sentences := splitSentences(combined)
	ranked := s.ranker.Rank(sentences)

	// Greedy selection in ranked order, stopping before the threshold.
	var selected []string
	total := 0
	for _, sentence := range ranked {
		if total+len(sentence) > threshold {
			break
		}
		selected = append(selected, sentence)
		total += len(sentence)
	}
	if len(selected) == 0 && len(ranked) > 0 {
		// Even the top sentence exceeds the threshold; keep it and let
		// the final summarizer pass shorten it.
		selected = ranked[:1]
	}

	// Note: output keeps the ranked (length-descending) order, not the
	// original document order.
	reduced := strings.Join(selected, ". ")
	if len(reduced) <= budget.FinalMax {
		return reduced
	}

	out, err := s.summarizer.Summarize(ctx, reduced, budget.FinalMax, budget.FinalMax/2)
	if err != nil {
		slog.WarnContext(ctx, "final compression pass failed, returning combined summary",
			slog.Int("combined_length", len(combined)),
			slog.Any("error", err))
		return combined
	}
	return strings.TrimSpace(out)
}

// splitSentences splits text into sentence candidates on the period
// delimiter, trimming whitespace and discarding empty fragments.
func splitSentences(text string) []string {
	parts := strings.Split(text, ".")
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			sentences = append(sentences, trimmed)
		}
	}
	return sentences
}
