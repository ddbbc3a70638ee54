package summarize

import "sort"

// SentenceRanker orders candidate sentences by estimated importance.
// The compressor selects sentences greedily from the ranked order, so the
// ranking strategy fully determines what an over-length summary keeps.
type SentenceRanker interface {
	Rank(sentences []string) []string
}

// ByLengthRanker ranks sentences by descending character length, treating
// length as a proxy for information content. This is a deliberately cheap
// heuristic; it can be replaced with a salience model without touching the
// rest of the pipeline.
type ByLengthRanker struct{}

// Rank returns the sentences sorted longest-first. The sort is stable so
// equal-length sentences keep their original relative order. The input
// slice is not modified.
func (ByLengthRanker) Rank(sentences []string) []string {
	ranked := make([]string, len(sentences))
	copy(ranked, sentences)
	sort.SliceStable(ranked, func(i, j int) bool {
		return len(ranked[i]) > len(ranked[j])
	})
	return ranked
}
