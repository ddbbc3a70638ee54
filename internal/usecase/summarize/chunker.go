package summarize

import (
	"strings"

	"docdigest/internal/domain/entity"
)

// SplitChunks splits text into word-bounded chunks whose character length
// stays at or below chunkSize. Words are never split: a single word longer
// than chunkSize forms its own oversized chunk. Chunks partition the input
// in original order, so joining them with single spaces reproduces the
// whitespace-normalized word sequence exactly.
//
// SplitChunks is a pure function: any string input is valid and empty or
// whitespace-only input yields an empty slice.
func SplitChunks(input string, chunkSize int) []entity.Chunk {
	words := strings.Fields(input)
	if len(words) == 0 {
		return nil
	}

	var chunks []entity.Chunk
	var current []string
	currentLen := 0

	flush := func() {
		if len(current) == 0 {
			return
		}
		chunks = append(chunks, entity.Chunk{
			Index: len(chunks),
			Text:  strings.Join(current, " "),
		})
		current = nil
		currentLen = 0
	}

	for _, word := range words {
		// The +1 accounts for the separating space.
		if len(current) > 0 && currentLen+len(word)+1 > chunkSize {
			flush()
		}
		if len(current) == 0 {
			currentLen = len(word)
		} else {
			currentLen += len(word) + 1
		}
		current = append(current, word)
	}
	flush()

	return chunks
}
