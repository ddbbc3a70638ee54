package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docdigest/internal/domain/entity"
)

type summarizeCall struct {
	text      string
	maxLength int
	minLength int
}

// stubSummarizer records calls and delegates to fn, or echoes a shortened
// marker when fn is nil. Safe for concurrent use.
type stubSummarizer struct {
	mu    sync.Mutex
	calls []summarizeCall
	fn    func(text string, maxLength, minLength int) (string, error)
}

func (s *stubSummarizer) Summarize(_ context.Context, text string, maxLength, minLength int) (string, error) {
	s.mu.Lock()
	s.calls = append(s.calls, summarizeCall{text: text, maxLength: maxLength, minLength: minLength})
	s.mu.Unlock()

	if s.fn != nil {
		return s.fn(text, maxLength, minLength)
	}
	return "summary of: " + firstWords(text, 3), nil
}

func (s *stubSummarizer) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

func firstWords(text string, n int) string {
	words := strings.Fields(text)
	if len(words) > n {
		words = words[:n]
	}
	return strings.Join(words, " ")
}

func repeatWords(word string, n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = word
	}
	return strings.Join(words, " ")
}

func TestService_Summarize_EmptyInput(t *testing.T) {
	stub := &stubSummarizer{}
	svc := NewService(stub)

	summary, err := svc.Summarize(context.Background(), "   ", Options{DetailLevel: entity.DetailBrief})

	require.NoError(t, err)
	assert.Equal(t, NoSummaryText, summary.Text)
	assert.Equal(t, 0, summary.ChunkCount)
	assert.Zero(t, stub.callCount(), "summarizer must not be invoked without chunks")
}

func TestService_Summarize_SingleChunkPath(t *testing.T) {
	// 50 words fit well under the 1000-char chunk size, so exactly one
	// chunk is produced and the direct path is taken.
	input := repeatWords("content", 50)
	stub := &stubSummarizer{}
	svc := NewService(stub)

	summary, err := svc.Summarize(context.Background(), input, Options{
		DetailLevel: entity.DetailBrief,
		ChunkSize:   1000,
	})

	require.NoError(t, err)
	require.Len(t, stub.calls, 1)
	assert.Equal(t, 250, stub.calls[0].maxLength, "single chunk uses the final budget")
	assert.Equal(t, 40, stub.calls[0].minLength, "single chunk doubles the per-chunk minimum")
	assert.Equal(t, 1, summary.ChunkCount)
	assert.Equal(t, 0, summary.FailedChunks)
	assert.Equal(t, entity.DetailBrief, summary.DetailLevel)
	assert.NotEmpty(t, summary.Bullets)
}

func TestService_Summarize_SingleChunkFailure(t *testing.T) {
	input := repeatWords("content", 50)
	stub := &stubSummarizer{fn: func(string, int, int) (string, error) {
		return "", errors.New("model overloaded")
	}}
	svc := NewService(stub)

	summary, err := svc.Summarize(context.Background(), input, Options{DetailLevel: entity.DetailBrief})

	require.NoError(t, err, "a chunk failure must not abort the request")
	assert.Equal(t, NoSummaryText, summary.Text)
	assert.Equal(t, 1, summary.FailedChunks)
}

func TestService_Summarize_MultiChunkBudgets(t *testing.T) {
	// Enough text for several chunks at size 200, but no more than 10,
	// so the unscaled Detailed budget applies per chunk.
	input := strings.Repeat("lorem ipsum dolor sit amet consectetur ", 20)
	stub := &stubSummarizer{}
	svc := NewService(stub)

	summary, err := svc.Summarize(context.Background(), input, Options{
		DetailLevel: entity.DetailDetailed,
		ChunkSize:   200,
	})

	require.NoError(t, err)
	require.Greater(t, summary.ChunkCount, 1)
	require.LessOrEqual(t, summary.ChunkCount, 10)
	for _, call := range stub.calls {
		assert.Equal(t, 150, call.maxLength)
		assert.Equal(t, 40, call.minLength)
	}
	assert.NotEqual(t, NoSummaryText, summary.Text)
}

func TestService_Summarize_ScaledBudgets(t *testing.T) {
	// More than 10 chunks triggers the large-document budget scaling:
	// Brief max_per_chunk 80 becomes 104.
	input := strings.Repeat("alpha beta gamma delta epsilon zeta eta theta ", 60)
	stub := &stubSummarizer{}
	svc := NewService(stub)

	summary, err := svc.Summarize(context.Background(), input, Options{
		DetailLevel: entity.DetailBrief,
		ChunkSize:   150,
	})

	require.NoError(t, err)
	require.Greater(t, summary.ChunkCount, 10)
	for _, call := range stub.calls {
		assert.Equal(t, 104, call.maxLength, "per-chunk budget must be scaled up for large documents")
	}
}

func TestService_Summarize_AllChunksFail(t *testing.T) {
	input := strings.Repeat("lorem ipsum dolor sit amet consectetur ", 20)
	stub := &stubSummarizer{fn: func(string, int, int) (string, error) {
		return "", errors.New("model unavailable")
	}}
	svc := NewService(stub)

	summary, err := svc.Summarize(context.Background(), input, Options{
		DetailLevel: entity.DetailDetailed,
		ChunkSize:   200,
	})

	require.NoError(t, err, "total chunk failure degrades to the sentinel, not an error")
	assert.Equal(t, NoSummaryText, summary.Text)
	assert.Equal(t, summary.ChunkCount, summary.FailedChunks)
}

func TestService_Summarize_EmptyChunkOutputCountsAsFailed(t *testing.T) {
	// A summarizer that succeeds but returns only whitespace contributes
	// nothing to the combined text; the chunk counts as failed.
	input := strings.Repeat("lorem ipsum dolor sit amet consectetur ", 20)
	stub := &stubSummarizer{fn: func(string, int, int) (string, error) {
		return "   \n", nil
	}}
	svc := NewService(stub)

	summary, err := svc.Summarize(context.Background(), input, Options{
		DetailLevel: entity.DetailDetailed,
		ChunkSize:   200,
	})

	require.NoError(t, err)
	assert.Equal(t, NoSummaryText, summary.Text)
	assert.Equal(t, summary.ChunkCount, summary.FailedChunks)
}

func TestService_Summarize_SkipsShortChunks(t *testing.T) {
	// Two substantial chunks separated by a chunk that trims below the
	// minimum length; the short one must be skipped, not failed.
	stub := &stubSummarizer{}
	svc := NewService(stub)

	chunks := []entity.Chunk{
		{Index: 0, Text: repeatWords("substantial", 10)},
		{Index: 1, Text: "tiny"},
		{Index: 2, Text: repeatWords("meaningful", 10)},
	}
	budget := entity.DetailDetailed.Budget()

	summaries, failed, err := svc.summarizeChunks(context.Background(), chunks, budget, Options{})

	require.NoError(t, err)
	assert.Len(t, summaries, 2)
	assert.Equal(t, 0, failed)
	assert.Equal(t, 2, stub.callCount())
}

func TestService_Summarize_Progress(t *testing.T) {
	input := strings.Repeat("lorem ipsum dolor sit amet consectetur ", 20)
	stub := &stubSummarizer{}
	svc := NewService(stub)

	var percents []int
	summary, err := svc.Summarize(context.Background(), input, Options{
		DetailLevel: entity.DetailDetailed,
		ChunkSize:   200,
		Progress: func(percent int, message string) {
			percents = append(percents, percent)
			assert.Contains(t, message, "chunks")
		},
	})

	require.NoError(t, err)
	require.Len(t, percents, summary.ChunkCount)
	for i := 1; i < len(percents); i++ {
		assert.GreaterOrEqual(t, percents[i], percents[i-1])
	}
	assert.Equal(t, 100, percents[len(percents)-1])
}

func TestService_Summarize_ParallelPreservesOrder(t *testing.T) {
	// Each chunk summary names its chunk content so the combined text
	// exposes reassembly order.
	var input strings.Builder
	for i := 0; i < 6; i++ {
		input.WriteString(repeatWords(fmt.Sprintf("part%d", i), 12))
		input.WriteString(" ")
	}

	stub := &stubSummarizer{fn: func(text string, _, _ int) (string, error) {
		return firstWords(text, 1), nil
	}}
	svc := NewService(stub)

	seq, err := svc.Summarize(context.Background(), input.String(), Options{
		DetailLevel: entity.DetailComprehensive,
		ChunkSize:   90,
	})
	require.NoError(t, err)

	stub2 := &stubSummarizer{fn: func(text string, _, _ int) (string, error) {
		return firstWords(text, 1), nil
	}}
	par, err := NewService(stub2).Summarize(context.Background(), input.String(), Options{
		DetailLevel: entity.DetailComprehensive,
		ChunkSize:   90,
		Parallelism: 4,
	})
	require.NoError(t, err)

	assert.Equal(t, seq.Text, par.Text, "parallel execution must reassemble chunk summaries in document order")
}

func TestService_Summarize_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	input := strings.Repeat("lorem ipsum dolor sit amet consectetur ", 20)
	svc := NewService(&stubSummarizer{})

	_, err := svc.Summarize(ctx, input, Options{DetailLevel: entity.DetailDetailed, ChunkSize: 200})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestService_Summarize_Stats(t *testing.T) {
	input := repeatWords("content", 60)
	stub := &stubSummarizer{fn: func(string, int, int) (string, error) {
		return "A short fixed summary of the document.", nil
	}}
	svc := NewService(stub)

	summary, err := svc.Summarize(context.Background(), input, Options{DetailLevel: entity.DetailBrief})

	require.NoError(t, err)
	assert.Equal(t, len(input), summary.OriginalLength)
	assert.Equal(t, len(summary.Text), summary.SummaryLength)
	assert.Equal(t, len(input)/len(summary.Text), summary.CompressionRatio)
}
