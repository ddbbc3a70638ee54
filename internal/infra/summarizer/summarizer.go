package summarizer

import "context"

// Summarizer is the external summarization operation consumed by the
// pipeline. Implementations must shorten text to roughly the requested
// length bounds and must be deterministic given fixed model parameters.
// Failures are returned as errors and never panic; the pipeline decides
// per call site whether a failure is recoverable.
type Summarizer interface {
	Summarize(ctx context.Context, text string, maxLength, minLength int) (string, error)
}
