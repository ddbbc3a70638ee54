package summarizer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"docdigest/internal/resilience/circuitbreaker"
	"docdigest/internal/resilience/retry"
	"docdigest/internal/utils/text"
)

// OpenAI implements the Summarizer interface using OpenAI's chat completion API.
// It includes circuit breaker and retry logic for improved reliability,
// with comprehensive observability through structured logging and metrics.
type OpenAI struct {
	client          *openai.Client
	circuitBreaker  *circuitbreaker.CircuitBreaker
	retryConfig     retry.Config
	config          Config
	metricsRecorder SummaryMetricsRecorder
}

// NewOpenAI creates a new OpenAI summarizer with the given API key.
// It automatically configures circuit breaker, retry logic and metrics recording.
func NewOpenAI(apiKey string, cfg Config) *OpenAI {
	slog.Info("initialized openai summarizer",
		slog.String("model", cfg.Model),
		slog.Int("max_tokens", cfg.MaxTokens))

	return &OpenAI{
		client:          openai.NewClient(apiKey),
		circuitBreaker:  circuitbreaker.New(circuitbreaker.OpenAIAPIConfig()),
		retryConfig:     retry.AIAPIConfig(),
		config:          cfg,
		metricsRecorder: NewPrometheusSummaryMetrics(),
	}
}

// Summarize generates a summary of the given text bounded by maxLength and
// minLength characters. It uses circuit breaker and retry logic around the
// API call.
func (o *OpenAI) Summarize(ctx context.Context, input string, maxLength, minLength int) (string, error) {
	if err := ValidateLengthBounds(maxLength, minLength); err != nil {
		return "", fmt.Errorf("invalid length bounds: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	var result string

	retryErr := retry.WithBackoff(ctx, o.retryConfig, func() error {
		cbResult, err := o.circuitBreaker.Execute(func() (interface{}, error) {
			return o.doSummarize(ctx, input, maxLength, minLength)
		})

		if err != nil {
			if errors.Is(err, gobreaker.ErrOpenState) {
				slog.Warn("openai api circuit breaker open, request rejected",
					slog.String("service", "openai-api"),
					slog.String("state", o.circuitBreaker.State().String()))
				return fmt.Errorf("openai api unavailable: circuit breaker open")
			}
			return err
		}

		result = cbResult.(string)
		return nil
	})

	if retryErr != nil {
		return "", fmt.Errorf("openai summarize failed after retries: %w", retryErr)
	}

	return result, nil
}

// doSummarize performs the actual API call without retry or circuit breaker.
func (o *OpenAI) doSummarize(ctx context.Context, input string, maxLength, minLength int) (string, error) {
	truncated := truncateInput(input, "openai")
	prompt := buildPrompt(truncated, maxLength, minLength)

	slog.InfoContext(ctx, "starting summarization",
		slog.String("provider", "openai"),
		slog.Int("input_length", text.CountRunes(truncated)),
		slog.Int("max_length", maxLength),
		slog.Int("min_length", minLength))

	start := time.Now()

	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: o.config.Model,
		Messages: []openai.ChatCompletionMessage{{
			Role:    openai.ChatMessageRoleSystem,
			Content: prompt,
		}},
		MaxTokens:   o.config.MaxTokens,
		Temperature: 0, // deterministic output for a fixed model
	})

	duration := time.Since(start)

	if err != nil {
		slog.ErrorContext(ctx, "summarization failed",
			slog.String("provider", "openai"),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return "", fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 {
		slog.ErrorContext(ctx, "openai api returned empty response",
			slog.Duration("duration", duration))
		return "", fmt.Errorf("openai api returned empty response")
	}

	summary := resp.Choices[0].Message.Content
	o.recordResult(ctx, summary, maxLength, duration)
	return summary, nil
}

func (o *OpenAI) recordResult(ctx context.Context, summary string, maxLength int, duration time.Duration) {
	summaryLength := text.CountRunes(summary)
	withinLimit := summaryLength <= maxLength

	slog.InfoContext(ctx, "summarization completed",
		slog.String("provider", "openai"),
		slog.Int("summary_length", summaryLength),
		slog.Int("max_length", maxLength),
		slog.Bool("within_limit", withinLimit),
		slog.Duration("duration", duration))

	// Soft limit: log and count the excess, never reject the summary.
	if !withinLimit {
		slog.WarnContext(ctx, "summary exceeds requested max length",
			slog.Int("summary_length", summaryLength),
			slog.Int("max_length", maxLength),
			slog.Int("excess", summaryLength-maxLength))
	}

	o.metricsRecorder.RecordLength(summaryLength)
	o.metricsRecorder.RecordDuration(duration)
	o.metricsRecorder.RecordCompliance(withinLimit)
	if !withinLimit {
		o.metricsRecorder.RecordLimitExceeded()
	}
}

// buildPrompt constructs the summarization prompt with explicit length bounds.
func buildPrompt(input string, maxLength, minLength int) string {
	return fmt.Sprintf(
		"Summarize the following text in between %d and %d characters. "+
			"Respond with the summary only, no preamble:\n%s",
		minLength, maxLength, input)
}

// truncateInput bounds provider input to maxInputChars to stay below model
// token limits.
func truncateInput(input, provider string) string {
	if len(input) <= maxInputChars {
		return input
	}
	slog.Warn("input text truncated for provider",
		slog.String("provider", provider),
		slog.Int("original_length", len(input)),
		slog.Int("truncated_length", maxInputChars))
	return input[:maxInputChars] + "..."
}
