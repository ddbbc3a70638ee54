package extractor

import (
	"context"
	"fmt"
	"os"
)

// PlainTextExtractor reads text files as-is. Page count is always 1 since
// plain text carries no pagination.
type PlainTextExtractor struct{}

func (PlainTextExtractor) Extract(_ context.Context, path string) (Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("read text file %s: %w", path, err)
	}
	return Result{Text: string(data), Pages: 1, Method: MethodPlain}, nil
}
