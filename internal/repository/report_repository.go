package repository

import (
	"context"

	"docdigest/internal/domain/entity"
)

// ReportRepository stores completed summarization reports.
// Persistence is optional for the pipeline; a nil repository disables it.
type ReportRepository interface {
	// Save persists one report. The report's ID must be set by the caller.
	Save(ctx context.Context, report *entity.Report) error
	// Get retrieves a report by ID. Returns entity.ErrNotFound when the
	// ID is unknown.
	Get(ctx context.Context, id string) (*entity.Report, error)
	// List returns up to limit reports starting at offset, ordered by
	// creation time, newest first.
	List(ctx context.Context, limit, offset int) ([]*entity.Report, error)
	// Count returns the total number of stored reports.
	Count(ctx context.Context) (int64, error)
}
