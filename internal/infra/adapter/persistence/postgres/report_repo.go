package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"docdigest/internal/domain/entity"
	"docdigest/internal/observability/metrics"
	"docdigest/internal/repository"
)

type ReportRepo struct {
	db *sql.DB
}

func NewReportRepo(db *sql.DB) repository.ReportRepository {
	return &ReportRepo{db: db}
}

func (repo *ReportRepo) Save(ctx context.Context, report *entity.Report) error {
	const query = `
INSERT INTO reports (id, filename, detail_level, model, summary, bullets, pages, ocr_used, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	bullets, err := json.Marshal(report.Bullets)
	if err != nil {
		return fmt.Errorf("Save: marshal bullets: %w", err)
	}

	start := time.Now()
	_, err = repo.db.ExecContext(ctx, query,
		report.ID, report.Filename, string(report.DetailLevel), report.Model,
		report.Summary, bullets, report.Pages, report.OCRUsed, report.CreatedAt)
	metrics.RecordDBQuery("report_save", time.Since(start))
	if err != nil {
		return fmt.Errorf("Save: %w", err)
	}
	return nil
}

func (repo *ReportRepo) Get(ctx context.Context, id string) (*entity.Report, error) {
	const query = `
SELECT id, filename, detail_level, model, summary, bullets, pages, ocr_used, created_at
FROM reports
WHERE id = $1`

	start := time.Now()
	row := repo.db.QueryRowContext(ctx, query, id)
	report, err := scanReport(row)
	metrics.RecordDBQuery("report_get", time.Since(start))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return report, nil
}

func (repo *ReportRepo) List(ctx context.Context, limit, offset int) ([]*entity.Report, error) {
	const query = `
SELECT id, filename, detail_level, model, summary, bullets, pages, ocr_used, created_at
FROM reports
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`

	start := time.Now()
	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	metrics.RecordDBQuery("report_list", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	reports := make([]*entity.Report, 0, limit)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

func (repo *ReportRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM reports`

	start := time.Now()
	var total int64
	err := repo.db.QueryRowContext(ctx, query).Scan(&total)
	metrics.RecordDBQuery("report_count", time.Since(start))
	if err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (*entity.Report, error) {
	var (
		report      entity.Report
		detailLevel string
		bullets     []byte
	)
	if err := row.Scan(&report.ID, &report.Filename, &detailLevel, &report.Model,
		&report.Summary, &bullets, &report.Pages, &report.OCRUsed, &report.CreatedAt); err != nil {
		return nil, err
	}
	report.DetailLevel = entity.DetailLevel(detailLevel)
	if len(bullets) > 0 {
		if err := json.Unmarshal(bullets, &report.Bullets); err != nil {
			return nil, fmt.Errorf("unmarshal bullets: %w", err)
		}
	}
	return &report, nil
}
