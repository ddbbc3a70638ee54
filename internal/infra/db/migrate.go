package db

import (
	"database/sql"
)

// MigrateUp creates the schema for stored summarization reports.
// Statements are idempotent so the migration can run on every startup.
func MigrateUp(db *sql.DB) error {
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS reports (
    id           UUID PRIMARY KEY,
    filename     TEXT NOT NULL,
    detail_level VARCHAR(20) NOT NULL,
    model        TEXT NOT NULL DEFAULT '',
    summary      TEXT NOT NULL,
    bullets      JSONB NOT NULL DEFAULT '[]',
    pages        INTEGER NOT NULL DEFAULT 0,
    ocr_used     BOOLEAN NOT NULL DEFAULT FALSE,
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now()
)`); err != nil {
		return err
	}

	indexes := []string{
		// List orders by created_at DESC
		`CREATE INDEX IF NOT EXISTS idx_reports_created_at ON reports(created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_detail_level ON reports(detail_level)`,
	}
	for _, idx := range indexes {
		if _, err := db.Exec(idx); err != nil {
			return err
		}
	}

	// detail_level is an application enum, keep the DB in sync.
	// Ignore the error when the constraint already exists.
	_, _ = db.Exec(`
DO $$
BEGIN
    IF NOT EXISTS (
        SELECT 1 FROM pg_constraint
        WHERE conname = 'chk_detail_level'
    ) THEN
        ALTER TABLE reports ADD CONSTRAINT chk_detail_level
        CHECK (detail_level IN ('brief', 'detailed', 'comprehensive'));
    END IF;
END $$;
`)

	return nil
}

// MigrateDown rolls back the schema.
// Use with caution: this deletes all stored reports.
func MigrateDown(db *sql.DB) error {
	dropStatements := []string{
		`DROP INDEX IF EXISTS idx_reports_detail_level`,
		`DROP INDEX IF EXISTS idx_reports_created_at`,
		`DROP TABLE IF EXISTS reports CASCADE`,
	}
	for _, stmt := range dropStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
