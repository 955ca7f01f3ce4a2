package db

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS bracket_archives (
	id         UUID PRIMARY KEY,
	session_id TEXT NOT NULL,
	payload    JSONB NOT NULL,
	export_key TEXT,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS bracket_archives_session_id_idx ON bracket_archives (session_id, created_at DESC);`

// Migrate creates the archive table when it does not exist yet.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
