package batch

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/papertalk/papertalk/constants"
)

// SQLiteStore keeps the outbox in a local SQLite file so captured
// submissions survive agent restarts.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (or creates) the outbox database at dsn and
// prepares its schema. A database written by a different schema
// version is wiped and recreated.
func OpenSQLiteStore(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open outbox db: %w", err)
	}
	s := &SQLiteStore{db: db}
	if err := s.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS outbox_meta (
  key TEXT PRIMARY KEY,
  value INTEGER NOT NULL
);
`)
	if err != nil {
		return fmt.Errorf("create meta table: %w", err)
	}

	var version int
	err = s.db.QueryRowContext(ctx,
		`SELECT value FROM outbox_meta WHERE key = 'schema_version'`).Scan(&version)
	switch {
	case err == sql.ErrNoRows:
		version = 0
	case err != nil:
		return fmt.Errorf("read schema version: %w", err)
	}

	if version != 0 && version != SchemaVersion {
		if _, err := s.db.ExecContext(ctx, `DROP TABLE IF EXISTS pending_submissions`); err != nil {
			return fmt.Errorf("drop stale outbox: %w", err)
		}
	}

	_, err = s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS pending_submissions (
  id TEXT PRIMARY KEY,
  student_name TEXT NOT NULL,
  student_email TEXT NOT NULL,
  image_urls TEXT NOT NULL,
  magic_link_token TEXT NOT NULL,
  created_at INTEGER NOT NULL,
  sync_status TEXT NOT NULL,
  server_id TEXT NOT NULL DEFAULT '',
  error_message TEXT NOT NULL DEFAULT '',
  retry_count INTEGER NOT NULL DEFAULT 0
);
`)
	if err != nil {
		return fmt.Errorf("create outbox table: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO outbox_meta (key, value) VALUES ('schema_version', ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value
`, SchemaVersion)
	if err != nil {
		return fmt.Errorf("write schema version: %w", err)
	}
	return nil
}

// Load returns every stored submission, oldest first.
func (s *SQLiteStore) Load(ctx context.Context) ([]PendingSubmission, error) {
	rows, err := s.db.QueryContext(ctx, `
SELECT id, student_name, student_email, image_urls, magic_link_token,
       created_at, sync_status, server_id, error_message, retry_count
FROM pending_submissions ORDER BY created_at
`)
	if err != nil {
		return nil, fmt.Errorf("failed to select outbox: %w", err)
	}
	defer rows.Close()

	var result []PendingSubmission
	for rows.Next() {
		var (
			item    PendingSubmission
			urls    string
			created int64
			status  string
		)
		if err := rows.Scan(&item.ID, &item.StudentName, &item.StudentEmail, &urls,
			&item.MagicLinkToken, &created, &status, &item.ServerID,
			&item.ErrorMessage, &item.RetryCount); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(urls), &item.ImageURLs); err != nil {
			return nil, fmt.Errorf("decode image urls for %s: %w", item.ID, err)
		}
		item.CreatedAt = time.UnixMilli(created).UTC()
		item.SyncStatus = constants.SyncStatus(status)
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Save replaces the stored outbox with items inside one transaction.
func (s *SQLiteStore) Save(ctx context.Context, items []PendingSubmission) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin outbox save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM pending_submissions`); err != nil {
		return fmt.Errorf("clear outbox: %w", err)
	}

	const insert = `
INSERT INTO pending_submissions
  (id, student_name, student_email, image_urls, magic_link_token,
   created_at, sync_status, server_id, error_message, retry_count)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`
	for _, item := range items {
		urls, err := json.Marshal(item.ImageURLs)
		if err != nil {
			return fmt.Errorf("encode image urls for %s: %w", item.ID, err)
		}
		if _, err := tx.ExecContext(ctx, insert,
			item.ID, item.StudentName, item.StudentEmail, string(urls),
			item.MagicLinkToken, item.CreatedAt.UnixMilli(), string(item.SyncStatus),
			item.ServerID, item.ErrorMessage, item.RetryCount); err != nil {
			return fmt.Errorf("failed to insert %s: %w", item.ID, err)
		}
	}
	return tx.Commit()
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
