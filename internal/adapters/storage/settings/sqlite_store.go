package settings

import (
	"context"
	"database/sql"
	"time"

	"playerhub/internal/adapters/storage"
	domain "playerhub/internal/domain/settings"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore and ensures the table exists.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	db.ExecContext(context.Background(), `CREATE TABLE IF NOT EXISTS settings (
		id TEXT PRIMARY KEY,
		is_dark_mode INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	return &SQLiteStore{db: db}
}

// Get retrieves the singleton settings.
// POST: ok is false when nothing has been stored yet
func (s *SQLiteStore) Get(ctx context.Context) (domain.Settings, bool, error) {
	var v domain.Settings
	var createdAt, updatedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT is_dark_mode, created_at, updated_at FROM settings WHERE id = ?`,
		storage.SingletonID,
	).Scan(&v.IsDarkMode, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return domain.Settings{}, false, nil
	}
	if err != nil {
		return domain.Settings{}, false, err
	}
	v.CreatedAt = storage.ParseTime(createdAt)
	v.UpdatedAt = storage.ParseTime(updatedAt)
	return v, true, nil
}

// Replace upserts the settings against the fixed singleton key.
func (s *SQLiteStore) Replace(ctx context.Context, value domain.Settings) (domain.Settings, error) {
	now := time.Now().UTC()
	value.CreatedAt = now
	value.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO settings (id, is_dark_mode, created_at, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   is_dark_mode=excluded.is_dark_mode,
		   created_at=excluded.created_at, updated_at=excluded.updated_at`,
		storage.SingletonID, value.IsDarkMode,
		storage.FormatTime(now), storage.FormatTime(now),
	)
	if err != nil {
		return domain.Settings{}, err
	}
	return value, nil
}
