package music

import (
	"context"
	"database/sql"
	"time"

	"playerhub/internal/adapters/storage"
	domain "playerhub/internal/domain/music"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore and ensures the table exists.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	db.ExecContext(context.Background(), `CREATE TABLE IF NOT EXISTS background_music (
		id TEXT PRIMARY KEY,
		url TEXT NOT NULL DEFAULT '',
		volume REAL NOT NULL DEFAULT 0.5,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	return &SQLiteStore{db: db}
}

// Get retrieves the singleton track.
// POST: ok is false when nothing has been stored yet
func (s *SQLiteStore) Get(ctx context.Context) (domain.Track, bool, error) {
	var t domain.Track
	var createdAt, updatedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT url, volume, created_at, updated_at FROM background_music WHERE id = ?`,
		storage.SingletonID,
	).Scan(&t.URL, &t.Volume, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return domain.Track{}, false, nil
	}
	if err != nil {
		return domain.Track{}, false, err
	}
	t.CreatedAt = storage.ParseTime(createdAt)
	t.UpdatedAt = storage.ParseTime(updatedAt)
	return t, true, nil
}

// Replace upserts the track against the fixed singleton key.
func (s *SQLiteStore) Replace(ctx context.Context, value domain.Track) (domain.Track, error) {
	now := time.Now().UTC()
	value.CreatedAt = now
	value.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO background_music (id, url, volume, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   url=excluded.url, volume=excluded.volume,
		   created_at=excluded.created_at, updated_at=excluded.updated_at`,
		storage.SingletonID, value.URL, value.Volume,
		storage.FormatTime(now), storage.FormatTime(now),
	)
	if err != nil {
		return domain.Track{}, err
	}
	return value, nil
}
