package video

import (
	"context"
	"time"

	"github.com/google/uuid"

	"playerhub/internal/adapters/storage"
	domain "playerhub/internal/domain/video"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore and ensures the table exists.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	db.ExecContext(context.Background(), `CREATE TABLE IF NOT EXISTS highlight_video (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		url TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	return &SQLiteStore{db: db}
}

// List returns all highlights ordered by their stored position.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Highlight, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, url, created_at, updated_at
		 FROM highlight_video ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	videos := []domain.Highlight{}
	for rows.Next() {
		var v domain.Highlight
		var createdAt, updatedAt string
		if err := rows.Scan(&v.ID, &v.Title, &v.URL, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		v.CreatedAt = storage.ParseTime(createdAt)
		v.UpdatedAt = storage.ParseTime(updatedAt)
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

// ReplaceAll swaps the whole highlight list in one transaction.
func (s *SQLiteStore) ReplaceAll(ctx context.Context, videos []domain.Highlight) ([]domain.Highlight, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM highlight_video`); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	stored := make([]domain.Highlight, 0, len(videos))
	for i, v := range videos {
		if v.ID == "" {
			v.ID = uuid.New().String()
		}
		v.CreatedAt = now
		v.UpdatedAt = now

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO highlight_video (id, position, title, url, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			v.ID, i, v.Title, v.URL,
			storage.FormatTime(now), storage.FormatTime(now)); err != nil {
			return nil, err
		}
		stored = append(stored, v)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return stored, nil
}
