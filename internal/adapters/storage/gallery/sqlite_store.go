package gallery

import (
	"context"
	"time"

	"github.com/google/uuid"

	"playerhub/internal/adapters/storage"
	domain "playerhub/internal/domain/gallery"
)

// SQLiteStore implements Store using SQLite. A replace runs in a single
// transaction so readers never observe a half-written gallery.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore and ensures the table exists.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	db.ExecContext(context.Background(), `CREATE TABLE IF NOT EXISTS gallery_image (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		url TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	return &SQLiteStore{db: db}
}

// List returns all images ordered by their stored position.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Image, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, url, description, created_at, updated_at
		 FROM gallery_image ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	images := []domain.Image{}
	for rows.Next() {
		var img domain.Image
		var createdAt, updatedAt string
		if err := rows.Scan(&img.ID, &img.Title, &img.URL, &img.Description, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		img.CreatedAt = storage.ParseTime(createdAt)
		img.UpdatedAt = storage.ParseTime(updatedAt)
		images = append(images, img)
	}
	return images, rows.Err()
}

// ReplaceAll swaps the whole gallery in one transaction.
func (s *SQLiteStore) ReplaceAll(ctx context.Context, images []domain.Image) ([]domain.Image, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM gallery_image`); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	stored := make([]domain.Image, 0, len(images))
	for i, img := range images {
		if img.ID == "" {
			img.ID = uuid.New().String()
		}
		img.CreatedAt = now
		img.UpdatedAt = now

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO gallery_image (id, position, title, url, description, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?)`,
			img.ID, i, img.Title, img.URL, img.Description,
			storage.FormatTime(now), storage.FormatTime(now)); err != nil {
			return nil, err
		}
		stored = append(stored, img)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return stored, nil
}
