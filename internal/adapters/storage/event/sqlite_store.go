package event

import (
	"context"
	"time"

	"github.com/google/uuid"

	"playerhub/internal/adapters/storage"
	domain "playerhub/internal/domain/event"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore and ensures the table exists.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	db.ExecContext(context.Background(), `CREATE TABLE IF NOT EXISTS event (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		date TEXT NOT NULL DEFAULT '',
		vs TEXT NOT NULL DEFAULT '',
		event TEXT NOT NULL DEFAULT '',
		map TEXT NOT NULL DEFAULT '',
		result TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	return &SQLiteStore{db: db}
}

// List returns all events ordered by their stored position.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Event, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, date, vs, event, map, result, created_at, updated_at
		 FROM event ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []domain.Event{}
	for rows.Next() {
		var e domain.Event
		var createdAt, updatedAt string
		if err := rows.Scan(&e.ID, &e.Date, &e.Vs, &e.Event, &e.Map, &e.Result, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		e.CreatedAt = storage.ParseTime(createdAt)
		e.UpdatedAt = storage.ParseTime(updatedAt)
		events = append(events, e)
	}
	return events, rows.Err()
}

// ReplaceAll swaps the whole schedule in one transaction.
func (s *SQLiteStore) ReplaceAll(ctx context.Context, events []domain.Event) ([]domain.Event, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM event`); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	stored := make([]domain.Event, 0, len(events))
	for i, e := range events {
		if e.ID == "" {
			e.ID = uuid.New().String()
		}
		e.CreatedAt = now
		e.UpdatedAt = now

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO event (id, position, date, vs, event, map, result, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			e.ID, i, e.Date, e.Vs, e.Event, e.Map, e.Result,
			storage.FormatTime(now), storage.FormatTime(now)); err != nil {
			return nil, err
		}
		stored = append(stored, e)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return stored, nil
}
