package duo

import (
	"context"
	"database/sql"
	"time"

	"playerhub/internal/adapters/storage"
	domain "playerhub/internal/domain/duo"
)

// SQLiteStore implements Store using SQLite. The row key is the
// singleton id; the caller-visible partner id lives in its own column.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore and ensures the table exists.
// PRE: db is a valid, open database connection
// POST: duo_partner table exists; store is ready for use
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	db.ExecContext(context.Background(), `CREATE TABLE IF NOT EXISTS duo_partner (
		id TEXT PRIMARY KEY,
		partner_id TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL DEFAULT '',
		game_id TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT '',
		rank TEXT NOT NULL DEFAULT '',
		photo TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	return &SQLiteStore{db: db}
}

// Get retrieves the singleton duo partner.
// POST: ok is false when nothing has been stored yet
func (s *SQLiteStore) Get(ctx context.Context) (domain.Partner, bool, error) {
	var p domain.Partner
	var createdAt, updatedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT partner_id, name, game_id, role, rank, photo, created_at, updated_at
		 FROM duo_partner WHERE id = ?`, storage.SingletonID,
	).Scan(&p.ID, &p.Name, &p.GameID, &p.Role, &p.Rank, &p.Photo, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return domain.Partner{}, false, nil
	}
	if err != nil {
		return domain.Partner{}, false, err
	}
	p.CreatedAt = storage.ParseTime(createdAt)
	p.UpdatedAt = storage.ParseTime(updatedAt)
	return p, true, nil
}

// Replace upserts the duo partner against the fixed singleton key.
func (s *SQLiteStore) Replace(ctx context.Context, value domain.Partner) (domain.Partner, error) {
	now := time.Now().UTC()
	value.CreatedAt = now
	value.UpdatedAt = now

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO duo_partner (id, partner_id, name, game_id, role, rank, photo, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   partner_id=excluded.partner_id, name=excluded.name, game_id=excluded.game_id,
		   role=excluded.role, rank=excluded.rank, photo=excluded.photo,
		   created_at=excluded.created_at, updated_at=excluded.updated_at`,
		storage.SingletonID, value.ID, value.Name, value.GameID, value.Role, value.Rank, value.Photo,
		storage.FormatTime(now), storage.FormatTime(now),
	)
	if err != nil {
		return domain.Partner{}, err
	}
	return value, nil
}
