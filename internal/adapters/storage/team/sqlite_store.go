package team

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"playerhub/internal/adapters/storage"
	domain "playerhub/internal/domain/team"
)

// SQLiteStore implements Store using SQLite. A replace runs in a single
// transaction so readers never observe a half-written roster.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore and ensures the table exists.
// PRE: db is a valid, open database connection
// POST: team_member table exists; store is ready for use
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	db.ExecContext(context.Background(), `CREATE TABLE IF NOT EXISTS team_member (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		name TEXT NOT NULL DEFAULT '',
		game_id TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT '',
		rank TEXT NOT NULL DEFAULT '',
		photo TEXT NOT NULL DEFAULT '',
		social_links TEXT NOT NULL DEFAULT '{}',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	return &SQLiteStore{db: db}
}

// List returns all members ordered by their stored position.
// POST: returns an empty slice, never nil, when the roster is empty
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Member, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, game_id, role, rank, photo, social_links, created_at, updated_at
		 FROM team_member ORDER BY position ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []domain.Member{}
	for rows.Next() {
		var m domain.Member
		var socialLinks, createdAt, updatedAt string
		if err := rows.Scan(&m.ID, &m.Name, &m.GameID, &m.Role, &m.Rank, &m.Photo,
			&socialLinks, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(socialLinks), &m.SocialLinks); err != nil {
			return nil, fmt.Errorf("decoding social links: %w", err)
		}
		m.CreatedAt = storage.ParseTime(createdAt)
		m.UpdatedAt = storage.ParseTime(updatedAt)
		members = append(members, m)
	}
	return members, rows.Err()
}

// ReplaceAll swaps the whole roster in one transaction.
// POST: stored order matches input order; caller IDs are kept verbatim,
// and members without an ID get a generated one
func (s *SQLiteStore) ReplaceAll(ctx context.Context, members []domain.Member) ([]domain.Member, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM team_member`); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	stored := make([]domain.Member, 0, len(members))
	for i, m := range members {
		if m.ID == "" {
			m.ID = uuid.New().String()
		}
		m.CreatedAt = now
		m.UpdatedAt = now

		socialLinks, err := json.Marshal(m.SocialLinks)
		if err != nil {
			return nil, fmt.Errorf("encoding social links: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO team_member (id, position, name, game_id, role, rank, photo, social_links, created_at, updated_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.ID, i, m.Name, m.GameID, m.Role, m.Rank, m.Photo, string(socialLinks),
			storage.FormatTime(now), storage.FormatTime(now)); err != nil {
			return nil, err
		}
		stored = append(stored, m)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return stored, nil
}
