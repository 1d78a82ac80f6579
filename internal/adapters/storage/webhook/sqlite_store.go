package webhook

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"

	"playerhub/internal/adapters/storage"
	domain "playerhub/internal/domain/webhook"
)

// SQLiteStore implements Store using SQLite. The backup snapshot is
// flattened into columns rather than stored as JSON so the active row can
// be patched field by field.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore and ensures the table exists.
// PRE: db is a valid, open database connection
// POST: webhook table exists; store is ready for use
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	db.ExecContext(context.Background(), `CREATE TABLE IF NOT EXISTS webhook (
		id TEXT PRIMARY KEY,
		url TEXT NOT NULL,
		is_active INTEGER NOT NULL DEFAULT 1,
		backup_url TEXT NOT NULL DEFAULT '',
		backup_timestamp INTEGER NOT NULL DEFAULT 0,
		backup_created TEXT NOT NULL DEFAULT '',
		recovery_code TEXT NOT NULL DEFAULT '',
		config_export TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	)`)
	return &SQLiteStore{db: db}
}

const configColumns = `id, url, is_active, backup_url, backup_timestamp, backup_created,
	recovery_code, config_export, created_at, updated_at`

func scanConfig(row interface{ Scan(...any) error }) (domain.Config, error) {
	var c domain.Config
	var backupURL, backupCreated string
	var backupTimestamp int64
	var createdAt, updatedAt string
	err := row.Scan(&c.ID, &c.URL, &c.IsActive, &backupURL, &backupTimestamp, &backupCreated,
		&c.RecoveryCode, &c.ConfigExport, &createdAt, &updatedAt)
	if err != nil {
		return domain.Config{}, err
	}
	if backupURL != "" {
		c.Backup = &domain.Backup{URL: backupURL, Timestamp: backupTimestamp, Created: backupCreated}
	}
	c.CreatedAt = storage.ParseTime(createdAt)
	c.UpdatedAt = storage.ParseTime(updatedAt)
	return c, nil
}

// GetActive returns the active config, if any.
func (s *SQLiteStore) GetActive(ctx context.Context) (domain.Config, bool, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+configColumns+` FROM webhook WHERE is_active = 1 LIMIT 1`)
	c, err := scanConfig(row)
	if err == sql.ErrNoRows {
		return domain.Config{}, false, nil
	}
	if err != nil {
		return domain.Config{}, false, err
	}
	return c, true, nil
}

// List returns all configs, active first, then newest first.
func (s *SQLiteStore) List(ctx context.Context) ([]domain.Config, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+configColumns+` FROM webhook ORDER BY is_active DESC, created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	configs := []domain.Config{}
	for rows.Next() {
		c, err := scanConfig(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, c)
	}
	return configs, rows.Err()
}

// Activate inserts cfg as the single active config.
// POST: exactly one row has is_active=1; previously active rows remain
// stored with is_active=0
func (s *SQLiteStore) Activate(ctx context.Context, cfg domain.Config) (domain.Config, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return domain.Config{}, err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `UPDATE webhook SET is_active = 0 WHERE is_active = 1`); err != nil {
		return domain.Config{}, err
	}

	now := time.Now().UTC()
	if cfg.ID == "" {
		cfg.ID = uuid.New().String()
	}
	cfg.IsActive = true
	cfg.CreatedAt = now
	cfg.UpdatedAt = now

	var backupURL, backupCreated string
	var backupTimestamp int64
	if cfg.Backup != nil {
		backupURL = cfg.Backup.URL
		backupTimestamp = cfg.Backup.Timestamp
		backupCreated = cfg.Backup.Created
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO webhook (`+configColumns+`) VALUES (?, ?, 1, ?, ?, ?, ?, ?, ?, ?)`,
		cfg.ID, cfg.URL, backupURL, backupTimestamp, backupCreated,
		cfg.RecoveryCode, cfg.ConfigExport,
		storage.FormatTime(now), storage.FormatTime(now)); err != nil {
		return domain.Config{}, err
	}

	if err := tx.Commit(); err != nil {
		return domain.Config{}, err
	}
	return cfg, nil
}

// Update applies a partial update to the config with the given id.
// POST: updated_at reflects the write; ok=false when id is unknown
func (s *SQLiteStore) Update(ctx context.Context, id string, patch domain.Patch) (domain.Config, bool, error) {
	sets := []string{"updated_at = ?"}
	args := []any{storage.FormatTime(time.Now().UTC())}

	if patch.URL != nil {
		sets = append(sets, "url = ?")
		args = append(args, *patch.URL)
	}
	if patch.IsActive != nil {
		sets = append(sets, "is_active = ?")
		args = append(args, *patch.IsActive)
	}
	if patch.Backup != nil {
		var backupURL, backupCreated string
		var backupTimestamp int64
		if b := *patch.Backup; b != nil {
			backupURL = b.URL
			backupTimestamp = b.Timestamp
			backupCreated = b.Created
		}
		sets = append(sets, "backup_url = ?", "backup_timestamp = ?", "backup_created = ?")
		args = append(args, backupURL, backupTimestamp, backupCreated)
	}
	if patch.RecoveryCode != nil {
		sets = append(sets, "recovery_code = ?")
		args = append(args, *patch.RecoveryCode)
	}
	if patch.ConfigExport != nil {
		sets = append(sets, "config_export = ?")
		args = append(args, *patch.ConfigExport)
	}
	args = append(args, id)

	res, err := s.db.ExecContext(ctx,
		`UPDATE webhook SET `+strings.Join(sets, ", ")+` WHERE id = ?`, args...)
	if err != nil {
		return domain.Config{}, false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return domain.Config{}, false, err
	}
	if affected == 0 {
		return domain.Config{}, false, nil
	}

	row := s.db.QueryRowContext(ctx, `SELECT `+configColumns+` FROM webhook WHERE id = ?`, id)
	c, err := scanConfig(row)
	if err != nil {
		return domain.Config{}, false, err
	}
	return c, true, nil
}

// FindByRecoveryCode returns the config holding the given code.
// PRE: code is non-empty
func (s *SQLiteStore) FindByRecoveryCode(ctx context.Context, code string) (domain.Config, bool, error) {
	if code == "" {
		return domain.Config{}, false, nil
	}
	row := s.db.QueryRowContext(ctx,
		`SELECT `+configColumns+` FROM webhook WHERE recovery_code = ? LIMIT 1`, code)
	c, err := scanConfig(row)
	if err == sql.ErrNoRows {
		return domain.Config{}, false, nil
	}
	if err != nil {
		return domain.Config{}, false, err
	}
	return c, true, nil
}

// DeleteAll removes every config. Used by the emergency reset.
func (s *SQLiteStore) DeleteAll(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM webhook`)
	return err
}
