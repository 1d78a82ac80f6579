package storage

import (
	"database/sql"
	"fmt"
)

// SingletonID is the fixed key under which every singleton category keeps
// its one row. Writes are upserts against this key, so a replace never
// leaves the category empty mid-write.
const SingletonID = "current"

// InitDB initializes the database schema.
// PRE: db is a valid database connection
// POST: all content tables exist, WAL mode enabled
func InitDB(db *sql.DB) error {
	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return fmt.Errorf("failed to enable WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		return fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	// Nested collections (agents, achievements, social links, skills) are
	// stored as JSON text, keeping the document shape of the API.
	schema := `
	CREATE TABLE IF NOT EXISTS player_data (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL DEFAULT '',
		game_id TEXT NOT NULL DEFAULT '',
		team TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT '',
		rank TEXT NOT NULL DEFAULT '',
		mvp_title TEXT NOT NULL DEFAULT '',
		kd TEXT NOT NULL DEFAULT '',
		hs TEXT NOT NULL DEFAULT '',
		acs TEXT NOT NULL DEFAULT '',
		adr TEXT NOT NULL DEFAULT '',
		clutch_rate TEXT NOT NULL DEFAULT '',
		bio TEXT NOT NULL DEFAULT '',
		achievements TEXT NOT NULL DEFAULT '[]',
		agents TEXT NOT NULL DEFAULT '[]',
		social_links TEXT NOT NULL DEFAULT '{}',
		team_logo TEXT NOT NULL DEFAULT '',
		show_team INTEGER NOT NULL DEFAULT 1,
		show_duo INTEGER NOT NULL DEFAULT 1,
		show_gallery INTEGER NOT NULL DEFAULT 1,
		show_videos INTEGER NOT NULL DEFAULT 1,
		show_events INTEGER NOT NULL DEFAULT 1,
		profile_title TEXT NOT NULL DEFAULT '',
		profile_subtitle TEXT NOT NULL DEFAULT '',
		profile_description TEXT NOT NULL DEFAULT '',
		profile_skills TEXT NOT NULL DEFAULT '[]',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS duo_partner (
		id TEXT PRIMARY KEY,
		partner_id TEXT NOT NULL DEFAULT '',
		name TEXT NOT NULL DEFAULT '',
		game_id TEXT NOT NULL DEFAULT '',
		role TEXT NOT NULL DEFAULT '',
		rank TEXT NOT NULL DEFAULT '',
		photo TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS team_member (
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
	);

	CREATE TABLE IF NOT EXISTS gallery_image (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		url TEXT NOT NULL DEFAULT '',
		description TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS highlight_video (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		url TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS event (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		date TEXT NOT NULL DEFAULT '',
		vs TEXT NOT NULL DEFAULT '',
		event TEXT NOT NULL DEFAULT '',
		map TEXT NOT NULL DEFAULT '',
		result TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS background_music (
		id TEXT PRIMARY KEY,
		url TEXT NOT NULL DEFAULT '',
		volume REAL NOT NULL DEFAULT 0.5,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS settings (
		id TEXT PRIMARY KEY,
		is_dark_mode INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS webhook (
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
	);
	`

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}
