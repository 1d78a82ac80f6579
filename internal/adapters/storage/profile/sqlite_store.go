package profile

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"playerhub/internal/adapters/storage"
	domain "playerhub/internal/domain/profile"
)

// SQLiteStore implements Store using SQLite. The profile is kept as a
// single row keyed storage.SingletonID; a replace is an upsert, never a
// delete-then-insert.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore and ensures the table exists.
// PRE: db is a valid, open database connection
// POST: player_data table exists; store is ready for use
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	db.ExecContext(context.Background(), `CREATE TABLE IF NOT EXISTS player_data (
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
	)`)
	return &SQLiteStore{db: db}
}

// Get retrieves the singleton profile.
// POST: ok is false when nothing has been stored yet
func (s *SQLiteStore) Get(ctx context.Context) (domain.Profile, bool, error) {
	var p domain.Profile
	var achievements, agents, socialLinks, skills string
	var createdAt, updatedAt string
	err := s.db.QueryRowContext(ctx,
		`SELECT name, game_id, team, city, role, rank, mvp_title, kd, hs, acs, adr, clutch_rate, bio,
		        achievements, agents, social_links, team_logo,
		        show_team, show_duo, show_gallery, show_videos, show_events,
		        profile_title, profile_subtitle, profile_description, profile_skills,
		        created_at, updated_at
		 FROM player_data WHERE id = ?`, storage.SingletonID,
	).Scan(&p.Name, &p.GameID, &p.Team, &p.City, &p.Role, &p.Rank, &p.MVPTitle,
		&p.KD, &p.HS, &p.ACS, &p.ADR, &p.ClutchRate, &p.Bio,
		&achievements, &agents, &socialLinks, &p.TeamLogo,
		&p.ShowTeamSection, &p.ShowDuoSection, &p.ShowGallerySection, &p.ShowVideosSection, &p.ShowEventsSection,
		&p.ProfileTitle, &p.ProfileSubtitle, &p.ProfileDescription, &skills,
		&createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return domain.Profile{}, false, nil
	}
	if err != nil {
		return domain.Profile{}, false, err
	}

	if err := json.Unmarshal([]byte(achievements), &p.Achievements); err != nil {
		return domain.Profile{}, false, fmt.Errorf("decoding achievements: %w", err)
	}
	if err := json.Unmarshal([]byte(agents), &p.Agents); err != nil {
		return domain.Profile{}, false, fmt.Errorf("decoding agents: %w", err)
	}
	if err := json.Unmarshal([]byte(socialLinks), &p.SocialLinks); err != nil {
		return domain.Profile{}, false, fmt.Errorf("decoding social links: %w", err)
	}
	if err := json.Unmarshal([]byte(skills), &p.ProfileSkills); err != nil {
		return domain.Profile{}, false, fmt.Errorf("decoding skills: %w", err)
	}
	p.CreatedAt = storage.ParseTime(createdAt)
	p.UpdatedAt = storage.ParseTime(updatedAt)
	return p, true, nil
}

// Replace upserts the profile against the fixed singleton key.
// POST: exactly one row exists; the stored record is returned with fresh
// timestamps (a replace is a new record, not an edit of the old one)
func (s *SQLiteStore) Replace(ctx context.Context, value domain.Profile) (domain.Profile, error) {
	achievements, err := json.Marshal(orEmptyAchievements(value.Achievements))
	if err != nil {
		return domain.Profile{}, fmt.Errorf("encoding achievements: %w", err)
	}
	agents, err := json.Marshal(orEmptyAgents(value.Agents))
	if err != nil {
		return domain.Profile{}, fmt.Errorf("encoding agents: %w", err)
	}
	socialLinks, err := json.Marshal(value.SocialLinks)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("encoding social links: %w", err)
	}
	skills, err := json.Marshal(orEmptyStrings(value.ProfileSkills))
	if err != nil {
		return domain.Profile{}, fmt.Errorf("encoding skills: %w", err)
	}

	now := time.Now().UTC()
	value.CreatedAt = now
	value.UpdatedAt = now

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO player_data (id, name, game_id, team, city, role, rank, mvp_title, kd, hs, acs, adr, clutch_rate, bio,
		   achievements, agents, social_links, team_logo,
		   show_team, show_duo, show_gallery, show_videos, show_events,
		   profile_title, profile_subtitle, profile_description, profile_skills, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name=excluded.name, game_id=excluded.game_id, team=excluded.team, city=excluded.city,
		   role=excluded.role, rank=excluded.rank, mvp_title=excluded.mvp_title,
		   kd=excluded.kd, hs=excluded.hs, acs=excluded.acs, adr=excluded.adr, clutch_rate=excluded.clutch_rate,
		   bio=excluded.bio, achievements=excluded.achievements, agents=excluded.agents,
		   social_links=excluded.social_links, team_logo=excluded.team_logo,
		   show_team=excluded.show_team, show_duo=excluded.show_duo, show_gallery=excluded.show_gallery,
		   show_videos=excluded.show_videos, show_events=excluded.show_events,
		   profile_title=excluded.profile_title, profile_subtitle=excluded.profile_subtitle,
		   profile_description=excluded.profile_description, profile_skills=excluded.profile_skills,
		   created_at=excluded.created_at, updated_at=excluded.updated_at`,
		storage.SingletonID, value.Name, value.GameID, value.Team, value.City, value.Role, value.Rank, value.MVPTitle,
		value.KD, value.HS, value.ACS, value.ADR, value.ClutchRate, value.Bio,
		string(achievements), string(agents), string(socialLinks), value.TeamLogo,
		value.ShowTeamSection, value.ShowDuoSection, value.ShowGallerySection, value.ShowVideosSection, value.ShowEventsSection,
		value.ProfileTitle, value.ProfileSubtitle, value.ProfileDescription, string(skills),
		storage.FormatTime(now), storage.FormatTime(now),
	)
	if err != nil {
		return domain.Profile{}, err
	}
	return value, nil
}

func orEmptyAchievements(v []domain.Achievement) []domain.Achievement {
	if v == nil {
		return []domain.Achievement{}
	}
	return v
}

func orEmptyAgents(v []domain.Agent) []domain.Agent {
	if v == nil {
		return []domain.Agent{}
	}
	return v
}

func orEmptyStrings(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
