package profile

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	domain "playerhub/internal/domain/profile"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("opening in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return NewSQLiteStore(db)
}

func TestGetEmpty(t *testing.T) {
	store := newTestStore(t)

	_, ok, err := store.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("expected no profile in a fresh store")
	}
}

func TestReplaceRoundTrip(t *testing.T) {
	store := newTestStore(t)

	in := domain.Default()
	stored, err := store.Replace(context.Background(), in)
	if err != nil {
		t.Fatalf("Replace: %v", err)
	}
	if stored.CreatedAt.IsZero() || stored.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set on replace")
	}

	got, ok, err := store.Get(context.Background())
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected a stored profile")
	}
	if got.Name != in.Name || got.GameID != in.GameID {
		t.Errorf("identity mismatch: got %q/%q, want %q/%q", got.Name, got.GameID, in.Name, in.GameID)
	}
	if len(got.Achievements) != len(in.Achievements) {
		t.Errorf("achievements: got %d, want %d", len(got.Achievements), len(in.Achievements))
	}
	if len(got.Agents) != len(in.Agents) {
		t.Errorf("agents: got %d, want %d", len(got.Agents), len(in.Agents))
	}
	if got.SocialLinks.Twitch != in.SocialLinks.Twitch {
		t.Errorf("social links: got %q, want %q", got.SocialLinks.Twitch, in.SocialLinks.Twitch)
	}
	if len(got.ProfileSkills) != len(in.ProfileSkills) {
		t.Errorf("skills: got %d, want %d", len(got.ProfileSkills), len(in.ProfileSkills))
	}
}

// A second replace must fully overwrite the first, not merge into it.
func TestReplaceIsFullReplacement(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first := domain.Default()
	if _, err := store.Replace(ctx, first); err != nil {
		t.Fatalf("first Replace: %v", err)
	}

	second := domain.Profile{Name: "other", GameID: "other#tag"}
	if _, err := store.Replace(ctx, second); err != nil {
		t.Fatalf("second Replace: %v", err)
	}

	got, ok, err := store.Get(ctx)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.Name != "other" {
		t.Errorf("name: got %q, want %q", got.Name, "other")
	}
	if got.Bio != "" {
		t.Errorf("bio should be cleared by replace, got %q", got.Bio)
	}
	if len(got.Achievements) != 0 {
		t.Errorf("achievements should be cleared by replace, got %d", len(got.Achievements))
	}

	var count int
	if err := store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM player_data").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly one row, got %d", count)
	}
}

func TestReplaceNilSlicesStoredAsEmpty(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Replace(ctx, domain.Profile{Name: "n", GameID: "g"}); err != nil {
		t.Fatalf("Replace: %v", err)
	}
	got, _, err := store.Get(ctx)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Achievements == nil || got.Agents == nil || got.ProfileSkills == nil {
		t.Error("nil slices should round-trip as empty, not nil")
	}
}
