package team

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	domain "playerhub/internal/domain/team"
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

func TestListEmpty(t *testing.T) {
	store := newTestStore(t)

	got, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got == nil {
		t.Fatal("List must return an empty slice, not nil")
	}
	if len(got) != 0 {
		t.Errorf("expected empty roster, got %d members", len(got))
	}
}

// Stored order must match input order and caller IDs must survive verbatim,
// across repeated replaces.
func TestReplaceAllPreservesIDsAndOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	in := []domain.Member{
		{ID: "m-3", Name: "Charlie", Role: "Sentinel"},
		{ID: "m-1", Name: "Alpha", Role: "Duelist"},
		{ID: "m-2", Name: "Bravo", Role: "Controller"},
	}
	if _, err := store.ReplaceAll(ctx, in); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}

	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 members, got %d", len(got))
	}
	for i := range in {
		if got[i].ID != in[i].ID {
			t.Errorf("position %d: got id %q, want %q", i, got[i].ID, in[i].ID)
		}
		if got[i].Name != in[i].Name {
			t.Errorf("position %d: got name %q, want %q", i, got[i].Name, in[i].Name)
		}
	}

	// A shorter replace drops the missing members entirely.
	if _, err := store.ReplaceAll(ctx, in[:1]); err != nil {
		t.Fatalf("second ReplaceAll: %v", err)
	}
	got, err = store.List(ctx)
	if err != nil {
		t.Fatalf("List after shrink: %v", err)
	}
	if len(got) != 1 || got[0].ID != "m-3" {
		t.Errorf("expected roster [m-3], got %+v", got)
	}
}

func TestReplaceAllAssignsMissingIDs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	stored, err := store.ReplaceAll(ctx, []domain.Member{{Name: "NoID"}})
	if err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	if stored[0].ID == "" {
		t.Error("expected a generated id for member without one")
	}
}

func TestReplaceAllRoundTripsSocialLinks(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	in := []domain.Member{{
		ID:          "m-1",
		Name:        "Alpha",
		SocialLinks: domain.SocialLinks{Twitch: "/alpha", Discord: "alpha#1"},
	}}
	if _, err := store.ReplaceAll(ctx, in); err != nil {
		t.Fatalf("ReplaceAll: %v", err)
	}
	got, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if got[0].SocialLinks.Twitch != "/alpha" || got[0].SocialLinks.Discord != "alpha#1" {
		t.Errorf("social links mismatch: %+v", got[0].SocialLinks)
	}
}
