package editor

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"playerhub/internal/adapters/localstore"
	duostore "playerhub/internal/adapters/storage/duo"
	eventstore "playerhub/internal/adapters/storage/event"
	gallerystore "playerhub/internal/adapters/storage/gallery"
	musicstore "playerhub/internal/adapters/storage/music"
	profilestore "playerhub/internal/adapters/storage/profile"
	settingsstore "playerhub/internal/adapters/storage/settings"
	teamstore "playerhub/internal/adapters/storage/team"
	videostore "playerhub/internal/adapters/storage/video"
	"playerhub/internal/application/state"
	"playerhub/internal/domain/duo"
	"playerhub/internal/domain/team"
)

func newTestStore(t *testing.T) *state.Store {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("opening in-memory db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	mirror, err := localstore.Open(filepath.Join(t.TempDir(), "mirror.json"))
	if err != nil {
		t.Fatalf("opening mirror: %v", err)
	}

	store := state.New(state.ContentStores{
		Profile:  profilestore.NewSQLiteStore(db),
		Duo:      duostore.NewSQLiteStore(db),
		Team:     teamstore.NewSQLiteStore(db),
		Gallery:  gallerystore.NewSQLiteStore(db),
		Videos:   videostore.NewSQLiteStore(db),
		Events:   eventstore.NewSQLiteStore(db),
		Music:    musicstore.NewSQLiteStore(db),
		Settings: settingsstore.NewSQLiteStore(db),
	}, mirror, time.Hour)
	store.Hydrate(context.Background())
	return store
}

func TestDraftEditsStayLocalUntilCommit(t *testing.T) {
	store := newTestStore(t)
	session := NewSession(store)
	defer session.Close()

	before := len(store.Snapshot().Team)
	added := session.AddTeamMember(team.Member{Name: "NewPlayer"})
	if added.ID == "" {
		t.Error("expected a generated id")
	}

	if got := len(store.Snapshot().Team); got != before {
		t.Errorf("draft edit leaked into shared state: %d members", got)
	}
	if got := len(session.Draft().Team); got != before+1 {
		t.Errorf("expected %d draft members, got %d", before+1, got)
	}

	session.Commit()
	if got := len(store.Snapshot().Team); got != before+1 {
		t.Errorf("commit did not reach shared state: %d members", got)
	}
}

func TestCommitPushesEveryCategory(t *testing.T) {
	store := newTestStore(t)
	session := NewSession(store)
	defer session.Close()

	session.SetDuo(duo.Partner{Name: "FreshDuo", GameID: "Fresh#TAG"})
	session.SetSectionVisible("gallery", false)
	session.RemoveEvent(session.Draft().Events[0].ID)
	session.Commit()

	snap := store.Snapshot()
	if snap.Duo == nil || snap.Duo.Name != "FreshDuo" {
		t.Errorf("duo not committed: %+v", snap.Duo)
	}
	if snap.Profile.ShowGallerySection {
		t.Error("gallery visibility not committed")
	}
	if len(snap.Events) != 2 {
		t.Errorf("expected 2 events after removal, got %d", len(snap.Events))
	}
}

func TestRemoveHelpers(t *testing.T) {
	store := newTestStore(t)
	session := NewSession(store)
	defer session.Close()

	img := session.Draft().Gallery[0]
	session.RemoveGalleryImage(img.ID)
	for _, g := range session.Draft().Gallery {
		if g.ID == img.ID {
			t.Fatal("image still present after removal")
		}
	}

	vid := session.Draft().Videos[0]
	session.RemoveHighlight(vid.ID)
	if len(session.Draft().Videos) != 2 {
		t.Errorf("expected 2 highlights, got %d", len(session.Draft().Videos))
	}

	session.ClearDuo()
	if session.Draft().Duo != nil {
		t.Error("expected no duo after ClearDuo")
	}

	// Removing an unknown id is a no-op.
	before := len(session.Draft().Team)
	session.RemoveTeamMember("does-not-exist")
	if len(session.Draft().Team) != before {
		t.Error("unknown id removal changed the roster")
	}
}

// External state changes re-seed the draft; uncommitted edits are
// replaced by the newer shared content.
func TestExternalChangeReseedsDraft(t *testing.T) {
	store := newTestStore(t)
	session := NewSession(store)
	defer session.Close()

	session.AddTeamMember(team.Member{Name: "WillBeLost"})

	store.Update(func(s *state.Snapshot) {
		s.Team = []team.Member{{ID: "x", Name: "External"}}
	})

	draft := session.Draft()
	if len(draft.Team) != 1 || draft.Team[0].Name != "External" {
		t.Errorf("draft should follow external changes, got %+v", draft.Team)
	}
}

// A session's own commit must not bounce back and clobber the draft
// mid-commit.
func TestCommitDoesNotReseedItself(t *testing.T) {
	store := newTestStore(t)
	session := NewSession(store)
	defer session.Close()

	session.AddTeamMember(team.Member{Name: "Kept"})
	session.Commit()

	found := false
	for _, m := range session.Draft().Team {
		if m.Name == "Kept" {
			found = true
		}
	}
	if !found {
		t.Error("committed edit missing from the draft")
	}
}
