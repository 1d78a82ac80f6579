package webhook

import (
	"context"
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"

	domain "playerhub/internal/domain/webhook"
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

func TestGetActiveEmpty(t *testing.T) {
	store := newTestStore(t)
	_, ok, err := store.GetActive(context.Background())
	if err != nil {
		t.Fatalf("GetActive: %v", err)
	}
	if ok {
		t.Error("expected no active config in a fresh store")
	}
}

// Activating a second URL must deactivate the first without deleting it.
func TestActivateKeepsOldConfigs(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Activate(ctx, domain.Config{URL: "https://hooks.example/one"})
	if err != nil {
		t.Fatalf("first Activate: %v", err)
	}
	second, err := store.Activate(ctx, domain.Config{URL: "https://hooks.example/two"})
	if err != nil {
		t.Fatalf("second Activate: %v", err)
	}

	active, ok, err := store.GetActive(ctx)
	if err != nil || !ok {
		t.Fatalf("GetActive: ok=%v err=%v", ok, err)
	}
	if active.ID != second.ID || active.URL != "https://hooks.example/two" {
		t.Errorf("active config should be the second one, got %+v", active)
	}

	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected both configs kept, got %d", len(all))
	}
	if !all[0].IsActive || all[0].ID != second.ID {
		t.Errorf("active config must sort first, got %+v", all[0])
	}
	if all[1].IsActive || all[1].ID != first.ID {
		t.Errorf("old config must be kept inactive, got %+v", all[1])
	}
}

func TestUpdatePatchesOnlyGivenFields(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	cfg, err := store.Activate(ctx, domain.Config{URL: "https://hooks.example/one"})
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}

	code := "abc123"
	got, ok, err := store.Update(ctx, cfg.ID, domain.Patch{RecoveryCode: &code})
	if err != nil || !ok {
		t.Fatalf("Update: ok=%v err=%v", ok, err)
	}
	if got.RecoveryCode != code {
		t.Errorf("recovery code: got %q, want %q", got.RecoveryCode, code)
	}
	if got.URL != cfg.URL || !got.IsActive {
		t.Errorf("unpatched fields changed: %+v", got)
	}

	_, ok, err = store.Update(ctx, "nope", domain.Patch{RecoveryCode: &code})
	if err != nil {
		t.Fatalf("Update unknown id: %v", err)
	}
	if ok {
		t.Error("updating an unknown id must report ok=false")
	}
}

func TestUpdateBackupRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	cfg, err := store.Activate(ctx, domain.Config{URL: "https://hooks.example/one"})
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}

	backup := &domain.Backup{URL: "https://hooks.example/one", Timestamp: 1700000000000, Created: "2023-11-14T22:13:20Z"}
	got, ok, err := store.Update(ctx, cfg.ID, domain.Patch{Backup: &backup})
	if err != nil || !ok {
		t.Fatalf("Update: ok=%v err=%v", ok, err)
	}
	if got.Backup == nil || got.Backup.URL != backup.URL || got.Backup.Timestamp != backup.Timestamp {
		t.Errorf("backup mismatch: %+v", got.Backup)
	}
}

func TestFindByRecoveryCode(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	cfg, err := store.Activate(ctx, domain.Config{URL: "https://hooks.example/one", RecoveryCode: "code-1"})
	if err != nil {
		t.Fatalf("Activate: %v", err)
	}

	got, ok, err := store.FindByRecoveryCode(ctx, "code-1")
	if err != nil || !ok {
		t.Fatalf("FindByRecoveryCode: ok=%v err=%v", ok, err)
	}
	if got.ID != cfg.ID {
		t.Errorf("got id %q, want %q", got.ID, cfg.ID)
	}

	if _, ok, _ := store.FindByRecoveryCode(ctx, "wrong"); ok {
		t.Error("unknown code must not match")
	}
	if _, ok, _ := store.FindByRecoveryCode(ctx, ""); ok {
		t.Error("empty code must never match")
	}
}

func TestDeleteAll(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Activate(ctx, domain.Config{URL: "https://hooks.example/one"}); err != nil {
		t.Fatalf("Activate: %v", err)
	}
	if err := store.DeleteAll(ctx); err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	all, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected empty store after reset, got %d", len(all))
	}
}
