package localstore

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	credential "playerhub/internal/domain/credential"
)

func TestGetMissingKey(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "mirror.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	var v string
	ok, err := store.Get("nope", &v)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("expected missing key")
	}
}

func TestSetGetAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mirror.json")

	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	type payload struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	if err := store.Set("k", payload{Name: "x", Count: 3}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	var got payload
	ok, err := reopened.Get("k", &got)
	if err != nil || !ok {
		t.Fatalf("Get after reopen: ok=%v err=%v", ok, err)
	}
	if got.Name != "x" || got.Count != 3 {
		t.Errorf("round trip mismatch: %+v", got)
	}
}

func TestDelete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mirror.json")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if err := store.Set("k", "v"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Delete("k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	var v string
	if ok, _ := store.Get("k", &v); ok {
		t.Error("key should be gone after delete")
	}
	// Deleting again is a no-op.
	if err := store.Delete("k"); err != nil {
		t.Fatalf("second Delete: %v", err)
	}
}

func TestOpenEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mirror.json")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("seeding empty file: %v", err)
	}
	if _, err := Open(path); err != nil {
		t.Fatalf("Open on empty file: %v", err)
	}
}

func TestCredentialStoreRoundTrip(t *testing.T) {
	store, err := Open(filepath.Join(t.TempDir(), "mirror.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	creds := NewCredentialStore(store)

	if _, ok, err := creds.Get(); err != nil || ok {
		t.Fatalf("expected no stored credential, ok=%v err=%v", ok, err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	in := credential.Credential{Password: "Aa1!Aa1!Aa1!", CreatedAt: now, ExpiresAt: now.Add(credential.TTL)}
	if err := creds.Put(in); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := creds.Get()
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if got.Password != in.Password || !got.ExpiresAt.Equal(in.ExpiresAt) {
		t.Errorf("round trip mismatch: %+v", got)
	}

	if err := creds.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if _, ok, _ := creds.Get(); ok {
		t.Error("credential should be gone after Clear")
	}
}
