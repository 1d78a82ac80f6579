package web

import (
	"net/http"
	"testing"
	"time"
)

// Draft edits stay invisible to the content API until commit; after
// commit and the debounce window, they land in the content store.
func TestDraftCommitReachesContentStore(t *testing.T) {
	handler, _ := newTestServerDebounce(t, 10*time.Millisecond)

	added := decodeBody[map[string]any](t, doJSON(t, handler, "POST", "/api/admin/draft/team",
		map[string]string{"name": "Recruit", "role": "Sentinel"}))
	if added["id"] == "" || added["id"] == nil {
		t.Fatalf("expected a generated id, got %v", added)
	}

	// The content API reads the database, which is still empty.
	if got := doJSON(t, handler, "GET", "/api/team-members", nil).Body.String(); got != "[]\n" {
		t.Fatalf("draft edits must not reach the content API before commit, got %q", got)
	}

	rec := doJSON(t, handler, "POST", "/api/admin/draft/commit", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("commit status %d", rec.Code)
	}

	// The debounced persistence pass flushes the committed roster.
	deadline := time.Now().Add(2 * time.Second)
	for {
		members := decodeBody[[]map[string]any](t, doJSON(t, handler, "GET", "/api/team-members", nil))
		found := false
		for _, m := range members {
			if m["name"] == "Recruit" {
				found = true
			}
		}
		if found {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("committed draft never reached the content store")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestDraftSectionToggleAndDuo(t *testing.T) {
	handler, _ := newTestServer(t)

	prof := decodeBody[map[string]any](t, doJSON(t, handler, "PUT", "/api/admin/draft/sections",
		map[string]any{"section": "team", "visible": false}))
	if prof["showTeamSection"] != false {
		t.Errorf("expected the team section hidden in the draft, got %v", prof["showTeamSection"])
	}

	set := decodeBody[map[string]any](t, doJSON(t, handler, "PUT", "/api/admin/draft/duo",
		map[string]string{"name": "NewDuo", "gameId": "NewDuo#1"}))
	if set["name"] != "NewDuo" || set["id"] == "" {
		t.Errorf("expected the draft duo with a generated id, got %v", set)
	}

	if rec := doJSON(t, handler, "DELETE", "/api/admin/draft/duo", nil); rec.Code != http.StatusOK {
		t.Fatalf("clear duo status %d", rec.Code)
	}
	draft := decodeBody[map[string]any](t, doJSON(t, handler, "GET", "/api/admin/draft", nil))
	if draft["duoPartner"] != nil {
		t.Errorf("expected no duo after clearing, got %v", draft["duoPartner"])
	}
}

func TestDraftAddRemove(t *testing.T) {
	handler, _ := newTestServer(t)

	img := decodeBody[map[string]any](t, doJSON(t, handler, "POST", "/api/admin/draft/gallery",
		map[string]string{"title": "Ace clutch"}))
	id, _ := img["id"].(string)
	if id == "" {
		t.Fatalf("expected a generated id, got %v", img)
	}

	if rec := doJSON(t, handler, "DELETE", "/api/admin/draft/gallery/"+id, nil); rec.Code != http.StatusOK {
		t.Fatalf("remove status %d", rec.Code)
	}

	draft := decodeBody[map[string]any](t, doJSON(t, handler, "GET", "/api/admin/draft", nil))
	images, _ := draft["galleryImages"].([]any)
	for _, raw := range images {
		if m, ok := raw.(map[string]any); ok && m["id"] == id {
			t.Errorf("image %s should be gone from the draft", id)
		}
	}
}

// An external content-API write re-seeds the draft, so the editor always
// starts from what the site currently serves.
func TestDraftReseedsOnExternalWrite(t *testing.T) {
	handler, _ := newTestServer(t)

	doJSON(t, handler, "POST", "/api/player-data", map[string]string{
		"name": "FreshlyPosted", "gameId": "Fresh#1",
	})

	draft := decodeBody[map[string]any](t, doJSON(t, handler, "GET", "/api/admin/draft", nil))
	prof, _ := draft["playerData"].(map[string]any)
	if prof["name"] != "FreshlyPosted" {
		t.Errorf("expected the draft re-seeded from the API write, got %v", prof["name"])
	}
}
