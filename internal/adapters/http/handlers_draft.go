package web

import (
	"net/http"
	"strings"

	"playerhub/internal/domain/duo"
	"playerhub/internal/domain/event"
	"playerhub/internal/domain/gallery"
	"playerhub/internal/domain/profile"
	"playerhub/internal/domain/team"
	"playerhub/internal/domain/video"
)

// draftUnavailable guards the editor endpoints when no shared state was
// wired in.
func draftUnavailable(w http.ResponseWriter) bool {
	if adminSession == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "editor unavailable"})
		return true
	}
	return false
}

// handleDraft returns the current draft. Edits live here until commit;
// the content API and the public page keep serving the shared state.
func handleDraft(w http.ResponseWriter, r *http.Request) {
	if r.Method != "GET" {
		methodNotAllowed(w)
		return
	}
	if draftUnavailable(w) {
		return
	}
	writeJSON(w, http.StatusOK, adminSession.Draft())
}

// handleDraftCommit pushes every draft category into the shared state in
// one pass. Persistence follows on the state store's debounce.
func handleDraftCommit(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		methodNotAllowed(w)
		return
	}
	if draftUnavailable(w) {
		return
	}
	adminSession.Commit()
	writeJSON(w, http.StatusOK, adminSession.Draft())
}

func handleDraftProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != "PUT" {
		methodNotAllowed(w)
		return
	}
	if draftUnavailable(w) {
		return
	}
	var p profile.Profile
	if err := decode(r, &p); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	adminSession.SetProfile(p)
	writeJSON(w, http.StatusOK, adminSession.Draft().Profile)
}

func handleDraftSections(w http.ResponseWriter, r *http.Request) {
	if r.Method != "PUT" {
		methodNotAllowed(w)
		return
	}
	if draftUnavailable(w) {
		return
	}
	var input struct {
		Section string `json:"section"`
		Visible bool   `json:"visible"`
	}
	if err := decode(r, &input); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	adminSession.SetSectionVisible(input.Section, input.Visible)
	writeJSON(w, http.StatusOK, adminSession.Draft().Profile)
}

func handleDraftDuo(w http.ResponseWriter, r *http.Request) {
	if draftUnavailable(w) {
		return
	}
	switch r.Method {
	case "PUT":
		var p duo.Partner
		if err := decode(r, &p); err != nil {
			badRequest(w, "invalid JSON body")
			return
		}
		adminSession.SetDuo(p)
		writeJSON(w, http.StatusOK, adminSession.Draft().Duo)

	case "DELETE":
		adminSession.ClearDuo()
		writeJSON(w, http.StatusOK, map[string]bool{"cleared": true})

	default:
		methodNotAllowed(w)
	}
}

func handleDraftTeam(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		methodNotAllowed(w)
		return
	}
	if draftUnavailable(w) {
		return
	}
	var m team.Member
	if err := decode(r, &m); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	writeJSON(w, http.StatusOK, adminSession.AddTeamMember(m))
}

func handleDraftTeamByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != "DELETE" {
		methodNotAllowed(w)
		return
	}
	if draftUnavailable(w) {
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/draft/team/")
	adminSession.RemoveTeamMember(id)
	writeJSON(w, http.StatusOK, map[string]string{"removed": id})
}

func handleDraftGallery(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		methodNotAllowed(w)
		return
	}
	if draftUnavailable(w) {
		return
	}
	var img gallery.Image
	if err := decode(r, &img); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	writeJSON(w, http.StatusOK, adminSession.AddGalleryImage(img))
}

func handleDraftGalleryByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != "DELETE" {
		methodNotAllowed(w)
		return
	}
	if draftUnavailable(w) {
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/draft/gallery/")
	adminSession.RemoveGalleryImage(id)
	writeJSON(w, http.StatusOK, map[string]string{"removed": id})
}

func handleDraftVideos(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		methodNotAllowed(w)
		return
	}
	if draftUnavailable(w) {
		return
	}
	var v video.Highlight
	if err := decode(r, &v); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	writeJSON(w, http.StatusOK, adminSession.AddHighlight(v))
}

func handleDraftVideosByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != "DELETE" {
		methodNotAllowed(w)
		return
	}
	if draftUnavailable(w) {
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/draft/videos/")
	adminSession.RemoveHighlight(id)
	writeJSON(w, http.StatusOK, map[string]string{"removed": id})
}

func handleDraftEvents(w http.ResponseWriter, r *http.Request) {
	if r.Method != "POST" {
		methodNotAllowed(w)
		return
	}
	if draftUnavailable(w) {
		return
	}
	var e event.Event
	if err := decode(r, &e); err != nil {
		badRequest(w, "invalid JSON body")
		return
	}
	writeJSON(w, http.StatusOK, adminSession.AddEvent(e))
}

func handleDraftEventsByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != "DELETE" {
		methodNotAllowed(w)
		return
	}
	if draftUnavailable(w) {
		return
	}
	id := strings.TrimPrefix(r.URL.Path, "/api/admin/draft/events/")
	adminSession.RemoveEvent(id)
	writeJSON(w, http.StatusOK, map[string]string{"removed": id})
}
