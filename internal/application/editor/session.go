// Package editor implements the admin draft-and-commit workflow. Edits
// accumulate on a draft copy of the site content and reach the shared
// state only on Commit.
package editor

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"playerhub/internal/application/state"
	"playerhub/internal/domain/duo"
	"playerhub/internal/domain/event"
	"playerhub/internal/domain/gallery"
	"playerhub/internal/domain/profile"
	"playerhub/internal/domain/team"
	"playerhub/internal/domain/video"
)

// Session is one admin editing session. The draft is re-seeded from the
// shared state whenever the state changes externally, so an editor always
// starts from what the site currently shows.
type Session struct {
	mu         sync.Mutex
	store      *state.Store
	draft      state.Snapshot
	committing bool
	cancel     func()
}

// NewSession seeds a session from the store's current snapshot and keeps
// it following external changes until Close.
func NewSession(store *state.Store) *Session {
	s := &Session{
		store: store,
		draft: store.Snapshot(),
	}
	s.cancel = store.Subscribe(func(snap state.Snapshot) {
		s.mu.Lock()
		defer s.mu.Unlock()
		if s.committing {
			return
		}
		s.draft = snap
	})
	return s
}

// Close stops following the shared state.
func (s *Session) Close() {
	if s.cancel != nil {
		s.cancel()
	}
}

// Draft returns a copy of the current draft.
func (s *Session) Draft() state.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draft
}

// SetProfile replaces the draft profile.
func (s *Session) SetProfile(p profile.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Profile = p
}

// SetSectionVisible toggles one of the profile's section flags.
func (s *Session) SetSectionVisible(section string, visible bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch section {
	case "team":
		s.draft.Profile.ShowTeamSection = visible
	case "duo":
		s.draft.Profile.ShowDuoSection = visible
	case "gallery":
		s.draft.Profile.ShowGallerySection = visible
	case "videos":
		s.draft.Profile.ShowVideosSection = visible
	case "events":
		s.draft.Profile.ShowEventsSection = visible
	}
}

// SetDuo replaces the draft duo partner.
func (s *Session) SetDuo(p duo.Partner) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	s.draft.Duo = &p
}

// ClearDuo removes the draft duo partner.
func (s *Session) ClearDuo() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Duo = nil
}

// AddTeamMember appends m to the draft roster, assigning an id.
func (s *Session) AddTeamMember(m team.Member) team.Member {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	s.draft.Team = append(s.draft.Team, m)
	return m
}

// RemoveTeamMember deletes the member with the given id from the draft.
func (s *Session) RemoveTeamMember(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Team = removeByID(s.draft.Team, id, func(m team.Member) string { return m.ID })
}

// AddGalleryImage appends img to the draft gallery, assigning an id.
func (s *Session) AddGalleryImage(img gallery.Image) gallery.Image {
	s.mu.Lock()
	defer s.mu.Unlock()
	if img.ID == "" {
		img.ID = uuid.New().String()
	}
	s.draft.Gallery = append(s.draft.Gallery, img)
	return img
}

// RemoveGalleryImage deletes the image with the given id from the draft.
func (s *Session) RemoveGalleryImage(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Gallery = removeByID(s.draft.Gallery, id, func(i gallery.Image) string { return i.ID })
}

// AddHighlight appends v to the draft highlight list, assigning an id.
func (s *Session) AddHighlight(v video.Highlight) video.Highlight {
	s.mu.Lock()
	defer s.mu.Unlock()
	if v.ID == "" {
		v.ID = uuid.New().String()
	}
	s.draft.Videos = append(s.draft.Videos, v)
	return v
}

// RemoveHighlight deletes the highlight with the given id from the draft.
func (s *Session) RemoveHighlight(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Videos = removeByID(s.draft.Videos, id, func(v video.Highlight) string { return v.ID })
}

// AddEvent appends e to the draft schedule, assigning an id.
func (s *Session) AddEvent(e event.Event) event.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	s.draft.Events = append(s.draft.Events, e)
	return e
}

// RemoveEvent deletes the event with the given id from the draft.
func (s *Session) RemoveEvent(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.draft.Events = removeByID(s.draft.Events, id, func(e event.Event) string { return e.ID })
}

// Commit pushes every draft category into the shared state in one pass.
// POST: the shared state equals the draft; persistence is the state
// store's debounced concern, not the session's
func (s *Session) Commit() {
	s.mu.Lock()
	draft := s.draft
	s.committing = true
	s.mu.Unlock()

	s.store.Update(func(snap *state.Snapshot) {
		*snap = draft
	})

	s.mu.Lock()
	s.committing = false
	s.mu.Unlock()

	slog.Info("editor_event", "event", "committed",
		"team_members", len(draft.Team), "gallery_images", len(draft.Gallery))
}

func removeByID[T any](items []T, id string, idOf func(T) string) []T {
	out := items[:0]
	for _, item := range items {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}
