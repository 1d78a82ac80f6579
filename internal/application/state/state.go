// Package state holds the live site content shared between the content
// API, the admin editor and the public renderer. The store hydrates from
// the content database, falls back to a local JSON mirror, then to the
// hard-coded defaults, and persists edits back on a debounce.
package state

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"playerhub/internal/domain/duo"
	"playerhub/internal/domain/event"
	"playerhub/internal/domain/gallery"
	"playerhub/internal/domain/music"
	"playerhub/internal/domain/profile"
	"playerhub/internal/domain/settings"
	"playerhub/internal/domain/team"
	"playerhub/internal/domain/video"

	duostore "playerhub/internal/adapters/storage/duo"
	eventstore "playerhub/internal/adapters/storage/event"
	gallerystore "playerhub/internal/adapters/storage/gallery"
	musicstore "playerhub/internal/adapters/storage/music"
	profilestore "playerhub/internal/adapters/storage/profile"
	settingsstore "playerhub/internal/adapters/storage/settings"
	teamstore "playerhub/internal/adapters/storage/team"
	videostore "playerhub/internal/adapters/storage/video"
)

// mirrorKey is where the whole snapshot lives in the local mirror.
const mirrorKey = "site-content"

// DefaultDebounce is how long the store waits after the last edit before
// persisting. A newer edit restarts the clock.
const DefaultDebounce = time.Second

// Snapshot is the full site content at one point in time. Slices are
// never nil after hydration.
type Snapshot struct {
	Profile  profile.Profile   `json:"playerData"`
	Duo      *duo.Partner      `json:"duoPartner"`
	Team     []team.Member     `json:"teamMembers"`
	Gallery  []gallery.Image   `json:"galleryImages"`
	Videos   []video.Highlight `json:"highlightVideos"`
	Events   []event.Event     `json:"events"`
	Music    music.Track       `json:"backgroundMusic"`
	Settings settings.Settings `json:"settings"`
}

// clone deep-copies the slices so callers can mutate their copy freely.
func (s Snapshot) clone() Snapshot {
	out := s
	if s.Duo != nil {
		d := *s.Duo
		out.Duo = &d
	}
	out.Team = append([]team.Member(nil), s.Team...)
	out.Gallery = append([]gallery.Image(nil), s.Gallery...)
	out.Videos = append([]video.Highlight(nil), s.Videos...)
	out.Events = append([]event.Event(nil), s.Events...)
	return out
}

// ContentStores groups the per-category persistence used by the store.
type ContentStores struct {
	Profile  profilestore.Store
	Duo      duostore.Store
	Team     teamstore.Store
	Gallery  gallerystore.Store
	Videos   videostore.Store
	Events   eventstore.Store
	Music    musicstore.Store
	Settings settingsstore.Store
}

// Mirror is the local JSON store the snapshot is unconditionally copied
// to on every persistence pass.
type Mirror interface {
	Get(key string, v any) (bool, error)
	Set(key string, v any) error
}

// Store is the shared, observable site content.
type Store struct {
	mu       sync.Mutex
	snapshot Snapshot
	hydrated bool

	stores ContentStores
	mirror Mirror

	debounce time.Duration
	timer    *time.Timer

	subs   map[int]func(Snapshot)
	nextID int
}

// New creates an unhydrated store. A debounce of 0 means DefaultDebounce.
func New(stores ContentStores, mirror Mirror, debounce time.Duration) *Store {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Store{
		stores:   stores,
		mirror:   mirror,
		debounce: debounce,
		subs:     map[int]func(Snapshot){},
	}
}

// Hydrate fills the store: content database first, local mirror for
// categories the database is missing or failing, hard-coded defaults
// last. A store read error is treated like "not found" — the mirror is
// the fallback of record when the database is unavailable, so nothing
// here is fatal.
// POST: Snapshot() is fully populated; hydration never writes anything back
func (s *Store) Hydrate(ctx context.Context) {
	var mirrored Snapshot
	haveMirror := false
	if s.mirror != nil {
		ok, err := s.mirror.Get(mirrorKey, &mirrored)
		if err != nil {
			slog.Warn("state_event", "event", "mirror_read_failed", "error", err)
		} else {
			haveMirror = ok
		}
	}

	readFailed := func(category string, err error) {
		slog.Warn("state_event", "event", "hydrate_read_failed",
			"category", category, "error", err)
	}

	snap := Snapshot{}

	p, ok, err := s.stores.Profile.Get(ctx)
	if err != nil {
		readFailed("profile", err)
		ok = false
	}
	switch {
	case ok && !p.IsZero():
		snap.Profile = p
	case haveMirror && !mirrored.Profile.IsZero():
		snap.Profile = mirrored.Profile
	default:
		snap.Profile = profile.Default()
	}

	d, ok, err := s.stores.Duo.Get(ctx)
	if err != nil {
		readFailed("duo", err)
		ok = false
	}
	switch {
	case ok && !d.IsZero():
		snap.Duo = &d
	case haveMirror && mirrored.Duo != nil && !mirrored.Duo.IsZero():
		snap.Duo = mirrored.Duo
	default:
		snap.Duo = duo.Default()
	}

	members, err := s.stores.Team.List(ctx)
	if err != nil {
		readFailed("team", err)
	}
	switch {
	case len(members) > 0:
		snap.Team = members
	case haveMirror && len(mirrored.Team) > 0:
		snap.Team = mirrored.Team
	default:
		snap.Team = team.Default()
	}

	images, err := s.stores.Gallery.List(ctx)
	if err != nil {
		readFailed("gallery", err)
	}
	switch {
	case len(images) > 0:
		snap.Gallery = images
	case haveMirror && len(mirrored.Gallery) > 0:
		snap.Gallery = mirrored.Gallery
	default:
		snap.Gallery = gallery.Default()
	}

	videos, err := s.stores.Videos.List(ctx)
	if err != nil {
		readFailed("videos", err)
	}
	switch {
	case len(videos) > 0:
		snap.Videos = videos
	case haveMirror && len(mirrored.Videos) > 0:
		snap.Videos = mirrored.Videos
	default:
		snap.Videos = video.Default()
	}

	events, err := s.stores.Events.List(ctx)
	if err != nil {
		readFailed("events", err)
	}
	switch {
	case len(events) > 0:
		snap.Events = events
	case haveMirror && len(mirrored.Events) > 0:
		snap.Events = mirrored.Events
	default:
		snap.Events = event.Default()
	}

	track, ok, err := s.stores.Music.Get(ctx)
	if err != nil {
		readFailed("music", err)
		ok = false
	}
	switch {
	case ok:
		snap.Music = track
	case haveMirror && mirrored.Music.URL != "":
		snap.Music = mirrored.Music
	default:
		snap.Music = music.Default()
	}

	st, ok, err := s.stores.Settings.Get(ctx)
	if err != nil {
		readFailed("settings", err)
		ok = false
	}
	switch {
	case ok:
		snap.Settings = st
	case haveMirror:
		snap.Settings = mirrored.Settings
	default:
		snap.Settings = settings.Default()
	}

	s.mu.Lock()
	s.snapshot = snap
	s.hydrated = true
	s.mu.Unlock()

	slog.Info("state_event", "event", "hydrated",
		"team_members", len(snap.Team), "gallery_images", len(snap.Gallery))
}

// Snapshot returns a copy of the current content.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot.clone()
}

// Subscribe registers fn for snapshot-change notifications. The returned
// function unsubscribes.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subs, id)
	}
}

// Update applies mutate to the snapshot, notifies subscribers and
// schedules a debounced persistence pass. A newer Update supersedes a
// pending flush.
func (s *Store) Update(mutate func(*Snapshot)) {
	s.mu.Lock()
	mutate(&s.snapshot)
	snap := s.snapshot.clone()
	subs := s.subscribersLocked()

	if s.timer != nil {
		s.timer.Stop()
	}
	// Persistence only runs against a hydrated snapshot; an early Update
	// must never flush partial content over the stores.
	if s.hydrated {
		s.timer = time.AfterFunc(s.debounce, func() { s.persist(s.Snapshot()) })
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

// Apply applies a mutation whose data is already persisted (a content API
// write). Subscribers are notified and the mirror refreshed, but no
// persistence pass is scheduled.
func (s *Store) Apply(mutate func(*Snapshot)) {
	s.mu.Lock()
	mutate(&s.snapshot)
	snap := s.snapshot.clone()
	subs := s.subscribersLocked()
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
	s.writeMirror(snap)
}

func (s *Store) subscribersLocked() []func(Snapshot) {
	out := make([]func(Snapshot), 0, len(s.subs))
	for _, fn := range s.subs {
		out = append(out, fn)
	}
	return out
}

// Flush persists any pending edits immediately. Used on shutdown.
func (s *Store) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	hydrated := s.hydrated
	s.mu.Unlock()
	if !hydrated {
		return
	}
	s.persist(s.Snapshot())
}

// persist saves every category to its content store independently, then
// mirrors the whole snapshot regardless of how the saves went.
func (s *Store) persist(snap Snapshot) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := s.stores.Profile.Replace(ctx, snap.Profile); err != nil {
		slog.Error("state_event", "event", "save_failed", "category", "profile", "error", err)
	}
	if snap.Duo != nil {
		if _, err := s.stores.Duo.Replace(ctx, *snap.Duo); err != nil {
			slog.Error("state_event", "event", "save_failed", "category", "duo", "error", err)
		}
	}
	if _, err := s.stores.Team.ReplaceAll(ctx, snap.Team); err != nil {
		slog.Error("state_event", "event", "save_failed", "category", "team", "error", err)
	}
	if _, err := s.stores.Gallery.ReplaceAll(ctx, snap.Gallery); err != nil {
		slog.Error("state_event", "event", "save_failed", "category", "gallery", "error", err)
	}
	if _, err := s.stores.Videos.ReplaceAll(ctx, snap.Videos); err != nil {
		slog.Error("state_event", "event", "save_failed", "category", "videos", "error", err)
	}
	if _, err := s.stores.Events.ReplaceAll(ctx, snap.Events); err != nil {
		slog.Error("state_event", "event", "save_failed", "category", "events", "error", err)
	}
	if _, err := s.stores.Music.Replace(ctx, snap.Music); err != nil {
		slog.Error("state_event", "event", "save_failed", "category", "music", "error", err)
	}
	if _, err := s.stores.Settings.Replace(ctx, snap.Settings); err != nil {
		slog.Error("state_event", "event", "save_failed", "category", "settings", "error", err)
	}

	s.writeMirror(snap)
	slog.Debug("state_event", "event", "persisted")
}

func (s *Store) writeMirror(snap Snapshot) {
	if s.mirror == nil {
		return
	}
	if err := s.mirror.Set(mirrorKey, snap); err != nil {
		slog.Error("state_event", "event", "mirror_write_failed", "error", err)
	}
}
