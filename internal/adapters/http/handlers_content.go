package web

import (
	"net/http"

	"playerhub/internal/application/state"
	duoDomain "playerhub/internal/domain/duo"
	eventDomain "playerhub/internal/domain/event"
	galleryDomain "playerhub/internal/domain/gallery"
	musicDomain "playerhub/internal/domain/music"
	profileDomain "playerhub/internal/domain/profile"
	settingsDomain "playerhub/internal/domain/settings"
	teamDomain "playerhub/internal/domain/team"
	videoDomain "playerhub/internal/domain/video"
)

func handlePlayerData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	switch r.Method {
	case "GET":
		p, ok, err := stores.ProfileStore.Get(ctx)
		if err != nil {
			storeError(w, err)
			return
		}
		if !ok {
			writeJSON(w, http.StatusOK, emptyObject)
			return
		}
		writeJSON(w, http.StatusOK, p)

	case "POST":
		var input profileDomain.Profile
		if err := decode(r, &input); err != nil {
			badRequest(w, "invalid JSON body")
			return
		}
		stored, err := stores.ProfileStore.Replace(ctx, input)
		if err != nil {
			storeError(w, err)
			return
		}
		if siteState != nil {
			siteState.Apply(func(s *state.Snapshot) { s.Profile = stored })
		}
		writeJSON(w, http.StatusOK, stored)

	default:
		methodNotAllowed(w)
	}
}

func handleDuoPartner(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	switch r.Method {
	case "GET":
		p, ok, err := stores.DuoStore.Get(ctx)
		if err != nil {
			storeError(w, err)
			return
		}
		if !ok {
			writeJSON(w, http.StatusOK, emptyObject)
			return
		}
		writeJSON(w, http.StatusOK, p)

	case "POST":
		var input duoDomain.Partner
		if err := decode(r, &input); err != nil {
			badRequest(w, "invalid JSON body")
			return
		}
		stored, err := stores.DuoStore.Replace(ctx, input)
		if err != nil {
			storeError(w, err)
			return
		}
		if siteState != nil {
			siteState.Apply(func(s *state.Snapshot) { s.Duo = &stored })
		}
		writeJSON(w, http.StatusOK, stored)

	default:
		methodNotAllowed(w)
	}
}

func handleTeamMembers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	switch r.Method {
	case "GET":
		members, err := stores.TeamStore.List(ctx)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, members)

	case "POST":
		var input []teamDomain.Member
		if err := decode(r, &input); err != nil {
			badRequest(w, "invalid JSON body")
			return
		}
		stored, err := stores.TeamStore.ReplaceAll(ctx, input)
		if err != nil {
			storeError(w, err)
			return
		}
		if siteState != nil {
			siteState.Apply(func(s *state.Snapshot) { s.Team = stored })
		}
		writeJSON(w, http.StatusOK, stored)

	default:
		methodNotAllowed(w)
	}
}

func handleGalleryImages(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	switch r.Method {
	case "GET":
		images, err := stores.GalleryStore.List(ctx)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, images)

	case "POST":
		var input []galleryDomain.Image
		if err := decode(r, &input); err != nil {
			badRequest(w, "invalid JSON body")
			return
		}
		stored, err := stores.GalleryStore.ReplaceAll(ctx, input)
		if err != nil {
			storeError(w, err)
			return
		}
		if siteState != nil {
			siteState.Apply(func(s *state.Snapshot) { s.Gallery = stored })
		}
		writeJSON(w, http.StatusOK, stored)

	default:
		methodNotAllowed(w)
	}
}

func handleHighlightVideos(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	switch r.Method {
	case "GET":
		videos, err := stores.VideoStore.List(ctx)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, videos)

	case "POST":
		var input []videoDomain.Highlight
		if err := decode(r, &input); err != nil {
			badRequest(w, "invalid JSON body")
			return
		}
		stored, err := stores.VideoStore.ReplaceAll(ctx, input)
		if err != nil {
			storeError(w, err)
			return
		}
		if siteState != nil {
			siteState.Apply(func(s *state.Snapshot) { s.Videos = stored })
		}
		writeJSON(w, http.StatusOK, stored)

	default:
		methodNotAllowed(w)
	}
}

func handleEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	switch r.Method {
	case "GET":
		events, err := stores.EventStore.List(ctx)
		if err != nil {
			storeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, events)

	case "POST":
		var input []eventDomain.Event
		if err := decode(r, &input); err != nil {
			badRequest(w, "invalid JSON body")
			return
		}
		stored, err := stores.EventStore.ReplaceAll(ctx, input)
		if err != nil {
			storeError(w, err)
			return
		}
		if siteState != nil {
			siteState.Apply(func(s *state.Snapshot) { s.Events = stored })
		}
		writeJSON(w, http.StatusOK, stored)

	default:
		methodNotAllowed(w)
	}
}

func handleBackgroundMusic(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	switch r.Method {
	case "GET":
		track, ok, err := stores.MusicStore.Get(ctx)
		if err != nil {
			storeError(w, err)
			return
		}
		if !ok {
			def := musicDomain.APIDefault()
			writeJSON(w, http.StatusOK, map[string]any{"url": def.URL, "volume": def.Volume})
			return
		}
		writeJSON(w, http.StatusOK, track)

	case "POST":
		var input musicDomain.Track
		if err := decode(r, &input); err != nil {
			badRequest(w, "invalid JSON body")
			return
		}
		stored, err := stores.MusicStore.Replace(ctx, input)
		if err != nil {
			storeError(w, err)
			return
		}
		if siteState != nil {
			siteState.Apply(func(s *state.Snapshot) { s.Music = stored })
		}
		writeJSON(w, http.StatusOK, stored)

	default:
		methodNotAllowed(w)
	}
}

func handleSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	switch r.Method {
	case "GET":
		current, ok, err := stores.SettingsStore.Get(ctx)
		if err != nil {
			storeError(w, err)
			return
		}
		if !ok {
			writeJSON(w, http.StatusOK, map[string]any{"isDarkMode": false})
			return
		}
		writeJSON(w, http.StatusOK, current)

	case "POST":
		var input settingsDomain.Settings
		if err := decode(r, &input); err != nil {
			badRequest(w, "invalid JSON body")
			return
		}
		stored, err := stores.SettingsStore.Replace(ctx, input)
		if err != nil {
			storeError(w, err)
			return
		}
		if siteState != nil {
			siteState.Apply(func(s *state.Snapshot) { s.Settings = stored })
		}
		writeJSON(w, http.StatusOK, stored)

	default:
		methodNotAllowed(w)
	}
}
