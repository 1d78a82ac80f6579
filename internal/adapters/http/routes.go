package web

import "net/http"

func registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/", handleSite)

	// Content API
	mux.HandleFunc("/api/player-data", handlePlayerData)
	mux.HandleFunc("/api/duo-partner", handleDuoPartner)
	mux.HandleFunc("/api/team-members", handleTeamMembers)
	mux.HandleFunc("/api/gallery-images", handleGalleryImages)
	mux.HandleFunc("/api/highlight-videos", handleHighlightVideos)
	mux.HandleFunc("/api/events", handleEvents)
	mux.HandleFunc("/api/background-music", handleBackgroundMusic)
	mux.HandleFunc("/api/settings", handleSettings)

	// Webhook configuration
	mux.HandleFunc("/api/webhook", handleWebhook)
	mux.HandleFunc("/api/webhook/", handleWebhookByID)

	// Admin password manager and webhook tooling
	mux.HandleFunc("/api/admin/password/generate", handlePasswordGenerate)
	mux.HandleFunc("/api/admin/password/validate", handlePasswordValidate)
	mux.HandleFunc("/api/admin/password", handlePassword)
	mux.HandleFunc("/api/admin/webhook/test", handleWebhookTest)
	mux.HandleFunc("/api/admin/webhook/recovery-code", handleRecoveryCode)
	mux.HandleFunc("/api/admin/webhook/recover", handleRecover)
	mux.HandleFunc("/api/admin/webhook/export", handleExport)
	mux.HandleFunc("/api/admin/webhook/import", handleImport)
	mux.HandleFunc("/api/admin/webhook/reset", handleReset)

	// Admin draft editor (draft-and-commit workflow)
	mux.HandleFunc("/api/admin/draft", handleDraft)
	mux.HandleFunc("/api/admin/draft/commit", handleDraftCommit)
	mux.HandleFunc("/api/admin/draft/profile", handleDraftProfile)
	mux.HandleFunc("/api/admin/draft/sections", handleDraftSections)
	mux.HandleFunc("/api/admin/draft/duo", handleDraftDuo)
	mux.HandleFunc("/api/admin/draft/team", handleDraftTeam)
	mux.HandleFunc("/api/admin/draft/team/", handleDraftTeamByID)
	mux.HandleFunc("/api/admin/draft/gallery", handleDraftGallery)
	mux.HandleFunc("/api/admin/draft/gallery/", handleDraftGalleryByID)
	mux.HandleFunc("/api/admin/draft/videos", handleDraftVideos)
	mux.HandleFunc("/api/admin/draft/videos/", handleDraftVideosByID)
	mux.HandleFunc("/api/admin/draft/events", handleDraftEvents)
	mux.HandleFunc("/api/admin/draft/events/", handleDraftEventsByID)

	// Operational endpoints
	mux.HandleFunc("/api/health", handleHealth)
	mux.HandleFunc("/api/perf", handlePerf)
}
