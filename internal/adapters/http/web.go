// Package web is the HTTP surface: the JSON content API, the webhook and
// admin password endpoints, and the public site page.
package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"playerhub/internal/adapters/http/middleware"
	"playerhub/internal/adapters/http/perf"
	"playerhub/internal/adapters/notify"
	duoStore "playerhub/internal/adapters/storage/duo"
	eventStore "playerhub/internal/adapters/storage/event"
	galleryStore "playerhub/internal/adapters/storage/gallery"
	musicStore "playerhub/internal/adapters/storage/music"
	profileStore "playerhub/internal/adapters/storage/profile"
	settingsStore "playerhub/internal/adapters/storage/settings"
	teamStore "playerhub/internal/adapters/storage/team"
	videoStore "playerhub/internal/adapters/storage/video"
	webhookStore "playerhub/internal/adapters/storage/webhook"
	"playerhub/internal/application/editor"
	"playerhub/internal/application/orchestrators"
	"playerhub/internal/application/state"
)

// Stores holds all storage dependencies.
type Stores struct {
	ProfileStore  profileStore.Store
	DuoStore      duoStore.Store
	TeamStore     teamStore.Store
	GalleryStore  galleryStore.Store
	VideoStore    videoStore.Store
	EventStore    eventStore.Store
	MusicStore    musicStore.Store
	SettingsStore settingsStore.Store
	WebhookStore  webhookStore.Store
	Credentials   orchestrators.CredentialStore
}

// loadCSRFKey reads the CSRF secret from PLAYERHUB_CSRF_KEY (hex-encoded,
// 32 bytes). In production, the key MUST be set. In development, a random
// key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("PLAYERHUB_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("PLAYERHUB_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("PLAYERHUB_ENV") == "production" {
		log.Fatal("PLAYERHUB_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key. Set PLAYERHUB_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global shared state (set by NewMux)
var siteState *state.Store

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// Global admin editing session (set by NewMux)
var adminSession *editor.Session

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 30

// Global notification senders (set by SetNotifier / SetEmailSender)
var notifier notify.Sender = notify.NewNoopSender()
var emailSender notify.Sender
var emailTarget string

// SetNotifier sets the webhook notification sender.
func SetNotifier(sender notify.Sender) {
	notifier = sender
}

// SetEmailSender sets the optional email channel for password delivery.
func SetEmailSender(sender notify.Sender, target string) {
	emailSender = sender
	emailTarget = target
}

// NewMux wires HTTP handlers for the app.
func NewMux(s *Stores, st *state.Store, collector *perf.Collector) http.Handler {
	stores = s
	siteState = st
	perfCollector = collector

	if adminSession != nil {
		adminSession.Close()
		adminSession = nil
	}
	if st != nil {
		adminSession = editor.NewSession(st)
	}

	mux := http.NewServeMux()
	registerRoutes(mux)

	csrfKey := loadCSRFKey()
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Timing -> CSRF -> SecurityHeaders -> RateLimit -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}
