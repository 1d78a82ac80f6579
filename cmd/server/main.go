package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	_ "modernc.org/sqlite"

	web "playerhub/internal/adapters/http"
	"playerhub/internal/adapters/http/perf"
	"playerhub/internal/adapters/localstore"
	"playerhub/internal/adapters/notify"
	"playerhub/internal/adapters/storage"
	duoStore "playerhub/internal/adapters/storage/duo"
	eventStore "playerhub/internal/adapters/storage/event"
	galleryStore "playerhub/internal/adapters/storage/gallery"
	musicStore "playerhub/internal/adapters/storage/music"
	profileStore "playerhub/internal/adapters/storage/profile"
	settingsStore "playerhub/internal/adapters/storage/settings"
	teamStore "playerhub/internal/adapters/storage/team"
	videoStore "playerhub/internal/adapters/storage/video"
	webhookStore "playerhub/internal/adapters/storage/webhook"
	"playerhub/internal/application/state"
	"playerhub/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	configPath := flag.String("config", os.Getenv("PLAYERHUB_CONFIG"), "path to YAML config (optional)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	applyEnvOverrides(cfg)
	setupLogging(cfg.Logging)

	// Initialize database with WAL mode and busy timeout
	dsn := cfg.Database.Path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	// Local JSON mirror: content snapshot fallback plus credential storage
	mirror, err := localstore.Open(cfg.Mirror.Path)
	if err != nil {
		log.Fatalf("failed to open local store %s: %v", cfg.Mirror.Path, err)
	}

	stores := &web.Stores{
		ProfileStore:  profileStore.NewSQLiteStore(timedDB),
		DuoStore:      duoStore.NewSQLiteStore(timedDB),
		TeamStore:     teamStore.NewSQLiteStore(timedDB),
		GalleryStore:  galleryStore.NewSQLiteStore(timedDB),
		VideoStore:    videoStore.NewSQLiteStore(timedDB),
		EventStore:    eventStore.NewSQLiteStore(timedDB),
		MusicStore:    musicStore.NewSQLiteStore(timedDB),
		SettingsStore: settingsStore.NewSQLiteStore(timedDB),
		WebhookStore:  webhookStore.NewSQLiteStore(timedDB),
		Credentials:   localstore.NewCredentialStore(mirror),
	}

	// Shared site state: hydrate from the database, then the mirror, then
	// the built-in defaults
	siteState := state.New(state.ContentStores{
		Profile:  stores.ProfileStore,
		Duo:      stores.DuoStore,
		Team:     stores.TeamStore,
		Gallery:  stores.GalleryStore,
		Videos:   stores.VideoStore,
		Events:   stores.EventStore,
		Music:    stores.MusicStore,
		Settings: stores.SettingsStore,
	}, mirror, cfg.State.PersistDebounce)
	siteState.Hydrate(context.Background())

	// Password notifications go to the configured chat webhook; email is a
	// second channel when Resend is configured
	web.SetNotifier(notify.NewChatWebhookSender())
	if cfg.ResendConfigured() {
		web.SetEmailSender(notify.NewEmailSender(cfg.Notifications.ResendKey, cfg.Notifications.EmailFrom), cfg.Notifications.EmailTo)
		log.Println("Email sender configured (Resend)")
	} else {
		log.Println("Email delivery disabled (set notifications.resend_key to enable)")
	}

	mux := web.NewMux(stores, siteState, collector)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("playerhub %s starting on %s (db=%s)", version, cfg.Server.Addr, cfg.Database.Path)
		errCh <- srv.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatalf("server failed: %v", err)
	case sig := <-stop:
		log.Printf("received %s, shutting down", sig)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}

	// Flush any debounced state writes before the process exits
	siteState.Flush()
}

// applyEnvOverrides lets individual settings be overridden without a
// config file.
func applyEnvOverrides(cfg *config.Config) {
	cfg.Server.Addr = envOrDefault("PLAYERHUB_ADDR", cfg.Server.Addr)
	cfg.Database.Path = envOrDefault("PLAYERHUB_DB", cfg.Database.Path)
	cfg.Mirror.Path = envOrDefault("PLAYERHUB_MIRROR", cfg.Mirror.Path)
	cfg.Notifications.ResendKey = envOrDefault("PLAYERHUB_RESEND_KEY", cfg.Notifications.ResendKey)
	cfg.Notifications.EmailFrom = envOrDefault("PLAYERHUB_EMAIL_FROM", cfg.Notifications.EmailFrom)
	cfg.Notifications.EmailTo = envOrDefault("PLAYERHUB_EMAIL_TO", cfg.Notifications.EmailTo)
	cfg.Logging.Level = envOrDefault("PLAYERHUB_LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = envOrDefault("PLAYERHUB_LOG_FORMAT", cfg.Logging.Format)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func setupLogging(cfg config.LoggingConfig) {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}
