package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"playerhub/internal/adapters/notify"
	"playerhub/internal/domain/webhook"
)

// WebhookStore defines the store interface needed by the webhook
// orchestrators.
type WebhookStore interface {
	GetActive(ctx context.Context) (webhook.Config, bool, error)
	List(ctx context.Context) ([]webhook.Config, error)
	Activate(ctx context.Context, cfg webhook.Config) (webhook.Config, error)
	Update(ctx context.Context, id string, patch webhook.Patch) (webhook.Config, bool, error)
	FindByRecoveryCode(ctx context.Context, code string) (webhook.Config, bool, error)
	DeleteAll(ctx context.Context) error
}

// ConfigureWebhookInput carries input for the configure orchestrator.
type ConfigureWebhookInput struct {
	URL          string
	CreateBackup bool
}

// ConfigureWebhookDeps holds dependencies for ConfigureWebhook.
type ConfigureWebhookDeps struct {
	WebhookStore WebhookStore
	Now          func() time.Time
}

// ExecuteConfigureWebhook stores url as the single active webhook.
// PRE: URL must be non-empty
// POST: exactly one config is active; prior ones are kept deactivated
func ExecuteConfigureWebhook(ctx context.Context, input ConfigureWebhookInput, deps ConfigureWebhookDeps) (webhook.Config, error) {
	url := strings.TrimSpace(input.URL)
	if url == "" {
		return webhook.Config{}, errors.New("webhook URL is required")
	}

	cfg := webhook.Config{URL: url}
	if input.CreateBackup {
		cfg.Backup = webhook.NewBackup(url, deps.Now())
	}

	stored, err := deps.WebhookStore.Activate(ctx, cfg)
	if err != nil {
		return webhook.Config{}, err
	}

	slog.Info("webhook_event", "event", "webhook_configured",
		"id", stored.ID, "has_backup", stored.Backup != nil)
	return stored, nil
}

// TestWebhookDeps holds dependencies for TestWebhook.
type TestWebhookDeps struct {
	WebhookStore WebhookStoreForPassword
	Notifier     notify.Sender
	Now          func() time.Time
}

// ExecuteTestWebhook sends a test notification through the active
// webhook.
// POST: returns false, not an error, when delivery fails; returns
// ErrWebhookNotConfigured when nothing is configured
func ExecuteTestWebhook(ctx context.Context, deps TestWebhookDeps) (bool, error) {
	cfg, ok, err := deps.WebhookStore.GetActive(ctx)
	if err != nil {
		return false, err
	}
	if !ok || cfg.URL == "" {
		return false, ErrWebhookNotConfigured
	}

	msg := notify.Message{
		Title:       "Webhook Test",
		Description: "The notification channel is configured correctly.",
		Color:       0x5865f2,
		Timestamp:   deps.Now().UTC().Format(time.RFC3339),
	}
	if err := deps.Notifier.Send(ctx, cfg.URL, msg); err != nil {
		slog.Error("webhook_event", "event", "test_failed", "error", err)
		return false, nil
	}

	slog.Info("webhook_event", "event", "test_sent", "id", cfg.ID)
	return true, nil
}
