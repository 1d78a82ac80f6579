package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"playerhub/internal/domain/webhook"
)

// ErrInvalidRecoveryCode is returned when a presented code matches no
// stored configuration.
var ErrInvalidRecoveryCode = errors.New("invalid recovery code")

// ErrNoBackup is returned when backup recovery is requested but the
// active config carries no snapshot.
var ErrNoBackup = errors.New("no backup available")

// RecoveryDeps holds dependencies for the recovery orchestrators.
type RecoveryDeps struct {
	WebhookStore WebhookStore
	Now          func() time.Time
}

// ExecuteGenerateRecoveryCode mints a fresh opaque recovery token and
// persists it on the active config.
// PRE: an active webhook must exist
// POST: the previous code, if any, no longer matches
func ExecuteGenerateRecoveryCode(ctx context.Context, deps RecoveryDeps) (string, error) {
	cfg, ok, err := deps.WebhookStore.GetActive(ctx)
	if err != nil {
		return "", err
	}
	if !ok || cfg.URL == "" {
		return "", ErrWebhookNotConfigured
	}

	code, err := webhook.NewRecoveryCode()
	if err != nil {
		return "", err
	}
	if _, ok, err := deps.WebhookStore.Update(ctx, cfg.ID, webhook.Patch{RecoveryCode: &code}); err != nil {
		return "", err
	} else if !ok {
		return "", errors.New("active webhook disappeared during update")
	}

	slog.Info("webhook_event", "event", "recovery_code_generated", "id", cfg.ID)
	return code, nil
}

// ExecuteRecoverFromBackup re-activates the URL snapshotted on the
// active config.
// POST: the backup URL becomes the active config
func ExecuteRecoverFromBackup(ctx context.Context, deps RecoveryDeps) (webhook.Config, error) {
	cfg, ok, err := deps.WebhookStore.GetActive(ctx)
	if err != nil {
		return webhook.Config{}, err
	}
	if !ok {
		return webhook.Config{}, ErrWebhookNotConfigured
	}
	if cfg.Backup == nil || cfg.Backup.URL == "" {
		return webhook.Config{}, ErrNoBackup
	}

	restored, err := deps.WebhookStore.Activate(ctx, webhook.Config{
		URL:          cfg.Backup.URL,
		Backup:       cfg.Backup,
		RecoveryCode: cfg.RecoveryCode,
	})
	if err != nil {
		return webhook.Config{}, err
	}

	slog.Info("webhook_event", "event", "recovered_from_backup", "id", restored.ID)
	return restored, nil
}

// ExecuteRecoverWithCode re-activates the configuration holding the
// presented recovery code.
// POST: a matching code restores its generation-time URL without minting
// a fresh backup snapshot
func ExecuteRecoverWithCode(ctx context.Context, code string, deps RecoveryDeps) (webhook.Config, error) {
	if code == "" {
		return webhook.Config{}, ErrInvalidRecoveryCode
	}

	match, ok, err := deps.WebhookStore.FindByRecoveryCode(ctx, code)
	if err != nil {
		return webhook.Config{}, err
	}
	if !ok || match.URL == "" {
		return webhook.Config{}, ErrInvalidRecoveryCode
	}

	restored, err := deps.WebhookStore.Activate(ctx, webhook.Config{
		URL:          match.URL,
		Backup:       match.Backup,
		RecoveryCode: match.RecoveryCode,
	})
	if err != nil {
		return webhook.Config{}, err
	}

	slog.Info("webhook_event", "event", "recovered_with_code", "id", restored.ID)
	return restored, nil
}

// ExecuteExportConfiguration serializes the active config as a portable
// base64 blob and stores the blob on the config for later reference.
func ExecuteExportConfiguration(ctx context.Context, deps RecoveryDeps) (string, error) {
	cfg, ok, err := deps.WebhookStore.GetActive(ctx)
	if err != nil {
		return "", err
	}
	if !ok || cfg.URL == "" {
		return "", ErrWebhookNotConfigured
	}

	blob, err := cfg.Export(deps.Now())
	if err != nil {
		return "", err
	}
	if _, _, err := deps.WebhookStore.Update(ctx, cfg.ID, webhook.Patch{ConfigExport: &blob}); err != nil {
		return "", err
	}

	slog.Info("webhook_event", "event", "configuration_exported", "id", cfg.ID)
	return blob, nil
}

// ExecuteImportConfiguration re-configures the webhook from an exported
// blob.
// POST: the blob's URL is active with its backup and recovery code
// restored; returns webhook.ErrInvalidExport for a malformed blob
func ExecuteImportConfiguration(ctx context.Context, data string, deps RecoveryDeps) (webhook.Config, error) {
	blob, err := webhook.DecodeExport(data)
	if err != nil {
		return webhook.Config{}, err
	}

	restored, err := deps.WebhookStore.Activate(ctx, webhook.Config{
		URL:          blob.URL,
		Backup:       blob.Backup,
		RecoveryCode: blob.RecoveryCode,
	})
	if err != nil {
		return webhook.Config{}, err
	}

	slog.Info("webhook_event", "event", "configuration_imported", "id", restored.ID)
	return restored, nil
}

// ExecuteEmergencyReset wipes every stored webhook configuration.
// POST: irreversible; the notifier is unconfigured afterwards
func ExecuteEmergencyReset(ctx context.Context, deps RecoveryDeps) error {
	if err := deps.WebhookStore.DeleteAll(ctx); err != nil {
		return err
	}
	slog.Info("webhook_event", "event", "emergency_reset")
	return nil
}
