package orchestrators

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"playerhub/internal/adapters/notify"
	"playerhub/internal/domain/credential"
	"playerhub/internal/domain/webhook"
)

// ErrWebhookNotConfigured is returned when a password is requested before
// any notification webhook exists. No credential is created in that case.
var ErrWebhookNotConfigured = errors.New("no webhook configured")

// WebhookStoreForPassword defines the store interface needed by the
// password orchestrators.
type WebhookStoreForPassword interface {
	GetActive(ctx context.Context) (webhook.Config, bool, error)
}

// CredentialStore is where the single admin credential lives. It is a
// local mirror store, never the content database.
type CredentialStore interface {
	Get() (credential.Credential, bool, error)
	Put(cred credential.Credential) error
	Clear() error
}

// GeneratePasswordDeps holds dependencies for GeneratePassword.
type GeneratePasswordDeps struct {
	WebhookStore WebhookStoreForPassword
	Credentials  CredentialStore
	Notifier     notify.Sender
	EmailTarget  string        // optional second channel
	EmailSender  notify.Sender // nil when email is not configured
	Now          func() time.Time
}

// GeneratePasswordResult reports what happened. The plaintext is not
// included: delivery is out-of-band only.
type GeneratePasswordResult struct {
	Delivered bool      `json:"delivered"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// ExecuteGeneratePassword creates a fresh 24h admin credential and
// dispatches it through the configured notification channels.
// PRE: an active webhook must exist
// POST: the stored credential is replaced; delivery failure does not roll
// the new credential back
func ExecuteGeneratePassword(ctx context.Context, deps GeneratePasswordDeps) (GeneratePasswordResult, error) {
	now := deps.Now()

	cfg, ok, err := deps.WebhookStore.GetActive(ctx)
	if err != nil {
		return GeneratePasswordResult{}, err
	}
	if !ok || cfg.URL == "" {
		return GeneratePasswordResult{}, ErrWebhookNotConfigured
	}

	cred, err := credential.Generate(now)
	if err != nil {
		return GeneratePasswordResult{}, err
	}
	if err := deps.Credentials.Put(cred); err != nil {
		return GeneratePasswordResult{}, err
	}

	msg := notify.Message{
		Title:       "New Admin Access Code",
		Description: "A temporary admin password has been generated.",
		Color:       0x00ff88,
		Fields: []notify.Field{
			{Name: "Password", Value: cred.Password, Inline: true},
			{Name: "Valid For", Value: "24 hours", Inline: true},
			{Name: "Expires", Value: cred.ExpiresAt.UTC().Format(time.RFC3339), Inline: false},
		},
		Timestamp: now.UTC().Format(time.RFC3339),
	}

	delivered := true
	if err := deps.Notifier.Send(ctx, cfg.URL, msg); err != nil {
		slog.Error("password_event", "event", "delivery_failed", "error", err)
		delivered = false
	}
	if deps.EmailSender != nil && deps.EmailTarget != "" {
		if err := deps.EmailSender.Send(ctx, deps.EmailTarget, msg); err != nil {
			slog.Error("password_event", "event", "email_delivery_failed", "error", err)
		}
	}

	slog.Info("password_event", "event", "password_generated",
		"delivered", delivered, "expires_at", cred.ExpiresAt)
	return GeneratePasswordResult{Delivered: delivered, ExpiresAt: cred.ExpiresAt}, nil
}

// ValidatePasswordDeps holds dependencies for ValidatePassword.
type ValidatePasswordDeps struct {
	Credentials CredentialStore
	Now         func() time.Time
}

// ExecuteValidatePassword checks a candidate against the stored
// credential.
// POST: an expired credential is purged and never matches
func ExecuteValidatePassword(ctx context.Context, candidate string, deps ValidatePasswordDeps) (bool, error) {
	cred, ok, err := deps.Credentials.Get()
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	if cred.Expired(deps.Now()) {
		if err := deps.Credentials.Clear(); err != nil {
			slog.Error("password_event", "event", "purge_failed", "error", err)
		}
		return false, nil
	}
	return cred.Matches(candidate), nil
}

// PasswordInfo describes the current credential without exposing it.
type PasswordInfo struct {
	HasPassword   bool      `json:"hasPassword"`
	ExpiresAt     time.Time `json:"expiresAt,omitzero"`
	TimeRemaining string    `json:"timeRemaining,omitempty"`
}

// ExecutePasswordInfo reports whether a live credential exists and how
// long it has left, recomputed from the wall clock on every call.
func ExecutePasswordInfo(ctx context.Context, deps ValidatePasswordDeps) (PasswordInfo, error) {
	cred, ok, err := deps.Credentials.Get()
	if err != nil {
		return PasswordInfo{}, err
	}
	now := deps.Now()
	if !ok || cred.Expired(now) {
		if ok {
			if err := deps.Credentials.Clear(); err != nil {
				slog.Error("password_event", "event", "purge_failed", "error", err)
			}
		}
		return PasswordInfo{HasPassword: false}, nil
	}
	return PasswordInfo{
		HasPassword:   true,
		ExpiresAt:     cred.ExpiresAt,
		TimeRemaining: cred.FormatRemaining(now),
	}, nil
}

// ExecuteExpirePassword deletes the credential immediately.
func ExecuteExpirePassword(ctx context.Context, deps ValidatePasswordDeps) error {
	if err := deps.Credentials.Clear(); err != nil {
		return err
	}
	slog.Info("password_event", "event", "password_expired")
	return nil
}
