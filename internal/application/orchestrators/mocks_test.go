package orchestrators

import (
	"context"
	"errors"
	"sync"

	"playerhub/internal/adapters/notify"
	"playerhub/internal/domain/credential"
	"playerhub/internal/domain/webhook"
)

// mockWebhookStore is an in-memory WebhookStore.
type mockWebhookStore struct {
	mu      sync.Mutex
	configs []webhook.Config
	nextID  int
}

func (m *mockWebhookStore) GetActive(_ context.Context) (webhook.Config, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, c := range m.configs {
		if c.IsActive {
			return c, true, nil
		}
	}
	return webhook.Config{}, false, nil
}

func (m *mockWebhookStore) List(_ context.Context) ([]webhook.Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]webhook.Config, len(m.configs))
	copy(out, m.configs)
	return out, nil
}

func (m *mockWebhookStore) Activate(_ context.Context, cfg webhook.Config) (webhook.Config, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.configs {
		m.configs[i].IsActive = false
	}
	if cfg.ID == "" {
		m.nextID++
		cfg.ID = string(rune('a' + m.nextID - 1))
	}
	cfg.IsActive = true
	m.configs = append(m.configs, cfg)
	return cfg, nil
}

func (m *mockWebhookStore) Update(_ context.Context, id string, patch webhook.Patch) (webhook.Config, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.configs {
		if m.configs[i].ID != id {
			continue
		}
		if patch.URL != nil {
			m.configs[i].URL = *patch.URL
		}
		if patch.IsActive != nil {
			m.configs[i].IsActive = *patch.IsActive
		}
		if patch.Backup != nil {
			m.configs[i].Backup = *patch.Backup
		}
		if patch.RecoveryCode != nil {
			m.configs[i].RecoveryCode = *patch.RecoveryCode
		}
		if patch.ConfigExport != nil {
			m.configs[i].ConfigExport = *patch.ConfigExport
		}
		return m.configs[i], true, nil
	}
	return webhook.Config{}, false, nil
}

func (m *mockWebhookStore) FindByRecoveryCode(_ context.Context, code string) (webhook.Config, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if code == "" {
		return webhook.Config{}, false, nil
	}
	for _, c := range m.configs {
		if c.RecoveryCode == code {
			return c, true, nil
		}
	}
	return webhook.Config{}, false, nil
}

func (m *mockWebhookStore) DeleteAll(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.configs = nil
	return nil
}

// mockCredentialStore is an in-memory CredentialStore.
type mockCredentialStore struct {
	cred   *credential.Credential
	putErr error
}

func (m *mockCredentialStore) Get() (credential.Credential, bool, error) {
	if m.cred == nil {
		return credential.Credential{}, false, nil
	}
	return *m.cred, true, nil
}

func (m *mockCredentialStore) Put(cred credential.Credential) error {
	if m.putErr != nil {
		return m.putErr
	}
	m.cred = &cred
	return nil
}

func (m *mockCredentialStore) Clear() error {
	m.cred = nil
	return nil
}

// mockSender records sends and optionally fails them all.
type mockSender struct {
	mu      sync.Mutex
	fail    bool
	targets []string
	msgs    []notify.Message
}

func (m *mockSender) Send(_ context.Context, target string, msg notify.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.fail {
		return errors.New("send failed")
	}
	m.targets = append(m.targets, target)
	m.msgs = append(m.msgs, msg)
	return nil
}
