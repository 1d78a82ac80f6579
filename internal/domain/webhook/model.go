package webhook

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Backup is a point-in-time snapshot of the configured URL, stored inside
// the webhook record itself.
type Backup struct {
	URL       string `json:"url"`
	Timestamp int64  `json:"timestamp"` // unix milliseconds
	Created   string `json:"created"`   // RFC 3339
}

// Config is one webhook configuration row. Only one row may be active;
// activating a new URL deactivates the others but does not delete them.
type Config struct {
	ID           string    `json:"id"`
	URL          string    `json:"url"`
	IsActive     bool      `json:"isActive"`
	Backup       *Backup   `json:"backupData,omitempty"`
	RecoveryCode string    `json:"recoveryCode,omitempty"`
	ConfigExport string    `json:"configExport,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// NewBackup snapshots the given URL at the given time.
func NewBackup(url string, now time.Time) *Backup {
	return &Backup{
		URL:       url,
		Timestamp: now.UnixMilli(),
		Created:   now.UTC().Format(time.RFC3339),
	}
}

// recoveryCodeBytes gives 26 hex characters, matching the length of the
// original hand-rolled token without being predictable.
const recoveryCodeBytes = 13

// NewRecoveryCode returns a random opaque recovery token. The token has no
// relationship to the webhook URL; recovery is a stored-secret comparison,
// never a decoding of the token.
func NewRecoveryCode() (string, error) {
	buf := make([]byte, recoveryCodeBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generating recovery code: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// ExportBlob is the portable serialization of a webhook configuration,
// transferred manually as a single base64 string.
type ExportBlob struct {
	URL          string  `json:"webhookUrl"`
	Backup       *Backup `json:"backup,omitempty"`
	RecoveryCode string  `json:"recoveryCode,omitempty"`
	ExportedAt   string  `json:"exported"`
	Timestamp    int64   `json:"timestamp"`
}

var ErrInvalidExport = errors.New("invalid configuration export")

// Export serializes the config's recoverable parts as a base64 blob.
// PRE: c.URL is non-empty
// POST: returns a blob DecodeExport can round-trip
func (c Config) Export(now time.Time) (string, error) {
	if c.URL == "" {
		return "", errors.New("cannot export an unconfigured webhook")
	}
	blob := ExportBlob{
		URL:          c.URL,
		Backup:       c.Backup,
		RecoveryCode: c.RecoveryCode,
		ExportedAt:   now.UTC().Format(time.RFC3339),
		Timestamp:    now.UnixMilli(),
	}
	raw, err := json.Marshal(blob)
	if err != nil {
		return "", fmt.Errorf("encoding export: %w", err)
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeExport parses a blob produced by Export.
// POST: returns ErrInvalidExport for anything that is not a valid blob
// with a URL
func DecodeExport(data string) (ExportBlob, error) {
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return ExportBlob{}, ErrInvalidExport
	}
	var blob ExportBlob
	if err := json.Unmarshal(raw, &blob); err != nil {
		return ExportBlob{}, ErrInvalidExport
	}
	if blob.URL == "" {
		return ExportBlob{}, ErrInvalidExport
	}
	return blob, nil
}
