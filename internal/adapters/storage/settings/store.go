package settings

import (
	"context"

	domain "playerhub/internal/domain/settings"
)

// Store persists the singleton site settings.
type Store interface {
	Get(ctx context.Context) (domain.Settings, bool, error)
	Replace(ctx context.Context, value domain.Settings) (domain.Settings, error)
}
