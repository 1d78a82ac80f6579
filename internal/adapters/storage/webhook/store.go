package webhook

import (
	"context"

	domain "playerhub/internal/domain/webhook"
)

// Store persists webhook configurations. At most one row is active.
type Store interface {
	// GetActive returns the active config, if any.
	GetActive(ctx context.Context) (domain.Config, bool, error)
	// List returns all configs, active first, then newest first.
	List(ctx context.Context) ([]domain.Config, error)
	// Activate inserts cfg as the active config after deactivating all
	// others. Deactivated rows are kept.
	Activate(ctx context.Context, cfg domain.Config) (domain.Config, error)
	// Update applies a partial update to the config with the given id.
	// Returns ok=false when no such config exists.
	Update(ctx context.Context, id string, patch domain.Patch) (domain.Config, bool, error)
	// FindByRecoveryCode returns the config holding the given code.
	FindByRecoveryCode(ctx context.Context, code string) (domain.Config, bool, error)
	// DeleteAll removes every config.
	DeleteAll(ctx context.Context) error
}
