package profile

import (
	"context"

	domain "playerhub/internal/domain/profile"
)

// Store persists the singleton player profile.
type Store interface {
	// Get returns the stored profile. The second return is false when no
	// profile has ever been written.
	Get(ctx context.Context) (domain.Profile, bool, error)
	// Replace overwrites the profile wholesale and returns the stored
	// record with server-assigned timestamps.
	Replace(ctx context.Context, value domain.Profile) (domain.Profile, error)
}
