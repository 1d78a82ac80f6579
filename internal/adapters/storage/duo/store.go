package duo

import (
	"context"

	domain "playerhub/internal/domain/duo"
)

// Store persists the singleton duo partner.
type Store interface {
	Get(ctx context.Context) (domain.Partner, bool, error)
	Replace(ctx context.Context, value domain.Partner) (domain.Partner, error)
}
