package team

import (
	"context"

	domain "playerhub/internal/domain/team"
)

// Store persists the ordered team roster.
type Store interface {
	// List returns all members in stored order. Never returns nil.
	List(ctx context.Context) ([]domain.Member, error)
	// ReplaceAll swaps the whole roster for the given one, preserving
	// caller-assigned IDs and input order.
	ReplaceAll(ctx context.Context, members []domain.Member) ([]domain.Member, error)
}
