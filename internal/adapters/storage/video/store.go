package video

import (
	"context"

	domain "playerhub/internal/domain/video"
)

// Store persists the ordered highlight list.
type Store interface {
	// List returns all highlights in stored order. Never returns nil.
	List(ctx context.Context) ([]domain.Highlight, error)
	// ReplaceAll swaps the whole list for the given one, preserving
	// caller-assigned IDs and input order.
	ReplaceAll(ctx context.Context, videos []domain.Highlight) ([]domain.Highlight, error)
}
