package gallery

import (
	"context"

	domain "playerhub/internal/domain/gallery"
)

// Store persists the ordered gallery.
type Store interface {
	// List returns all images in stored order. Never returns nil.
	List(ctx context.Context) ([]domain.Image, error)
	// ReplaceAll swaps the whole gallery for the given one, preserving
	// caller-assigned IDs and input order.
	ReplaceAll(ctx context.Context, images []domain.Image) ([]domain.Image, error)
}
