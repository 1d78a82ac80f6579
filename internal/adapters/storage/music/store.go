package music

import (
	"context"

	domain "playerhub/internal/domain/music"
)

// Store persists the singleton background-music track.
type Store interface {
	Get(ctx context.Context) (domain.Track, bool, error)
	Replace(ctx context.Context, value domain.Track) (domain.Track, error)
}
