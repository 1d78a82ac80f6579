package event

import (
	"context"

	domain "playerhub/internal/domain/event"
)

// Store persists the ordered match schedule.
type Store interface {
	// List returns all events in stored order. Never returns nil.
	List(ctx context.Context) ([]domain.Event, error)
	// ReplaceAll swaps the whole schedule for the given one, preserving
	// caller-assigned IDs and input order.
	ReplaceAll(ctx context.Context, events []domain.Event) ([]domain.Event, error)
}
