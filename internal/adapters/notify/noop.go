package notify

import (
	"context"
	"log/slog"
)

// NoopSender is a no-op sender for development and testing. It logs sends
// but does not deliver anything.
type NoopSender struct{}

// NewNoopSender creates a new NoopSender.
func NewNoopSender() *NoopSender {
	return &NoopSender{}
}

// Send logs the message but does not deliver it.
func (s *NoopSender) Send(_ context.Context, target string, msg Message) error {
	slog.Info("noop_notify_send", "target", target, "title", msg.Title)
	return nil
}
