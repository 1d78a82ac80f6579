// Package notify delivers admin notifications through outbound channels:
// a chat webhook (the primary channel for credential delivery) and email.
package notify

import "context"

// Field is one label/value pair rendered inside a message.
type Field struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Inline bool   `json:"inline"`
}

// Message is a channel-agnostic notification. Senders decide how to
// render it for their transport.
type Message struct {
	Title       string
	Description string
	Color       int // 24-bit RGB, e.g. 0x00ff88
	Fields      []Field
	Timestamp   string // RFC 3339; empty means "now"
}

// Sender delivers a message to a target. The meaning of target is
// channel-specific: a webhook URL for chat, an address for email.
type Sender interface {
	Send(ctx context.Context, target string, msg Message) error
}
