package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// ChatWebhookSender posts messages as rich embeds to a chat webhook URL.
type ChatWebhookSender struct {
	client *http.Client
}

// NewChatWebhookSender creates a sender with a sane request timeout.
func NewChatWebhookSender() *ChatWebhookSender {
	return &ChatWebhookSender{
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

type embed struct {
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description,omitempty"`
	Color       int     `json:"color,omitempty"`
	Fields      []Field `json:"fields,omitempty"`
	Timestamp   string  `json:"timestamp,omitempty"`
}

type webhookPayload struct {
	Embeds []embed `json:"embeds"`
}

// Send posts msg to the webhook at target.
// PRE: target is a webhook URL
// POST: returns an error on any non-2xx response; the message is not retried
func (s *ChatWebhookSender) Send(ctx context.Context, target string, msg Message) error {
	ts := msg.Timestamp
	if ts == "" {
		ts = time.Now().UTC().Format(time.RFC3339)
	}
	payload := webhookPayload{Embeds: []embed{{
		Title:       msg.Title,
		Description: msg.Description,
		Color:       msg.Color,
		Fields:      msg.Fields,
		Timestamp:   ts,
	}}}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encoding webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("building webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		slog.Error("webhook_send_failed", "error", err)
		return fmt.Errorf("webhook send failed: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		slog.Error("webhook_rejected", "status", resp.StatusCode)
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	slog.Info("webhook_sent", "title", msg.Title, "status", resp.StatusCode)
	return nil
}
