package notify

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/resend/resend-go/v2"
)

// EmailSender delivers notifications via the Resend API. The target is
// the recipient address.
type EmailSender struct {
	client *resend.Client
	from   string
}

// NewEmailSender creates a new EmailSender with the given API key and
// from address.
// PRE: apiKey is a valid Resend API key; from is a valid sender address
// POST: Returns a ready-to-use sender
func NewEmailSender(apiKey, from string) *EmailSender {
	return &EmailSender{
		client: resend.NewClient(apiKey),
		from:   from,
	}
}

// renderHTMLBody renders msg as a simple HTML fragment. Message content
// is data, never markup, so everything is escaped.
func renderHTMLBody(msg Message) string {
	var b strings.Builder
	if msg.Description != "" {
		fmt.Fprintf(&b, "<p>%s</p>", html.EscapeString(msg.Description))
	}
	if len(msg.Fields) > 0 {
		b.WriteString("<ul>")
		for _, f := range msg.Fields {
			fmt.Fprintf(&b, "<li><strong>%s:</strong> %s</li>",
				html.EscapeString(f.Name), html.EscapeString(f.Value))
		}
		b.WriteString("</ul>")
	}
	return b.String()
}

// Send renders msg as a simple HTML email and queues it for delivery.
func (s *EmailSender) Send(ctx context.Context, target string, msg Message) error {
	params := &resend.SendEmailRequest{
		From:    s.from,
		To:      []string{target},
		Subject: msg.Title,
		Html:    renderHTMLBody(msg),
	}

	sent, err := s.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		slog.Error("notify_email_failed", "error", err, "to", target)
		return fmt.Errorf("email send failed: %w", err)
	}

	slog.Info("notify_email_sent", "message_id", sent.Id, "to", target)
	return nil
}
