package mailer

import (
	"context"
	"log/slog"
)

// LogTransport logs emails instead of delivering them.
// Use it in development or for dry runs.
type LogTransport struct {
	logger *slog.Logger
	from   string
}

// NewLogTransport creates a transport writing to l. From is used for emails
// without a sender.
func NewLogTransport(l *slog.Logger, from string) *LogTransport {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	if from == "" {
		from = "outreach@localhost"
	}
	return &LogTransport{logger: l, from: from}
}

// Verify always succeeds.
func (t *LogTransport) Verify(context.Context) error { return nil }

// Send validates email and logs its envelope.
func (t *LogTransport) Send(ctx context.Context, email *Email) error {
	email = email.WithDefaultSender(t.from)
	if err := email.Validate(); err != nil {
		return err
	}

	attachments := make([]string, 0, len(email.Attachments))
	for _, a := range email.Attachments {
		attachments = append(attachments, a.Filename)
	}

	t.logger.InfoContext(ctx, "email not delivered (log transport)",
		slog.String("from", email.From),
		slog.Any("to", email.To),
		slog.String("subject", email.Subject),
		slog.Int("text_bytes", len(email.Text)),
		slog.Int("html_bytes", len(email.HTML)),
		slog.Any("attachments", attachments),
	)
	return nil
}
