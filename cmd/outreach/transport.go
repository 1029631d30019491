package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/outreach/pkg/mailer"
	"github.com/dmitrymomot/outreach/pkg/mailer/postmark"
	"github.com/dmitrymomot/outreach/pkg/mailer/resend"
	"github.com/dmitrymomot/outreach/pkg/mailer/ses"
	"github.com/dmitrymomot/outreach/pkg/mailer/smtp"
)

// newTransport builds the mail transport selected by cfg.Mail.Provider.
func newTransport(ctx context.Context, cfg *Config, log *slog.Logger) (mailer.Transport, error) {
	from := cfg.Mail.From()

	switch cfg.Mail.Provider {
	case mailer.ProviderSMTP, "":
		return smtp.New(cfg.SMTP, from)
	case mailer.ProviderResend:
		return resend.New(cfg.Resend, from)
	case mailer.ProviderPostmark:
		return postmark.New(cfg.Postmark, from)
	case mailer.ProviderSES:
		return ses.New(ctx, cfg.SES, from)
	case mailer.ProviderLog:
		return mailer.NewLogTransport(log, from), nil
	default:
		return nil, fmt.Errorf("%w: %q", mailer.ErrUnknownProvider, cfg.Mail.Provider)
	}
}
