package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/outreach/pkg/campaign"
	"github.com/dmitrymomot/outreach/pkg/contacts"
	"github.com/dmitrymomot/outreach/pkg/mailer"
)

// services are the campaign building blocks shared by every command.
type services struct {
	source    contacts.Source
	transport mailer.Transport
	pipeline  *campaign.Pipeline
}

func newServices(ctx context.Context, cfg *Config, log *slog.Logger) (*services, error) {
	source, err := contacts.Open(cfg.ContactsFile)
	if err != nil {
		return nil, fmt.Errorf("contacts: %w", err)
	}

	transport, err := newTransport(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("mail transport: %w", err)
	}

	dispatchOpts := []campaign.DispatcherOption{
		campaign.WithInterval(cfg.SendInterval),
		campaign.WithSender(cfg.Mail.FromName, cfg.Mail.FromEmail),
		campaign.WithLogger(log),
	}
	if cfg.Mail.ReplyTo != "" {
		dispatchOpts = append(dispatchOpts, campaign.WithReplyTo(cfg.Mail.ReplyTo))
	}
	if cfg.Mail.RenderHTML {
		dispatchOpts = append(dispatchOpts, campaign.WithRenderer(mailer.NewRenderer()))
	}

	return &services{
		source:    source,
		transport: transport,
		pipeline: campaign.NewPipeline(source,
			campaign.NewDispatcher(transport, dispatchOpts...),
			campaign.WithPipelineLogger(log),
		),
	}, nil
}

// checkContacts is a readiness check reading the contact file.
func (s *services) checkContacts(ctx context.Context) error {
	_, err := s.source.Rows(ctx)
	return err
}
