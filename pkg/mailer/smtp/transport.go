// Package smtp implements mailer.Transport over SMTP using go-mail.
//
// A new connection is opened for every Verify and Send call, so a Transport
// holds no connection state and can be shared between concurrent campaigns.
package smtp

import (
	"context"
	"fmt"

	mail "github.com/wneessen/go-mail"

	"github.com/dmitrymomot/outreach/pkg/mailer"
)

// Transport implements mailer.Transport over SMTP.
type Transport struct {
	config Config
	from   string
	opts   []mail.Option
}

// New creates an SMTP transport. From is used for emails without a sender and
// defaults to the SMTP username.
func New(cfg Config, from string) (*Transport, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidConfig)
	}
	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("%w: port must be between 1 and 65535", ErrInvalidConfig)
	}

	// TLS policy options set a default port, so they go before WithPort.
	var opts []mail.Option
	switch cfg.TLSMode {
	case TLSModeSTARTTLS, "":
		opts = append(opts, mail.WithTLSPortPolicy(mail.TLSMandatory))
	case TLSModeTLS:
		opts = append(opts, mail.WithSSLPort(false))
	case TLSModePlain:
		opts = append(opts, mail.WithTLSPortPolicy(mail.NoTLS))
	default:
		return nil, fmt.Errorf("%w: tls mode must be starttls, tls or plain", ErrInvalidConfig)
	}
	opts = append(opts, mail.WithPort(cfg.Port))

	if cfg.Username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(cfg.Username),
			mail.WithPassword(cfg.Password),
		)
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}

	if from == "" {
		from = cfg.Username
	}

	return &Transport{config: cfg, from: from, opts: opts}, nil
}

// Verify connects and authenticates without sending anything.
func (t *Transport) Verify(ctx context.Context) error {
	client, err := t.client()
	if err != nil {
		return err
	}
	if err := client.DialWithContext(ctx); err != nil {
		return fmt.Errorf("smtp: %w", err)
	}
	return client.Close()
}

// Send delivers email over a fresh connection.
func (t *Transport) Send(ctx context.Context, email *mailer.Email) error {
	email = email.WithDefaultSender(t.from)
	if err := email.Validate(); err != nil {
		return err
	}

	msg, err := mailer.NewMessage(email)
	if err != nil {
		return err
	}

	client, err := t.client()
	if err != nil {
		return err
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp: %w", err)
	}
	return nil
}

func (t *Transport) client() (*mail.Client, error) {
	client, err := mail.NewClient(t.config.Host, t.opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return client, nil
}
