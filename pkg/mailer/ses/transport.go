// Package ses implements mailer.Transport on Amazon SES.
//
// Messages are rendered to raw MIME with go-mail and posted with SendRawEmail,
// which is the only SES call that supports attachments.
package ses

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/aws/smithy-go"

	"github.com/dmitrymomot/outreach/pkg/mailer"
)

var (
	// ErrInvalidConfig indicates the AWS configuration could not be loaded.
	ErrInvalidConfig = errors.New("ses: invalid configuration")

	// ErrQuotaExhausted indicates the account has used its 24 hour sending quota.
	ErrQuotaExhausted = errors.New("ses: 24 hour sending quota exhausted")
)

// API is the subset of the SES client used by Transport.
type API interface {
	GetSendQuota(ctx context.Context, in *ses.GetSendQuotaInput, optFns ...func(*ses.Options)) (*ses.GetSendQuotaOutput, error)
	SendRawEmail(ctx context.Context, in *ses.SendRawEmailInput, optFns ...func(*ses.Options)) (*ses.SendRawEmailOutput, error)
}

// Transport implements mailer.Transport using Amazon SES.
type Transport struct {
	api              API
	from             string
	configurationSet string
}

// New loads the AWS configuration and creates a transport. From is used for
// emails without a sender.
func New(ctx context.Context, cfg Config, from string) (*Transport, error) {
	opts := []func(*config.LoadOptions) error{
		config.WithRegion(cfg.Region),
	}
	if cfg.Profile != "" {
		opts = append(opts, config.WithSharedConfigProfile(cfg.Profile))
	}
	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		opts = append(opts, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}

	client := ses.NewFromConfig(awsCfg, func(o *ses.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
	})

	t := NewWithAPI(client, from)
	t.configurationSet = cfg.ConfigurationSet
	return t, nil
}

// NewWithAPI creates a transport over an existing SES client.
func NewWithAPI(api API, from string) *Transport {
	return &Transport{api: api, from: from}
}

// Verify checks credentials by reading the send quota and fails when the
// quota is already used up.
func (t *Transport) Verify(ctx context.Context) error {
	out, err := t.api.GetSendQuota(ctx, &ses.GetSendQuotaInput{})
	if err != nil {
		return wrapAPIError(err)
	}
	if out.Max24HourSend > 0 && out.SentLast24Hours >= out.Max24HourSend {
		return ErrQuotaExhausted
	}
	return nil
}

// Send implements mailer.Transport.
func (t *Transport) Send(ctx context.Context, email *mailer.Email) error {
	email = email.WithDefaultSender(t.from)
	if err := email.Validate(); err != nil {
		return err
	}

	raw, err := mailer.RawMessage(email)
	if err != nil {
		return err
	}

	in := &ses.SendRawEmailInput{
		RawMessage:   &types.RawMessage{Data: raw},
		Destinations: email.To,
	}
	if t.configurationSet != "" {
		in.ConfigurationSetName = aws.String(t.configurationSet)
	}

	if _, err := t.api.SendRawEmail(ctx, in); err != nil {
		return wrapAPIError(err)
	}
	return nil
}

// wrapAPIError keeps the SES error code and message, which is what ends up in
// the campaign report.
func wrapAPIError(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return fmt.Errorf("ses: %s: %s", apiErr.ErrorCode(), apiErr.ErrorMessage())
	}
	return fmt.Errorf("ses: %w", err)
}
