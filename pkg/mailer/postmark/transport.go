// Package postmark implements mailer.Transport on top of the Postmark API.
package postmark

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mrz1836/postmark"

	"github.com/dmitrymomot/outreach/pkg/mailer"
)

// ErrInvalidConfig indicates missing Postmark settings.
var ErrInvalidConfig = errors.New("postmark: invalid configuration")

// Transport implements mailer.Transport using Postmark's transactional API.
type Transport struct {
	client *postmark.Client
	config Config
	from   string
}

// New creates a Postmark transport. From is used for emails without a sender.
func New(cfg Config, from string) (*Transport, error) {
	if cfg.ServerToken == "" {
		return nil, fmt.Errorf("%w: server token is required", ErrInvalidConfig)
	}

	client := postmark.NewClient(cfg.ServerToken, cfg.AccountToken)
	if cfg.BaseURL != "" {
		client.BaseURL = strings.TrimSuffix(cfg.BaseURL, "/")
	}

	return &Transport{client: client, config: cfg, from: from}, nil
}

// Verify checks the server token by fetching the current server.
func (t *Transport) Verify(ctx context.Context) error {
	if _, err := t.client.GetCurrentServer(ctx); err != nil {
		return fmt.Errorf("postmark: %w", err)
	}
	return nil
}

// Send implements mailer.Transport.
func (t *Transport) Send(ctx context.Context, email *mailer.Email) error {
	email = email.WithDefaultSender(t.from)
	if err := email.Validate(); err != nil {
		return err
	}

	msg := postmark.Email{
		From:          email.From,
		To:            strings.Join(email.To, ","),
		ReplyTo:       email.ReplyTo,
		Subject:       email.Subject,
		TextBody:      email.Text,
		HTMLBody:      email.HTML,
		Tag:           firstTag(email.Tags),
		Headers:       convertHeaders(email.Headers),
		Attachments:   convertAttachments(email.Attachments),
		MessageStream: t.config.MessageStream,
	}

	resp, err := t.client.SendEmail(ctx, msg)
	if err != nil {
		return fmt.Errorf("postmark: %w", err)
	}
	if resp.ErrorCode > 0 {
		return fmt.Errorf("postmark: %d - %s", resp.ErrorCode, resp.Message)
	}
	return nil
}

func convertHeaders(headers map[string]string) []postmark.Header {
	if len(headers) == 0 {
		return nil
	}
	result := make([]postmark.Header, 0, len(headers))
	for name, value := range headers {
		result = append(result, postmark.Header{Name: name, Value: value})
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}

func convertAttachments(attachments []mailer.Attachment) []postmark.Attachment {
	if len(attachments) == 0 {
		return nil
	}
	result := make([]postmark.Attachment, len(attachments))
	for i, a := range attachments {
		result[i] = postmark.Attachment{
			Name:        a.Filename,
			Content:     base64.StdEncoding.EncodeToString(a.Content),
			ContentType: a.ContentType,
		}
	}
	return result
}

// firstTag returns the alphabetically first tag name; Postmark accepts a single tag.
func firstTag(tags mailer.Tags) string {
	if len(tags) == 0 {
		return ""
	}
	names := make([]string, 0, len(tags))
	for name := range tags {
		names = append(names, name)
	}
	sort.Strings(names)
	return names[0]
}
