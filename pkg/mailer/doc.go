// Package mailer defines the email model and the Transport interface used to
// deliver campaign messages, plus the pieces shared by every provider.
//
// # Transports
//
// A Transport has two operations: Verify checks that the provider accepts the
// configured credentials without sending anything, and Send delivers one Email.
// Providers live in subpackages:
//
//   - smtp: any SMTP server (Gmail by default) through go-mail
//   - resend: the Resend HTTP API
//   - postmark: the Postmark HTTP API
//   - ses: Amazon SES, raw MIME via SendRawEmail
//
// LogTransport in this package logs messages instead of sending them and is
// handy for local development.
//
// Every transport falls back to its configured sender when Email.From is empty
// and validates the email with Email.Validate before talking to the provider.
//
// # Message body
//
// Text is the message exactly as the user typed it. Renderer can produce an
// optional HTML alternative by treating the text as Markdown:
//
//	r := mailer.NewRenderer()
//	html, err := r.Render("Hello **team**,\n\nplease find my CV attached.")
//
// The output is sanitized; raw HTML in the input is dropped. There is no
// template language and nothing is substituted.
//
// # MIME
//
// NewMessage and RawMessage build RFC 5322 messages with go-mail. The SMTP and
// SES transports use them; the HTTP API transports send structured JSON instead.
package mailer
