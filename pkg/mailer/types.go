package mailer

import "net/mail"

// Tags represents email tags/categories that can be either presence-only
// (using struct{}{}) or key-value pairs (using string values).
//   - Postmark: uses the first tag name only
//   - Resend: uses name-value pairs (presence-only tags become name="true")
type Tags map[string]any

// SimpleTags creates presence-only tags from a list of tag names.
func SimpleTags(names ...string) Tags {
	t := make(Tags, len(names))
	for _, n := range names {
		t[n] = struct{}{}
	}
	return t
}

// Recipient formats a name and email into RFC 5322 address format.
// Returns `"Name" <email>` if name is provided, otherwise just email.
// The name is quoted, or Q-encoded when it is not ASCII.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return (&mail.Address{Name: name, Address: email}).String()
}

// Email represents a fully-prepared email message ready for sending.
type Email struct {
	Headers     map[string]string // Custom headers
	Tags        Tags              // Provider-specific tags/categories
	Subject     string            // Email subject
	HTML        string            // Optional HTML alternative
	Text        string            // Plain text body
	From        string            // Sender; transports fall back to their configured address
	ReplyTo     string            // Reply-to address
	To          []string          // Recipients (at least one required)
	Attachments []Attachment      // File attachments
}

// Attachment represents an email attachment.
type Attachment struct {
	Filename    string // Display name for the attachment
	ContentType string // MIME type (e.g., "application/pdf")
	Content     []byte // Raw file content
}

// Validate checks the fields every transport needs.
func (e *Email) Validate() error {
	switch {
	case len(e.To) == 0:
		return ErrNoRecipient
	case e.From == "":
		return ErrNoSender
	case e.Subject == "":
		return ErrNoSubject
	case e.Text == "" && e.HTML == "":
		return ErrNoContent
	}
	return nil
}

// WithDefaultSender returns e unchanged when it has a From address, otherwise
// a shallow copy using from.
func (e *Email) WithDefaultSender(from string) *Email {
	if e.From != "" {
		return e
	}
	cp := *e
	cp.From = from
	return &cp
}
