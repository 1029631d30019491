package mailer

import (
	"bytes"
	"fmt"

	mail "github.com/wneessen/go-mail"
)

// NewMessage converts email into a go-mail message with a plain text body, an
// optional HTML alternative, custom headers and attachments.
// Email must already be valid.
func NewMessage(email *Email) (*mail.Msg, error) {
	m := mail.NewMsg()

	if err := m.From(email.From); err != nil {
		return nil, fmt.Errorf("invalid sender %q: %w", email.From, err)
	}
	if err := m.To(email.To...); err != nil {
		return nil, fmt.Errorf("invalid recipient: %w", err)
	}
	if email.ReplyTo != "" {
		if err := m.ReplyTo(email.ReplyTo); err != nil {
			return nil, fmt.Errorf("invalid reply-to %q: %w", email.ReplyTo, err)
		}
	}
	m.Subject(email.Subject)
	m.SetDate()
	m.SetMessageID()

	for k, v := range email.Headers {
		m.SetGenHeader(mail.Header(k), v)
	}

	switch {
	case email.Text != "" && email.HTML != "":
		m.SetBodyString(mail.TypeTextPlain, email.Text)
		m.AddAlternativeString(mail.TypeTextHTML, email.HTML)
	case email.HTML != "":
		m.SetBodyString(mail.TypeTextHTML, email.HTML)
	default:
		m.SetBodyString(mail.TypeTextPlain, email.Text)
	}

	for _, a := range email.Attachments {
		var opts []mail.FileOption
		if a.ContentType != "" {
			opts = append(opts, mail.WithFileContentType(mail.ContentType(a.ContentType)))
		}
		if err := m.AttachReader(a.Filename, bytes.NewReader(a.Content), opts...); err != nil {
			return nil, fmt.Errorf("attach %q: %w", a.Filename, err)
		}
	}

	return m, nil
}

// RawMessage renders email as an RFC 5322 message.
func RawMessage(email *Email) ([]byte, error) {
	m, err := NewMessage(email)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("write message: %w", err)
	}
	return buf.Bytes(), nil
}
