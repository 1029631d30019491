package mailer

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogTransport(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	tr := NewLogTransport(slog.New(slog.NewJSONHandler(&buf, nil)), "")

	require.NoError(t, tr.Verify(context.Background()))

	err := tr.Send(context.Background(), &Email{
		To:          []string{"you@example.com"},
		Subject:     "Hi",
		Text:        "Hello",
		Attachments: []Attachment{{Filename: "CV.pdf", Content: []byte("%PDF")}},
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"to":["you@example.com"]`)
	assert.Contains(t, buf.String(), `"from":"outreach@localhost"`)
	assert.Contains(t, buf.String(), `"attachments":["CV.pdf"]`)

	err = tr.Send(context.Background(), &Email{To: []string{"you@example.com"}})
	require.ErrorIs(t, err, ErrNoSubject)
}

func TestLogTransport_ImplementsTransport(t *testing.T) {
	t.Parallel()

	var _ Transport = NewLogTransport(nil, "me@example.com")
}
