package smtp_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/outreach/pkg/mailer"
	"github.com/dmitrymomot/outreach/pkg/mailer/smtp"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  smtp.Config
	}{
		{name: "missing host", cfg: smtp.Config{Port: 587}},
		{name: "bad port", cfg: smtp.Config{Host: "smtp.example.com", Port: 70000}},
		{name: "bad tls mode", cfg: smtp.Config{Host: "smtp.example.com", Port: 587, TLSMode: "ssl3"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := smtp.New(tt.cfg, "")
			require.ErrorIs(t, err, smtp.ErrInvalidConfig)
		})
	}
}

func TestNew_Modes(t *testing.T) {
	t.Parallel()

	for _, mode := range []string{"", smtp.TLSModeSTARTTLS, smtp.TLSModeTLS, smtp.TLSModePlain} {
		tr, err := smtp.New(smtp.Config{Host: "smtp.example.com", Port: 587, TLSMode: mode, Username: "me@example.com"}, "")
		require.NoError(t, err, mode)
		assert.NotNil(t, tr)
	}
}

func TestTransport_Send_InvalidEmail(t *testing.T) {
	t.Parallel()

	tr, err := smtp.New(smtp.Config{Host: "smtp.example.com", Port: 587}, "")
	require.NoError(t, err)

	// No username and no explicit sender, so there is no From address.
	err = tr.Send(context.Background(), &mailer.Email{To: []string{"a@example.com"}, Subject: "s", Text: "t"})
	require.ErrorIs(t, err, mailer.ErrNoSender)
}

func TestTransport_Verify_Unreachable(t *testing.T) {
	t.Parallel()

	// Reserve a port and close it so the dial is refused.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	tr, err := smtp.New(smtp.Config{
		Host:    "127.0.0.1",
		Port:    port,
		TLSMode: smtp.TLSModePlain,
		Timeout: time.Second,
	}, "me@example.com")
	require.NoError(t, err)

	err = tr.Verify(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "smtp:")
}

func TestTransport_ImplementsTransport(t *testing.T) {
	t.Parallel()

	tr, err := smtp.New(smtp.Config{Host: "smtp.example.com", Port: 587}, "me@example.com")
	require.NoError(t, err)
	var _ mailer.Transport = tr
}
