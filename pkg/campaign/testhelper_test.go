package campaign

import (
	"bytes"
	"context"
	"io"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/outreach/pkg/mailer"
)

// MockTransport is a mock implementation of mailer.Transport.
type MockTransport struct {
	mock.Mock
}

func (m *MockTransport) Verify(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockTransport) Send(ctx context.Context, email *mailer.Email) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// staticRows is a RowSource returning fixed rows or an error.
type staticRows struct {
	err   error
	rows  []Row
	calls int
	mu    sync.Mutex
}

func (s *staticRows) Rows(context.Context) ([]Row, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	return s.rows, s.err
}

func emailRows(addresses ...string) []Row {
	rows := make([]Row, 0, len(addresses))
	for _, a := range addresses {
		rows = append(rows, Row{{Name: "Name", Value: "x"}, {Name: "Email", Value: a}})
	}
	return rows
}

// memAttachment returns an attachment over content and counts how often it is opened.
func memAttachment(content []byte, opens *int) Attachment {
	var mu sync.Mutex
	return Attachment{
		Filename:    "CV.pdf",
		ContentType: "application/pdf",
		Open: func(context.Context) (io.ReadCloser, error) {
			mu.Lock()
			defer mu.Unlock()
			if opens != nil {
				*opens++
			}
			return io.NopCloser(bytes.NewReader(content)), nil
		},
	}
}
