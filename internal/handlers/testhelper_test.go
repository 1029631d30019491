package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io/fs"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/outreach/internal"
	"github.com/dmitrymomot/outreach/internal/handlers"
	"github.com/dmitrymomot/outreach/pkg/campaign"
	"github.com/dmitrymomot/outreach/pkg/mailer"
)

var pdfContent = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\ntrailer\n<< /Root 1 0 R >>\n%%EOF\n")

// MockRunner is a mock implementation of handlers.Runner.
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Run(ctx context.Context, req campaign.Request) (*campaign.Result, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*campaign.Result)
	return res, args.Error(1)
}

// MockStatsSource is a mock implementation of handlers.StatsSource.
type MockStatsSource struct {
	mock.Mock
}

func (m *MockStatsSource) Stats(ctx context.Context) (campaign.Stats, error) {
	args := m.Called(ctx)
	return args.Get(0).(campaign.Stats), args.Error(1)
}

// recordingTransport delivers nothing and fails for the addresses in fail.
type recordingTransport struct {
	fail map[string]error
	sent []*mailer.Email
	mu   sync.Mutex
}

func (t *recordingTransport) Verify(context.Context) error { return nil }

func (t *recordingTransport) Send(_ context.Context, e *mailer.Email) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.sent = append(t.sent, e)
	return t.fail[e.To[0]]
}

// staticRows is a campaign.RowSource over fixed rows.
type staticRows []campaign.Row

func (s staticRows) Rows(context.Context) ([]campaign.Row, error) { return s, nil }

func emailRows(addresses ...string) staticRows {
	rows := make(staticRows, 0, len(addresses))
	for _, a := range addresses {
		rows = append(rows, campaign.Row{{Name: "Company", Value: "x"}, {Name: "Email", Value: a}})
	}
	return rows
}

func newApp(h ...internal.Handler) *internal.App {
	return internal.New(
		internal.WithErrorHandler(handlers.ErrorHandler),
		internal.WithNotFoundHandler(handlers.NotFound),
		internal.WithHandlers(h...),
	)
}

type upload struct {
	name    string
	content []byte
}

// multipartRequest builds a POST /send-emails request. A nil file omits the cv part.
func multipartRequest(t *testing.T, fields map[string]string, file *upload) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		part, err := w.CreateFormFile("cv", file.name)
		require.NoError(t, err)
		_, err = part.Write(file.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/send-emails", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func do(app http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// countFiles returns the number of regular files below dir.
func countFiles(t *testing.T, dir string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	require.NoError(t, err)
	return n
}
