package postmark

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/outreach/pkg/mailer"
)

type fakeAPI struct {
	body    map[string]any
	sendRes string
	mu      sync.Mutex
}

func (f *fakeAPI) server(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /server", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-Postmark-Server-Token") != "server-token" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"ErrorCode":10,"Message":"Bad or missing Server API token."}`))
			return
		}
		_, _ = w.Write([]byte(`{"ID":1,"Name":"outreach"}`))
	})
	mux.HandleFunc("POST /email", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		_ = json.NewDecoder(r.Body).Decode(&f.body)
		res := f.sendRes
		f.mu.Unlock()
		_, _ = w.Write([]byte(res))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestTransport_Send(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{sendRes: `{"To":"hr@example.org","MessageID":"abc","ErrorCode":0,"Message":"OK"}`}
	srv := api.server(t)

	tr, err := New(Config{ServerToken: "server-token", MessageStream: "outbound", BaseURL: srv.URL}, "jane@example.com")
	require.NoError(t, err)
	require.NoError(t, tr.Verify(context.Background()))

	err = tr.Send(context.Background(), &mailer.Email{
		To:      []string{"hr@example.org"},
		Subject: "Application",
		Text:    "Hello",
		Headers: map[string]string{"X-Campaign-ID": "cmp-1"},
		Tags:    mailer.Tags{"campaign": "cmp-1"},
		Attachments: []mailer.Attachment{{
			Filename:    "CV.pdf",
			ContentType: "application/pdf",
			Content:     []byte("%PDF"),
		}},
	})
	require.NoError(t, err)

	api.mu.Lock()
	defer api.mu.Unlock()
	assert.Equal(t, "jane@example.com", api.body["From"])
	assert.Equal(t, "hr@example.org", api.body["To"])
	assert.Equal(t, "campaign", api.body["Tag"])
	assert.Equal(t, "outbound", api.body["MessageStream"])
	attachments, ok := api.body["Attachments"].([]any)
	require.True(t, ok)
	require.Len(t, attachments, 1)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte("%PDF")), attachments[0].(map[string]any)["Content"])
}

func TestTransport_Send_ErrorCode(t *testing.T) {
	t.Parallel()

	api := &fakeAPI{sendRes: `{"ErrorCode":406,"Message":"You tried to send to a recipient that has been marked as inactive."}`}
	srv := api.server(t)

	tr, err := New(Config{ServerToken: "server-token", BaseURL: srv.URL}, "jane@example.com")
	require.NoError(t, err)

	err = tr.Send(context.Background(), &mailer.Email{To: []string{"gone@example.org"}, Subject: "s", Text: "t"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "406")
	assert.Contains(t, err.Error(), "inactive")
}

func TestNew_RequiresServerToken(t *testing.T) {
	t.Parallel()

	_, err := New(Config{}, "jane@example.com")
	require.ErrorIs(t, err, ErrInvalidConfig)
}

func TestFirstTag(t *testing.T) {
	t.Parallel()

	assert.Empty(t, firstTag(nil))
	assert.Equal(t, "a", firstTag(mailer.SimpleTags("b", "a")))
}
