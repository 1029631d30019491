package handlers_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/outreach/internal/handlers"
	"github.com/dmitrymomot/outreach/pkg/campaign"
	"github.com/dmitrymomot/outreach/pkg/storage"
)

func validFields() map[string]string {
	return map[string]string{"subject": "Application", "message": "Hello,\nplease find my CV attached."}
}

func newStore(t *testing.T) (*storage.LocalStorage, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocal(dir)
	require.NoError(t, err)
	return store, dir
}

func TestCampaignHandler_Send(t *testing.T) {
	t.Parallel()

	t.Run("runs the campaign and returns the report", func(t *testing.T) {
		t.Parallel()
		store, dir := newStore(t)
		runner := new(MockRunner)
		runner.On("Run", mock.Anything, mock.MatchedBy(func(req campaign.Request) bool {
			return req.Subject == "Application" &&
				req.Message == "Hello,\nplease find my CV attached." &&
				req.Attachment.Filename == "Resume.pdf" &&
				req.Attachment.ContentType == "application/pdf"
		})).Run(func(args mock.Arguments) {
			ctx := args.Get(0).(context.Context)
			assert.Nil(t, ctx.Done(), "campaign context must not be cancellable by the client")

			req := args.Get(1).(campaign.Request)
			rc, err := req.Attachment.Open(ctx)
			require.NoError(t, err)
			defer rc.Close()
			content, err := io.ReadAll(rc)
			require.NoError(t, err)
			assert.Equal(t, pdfContent, content)
			assert.Equal(t, 1, countFiles(t, dir))
		}).Return(&campaign.Result{
			ID: "c-1",
			Report: campaign.Report{
				Total:  3,
				Sent:   2,
				Failed: 1,
				Errors: []campaign.SendFailure{{Address: "bad@example.com", Reason: "mailbox unavailable"}},
			},
		}, nil).Once()

		app := newApp(handlers.NewCampaignHandler(runner, store, handlers.WithAttachmentName("Resume.pdf")))
		rec := do(app, multipartRequest(t, validFields(), &upload{name: "cv.pdf", content: pdfContent}))

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		body := decode(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "c-1", body["id"])
		assert.EqualValues(t, 2, body["sent"])
		assert.EqualValues(t, 1, body["failed"])
		assert.EqualValues(t, 3, body["total"])
		assert.Equal(t, []any{map[string]any{"email": "bad@example.com", "error": "mailbox unavailable"}}, body["errors"])

		assert.Equal(t, 0, countFiles(t, dir), "upload must be deleted")
		runner.AssertExpectations(t)
	})

	t.Run("omits errors when every send succeeded", func(t *testing.T) {
		t.Parallel()
		store, _ := newStore(t)
		runner := new(MockRunner)
		runner.On("Run", mock.Anything, mock.Anything).
			Return(&campaign.Result{ID: "c-2", Report: campaign.Report{Total: 1, Sent: 1}}, nil).Once()

		rec := do(newApp(handlers.NewCampaignHandler(runner, store)),
			multipartRequest(t, validFields(), &upload{name: "cv.pdf", content: pdfContent}))

		require.Equal(t, http.StatusOK, rec.Code)
		assert.NotContains(t, decode(t, rec), "errors")
	})

	rejections := []struct {
		name    string
		fields  map[string]string
		file    *upload
		message string
	}{
		{
			name:    "missing subject",
			fields:  map[string]string{"message": "body"},
			file:    &upload{name: "cv.pdf", content: pdfContent},
			message: "Subject and message are required",
		},
		{
			name:    "missing message",
			fields:  map[string]string{"subject": "s"},
			file:    &upload{name: "cv.pdf", content: pdfContent},
			message: "Subject and message are required",
		},
		{
			name:    "missing file",
			fields:  validFields(),
			message: "CV file is required",
		},
		{
			name:    "empty file",
			fields:  validFields(),
			file:    &upload{name: "cv.pdf"},
			message: "CV file is required",
		},
		{
			name:    "not a pdf",
			fields:  validFields(),
			file:    &upload{name: "cv.pdf", content: []byte("just some text pretending to be a pdf")},
			message: "Only PDF files are allowed!",
		},
		{
			name:    "over the size limit",
			fields:  validFields(),
			file:    &upload{name: "cv.pdf", content: append(bytes.Clone(pdfContent), make([]byte, 1<<20)...)},
			message: "File too large. Maximum size is 1MB.",
		},
		{
			name:    "body far over the size limit",
			fields:  validFields(),
			file:    &upload{name: "cv.pdf", content: append(bytes.Clone(pdfContent), make([]byte, 3<<20)...)},
			message: "File too large. Maximum size is 1MB.",
		},
	}
	for _, tt := range rejections {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			t.Parallel()
			store, dir := newStore(t)
			runner := new(MockRunner)

			app := newApp(handlers.NewCampaignHandler(runner, store, handlers.WithMaxUploadBytes(1<<20)))
			rec := do(app, multipartRequest(t, tt.fields, tt.file))

			require.Equal(t, http.StatusBadRequest, rec.Code, rec.Body.String())
			assert.Equal(t, map[string]any{"success": false, "message": tt.message}, decode(t, rec))
			runner.AssertNotCalled(t, "Run", mock.Anything, mock.Anything)
			assert.Equal(t, 0, countFiles(t, dir))
		})
	}

	t.Run("no valid recipients", func(t *testing.T) {
		t.Parallel()
		store, dir := newStore(t)
		runner := new(MockRunner)
		runner.On("Run", mock.Anything, mock.Anything).Return(nil, campaign.ErrNoRecipients).Once()

		rec := do(newApp(handlers.NewCampaignHandler(runner, store)),
			multipartRequest(t, validFields(), &upload{name: "cv.pdf", content: pdfContent}))

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "No valid emails found in Excel file", decode(t, rec)["message"])
		assert.Equal(t, 0, countFiles(t, dir))
	})

	t.Run("transport unavailable", func(t *testing.T) {
		t.Parallel()
		store, dir := newStore(t)
		runner := new(MockRunner)
		runner.On("Run", mock.Anything, mock.Anything).
			Return(nil, errors.Join(campaign.ErrTransportUnavailable, errors.New("535 authentication failed"))).Once()

		rec := do(newApp(handlers.NewCampaignHandler(runner, store)),
			multipartRequest(t, validFields(), &upload{name: "cv.pdf", content: pdfContent}))

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decode(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "campaign: mail transport unavailable: 535 authentication failed", body["message"])
		assert.Equal(t, 0, countFiles(t, dir))
	})
}

func TestCampaignHandler_WithPipeline(t *testing.T) {
	t.Parallel()

	store, dir := newStore(t)
	transport := &recordingTransport{fail: map[string]error{"b@example.com": errors.New("550 no such user")}}
	pipeline := campaign.NewPipeline(
		emailRows("a@example.com", "not-an-address", "b@example.com", "c@example.com"),
		campaign.NewDispatcher(transport, campaign.WithInterval(0), campaign.WithSender("Sender", "me@example.com")),
		campaign.WithIDGenerator(func() string { return "fixed" }),
	)

	rec := do(newApp(handlers.NewCampaignHandler(pipeline, store)),
		multipartRequest(t, validFields(), &upload{name: "mine.pdf", content: pdfContent}))

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, "fixed", body["id"])
	assert.EqualValues(t, 3, body["total"])
	assert.EqualValues(t, 2, body["sent"])
	assert.EqualValues(t, 1, body["failed"])
	assert.Equal(t, []any{map[string]any{"email": "b@example.com", "error": "550 no such user"}}, body["errors"])

	require.Len(t, transport.sent, 3)
	for _, e := range transport.sent {
		require.Len(t, e.Attachments, 1)
		assert.Equal(t, "CV.pdf", e.Attachments[0].Filename)
		assert.Equal(t, pdfContent, e.Attachments[0].Content)
		assert.Equal(t, "Application", e.Subject)
	}
	assert.Equal(t, 0, countFiles(t, dir))
}
