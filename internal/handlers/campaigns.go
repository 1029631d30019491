package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dmitrymomot/outreach/internal"
	"github.com/dmitrymomot/outreach/pkg/campaign"
	"github.com/dmitrymomot/outreach/pkg/storage"
)

const (
	// DefaultMaxUploadBytes is the attachment size ceiling.
	DefaultMaxUploadBytes int64 = 5 << 20

	// multipartOverhead is allowed on top of the attachment for the text fields
	// and part headers.
	multipartOverhead int64 = 1 << 20
	multipartMemory   int64 = 8 << 20

	uploadPrefix          = "attachments"
	defaultAttachmentName = "CV.pdf"
)

// Runner executes a campaign.
type Runner interface {
	Run(ctx context.Context, req campaign.Request) (*campaign.Result, error)
}

// CampaignHandler accepts a campaign request, stores the uploaded attachment
// for its duration and answers with the report.
type CampaignHandler struct {
	runner         Runner
	store          storage.Storage
	attachmentName string
	maxUploadBytes int64
}

// CampaignOption configures a CampaignHandler.
type CampaignOption func(*CampaignHandler)

// WithAttachmentName sets the file name recipients see.
func WithAttachmentName(name string) CampaignOption {
	return func(h *CampaignHandler) {
		if name != "" {
			h.attachmentName = name
		}
	}
}

// WithMaxUploadBytes sets the attachment size ceiling.
func WithMaxUploadBytes(n int64) CampaignOption {
	return func(h *CampaignHandler) {
		if n > 0 {
			h.maxUploadBytes = n
		}
	}
}

// NewCampaignHandler creates a campaign handler.
func NewCampaignHandler(runner Runner, store storage.Storage, opts ...CampaignOption) *CampaignHandler {
	h := &CampaignHandler{
		runner:         runner,
		store:          store,
		attachmentName: defaultAttachmentName,
		maxUploadBytes: DefaultMaxUploadBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes implements internal.Handler.
func (h *CampaignHandler) Routes(r internal.Router) {
	r.POST("/send-emails", h.send)
}

type sendResponse struct {
	Success bool                   `json:"success"`
	ID      string                 `json:"id"`
	Sent    int                    `json:"sent"`
	Failed  int                    `json:"failed"`
	Total   int                    `json:"total"`
	Errors  []campaign.SendFailure `json:"errors,omitempty"`
}

func (h *CampaignHandler) send(c internal.Context) error {
	r := c.Request()
	r.Body = http.MaxBytesReader(c.Response(), r.Body, h.maxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(multipartMemory); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return internal.ErrBadRequest(h.tooLargeMessage(), internal.WithError(err))
		}
		return internal.ErrBadRequest(msgInvalidForm, internal.WithError(err))
	}

	subject, message := c.Form("subject"), c.Form("message")
	if subject == "" || message == "" {
		return internal.ErrBadRequest(msgSubjectRequired)
	}

	_, fh, err := c.FormFile("cv")
	if err != nil {
		return internal.ErrBadRequest(msgFileRequired, internal.WithError(err))
	}

	info, err := storage.PutFile(c, h.store, fh,
		storage.WithPrefix(uploadPrefix),
		storage.WithValidation(
			storage.NotEmpty(),
			storage.MaxSize(h.maxUploadBytes),
			storage.PDFOnly(),
		),
	)
	if err != nil {
		return h.uploadError(err)
	}

	// The campaign outlives a closed browser tab; the upload never outlives
	// the campaign.
	ctx := context.WithoutCancel(c)
	defer func() {
		if err := h.store.Delete(ctx, info.Key); err != nil {
			c.LogWarn("upload cleanup failed", slog.String("key", info.Key), slog.String("error", err.Error()))
		}
	}()

	result, err := h.runner.Run(ctx, campaign.Request{
		Subject: subject,
		Message: message,
		Attachment: campaign.Attachment{
			Filename:    h.attachmentName,
			ContentType: info.ContentType,
			Open: func(ctx context.Context) (io.ReadCloser, error) {
				return h.store.Get(ctx, info.Key)
			},
		},
	})
	if err != nil {
		return campaignError(err)
	}

	return c.JSON(http.StatusOK, sendResponse{
		Success: true,
		ID:      result.ID,
		Sent:    result.Report.Sent,
		Failed:  result.Report.Failed,
		Total:   result.Report.Total,
		Errors:  result.Report.Errors,
	})
}

func (h *CampaignHandler) uploadError(err error) error {
	switch {
	case errors.Is(err, storage.ErrEmptyFile):
		return internal.ErrBadRequest(msgFileRequired, internal.WithError(err))
	case errors.Is(err, storage.ErrFileTooLarge):
		return internal.ErrBadRequest(h.tooLargeMessage(), internal.WithError(err))
	case errors.Is(err, storage.ErrInvalidMIME):
		return internal.ErrBadRequest(msgPDFOnly, internal.WithError(err))
	default:
		return internal.ErrInternal(errorMessage(err), internal.WithError(err))
	}
}

func (h *CampaignHandler) tooLargeMessage() string {
	return fmt.Sprintf("File too large. Maximum size is %s.", sizeLabel(h.maxUploadBytes))
}

func campaignError(err error) error {
	switch {
	case errors.Is(err, campaign.ErrNoRecipients):
		return internal.ErrBadRequest(msgNoRecipients, internal.WithError(err))
	case errors.Is(err, campaign.ErrEmptySubject), errors.Is(err, campaign.ErrEmptyBody):
		return internal.ErrBadRequest(msgSubjectRequired, internal.WithError(err))
	default:
		return internal.ErrInternal(errorMessage(err), internal.WithError(err))
	}
}

// errorMessage flattens joined errors onto one line.
func errorMessage(err error) string {
	return strings.ReplaceAll(err.Error(), "\n", ": ")
}

func sizeLabel(n int64) string {
	const mb = 1 << 20
	if n >= mb && n%mb == 0 {
		return fmt.Sprintf("%dMB", n/mb)
	}
	return fmt.Sprintf("%d bytes", n)
}
