package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/outreach/internal"
	"github.com/dmitrymomot/outreach/internal/views"
	"github.com/dmitrymomot/outreach/pkg/cache"
	"github.com/dmitrymomot/outreach/pkg/campaign"
)

const statsCacheKey = "contacts:stats"

// StatsSource counts the recipients of the contact source.
type StatsSource interface {
	Stats(ctx context.Context) (campaign.Stats, error)
}

// StatsHandler serves the recipient counts and the send form that shows them.
type StatsHandler struct {
	source         StatsSource
	cache          *cache.Memoizer[campaign.Stats]
	fileName       string
	maxUploadBytes int64
}

// StatsOption configures a StatsHandler.
type StatsOption func(*StatsHandler)

// WithStatsCache memoizes the counts. Campaigns never read through this cache.
func WithStatsCache(m *cache.Memoizer[campaign.Stats]) StatsOption {
	return func(h *StatsHandler) {
		h.cache = m
	}
}

// WithFormUploadLimit sets the size ceiling advertised by the send form.
func WithFormUploadLimit(n int64) StatsOption {
	return func(h *StatsHandler) {
		if n > 0 {
			h.maxUploadBytes = n
		}
	}
}

// NewStatsHandler creates a handler reporting on the contact file fileName.
func NewStatsHandler(source StatsSource, fileName string, opts ...StatsOption) *StatsHandler {
	h := &StatsHandler{
		source:         source,
		fileName:       fileName,
		maxUploadBytes: DefaultMaxUploadBytes,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes implements internal.Handler.
func (h *StatsHandler) Routes(r internal.Router) {
	r.GET("/", h.form)
	r.GET("/stats", h.stats)
}

type statsResponse struct {
	ExcelFile   string `json:"excelFile"`
	TotalEmails int    `json:"totalEmails"`
	ValidEmails int    `json:"validEmails"`
	Rows        int    `json:"rows"`
}

// stats answers with the loose recipient count. ?refresh=true drops the cached
// counts first.
func (h *StatsHandler) stats(c internal.Context) error {
	if internal.Query[bool](c, "refresh") && h.cache != nil {
		if err := h.cache.Invalidate(c, statsCacheKey); err != nil {
			c.LogWarn("stats cache invalidation failed", slog.String("error", err.Error()))
		}
	}

	s, err := h.load(c)
	if err != nil {
		return internal.ErrInternal(msgStatsUnavailable, internal.WithError(err))
	}

	return c.JSON(http.StatusOK, statsResponse{
		ExcelFile:   h.fileName,
		TotalEmails: s.Candidates,
		ValidEmails: s.Valid,
		Rows:        s.Rows,
	})
}

// form renders the send form. An unreadable contact file still renders the
// form with an unknown count.
func (h *StatsHandler) form(c internal.Context) error {
	data := views.FormData{
		ContactsFile: h.fileName,
		Recipients:   -1,
		MaxUploadMB:  h.maxUploadBytes >> 20,
	}
	if s, err := h.load(c); err == nil {
		data.Recipients = s.Candidates
	} else {
		c.LogWarn("contact source unavailable", slog.String("error", err.Error()))
	}
	return c.Render(http.StatusOK, views.SendForm(data))
}

func (h *StatsHandler) load(ctx context.Context) (campaign.Stats, error) {
	if h.cache == nil {
		return h.source.Stats(ctx)
	}
	return h.cache.Get(ctx, statsCacheKey, h.source.Stats)
}
