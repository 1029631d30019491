package handlers

import (
	"net/http"
	"time"

	"github.com/dmitrymomot/outreach/internal"
)

// isoTimestamp is RFC 3339 in UTC with millisecond precision.
const isoTimestamp = "2006-01-02T15:04:05.000Z07:00"

// StatusHandler serves GET /health, the liveness answer existing clients poll.
// Probes should prefer /health/live and /health/ready.
type StatusHandler struct {
	now func() time.Time
}

// NewStatusHandler creates a status handler.
func NewStatusHandler() *StatusHandler {
	return &StatusHandler{now: time.Now}
}

// Routes implements internal.Handler.
func (h *StatusHandler) Routes(r internal.Router) {
	r.GET("/health", h.status)
}

func (h *StatusHandler) status(c internal.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "OK",
		"timestamp": h.now().UTC().Format(isoTimestamp),
	})
}
