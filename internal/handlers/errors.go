package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/outreach/internal"
	"github.com/dmitrymomot/outreach/middlewares"
)

// Client-facing messages.
const (
	msgSubjectRequired  = "Subject and message are required"
	msgFileRequired     = "CV file is required"
	msgPDFOnly          = "Only PDF files are allowed!"
	msgNoRecipients     = "No valid emails found in Excel file"
	msgStatsUnavailable = "Could not read Excel file"
	msgInvalidForm      = "Invalid form data"
	msgTimeout          = "Request timed out"
)

// errorResponse is the body of every failed request.
type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorHandler renders handler errors as JSON. HTTPError keeps its status and
// message; panics and unknown errors become a generic 500.
func ErrorHandler(c internal.Context, err error) error {
	code, message := http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError)

	var timeoutErr *middlewares.TimeoutError
	switch httpErr := internal.AsHTTPError(err); {
	case httpErr != nil:
		code, message = httpErr.Code, httpErr.Message
	case errors.As(err, &timeoutErr):
		code, message = http.StatusServiceUnavailable, msgTimeout
	}

	switch {
	case middlewares.IsPanicError(err):
		c.LogError("panic recovered", slog.String("error", err.Error()))
	case code >= http.StatusInternalServerError:
		c.LogError("request failed", slog.Int("status", code), slog.String("error", err.Error()))
	default:
		c.LogInfo("request rejected", slog.Int("status", code), slog.String("error", err.Error()))
	}

	return c.JSON(code, errorResponse{Message: message})
}

// NotFound answers unknown routes in the same JSON shape as other errors.
func NotFound(c internal.Context) error {
	return internal.ErrNotFound(fmt.Sprintf("Route %s %s not found", c.Request().Method, c.Request().URL.Path))
}

// MethodNotAllowed answers known routes called with the wrong method.
func MethodNotAllowed(c internal.Context) error {
	return internal.NewHTTPError(http.StatusMethodNotAllowed, "")
}
