package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/outreach/internal"
	"github.com/dmitrymomot/outreach/middlewares"
)

type routes func(r internal.Router)

func (f routes) Routes(r internal.Router) { f(r) }

func TestErrorHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err     error
		name    string
		message string
		code    int
	}{
		{
			name:    "http error keeps status and message",
			err:     internal.ErrBadRequest("bad input"),
			code:    http.StatusBadRequest,
			message: "bad input",
		},
		{
			name:    "unknown error hides details",
			err:     errors.New("database password is hunter2"),
			code:    http.StatusInternalServerError,
			message: "Internal Server Error",
		},
		{
			name:    "timeout",
			err:     &middlewares.TimeoutError{Duration: time.Second},
			code:    http.StatusServiceUnavailable,
			message: "Request timed out",
		},
		{
			name:    "panic",
			err:     &middlewares.PanicError{Value: "boom"},
			code:    http.StatusInternalServerError,
			message: "Internal Server Error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			app := newApp(routes(func(r internal.Router) {
				r.GET("/", func(internal.Context) error { return tt.err })
			}))

			rec := do(app, httptest.NewRequest(http.MethodGet, "/", nil))

			require.Equal(t, tt.code, rec.Code)
			assert.Equal(t, map[string]any{"success": false, "message": tt.message}, decode(t, rec))
		})
	}
}

func TestNotFound(t *testing.T) {
	t.Parallel()

	rec := do(newApp(), httptest.NewRequest(http.MethodGet, "/nope", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, map[string]any{"success": false, "message": "Route GET /nope not found"}, decode(t, rec))
}
