package middlewares_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/outreach/internal"
	"github.com/dmitrymomot/outreach/middlewares"
)

func TestRecover(t *testing.T) {
	t.Parallel()

	var captured error
	app := internal.New(
		internal.WithMiddleware(middlewares.Recover()),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/panic", func(internal.Context) error { panic("sheet exploded") })
			r.GET("/error", func(internal.Context) error { return errors.New("plain") })
			r.GET("/", ok)
		})),
		internal.WithErrorHandler(func(c internal.Context, err error) error {
			captured = err
			return c.String(http.StatusInternalServerError, "internal")
		}),
	)

	rec := do(app, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.True(t, middlewares.IsPanicError(captured))

	var pe *middlewares.PanicError
	require.ErrorAs(t, captured, &pe)
	assert.Equal(t, "sheet exploded", pe.Value)
	assert.NotEmpty(t, pe.Stack)
	assert.Equal(t, "panic: sheet exploded", pe.Error())

	captured = nil
	do(app, httptest.NewRequest(http.MethodGet, "/error", nil))
	assert.False(t, middlewares.IsPanicError(captured))
	assert.EqualError(t, captured, "plain")

	rec = do(app, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
}
