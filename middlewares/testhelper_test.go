package middlewares_test

import (
	"net/http"
	"net/http/httptest"

	"github.com/dmitrymomot/outreach/internal"
)

type routes func(r internal.Router)

func (f routes) Routes(r internal.Router) { f(r) }

// newApp mounts h at GET and POST "/" behind mw.
func newApp(h internal.HandlerFunc, mw ...internal.Middleware) *internal.App {
	return internal.New(
		internal.WithMiddleware(mw...),
		internal.WithHandlers(routes(func(r internal.Router) {
			r.GET("/", h)
			r.POST("/", h)
		})),
		internal.WithErrorHandler(func(c internal.Context, err error) error {
			return c.String(http.StatusInternalServerError, err.Error())
		}),
	)
}

func do(app http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)
	return rec
}

func ok(c internal.Context) error {
	return c.String(http.StatusOK, "ok")
}
