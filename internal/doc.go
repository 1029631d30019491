// Package internal holds the HTTP application layer of the service: the App
// that wires a chi router, the request Context handed to handlers, route
// registration, error rendering and the graceful-shutdown runtime.
//
// Handlers return errors instead of writing failure responses themselves:
//
//	func (h *Campaigns) Routes(r internal.Router) {
//		r.POST("/send-emails", h.send)
//	}
//
//	func (h *Campaigns) send(c internal.Context) error {
//		if c.Form("subject") == "" {
//			return internal.ErrBadRequest("Subject and message are required")
//		}
//		...
//		return c.JSON(http.StatusOK, resp)
//	}
//
// The ErrorHandler configured with WithErrorHandler turns returned errors into
// responses. Errors returned after the response was written are only logged.
//
// Context embeds context.Context and can be passed to any call taking one.
// Values stored with Context.Set by middleware are visible to later handlers
// and to log extractors through the request context.
//
// App.Run listens on the address, runs startup hooks, serves until SIGINT or
// SIGTERM, then shuts down the server and runs shutdown hooks.
package internal
