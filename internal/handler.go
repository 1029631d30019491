package internal

// Handler declares routes on a router.
//
//	type Campaigns struct{ pipeline *campaign.Pipeline }
//
//	func (h *Campaigns) Routes(r Router) {
//		r.POST("/send-emails", h.send)
//	}
type Handler interface {
	Routes(r Router)
}

// HandlerFunc handles a request. A returned error is passed to the
// application's ErrorHandler unless the response was already written.
type HandlerFunc func(c Context) error

// Middleware wraps a HandlerFunc.
type Middleware func(next HandlerFunc) HandlerFunc

// ErrorHandler renders errors returned by handlers.
type ErrorHandler func(Context, error) error
