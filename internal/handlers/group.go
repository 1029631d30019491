package handlers

import "github.com/dmitrymomot/outreach/internal"

type group struct {
	middlewares []internal.Middleware
	handlers    []internal.Handler
}

// Group declares the routes of hs inside one group sharing mw. Routes of other
// handlers are not affected.
func Group(mw []internal.Middleware, hs ...internal.Handler) internal.Handler {
	return &group{middlewares: mw, handlers: hs}
}

// Routes implements internal.Handler.
func (g *group) Routes(r internal.Router) {
	r.Group(func(r internal.Router) {
		r.Use(g.middlewares...)
		for _, h := range g.handlers {
			h.Routes(r)
		}
	})
}
