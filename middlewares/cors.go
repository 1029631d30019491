package middlewares

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gobwas/glob"

	"github.com/dmitrymomot/outreach/internal"
)

// DefaultCORSMaxAge is the default preflight cache duration.
const DefaultCORSMaxAge = 12 * time.Hour

// CORSConfig configures the CORS middleware.
type CORSConfig struct {
	// AllowOrigins lists allowed origins. Entries may be glob patterns such
	// as "https://*.example.com"; "*" allows every origin.
	AllowOrigins []string
	// AllowMethods specifies the allowed HTTP methods.
	AllowMethods []string
	// AllowHeaders specifies the allowed request headers.
	AllowHeaders []string
	// ExposeHeaders lists response headers readable by the browser.
	ExposeHeaders []string
	// MaxAge specifies how long preflight responses can be cached.
	MaxAge        time.Duration
}

// CORSOption configures CORSConfig.
type CORSOption func(*CORSConfig)

// WithAllowOrigins sets the allowed origin patterns.
func WithAllowOrigins(origins ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.AllowOrigins = origins
	}
}

// WithExposeHeaders sets the headers exposed to the client.
func WithExposeHeaders(headers ...string) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.ExposeHeaders = headers
	}
}

// WithMaxAge sets the preflight cache duration.
func WithMaxAge(d time.Duration) CORSOption {
	return func(cfg *CORSConfig) {
		cfg.MaxAge = d
	}
}

// CORS answers preflight requests and adds CORS headers for allowed origins.
// Requests from other origins pass through without CORS headers.
// Invalid origin patterns panic at construction.
func CORS(opts ...CORSOption) internal.Middleware {
	cfg := &CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		MaxAge:       DefaultCORSMaxAge,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	matchers := make([]glob.Glob, 0, len(cfg.AllowOrigins))
	anyOrigin := false
	for _, pattern := range cfg.AllowOrigins {
		if pattern == "*" {
			anyOrigin = true
			continue
		}
		matchers = append(matchers, glob.MustCompile(strings.ToLower(pattern), '.', ':'))
	}

	// Pre-compute joined strings for headers
	allowMethods := strings.Join(cfg.AllowMethods, ", ")
	allowHeaders := strings.Join(cfg.AllowHeaders, ", ")
	exposeHeaders := strings.Join(cfg.ExposeHeaders, ", ")
	maxAge := strconv.Itoa(int(cfg.MaxAge.Seconds()))

	allowed := func(origin string) bool {
		if anyOrigin {
			return true
		}
		origin = strings.ToLower(origin)
		for _, m := range matchers {
			if m.Match(origin) {
				return true
			}
		}
		return false
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			origin := c.Header("Origin")
			// Not a CORS request, or the origin is not allowed: the browser blocks it
			if origin == "" || !allowed(origin) {
				return next(c)
			}

			headers := c.Response().Header()
			// Vary header for proper caching
			headers.Add("Vary", "Origin")
			if anyOrigin {
				headers.Set("Access-Control-Allow-Origin", "*")
			} else {
				headers.Set("Access-Control-Allow-Origin", origin)
			}
			if exposeHeaders != "" {
				headers.Set("Access-Control-Expose-Headers", exposeHeaders)
			}

			// Handle preflight request
			if c.Request().Method == http.MethodOptions && c.Header("Access-Control-Request-Method") != "" {
				headers.Add("Vary", "Access-Control-Request-Method")
				headers.Add("Vary", "Access-Control-Request-Headers")
				headers.Set("Access-Control-Allow-Methods", allowMethods)
				headers.Set("Access-Control-Allow-Headers", allowHeaders)
				if cfg.MaxAge > 0 {
					headers.Set("Access-Control-Max-Age", maxAge)
				}
				return c.NoContent(http.StatusNoContent)
			}

			return next(c)
		}
	}
}
