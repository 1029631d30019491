package middlewares

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dmitrymomot/outreach/internal"
)

// DefaultTimeout applies when Timeout is given a non-positive duration.
const DefaultTimeout = 30 * time.Second

// Timeout gives the handler a request context with a deadline. If the handler
// has not returned when it expires, a *TimeoutError is returned instead and
// the handler keeps running until it observes the cancelled context.
// Use it on short endpoints only; campaign sends run longer than any
// reasonable request timeout.
func Timeout(timeout time.Duration) internal.Middleware {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) error {
			ctx, cancel := context.WithTimeout(c.Context(), timeout)
			defer cancel()

			c.SetContext(ctx)

			done := make(chan error, 1)
			go func() {
				done <- next(c)
			}()

			select {
			case err := <-done:
				return err
			case <-ctx.Done():
				if errors.Is(ctx.Err(), context.DeadlineExceeded) {
					c.LogWarn("request timeout", slog.Duration("timeout", timeout))
					return &TimeoutError{Duration: timeout}
				}
				return ctx.Err()
			}
		}
	}
}
