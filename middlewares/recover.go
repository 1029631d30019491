package middlewares

import (
	"log/slog"
	"runtime"

	"github.com/dmitrymomot/outreach/internal"
)

// DefaultStackSize caps the captured stack trace.
const DefaultStackSize = 4096

// Recover turns a panic into a *PanicError for the application's ErrorHandler
// and logs it with the stack trace.
func Recover() internal.Middleware {
	return func(next internal.HandlerFunc) internal.HandlerFunc {
		return func(c internal.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				stack := make([]byte, DefaultStackSize)
				stack = stack[:runtime.Stack(stack, false)]

				c.LogError("panic recovered",
					slog.Any("panic", r),
					slog.String("stack", string(stack)),
				)
				err = &PanicError{Value: r, Stack: stack}
			}()
			return next(c)
		}
	}
}
