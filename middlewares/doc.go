// Package middlewares provides the HTTP middleware of the service.
//
//	app := internal.New(
//		internal.WithLogger(logger.New(cfg, middlewares.RequestIDExtractor())),
//		internal.WithMiddleware(
//			middlewares.RequestID(),
//			middlewares.Recover(),
//			middlewares.CORS(middlewares.WithAllowOrigins("http://localhost:5173")),
//		),
//	)
//
// RequestID assigns each request a UUIDv7 (or reuses X-Request-ID) and
// RequestIDExtractor puts it on every log record. Recover turns panics into
// *PanicError and Timeout returns *TimeoutError; both reach the application's
// ErrorHandler like any other handler error.
//
// CORS origins accept glob patterns, where '*' matches within one host label:
//
//	middlewares.CORS(middlewares.WithAllowOrigins(
//		"http://localhost:*",
//		"https://*.example.com",
//	))
package middlewares
