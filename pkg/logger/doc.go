// Package logger builds the service's slog.Logger.
//
// Records are written as JSON to stdout by default, or as colourised console
// lines (charmbracelet/log) when Config.Format is "console". When a Sentry DSN
// is configured, records are also forwarded to Sentry: errors become issues
// and warnings are stored as logs.
//
// # Context Extractors
//
// A ContextExtractor pulls one attribute out of a context on every log call.
// The HTTP layer registers one for the request ID and the campaign package one
// for the campaign ID, so every record logged with a request or campaign
// context carries those identifiers:
//
//	log := logger.New(cfg,
//		middlewares.RequestIDExtractor(),
//		campaign.LogExtractor,
//	)
//	log.InfoContext(ctx, "email sent", slog.String("email", addr))
//	// {"level":"INFO","msg":"email sent","email":"a@x.io","request_id":"...","campaign_id":"..."}
//
// NewContextHandler adds the same extraction to any slog.Handler.
package logger
