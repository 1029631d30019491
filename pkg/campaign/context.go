package campaign

import (
	"context"
	"log/slog"
)

// HeaderCampaignID is the email header carrying the campaign ID.
const HeaderCampaignID = "X-Campaign-ID"

// LogKey is the attribute name used for the campaign ID in log records.
const LogKey = "campaign_id"

type idContextKey struct{}

// WithID returns a copy of ctx carrying the campaign ID.
func WithID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, idContextKey{}, id)
}

// IDFromContext returns the campaign ID stored in ctx, if any.
func IDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(idContextKey{}).(string)
	return id, ok && id != ""
}

// LogExtractor adds the campaign ID to log records emitted with a campaign context.
// It satisfies logger.ContextExtractor.
func LogExtractor(ctx context.Context) (slog.Attr, bool) {
	if id, ok := IDFromContext(ctx); ok {
		return slog.String(LogKey, id), true
	}
	return slog.Attr{}, false
}
