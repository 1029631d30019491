package mailer

import "context"

// Transport delivers prepared emails through one provider.
// Implementations must be safe for concurrent use.
type Transport interface {
	// Verify checks that the provider is reachable and the credentials are
	// accepted, without sending anything.
	Verify(ctx context.Context) error

	// Send delivers one email. The returned error text is what callers report
	// for the recipient, so it should carry the provider's own message.
	Send(ctx context.Context, email *Email) error
}

// Provider names accepted by Config.Provider.
const (
	ProviderSMTP     = "smtp"
	ProviderResend   = "resend"
	ProviderPostmark = "postmark"
	ProviderSES      = "ses"
	ProviderLog      = "log"
)
