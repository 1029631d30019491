package mailer

// Config holds provider-independent mailer settings.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Provider       string `env:"MAIL_PROVIDER" envDefault:"smtp" yaml:"provider"`
	FromEmail      string `env:"MAIL_FROM" yaml:"from"`
	FromName       string `env:"MAIL_FROM_NAME" yaml:"from_name"`
	ReplyTo        string `env:"MAIL_REPLY_TO" yaml:"reply_to"`
	AttachmentName string `env:"MAIL_ATTACHMENT_NAME" envDefault:"CV.pdf" yaml:"attachment_name"`
	// RenderHTML adds an HTML alternative rendered from the message as Markdown.
	RenderHTML bool `env:"MAIL_RENDER_HTML" envDefault:"true" yaml:"render_html"`
}

// From returns the formatted sender address.
func (c Config) From() string {
	return Recipient(c.FromName, c.FromEmail)
}
