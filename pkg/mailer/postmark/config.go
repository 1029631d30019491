package postmark

// Config holds Postmark provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	ServerToken   string `env:"POSTMARK_SERVER_TOKEN" yaml:"server_token"`
	AccountToken  string `env:"POSTMARK_ACCOUNT_TOKEN" yaml:"account_token"`
	MessageStream string `env:"POSTMARK_MESSAGE_STREAM" envDefault:"outbound" yaml:"message_stream"`
	// BaseURL overrides the API endpoint. Leave empty for production.
	BaseURL string `env:"POSTMARK_BASE_URL" yaml:"base_url"`
}
