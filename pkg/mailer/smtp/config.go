package smtp

import "time"

// TLS modes accepted by Config.TLSMode.
const (
	TLSModeSTARTTLS = "starttls"
	TLSModeTLS      = "tls"
	TLSModePlain    = "plain"
)

// Config holds SMTP transport configuration. The defaults target Gmail with an
// app password.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Host     string        `env:"SMTP_HOST" envDefault:"smtp.gmail.com" yaml:"host"`
	Port     int           `env:"SMTP_PORT" envDefault:"587" yaml:"port"`
	Username string        `env:"EMAIL_USER" yaml:"username"`
	Password string        `env:"EMAIL_PASS" yaml:"password"`
	TLSMode  string        `env:"SMTP_TLS_MODE" envDefault:"starttls" yaml:"tls_mode"`
	Timeout  time.Duration `env:"SMTP_TIMEOUT" envDefault:"30s" yaml:"timeout"`
}
