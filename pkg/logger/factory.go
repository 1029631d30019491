package logger

import (
	"io"
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
)

// Output formats accepted by Config.Format.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Config selects the log format, level and optional Sentry fan-out.
type Config struct {
	Format string       `env:"LOG_FORMAT" envDefault:"json" yaml:"format"`
	Level  slog.Level   `env:"LOG_LEVEL" envDefault:"info" yaml:"level"`
	Sentry SentryConfig `yaml:"sentry"`
}

// New creates a logger writing to stdout with optional context extractors.
func New(cfg Config, extractors ...ContextExtractor) *slog.Logger {
	return NewWithWriter(os.Stdout, cfg, extractors...)
}

// NewWithWriter is New with an explicit destination.
// When cfg.Sentry.DSN is set, records are also forwarded to Sentry.
func NewWithWriter(w io.Writer, cfg Config, extractors ...ContextExtractor) *slog.Logger {
	h := newBaseHandler(w, cfg)
	if sh := newSentryHandler(cfg.Sentry, h); sh != nil {
		h = fanout{h, sh}
	}
	return slog.New(NewContextHandler(h, extractors...))
}

func newBaseHandler(w io.Writer, cfg Config) slog.Handler {
	if cfg.Format == FormatConsole {
		return charmlog.NewWithOptions(w, charmlog.Options{
			Level:           charmlog.Level(cfg.Level),
			ReportTimestamp: true,
		})
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.Level})
}
