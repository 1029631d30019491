package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/outreach/pkg/logger"
	"github.com/dmitrymomot/outreach/pkg/mailer"
	"github.com/dmitrymomot/outreach/pkg/mailer/postmark"
	"github.com/dmitrymomot/outreach/pkg/mailer/resend"
	"github.com/dmitrymomot/outreach/pkg/mailer/ses"
	"github.com/dmitrymomot/outreach/pkg/mailer/smtp"
	"github.com/dmitrymomot/outreach/pkg/redis"
	"github.com/dmitrymomot/outreach/pkg/storage"
)

// Config is the complete service configuration.
type Config struct {
	Address      string `env:"ADDRESS" envDefault:":5000" yaml:"address"`
	ContactsFile string `env:"CONTACTS_FILE" envDefault:"Tunisian_Companies_Emails_Combined.xlsx" yaml:"contacts_file"`

	CORSOrigins []string `env:"CORS_ORIGINS" envDefault:"http://localhost:5173" envSeparator:"," yaml:"cors_origins"`

	Logger   logger.Config         `yaml:"logger"`
	Mail     mailer.Config         `yaml:"mail"`
	SMTP     smtp.Config           `yaml:"smtp"`
	Resend   resend.Config         `yaml:"resend"`
	Postmark postmark.Config       `yaml:"postmark"`
	SES      ses.Config            `yaml:"ses"`
	Storage  storage.Config        `yaml:"storage"`
	Sweeper  storage.SweeperConfig `yaml:"sweeper"`
	Redis    redis.Config          `yaml:"redis"`

	UploadMaxBytes int64 `env:"UPLOAD_MAX_BYTES" envDefault:"5242880" yaml:"upload_max_bytes"`

	// SendInterval is the minimum time between the start of two sends.
	SendInterval time.Duration `env:"SEND_INTERVAL" envDefault:"1s" yaml:"send_interval"`
	// WriteTimeout bounds a whole response, including a running campaign.
	// Zero disables it.
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"0s" yaml:"write_timeout"`
	// RequestTimeout bounds every endpoint except the campaign one.
	RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"30s" yaml:"request_timeout"`
	StatsCacheTTL  time.Duration `env:"STATS_CACHE_TTL" envDefault:"30s" yaml:"stats_cache_ttl"`
}

// LoadConfig reads .env, the environment and, when path is set, a YAML file.
// Values from the file win; the environment and its defaults fill the rest.
func LoadConfig(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}

	if path != "" {
		fileCfg, err := readConfigFile(path)
		if err != nil {
			return nil, err
		}
		if err := mergo.Merge(fileCfg, cfg); err != nil {
			return nil, fmt.Errorf("merge config: %w", err)
		}
		cfg = *fileCfg
	}

	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

// normalize fills values derived from other settings.
func (c *Config) normalize() {
	// Gmail and most SMTP relays reject a sender other than the account.
	if c.Mail.FromEmail == "" && (c.Mail.Provider == mailer.ProviderSMTP || c.Mail.Provider == "") {
		c.Mail.FromEmail = c.SMTP.Username
	}
}

// Validate reports the first setting that cannot work.
func (c *Config) Validate() error {
	switch {
	case c.ContactsFile == "":
		return errors.New("config: CONTACTS_FILE is required")
	case c.UploadMaxBytes <= 0:
		return errors.New("config: UPLOAD_MAX_BYTES must be positive")
	case c.SendInterval < 0:
		return errors.New("config: SEND_INTERVAL must not be negative")
	}
	return nil
}
