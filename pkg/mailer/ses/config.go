package ses

// Config holds Amazon SES configuration. Static credentials are used when both
// keys are set; otherwise the default AWS credential chain applies.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Region           string `env:"SES_REGION" envDefault:"us-east-1" yaml:"region"`
	AccessKey        string `env:"SES_ACCESS_KEY" yaml:"access_key"`
	SecretKey        string `env:"SES_SECRET_KEY" yaml:"secret_key"`
	Profile          string `env:"SES_PROFILE" yaml:"profile"`
	Endpoint         string `env:"SES_ENDPOINT" yaml:"endpoint"`
	ConfigurationSet string `env:"SES_CONFIGURATION_SET" yaml:"configuration_set"`
}
