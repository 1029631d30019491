package storage

// Option configures Put operations.
type Option func(*putOptions)

type putOptions struct {
	key             string
	prefix          string
	contentType     string
	validationRules []ValidationRule
}

// WithKey sets an explicit storage key, replacing the generated one.
func WithKey(key string) Option {
	return func(o *putOptions) {
		o.key = key
	}
}

// WithPrefix sets a path prefix for the generated key.
// Example: WithPrefix("attachments") results in "attachments/{uuid}.{ext}"
func WithPrefix(prefix string) Option {
	return func(o *putOptions) {
		o.prefix = prefix
	}
}

// WithContentType overrides the detected content type.
func WithContentType(ct string) Option {
	return func(o *putOptions) {
		o.contentType = ct
	}
}

// WithValidation adds validation rules to be applied before the file is stored.
// If any rule fails, nothing is stored and a *FileValidationError is returned.
func WithValidation(rules ...ValidationRule) Option {
	return func(o *putOptions) {
		o.validationRules = append(o.validationRules, rules...)
	}
}

func applyOptions(opts []Option) *putOptions {
	o := &putOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
