package smtp

import "errors"

// ErrInvalidConfig indicates missing or malformed SMTP settings.
var ErrInvalidConfig = errors.New("smtp: invalid configuration")
