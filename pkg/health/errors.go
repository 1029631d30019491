package health

import "errors"

var (
	// ErrCheckFailed marks a check that returned no usable answer.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout marks a check still running when the report deadline passed.
	ErrCheckTimeout = errors.New("health: check timed out")
)
