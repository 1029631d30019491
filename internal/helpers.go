package internal

import "strconv"

// ContextValue returns the value stored under key with Context.Set, or the
// zero value when it is absent or of another type.
func ContextValue[T any](c Context, key any) T {
	v, _ := c.Get(key).(T)
	return v
}

// Query parses a query parameter into T. Missing or malformed values yield
// the zero value.
func Query[T ~string | ~int | ~bool](c Context, name string) T {
	var zero T
	raw := c.Query(name)
	if raw == "" {
		return zero
	}

	switch any(zero).(type) {
	case string:
		return any(raw).(T)
	case int:
		if v, err := strconv.Atoi(raw); err == nil {
			return any(v).(T)
		}
	case bool:
		if v, err := strconv.ParseBool(raw); err == nil {
			return any(v).(T)
		}
	}
	return zero
}
