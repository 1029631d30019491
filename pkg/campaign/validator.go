package campaign

import (
	"regexp"
	"strings"
)

// addressPattern is a deliberately loose email shape: local@domain.tld where no
// part contains whitespace or '@'. The whitespace class follows the ECMAScript
// definition so that non-breaking and zero-width no-break spaces are rejected too.
var addressPattern = regexp.MustCompile(`^[^@\s\v\p{Z}\x{FEFF}]+@[^@\s\v\p{Z}\x{FEFF}]+\.[^@\s\v\p{Z}\x{FEFF}]+$`)

// FilterAddresses drops empty candidates and candidates without an '@'.
func FilterAddresses(candidates []string) []string {
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c == "" || !strings.Contains(c, "@") {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Validate keeps the candidates that pass FilterAddresses and match the address
// pattern. Order is preserved and duplicates are kept.
func Validate(candidates []string) []string {
	filtered := FilterAddresses(candidates)
	out := filtered[:0]
	for _, c := range filtered {
		if IsAddress(c) {
			out = append(out, c)
		}
	}
	return out
}

// IsAddress reports whether s matches the address pattern.
func IsAddress(s string) bool {
	return addressPattern.MatchString(s)
}
