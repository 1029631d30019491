package campaign

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// emailFieldMarker is matched case-insensitively against column names.
const emailFieldMarker = "email"

// EmailField returns the value of the first field whose name contains "email",
// ignoring case. Fields without a value are skipped, so a row with an empty
// "Email" column and a filled "Work Email" column yields the latter.
func EmailField(row Row) (string, bool) {
	lower := cases.Lower(language.Und)
	for _, f := range row {
		if f.Value == "" {
			continue
		}
		if strings.Contains(lower.String(f.Name), emailFieldMarker) {
			return f.Value, true
		}
	}
	return "", false
}

// Extract returns one candidate address per row that has an email field.
// Row order is preserved and rows without a candidate contribute nothing.
func Extract(rows []Row) []string {
	candidates := make([]string, 0, len(rows))
	for _, row := range rows {
		if v, ok := EmailField(row); ok {
			candidates = append(candidates, v)
		}
	}
	return candidates
}
