package contacts

import (
	"strconv"

	"github.com/dmitrymomot/outreach/pkg/campaign"
)

const emptyHeader = "__EMPTY"

// buildRows turns raw records into rows keyed by the first record.
func buildRows(records [][]string) []campaign.Row {
	if len(records) == 0 {
		return []campaign.Row{}
	}

	width := 0
	for _, rec := range records {
		width = max(width, len(rec))
	}
	names := headerNames(records[0], width)

	rows := make([]campaign.Row, 0, len(records)-1)
	for _, rec := range records[1:] {
		var row campaign.Row
		for i, v := range rec {
			if v == "" {
				continue
			}
			row = append(row, campaign.Field{Name: names[i], Value: v})
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}

// headerNames names width columns from header, filling blanks and
// disambiguating repeats.
func headerNames(header []string, width int) []string {
	names := make([]string, width)
	seen := make(map[string]int, width)

	for i := range width {
		name := ""
		if i < len(header) {
			name = header[i]
		}
		if name == "" {
			name = emptyHeader
		}

		unique := name
		if n := seen[name]; n == 0 {
			seen[name] = 1
		} else {
			for {
				unique = name + "_" + strconv.Itoa(n)
				n++
				if seen[unique] == 0 {
					break
				}
			}
			seen[name] = n
			seen[unique] = 1
		}
		names[i] = unique
	}
	return names
}
