package contacts

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/dmitrymomot/outreach/pkg/campaign"
)

// CSV reads contact rows from a delimited text file.
type CSV struct {
	// Path of the file.
	Path string
	// Comma is the field delimiter. Zero means ','.
	Comma rune
}

// Rows implements campaign.RowSource.
func (c CSV) Rows(ctx context.Context) ([]campaign.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(c.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", c.Path, err)
	}
	defer func() { _ = f.Close() }()

	return ReadCSV(f, c.Comma)
}

// ReadCSV reads contact rows from r. Quotes are parsed leniently and rows may
// have different lengths.
func ReadCSV(r io.Reader, comma rune) ([]campaign.Row, error) {
	reader := gocsv.LazyCSVReader(r)
	if cr, ok := reader.(*csv.Reader); ok {
		cr.FieldsPerRecord = -1
		if comma != 0 {
			cr.Comma = comma
		}
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse csv: %w", err)
	}
	if len(records) > 0 && len(records[0]) > 0 {
		records[0][0] = strings.TrimPrefix(records[0][0], "\ufeff")
	}
	return buildRows(records), nil
}
