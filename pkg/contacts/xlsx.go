package contacts

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/dmitrymomot/outreach/pkg/campaign"
)

// XLSX reads contact rows from an Excel workbook.
type XLSX struct {
	// Path of the workbook file.
	Path string
	// Sheet to read. Empty means the first sheet.
	Sheet string
}

// Rows implements campaign.RowSource.
func (x XLSX) Rows(ctx context.Context) ([]campaign.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(x.Path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", x.Path, err)
	}
	defer func() { _ = f.Close() }()

	return readWorkbook(f, x.Sheet)
}

// ReadXLSX reads contact rows from a workbook stream, using the first sheet.
func ReadXLSX(r io.Reader) ([]campaign.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer func() { _ = f.Close() }()

	return readWorkbook(f, "")
}

func readWorkbook(f *excelize.File, sheet string) ([]campaign.Row, error) {
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoSheet
		}
		sheet = sheets[0]
	}

	records, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	return buildRows(records), nil
}
