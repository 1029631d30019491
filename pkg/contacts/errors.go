package contacts

import "errors"

var (
	// ErrUnsupportedFormat indicates a file extension no source can read.
	ErrUnsupportedFormat = errors.New("contacts: unsupported file format")

	// ErrNoSheet indicates a workbook without worksheets.
	ErrNoSheet = errors.New("contacts: workbook has no sheets")
)
