package contacts

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/outreach/pkg/campaign"
)

// Source supplies contact rows.
type Source interface {
	Rows(ctx context.Context) ([]campaign.Row, error)
}

// Open returns the source for path based on its extension.
// The file itself is not touched until Rows is called.
func Open(path string) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		return XLSX{Path: path}, nil
	case ".csv":
		return CSV{Path: path}, nil
	case ".tsv":
		return CSV{Path: path, Comma: '\t'}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}
