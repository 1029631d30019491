package campaign

import (
	"context"
	"io"
	"os"
)

// Attachment is the file sent along with every message of a campaign.
// Open is called once per recipient; every call must return a fresh reader over
// the same unchanged content.
type Attachment struct {
	Open        func(ctx context.Context) (io.ReadCloser, error)
	Filename    string
	ContentType string
}

// FileAttachment returns an attachment backed by a file on local disk.
func FileAttachment(path, filename, contentType string) Attachment {
	return Attachment{
		Filename:    filename,
		ContentType: contentType,
		Open: func(context.Context) (io.ReadCloser, error) {
			return os.Open(path)
		},
	}
}

// read loads the whole attachment into memory.
func (a Attachment) read(ctx context.Context) ([]byte, error) {
	if a.Open == nil {
		return nil, ErrNoAttachment
	}
	rc, err := a.Open(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()
	return io.ReadAll(rc)
}
