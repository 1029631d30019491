package storage

import (
	"context"
	"fmt"
	"mime/multipart"
)

// PutFile stores an uploaded multipart file.
// The MIME type is detected from magic bytes, not the filename extension.
// Returns ErrEmptyFile if the file is nil or has zero size.
// If WithValidation is used and any rule fails, returns *FileValidationError.
func PutFile(ctx context.Context, s Storage, fh *multipart.FileHeader, opts ...Option) (*FileInfo, error) {
	if fh == nil || fh.Size == 0 {
		return nil, ErrEmptyFile
	}

	o := applyOptions(opts)
	if len(o.validationRules) > 0 {
		mimeType := DetectMIME(fh)
		if err := Validate(fh.Size, mimeType, o.validationRules...); err != nil {
			return nil, err
		}
		opts = append(opts, WithContentType(mimeType))
	}

	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("storage: failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return s.Put(ctx, f, fh.Size, opts...)
}
