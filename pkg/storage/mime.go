package storage

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// MIME type constants.
const (
	MIMEOctetStream    = "application/octet-stream"
	MIMEPDF            = "application/pdf"
	mimeDetectionBytes = 512 // http.DetectContentType looks at up to 512 bytes
)

// mimeExtensions maps MIME types to preferred file extensions.
var mimeExtensions = map[string]string{
	MIMEPDF:              ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
	"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":       ".xlsx",
	"application/zip": ".zip",
	"text/plain":      ".txt",
	"text/csv":        ".csv",
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
}

// DetectMIME detects the MIME type of a multipart file header by reading magic bytes.
// Returns "application/octet-stream" if detection fails.
func DetectMIME(fh *multipart.FileHeader) string {
	if fh == nil {
		return MIMEOctetStream
	}

	f, err := fh.Open()
	if err != nil {
		return MIMEOctetStream
	}
	defer func() { _ = f.Close() }()

	return detectMIMEFromReader(f)
}

// DetectReaderMIME detects the MIME type from the first bytes of r.
// Returns "application/octet-stream" if nothing can be read.
func DetectReaderMIME(r io.Reader) string {
	return detectMIMEFromReader(r)
}

// ExtFromMIME returns the file extension for a MIME type.
// Returns empty string if MIME type is unknown.
func ExtFromMIME(mimeType string) string {
	return mimeExtensions[normalizeMIME(mimeType)]
}

func detectMIMEFromReader(r io.Reader) string {
	buf := make([]byte, mimeDetectionBytes)
	n, err := io.ReadFull(r, buf)
	if n == 0 && err != nil {
		return MIMEOctetStream
	}
	return http.DetectContentType(buf[:n])
}

// detectMIMEWithReader detects the MIME type from r and returns a reader that
// still yields the whole content. Seekable readers are rewound; others are
// buffered in memory.
func detectMIMEWithReader(r io.Reader) (string, io.ReadSeeker) {
	if rs, ok := r.(io.ReadSeeker); ok {
		mimeType := detectMIMEFromReader(rs)
		_, _ = rs.Seek(0, io.SeekStart)
		return mimeType, rs
	}

	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return MIMEOctetStream, bytes.NewReader(nil)
	}
	return http.DetectContentType(data), bytes.NewReader(data)
}

// normalizeMIME extracts the base MIME type, removing parameters like charset.
func normalizeMIME(mimeType string) string {
	mimeType, _, _ = strings.Cut(mimeType, ";")
	return strings.TrimSpace(strings.ToLower(mimeType))
}
