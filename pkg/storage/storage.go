package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/google/uuid"
)

// Storage defines the interface for file storage operations.
type Storage interface {
	// Put stores data from a reader.
	// The size parameter is used for content-length and validation.
	// Options can set the key, prefix, content type and validation rules.
	Put(ctx context.Context, r io.Reader, size int64, opts ...Option) (*FileInfo, error)

	// Get retrieves a file.
	// The caller is responsible for closing the returned reader.
	Get(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a file.
	Delete(ctx context.Context, key string) error
}

// Drivers accepted by Config.Driver.
const (
	DriverLocal = "local"
	DriverS3    = "s3"
)

// Config selects and configures a storage backend.
type Config struct {
	Driver string `env:"STORAGE_DRIVER" envDefault:"local" yaml:"driver"`

	// Dir is the upload directory of the local driver.
	Dir string `env:"STORAGE_DIR" envDefault:"uploads" yaml:"dir"`

	S3 S3Config `envPrefix:"STORAGE_S3_" yaml:"s3"`
}

// FileInfo contains metadata about a stored file.
type FileInfo struct {
	// Key is the storage key (path) for the file.
	Key string

	// ContentType is the detected MIME type.
	ContentType string

	// Size is the file size in bytes.
	Size int64
}

// New creates the backend selected by cfg.Driver.
func New(cfg Config) (Storage, error) {
	switch cfg.Driver {
	case DriverLocal, "":
		return NewLocal(cfg.Dir)
	case DriverS3:
		return NewS3(cfg.S3)
	default:
		return nil, fmt.Errorf("%w: unknown driver %q", ErrInvalidConfig, cfg.Driver)
	}
}

// buildKey constructs a key from prefix and content type.
// Format: {prefix}/{uuid}.{ext}
func buildKey(prefix, contentType string) string {
	ext := ExtFromMIME(contentType)
	if ext == "" {
		ext = ".bin"
	}
	name := uuid.Must(uuid.NewV7()).String() + ext

	prefix = sanitizePathSegment(prefix)
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}

// sanitizePathSegment strips separators, traversal sequences and unsafe
// characters from a single key segment.
func sanitizePathSegment(segment string) string {
	segment = strings.Trim(segment, " /\\")
	segment = strings.ReplaceAll(segment, "..", "")
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		default:
			return '_'
		}
	}, segment)
}
