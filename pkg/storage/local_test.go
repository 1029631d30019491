package storage_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/outreach/pkg/storage"
)

var pdfContent = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")

func TestLocalStorage_PutGetDelete(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := storage.NewLocal(dir)
	require.NoError(t, err)

	ctx := context.Background()
	info, err := store.Put(ctx, bytes.NewReader(pdfContent), int64(len(pdfContent)), storage.WithPrefix("attachments"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(info.Key, "attachments/"))
	assert.True(t, strings.HasSuffix(info.Key, ".pdf"))
	assert.Equal(t, storage.MIMEPDF, info.ContentType)
	assert.Equal(t, int64(len(pdfContent)), info.Size)

	// Readable more than once.
	for range 2 {
		rc, err := store.Get(ctx, info.Key)
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())
		assert.Equal(t, pdfContent, data)
	}

	require.NoError(t, store.Delete(ctx, info.Key))
	_, err = os.Stat(filepath.Join(dir, filepath.FromSlash(info.Key)))
	assert.True(t, os.IsNotExist(err))

	_, err = store.Get(ctx, info.Key)
	require.ErrorIs(t, err, storage.ErrNotFound)
	require.ErrorIs(t, store.Delete(ctx, info.Key), storage.ErrNotFound)
}

func TestLocalStorage_Put_Validation(t *testing.T) {
	t.Parallel()

	store, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)

	text := []byte("just some text, not a pdf")
	_, err = store.Put(context.Background(), bytes.NewReader(text), int64(len(text)), storage.WithValidation(storage.PDFOnly()))
	require.ErrorIs(t, err, storage.ErrInvalidMIME)

	var verr *storage.FileValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, storage.ErrCodeInvalidMIME, verr.Code)
}

func TestLocalStorage_Put_ExplicitKey(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	store, err := storage.NewLocal(dir)
	require.NoError(t, err)

	info, err := store.Put(context.Background(), strings.NewReader("hello"), 5, storage.WithKey("a/b.txt"), storage.WithContentType("text/plain"))
	require.NoError(t, err)
	assert.Equal(t, "a/b.txt", info.Key)
	assert.Equal(t, "text/plain", info.ContentType)

	data, err := os.ReadFile(filepath.Join(dir, "a", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))
}

func TestLocalStorage_RejectsEscapingKeys(t *testing.T) {
	t.Parallel()

	store, err := storage.NewLocal(t.TempDir())
	require.NoError(t, err)
	ctx := context.Background()

	for _, key := range []string{"", "../secret", "/etc/passwd", "a/../../b"} {
		_, err := store.Get(ctx, key)
		require.ErrorIs(t, err, storage.ErrInvalidKey, key)
		require.ErrorIs(t, store.Delete(ctx, key), storage.ErrInvalidKey, key)
		if key != "" {
			_, err = store.Put(ctx, strings.NewReader("x"), 1, storage.WithKey(key))
			require.ErrorIs(t, err, storage.ErrInvalidKey, key)
		}
	}
}

func TestNewLocal_RequiresDir(t *testing.T) {
	t.Parallel()

	_, err := storage.NewLocal("")
	require.ErrorIs(t, err, storage.ErrInvalidConfig)
}

func TestNew(t *testing.T) {
	t.Parallel()

	s, err := storage.New(storage.Config{Driver: storage.DriverLocal, Dir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &storage.LocalStorage{}, s)

	_, err = storage.New(storage.Config{Driver: storage.DriverS3})
	require.ErrorIs(t, err, storage.ErrInvalidConfig)

	s, err = storage.New(storage.Config{Driver: storage.DriverS3, S3: storage.S3Config{
		Bucket:    "uploads",
		AccessKey: "key",
		SecretKey: "secret",
		Endpoint:  "http://localhost:9000",
		PathStyle: true,
	}})
	require.NoError(t, err)
	assert.IsType(t, &storage.S3Storage{}, s)

	_, err = storage.New(storage.Config{Driver: "ftp"})
	require.ErrorIs(t, err, storage.ErrInvalidConfig)
}
