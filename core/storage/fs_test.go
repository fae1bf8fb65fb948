package storage_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/t7e/core/storage"
)

func TestFS_Read(t *testing.T) {
	t.Parallel()

	src := storage.NewFS(fstest.MapFS{
		"nl/messages.mo": {Data: []byte("catalog")},
	})

	t.Run("existing file", func(t *testing.T) {
		data, err := src.Read(context.Background(), "nl/messages.mo")
		require.NoError(t, err)
		assert.Equal(t, []byte("catalog"), data)
	})

	t.Run("leading slash is ignored", func(t *testing.T) {
		data, err := src.Read(context.Background(), "/nl/messages.mo")
		require.NoError(t, err)
		assert.Equal(t, []byte("catalog"), data)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := src.Read(context.Background(), "de/messages.mo")
		assert.ErrorIs(t, err, storage.ErrFileNotFound)
	})

	t.Run("escaping path", func(t *testing.T) {
		_, err := src.Read(context.Background(), "../secrets.mo")
		assert.ErrorIs(t, err, storage.ErrInvalidPath)
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := src.Read(ctx, "nl/messages.mo")
		assert.ErrorIs(t, err, storage.ErrOperationCanceled)
	})

	t.Run("expired deadline", func(t *testing.T) {
		ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
		defer cancel()
		_, err := src.Read(ctx, "nl/messages.mo")
		assert.ErrorIs(t, err, storage.ErrOperationTimeout)
	})
}

func TestNewDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "nl"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "nl", "greetings.mo"), []byte("mo"), 0o644))

	data, err := storage.NewDir(dir).Read(context.Background(), "nl/greetings.mo")
	require.NoError(t, err)
	assert.Equal(t, []byte("mo"), data)
}

func TestReaderFunc(t *testing.T) {
	t.Parallel()

	var got string
	r := storage.ReaderFunc(func(_ context.Context, name string) ([]byte, error) {
		got = name
		return []byte("ok"), nil
	})

	data, err := r.Read(context.Background(), "x.mo")
	require.NoError(t, err)
	assert.Equal(t, "x.mo", got)
	assert.Equal(t, []byte("ok"), data)
}
