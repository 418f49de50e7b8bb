package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/CRT1223/tech13-garage/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLocalImageStore(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocalImageStore(dir, "/static/uploads/")
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "a.png", strings.NewReader("img"), 3, "image/png"))
	data, err := os.ReadFile(filepath.Join(dir, "a.png"))
	require.NoError(t, err)
	assert.Equal(t, "img", string(data))
	assert.Equal(t, "/static/uploads/a.png", store.URL("a.png"))

	require.NoError(t, store.Delete(ctx, "a.png"))
	_, err = os.Stat(filepath.Join(dir, "a.png"))
	assert.True(t, os.IsNotExist(err))

	// deleting twice is fine
	assert.NoError(t, store.Delete(ctx, "a.png"))
}

func TestLocalImageStore_RejectsPaths(t *testing.T) {
	store, err := NewLocalImageStore(t.TempDir(), "/static/uploads")
	require.NoError(t, err)

	for _, name := range []string{"", "..", "../a.png", "sub/a.png"} {
		err := store.Save(context.Background(), name, strings.NewReader("x"), 1, "")
		assert.Error(t, err, name)
	}
}

func TestMemoryImageStore(t *testing.T) {
	store := NewMemoryImageStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "logo.webp", strings.NewReader("data"), 4, "image/webp"))
	got, ok := store.Get("logo.webp")
	require.True(t, ok)
	assert.Equal(t, "data", string(got))
	assert.Equal(t, "/static/uploads/logo.webp", store.URL("logo.webp"))

	require.NoError(t, store.Delete(ctx, "logo.webp"))
	assert.Equal(t, 0, store.Len())
}

func TestNew(t *testing.T) {
	ctx := context.Background()

	t.Run("local", func(t *testing.T) {
		store, err := New(ctx, &config.StorageConfig{Driver: "local", UploadDir: t.TempDir(), PublicPrefix: "/static/uploads"}, zap.NewNop())
		require.NoError(t, err)
		assert.IsType(t, &LocalImageStore{}, store)
	})

	t.Run("memory", func(t *testing.T) {
		store, err := New(ctx, &config.StorageConfig{Driver: "memory", PublicPrefix: "/files"}, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, "/files/x.png", store.URL("x.png"))
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := New(ctx, &config.StorageConfig{Driver: "ftp"}, zap.NewNop())
		assert.Error(t, err)
	})
}
