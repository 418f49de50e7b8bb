package migration

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"add reviews index", "add_reviews_index"},
		{"Add-Reviews-Index", "add_reviews_index"},
		{"ADD__REVIEWS", "add_reviews"},
		{"   spaces   ", "spaces"},
		{"special!@#$chars", "specialchars"},
		{"trailing_", "trailing"},
		{"_leading", "leading"},
		{"", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, sanitizeName(tt.input))
		})
	}
}

func TestCreateMigration(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, DialectSQLite), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, DialectSQLite, "000004_old.up.sql"), []byte("--"), 0o644))

	files, err := CreateMigration(root, "add reviews index", "Speed up product reviews")
	require.NoError(t, err)
	require.Len(t, files, 2)

	for _, mf := range files {
		assert.Equal(t, "000005", mf.Version)
		assert.True(t, strings.HasSuffix(mf.UpPath, "000005_add_reviews_index.up.sql"))

		up, err := os.ReadFile(mf.UpPath)
		require.NoError(t, err)
		assert.Contains(t, string(up), "Speed up product reviews")
		assert.Contains(t, string(up), "Dialect: "+mf.Dialect)

		down, err := os.ReadFile(mf.DownPath)
		require.NoError(t, err)
		assert.Contains(t, string(down), "(rollback)")
	}

	_, err = CreateMigration(root, "!!!", "")
	assert.Error(t, err)
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{
		"000002_add_users.up.sql",
		"000002_add_users.down.sql",
		"000001_init_schema.up.sql",
		"000001_init_schema.down.sql",
		"README.md",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, f), []byte("--"), 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir.up.sql"), 0o755))

	migrations, err := ListMigrations(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"000001_init_schema", "000002_add_users"}, migrations)

	missing, err := ListMigrations(filepath.Join(dir, "nope"))
	require.NoError(t, err)
	assert.Empty(t, missing)
}

func TestEmbeddedSources(t *testing.T) {
	for _, dialect := range []string{DialectSQLite, DialectPostgres} {
		src, err := Source(dialect)
		require.NoError(t, err)
		ups, err := fs.Glob(src, "*.up.sql")
		require.NoError(t, err)
		downs, err := fs.Glob(src, "*.down.sql")
		require.NoError(t, err)
		assert.NotEmpty(t, ups, dialect)
		assert.Equal(t, len(ups), len(downs), dialect)
	}

	_, err := Source("mysql")
	assert.Error(t, err)
}
