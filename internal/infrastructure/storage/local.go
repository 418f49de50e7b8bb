package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/CRT1223/tech13-garage/internal/application/media"
)

var _ media.ImageStore = (*LocalImageStore)(nil)

// LocalImageStore keeps uploads in a directory served under a public prefix
type LocalImageStore struct {
	dir    string
	prefix string
}

// NewLocalImageStore creates the upload directory if needed
func NewLocalImageStore(dir, publicPrefix string) (*LocalImageStore, error) {
	if dir == "" {
		return nil, errors.New("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalImageStore{
		dir:    dir,
		prefix: strings.TrimRight(publicPrefix, "/"),
	}, nil
}

// Save writes body to dir/name
func (s *LocalImageStore) Save(_ context.Context, name string, body io.Reader, _ int64, _ string) error {
	target, err := s.path(name)
	if err != nil {
		return err
	}
	f, err := os.Create(target)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := io.Copy(f, body); err != nil {
		_ = f.Close()
		_ = os.Remove(target)
		return fmt.Errorf("failed to write file: %w", err)
	}
	return f.Close()
}

// Delete removes dir/name; a missing file is not an error
func (s *LocalImageStore) Delete(_ context.Context, name string) error {
	target, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(target); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

// URL returns <prefix>/<name>
func (s *LocalImageStore) URL(name string) string {
	return s.prefix + "/" + name
}

func (s *LocalImageStore) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid file name %q", name)
	}
	return filepath.Join(s.dir, name), nil
}
