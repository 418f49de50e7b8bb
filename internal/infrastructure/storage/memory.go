package storage

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"sync"

	"github.com/CRT1223/tech13-garage/internal/application/media"
)

var _ media.ImageStore = (*MemoryImageStore)(nil)

// MemoryImageStore keeps uploads in memory. Use it in tests and demos.
type MemoryImageStore struct {
	mu      sync.RWMutex
	objects map[string][]byte
	// BaseURL prefixes generated URLs; defaults to "/static/uploads"
	BaseURL string
}

// NewMemoryImageStore creates an empty MemoryImageStore
func NewMemoryImageStore() *MemoryImageStore {
	return &MemoryImageStore{
		objects: make(map[string][]byte),
		BaseURL: "/static/uploads",
	}
}

// Save reads body into memory
func (s *MemoryImageStore) Save(_ context.Context, name string, body io.Reader, _ int64, _ string) error {
	if name == "" {
		return errors.New("object name is required")
	}
	data, err := io.ReadAll(body)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.objects[name] = data
	s.mu.Unlock()
	return nil
}

// Delete forgets name
func (s *MemoryImageStore) Delete(_ context.Context, name string) error {
	s.mu.Lock()
	delete(s.objects, name)
	s.mu.Unlock()
	return nil
}

// URL returns <BaseURL>/<name>
func (s *MemoryImageStore) URL(name string) string {
	return strings.TrimRight(s.BaseURL, "/") + "/" + name
}

// Get returns a copy of the stored bytes
func (s *MemoryImageStore) Get(name string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.objects[name]
	if !ok {
		return nil, false
	}
	return bytes.Clone(data), true
}

// Len returns the number of stored objects
func (s *MemoryImageStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.objects)
}
