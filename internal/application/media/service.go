package media

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/CRT1223/tech13-garage/internal/domain/shared"
	"go.uber.org/zap"
)

// ImageStore is where uploaded images end up (local disk, S3 or memory)
type ImageStore interface {
	// Save writes body under name, replacing any existing object
	Save(ctx context.Context, name string, body io.Reader, size int64, contentType string) error
	// Delete removes name; a missing object is not an error
	Delete(ctx context.Context, name string) error
	// URL returns the public URL of name
	URL(name string) string
}

// File is an uploaded file as received from a form
type File struct {
	Filename    string
	Size        int64
	ContentType string
	Body        io.Reader
}

// Service validates and stores uploaded images
type Service struct {
	store   ImageStore
	maxSize int64
	now     func() time.Time
	logger  *zap.Logger
}

// Option configures the media service
type Option func(*Service)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithClock overrides the clock used for stored filenames
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// NewService creates a media service. maxSize <= 0 disables the size check.
func NewService(store ImageStore, maxSize int64, opts ...Option) *Service {
	s := &Service{
		store:   store,
		maxSize: maxSize,
		now:     time.Now,
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store saves an uploaded image and returns its stored filename
func (s *Service) Store(ctx context.Context, f File) (string, error) {
	if strings.TrimSpace(f.Filename) == "" || f.Body == nil {
		return "", shared.InvalidInput("No file provided")
	}
	if !AllowedFile(f.Filename) {
		return "", ErrInvalidFormat
	}
	if s.maxSize > 0 && f.Size > s.maxSize {
		return "", shared.InvalidInput(fmt.Sprintf("File exceeds the %d byte upload limit", s.maxSize))
	}

	name := StoredName(f.Filename, s.now())
	if err := s.store.Save(ctx, name, f.Body, f.Size, f.ContentType); err != nil {
		return "", fmt.Errorf("failed to store upload: %w", err)
	}
	s.logger.Debug("Stored upload", zap.String("name", name), zap.Int64("size", f.Size))
	return name, nil
}

// Replace stores f and then removes the previous file, if any
func (s *Service) Replace(ctx context.Context, previous string, f File) (string, error) {
	name, err := s.Store(ctx, f)
	if err != nil {
		return "", err
	}
	if previous != "" && previous != name {
		s.Remove(ctx, previous)
	}
	return name, nil
}

// Remove deletes a stored file. Failures are logged and otherwise ignored.
func (s *Service) Remove(ctx context.Context, name string) {
	if name == "" {
		return
	}
	if err := s.store.Delete(ctx, name); err != nil {
		s.logger.Warn("Failed to remove upload", zap.String("name", name), zap.Error(err))
	}
}

// URL returns the public URL of a stored file, or "" for no file
func (s *Service) URL(name string) string {
	if name == "" {
		return ""
	}
	return s.store.URL(name)
}
