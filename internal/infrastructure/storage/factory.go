package storage

import (
	"context"
	"fmt"

	"github.com/CRT1223/tech13-garage/internal/application/media"
	"github.com/CRT1223/tech13-garage/internal/infrastructure/config"
	"go.uber.org/zap"
)

// New builds the image store selected by storage.driver
func New(ctx context.Context, cfg *config.StorageConfig, logger *zap.Logger) (media.ImageStore, error) {
	switch cfg.Driver {
	case "", "local":
		return NewLocalImageStore(cfg.UploadDir, cfg.PublicPrefix)
	case "s3":
		store, err := NewS3ImageStore(cfg, WithLogger(logger))
		if err != nil {
			return nil, err
		}
		if err := store.EnsureBucket(ctx); err != nil {
			return nil, err
		}
		logger.Info("Using S3 image storage", zap.String("bucket", store.Bucket()))
		return store, nil
	case "memory":
		store := NewMemoryImageStore()
		store.BaseURL = cfg.PublicPrefix
		return store, nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}
}
