package storage

import (
	"context"
	"io"
	"time"

	"github.com/saphaniox/sap-technologies.ug-sub002/internal/config"
)

// ObjectStorage defines common object operations across backends.
type ObjectStorage interface {
	EnsureBucket(ctx context.Context) error
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
	// URL returns the public URL for an object key.
	URL(key string) string
}

// Default is the configured backend, set by Init.
var Default ObjectStorage

// Init selects and initializes the storage backend from config.
func Init(cfg config.StorageConfig) error {
	var backend ObjectStorage
	var err error

	switch cfg.Backend {
	case "minio":
		backend, err = NewMinioStorage(cfg)
	default:
		backend, err = NewLocalStorage(cfg.LocalDir)
	}
	if err != nil {
		return err
	}

	ctx, cancel := contextWithTimeout()
	defer cancel()
	if err := backend.EnsureBucket(ctx); err != nil {
		return err
	}

	Default = backend
	return nil
}

func contextWithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}
