package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// LocalStorage stores objects on the local filesystem under a base
// directory, served by the HTTP layer at /uploads.
type LocalStorage struct {
	baseDir string
}

func NewLocalStorage(baseDir string) (*LocalStorage, error) {
	if baseDir == "" {
		baseDir = "uploads"
	}
	return &LocalStorage{baseDir: baseDir}, nil
}

func (l *LocalStorage) EnsureBucket(ctx context.Context) error {
	return os.MkdirAll(l.baseDir, 0o755)
}

// path resolves key inside baseDir, rejecting traversal outside it.
func (l *LocalStorage) path(key string) (string, error) {
	cleaned := filepath.Clean(filepath.FromSlash(key))
	if cleaned == "." || cleaned == ".." ||
		strings.HasPrefix(cleaned, ".."+string(filepath.Separator)) || filepath.IsAbs(cleaned) {
		return "", fmt.Errorf("invalid object key: %q", key)
	}
	return filepath.Join(l.baseDir, cleaned), nil
}

func (l *LocalStorage) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	dst, err := l.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	f, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		os.Remove(dst)
		return err
	}
	return nil
}

func (l *LocalStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	src, err := l.path(key)
	if err != nil {
		return nil, err
	}
	return os.Open(src)
}

func (l *LocalStorage) Delete(ctx context.Context, key string) error {
	dst, err := l.path(key)
	if err != nil {
		return err
	}
	err = os.Remove(dst)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (l *LocalStorage) URL(key string) string {
	return "/uploads/" + key
}

// BaseDir exposes the root directory so the server can mount it as a
// static route.
func (l *LocalStorage) BaseDir() string {
	return l.baseDir
}
