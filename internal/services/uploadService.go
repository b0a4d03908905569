package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/saphaniox/sap-technologies.ug-sub002/internal/storage"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// storeUpload validates an uploaded image and writes it to object storage
// under prefix, returning the object key.
func storeUpload(ctx context.Context, fh *multipart.FileHeader, prefix string) (string, error) {
	if fh.Size > maxPhotoBytes {
		return "", ErrFileTooLarge
	}

	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return "", ErrNotAnImage
	}

	file, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read uploaded file: %w", err)
	}

	key := fmt.Sprintf("%s/%s_%s", prefix, primitive.NewObjectID().Hex(), fh.Filename)
	err = storage.Default.Put(ctx, key, bytes.NewReader(fileBytes), int64(len(fileBytes)), contentType)
	if err != nil {
		return "", fmt.Errorf("failed to store uploaded file: %w", err)
	}
	return key, nil
}

// objectURL resolves an object key to a public URL, tolerating a missing
// backend so pure-logic tests do not need storage configured.
func objectURL(key string) string {
	if key == "" || storage.Default == nil {
		return ""
	}
	return storage.Default.URL(key)
}

// deleteObject removes a stored object, ignoring an empty key.
func deleteObject(ctx context.Context, key string) error {
	if key == "" || storage.Default == nil {
		return nil
	}
	return storage.Default.Delete(ctx, key)
}
