package storage

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
)

func newTestLocal(t *testing.T) *LocalStorage {
	t.Helper()
	ls, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	if err := ls.EnsureBucket(context.Background()); err != nil {
		t.Fatalf("EnsureBucket: %v", err)
	}
	return ls
}

func TestLocalStorageRoundTrip(t *testing.T) {
	ls := newTestLocal(t)
	ctx := context.Background()
	content := []byte("hello world")

	err := ls.Put(ctx, "nominations/abc_photo.jpg", bytes.NewReader(content), int64(len(content)), "image/jpeg")
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	rc, err := ls.Get(ctx, "nominations/abc_photo.jpg")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer rc.Close()

	got, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, content) {
		t.Errorf("round trip mismatch: got %q", got)
	}

	if err := ls.Delete(ctx, "nominations/abc_photo.jpg"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := ls.Get(ctx, "nominations/abc_photo.jpg"); err == nil {
		t.Error("Get after Delete should fail")
	}
}

func TestLocalStorageDeleteMissingIsNoop(t *testing.T) {
	ls := newTestLocal(t)
	if err := ls.Delete(context.Background(), "does/not/exist.png"); err != nil {
		t.Errorf("deleting a missing object should not error: %v", err)
	}
}

func TestLocalStorageRejectsTraversal(t *testing.T) {
	ls := newTestLocal(t)
	ctx := context.Background()

	for _, key := range []string{"../outside.txt", "a/../../outside.txt", "/etc/passwd", ".", ".."} {
		err := ls.Put(ctx, key, strings.NewReader("x"), 1, "text/plain")
		if err == nil {
			t.Errorf("Put(%q) should be rejected", key)
		}
		if _, err := ls.Get(ctx, key); err == nil {
			t.Errorf("Get(%q) should be rejected", key)
		}
	}
}

func TestLocalStorageAllowsDottedNames(t *testing.T) {
	ls := newTestLocal(t)
	ctx := context.Background()

	// Names that merely start with dots are not traversal.
	for _, key := range []string{"..archive/photo.png", ".hidden/file.txt", "a/..b.txt"} {
		if err := ls.Put(ctx, key, strings.NewReader("x"), 1, "text/plain"); err != nil {
			t.Errorf("Put(%q) should be accepted: %v", key, err)
		}
		if _, err := ls.Get(ctx, key); err != nil {
			t.Errorf("Get(%q) should succeed: %v", key, err)
		}
	}
}

func TestLocalStorageURL(t *testing.T) {
	ls := newTestLocal(t)
	if got := ls.URL("certificates/SAPT-AWD-12345678.pdf"); got != "/uploads/certificates/SAPT-AWD-12345678.pdf" {
		t.Errorf("URL = %q", got)
	}
}
