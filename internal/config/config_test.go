package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.DBName != "sap_technologies" {
		t.Errorf("default db name = %q", cfg.DBName)
	}
	if cfg.Storage.Backend != "local" {
		t.Errorf("default storage backend = %q, want local", cfg.Storage.Backend)
	}
	if cfg.MaxPhotoBytes != 5*1024*1024 {
		t.Errorf("default photo limit = %d, want 5MB", cfg.MaxPhotoBytes)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("STORAGE_BACKEND", "minio")
	t.Setenv("MINIO_USE_SSL", "true")
	t.Setenv("MAX_PHOTO_BYTES", "1048576")

	cfg := Load()
	if cfg.Port != "9000" {
		t.Errorf("port = %q, want 9000", cfg.Port)
	}
	if cfg.Storage.Backend != "minio" {
		t.Errorf("backend = %q, want minio", cfg.Storage.Backend)
	}
	if !cfg.Storage.MinioUseSSL {
		t.Error("MINIO_USE_SSL=true not applied")
	}
	if cfg.MaxPhotoBytes != 1048576 {
		t.Errorf("photo limit = %d, want 1048576", cfg.MaxPhotoBytes)
	}
}

func TestLoadBadValuesFallBack(t *testing.T) {
	t.Setenv("MINIO_USE_SSL", "not-a-bool")
	t.Setenv("MAX_PHOTO_BYTES", "not-a-number")

	cfg := Load()
	if cfg.Storage.MinioUseSSL {
		t.Error("unparseable bool should fall back to default")
	}
	if cfg.MaxPhotoBytes != 5*1024*1024 {
		t.Errorf("unparseable int should fall back, got %d", cfg.MaxPhotoBytes)
	}
}
