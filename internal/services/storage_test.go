package services

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStoragePut(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir, "http://localhost:3000/")

	url, err := storage.Put("cv-abc123-user_1", []byte("payload"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if url != "http://localhost:3000/uploads/cv-abc123-user_1" {
		t.Fatalf("unexpected public url: %q", url)
	}

	data, err := os.ReadFile(filepath.Join(dir, "cv-abc123-user_1"))
	if err != nil {
		t.Fatalf("expected object on disk: %v", err)
	}
	if string(data) != "payload" {
		t.Fatalf("unexpected object contents: %q", data)
	}
}

func TestStoragePutStripsPathSeparators(t *testing.T) {
	dir := t.TempDir()
	storage := NewStorageService(dir, "http://localhost:3000")

	url, err := storage.Put("../escape", []byte("x"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if url != "http://localhost:3000/uploads/escape" {
		t.Fatalf("expected sanitized object name, got %q", url)
	}
}
