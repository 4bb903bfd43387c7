package services

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/davyken/Job-Fusion/internal/apperrors"
)

// StorageService is the object-store collaborator: put bytes under a
// caller-chosen name, get back a deterministic public URL.
type StorageService interface {
	Put(name string, data []byte) (string, error)
	EnsureUploadDir() error
}

type storageService struct {
	uploadPath    string
	publicBaseURL string
}

func NewStorageService(uploadPath, publicBaseURL string) StorageService {
	return &storageService{
		uploadPath:    uploadPath,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

func (s *storageService) EnsureUploadDir() error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create upload directory: %w", err)
	}

	return nil
}

// Put implements StorageService.
func (s *storageService) Put(name string, data []byte) (string, error) {
	// Names come from this codebase (cv-/resume- conventions); Base guards
	// against separators sneaking into the object name anyway.
	name = filepath.Base(name)

	filePath := filepath.Join(s.uploadPath, name)
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("%w: failed to write %s: %v", apperrors.ErrStorage, name, err)
	}

	return fmt.Sprintf("%s/uploads/%s", s.publicBaseURL, name), nil
}
