// Package storage keeps uploaded files on local disk. The parser subprocess
// reads resumes straight off the filesystem, so stored paths must resolve to
// absolute local paths.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/AnshulBytes112/DsceAlumniConnect/internal/domain"
)

const MaxFileSize = 5 * 1024 * 1024 // 5MB

var (
	ErrFileTooLarge    = errors.New("file exceeds the 5MB size limit")
	ErrInvalidType     = errors.New("unsupported file type")
	ErrEmptyFile       = errors.New("file is empty")
	ErrInvalidPath     = errors.New("invalid file path")
	ErrUnknownCategory = errors.New("unknown file category")
)

var allowedResumeTypes = map[string]bool{
	"application/pdf":    true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// ValidateResume checks size and declared content type for a resume upload.
func ValidateResume(size int64, contentType string) error {
	return validate(size, contentType, allowedResumeTypes)
}

// ValidateImage checks size and declared content type for a picture upload.
func ValidateImage(size int64, contentType string) error {
	return validate(size, contentType, allowedImageTypes)
}

func validate(size int64, contentType string, allowed map[string]bool) error {
	if size == 0 {
		return ErrEmptyFile
	}
	if size > MaxFileSize {
		return ErrFileTooLarge
	}
	if !allowed[strings.ToLower(contentType)] {
		return fmt.Errorf("%w: %s", ErrInvalidType, contentType)
	}
	return nil
}

// DiskStore stores blobs under baseDir/<category>/<uuid><ext> and hands out
// category-relative paths for persistence on the user record.
type DiskStore struct {
	baseDir string
}

func NewDiskStore(baseDir string) (*DiskStore, error) {
	for _, category := range []string{domain.FileCategoryResume, domain.FileCategoryProfile} {
		if err := os.MkdirAll(filepath.Join(baseDir, category), 0o755); err != nil {
			return nil, fmt.Errorf("create upload dir: %w", err)
		}
	}
	return &DiskStore{baseDir: baseDir}, nil
}

func (s *DiskStore) Save(data []byte, originalName, category string) (string, error) {
	if category != domain.FileCategoryResume && category != domain.FileCategoryProfile {
		return "", fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	ext := filepath.Ext(originalName)
	name := uuid.New().String() + ext
	rel := filepath.Join(category, name)

	if err := os.WriteFile(filepath.Join(s.baseDir, rel), data, 0o644); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return rel, nil
}

// Resolve maps a stored relative path to an absolute one, rejecting any path
// that would escape the upload directory.
func (s *DiskStore) Resolve(relativePath string) (string, error) {
	if relativePath == "" {
		return "", ErrInvalidPath
	}

	abs, err := filepath.Abs(filepath.Join(s.baseDir, relativePath))
	if err != nil {
		return "", fmt.Errorf("resolve path: %w", err)
	}

	base, err := filepath.Abs(s.baseDir)
	if err != nil {
		return "", fmt.Errorf("resolve base dir: %w", err)
	}

	if !strings.HasPrefix(abs, base+string(os.PathSeparator)) {
		return "", fmt.Errorf("%w: %s", ErrInvalidPath, relativePath)
	}

	return abs, nil
}

// Delete removes a stored file, reporting whether anything was deleted.
func (s *DiskStore) Delete(relativePath string) bool {
	abs, err := s.Resolve(relativePath)
	if err != nil {
		return false
	}
	return os.Remove(abs) == nil
}
