package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore keeps uploaded images on the local filesystem under a single
// directory. Stored names are a random UUID plus the original extension, so
// concurrent uploads with identical original names never collide.
type LocalStore struct {
	uploadDir string
}

func NewLocalStore(uploadDir string) (*LocalStore, error) {
	if err := os.MkdirAll(uploadDir, 0755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &LocalStore{uploadDir: uploadDir}, nil
}

// Save writes data under a collision-resistant name and returns that name.
func (s *LocalStore) Save(originalName string, data []byte) (string, error) {
	name := uuid.New().String() + strings.ToLower(filepath.Ext(originalName))
	path := filepath.Join(s.uploadDir, name)

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing file: %w", err)
	}
	return name, nil
}

// Remove deletes a stored file. A file that is already gone is not an error.
func (s *LocalStore) Remove(storedName string) error {
	path := filepath.Join(s.uploadDir, storedName)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting file: %w", err)
	}
	return nil
}

// Path returns the absolute location of a stored file.
func (s *LocalStore) Path(storedName string) string {
	return filepath.Join(s.uploadDir, storedName)
}
