// filepath: internal/storage/file.go
// Package storage provides access to media files on the local filesystem.
package storage

import (
	"fmt"
	"os"
)

// Local is the FileStore backed by the host filesystem.
type Local struct{}

// NewLocal creates a new Local file store.
func NewLocal() *Local {
	return &Local{}
}

// Exists reports whether path names a regular file. Directories and other
// special files are reported as absent so they are never removed.
func (l *Local) Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("could not stat file %s: %w", path, err)
	}
	return info.Mode().IsRegular(), nil
}

// Remove deletes a single file.
func (l *Local) Remove(path string) error {
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("failed to delete file %s: %w", path, err)
	}
	return nil
}
