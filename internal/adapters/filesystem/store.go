package filesystem

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"jsoncanvas/internal/ports"
)

// Store implements ports.DocumentStore on a single JSON file
type Store struct {
	path string
}

// Ensure Store implements DocumentStore
var _ ports.DocumentStore = (*Store)(nil)

// NewStore creates a store for the document at path
func NewStore(path string) *Store {
	// Expand ~ to home directory
	if strings.HasPrefix(path, "~") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[1:])
	}
	return &Store{path: path}
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// GetContents returns the current document text
func (s *Store) GetContents() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read document: %w", err)
	}
	return string(data), nil
}

// SetContents replaces the document wholesale: the new text goes to a
// temp file in the same directory and is renamed over the target, so a
// concurrent reader never sees a half-written document.
func (s *Store) SetContents(ctx context.Context, contents string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".jsoncanvas-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(contents); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace document: %w", err)
	}
	return nil
}
