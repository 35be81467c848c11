package session

import (
	"os"
	"sync"
)

// Storage persists a single session record. It stands in for the browser
// local storage the panel's session lives in.
type Storage interface {
	Read() ([]byte, error)
	Write(data []byte) error
	Remove() error
}

// FileStorage keeps the record in one JSON file.
type FileStorage struct {
	mu   sync.Mutex
	path string
}

// NewFileStorage builds storage rooted at path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Read returns the stored record, or os.ErrNotExist when none exists.
func (s *FileStorage) Read() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.ReadFile(s.path)
}

// Write replaces the stored record.
func (s *FileStorage) Write(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return os.WriteFile(s.path, data, 0o600)
}

// Remove discards the stored record. Removing an absent record is not an
// error.
func (s *FileStorage) Remove() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
