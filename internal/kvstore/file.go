package kvstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// fileExtension is the extension used for entry files.
const fileExtension = ".json"

// FileStore persists each key as a JSON envelope file in a directory.
type FileStore struct {
	directory string
	ttl       time.Duration
	now       func() time.Time

	// mu serialises file operations within the process.
	mu sync.RWMutex
}

// NewFileStore creates a store rooted at directory, creating it if needed.
// A ttl <= 0 disables expiry.
func NewFileStore(directory string, ttl time.Duration) (*FileStore, error) {
	if directory == "" {
		return nil, errors.New("store directory cannot be empty")
	}
	if err := os.MkdirAll(directory, 0o750); err != nil {
		return nil, fmt.Errorf("creating store directory: %w", err)
	}
	return &FileStore{directory: directory, ttl: ttl, now: time.Now}, nil
}

// Get reads the value stored under key. Expired entries are removed and
// reported as ErrExpired.
func (s *FileStore) Get(key string) ([]byte, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	s.mu.RLock()
	path := s.keyToFilePath(key)
	data, err := os.ReadFile(path)
	s.mu.RUnlock()
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading entry %q: %w", key, err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("decoding entry %q: %w", key, err)
	}

	if entry.IsExpired(s.now()) {
		s.mu.Lock()
		_ = os.Remove(path)
		s.mu.Unlock()
		return nil, ErrExpired
	}

	return entry.Value, nil
}

// Put writes value under key atomically.
func (s *FileStore) Put(key string, value []byte) error {
	if key == "" {
		return ErrInvalidKey
	}

	data, err := json.MarshalIndent(newEntry(key, value, s.now(), s.ttl), "", "  ")
	if err != nil {
		return fmt.Errorf("encoding entry %q: %w", key, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.keyToFilePath(key)
	tmpPath := path + ".tmp"
	if writeErr := os.WriteFile(tmpPath, data, 0o600); writeErr != nil {
		return fmt.Errorf("writing entry %q: %w", key, writeErr)
	}
	if renameErr := os.Rename(tmpPath, path); renameErr != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("renaming entry %q: %w", key, renameErr)
	}
	return nil
}

// Delete removes key. It is idempotent.
func (s *FileStore) Delete(key string) error {
	if key == "" {
		return ErrInvalidKey
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.keyToFilePath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("deleting entry %q: %w", key, err)
	}
	return nil
}

// CleanupExpired removes every expired entry file and returns how many were removed.
// Unreadable or undecodable files are skipped.
func (s *FileStore) CleanupExpired() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	dirEntries, err := os.ReadDir(s.directory)
	if err != nil {
		return 0, fmt.Errorf("reading store directory: %w", err)
	}

	now := s.now()
	removed := 0
	for _, de := range dirEntries {
		if de.IsDir() || filepath.Ext(de.Name()) != fileExtension {
			continue
		}
		path := filepath.Join(s.directory, de.Name())
		data, readErr := os.ReadFile(path)
		if readErr != nil {
			continue
		}
		var entry Entry
		if json.Unmarshal(data, &entry) != nil {
			continue
		}
		if entry.IsExpired(now) && os.Remove(path) == nil {
			removed++
		}
	}
	return removed, nil
}

// keyToFilePath maps a key to a file name. Keys are query-escaped, so the
// mapping is reversible and distinct keys never share a file.
func (s *FileStore) keyToFilePath(key string) string {
	return filepath.Join(s.directory, url.QueryEscape(key)+fileExtension)
}
