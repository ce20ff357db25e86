package httpcache

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	defaultFileName = "etherscan_cache.json"
	filePermissions = 0o600
)

// FileStore is a Store persisted as a single JSON file, so cached
// responses survive process restarts.
type FileStore struct {
	mu      sync.Mutex
	path    string
	entries map[string]Entry
}

// DefaultPath returns the conventional cache location in the platform
// temp directory.
func DefaultPath() string {
	return filepath.Join(os.TempDir(), defaultFileName)
}

// NewFileStore opens (or creates) the cache file at the given path.
// A cache file with unreadable contents is discarded and replaced on
// the next write; cached data is always safe to lose.
func NewFileStore(path string) (*FileStore, error) {
	store := &FileStore{
		path:    path,
		entries: make(map[string]Entry),
	}

	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return store, nil
		}

		return nil, fmt.Errorf("read cache file '%s': %w", path, err)
	}

	if err := json.Unmarshal(data, &store.entries); err != nil {
		store.entries = make(map[string]Entry)
	}

	return store, nil
}

// Get returns the body stored under the key if it has not expired.
func (s *FileStore) Get(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, exists := s.entries[key]
	if !exists || entry.expired(time.Now()) {
		return nil, false
	}

	return entry.Body, true
}

// Set stores the body under the key until expiresAt and rewrites the
// cache file.
func (s *FileStore) Set(key string, body []byte, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = Entry{Body: body, ExpiresAt: expiresAt}

	data, err := json.Marshal(s.entries)
	if err != nil {
		return fmt.Errorf("marshal cache entries: %w", err)
	}

	if err := os.WriteFile(s.path, data, filePermissions); err != nil {
		return fmt.Errorf("write cache file '%s': %w", s.path, err)
	}

	return nil
}
