package history

import (
	"crypto/md5"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Store persists the last committed selection per catalogue key
type Store struct {
	d *diskv.Diskv
}

// DefaultDir returns the history location under the user cache directory
func DefaultDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "vselect", "history")
}

// Open creates a store rooted at dir
func Open(dir string) *Store {
	return &Store{d: diskv.New(diskv.Options{
		BasePath:     dir,
		Transform:    func(string) []string { return []string{} },
		CacheSizeMax: 64 * 1024,
	})}
}

// Key derives a stable key from a set of catalogue sources.
// Order does not matter; relative paths are made absolute first.
func Key(sources []string) string {
	norm := make([]string, 0, len(sources))
	for _, s := range sources {
		if abs, err := filepath.Abs(s); err == nil {
			s = abs
		}
		norm = append(norm, s)
	}
	sort.Strings(norm)
	sum := md5.Sum([]byte(strings.Join(norm, "\x00")))
	return fmt.Sprintf("%x", sum[:8])
}

// Load returns the values saved under key, or nil if there are none
func (s *Store) Load(key string) ([]string, error) {
	if !s.d.Has(key) {
		return nil, nil
	}
	data, err := s.d.Read(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse history: %w", err)
	}
	return values, nil
}

// Save replaces the values stored under key. An empty selection erases it.
func (s *Store) Save(key string, values []string) error {
	if len(values) == 0 {
		if s.d.Has(key) {
			if err := s.d.Erase(key); err != nil {
				return fmt.Errorf("failed to erase history: %w", err)
			}
		}
		return nil
	}
	data, err := json.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to marshal history: %w", err)
	}
	if err := s.d.Write(key, data); err != nil {
		return fmt.Errorf("failed to write history: %w", err)
	}
	return nil
}

// Filter keeps the remembered values that still exist, in their saved order.
// Single mode keeps at most one.
func Filter(values []string, exists func(string) bool, multi bool) []string {
	var kept []string
	for _, v := range values {
		if !exists(v) {
			continue
		}
		kept = append(kept, v)
		if !multi {
			break
		}
	}
	return kept
}
