// Package datastore persists game records as pretty-printed JSON files.
//
// Failures never propagate as errors or panics: Save reports false and Load
// reports absence, matching the contract the CLI relies on.
package datastore

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Store reads and writes JSON documents under a single data directory.
type Store struct {
	dir    string
	logger *log.Logger
}

// New creates the data directory if needed and returns a Store over it.
func New(dir string, logger *log.Logger) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		dir = "data"
	}
	if logger == nil {
		logger = log.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &Store{dir: dir, logger: logger}, nil
}

// Dir returns the root data directory.
func (s *Store) Dir() string {
	return s.dir
}

// Save writes v as indented JSON under the given key. It returns false on
// any marshal or I/O error; errors are logged, never raised.
func (s *Store) Save(key string, v any) bool {
	path, ok := s.path(key)
	if !ok {
		s.logger.Printf("datastore: refusing invalid key %q", key)
		return false
	}

	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		s.logger.Printf("datastore: marshal %q: %v", key, err)
		return false
	}
	b = append(b, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		s.logger.Printf("datastore: mkdir for %q: %v", key, err)
		return false
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		s.logger.Printf("datastore: write %q: %v", key, err)
		return false
	}
	return true
}

// Load reads the document stored under key into out. It returns false when
// the document is missing, unreadable or not valid JSON.
func (s *Store) Load(key string, out any) bool {
	path, ok := s.path(key)
	if !ok {
		s.logger.Printf("datastore: refusing invalid key %q", key)
		return false
	}

	b, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Printf("datastore: read %q: %v", key, err)
		}
		return false
	}
	if err := json.Unmarshal(b, out); err != nil {
		s.logger.Printf("datastore: parse %q: %v", key, err)
		return false
	}
	return true
}

// Delete removes the document stored under key. Missing documents count as
// deleted.
func (s *Store) Delete(key string) bool {
	path, ok := s.path(key)
	if !ok {
		return false
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		s.logger.Printf("datastore: delete %q: %v", key, err)
		return false
	}
	return true
}

// List returns every stored key, sorted.
func (s *Store) List() []string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.Printf("datastore: list: %v", err)
		return []string{}
	}
	keys := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		keys = append(keys, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(keys)
	return keys
}

// path maps a key to its file path, rejecting anything that would escape
// the data directory.
func (s *Store) path(key string) (string, bool) {
	key = strings.TrimSpace(key)
	key = strings.TrimSuffix(key, ".json")
	if key == "" || key == "." || key == ".." {
		return "", false
	}
	if strings.ContainsAny(key, `/\`) {
		return "", false
	}
	return filepath.Join(s.dir, key+".json"), true
}
