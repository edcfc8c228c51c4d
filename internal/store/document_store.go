package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/termdock/termdock/internal/config"
	"github.com/termdock/termdock/internal/migrate"
	"github.com/termdock/termdock/internal/model"
)

// FileDocumentStore implements DocumentStore using the filesystem.
//
// Writes go through a temp file and rename so a crash mid-write never
// leaves a half-written document. The store is the single writer of the
// document file; migration's NeedsSave decision assumes nobody else is
// rewriting it concurrently.
type FileDocumentStore struct {
	paths    *config.Paths
	defaults migrate.Defaults
}

// NewDocumentStore creates a document store with the current build's
// defaults.
func NewDocumentStore(paths *config.Paths) *FileDocumentStore {
	return &FileDocumentStore{
		paths:    paths,
		defaults: migrate.CurrentDefaults(),
	}
}

// Load reads, migrates, and (if drifted) re-persists the document.
func (s *FileDocumentStore) Load() (*model.Document, error) {
	raw, err := s.Raw()
	if err != nil {
		return nil, err
	}

	result := migrate.Run(raw, s.defaults)
	if result.NeedsSave {
		if err := s.Save(result.Document); err != nil {
			return nil, fmt.Errorf("failed to persist migrated document: %w", err)
		}
	}
	return result.Document, nil
}

// Raw reads the persisted document without migrating.
func (s *FileDocumentStore) Raw() (map[string]any, error) {
	path := s.paths.DocumentPath()
	if path == "" {
		return map[string]any{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]any{}, nil
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid document JSON at %s: %w", path, err)
	}
	return raw, nil
}

// Save writes the document atomically.
func (s *FileDocumentStore) Save(doc *model.Document) error {
	path := s.paths.DocumentPath()
	if path == "" {
		return fmt.Errorf("cannot resolve document path")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

// Exists reports whether a document file is present on disk.
func (s *FileDocumentStore) Exists() bool {
	path := s.paths.DocumentPath()
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
