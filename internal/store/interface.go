package store

import "github.com/termdock/termdock/internal/model"

// DocumentStore handles persistence of the configuration document.
type DocumentStore interface {
	// Load reads the persisted document, migrates it to the canonical
	// shape, and re-persists it when migration reports drift. A missing
	// file yields a fresh default document.
	Load() (*model.Document, error)
	Save(doc *model.Document) error
	// Raw reads the persisted document without migrating, for dry-run
	// inspection. A missing file yields an empty map.
	Raw() (map[string]any, error)
	Exists() bool
}

// AppStore handles tool-level preferences (data location, serve port),
// kept separate from the user's document.
type AppStore interface {
	Load() (*model.AppConfig, error)
	Save(cfg *model.AppConfig) error
}
