package store

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/termdock/termdock/internal/config"
	"github.com/termdock/termdock/internal/model"
)

// FileAppStore implements AppStore using a TOML file.
type FileAppStore struct {
	paths *config.Paths
}

// NewAppStore creates a new app config store.
func NewAppStore(paths *config.Paths) *FileAppStore {
	return &FileAppStore{paths: paths}
}

// Load reads the app config from disk.
// Returns an empty config if the file doesn't exist.
func (s *FileAppStore) Load() (*model.AppConfig, error) {
	path := s.paths.AppConfigPath()
	if path == "" {
		return &model.AppConfig{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.AppConfig{}, nil
		}
		return nil, err
	}

	var cfg model.AppConfig
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes the app config to disk.
func (s *FileAppStore) Save(cfg *model.AppConfig) error {
	path := s.paths.AppConfigPath()
	if path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}
