package config

import (
	"os"
	"path/filepath"
)

const (
	ConfigDirName    = ".config/termdock"
	DocumentFileName = "termdock.json"
	AppConfigName    = "config.toml"
)

// Paths provides path resolution for termdock data files.
type Paths struct {
	configDir string // Custom location, empty for ~/.config/termdock
}

// NewPaths creates a Paths resolver. An empty configDir uses the default
// location under the user's home directory.
func NewPaths(configDir string) *Paths {
	return &Paths{configDir: configDir}
}

// ConfigDir returns the directory holding all termdock files.
func (p *Paths) ConfigDir() string {
	if p.configDir != "" {
		return p.configDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ConfigDirName)
}

// DocumentPath returns the path of the persisted configuration document.
func (p *Paths) DocumentPath() string {
	dir := p.ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, DocumentFileName)
}

// AppConfigPath returns the path of the tool-level TOML config.
func (p *Paths) AppConfigPath() string {
	dir := p.ConfigDir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, AppConfigName)
}
