package service

import (
	"encoding/json"
	"fmt"
	"os"

	tderr "github.com/termdock/termdock/internal/errors"
	"github.com/termdock/termdock/internal/model"
	"github.com/termdock/termdock/internal/validate"
)

// ExportOptions controls what an export includes.
type ExportOptions struct {
	IncludeSettings  bool `json:"includeSettings"`
	IncludeFavorites bool `json:"includeFavorites"`
}

// ImportOptions controls how an imported document is applied.
type ImportOptions struct {
	// Merge adds the imported directories, groups, and custom terminals
	// to the current document instead of replacing it.
	Merge bool `json:"merge"`
	// ReplaceSettings applies the imported settings record as well.
	ReplaceSettings bool `json:"replaceSettings"`
}

// ExportService reads and writes shareable document snapshots.
type ExportService struct {
	manager *Manager
}

// NewExportService creates an export/import service.
func NewExportService(manager *Manager) *ExportService {
	return &ExportService{manager: manager}
}

// Export renders the current document as indented JSON according to the
// options. Without IncludeSettings the settings record is omitted; without
// IncludeFavorites the favorites list is emptied.
func (s *ExportService) Export(opts ExportOptions) ([]byte, error) {
	doc := s.manager.Document()

	out := map[string]any{
		"terminals":   doc.Terminals,
		"groups":      doc.Groups,
		"directories": doc.Directories,
	}
	if opts.IncludeFavorites {
		out["favorites"] = doc.Favorites
	}
	if opts.IncludeSettings {
		out["settings"] = doc.Settings
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// ExportToFile writes an export to the given path.
func (s *ExportService) ExportToFile(path string, opts ExportOptions) error {
	data, err := s.Export(opts)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Import applies an exported document. The payload is validated with the
// same gate the process boundary uses, then migrated to canonical shape
// by ReplaceDocument or merged entry by entry.
func (s *ExportService) Import(data []byte, opts ImportOptions) (*model.Document, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("import is not valid JSON: %w", err)
	}

	if result := validate.Document(raw, "import"); !result.Valid {
		return nil, tderr.InvalidField("import", result.Error)
	}

	if !opts.Merge {
		if !opts.ReplaceSettings {
			// Keep the current settings rather than the imported ones.
			settings, err := settingsAsMap(s.manager.Document().Settings)
			if err != nil {
				return nil, err
			}
			raw["settings"] = settings
		}
		return s.manager.ReplaceDocument(raw)
	}

	return s.merge(raw, opts)
}

// ImportFromFile reads and applies an export file.
func (s *ExportService) ImportFromFile(path string, opts ImportOptions) (*model.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return s.Import(data, opts)
}

func settingsAsMap(s model.Settings) (map[string]any, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}

// merge folds imported entries into the current document, skipping ids
// that already exist, then re-runs the canonical transform.
func (s *ExportService) merge(raw map[string]any, opts ImportOptions) (*model.Document, error) {
	current := s.manager.Document()

	imported, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var incoming model.Document
	if err := json.Unmarshal(imported, &incoming); err != nil {
		return nil, fmt.Errorf("import has malformed entries: %w", err)
	}

	for _, t := range incoming.Terminals {
		if t.IsBuiltin || current.TerminalByID(t.ID) != nil {
			continue
		}
		current.Terminals = append(current.Terminals, t)
	}
	for _, g := range incoming.Groups {
		if current.GroupByID(g.ID) != nil {
			continue
		}
		g.IsDefault = false // the current default group stays
		current.Groups = append(current.Groups, g)
	}
	for _, d := range incoming.Directories {
		if current.DirectoryByID(d.ID) != nil {
			continue
		}
		current.Directories = append(current.Directories, d)
	}
	if opts.ReplaceSettings {
		current.Settings = incoming.Settings
	}

	merged, err := json.Marshal(current)
	if err != nil {
		return nil, err
	}
	var rawMerged map[string]any
	if err := json.Unmarshal(merged, &rawMerged); err != nil {
		return nil, err
	}
	return s.manager.ReplaceDocument(rawMerged)
}
