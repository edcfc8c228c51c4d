// Package resolver turns loose user references (ids, names, interactive
// picks) into concrete entities.
package resolver

import (
	"fmt"
	"strings"

	tderr "github.com/termdock/termdock/internal/errors"
	"github.com/termdock/termdock/internal/model"
	"github.com/termdock/termdock/internal/prompt"
	"github.com/termdock/termdock/internal/service"
)

// DirectoryResolver resolves a directory reference by id, then by name,
// then by prompting when interactive.
type DirectoryResolver struct {
	manager  *service.Manager
	prompter prompt.Prompter
}

// NewDirectoryResolver creates a new directory resolver.
func NewDirectoryResolver(manager *service.Manager, prompter prompt.Prompter) *DirectoryResolver {
	return &DirectoryResolver{manager: manager, prompter: prompter}
}

// Resolve finds a directory by id or name. An empty ref prompts for a
// selection when a prompter is available.
func (r *DirectoryResolver) Resolve(ref string) (*model.Directory, error) {
	doc := r.manager.Document()

	if len(doc.Directories) == 0 {
		return nil, tderr.DirectoryNotFound(ref)
	}

	if ref != "" {
		if dir := doc.DirectoryByID(ref); dir != nil {
			return dir, nil
		}

		// Name match, but only when unambiguous
		var matches []*model.Directory
		for i := range doc.Directories {
			if strings.EqualFold(doc.Directories[i].Name, ref) {
				matches = append(matches, &doc.Directories[i])
			}
		}
		switch len(matches) {
		case 1:
			return matches[0], nil
		case 0:
			return nil, tderr.DirectoryNotFound(ref)
		}
		// Multiple name matches fall through to a prompt
	}

	options := make([]prompt.Option, 0, len(doc.Directories))
	for _, d := range doc.Directories {
		if ref != "" && !strings.EqualFold(d.Name, ref) {
			continue
		}
		options = append(options, prompt.Option{
			Label: fmt.Sprintf("%s (%s)", d.Name, d.Path),
			Value: d.ID,
		})
	}

	selected, err := r.prompter.Select("Select directory", options)
	if err != nil {
		return nil, err
	}
	return doc.DirectoryByID(selected), nil
}
