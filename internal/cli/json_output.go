package cli

import (
	"encoding/json"
	"fmt"

	"github.com/termdock/termdock/internal/model"
)

// directoryJson is a directory with favorite status and a resolved
// terminal name, for JSON output.
type directoryJson struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	Group    string `json:"group"`
	Terminal string `json:"terminal,omitempty"`
	Icon     string `json:"icon,omitempty"`
	Favorite bool   `json:"favorite"`
	LastUsed *int64 `json:"lastUsed,omitempty"`
}

func directoryToJson(doc *model.Document, d model.Directory) directoryJson {
	out := directoryJson{
		ID:       d.ID,
		Name:     d.Name,
		Path:     d.Path,
		Group:    d.Group,
		Icon:     d.Icon,
		Favorite: doc.IsFavorite(d.ID),
		LastUsed: d.LastUsed,
	}
	if term := doc.TerminalByID(d.TerminalID); term != nil {
		out.Terminal = term.Name
	}
	return out
}

// ListOutput is the JSON shape of the list command.
type ListOutput struct {
	Directories []directoryJson `json:"directories"`
}

// NewListOutput builds a ListOutput from the given directories.
func NewListOutput(doc *model.Document, dirs []model.Directory) ListOutput {
	out := ListOutput{Directories: make([]directoryJson, len(dirs))}
	for i, d := range dirs {
		out.Directories[i] = directoryToJson(doc, d)
	}
	return out
}

// printJson marshals the value with indentation and prints it.
func printJson(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
