package model

import "strings"

// PathFormat controls how a directory path is rendered into a terminal's
// launch command.
type PathFormat string

const (
	PathFormatUnix    PathFormat = "unix"
	PathFormatWindows PathFormat = "windows"
)

// Terminal represents a launchable terminal emulator.
// Built-in terminals ship with the application and are re-inserted on load
// if missing; users may hide or reorder them but not delete them.
type Terminal struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Icon       string     `json:"icon"`
	Command    string     `json:"command"` // template containing a {path} placeholder
	PathFormat PathFormat `json:"pathFormat"`
	IsBuiltin  bool       `json:"isBuiltin"`
	Hidden     bool       `json:"hidden"`
	Order      int        `json:"order"`
}

// CommandFor renders the launch command for the given directory path,
// converting path separators to the terminal's expected format.
func (t *Terminal) CommandFor(path string) string {
	return strings.ReplaceAll(t.Command, "{path}", t.FormatPath(path))
}

// FormatPath converts a path to the terminal's path format.
func (t *Terminal) FormatPath(path string) string {
	switch t.PathFormat {
	case PathFormatWindows:
		return strings.ReplaceAll(path, "/", `\`)
	default:
		return strings.ReplaceAll(path, `\`, "/")
	}
}
