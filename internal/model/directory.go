package model

// Directory is a saved directory shortcut.
//
// TerminalID is a foreign key into the terminals collection. It is not
// required to resolve: a terminal can be deleted after a directory
// references it, and the presentation layer shows such directories as
// "unknown terminal". Group always resolves to an existing group id after
// migration.
type Directory struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Path       string `json:"path"`
	TerminalID string `json:"terminalId"`
	Group      string `json:"group"`
	Icon       string `json:"icon"`
	Order      int    `json:"order"`
	LastUsed   *int64 `json:"lastUsed"` // unix millis, null if never launched
}
