package model

// Settings holds application preferences. Any leaf missing from a
// persisted document (including inside MCP) is filled from defaults during
// migration without disturbing present leaves.
type Settings struct {
	AutoLaunch     bool        `json:"autoLaunch"`
	StartMinimized bool        `json:"startMinimized"`
	MinimizeToTray bool        `json:"minimizeToTray"`
	GlobalShortcut string      `json:"globalShortcut"`
	Theme          string      `json:"theme"`    // "dark" or "light"
	Language       string      `json:"language"` // locale code, e.g. "en", "zh-TW"
	ShowTabText    bool        `json:"showTabText"`
	RecentLimit    int         `json:"recentLimit"`
	MCP            MCPSettings `json:"mcp"`
}

// MCPSettings configures the built-in MCP server.
type MCPSettings struct {
	Enabled bool `json:"enabled"`
	Port    int  `json:"port"`
}
