package model

// Default values for the current release. Migration fills missing fields
// from these; every default in the system traces back to one of the
// declarations below.

// DefaultGroupIcon is the placeholder icon for groups and directories
// synthesized or repaired during migration.
const DefaultGroupIcon = "📁"

// LegacyTerminalTypes maps the legacy per-directory `type` enum to the
// terminal id that replaced it. Unknown legacy types have no mapping and
// leave terminalId unset for a higher layer to surface.
var LegacyTerminalTypes = map[string]string{
	"wsl":        "wsl-ubuntu",
	"powershell": "powershell",
}

// DefaultTerminals returns the built-in terminals shipped with this
// release. Every id here must be present in every migrated document.
func DefaultTerminals() []Terminal {
	return []Terminal{
		{
			ID:         "wsl-ubuntu",
			Name:       "Ubuntu (WSL)",
			Icon:       "🐧",
			Command:    `wsl.exe -d Ubuntu --cd "{path}"`,
			PathFormat: PathFormatUnix,
			IsBuiltin:  true,
			Order:      0,
		},
		{
			ID:         "powershell",
			Name:       "PowerShell",
			Icon:       "💠",
			Command:    `powershell.exe -NoExit -Command "Set-Location '{path}'"`,
			PathFormat: PathFormatWindows,
			IsBuiltin:  true,
			Order:      1,
		},
		{
			ID:         "cmd",
			Name:       "Command Prompt",
			Icon:       "⬛",
			Command:    `cmd.exe /K "cd /d {path}"`,
			PathFormat: PathFormatWindows,
			IsBuiltin:  true,
			Order:      2,
		},
		{
			ID:         "git-bash",
			Name:       "Git Bash",
			Icon:       "🐚",
			Command:    `"C:\Program Files\Git\git-bash.exe" --cd="{path}"`,
			PathFormat: PathFormatUnix,
			IsBuiltin:  true,
			Order:      3,
		},
	}
}

// DefaultGroups returns the groups for a fresh document: a single
// default group.
func DefaultGroups() []Group {
	return []Group{
		{
			ID:        "default",
			Name:      "General",
			Icon:      DefaultGroupIcon,
			IsDefault: true,
			Order:     0,
		},
	}
}

// DefaultSettings returns the settings for a fresh document.
func DefaultSettings() Settings {
	return Settings{
		AutoLaunch:     false,
		StartMinimized: false,
		MinimizeToTray: true,
		GlobalShortcut: "CommandOrControl+Alt+T",
		Theme:          "dark",
		Language:       "en",
		ShowTabText:    true,
		RecentLimit:    10,
		MCP: MCPSettings{
			Enabled: false,
			Port:    4320,
		},
	}
}

// DefaultDocument returns a complete canonical document for first launch.
func DefaultDocument() *Document {
	return &Document{
		Terminals:   DefaultTerminals(),
		Groups:      DefaultGroups(),
		Directories: []Directory{},
		Favorites:   []string{},
		Settings:    DefaultSettings(),
	}
}
