package migrate

import "github.com/termdock/termdock/internal/model"

var (
	settingsKeys = []string{
		"autoLaunch", "startMinimized", "minimizeToTray", "globalShortcut",
		"theme", "language", "showTabText", "recentLimit", "mcp",
	}
	mcpKeys = []string{"enabled", "port"}
)

// migrateSettings fills every missing leaf from the defaults, at any
// depth, without overwriting a leaf that is present. A leaf of the wrong
// type counts as missing: the canonical document cannot represent it, so
// the default takes its place.
func migrateSettings(raw any, defaults model.Settings) (model.Settings, bool) {
	m, isMap := asMap(raw)
	if !isMap {
		return defaults, true
	}

	changed := hasExtraKeys(m, settingsKeys)
	out := model.Settings{}

	out.AutoLaunch, changed = fillBool(m, "autoLaunch", defaults.AutoLaunch, changed)
	out.StartMinimized, changed = fillBool(m, "startMinimized", defaults.StartMinimized, changed)
	out.MinimizeToTray, changed = fillBool(m, "minimizeToTray", defaults.MinimizeToTray, changed)
	out.GlobalShortcut, changed = fillString(m, "globalShortcut", defaults.GlobalShortcut, changed)
	out.Theme, changed = fillString(m, "theme", defaults.Theme, changed)
	out.Language, changed = fillString(m, "language", defaults.Language, changed)
	out.ShowTabText, changed = fillBool(m, "showTabText", defaults.ShowTabText, changed)
	out.RecentLimit, changed = fillInt(m, "recentLimit", defaults.RecentLimit, changed)

	if mcpMap, isMap := asMap(m["mcp"]); isMap {
		if hasExtraKeys(mcpMap, mcpKeys) {
			changed = true
		}
		out.MCP.Enabled, changed = fillBool(mcpMap, "enabled", defaults.MCP.Enabled, changed)
		out.MCP.Port, changed = fillInt(mcpMap, "port", defaults.MCP.Port, changed)
	} else {
		out.MCP = defaults.MCP
		changed = true
	}

	return out, changed
}

func fillBool(m map[string]any, key string, def bool, changed bool) (bool, bool) {
	v, ok := asBool(m[key])
	if !ok {
		return def, true
	}
	return v, changed
}

func fillString(m map[string]any, key string, def string, changed bool) (string, bool) {
	v, ok := asString(m[key])
	if !ok {
		return def, true
	}
	return v, changed
}

func fillInt(m map[string]any, key string, def int, changed bool) (int, bool) {
	v, ok := asInt(m[key])
	if !ok {
		return def, true
	}
	return v, changed
}
