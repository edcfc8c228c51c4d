package migrate

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/termdock/termdock/internal/model"
)

// docToRaw round-trips a document through JSON, producing the raw shape a
// re-loaded persisted file would have.
func docToRaw(t *testing.T, doc *model.Document) map[string]any {
	t.Helper()

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal document: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal document: %v", err)
	}
	return raw
}

// rawFromJSON decodes a JSON literal used as test input.
func rawFromJSON(t *testing.T, literal string) map[string]any {
	t.Helper()

	var raw map[string]any
	if err := json.Unmarshal([]byte(literal), &raw); err != nil {
		t.Fatalf("bad test literal: %v", err)
	}
	return raw
}

func TestRun_EmptyDocument(t *testing.T) {
	result := Run(map[string]any{}, CurrentDefaults())

	if !result.NeedsSave {
		t.Error("empty document should need saving")
	}

	doc := result.Document
	if len(doc.Terminals) != len(model.DefaultTerminals()) {
		t.Errorf("expected %d built-in terminals, got %d", len(model.DefaultTerminals()), len(doc.Terminals))
	}
	if len(doc.Groups) != 1 || !doc.Groups[0].IsDefault {
		t.Errorf("expected one default group, got %+v", doc.Groups)
	}
	if doc.Directories == nil || len(doc.Directories) != 0 {
		t.Errorf("expected empty directories, got %+v", doc.Directories)
	}
	if doc.Favorites == nil || len(doc.Favorites) != 0 {
		t.Errorf("expected empty favorites, got %+v", doc.Favorites)
	}
	if doc.Settings != model.DefaultSettings() {
		t.Errorf("expected default settings, got %+v", doc.Settings)
	}
}

func TestRun_Idempotent(t *testing.T) {
	inputs := map[string]string{
		"empty":  `{}`,
		"legacy": `{"groups": ["Work", "Play"], "directories": [{"name": "proj", "path": "/home/me/proj", "type": "wsl", "group": "Work"}]}`,
		"partial": `{
			"terminals": [{"id": "custom-1", "name": "Alacritty", "command": "alacritty --working-directory {path}"}],
			"settings": {"theme": "light"}
		}`,
		"stale favorites": `{"favorites": ["a", "b"], "groups": [{"name": "Stuff"}]}`,
	}

	defaults := CurrentDefaults()
	for name, literal := range inputs {
		t.Run(name, func(t *testing.T) {
			first := Run(rawFromJSON(t, literal), defaults)

			second := Run(docToRaw(t, first.Document), defaults)
			if second.NeedsSave {
				t.Error("second migration should not need saving")
			}
			if !reflect.DeepEqual(first.Document, second.Document) {
				t.Errorf("second migration changed the document:\nfirst:  %+v\nsecond: %+v", first.Document, second.Document)
			}

			third := Run(docToRaw(t, second.Document), defaults)
			if third.NeedsSave {
				t.Error("third migration should not need saving")
			}
		})
	}
}

func TestRun_BuiltinCompleteness(t *testing.T) {
	// Document with one builtin missing and one custom terminal present.
	raw := rawFromJSON(t, `{
		"terminals": [
			{"id": "powershell", "name": "PowerShell", "icon": "💠", "command": "powershell.exe -NoExit -Command \"Set-Location '{path}'\"", "pathFormat": "windows", "isBuiltin": true, "hidden": false, "order": 1},
			{"id": "custom-1", "name": "Alacritty", "icon": "🚀", "command": "alacritty --working-directory {path}", "pathFormat": "unix", "isBuiltin": false, "hidden": false, "order": 5}
		]
	}`)

	result := Run(raw, CurrentDefaults())
	if !result.NeedsSave {
		t.Error("missing built-ins should need saving")
	}

	counts := make(map[string]int)
	for _, term := range result.Document.Terminals {
		counts[term.ID]++
	}
	for _, def := range model.DefaultTerminals() {
		if counts[def.ID] != 1 {
			t.Errorf("built-in %q present %d times, want exactly once", def.ID, counts[def.ID])
		}
	}
	if counts["custom-1"] != 1 {
		t.Error("custom terminal should survive migration")
	}

	// Re-inserted built-ins continue above the existing maximum order.
	for _, term := range result.Document.Terminals {
		if term.ID != "powershell" && term.ID != "custom-1" && term.Order <= 5 {
			t.Errorf("re-inserted %q has order %d, want > 5", term.ID, term.Order)
		}
	}
}

func TestRun_BuiltinOverridesPreserved(t *testing.T) {
	raw := rawFromJSON(t, `{
		"terminals": [
			{"id": "wsl-ubuntu", "name": "My WSL", "icon": "🐧", "command": "wsl.exe -d Ubuntu --cd \"{path}\"", "pathFormat": "unix", "isBuiltin": true, "hidden": true, "order": 99}
		]
	}`)

	result := Run(raw, CurrentDefaults())

	wsl := result.Document.TerminalByID("wsl-ubuntu")
	if wsl == nil {
		t.Fatal("wsl-ubuntu missing")
	}
	if !wsl.Hidden {
		t.Error("user hidden=true was reset")
	}
	if wsl.Order != 99 {
		t.Errorf("user order=99 was reset to %d", wsl.Order)
	}
	if wsl.Name != "My WSL" {
		t.Errorf("user rename was reset to %q", wsl.Name)
	}
}

func TestRun_TerminalsSortedByOrder(t *testing.T) {
	raw := rawFromJSON(t, `{
		"terminals": [
			{"id": "b", "name": "B", "icon": "x", "command": "b {path}", "pathFormat": "unix", "isBuiltin": false, "hidden": false, "order": 20},
			{"id": "a", "name": "A", "icon": "x", "command": "a {path}", "pathFormat": "unix", "isBuiltin": false, "hidden": false, "order": 10}
		]
	}`)

	result := Run(raw, CurrentDefaults())

	terminals := result.Document.Terminals
	for i := 1; i < len(terminals); i++ {
		if terminals[i-1].Order > terminals[i].Order {
			t.Fatalf("terminals not sorted by order: %+v", terminals)
		}
	}
}

func TestRun_LegacyGroupStrings(t *testing.T) {
	raw := rawFromJSON(t, `{"groups": ["A", "B", "C"]}`)

	result := Run(raw, CurrentDefaults())
	if !result.NeedsSave {
		t.Error("legacy groups should need saving")
	}

	groups := result.Document.Groups
	if len(groups) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(groups))
	}

	ids := make(map[string]bool)
	for i, g := range groups {
		if g.ID == "" {
			t.Errorf("group %d has empty id", i)
		}
		if ids[g.ID] {
			t.Errorf("duplicate group id %q", g.ID)
		}
		ids[g.ID] = true
		if g.Icon == "" {
			t.Errorf("group %q has no icon", g.ID)
		}
		if g.Order != i {
			t.Errorf("group %q has order %d, want %d", g.ID, g.Order, i)
		}
		if g.IsDefault != (i == 0) {
			t.Errorf("group %q isDefault = %v, want %v", g.ID, g.IsDefault, i == 0)
		}
	}
}

func TestRun_GroupDefaultEnforcement(t *testing.T) {
	t.Run("none marked default", func(t *testing.T) {
		raw := rawFromJSON(t, `{"groups": [
			{"id": "b", "name": "B", "icon": "📁", "isDefault": false, "order": 2},
			{"id": "a", "name": "A", "icon": "📁", "isDefault": false, "order": 1}
		]}`)

		result := Run(raw, CurrentDefaults())
		def := result.Document.DefaultGroup()
		if def == nil || def.ID != "a" {
			t.Errorf("lowest-order group should be promoted, got %+v", def)
		}
	})

	t.Run("multiple marked default", func(t *testing.T) {
		raw := rawFromJSON(t, `{"groups": [
			{"id": "a", "name": "A", "icon": "📁", "isDefault": true, "order": 1},
			{"id": "b", "name": "B", "icon": "📁", "isDefault": true, "order": 2}
		]}`)

		result := Run(raw, CurrentDefaults())
		count := 0
		for _, g := range result.Document.Groups {
			if g.IsDefault {
				count++
			}
		}
		if count != 1 {
			t.Errorf("expected exactly one default group, got %d", count)
		}
		if !result.NeedsSave {
			t.Error("demoting extra defaults should need saving")
		}
	})
}

func TestRun_LegacyDirectoryTypeMapping(t *testing.T) {
	raw := rawFromJSON(t, `{"directories": [
		{"id": "d1", "name": "one", "path": "/home/me/one", "type": "wsl", "group": "", "icon": "📁", "order": 0, "lastUsed": null},
		{"id": "d2", "name": "two", "path": "/home/me/two", "type": "powershell", "group": "", "icon": "📁", "order": 1, "lastUsed": null},
		{"id": "d3", "name": "three", "path": "/home/me/three", "type": "hyper", "group": "", "icon": "📁", "order": 2, "lastUsed": null}
	]}`)

	result := Run(raw, CurrentDefaults())
	if !result.NeedsSave {
		t.Error("legacy type fields should need saving")
	}

	doc := result.Document
	if got := doc.DirectoryByID("d1").TerminalID; got != "wsl-ubuntu" {
		t.Errorf("wsl mapped to %q, want wsl-ubuntu", got)
	}
	if got := doc.DirectoryByID("d2").TerminalID; got != "powershell" {
		t.Errorf("powershell mapped to %q, want powershell", got)
	}
	// Unknown legacy types stay unset rather than guessing.
	if got := doc.DirectoryByID("d3").TerminalID; got != "" {
		t.Errorf("unknown type mapped to %q, want empty", got)
	}
}

func TestRun_DirectoryGroupResolution(t *testing.T) {
	raw := rawFromJSON(t, `{
		"groups": [
			{"id": "default", "name": "General", "icon": "📁", "isDefault": true, "order": 0},
			{"id": "work-123", "name": "工作", "icon": "💼", "isDefault": false, "order": 1}
		],
		"directories": [
			{"id": "d1", "name": "byname", "path": "/a", "terminalId": "cmd", "group": "工作", "icon": "📁", "order": 0, "lastUsed": null},
			{"id": "d2", "name": "byid", "path": "/b", "terminalId": "cmd", "group": "work-123", "icon": "📁", "order": 1, "lastUsed": null},
			{"id": "d3", "name": "missing", "path": "/c", "terminalId": "cmd", "group": "Deleted Group", "icon": "📁", "order": 2, "lastUsed": null}
		]
	}`)

	result := Run(raw, CurrentDefaults())
	doc := result.Document

	if got := doc.DirectoryByID("d1").Group; got != "work-123" {
		t.Errorf("group name should resolve to id, got %q", got)
	}
	if got := doc.DirectoryByID("d2").Group; got != "work-123" {
		t.Errorf("group id should be kept, got %q", got)
	}
	if got := doc.DirectoryByID("d3").Group; got != "default" {
		t.Errorf("unresolvable group should fall back to default, got %q", got)
	}
}

func TestRun_DirectoryRepairs(t *testing.T) {
	raw := rawFromJSON(t, `{"directories": [
		{"id": "d1", "path": "/home/me/projects/api-server"},
		{"path": "C:\\Users\\me\\tools"}
	]}`)

	result := Run(raw, CurrentDefaults())
	dirs := result.Document.Directories
	if len(dirs) != 2 {
		t.Fatalf("expected 2 directories, got %d", len(dirs))
	}

	for _, d := range dirs {
		if d.ID == "" {
			t.Error("directory id should be synthesized")
		}
		if d.Name == "" {
			t.Error("directory name should derive from path")
		}
		if d.Icon == "" {
			t.Error("directory icon should be filled")
		}
		if d.Group == "" {
			t.Error("directory group should fall back to default")
		}
	}
	if dirs[0].Name != "api-server" {
		t.Errorf("name derived from unix path = %q, want api-server", dirs[0].Name)
	}
	if dirs[1].Name != "tools" {
		t.Errorf("name derived from windows path = %q, want tools", dirs[1].Name)
	}
	if dirs[0].Order == dirs[1].Order {
		t.Error("assigned orders should be distinct")
	}
}

func TestRun_FavoritesAbsentBecomesEmpty(t *testing.T) {
	result := Run(rawFromJSON(t, `{"favorites": ["d1", "d2"]}`), CurrentDefaults())
	if len(result.Document.Favorites) != 2 {
		t.Errorf("favorites should be preserved, got %+v", result.Document.Favorites)
	}

	result = Run(map[string]any{}, CurrentDefaults())
	if result.Document.Favorites == nil || len(result.Document.Favorites) != 0 {
		t.Errorf("absent favorites should become empty, got %+v", result.Document.Favorites)
	}
}

func TestRun_SettingsCompletion(t *testing.T) {
	raw := rawFromJSON(t, `{"settings": {"theme": "dark", "showTabText": true}}`)

	result := Run(raw, CurrentDefaults())
	if !result.NeedsSave {
		t.Error("partial settings should need saving")
	}

	s := result.Document.Settings
	defaults := model.DefaultSettings()

	// Present leaves untouched
	if s.Theme != "dark" {
		t.Errorf("theme overwritten: %q", s.Theme)
	}
	if !s.ShowTabText {
		t.Error("showTabText overwritten")
	}

	// Missing leaves filled, including nested mcp
	if s.RecentLimit != defaults.RecentLimit {
		t.Errorf("recentLimit = %d, want %d", s.RecentLimit, defaults.RecentLimit)
	}
	if s.MCP != defaults.MCP {
		t.Errorf("mcp = %+v, want %+v", s.MCP, defaults.MCP)
	}
	if s.Language != defaults.Language {
		t.Errorf("language = %q, want %q", s.Language, defaults.Language)
	}
}

func TestRun_SettingsNestedPartialMCP(t *testing.T) {
	raw := rawFromJSON(t, `{"settings": {"mcp": {"enabled": true}}}`)

	result := Run(raw, CurrentDefaults())
	s := result.Document.Settings
	if !s.MCP.Enabled {
		t.Error("present mcp.enabled overwritten")
	}
	if s.MCP.Port != model.DefaultSettings().MCP.Port {
		t.Errorf("missing mcp.port not filled: %d", s.MCP.Port)
	}
}

func TestRun_UnknownTopLevelKeyNeedsSave(t *testing.T) {
	result := Run(rawFromJSON(t, `{"windowBounds": {"x": 1}}`), CurrentDefaults())
	if !result.NeedsSave {
		t.Error("dropping unknown keys should need saving")
	}
}

func TestRun_DuplicateIDsDropped(t *testing.T) {
	raw := rawFromJSON(t, `{"directories": [
		{"id": "dup", "name": "first", "path": "/a", "terminalId": "cmd", "group": "", "icon": "📁", "order": 0, "lastUsed": null},
		{"id": "dup", "name": "second", "path": "/b", "terminalId": "cmd", "group": "", "icon": "📁", "order": 1, "lastUsed": null}
	]}`)

	result := Run(raw, CurrentDefaults())
	dirs := result.Document.Directories
	if len(dirs) != 1 {
		t.Fatalf("expected duplicate dropped, got %d directories", len(dirs))
	}
	if dirs[0].Name != "first" {
		t.Errorf("first occurrence should win, got %q", dirs[0].Name)
	}
}

// canonicalRawWithEntries migrates a small document to canonical form and
// returns its raw shape, ready for targeted corruption. The fixture has a
// custom terminal, a non-default group, and a directory.
func canonicalRawWithEntries(t *testing.T) map[string]any {
	t.Helper()

	first := Run(rawFromJSON(t, `{
		"terminals": [{"id": "custom-1", "name": "Alacritty", "command": "alacritty --working-directory {path}"}],
		"groups": [{"id": "default", "name": "General", "isDefault": true}, {"id": "work", "name": "Work"}],
		"directories": [{"id": "proj", "name": "proj", "path": "/home/me/proj", "terminalId": "cmd", "group": "work"}]
	}`), CurrentDefaults())

	if check := Run(docToRaw(t, first.Document), CurrentDefaults()); check.NeedsSave {
		t.Fatal("fixture is not canonical")
	}
	return docToRaw(t, first.Document)
}

// mustEntry returns the idx-th record of a top-level sequence.
func mustEntry(t *testing.T, raw map[string]any, section string, idx int) map[string]any {
	t.Helper()
	entries, ok := raw[section].([]any)
	if !ok || idx >= len(entries) {
		t.Fatalf("fixture has no %s[%d]", section, idx)
	}
	m, ok := entries[idx].(map[string]any)
	if !ok {
		t.Fatalf("%s[%d] is not a record", section, idx)
	}
	return m
}

// mustEntryByID returns the record with the given id from a top-level
// sequence.
func mustEntryByID(t *testing.T, raw map[string]any, section, id string) map[string]any {
	t.Helper()
	entries, ok := raw[section].([]any)
	if !ok {
		t.Fatalf("fixture has no %s", section)
	}
	for i := range entries {
		m := mustEntry(t, raw, section, i)
		if m["id"] == id {
			return m
		}
	}
	t.Fatalf("fixture has no %s with id %q", section, id)
	return nil
}

// A leaf that is present but wrong-typed coerces to the zero value, which
// re-encodes differently from the input, so it must need saving.
func TestRun_WrongTypedLeavesNeedSave(t *testing.T) {
	cases := map[string]func(t *testing.T, raw map[string]any){
		"directory lastUsed string": func(t *testing.T, raw map[string]any) {
			mustEntryByID(t, raw, "directories", "proj")["lastUsed"] = "abc"
		},
		"directory path number": func(t *testing.T, raw map[string]any) {
			mustEntryByID(t, raw, "directories", "proj")["path"] = 42
		},
		"directory terminalId bool": func(t *testing.T, raw map[string]any) {
			mustEntryByID(t, raw, "directories", "proj")["terminalId"] = true
		},
		// Built-ins re-assert isBuiltin and backfill empty fields, which
		// would mask the save signal; corrupt the custom terminal.
		"terminal hidden string": func(t *testing.T, raw map[string]any) {
			mustEntryByID(t, raw, "terminals", "custom-1")["hidden"] = "yes"
		},
		"terminal isBuiltin string": func(t *testing.T, raw map[string]any) {
			mustEntryByID(t, raw, "terminals", "custom-1")["isBuiltin"] = "no"
		},
		"terminal name number": func(t *testing.T, raw map[string]any) {
			mustEntryByID(t, raw, "terminals", "custom-1")["name"] = 5
		},
		// The non-default group, so default enforcement stays a no-op.
		"group isDefault string": func(t *testing.T, raw map[string]any) {
			mustEntryByID(t, raw, "groups", "work")["isDefault"] = "nope"
		},
		"group name number": func(t *testing.T, raw map[string]any) {
			mustEntryByID(t, raw, "groups", "work")["name"] = 7
		},
	}

	for name, corrupt := range cases {
		t.Run(name, func(t *testing.T) {
			raw := canonicalRawWithEntries(t)
			corrupt(t, raw)

			result := Run(raw, CurrentDefaults())
			if !result.NeedsSave {
				t.Error("wrong-typed leaf should need saving")
			}

			// The coerced document must itself be canonical.
			second := Run(docToRaw(t, result.Document), CurrentDefaults())
			if second.NeedsSave {
				t.Error("coerced document should be stable")
			}
		})
	}
}

func TestRun_WrongTypedLastUsedCoercesToNil(t *testing.T) {
	raw := canonicalRawWithEntries(t)
	mustEntryByID(t, raw, "directories", "proj")["lastUsed"] = "abc"

	result := Run(raw, CurrentDefaults())
	if !result.NeedsSave {
		t.Error("uncoercible lastUsed should need saving")
	}

	dir := result.Document.DirectoryByID("proj")
	if dir == nil {
		t.Fatal("directory lost in migration")
	}
	if dir.LastUsed != nil {
		t.Errorf("expected lastUsed nil, got %d", *dir.LastUsed)
	}
}
