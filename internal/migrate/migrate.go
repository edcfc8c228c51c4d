// Package migrate transforms an arbitrary persisted configuration document
// (possibly stale, partial, or legacy-shaped) into a canonical, fully
// populated one. The transform is pure and deterministic: no I/O, no
// clock, no random ids. Feeding its own output back in with the same
// defaults yields NeedsSave = false and an unchanged document.
//
// Legacy shapes (groups as bare name strings, directories carrying a
// `type` enum instead of a terminal id) are resolved here, once, so no
// downstream code ever branches on them.
package migrate

import "github.com/termdock/termdock/internal/model"

// Defaults carries the current release's built-in terminals, groups, and
// settings. Migration fills gaps from these; it never overwrites a value
// the user already has.
type Defaults struct {
	Terminals []model.Terminal
	Groups    []model.Group
	Settings  model.Settings
}

// CurrentDefaults returns the defaults shipped with this build.
func CurrentDefaults() Defaults {
	return Defaults{
		Terminals: model.DefaultTerminals(),
		Groups:    model.DefaultGroups(),
		Settings:  model.DefaultSettings(),
	}
}

// Result is the outcome of a migration run.
type Result struct {
	Document *model.Document
	// NeedsSave is true iff the document is not structurally identical to
	// the input: any field added, renamed, reordered, or reshaped. The
	// caller must re-persist the document when set.
	NeedsSave bool
}

var documentKeys = []string{"terminals", "groups", "directories", "favorites", "settings"}

// Run migrates a raw decoded document against the given defaults. It never
// fails: malformed input degrades to a best-effort canonical document.
func Run(raw map[string]any, defaults Defaults) Result {
	changed := hasExtraKeys(raw, documentKeys)

	terminals, ch := migrateTerminals(raw["terminals"], defaults.Terminals)
	changed = changed || ch

	groups, ch := migrateGroups(raw["groups"], defaults.Groups)
	changed = changed || ch

	directories, ch := migrateDirectories(raw["directories"], groups)
	changed = changed || ch

	favorites, ch := migrateFavorites(raw["favorites"])
	changed = changed || ch

	settings, ch := migrateSettings(raw["settings"], defaults.Settings)
	changed = changed || ch

	return Result{
		Document: &model.Document{
			Terminals:   terminals,
			Groups:      groups,
			Directories: directories,
			Favorites:   favorites,
			Settings:    settings,
		},
		NeedsSave: changed,
	}
}
