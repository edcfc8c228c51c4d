package migrate

import (
	"sort"

	"github.com/termdock/termdock/internal/model"
)

var terminalKeys = []string{"id", "name", "icon", "command", "pathFormat", "isBuiltin", "hidden", "order"}

// migrateTerminals canonicalizes the terminals sequence: re-inserts
// missing built-ins, fills missing fields, and sorts by order. User
// overrides on built-ins (hidden, order, renames) are never reset.
func migrateTerminals(raw any, defaults []model.Terminal) ([]model.Terminal, bool) {
	entries, isSlice := asSlice(raw)
	changed := !isSlice // absent or reshaped: the canonical array is new

	terminals := make([]model.Terminal, 0, len(entries)+len(defaults))
	seen := make(map[string]bool, len(entries))
	var missingOrder []int
	maxOrder := -1

	for _, entry := range entries {
		m, isMap := asMap(entry)
		if !isMap {
			changed = true
			continue
		}
		tid, _ := asString(m["id"])
		if tid == "" || seen[tid] {
			// No stable id means nothing to key user state on; duplicates
			// violate id uniqueness. Drop either way.
			changed = true
			continue
		}
		seen[tid] = true

		if reshaped(m, terminalKeys) {
			changed = true
		}

		t := model.Terminal{ID: tid}
		t.Name, changed = takeString(m, "name", changed)
		t.Icon, changed = takeString(m, "icon", changed)
		t.Command, changed = takeString(m, "command", changed)
		if pf, ok := asString(m["pathFormat"]); ok {
			t.PathFormat = model.PathFormat(pf)
		}
		t.IsBuiltin, changed = takeBool(m, "isBuiltin", changed)
		t.Hidden, changed = takeBool(m, "hidden", changed)

		if order, ok := asInt(m["order"]); ok {
			t.Order = order
			if order > maxOrder {
				maxOrder = order
			}
		} else {
			missingOrder = append(missingOrder, len(terminals))
		}

		if def := terminalByID(defaults, tid); def != nil {
			// A shipped terminal: re-assert builtin status and backfill
			// anything the stale record lost, leaving user values alone.
			if !t.IsBuiltin {
				t.IsBuiltin = true
				changed = true
			}
			if t.Name == "" {
				t.Name = def.Name
				changed = true
			}
			if t.Icon == "" {
				t.Icon = def.Icon
				changed = true
			}
			if t.Command == "" {
				t.Command = def.Command
				changed = true
			}
			if !validPathFormat(t.PathFormat) {
				t.PathFormat = def.PathFormat
				changed = true
			}
		} else if !validPathFormat(t.PathFormat) {
			t.PathFormat = model.PathFormatUnix
			changed = true
		}

		terminals = append(terminals, t)
	}

	// Assign orders continuing above the existing maximum.
	for _, idx := range missingOrder {
		maxOrder++
		terminals[idx].Order = maxOrder
		changed = true
	}

	// Re-insert built-ins that are missing entirely.
	for _, def := range defaults {
		if seen[def.ID] {
			continue
		}
		t := def
		maxOrder++
		t.Order = maxOrder
		terminals = append(terminals, t)
		seen[def.ID] = true
		changed = true
	}

	if !sort.SliceIsSorted(terminals, terminalLess(terminals)) {
		sort.SliceStable(terminals, terminalLess(terminals))
		changed = true
	}

	return terminals, changed
}

func terminalLess(ts []model.Terminal) func(i, j int) bool {
	return func(i, j int) bool { return ts[i].Order < ts[j].Order }
}

func terminalByID(ts []model.Terminal, id string) *model.Terminal {
	for i := range ts {
		if ts[i].ID == id {
			return &ts[i]
		}
	}
	return nil
}

func validPathFormat(pf model.PathFormat) bool {
	return pf == model.PathFormatUnix || pf == model.PathFormatWindows
}
