package migrate

import (
	"fmt"
	"sort"
	"strings"

	"github.com/termdock/termdock/internal/model"
	"github.com/termdock/termdock/internal/util"
)

var directoryKeys = []string{"id", "name", "path", "terminalId", "group", "icon", "order", "lastUsed"}

// migrateDirectories canonicalizes the directories sequence. Legacy
// entries carry a `type` enum instead of a terminal id and a group *name*
// instead of a group *id*; both resolve here. Recovery is best-effort:
// a directory is never dropped for a dangling reference, it falls back to
// the default group instead.
func migrateDirectories(raw any, groups []model.Group) ([]model.Directory, bool) {
	fallbackGroup := defaultGroupID(groups)
	entries, isSlice := asSlice(raw)
	changed := !isSlice

	directories := make([]model.Directory, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	var missingOrder []int
	maxOrder := -1

	for i, entry := range entries {
		m, isMap := asMap(entry)
		if !isMap {
			changed = true
			continue
		}

		if reshaped(m, directoryKeys) {
			changed = true
		}

		d := model.Directory{}
		d.Name, changed = takeString(m, "name", changed)
		d.Path, changed = takeString(m, "path", changed)
		d.Icon, changed = takeString(m, "icon", changed)

		did, _ := asString(m["id"])
		if did == "" {
			did = synthDirectoryID(d.Name, d.Path, i, seen)
			changed = true
		}
		if seen[did] {
			changed = true
			continue
		}
		seen[did] = true
		d.ID = did

		if d.Name == "" && d.Path != "" {
			d.Name = baseName(d.Path)
			changed = true
		}

		// Legacy terminal type enum -> terminal id. Unknown types leave
		// terminalId unset for the presentation layer to surface.
		d.TerminalID, changed = takeString(m, "terminalId", changed)
		if legacyType, hasType := m["type"]; hasType {
			if d.TerminalID == "" {
				if lt, isStr := asString(legacyType); isStr {
					d.TerminalID = model.LegacyTerminalTypes[lt]
				}
			}
			changed = true // the type field itself is dropped
		}

		// Group reference: id wins, then name lookup, then default group.
		ref, _ := asString(m["group"])
		switch {
		case groupIDExists(groups, ref):
			d.Group = ref
		case groupIDByName(groups, ref) != "":
			d.Group = groupIDByName(groups, ref)
			changed = true
		default:
			d.Group = fallbackGroup
			changed = true
		}

		if d.Icon == "" {
			d.Icon = model.DefaultGroupIcon
			changed = true
		}

		if order, ok := asInt(m["order"]); ok {
			d.Order = order
			if order > maxOrder {
				maxOrder = order
			}
		} else {
			missingOrder = append(missingOrder, len(directories))
		}

		// lastUsed is null in canonical form until the first launch, so a
		// present null is not a change; any other uncoercible value is.
		if v, present := m["lastUsed"]; present {
			if ts, ok := asInt64(v); ok {
				d.LastUsed = &ts
			} else if v != nil {
				changed = true
			}
		}

		directories = append(directories, d)
	}

	for _, idx := range missingOrder {
		maxOrder++
		directories[idx].Order = maxOrder
		changed = true
	}

	if !sort.SliceIsSorted(directories, directoryLess(directories)) {
		sort.SliceStable(directories, directoryLess(directories))
		changed = true
	}

	return directories, changed
}

// migrateFavorites normalizes the favorites sequence. Absence is
// equivalent to an empty sequence; present entries are left unchanged
// beyond dropping values that are not strings.
func migrateFavorites(raw any) ([]string, bool) {
	entries, isSlice := asSlice(raw)
	if !isSlice {
		return []string{}, true
	}

	changed := false
	favorites := make([]string, 0, len(entries))
	for _, entry := range entries {
		s, isStr := asString(entry)
		if !isStr {
			changed = true
			continue
		}
		favorites = append(favorites, s)
	}
	return favorites, changed
}

func synthDirectoryID(name, path string, index int, seen map[string]bool) string {
	id := util.Slug(name)
	if id == "" {
		id = util.Slug(baseName(path))
	}
	if id == "" {
		id = fmt.Sprintf("dir-%d", index+1)
	}
	base := id
	for n := 2; seen[id]; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	return id
}

// baseName returns the last path element, tolerating both separator
// styles since stored paths may be Windows or WSL shaped.
func baseName(path string) string {
	path = strings.TrimRight(path, `/\`)
	if idx := strings.LastIndexAny(path, `/\`); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

func directoryLess(ds []model.Directory) func(i, j int) bool {
	return func(i, j int) bool { return ds[i].Order < ds[j].Order }
}

func groupIDExists(groups []model.Group, id string) bool {
	if id == "" {
		return false
	}
	for i := range groups {
		if groups[i].ID == id {
			return true
		}
	}
	return false
}

func groupIDByName(groups []model.Group, name string) string {
	if name == "" {
		return ""
	}
	for i := range groups {
		if groups[i].Name == name {
			return groups[i].ID
		}
	}
	return ""
}
