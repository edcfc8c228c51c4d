package migrate

import (
	"fmt"
	"sort"

	"github.com/termdock/termdock/internal/model"
	"github.com/termdock/termdock/internal/util"
)

var groupKeys = []string{"id", "name", "icon", "isDefault", "order"}

// migrateGroups canonicalizes the groups sequence. Legacy documents store
// groups as bare name strings; those are converted to full records with
// deterministic ids. Whatever the input shape, exactly one group ends up
// with isDefault = true.
func migrateGroups(raw any, defaults []model.Group) ([]model.Group, bool) {
	entries, isSlice := asSlice(raw)
	if !isSlice {
		groups := make([]model.Group, len(defaults))
		copy(groups, defaults)
		return groups, true
	}

	if allStrings(entries) && len(entries) > 0 {
		return convertLegacyGroups(entries), true
	}

	changed := false
	groups := make([]model.Group, 0, len(entries))
	seen := make(map[string]bool, len(entries))
	var missingOrder []int
	maxOrder := -1

	for i, entry := range entries {
		m, isMap := asMap(entry)
		if !isMap {
			// A stray legacy name string inside a record-form sequence
			// converts the same way full-legacy entries do.
			if name, isStr := asString(entry); isStr {
				g := model.Group{
					ID:   synthGroupID(name, i, seen),
					Name: name,
					Icon: model.DefaultGroupIcon,
				}
				seen[g.ID] = true
				missingOrder = append(missingOrder, len(groups))
				groups = append(groups, g)
			}
			changed = true
			continue
		}

		if reshaped(m, groupKeys) {
			changed = true
		}

		g := model.Group{}
		g.Name, changed = takeString(m, "name", changed)
		g.Icon, changed = takeString(m, "icon", changed)
		g.IsDefault, changed = takeBool(m, "isDefault", changed)

		gid, _ := asString(m["id"])
		if gid == "" {
			gid = synthGroupID(g.Name, i, seen)
			changed = true
		}
		if seen[gid] {
			changed = true
			continue
		}
		seen[gid] = true
		g.ID = gid

		if g.Icon == "" {
			g.Icon = model.DefaultGroupIcon
			changed = true
		}

		if order, ok := asInt(m["order"]); ok {
			g.Order = order
			if order > maxOrder {
				maxOrder = order
			}
		} else {
			missingOrder = append(missingOrder, len(groups))
		}

		groups = append(groups, g)
	}

	for _, idx := range missingOrder {
		maxOrder++
		groups[idx].Order = maxOrder
		changed = true
	}

	if len(groups) == 0 {
		groups = append(groups, defaults...)
		changed = true
	}

	if enforceSingleDefault(groups) {
		changed = true
	}

	if !sort.SliceIsSorted(groups, groupLess(groups)) {
		sort.SliceStable(groups, groupLess(groups))
		changed = true
	}

	return groups, changed
}

// convertLegacyGroups turns a sequence of bare name strings into full
// records. The first entry becomes the default group; ids derive from the
// names where possible and fall back to position.
func convertLegacyGroups(entries []any) []model.Group {
	groups := make([]model.Group, 0, len(entries))
	seen := make(map[string]bool, len(entries))

	for i, entry := range entries {
		name, _ := asString(entry)
		g := model.Group{
			ID:        synthGroupID(name, i, seen),
			Name:      name,
			Icon:      model.DefaultGroupIcon,
			IsDefault: i == 0,
			Order:     i,
		}
		seen[g.ID] = true
		groups = append(groups, g)
	}

	return groups
}

// synthGroupID derives a deterministic id from a group name. Names with
// no sluggable characters fall back to "default" for the first entry and
// a positional id otherwise; collisions get a numeric suffix.
func synthGroupID(name string, index int, seen map[string]bool) string {
	id := util.Slug(name)
	if id == "" {
		if index == 0 {
			id = "default"
		} else {
			id = fmt.Sprintf("group-%d", index+1)
		}
	}
	base := id
	for n := 2; seen[id]; n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	return id
}

// enforceSingleDefault makes exactly one group the default: extra default
// flags are cleared keeping the lowest-order one, and if none is set the
// lowest-order group is promoted. Reports whether anything changed.
func enforceSingleDefault(groups []model.Group) bool {
	lowest := -1
	for i := range groups {
		if !groups[i].IsDefault {
			continue
		}
		if lowest == -1 || groups[i].Order < groups[lowest].Order {
			lowest = i
		}
	}

	changed := false
	if lowest == -1 {
		// Promote the lowest-order group.
		for i := range groups {
			if lowest == -1 || groups[i].Order < groups[lowest].Order {
				lowest = i
			}
		}
		groups[lowest].IsDefault = true
		return true
	}

	for i := range groups {
		if groups[i].IsDefault && i != lowest {
			groups[i].IsDefault = false
			changed = true
		}
	}
	return changed
}

func groupLess(gs []model.Group) func(i, j int) bool {
	return func(i, j int) bool { return gs[i].Order < gs[j].Order }
}

func allStrings(entries []any) bool {
	for _, e := range entries {
		if _, isStr := e.(string); !isStr {
			return false
		}
	}
	return true
}

func defaultGroupID(groups []model.Group) string {
	for i := range groups {
		if groups[i].IsDefault {
			return groups[i].ID
		}
	}
	if len(groups) > 0 {
		return groups[0].ID
	}
	return ""
}
