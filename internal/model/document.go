package model

// Document is the root of the persisted configuration. The persistence
// layer owns it exclusively; the in-memory copy produced by migration is
// the canonical working set for a session.
type Document struct {
	Terminals   []Terminal  `json:"terminals"`
	Groups      []Group     `json:"groups"`
	Directories []Directory `json:"directories"`
	Favorites   []string    `json:"favorites"` // directory ids
	Settings    Settings    `json:"settings"`
}

// TerminalByID returns the terminal with the given id, or nil.
func (d *Document) TerminalByID(id string) *Terminal {
	for i := range d.Terminals {
		if d.Terminals[i].ID == id {
			return &d.Terminals[i]
		}
	}
	return nil
}

// GroupByID returns the group with the given id, or nil.
func (d *Document) GroupByID(id string) *Group {
	for i := range d.Groups {
		if d.Groups[i].ID == id {
			return &d.Groups[i]
		}
	}
	return nil
}

// GroupByName returns the first group with the given display name, or nil.
func (d *Document) GroupByName(name string) *Group {
	for i := range d.Groups {
		if d.Groups[i].Name == name {
			return &d.Groups[i]
		}
	}
	return nil
}

// DefaultGroup returns the group marked IsDefault. Migration guarantees
// exactly one exists; falls back to the first group for documents that
// bypassed migration.
func (d *Document) DefaultGroup() *Group {
	for i := range d.Groups {
		if d.Groups[i].IsDefault {
			return &d.Groups[i]
		}
	}
	if len(d.Groups) > 0 {
		return &d.Groups[0]
	}
	return nil
}

// DirectoryByID returns the directory with the given id, or nil.
func (d *Document) DirectoryByID(id string) *Directory {
	for i := range d.Directories {
		if d.Directories[i].ID == id {
			return &d.Directories[i]
		}
	}
	return nil
}

// IsFavorite reports whether the directory id is in the favorites list.
func (d *Document) IsFavorite(id string) bool {
	for _, fav := range d.Favorites {
		if fav == id {
			return true
		}
	}
	return false
}

// ToggleFavorite adds or removes a directory id from favorites and
// returns whether it is now a favorite.
func (d *Document) ToggleFavorite(id string) bool {
	for i, fav := range d.Favorites {
		if fav == id {
			d.Favorites = append(d.Favorites[:i], d.Favorites[i+1:]...)
			return false
		}
	}
	d.Favorites = append(d.Favorites, id)
	return true
}

// Clone returns a deep copy of the document. Callers outside the owning
// component receive clones so they can never mutate the canonical copy.
func (d *Document) Clone() *Document {
	out := &Document{
		Terminals:   append([]Terminal(nil), d.Terminals...),
		Groups:      append([]Group(nil), d.Groups...),
		Directories: append([]Directory(nil), d.Directories...),
		Favorites:   append([]string(nil), d.Favorites...),
		Settings:    d.Settings,
	}
	for i := range out.Directories {
		if d.Directories[i].LastUsed != nil {
			ts := *d.Directories[i].LastUsed
			out.Directories[i].LastUsed = &ts
		}
	}
	return out
}

// NextDirectoryOrder returns an order value above the current maximum.
func (d *Document) NextDirectoryOrder() int {
	next := 0
	for _, dir := range d.Directories {
		if dir.Order >= next {
			next = dir.Order + 1
		}
	}
	return next
}
