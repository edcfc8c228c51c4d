package service

import (
	"sort"
	"strings"
	"sync"
	"time"

	tderr "github.com/termdock/termdock/internal/errors"
	"github.com/termdock/termdock/internal/id"
	"github.com/termdock/termdock/internal/migrate"
	"github.com/termdock/termdock/internal/model"
	"github.com/termdock/termdock/internal/store"
	"github.com/termdock/termdock/internal/util"
)

// Manager owns the in-memory document for a session. The store loads and
// migrates exactly once at construction; afterwards every read and
// mutation goes through the Manager, which persists after each change.
// There is deliberately no package-level document: collaborators hold a
// *Manager and nothing else.
type Manager struct {
	mu    sync.RWMutex
	store store.DocumentStore
	doc   *model.Document
}

// NewManager loads (and migrates, if needed) the document and returns the
// owning manager.
func NewManager(docStore store.DocumentStore) (*Manager, error) {
	doc, err := docStore.Load()
	if err != nil {
		return nil, err
	}
	return &Manager{store: docStore, doc: doc}, nil
}

// Document returns a deep copy of the current document.
func (m *Manager) Document() *model.Document {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.doc.Clone()
}

// ReplaceDocument migrates an arbitrary raw document and installs the
// result as the new working set. The replacement is always persisted.
func (m *Manager) ReplaceDocument(raw map[string]any) (*model.Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := migrate.Run(raw, migrate.CurrentDefaults())
	if err := m.store.Save(result.Document); err != nil {
		return nil, err
	}
	m.doc = result.Document
	return m.doc.Clone(), nil
}

// AddDirectory adds a directory shortcut. A missing id is generated;
// the group reference resolves by id, then by name, then to the default
// group; icon and order are filled when absent.
func (m *Manager) AddDirectory(dir model.Directory) (*model.Directory, error) {
	if strings.TrimSpace(dir.Path) == "" {
		return nil, tderr.InvalidField("path", "must not be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if dir.ID == "" {
		dir.ID = id.Generate()
	} else if m.doc.DirectoryByID(dir.ID) != nil {
		return nil, tderr.DirectoryAlreadyExists(dir.ID)
	}

	dir.Group = m.resolveGroupLocked(dir.Group)
	if dir.Name == "" {
		dir.Name = dir.Path
	}
	if dir.Icon == "" {
		dir.Icon = model.DefaultGroupIcon
	}
	dir.Order = m.doc.NextDirectoryOrder()

	m.doc.Directories = append(m.doc.Directories, dir)
	if err := m.store.Save(m.doc); err != nil {
		return nil, err
	}
	saved := dir
	return &saved, nil
}

// UpdateDirectory replaces the stored fields of an existing directory.
// LastUsed is preserved; the group reference is re-resolved.
func (m *Manager) UpdateDirectory(dir model.Directory) error {
	if strings.TrimSpace(dir.Path) == "" {
		return tderr.InvalidField("path", "must not be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	existing := m.doc.DirectoryByID(dir.ID)
	if existing == nil {
		return tderr.DirectoryNotFound(dir.ID)
	}

	dir.Group = m.resolveGroupLocked(dir.Group)
	if dir.Icon == "" {
		dir.Icon = existing.Icon
	}
	dir.Order = existing.Order
	dir.LastUsed = existing.LastUsed
	*existing = dir

	return m.store.Save(m.doc)
}

// DeleteDirectory removes a directory and any favorite pointing at it.
func (m *Manager) DeleteDirectory(dirID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i := range m.doc.Directories {
		if m.doc.Directories[i].ID == dirID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return tderr.DirectoryNotFound(dirID)
	}

	m.doc.Directories = append(m.doc.Directories[:idx], m.doc.Directories[idx+1:]...)
	for i, fav := range m.doc.Favorites {
		if fav == dirID {
			m.doc.Favorites = append(m.doc.Favorites[:i], m.doc.Favorites[i+1:]...)
			break
		}
	}
	return m.store.Save(m.doc)
}

// ToggleFavorite flips the favorite state of a directory and returns the
// new state.
func (m *Manager) ToggleFavorite(dirID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.doc.DirectoryByID(dirID) == nil {
		return false, tderr.DirectoryNotFound(dirID)
	}
	nowFavorite := m.doc.ToggleFavorite(dirID)
	if err := m.store.Save(m.doc); err != nil {
		return false, err
	}
	return nowFavorite, nil
}

// MarkLaunched stamps a directory's lastUsed with the current time.
func (m *Manager) MarkLaunched(dirID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	dir := m.doc.DirectoryByID(dirID)
	if dir == nil {
		return tderr.DirectoryNotFound(dirID)
	}
	now := time.Now().UnixMilli()
	dir.LastUsed = &now
	return m.store.Save(m.doc)
}

// RecentDirectories returns directories launched most recently, newest
// first, capped at settings.recentLimit.
func (m *Manager) RecentDirectories() []model.Directory {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var recent []model.Directory
	for _, dir := range m.doc.Directories {
		if dir.LastUsed != nil {
			recent = append(recent, dir)
		}
	}
	sort.SliceStable(recent, func(i, j int) bool {
		return *recent[i].LastUsed > *recent[j].LastUsed
	})

	limit := m.doc.Settings.RecentLimit
	if limit > 0 && len(recent) > limit {
		recent = recent[:limit]
	}
	return recent
}

// AddTerminal adds a user-owned terminal. Built-in status cannot be
// claimed by callers.
func (m *Manager) AddTerminal(term model.Terminal) (*model.Terminal, error) {
	if strings.TrimSpace(term.Command) == "" {
		return nil, tderr.InvalidField("command", "must not be empty")
	}
	if !strings.Contains(term.Command, "{path}") {
		return nil, tderr.InvalidField("command", "must contain a {path} placeholder")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if term.ID == "" {
		term.ID = id.Generate()
	} else if m.doc.TerminalByID(term.ID) != nil {
		return nil, &tderr.AlreadyExistsError{Resource: "terminal", ID: term.ID}
	}

	term.IsBuiltin = false
	if term.PathFormat != model.PathFormatWindows {
		term.PathFormat = model.PathFormatUnix
	}
	maxOrder := -1
	for _, t := range m.doc.Terminals {
		if t.Order > maxOrder {
			maxOrder = t.Order
		}
	}
	term.Order = maxOrder + 1

	m.doc.Terminals = append(m.doc.Terminals, term)
	if err := m.store.Save(m.doc); err != nil {
		return nil, err
	}
	saved := term
	return &saved, nil
}

// SetTerminalHidden hides or shows a terminal. Valid for built-ins: hiding
// is the supported alternative to deleting them.
func (m *Manager) SetTerminalHidden(termID string, hidden bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	term := m.doc.TerminalByID(termID)
	if term == nil {
		return tderr.TerminalNotFound(termID)
	}
	term.Hidden = hidden
	return m.store.Save(m.doc)
}

// DeleteTerminal removes a user-owned terminal. Built-ins are protected.
// Directories referencing the deleted terminal keep their terminalId; the
// presentation layer shows them as "unknown terminal".
func (m *Manager) DeleteTerminal(termID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i := range m.doc.Terminals {
		if m.doc.Terminals[i].ID == termID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return tderr.TerminalNotFound(termID)
	}
	if m.doc.Terminals[idx].IsBuiltin {
		return tderr.BuiltinTerminalProtected(termID, "delete")
	}

	m.doc.Terminals = append(m.doc.Terminals[:idx], m.doc.Terminals[idx+1:]...)
	return m.store.Save(m.doc)
}

// AddGroup adds a group with a name-derived id where possible.
func (m *Manager) AddGroup(name, icon string) (*model.Group, error) {
	if strings.TrimSpace(name) == "" {
		return nil, tderr.InvalidField("name", "must not be empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	gid := util.Slug(name)
	if gid == "" || m.doc.GroupByID(gid) != nil {
		gid = id.Generate()
	}
	if icon == "" {
		icon = model.DefaultGroupIcon
	}

	maxOrder := -1
	for _, g := range m.doc.Groups {
		if g.Order > maxOrder {
			maxOrder = g.Order
		}
	}

	group := model.Group{ID: gid, Name: name, Icon: icon, Order: maxOrder + 1}
	m.doc.Groups = append(m.doc.Groups, group)
	if err := m.store.Save(m.doc); err != nil {
		return nil, err
	}
	saved := group
	return &saved, nil
}

// SetDefaultGroup moves the default flag to the given group.
func (m *Manager) SetDefaultGroup(groupID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.doc.GroupByID(groupID) == nil {
		return tderr.GroupNotFound(groupID)
	}
	for i := range m.doc.Groups {
		m.doc.Groups[i].IsDefault = m.doc.Groups[i].ID == groupID
	}
	return m.store.Save(m.doc)
}

// DeleteGroup removes a group and reassigns its directories to the
// default group. The default group itself cannot be deleted.
func (m *Manager) DeleteGroup(groupID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i := range m.doc.Groups {
		if m.doc.Groups[i].ID == groupID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return tderr.GroupNotFound(groupID)
	}
	if m.doc.Groups[idx].IsDefault {
		return &tderr.ProtectedError{Resource: "group", ID: groupID, Action: "delete"}
	}

	m.doc.Groups = append(m.doc.Groups[:idx], m.doc.Groups[idx+1:]...)
	fallback := m.doc.DefaultGroup().ID
	for i := range m.doc.Directories {
		if m.doc.Directories[i].Group == groupID {
			m.doc.Directories[i].Group = fallback
		}
	}
	return m.store.Save(m.doc)
}

// UpdateSettings replaces the settings record. Field-level validation
// happens at the process boundary before this is called.
func (m *Manager) UpdateSettings(s model.Settings) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.doc.Settings = s
	return m.store.Save(m.doc)
}

// resolveGroupLocked resolves a group reference by id, then by display
// name, falling back to the default group. Caller holds the lock.
func (m *Manager) resolveGroupLocked(ref string) string {
	if g := m.doc.GroupByID(ref); g != nil {
		return g.ID
	}
	if g := m.doc.GroupByName(ref); g != nil {
		return g.ID
	}
	return m.doc.DefaultGroup().ID
}
