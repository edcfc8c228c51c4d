package resolver

import (
	"errors"
	"testing"

	"github.com/termdock/termdock/internal/config"
	tderr "github.com/termdock/termdock/internal/errors"
	"github.com/termdock/termdock/internal/model"
	"github.com/termdock/termdock/internal/prompt"
	"github.com/termdock/termdock/internal/service"
	"github.com/termdock/termdock/internal/store"
)

// mockPrompter implements prompt.Prompter for testing.
type mockPrompter struct {
	selectResult string
	selectError  error
	options      []prompt.Option
}

func (m *mockPrompter) Select(title string, options []prompt.Option) (string, error) {
	m.options = options
	if m.selectError != nil {
		return "", m.selectError
	}
	return m.selectResult, nil
}

func (m *mockPrompter) Input(title string, defaultValue string) (string, error) {
	return "", nil
}

func (m *mockPrompter) Confirm(title string, defaultValue bool) (bool, error) {
	return false, nil
}

var _ prompt.Prompter = (*mockPrompter)(nil)

func newTestManager(t *testing.T) *service.Manager {
	t.Helper()
	paths := config.NewPaths(t.TempDir())
	manager, err := service.NewManager(store.NewDocumentStore(paths))
	if err != nil {
		t.Fatalf("NewManager failed: %v", err)
	}
	return manager
}

func addDir(t *testing.T, m *service.Manager, name, path string) *model.Directory {
	t.Helper()
	dir, err := m.AddDirectory(model.Directory{Name: name, Path: path})
	if err != nil {
		t.Fatalf("AddDirectory(%q) failed: %v", name, err)
	}
	return dir
}

func TestDirectoryResolver_Resolve_ByID(t *testing.T) {
	manager := newTestManager(t)
	added := addDir(t, manager, "Projects", "/home/u/projects")

	resolver := NewDirectoryResolver(manager, &prompt.NoopPrompter{})

	dir, err := resolver.Resolve(added.ID)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if dir.ID != added.ID {
		t.Errorf("Expected id %q, got %q", added.ID, dir.ID)
	}
}

func TestDirectoryResolver_Resolve_ByName_CaseInsensitive(t *testing.T) {
	manager := newTestManager(t)
	added := addDir(t, manager, "Projects", "/home/u/projects")
	addDir(t, manager, "Downloads", "/home/u/downloads")

	resolver := NewDirectoryResolver(manager, &prompt.NoopPrompter{})

	dir, err := resolver.Resolve("projects")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if dir.ID != added.ID {
		t.Errorf("Expected id %q, got %q", added.ID, dir.ID)
	}
}

func TestDirectoryResolver_Resolve_NotFound(t *testing.T) {
	manager := newTestManager(t)
	addDir(t, manager, "Projects", "/home/u/projects")

	resolver := NewDirectoryResolver(manager, &prompt.NoopPrompter{})

	_, err := resolver.Resolve("nonexistent")
	if err == nil {
		t.Fatal("Expected error for nonexistent directory")
	}
	if !tderr.IsNotFound(err) {
		t.Errorf("Expected not-found error, got %v", err)
	}
}

func TestDirectoryResolver_Resolve_NoDirectories(t *testing.T) {
	manager := newTestManager(t)

	resolver := NewDirectoryResolver(manager, &prompt.NoopPrompter{})

	_, err := resolver.Resolve("")
	if err == nil {
		t.Fatal("Expected error when no directories exist")
	}
	if !tderr.IsNotFound(err) {
		t.Errorf("Expected not-found error, got %v", err)
	}
}

func TestDirectoryResolver_Resolve_EmptyRef_Prompts(t *testing.T) {
	manager := newTestManager(t)
	addDir(t, manager, "Projects", "/home/u/projects")
	wanted := addDir(t, manager, "Downloads", "/home/u/downloads")

	prompter := &mockPrompter{selectResult: wanted.ID}
	resolver := NewDirectoryResolver(manager, prompter)

	dir, err := resolver.Resolve("")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if dir.ID != wanted.ID {
		t.Errorf("Expected id %q, got %q", wanted.ID, dir.ID)
	}
	if len(prompter.options) != 2 {
		t.Errorf("Expected 2 prompt options, got %d", len(prompter.options))
	}
}

func TestDirectoryResolver_Resolve_AmbiguousName_Prompts(t *testing.T) {
	manager := newTestManager(t)
	addDir(t, manager, "Work", "/home/u/work")
	second := addDir(t, manager, "Work", "/srv/work")
	addDir(t, manager, "Downloads", "/home/u/downloads")

	prompter := &mockPrompter{selectResult: second.ID}
	resolver := NewDirectoryResolver(manager, prompter)

	dir, err := resolver.Resolve("work")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if dir.ID != second.ID {
		t.Errorf("Expected id %q, got %q", second.ID, dir.ID)
	}
	// Only the name matches should be offered
	if len(prompter.options) != 2 {
		t.Errorf("Expected 2 prompt options, got %d", len(prompter.options))
	}
}

func TestDirectoryResolver_Resolve_NonInteractive_PromptError(t *testing.T) {
	manager := newTestManager(t)
	addDir(t, manager, "Projects", "/home/u/projects")
	addDir(t, manager, "Downloads", "/home/u/downloads")

	resolver := NewDirectoryResolver(manager, &prompt.NoopPrompter{})

	_, err := resolver.Resolve("")
	if err == nil {
		t.Fatal("Expected error when prompting non-interactively")
	}
	if !errors.Is(err, prompt.ErrNonInteractive) {
		t.Errorf("Expected ErrNonInteractive, got %v", err)
	}
}
