package api

import (
	"testing"

	"github.com/fsnotify/fsnotify"
)

func TestClassifyChange_Document(t *testing.T) {
	cw := &ConfigWatcher{configDir: "/home/u/.config/termdock"}

	tests := []struct {
		name     string
		path     string
		op       fsnotify.Op
		wantKind ConfigChangeKind
		wantType ConfigChangeType
	}{
		{
			name:     "document created",
			path:     "/home/u/.config/termdock/termdock.json",
			op:       fsnotify.Create,
			wantKind: ConfigChangeKindDocument,
			wantType: ConfigChangeCreated,
		},
		{
			name:     "document modified",
			path:     "/home/u/.config/termdock/termdock.json",
			op:       fsnotify.Write,
			wantKind: ConfigChangeKindDocument,
			wantType: ConfigChangeModified,
		},
		{
			name:     "document deleted",
			path:     "/home/u/.config/termdock/termdock.json",
			op:       fsnotify.Remove,
			wantKind: ConfigChangeKindDocument,
			wantType: ConfigChangeDeleted,
		},
		{
			name:     "app config modified",
			path:     "/home/u/.config/termdock/config.toml",
			op:       fsnotify.Write,
			wantKind: ConfigChangeKindApp,
			wantType: ConfigChangeModified,
		},
		{
			name:     "rename treated as deleted",
			path:     "/home/u/.config/termdock/termdock.json",
			op:       fsnotify.Rename,
			wantKind: ConfigChangeKindDocument,
			wantType: ConfigChangeDeleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change := cw.classifyChange(fsnotify.Event{Name: tt.path, Op: tt.op})

			if change.Kind != tt.wantKind {
				t.Errorf("Kind = %q, want %q", change.Kind, tt.wantKind)
			}
			if change.Type != tt.wantType {
				t.Errorf("Type = %q, want %q", change.Type, tt.wantType)
			}
		})
	}
}

func TestClassifyChange_Unknown(t *testing.T) {
	cw := &ConfigWatcher{configDir: "/home/u/.config/termdock"}

	tests := []struct {
		name string
		path string
	}{
		{"random file", "/home/u/.config/termdock/random.txt"},
		{"temp file from atomic save", "/home/u/.config/termdock/termdock.json.tmp123"},
		{"chmod only", "/home/u/.config/termdock/termdock.json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			op := fsnotify.Write
			if tt.name == "chmod only" {
				op = fsnotify.Chmod
			}
			change := cw.classifyChange(fsnotify.Event{Name: tt.path, Op: op})

			if change.Kind != ConfigChangeKindUnknown {
				t.Errorf("Kind = %q, want %q", change.Kind, ConfigChangeKindUnknown)
			}
		})
	}
}

// mockSubscriber implements ConfigWatcherSubscriber for testing
type mockSubscriber struct {
	changes []ConfigChange
}

func (m *mockSubscriber) OnConfigChange(change ConfigChange) {
	m.changes = append(m.changes, change)
}

func TestConfigWatcher_Subscribe(t *testing.T) {
	cw := &ConfigWatcher{}

	cw.Subscribe(&mockSubscriber{})
	cw.Subscribe(&mockSubscriber{})

	if len(cw.subscribers) != 2 {
		t.Errorf("Expected 2 subscribers, got %d", len(cw.subscribers))
	}
}

func TestConfigWatcher_StoppedPreventsRestart(t *testing.T) {
	cw := &ConfigWatcher{stopped: true}

	if err := cw.Start(); err == nil {
		t.Error("Expected error when starting stopped watcher")
	}
}
