package api

import (
	"fmt"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/termdock/termdock/internal/config"
)

// ConfigChangeType indicates what type of change occurred.
type ConfigChangeType string

const (
	ConfigChangeCreated  ConfigChangeType = "created"
	ConfigChangeModified ConfigChangeType = "modified"
	ConfigChangeDeleted  ConfigChangeType = "deleted"
)

// ConfigChangeKind indicates which file changed.
type ConfigChangeKind string

const (
	ConfigChangeKindDocument ConfigChangeKind = "document"
	ConfigChangeKindApp      ConfigChangeKind = "app"
	ConfigChangeKindUnknown  ConfigChangeKind = "unknown"
)

// ConfigChange is a change notification for a file in the config directory.
type ConfigChange struct {
	Type ConfigChangeType `json:"type"`
	Kind ConfigChangeKind `json:"kind"`
	File string           `json:"file"`
}

// ConfigWatcherSubscriber receives config change notifications.
type ConfigWatcherSubscriber interface {
	OnConfigChange(change ConfigChange)
}

// ConfigWatcher watches the config directory and notifies subscribers when
// the document or app config file changes on disk. Changes from other
// processes (or a text editor) reach connected clients this way.
type ConfigWatcher struct {
	watcher     *fsnotify.Watcher
	configDir   string
	mu          sync.RWMutex
	subscribers []ConfigWatcherSubscriber
	debounce    map[string]*time.Timer
	debounceMu  sync.Mutex
	stopCh      chan struct{}
	stopped     bool // Once stopped, cannot restart
	running     bool
}

// NewConfigWatcher creates a watcher for the given config directory.
func NewConfigWatcher(configDir string) (*ConfigWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &ConfigWatcher{
		watcher:   watcher,
		configDir: configDir,
		debounce:  make(map[string]*time.Timer),
		stopCh:    make(chan struct{}),
	}, nil
}

// Subscribe adds a subscriber to receive change notifications.
func (cw *ConfigWatcher) Subscribe(sub ConfigWatcherSubscriber) {
	cw.mu.Lock()
	defer cw.mu.Unlock()
	cw.subscribers = append(cw.subscribers, sub)
}

// Start begins watching the config directory.
func (cw *ConfigWatcher) Start() error {
	cw.mu.Lock()
	if cw.running {
		cw.mu.Unlock()
		return nil
	}
	if cw.stopped {
		cw.mu.Unlock()
		return fmt.Errorf("config watcher cannot be restarted after stop")
	}
	cw.running = true
	cw.mu.Unlock()

	if err := cw.watcher.Add(cw.configDir); err != nil {
		return err
	}

	go cw.run()
	return nil
}

// Stop stops watching for changes.
func (cw *ConfigWatcher) Stop() error {
	cw.mu.Lock()
	if !cw.running || cw.stopped {
		cw.mu.Unlock()
		return nil
	}
	cw.running = false
	cw.stopped = true
	cw.mu.Unlock()

	// Cancel pending debounce timers so they can't fire after stop
	cw.debounceMu.Lock()
	for path, timer := range cw.debounce {
		timer.Stop()
		delete(cw.debounce, path)
	}
	cw.debounceMu.Unlock()

	close(cw.stopCh)
	return cw.watcher.Close()
}

func (cw *ConfigWatcher) run() {
	for {
		select {
		case event, ok := <-cw.watcher.Events:
			if !ok {
				return
			}
			cw.handleEvent(event)

		case err, ok := <-cw.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Config watcher error: %v", err)

		case <-cw.stopCh:
			return
		}
	}
}

func (cw *ConfigWatcher) handleEvent(event fsnotify.Event) {
	base := filepath.Base(event.Name)
	if base != config.DocumentFileName && base != config.AppConfigName {
		// Temp files from atomic saves land here too; ignore them.
		return
	}

	// Debounce: saves are a write burst plus a rename, coalesce them
	cw.debounceMu.Lock()
	if timer, exists := cw.debounce[event.Name]; exists {
		timer.Stop()
	}
	cw.debounce[event.Name] = time.AfterFunc(100*time.Millisecond, func() {
		cw.emitChange(event)
		cw.debounceMu.Lock()
		delete(cw.debounce, event.Name)
		cw.debounceMu.Unlock()
	})
	cw.debounceMu.Unlock()
}

func (cw *ConfigWatcher) emitChange(event fsnotify.Event) {
	// The debounce timer may fire after Stop.
	cw.mu.RLock()
	if cw.stopped {
		cw.mu.RUnlock()
		return
	}
	subs := make([]ConfigWatcherSubscriber, len(cw.subscribers))
	copy(subs, cw.subscribers)
	cw.mu.RUnlock()

	change := cw.classifyChange(event)
	if change.Kind == ConfigChangeKindUnknown {
		return
	}

	for _, sub := range subs {
		sub.OnConfigChange(change)
	}
}

func (cw *ConfigWatcher) classifyChange(event fsnotify.Event) ConfigChange {
	change := ConfigChange{File: filepath.Base(event.Name)}

	switch {
	case event.Op&fsnotify.Create != 0:
		change.Type = ConfigChangeCreated
	case event.Op&fsnotify.Write != 0:
		change.Type = ConfigChangeModified
	case event.Op&fsnotify.Remove != 0:
		change.Type = ConfigChangeDeleted
	case event.Op&fsnotify.Rename != 0:
		change.Type = ConfigChangeDeleted
	default:
		return ConfigChange{Kind: ConfigChangeKindUnknown}
	}

	switch change.File {
	case config.DocumentFileName:
		change.Kind = ConfigChangeKindDocument
	case config.AppConfigName:
		change.Kind = ConfigChangeKindApp
	default:
		return ConfigChange{Kind: ConfigChangeKindUnknown}
	}
	return change
}
