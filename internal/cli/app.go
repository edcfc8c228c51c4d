package cli

import (
	"fmt"
	"os"

	"github.com/termdock/termdock/internal/config"
	"github.com/termdock/termdock/internal/model"
	"github.com/termdock/termdock/internal/prompt"
	"github.com/termdock/termdock/internal/resolver"
	"github.com/termdock/termdock/internal/service"
	"github.com/termdock/termdock/internal/store"
	"github.com/termdock/termdock/internal/validate"
)

// App holds all the dependencies for the CLI.
type App struct {
	Paths         *config.Paths
	AppConfig     *model.AppConfig
	AppStore      store.AppStore
	DocumentStore store.DocumentStore
	Manager       *service.Manager
	LaunchService *service.LaunchService
	ExportService *service.ExportService
	UpdateService *service.UpdateService
	Prompter      prompt.Prompter
	Resolver      *resolver.DirectoryResolver
}

// NewApp creates a new App with all dependencies wired up.
// If interactive is false, uses NoopPrompter that fails on prompts.
func NewApp(interactive bool) (*App, error) {
	paths := config.NewPaths("")
	appStore := store.NewAppStore(paths)

	appCfg, err := appStore.Load()
	if err != nil {
		// The app config is optional; warn and continue with defaults
		fmt.Fprintf(os.Stderr, "Warning: failed to load app config: %v\n", err)
		appCfg = model.DefaultAppConfig()
	}
	if appCfg.DataLocation != "" {
		paths = config.NewPaths(appCfg.DataLocation)
	}

	docStore := store.NewDocumentStore(paths)
	manager, err := service.NewManager(docStore)
	if err != nil {
		return nil, err
	}

	var prompter prompt.Prompter
	if interactive {
		prompter = prompt.NewHuhPrompter()
	} else {
		prompter = &prompt.NoopPrompter{}
	}

	return &App{
		Paths:         paths,
		AppConfig:     appCfg,
		AppStore:      appStore,
		DocumentStore: docStore,
		Manager:       manager,
		LaunchService: service.NewLaunchService(manager, service.NewExecLauncher()),
		ExportService: service.NewExportService(manager),
		UpdateService: service.NewUpdateService(releaseURL(appCfg)),
		Prompter:      prompter,
		Resolver:      resolver.NewDirectoryResolver(manager, prompter),
	}, nil
}

// releaseURL returns the configured release check override when it is a
// usable http(s) URL, or empty so the default endpoint is used. Release
// checks hit the network with this value, so it is held to the same gate
// as API payloads.
func releaseURL(cfg *model.AppConfig) string {
	if cfg.ReleaseURL == "" {
		return ""
	}
	if result := validate.SafeURL(cfg.ReleaseURL, "release_url"); !result.Valid {
		fmt.Fprintf(os.Stderr, "Warning: ignoring release_url: %s\n", result.Error)
		return ""
	}
	return cfg.ReleaseURL
}

// Fatal prints an error and exits.
func Fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
