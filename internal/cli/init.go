package cli

import (
	"fmt"

	"github.com/amterp/ra"

	"github.com/termdock/termdock/internal/config"
	"github.com/termdock/termdock/internal/model"
	"github.com/termdock/termdock/internal/store"
)

func registerInit(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("init")
	cmd.SetDescription("Create the config directory and a default configuration")

	ctx.InitLocation, _ = ra.NewString("location").
		SetShort("l").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Custom location for the config directory (default: ~/.config/termdock)").
		Register(cmd)

	ctx.InitUsed, _ = parent.RegisterCmd(cmd)
}

func runInit(location string) {
	paths := config.NewPaths(location)
	docStore := store.NewDocumentStore(paths)

	if docStore.Exists() {
		PrintInfo("Configuration already exists at %s", paths.DocumentPath())
		return
	}

	// Load creates and persists the default document for a missing file
	if _, err := docStore.Load(); err != nil {
		Fatal(err)
	}

	if location != "" {
		// Record the custom location so other commands find it
		appStore := store.NewAppStore(config.NewPaths(""))
		cfg, err := appStore.Load()
		if err != nil {
			cfg = model.DefaultAppConfig()
		}
		cfg.DataLocation = location
		if err := appStore.Save(cfg); err != nil {
			Fatal(fmt.Errorf("failed to record custom location: %w", err))
		}
	}

	PrintSuccess("Initialized termdock at %s", paths.ConfigDir())
	PrintInfo("Add your first directory with %s", RenderBold("termdock add <path>"))
}
