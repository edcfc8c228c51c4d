package cli

import (
	"fmt"
	"os"

	"github.com/amterp/ra"

	"github.com/termdock/termdock/internal/config"
	"github.com/termdock/termdock/internal/migrate"
	"github.com/termdock/termdock/internal/model"
	"github.com/termdock/termdock/internal/store"
)

func registerMigrate(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("migrate")
	cmd.SetDescription("Migrate the configuration file to the current schema")

	ctx.MigrateDryRun, _ = ra.NewBool("dry-run").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Show what would change without modifying the file").
		Register(cmd)

	ctx.MigrateUsed, _ = parent.RegisterCmd(cmd)
}

// runMigrate reads the raw file directly; going through the Manager
// would migrate and save as a side effect of loading, which defeats
// --dry-run.
func runMigrate(dryRun bool) {
	paths := config.NewPaths(dataLocationFromAppConfig())
	docStore := store.NewDocumentStore(paths)

	raw, err := docStore.Raw()
	if err != nil {
		Fatal(err)
	}

	result := migrate.Run(raw, migrate.CurrentDefaults())

	if !result.NeedsSave {
		PrintSuccess("Configuration is up to date. No migration needed.")
		return
	}

	doc := result.Document
	fmt.Println(RenderBold("Migrated document:"))
	fmt.Println(LabelValue("terminals", fmt.Sprintf("%d", len(doc.Terminals)), 12))
	fmt.Println(LabelValue("groups", fmt.Sprintf("%d", len(doc.Groups)), 12))
	fmt.Println(LabelValue("directories", fmt.Sprintf("%d", len(doc.Directories)), 12))
	fmt.Println(LabelValue("favorites", fmt.Sprintf("%d", len(doc.Favorites)), 12))

	if dryRun {
		PrintInfo("Dry run: %s was not modified", paths.DocumentPath())
		return
	}

	if err := docStore.Save(doc); err != nil {
		Fatal(err)
	}
	PrintSuccess("Migration complete.")
}

// dataLocationFromAppConfig returns the custom config dir if one is
// recorded, or empty for the default.
func dataLocationFromAppConfig() string {
	appStore := store.NewAppStore(config.NewPaths(""))
	cfg, err := appStore.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load app config: %v\n", err)
		cfg = model.DefaultAppConfig()
	}
	return cfg.DataLocation
}
