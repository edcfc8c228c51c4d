package cli

import (
	"fmt"

	"github.com/amterp/ra"

	"github.com/termdock/termdock/internal/service"
)

func registerExport(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("export")
	cmd.SetDescription("Export the configuration to a portable JSON file")

	ctx.ExportFile, _ = ra.NewString("file").
		SetOptional(true).
		SetUsage("Output file (default: stdout)").
		Register(cmd)

	ctx.ExportSettings, _ = ra.NewBool("settings").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Include settings in the export").
		Register(cmd)

	ctx.ExportFavorites, _ = ra.NewBool("favorites").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Include the favorites list in the export").
		Register(cmd)

	ctx.ExportUsed, _ = parent.RegisterCmd(cmd)
}

func runExport(file string, includeSettings, includeFavorites bool) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	opts := service.ExportOptions{
		IncludeSettings:  includeSettings,
		IncludeFavorites: includeFavorites,
	}

	if file == "" {
		data, err := app.ExportService.Export(opts)
		if err != nil {
			Fatal(err)
		}
		fmt.Print(string(data))
		return
	}

	if err := app.ExportService.ExportToFile(file, opts); err != nil {
		Fatal(err)
	}
	PrintSuccess("Exported to %s", file)
}
