package cli

import (
	"fmt"

	"github.com/amterp/ra"

	"github.com/termdock/termdock/internal/service"
)

func registerImport(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("import")
	cmd.SetDescription("Import a configuration from an exported JSON file")

	ctx.ImportFile, _ = ra.NewString("file").
		SetUsage("Exported JSON file to read").
		Register(cmd)

	ctx.ImportMerge, _ = ra.NewBool("merge").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Merge into the current configuration instead of replacing it").
		Register(cmd)

	ctx.ImportReplaceSettings, _ = ra.NewBool("replace-settings").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Overwrite settings with the imported ones").
		Register(cmd)

	ctx.ImportUsed, _ = parent.RegisterCmd(cmd)
}

func runImport(file string, merge, replaceSettings bool, interactive bool) {
	app, err := NewApp(interactive)
	if err != nil {
		Fatal(err)
	}

	if !merge && interactive {
		ok, err := app.Prompter.Confirm(fmt.Sprintf("Replace the current configuration with %s?", file), false)
		if err != nil {
			Fatal(err)
		}
		if !ok {
			PrintInfo("Import cancelled")
			return
		}
	}

	doc, err := app.ExportService.ImportFromFile(file, service.ImportOptions{
		Merge:           merge,
		ReplaceSettings: replaceSettings,
	})
	if err != nil {
		Fatal(err)
	}

	PrintSuccess("Imported %d directories, %d groups, %d terminals",
		len(doc.Directories), len(doc.Groups), len(doc.Terminals))
}
