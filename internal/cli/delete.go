package cli

import (
	"fmt"

	"github.com/amterp/ra"
)

func registerDelete(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("delete")
	cmd.SetDescription("Delete a directory shortcut")

	ctx.DeleteDirectory, _ = ra.NewString("directory").
		SetOptional(true).
		SetUsage("Directory id or name").
		Register(cmd)

	ctx.DeleteForce, _ = ra.NewBool("force").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Skip confirmation").
		Register(cmd)

	ctx.DeleteUsed, _ = parent.RegisterCmd(cmd)
}

func runDelete(ref string, force, interactive bool) {
	app, err := NewApp(interactive)
	if err != nil {
		Fatal(err)
	}

	dir, err := app.Resolver.Resolve(ref)
	if err != nil {
		Fatal(err)
	}

	if !force {
		confirmed, err := app.Prompter.Confirm(fmt.Sprintf("Delete %q (%s)?", dir.Name, dir.Path), false)
		if err != nil {
			Fatal(err)
		}
		if !confirmed {
			PrintInfo("Cancelled")
			return
		}
	}

	if err := app.Manager.DeleteDirectory(dir.ID); err != nil {
		Fatal(err)
	}

	PrintSuccess("Deleted %s", RenderBold(dir.Name))
}
