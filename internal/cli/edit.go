package cli

import (
	"github.com/amterp/ra"
)

func registerEdit(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("edit")
	cmd.SetDescription("Edit a directory shortcut")

	ctx.EditDirectory, _ = ra.NewString("directory").
		SetOptional(true).
		SetUsage("Directory id or name").
		Register(cmd)

	ctx.EditName, _ = ra.NewString("name").
		SetShort("n").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("New display name").
		Register(cmd)

	ctx.EditPath, _ = ra.NewString("path").
		SetShort("p").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("New path").
		Register(cmd)

	ctx.EditGroup, _ = ra.NewString("group").
		SetShort("g").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("New group (id or name)").
		Register(cmd)

	ctx.EditTerminal, _ = ra.NewString("terminal").
		SetShort("t").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("New terminal (id or name)").
		Register(cmd)

	ctx.EditIcon, _ = ra.NewString("icon").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("New icon (emoji)").
		Register(cmd)

	ctx.EditUsed, _ = parent.RegisterCmd(cmd)
}

func runEdit(ref, name, path, group, terminal, icon string, interactive bool) {
	app, err := NewApp(interactive)
	if err != nil {
		Fatal(err)
	}

	dir, err := app.Resolver.Resolve(ref)
	if err != nil {
		Fatal(err)
	}

	updated := *dir
	if name != "" {
		updated.Name = name
	}
	if path != "" {
		updated.Path = path
	}
	if group != "" {
		updated.Group = group
	}
	if terminal != "" {
		terminalID, err := resolveTerminalRef(app, terminal, interactive)
		if err != nil {
			Fatal(err)
		}
		updated.TerminalID = terminalID
	}
	if icon != "" {
		updated.Icon = icon
	}

	if err := app.Manager.UpdateDirectory(updated); err != nil {
		Fatal(err)
	}

	PrintSuccess("Updated %s %s", RenderBold(updated.Name), RenderID(updated.ID))
}
