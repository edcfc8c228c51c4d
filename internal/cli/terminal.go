package cli

import (
	"fmt"

	"github.com/amterp/ra"

	"github.com/termdock/termdock/internal/model"
)

func registerTerminal(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("terminal")
	cmd.SetDescription("Manage terminals")

	// terminal add
	addCmd := ra.NewCmd("add")
	addCmd.SetDescription("Add a custom terminal")

	ctx.TerminalAddName, _ = ra.NewString("name").
		SetUsage("Terminal name").
		Register(addCmd)

	ctx.TerminalAddCommand, _ = ra.NewString("command").
		SetShort("c").
		SetFlagOnly(true).
		SetUsage("Launch command with a {path} placeholder").
		Register(addCmd)

	ctx.TerminalAddPathFormat, _ = ra.NewString("path-format").
		SetOptional(true).
		SetFlagOnly(true).
		SetDefault("unix").
		SetUsage("Path format the terminal expects: unix or windows").
		Register(addCmd)

	ctx.TerminalAddIcon, _ = ra.NewString("icon").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Icon (emoji)").
		Register(addCmd)

	ctx.TerminalAddUsed, _ = cmd.RegisterCmd(addCmd)

	// terminal list
	listCmd := ra.NewCmd("list")
	listCmd.SetDescription("List terminals")
	ctx.TerminalListUsed, _ = cmd.RegisterCmd(listCmd)

	// terminal hide
	hideCmd := ra.NewCmd("hide")
	hideCmd.SetDescription("Hide a terminal from pickers (the only way to retire a built-in)")

	ctx.TerminalHideRef, _ = ra.NewString("terminal").
		SetUsage("Terminal id or name").
		Register(hideCmd)

	ctx.TerminalHideShow, _ = ra.NewBool("show").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Unhide instead").
		Register(hideCmd)

	ctx.TerminalHideUsed, _ = cmd.RegisterCmd(hideCmd)

	// terminal delete
	deleteCmd := ra.NewCmd("delete")
	deleteCmd.SetDescription("Delete a custom terminal (built-ins can only be hidden)")

	ctx.TerminalDeleteRef, _ = ra.NewString("terminal").
		SetUsage("Terminal id or name").
		Register(deleteCmd)

	ctx.TerminalDeleteUsed, _ = cmd.RegisterCmd(deleteCmd)

	ctx.TerminalUsed, _ = parent.RegisterCmd(cmd)
}

func runTerminalAdd(name, command, pathFormat, icon string) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	format := model.PathFormatUnix
	if pathFormat == string(model.PathFormatWindows) {
		format = model.PathFormatWindows
	}

	term, err := app.Manager.AddTerminal(model.Terminal{
		Name:       name,
		Command:    command,
		PathFormat: format,
		Icon:       icon,
	})
	if err != nil {
		Fatal(err)
	}

	PrintSuccess("Added terminal %s %s", RenderBold(term.Name), RenderID(term.ID))
}

func runTerminalList(jsonOutput bool) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	doc := app.Manager.Document()

	if jsonOutput {
		if err := printJson(map[string][]model.Terminal{"terminals": doc.Terminals}); err != nil {
			Fatal(err)
		}
		return
	}

	for _, t := range doc.Terminals {
		tags := ""
		if t.IsBuiltin {
			tags += RenderMuted(" [builtin]")
		}
		if t.Hidden {
			tags += RenderMuted(" [hidden]")
		}
		fmt.Printf("%s %s %s%s\n  %s\n", t.Icon, RenderBold(t.Name), RenderID(t.ID), tags, RenderMuted(t.Command))
	}
}

func runTerminalHide(ref string, hidden bool) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	term := findTerminal(app, ref)
	if err := app.Manager.SetTerminalHidden(term.ID, hidden); err != nil {
		Fatal(err)
	}

	if hidden {
		PrintSuccess("Hid terminal %s", RenderBold(term.Name))
	} else {
		PrintSuccess("Unhid terminal %s", RenderBold(term.Name))
	}
}

func runTerminalDelete(ref string) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	term := findTerminal(app, ref)
	if err := app.Manager.DeleteTerminal(term.ID); err != nil {
		Fatal(err)
	}

	PrintSuccess("Deleted terminal %s", RenderBold(term.Name))
}

func findTerminal(app *App, ref string) *model.Terminal {
	doc := app.Manager.Document()
	if t := doc.TerminalByID(ref); t != nil {
		return t
	}
	for i := range doc.Terminals {
		if doc.Terminals[i].Name == ref {
			return &doc.Terminals[i]
		}
	}
	Fatal(fmt.Errorf("terminal %q not found", ref))
	return nil
}
