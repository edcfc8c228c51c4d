package cli

import (
	"fmt"
	"path/filepath"

	"github.com/amterp/ra"

	"github.com/termdock/termdock/internal/model"
	"github.com/termdock/termdock/internal/prompt"
)

func registerAdd(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("add")
	cmd.SetDescription("Add a directory shortcut")

	ctx.AddPath, _ = ra.NewString("path").
		SetOptional(true).
		SetUsage("Directory path").
		Register(cmd)

	ctx.AddName, _ = ra.NewString("name").
		SetShort("n").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Display name (default: directory basename)").
		Register(cmd)

	ctx.AddGroup, _ = ra.NewString("group").
		SetShort("g").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Group id or name (default: the default group)").
		Register(cmd)

	ctx.AddTerminal, _ = ra.NewString("terminal").
		SetShort("t").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Terminal id or name").
		Register(cmd)

	ctx.AddIcon, _ = ra.NewString("icon").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Icon (emoji)").
		Register(cmd)

	ctx.AddUsed, _ = parent.RegisterCmd(cmd)
}

func runAdd(path, name, group, terminal, icon string, interactive bool) {
	app, err := NewApp(interactive)
	if err != nil {
		Fatal(err)
	}

	if path == "" {
		path, err = app.Prompter.Input("Directory path", "")
		if err != nil {
			Fatal(err)
		}
	}
	if path == "" {
		Fatal(fmt.Errorf("path is required"))
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	if name == "" {
		name = filepath.Base(path)
	}

	terminalID, err := resolveTerminalRef(app, terminal, interactive)
	if err != nil {
		Fatal(err)
	}

	dir, err := app.Manager.AddDirectory(model.Directory{
		Name:       name,
		Path:       path,
		Group:      group,
		TerminalID: terminalID,
		Icon:       icon,
	})
	if err != nil {
		Fatal(err)
	}

	PrintSuccess("Added %s %s", RenderBold(dir.Name), RenderID(dir.ID))
}

// resolveTerminalRef turns a terminal id or name into an id. An empty
// ref prompts interactively, or falls back to the first visible terminal.
func resolveTerminalRef(app *App, ref string, interactive bool) (string, error) {
	doc := app.Manager.Document()

	if ref != "" {
		if term := doc.TerminalByID(ref); term != nil {
			return term.ID, nil
		}
		for _, t := range doc.Terminals {
			if t.Name == ref {
				return t.ID, nil
			}
		}
		return "", fmt.Errorf("terminal %q not found", ref)
	}

	visible := make([]model.Terminal, 0, len(doc.Terminals))
	for _, t := range doc.Terminals {
		if !t.Hidden {
			visible = append(visible, t)
		}
	}
	if len(visible) == 0 {
		return "", fmt.Errorf("no visible terminals configured")
	}

	if !interactive {
		return visible[0].ID, nil
	}

	options := make([]prompt.Option, len(visible))
	for i, t := range visible {
		options[i] = prompt.Option{Label: fmt.Sprintf("%s %s", t.Icon, t.Name), Value: t.ID}
	}
	return app.Prompter.Select("Terminal", options)
}
