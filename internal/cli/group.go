package cli

import (
	"fmt"

	"github.com/amterp/ra"

	"github.com/termdock/termdock/internal/model"
)

func registerGroup(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("group")
	cmd.SetDescription("Manage groups")

	// group add
	addCmd := ra.NewCmd("add")
	addCmd.SetDescription("Add a new group")

	ctx.GroupAddName, _ = ra.NewString("name").
		SetUsage("Group name").
		Register(addCmd)

	ctx.GroupAddIcon, _ = ra.NewString("icon").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Icon (emoji)").
		Register(addCmd)

	ctx.GroupAddUsed, _ = cmd.RegisterCmd(addCmd)

	// group list
	listCmd := ra.NewCmd("list")
	listCmd.SetDescription("List groups")
	ctx.GroupListUsed, _ = cmd.RegisterCmd(listCmd)

	// group default
	defaultCmd := ra.NewCmd("default")
	defaultCmd.SetDescription("Make a group the default")

	ctx.GroupDefaultRef, _ = ra.NewString("group").
		SetUsage("Group id or name").
		Register(defaultCmd)

	ctx.GroupDefaultUsed, _ = cmd.RegisterCmd(defaultCmd)

	// group delete
	deleteCmd := ra.NewCmd("delete")
	deleteCmd.SetDescription("Delete a group; its directories move to the default group")

	ctx.GroupDeleteRef, _ = ra.NewString("group").
		SetUsage("Group id or name").
		Register(deleteCmd)

	ctx.GroupDeleteUsed, _ = cmd.RegisterCmd(deleteCmd)

	ctx.GroupUsed, _ = parent.RegisterCmd(cmd)
}

func runGroupAdd(name, icon string) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	group, err := app.Manager.AddGroup(name, icon)
	if err != nil {
		Fatal(err)
	}

	PrintSuccess("Added group %s %s", RenderBold(group.Name), RenderID(group.ID))
}

func runGroupList(jsonOutput bool) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	doc := app.Manager.Document()

	if jsonOutput {
		if err := printJson(map[string][]model.Group{"groups": doc.Groups}); err != nil {
			Fatal(err)
		}
		return
	}

	counts := make(map[string]int)
	for _, d := range doc.Directories {
		counts[d.Group]++
	}

	for _, g := range doc.Groups {
		marker := " "
		if g.IsDefault {
			marker = StyleSuccess.Render("*")
		}
		fmt.Printf("%s %s %s %s %s\n", marker, g.Icon, RenderBold(g.Name), RenderID(g.ID),
			RenderMuted(fmt.Sprintf("(%d directories)", counts[g.ID])))
	}
}

func runGroupDefault(ref string) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	group := findGroup(app, ref)
	if err := app.Manager.SetDefaultGroup(group.ID); err != nil {
		Fatal(err)
	}

	PrintSuccess("%s is now the default group", RenderBold(group.Name))
}

func runGroupDelete(ref string, interactive bool) {
	app, err := NewApp(interactive)
	if err != nil {
		Fatal(err)
	}

	group := findGroup(app, ref)
	if err := app.Manager.DeleteGroup(group.ID); err != nil {
		Fatal(err)
	}

	PrintSuccess("Deleted group %s", RenderBold(group.Name))
}

func findGroup(app *App, ref string) *model.Group {
	doc := app.Manager.Document()
	if g := doc.GroupByID(ref); g != nil {
		return g
	}
	if g := doc.GroupByName(ref); g != nil {
		return g
	}
	Fatal(fmt.Errorf("group %q not found", ref))
	return nil
}
