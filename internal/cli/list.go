package cli

import (
	"fmt"

	"github.com/amterp/ra"

	"github.com/termdock/termdock/internal/model"
)

func registerList(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("list")
	cmd.SetDescription("List directory shortcuts")

	ctx.ListGroup, _ = ra.NewString("group").
		SetShort("g").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Filter by group (id or name)").
		Register(cmd)

	ctx.ListFavorites, _ = ra.NewBool("favorites").
		SetShort("f").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Only show favorites").
		Register(cmd)

	ctx.ListRecent, _ = ra.NewBool("recent").
		SetShort("r").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Show recently launched directories, newest first").
		Register(cmd)

	ctx.ListUsed, _ = parent.RegisterCmd(cmd)
}

func runList(group string, favoritesOnly, recent, jsonOutput bool) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	doc := app.Manager.Document()

	var dirs []model.Directory
	if recent {
		dirs = app.Manager.RecentDirectories()
	} else {
		dirs = doc.Directories
	}

	groupID := ""
	if group != "" {
		if g := doc.GroupByID(group); g != nil {
			groupID = g.ID
		} else if g := doc.GroupByName(group); g != nil {
			groupID = g.ID
		} else {
			Fatal(fmt.Errorf("group %q not found", group))
		}
	}

	filtered := make([]model.Directory, 0, len(dirs))
	for _, d := range dirs {
		if groupID != "" && d.Group != groupID {
			continue
		}
		if favoritesOnly && !doc.IsFavorite(d.ID) {
			continue
		}
		filtered = append(filtered, d)
	}

	if jsonOutput {
		if err := printJson(NewListOutput(doc, filtered)); err != nil {
			Fatal(err)
		}
		return
	}

	if len(filtered) == 0 {
		PrintInfo("No directories found")
		return
	}

	if recent || groupID != "" {
		printDirectoryList(doc, filtered)
		return
	}
	printDirectoriesByGroup(doc, filtered)
}

func printDirectoriesByGroup(doc *model.Document, dirs []model.Directory) {
	byGroup := make(map[string][]model.Directory)
	for _, d := range dirs {
		byGroup[d.Group] = append(byGroup[d.Group], d)
	}

	for _, g := range doc.Groups {
		members := byGroup[g.ID]
		if len(members) == 0 {
			continue
		}
		fmt.Printf("%s %s\n", g.Icon, RenderBold(g.Name))
		printDirectoryList(doc, members)
		fmt.Println()
	}
}

func printDirectoryList(doc *model.Document, dirs []model.Directory) {
	for _, d := range dirs {
		star := " "
		if doc.IsFavorite(d.ID) {
			star = RenderFavorite()
		}
		termName := RenderMuted("unknown terminal")
		if term := doc.TerminalByID(d.TerminalID); term != nil {
			termName = RenderMuted(term.Name)
		}
		fmt.Printf("  %s %s %s  %s  %s\n", star, RenderID(d.ID), d.Name, RenderMuted(d.Path), termName)
	}
}
