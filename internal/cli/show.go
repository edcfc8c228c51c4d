package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/amterp/ra"
)

func registerShow(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("show")
	cmd.SetDescription("Display directory details")

	ctx.ShowDirectory, _ = ra.NewString("directory").
		SetOptional(true).
		SetUsage("Directory id or name").
		Register(cmd)

	ctx.ShowUsed, _ = parent.RegisterCmd(cmd)
}

func runShow(ref string, interactive, jsonOutput bool) {
	app, err := NewApp(interactive)
	if err != nil {
		Fatal(err)
	}

	dir, err := app.Resolver.Resolve(ref)
	if err != nil {
		Fatal(err)
	}

	doc := app.Manager.Document()

	if jsonOutput {
		if err := printJson(directoryToJson(doc, *dir)); err != nil {
			Fatal(err)
		}
		return
	}

	var lines []string
	title := dir.Name
	if doc.IsFavorite(dir.ID) {
		title = RenderFavorite() + " " + title
	}
	lines = append(lines, RenderBold(title))
	lines = append(lines, LabelValue("id", RenderID(dir.ID), 10))
	lines = append(lines, LabelValue("path", dir.Path, 10))

	if g := doc.GroupByID(dir.Group); g != nil {
		lines = append(lines, LabelValue("group", fmt.Sprintf("%s %s", g.Icon, g.Name), 10))
	}

	termLine := RenderMuted("unknown terminal")
	if term := doc.TerminalByID(dir.TerminalID); term != nil {
		termLine = fmt.Sprintf("%s %s", term.Name, RenderMuted(term.CommandFor(dir.Path)))
	}
	lines = append(lines, LabelValue("terminal", termLine, 10))

	if dir.LastUsed != nil {
		when := time.UnixMilli(*dir.LastUsed).Format("2006-01-02 15:04")
		lines = append(lines, LabelValue("last used", when, 10))
	}

	fmt.Println(Box(strings.Join(lines, "\n")))
}
