package cli

import (
	"github.com/amterp/ra"
)

func registerLaunch(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("launch")
	cmd.SetDescription("Open a directory in its terminal")

	ctx.LaunchDirectory, _ = ra.NewString("directory").
		SetOptional(true).
		SetUsage("Directory id or name").
		Register(cmd)

	ctx.LaunchUsed, _ = parent.RegisterCmd(cmd)
}

func runLaunch(ref string, interactive bool) {
	app, err := NewApp(interactive)
	if err != nil {
		Fatal(err)
	}

	dir, err := app.Resolver.Resolve(ref)
	if err != nil {
		Fatal(err)
	}

	if err := app.LaunchService.Launch(dir.ID); err != nil {
		Fatal(err)
	}

	PrintSuccess("Launched %s %s", RenderBold(dir.Name), RenderMuted(dir.Path))
}
