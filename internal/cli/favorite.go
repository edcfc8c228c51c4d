package cli

import (
	"github.com/amterp/ra"
)

func registerFavorite(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("favorite")
	cmd.SetDescription("Toggle a directory's favorite status")

	ctx.FavoriteDirectory, _ = ra.NewString("directory").
		SetOptional(true).
		SetUsage("Directory id or name").
		Register(cmd)

	ctx.FavoriteUsed, _ = parent.RegisterCmd(cmd)
}

func runFavorite(ref string, interactive bool) {
	app, err := NewApp(interactive)
	if err != nil {
		Fatal(err)
	}

	dir, err := app.Resolver.Resolve(ref)
	if err != nil {
		Fatal(err)
	}

	favorite, err := app.Manager.ToggleFavorite(dir.ID)
	if err != nil {
		Fatal(err)
	}

	if favorite {
		PrintSuccess("%s %s is now a favorite", RenderFavorite(), RenderBold(dir.Name))
	} else {
		PrintSuccess("%s is no longer a favorite", RenderBold(dir.Name))
	}
}
