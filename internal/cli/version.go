package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/amterp/ra"

	"github.com/termdock/termdock/internal/version"
)

func registerVersion(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("version")
	cmd.SetDescription("Print the version, optionally checking for updates")

	ctx.VersionCheck, _ = ra.NewBool("check").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Check whether a newer release is available").
		Register(cmd)

	ctx.VersionUsed, _ = parent.RegisterCmd(cmd)
}

func runVersion(check, jsonOutput bool) {
	if !check {
		if jsonOutput {
			if err := printJson(map[string]string{"version": version.Version}); err != nil {
				Fatal(err)
			}
			return
		}
		fmt.Printf("termdock %s\n", version.Version)
		return
	}

	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	info, err := app.UpdateService.Check(ctx)
	if err != nil {
		Fatal(err)
	}

	if jsonOutput {
		if err := printJson(map[string]any{
			"version": info.Current,
			"latest":  info.Latest,
			"newer":   info.Newer,
		}); err != nil {
			Fatal(err)
		}
		return
	}

	fmt.Printf("termdock %s\n", info.Current)
	if info.Newer {
		PrintInfo("A newer release is available: %s", info.Latest)
	} else {
		PrintSuccess("You are on the latest release")
	}
}
