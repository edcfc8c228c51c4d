package cli

import (
	"context"

	"github.com/amterp/ra"

	"github.com/termdock/termdock/internal/mcp"
)

func registerMcp(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("mcp")
	cmd.SetDescription("Run the MCP server over stdio")

	ctx.McpUsed, _ = parent.RegisterCmd(cmd)
}

func runMcp() {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	server, err := mcp.NewServer(app.Manager, app.LaunchService)
	if err != nil {
		Fatal(err)
	}

	if err := server.Start(context.Background()); err != nil {
		Fatal(err)
	}
}
