// Package mcp exposes the launcher over the Model Context Protocol so AI
// assistants can list and open configured directories.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/termdock/termdock/internal/model"
	"github.com/termdock/termdock/internal/service"
	"github.com/termdock/termdock/internal/version"
)

// Server exposes directory and terminal operations as MCP tools over
// stdio transport.
type Server struct {
	manager   *service.Manager
	launch    *service.LaunchService
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server bound to the given manager. It refuses
// to start when MCP is disabled in settings; enable it first via the
// settings API or by editing the config file.
func NewServer(manager *service.Manager, launch *service.LaunchService) (*Server, error) {
	if !manager.Document().Settings.MCP.Enabled {
		return nil, fmt.Errorf("MCP is disabled in settings (settings.mcp.enabled)")
	}

	mcpServer := server.NewMCPServer(
		"termdock",
		version.Version,
		server.WithToolCapabilities(false),
	)

	s := &Server{
		manager:   manager,
		launch:    launch,
		mcpServer: mcpServer,
	}
	s.registerTools()
	return s, nil
}

// Start serves MCP over stdio. Blocks until the client closes the
// connection or the context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	listDirectories := mcp.NewTool("list_directories",
		mcp.WithDescription("List all configured directory shortcuts with their groups and terminals"),
		mcp.WithString("group",
			mcp.Description("Only list directories in this group (by id)"),
		),
	)
	s.mcpServer.AddTool(listDirectories, s.handleListDirectories)

	listTerminals := mcp.NewTool("list_terminals",
		mcp.WithDescription("List all configured terminals"),
	)
	s.mcpServer.AddTool(listTerminals, s.handleListTerminals)

	launchDirectory := mcp.NewTool("launch_directory",
		mcp.WithDescription("Open a configured directory in its terminal"),
		mcp.WithString("id",
			mcp.Required(),
			mcp.Description("ID of the directory to launch"),
		),
	)
	s.mcpServer.AddTool(launchDirectory, s.handleLaunchDirectory)
}

// directoryInfo is the JSON shape returned by list_directories.
type directoryInfo struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	Group    string `json:"group"`
	Terminal string `json:"terminal"`
	Favorite bool   `json:"favorite"`
}

func (s *Server) handleListDirectories(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc := s.manager.Document()
	group := request.GetString("group", "")

	var infos []directoryInfo
	for _, d := range doc.Directories {
		if group != "" && d.Group != group {
			continue
		}
		info := directoryInfo{
			ID:       d.ID,
			Name:     d.Name,
			Path:     d.Path,
			Group:    d.Group,
			Favorite: doc.IsFavorite(d.ID),
		}
		if term := doc.TerminalByID(d.TerminalID); term != nil {
			info.Terminal = term.Name
		}
		infos = append(infos, info)
	}

	data, err := json.MarshalIndent(infos, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format directories: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleListTerminals(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	doc := s.manager.Document()

	visible := make([]model.Terminal, 0, len(doc.Terminals))
	for _, t := range doc.Terminals {
		if !t.Hidden {
			visible = append(visible, t)
		}
	}

	data, err := json.MarshalIndent(visible, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format terminals: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleLaunchDirectory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id argument is required"), nil
	}

	if err := s.launch.Launch(id); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Launch failed: %v", err)), nil
	}

	dir := s.manager.Document().DirectoryByID(id)
	return mcp.NewToolResultText(fmt.Sprintf("Launched %q (%s)", dir.Name, dir.Path)), nil
}
