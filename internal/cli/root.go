package cli

import (
	"os"

	"github.com/amterp/ra"
)

// CommandContext holds parsed values and used flags for all commands.
type CommandContext struct {
	// Global flags
	NonInteractive *bool
	Json           *bool

	// init command
	InitUsed     *bool
	InitLocation *string

	// list command
	ListUsed      *bool
	ListGroup     *string
	ListFavorites *bool
	ListRecent    *bool

	// show command
	ShowUsed      *bool
	ShowDirectory *string

	// add command
	AddUsed     *bool
	AddPath     *string
	AddName     *string
	AddGroup    *string
	AddTerminal *string
	AddIcon     *string

	// edit command
	EditUsed      *bool
	EditDirectory *string
	EditName      *string
	EditPath      *string
	EditGroup     *string
	EditTerminal  *string
	EditIcon      *string

	// delete command
	DeleteUsed      *bool
	DeleteDirectory *string
	DeleteForce     *bool

	// favorite command
	FavoriteUsed      *bool
	FavoriteDirectory *string

	// launch command
	LaunchUsed      *bool
	LaunchDirectory *string

	// group command
	GroupUsed        *bool
	GroupAddUsed     *bool
	GroupAddName     *string
	GroupAddIcon     *string
	GroupListUsed    *bool
	GroupDefaultUsed *bool
	GroupDefaultRef  *string
	GroupDeleteUsed  *bool
	GroupDeleteRef   *string

	// terminal command
	TerminalUsed          *bool
	TerminalAddUsed       *bool
	TerminalAddName       *string
	TerminalAddCommand    *string
	TerminalAddPathFormat *string
	TerminalAddIcon       *string
	TerminalListUsed      *bool
	TerminalHideUsed      *bool
	TerminalHideRef       *string
	TerminalHideShow      *bool
	TerminalDeleteUsed    *bool
	TerminalDeleteRef     *string

	// migrate command
	MigrateUsed   *bool
	MigrateDryRun *bool

	// doctor command
	DoctorUsed *bool
	DoctorFix  *bool

	// export command
	ExportUsed      *bool
	ExportFile      *string
	ExportSettings  *bool
	ExportFavorites *bool

	// import command
	ImportUsed            *bool
	ImportFile            *string
	ImportMerge           *bool
	ImportReplaceSettings *bool

	// serve command
	ServeUsed   *bool
	ServePort   *int
	ServeNoOpen *bool

	// mcp command
	McpUsed *bool

	// version command
	VersionUsed  *bool
	VersionCheck *bool
}

// Run is the main entry point for the CLI.
func Run() {
	ctx := &CommandContext{}

	cmd := ra.NewCmd("termdock")
	cmd.SetDescription("Directory shortcuts for terminal emulators")

	ctx.NonInteractive, _ = ra.NewBool("non-interactive").
		SetShort("I").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Fail instead of prompting for missing input").
		Register(cmd, ra.WithGlobal(true))

	ctx.Json, _ = ra.NewBool("json").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Output machine-readable JSON").
		Register(cmd, ra.WithGlobal(true))

	registerInit(cmd, ctx)
	registerList(cmd, ctx)
	registerShow(cmd, ctx)
	registerAdd(cmd, ctx)
	registerEdit(cmd, ctx)
	registerDelete(cmd, ctx)
	registerFavorite(cmd, ctx)
	registerLaunch(cmd, ctx)
	registerGroup(cmd, ctx)
	registerTerminal(cmd, ctx)
	registerMigrate(cmd, ctx)
	registerDoctor(cmd, ctx)
	registerExport(cmd, ctx)
	registerImport(cmd, ctx)
	registerServe(cmd, ctx)
	registerMcp(cmd, ctx)
	registerVersion(cmd, ctx)

	cmd.ParseOrExit(os.Args[1:])

	executeCommand(ctx)
}

func executeCommand(ctx *CommandContext) {
	interactive := !*ctx.NonInteractive

	switch {
	case *ctx.InitUsed:
		runInit(*ctx.InitLocation)

	case *ctx.ListUsed:
		runList(*ctx.ListGroup, *ctx.ListFavorites, *ctx.ListRecent, *ctx.Json)

	case *ctx.ShowUsed:
		runShow(*ctx.ShowDirectory, interactive, *ctx.Json)

	case *ctx.AddUsed:
		runAdd(*ctx.AddPath, *ctx.AddName, *ctx.AddGroup, *ctx.AddTerminal, *ctx.AddIcon, interactive)

	case *ctx.EditUsed:
		runEdit(*ctx.EditDirectory, *ctx.EditName, *ctx.EditPath, *ctx.EditGroup, *ctx.EditTerminal, *ctx.EditIcon, interactive)

	case *ctx.DeleteUsed:
		runDelete(*ctx.DeleteDirectory, *ctx.DeleteForce, interactive)

	case *ctx.FavoriteUsed:
		runFavorite(*ctx.FavoriteDirectory, interactive)

	case *ctx.LaunchUsed:
		runLaunch(*ctx.LaunchDirectory, interactive)

	case *ctx.GroupAddUsed:
		runGroupAdd(*ctx.GroupAddName, *ctx.GroupAddIcon)

	case *ctx.GroupListUsed:
		runGroupList(*ctx.Json)

	case *ctx.GroupDefaultUsed:
		runGroupDefault(*ctx.GroupDefaultRef)

	case *ctx.GroupDeleteUsed:
		runGroupDelete(*ctx.GroupDeleteRef, interactive)

	case *ctx.TerminalAddUsed:
		runTerminalAdd(*ctx.TerminalAddName, *ctx.TerminalAddCommand, *ctx.TerminalAddPathFormat, *ctx.TerminalAddIcon)

	case *ctx.TerminalListUsed:
		runTerminalList(*ctx.Json)

	case *ctx.TerminalHideUsed:
		runTerminalHide(*ctx.TerminalHideRef, !*ctx.TerminalHideShow)

	case *ctx.TerminalDeleteUsed:
		runTerminalDelete(*ctx.TerminalDeleteRef)

	case *ctx.MigrateUsed:
		runMigrate(*ctx.MigrateDryRun)

	case *ctx.DoctorUsed:
		runDoctor(*ctx.DoctorFix, *ctx.Json)

	case *ctx.ExportUsed:
		runExport(*ctx.ExportFile, *ctx.ExportSettings, *ctx.ExportFavorites)

	case *ctx.ImportUsed:
		runImport(*ctx.ImportFile, *ctx.ImportMerge, *ctx.ImportReplaceSettings, interactive)

	case *ctx.ServeUsed:
		runServe(*ctx.ServePort, *ctx.ServeNoOpen)

	case *ctx.McpUsed:
		runMcp()

	case *ctx.VersionUsed:
		runVersion(*ctx.VersionCheck, *ctx.Json)
	}
}
