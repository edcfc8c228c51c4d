package cli

import (
	"fmt"
	"os"

	"github.com/amterp/ra"

	"github.com/termdock/termdock/internal/service"
)

func registerDoctor(parent *ra.Cmd, ctx *CommandContext) {
	cmd := ra.NewCmd("doctor")
	cmd.SetDescription("Check the configuration for consistency issues. Exit 0 if healthy, 1 if errors found.")

	ctx.DoctorFix, _ = ra.NewBool("fix").
		SetOptional(true).
		SetFlagOnly(true).
		SetUsage("Re-run migration to repair fixable issues").
		Register(cmd)

	ctx.DoctorUsed, _ = parent.RegisterCmd(cmd)
}

func runDoctor(fix, jsonOutput bool) {
	app, err := NewApp(false)
	if err != nil {
		Fatal(err)
	}

	doctor := service.NewDoctorService()
	report := doctor.Check(app.Manager.Document())

	if fix && report.HasErrors() {
		// Migration is the repair path: replaying the document through it
		// re-establishes every fixable invariant.
		raw, err := app.DocumentStore.Raw()
		if err != nil {
			Fatal(err)
		}
		if _, err := app.Manager.ReplaceDocument(raw); err != nil {
			Fatal(err)
		}
		report = doctor.Check(app.Manager.Document())
		PrintInfo("Re-ran migration")
	}

	if jsonOutput {
		if err := printJson(report); err != nil {
			Fatal(err)
		}
		if report.HasErrors() {
			os.Exit(1)
		}
		return
	}

	if len(report.Issues) == 0 {
		PrintSuccess("No issues found.")
		return
	}

	for _, issue := range report.Issues {
		line := fmt.Sprintf("[%s] %s", issue.Code, issue.Message)
		if issue.Fixable {
			line += RenderMuted(" (fixable)")
		}
		if issue.Severity == service.SeverityError {
			PrintError("%s", line)
		} else {
			PrintWarning("%s", line)
		}
	}

	fmt.Println()
	fmt.Printf("%d error(s), %d warning(s)\n", report.Errors, report.Warnings)
	if report.HasErrors() {
		if !fix {
			PrintInfo("Run %s to repair fixable issues", RenderBold("termdock doctor --fix"))
		}
		os.Exit(1)
	}
}
