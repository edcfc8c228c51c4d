package service

import (
	"fmt"
	"strings"

	"github.com/termdock/termdock/internal/model"
)

// IssueSeverity indicates how critical an issue is.
type IssueSeverity string

const (
	SeverityError   IssueSeverity = "error"
	SeverityWarning IssueSeverity = "warning"
)

// Issue codes for diagnostic results.
const (
	// Priority 1: invariant violations (errors)
	CodeDuplicateTerminalID  = "DUPLICATE_TERMINAL_ID"
	CodeDuplicateGroupID     = "DUPLICATE_GROUP_ID"
	CodeDuplicateDirectoryID = "DUPLICATE_DIRECTORY_ID"
	CodeMissingBuiltin       = "MISSING_BUILTIN_TERMINAL"
	CodeNoDefaultGroup       = "NO_DEFAULT_GROUP"
	CodeMultipleDefaults     = "MULTIPLE_DEFAULT_GROUPS"
	CodeDanglingGroupRef     = "DANGLING_GROUP_REF"

	// Priority 2: soft references (warnings)
	CodeUnknownTerminalRef = "UNKNOWN_TERMINAL_REF"
	CodeDanglingFavorite   = "DANGLING_FAVORITE"
	CodeEmptyDirectoryPath = "EMPTY_DIRECTORY_PATH"
)

// Issue represents a single diagnostic finding.
type Issue struct {
	Severity IssueSeverity `json:"severity"`
	Code     string        `json:"code"`
	Subject  string        `json:"subject,omitempty"` // offending id
	Message  string        `json:"message"`
	Fixable  bool          `json:"fixable"` // re-running migration resolves it
}

// DiagnosticReport contains all diagnostic results.
type DiagnosticReport struct {
	Issues   []Issue `json:"issues"`
	Errors   int     `json:"errors"`
	Warnings int     `json:"warnings"`
}

// HasErrors returns true if there are any error-level issues.
func (r *DiagnosticReport) HasErrors() bool {
	return r.Errors > 0
}

// DoctorService checks a document against the invariants migration is
// supposed to guarantee. A clean report after every load is the expected
// state; findings here mean the file was edited by hand or an older build.
type DoctorService struct {
	builtins []model.Terminal
}

// NewDoctorService creates a diagnostic service checking against the
// current build's built-in terminals.
func NewDoctorService() *DoctorService {
	return &DoctorService{builtins: model.DefaultTerminals()}
}

// Check runs all diagnostics over the document.
func (s *DoctorService) Check(doc *model.Document) *DiagnosticReport {
	report := &DiagnosticReport{}

	s.checkDuplicates(doc, report)
	s.checkBuiltins(doc, report)
	s.checkDefaultGroup(doc, report)
	s.checkDirectories(doc, report)
	s.checkFavorites(doc, report)

	for _, issue := range report.Issues {
		if issue.Severity == SeverityError {
			report.Errors++
		} else {
			report.Warnings++
		}
	}
	return report
}

func (s *DoctorService) checkDuplicates(doc *model.Document, report *DiagnosticReport) {
	dup := func(code, kind, id string) Issue {
		return Issue{
			Severity: SeverityError,
			Code:     code,
			Subject:  id,
			Message:  fmt.Sprintf("%s id %q appears more than once", kind, id),
			Fixable:  true,
		}
	}

	seen := map[string]bool{}
	for _, t := range doc.Terminals {
		if seen[t.ID] {
			report.Issues = append(report.Issues, dup(CodeDuplicateTerminalID, "terminal", t.ID))
		}
		seen[t.ID] = true
	}

	seen = map[string]bool{}
	for _, g := range doc.Groups {
		if seen[g.ID] {
			report.Issues = append(report.Issues, dup(CodeDuplicateGroupID, "group", g.ID))
		}
		seen[g.ID] = true
	}

	seen = map[string]bool{}
	for _, d := range doc.Directories {
		if seen[d.ID] {
			report.Issues = append(report.Issues, dup(CodeDuplicateDirectoryID, "directory", d.ID))
		}
		seen[d.ID] = true
	}
}

func (s *DoctorService) checkBuiltins(doc *model.Document, report *DiagnosticReport) {
	for _, def := range s.builtins {
		if doc.TerminalByID(def.ID) == nil {
			report.Issues = append(report.Issues, Issue{
				Severity: SeverityError,
				Code:     CodeMissingBuiltin,
				Subject:  def.ID,
				Message:  fmt.Sprintf("built-in terminal %q is missing", def.ID),
				Fixable:  true,
			})
		}
	}
}

func (s *DoctorService) checkDefaultGroup(doc *model.Document, report *DiagnosticReport) {
	defaults := 0
	for _, g := range doc.Groups {
		if g.IsDefault {
			defaults++
		}
	}
	switch {
	case defaults == 0:
		report.Issues = append(report.Issues, Issue{
			Severity: SeverityError,
			Code:     CodeNoDefaultGroup,
			Message:  "no group is marked as default",
			Fixable:  true,
		})
	case defaults > 1:
		report.Issues = append(report.Issues, Issue{
			Severity: SeverityError,
			Code:     CodeMultipleDefaults,
			Message:  fmt.Sprintf("%d groups are marked as default, expected exactly one", defaults),
			Fixable:  true,
		})
	}
}

func (s *DoctorService) checkDirectories(doc *model.Document, report *DiagnosticReport) {
	for _, d := range doc.Directories {
		if doc.GroupByID(d.Group) == nil {
			report.Issues = append(report.Issues, Issue{
				Severity: SeverityError,
				Code:     CodeDanglingGroupRef,
				Subject:  d.ID,
				Message:  fmt.Sprintf("directory %q references unknown group %q", d.ID, d.Group),
				Fixable:  true,
			})
		}
		if d.TerminalID != "" && doc.TerminalByID(d.TerminalID) == nil {
			// Terminals can be deleted out from under directories; the
			// reference is kept so the user can repoint it later.
			report.Issues = append(report.Issues, Issue{
				Severity: SeverityWarning,
				Code:     CodeUnknownTerminalRef,
				Subject:  d.ID,
				Message:  fmt.Sprintf("directory %q references unknown terminal %q", d.ID, d.TerminalID),
				Fixable:  false,
			})
		}
		if strings.TrimSpace(d.Path) == "" {
			report.Issues = append(report.Issues, Issue{
				Severity: SeverityWarning,
				Code:     CodeEmptyDirectoryPath,
				Subject:  d.ID,
				Message:  fmt.Sprintf("directory %q has an empty path", d.ID),
				Fixable:  false,
			})
		}
	}
}

func (s *DoctorService) checkFavorites(doc *model.Document, report *DiagnosticReport) {
	for _, fav := range doc.Favorites {
		if doc.DirectoryByID(fav) == nil {
			report.Issues = append(report.Issues, Issue{
				Severity: SeverityWarning,
				Code:     CodeDanglingFavorite,
				Subject:  fav,
				Message:  fmt.Sprintf("favorite %q references a missing directory", fav),
				Fixable:  false,
			})
		}
	}
}
