// Package sync provides the use case that turns spreadsheet rows into
// project-linked GitHub issues.
package sync

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/kmorrow/issuesheet/internal/domain"
)

// Client defines the GitHub operations the updater needs.
// This interface allows for mocking in tests.
type Client interface {
	ResolveRepositoryID(ctx context.Context, owner, name string) (string, error)
	FindProjectID(ctx context.Context, owner, repo, projectName string) (string, error)
	CreateIssue(ctx context.Context, repositoryID, title, body string) (string, error)
	AddProjectItem(ctx context.Context, projectID, contentID string) (string, error)
}

// RowSource yields the issue rows of one spreadsheet.
type RowSource interface {
	Rows() ([]domain.IssueRow, error)
	Close() error
}

// RowSourceOpener opens a RowSource for the spreadsheet at path.
type RowSourceOpener func(path string) (RowSource, error)

// Logger receives structured messages from the updater.
type Logger interface {
	LogInfo(ctx context.Context, message string, fields map[string]interface{})
	LogWarning(ctx context.Context, message string, fields map[string]interface{})
}

// ReportWriter persists a run report artifact and returns its path.
type ReportWriter interface {
	Write(ctx context.Context, report domain.RunReport, outputDir string) (string, error)
}

// Deps captures the collaborators for the updater.
type Deps struct {
	Client     Client
	OpenSource RowSourceOpener
	Logger     Logger
	Report     ReportWriter
	Out        io.Writer
}

// ProjectUpdater drives the spreadsheet-to-project batch for one repository.
// Rows are processed strictly in spreadsheet order with one network call in
// flight at a time; per-row failures are logged and never abort the batch.
type ProjectUpdater struct {
	owner string
	repo  string
	deps  Deps
}

// NewProjectUpdater creates an updater for the given repository.
func NewProjectUpdater(owner, repo string, deps Deps) *ProjectUpdater {
	if deps.Out == nil {
		deps.Out = io.Discard
	}
	return &ProjectUpdater{owner: owner, repo: repo, deps: deps}
}

// Request describes one sync run.
type Request struct {
	// SpreadsheetPath is the workbook to read rows from.
	SpreadsheetPath string

	// ProjectName is the display name of the target Project (V2) board.
	ProjectName string

	// ReportDir, when non-empty, is the directory a run report is written to.
	ReportDir string
}

// Result describes the outcome of one sync run.
type Result struct {
	// RunID uniquely identifies this run in logs and the report.
	RunID string

	// Repository is the resolved target repository.
	Repository domain.Repository

	// Project is the resolved target board. Zero-valued when no project
	// matched the requested name.
	Project domain.Project

	// Rows holds the per-row outcomes, in spreadsheet order.
	Rows []domain.RowResult

	// ReportPath is where the run report was written, if one was requested.
	ReportPath string
}

// Run resolves the repository and project, processes every spreadsheet row,
// and reports completion. Resolution failures abort the run; a project name
// matching nothing returns early with no mutations and no error. Per-row
// failures are logged and the run still finishes normally.
func (u *ProjectUpdater) Run(ctx context.Context, req Request) (Result, error) {
	result := Result{RunID: uuid.NewString()}

	repoID, err := u.deps.Client.ResolveRepositoryID(ctx, u.owner, u.repo)
	if err != nil {
		return result, fmt.Errorf("resolve repository %s/%s: %w", u.owner, u.repo, err)
	}
	result.Repository = domain.Repository{ID: repoID, Owner: u.owner, Name: u.repo}

	projectID, err := u.deps.Client.FindProjectID(ctx, u.owner, u.repo, req.ProjectName)
	if err != nil {
		return result, fmt.Errorf("find project %q: %w", req.ProjectName, err)
	}
	if projectID == "" {
		fmt.Fprintf(u.deps.Out, "No project found matching %q.\n", req.ProjectName)
		return result, nil
	}
	result.Project = domain.Project{ID: projectID, Name: req.ProjectName}

	u.logInfo(ctx, "starting batch", map[string]interface{}{
		"run_id":      result.RunID,
		"repository":  u.owner + "/" + u.repo,
		"project":     req.ProjectName,
		"spreadsheet": req.SpreadsheetPath,
	})

	rows, err := u.UpdateFromSpreadsheet(ctx, req.SpreadsheetPath, projectID)
	if err != nil {
		return result, err
	}
	result.Rows = rows

	if req.ReportDir != "" && u.deps.Report != nil {
		path, err := u.deps.Report.Write(ctx, domain.RunReport{
			RunID:           result.RunID,
			Repository:      result.Repository,
			Project:         result.Project,
			SpreadsheetPath: req.SpreadsheetPath,
			Rows:            rows,
		}, req.ReportDir)
		if err != nil {
			u.logWarning(ctx, "write run report", map[string]interface{}{"error": err.Error()})
		} else {
			result.ReportPath = path
			fmt.Fprintf(u.deps.Out, "Report written to %s\n", path)
		}
	}

	fmt.Fprintln(u.deps.Out, "Finished.")
	return result, nil
}

// UpdateFromSpreadsheet opens the workbook read-only and processes rows
// 2..lastRow inclusive, creating then linking one issue per row. Any error
// from either step is caught, logged with the row index, and the loop
// proceeds to the next row. The workbook is closed when the batch completes
// or fails.
func (u *ProjectUpdater) UpdateFromSpreadsheet(ctx context.Context, path, projectID string) ([]domain.RowResult, error) {
	source, err := u.deps.OpenSource(path)
	if err != nil {
		return nil, fmt.Errorf("open spreadsheet: %w", err)
	}
	defer source.Close()

	rows, err := source.Rows()
	if err != nil {
		return nil, fmt.Errorf("read spreadsheet: %w", err)
	}

	results := make([]domain.RowResult, 0, len(rows))
	for _, row := range rows {
		res := u.processRow(ctx, projectID, row)
		results = append(results, res)

		if res.Err != nil {
			fmt.Fprintf(u.deps.Out, "%v\n", res.Err)
			u.logWarning(ctx, "row failed", map[string]interface{}{
				"row":   row.SourceRow,
				"error": res.Err.Error(),
			})
			// A cancelled context fails every remaining call the same way.
			if ctx.Err() != nil {
				break
			}
		}
	}

	return results, nil
}

// processRow runs the per-row state machine: Pending -> IssueCreated ->
// Linked, or -> Failed at whichever step errored. The repository id is
// resolved per call, not cached across rows.
func (u *ProjectUpdater) processRow(ctx context.Context, projectID string, row domain.IssueRow) domain.RowResult {
	result := domain.RowResult{Row: row, State: domain.RowPending}

	fmt.Fprintf(u.deps.Out, "Creating issue %q (row %d)\n", row.Title, row.SourceRow)

	repoID, err := u.deps.Client.ResolveRepositoryID(ctx, u.owner, u.repo)
	if err != nil {
		result.State = domain.RowFailed
		result.Err = &domain.RowError{Row: row.SourceRow, Err: err}
		return result
	}

	issueID, err := u.deps.Client.CreateIssue(ctx, repoID, row.Title, row.Body)
	if err != nil {
		result.State = domain.RowFailed
		result.Err = &domain.RowError{Row: row.SourceRow, Err: err}
		return result
	}
	result.IssueID = issueID
	result.State = domain.RowIssueCreated

	itemID, err := u.deps.Client.AddProjectItem(ctx, projectID, issueID)
	if err != nil {
		// The issue exists remotely, orphaned from the project. Accepted,
		// non-recovered inconsistency: no rollback.
		result.State = domain.RowFailed
		result.Err = &domain.RowError{Row: row.SourceRow, Err: err}
		return result
	}
	result.ItemID = itemID
	result.State = domain.RowLinked

	return result
}

func (u *ProjectUpdater) logInfo(ctx context.Context, message string, fields map[string]interface{}) {
	if u.deps.Logger != nil {
		u.deps.Logger.LogInfo(ctx, message, fields)
	}
}

func (u *ProjectUpdater) logWarning(ctx context.Context, message string, fields map[string]interface{}) {
	if u.deps.Logger != nil {
		u.deps.Logger.LogWarning(ctx, message, fields)
	}
}
