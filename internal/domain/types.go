package domain

import "fmt"

// Repository identifies a GitHub repository resolved once per run.
type Repository struct {
	ID    string
	Owner string
	Name  string
}

// Project identifies a GitHub Project (V2) board resolved once per run.
type Project struct {
	ID   string
	Name string
}

// IssueRow is a single spreadsheet row to be turned into an issue.
// SourceRow is the 1-based worksheet row number (data starts at row 2).
type IssueRow struct {
	Title     string
	Body      string
	SourceRow int
}

// RowState tracks how far a row progressed through the create-then-link sequence.
type RowState int

const (
	// RowPending means no API call has been made for the row yet.
	RowPending RowState = iota

	// RowIssueCreated means the issue exists remotely but is not yet linked.
	RowIssueCreated

	// RowLinked means the issue was created and attached to the project.
	RowLinked

	// RowFailed means the row stopped with an error. If the issue was already
	// created it remains on GitHub, unlinked.
	RowFailed
)

// String returns a human-readable state name.
func (s RowState) String() string {
	switch s {
	case RowPending:
		return "pending"
	case RowIssueCreated:
		return "issue created"
	case RowLinked:
		return "linked"
	case RowFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// RowResult records the outcome of processing one spreadsheet row.
type RowResult struct {
	Row     IssueRow
	State   RowState
	IssueID string
	ItemID  string
	Err     error
}

// Succeeded reports whether the row reached the terminal linked state.
func (r RowResult) Succeeded() bool {
	return r.State == RowLinked
}

// RunReport collects everything a run report artifact needs.
type RunReport struct {
	RunID           string
	Repository      Repository
	Project         Project
	SpreadsheetPath string
	Rows            []RowResult
}

// RowError wraps an error with the spreadsheet row it occurred on.
// Row failures are logged and never abort the batch.
type RowError struct {
	Row int
	Err error
}

// Error implements the error interface.
func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

// Unwrap returns the underlying error for errors.Is/errors.As.
func (e *RowError) Unwrap() error {
	return e.Err
}
