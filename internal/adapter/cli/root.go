package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// ErrVersionRequested indicates the user requested the CLI version and no further work should be done.
var ErrVersionRequested = errors.New("version requested")

// SyncRequest carries the arguments of one sync invocation.
type SyncRequest struct {
	File        string
	Owner       string
	Repo        string
	ProjectName string
	ReportDir   string
}

// Syncer defines the dependency required to run the sync command.
type Syncer interface {
	Sync(ctx context.Context, req SyncRequest) error
}

// Arguments encapsulates IO writers injected from the host process.
type Arguments struct {
	OutWriter io.Writer
	ErrWriter io.Writer
}

// Dependencies captures the collaborators for the CLI.
type Dependencies struct {
	Syncer           Syncer
	Args             Arguments
	DefaultReportDir string
	Version          string
}

// NewRootCommand constructs the root Cobra command.
func NewRootCommand(deps Dependencies) *cobra.Command {
	versionString := deps.Version
	if versionString == "" {
		versionString = "v0.0.0"
	}

	root := &cobra.Command{
		Use:   "issuesheet",
		Short: "Bulk-create GitHub issues from a spreadsheet and attach them to a project board",
	}
	root.SilenceUsage = true
	root.SilenceErrors = true

	outWriter := deps.Args.OutWriter
	if outWriter == nil {
		outWriter = os.Stdout
	}
	errWriter := deps.Args.ErrWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}
	root.SetOut(outWriter)
	root.SetErr(errWriter)

	root.AddCommand(syncCommand(deps.Syncer, deps.DefaultReportDir))

	var showVersion bool
	root.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version and exit")
	versionHandler := func(cmd *cobra.Command, args []string) error {
		if showVersion {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), versionString)
			return ErrVersionRequested
		}
		return nil
	}
	root.PersistentPreRunE = versionHandler
	root.RunE = func(cmd *cobra.Command, args []string) error {
		if err := versionHandler(cmd, args); err != nil {
			return err
		}
		return cmd.Help()
	}

	return root
}

func syncCommand(syncer Syncer, defaultReportDir string) *cobra.Command {
	var file string
	var owner string
	var repo string
	var project string
	var report bool
	var reportDir string

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Create one issue per spreadsheet row and link each to a project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// All arguments are validated before any network call is made.
			if file == "" {
				return fmt.Errorf("--file is required")
			}
			if owner == "" {
				return fmt.Errorf("--owner is required")
			}
			if repo == "" {
				return fmt.Errorf("--repo is required")
			}
			if project == "" {
				return fmt.Errorf("--project is required")
			}

			resolvedReportDir := ""
			if report {
				resolvedReportDir = reportDir
				if resolvedReportDir == "" {
					resolvedReportDir = defaultReportDir
				}
			}

			return syncer.Sync(cmd.Context(), SyncRequest{
				File:        file,
				Owner:       owner,
				Repo:        repo,
				ProjectName: project,
				ReportDir:   resolvedReportDir,
			})
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Path to the spreadsheet workbook (required)")
	cmd.Flags().StringVar(&owner, "owner", "", "Repository owner (required)")
	cmd.Flags().StringVar(&repo, "repo", "", "Repository name (required)")
	cmd.Flags().StringVar(&project, "project", "", "Project (V2) board display name (required)")
	cmd.Flags().BoolVar(&report, "report", false, "Write a Markdown run report")
	cmd.Flags().StringVar(&reportDir, "report-dir", "", "Directory for the run report (defaults to output.reportDir)")

	return cmd
}
