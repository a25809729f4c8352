package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	apihttp "github.com/kmorrow/issuesheet/internal/adapter/api/http"
	"github.com/kmorrow/issuesheet/internal/adapter/cli"
	githubadapter "github.com/kmorrow/issuesheet/internal/adapter/github"
	"github.com/kmorrow/issuesheet/internal/adapter/observability"
	"github.com/kmorrow/issuesheet/internal/adapter/output/markdown"
	"github.com/kmorrow/issuesheet/internal/adapter/spreadsheet"
	"github.com/kmorrow/issuesheet/internal/config"
	"github.com/kmorrow/issuesheet/internal/usecase/sync"
	"github.com/kmorrow/issuesheet/internal/version"
)

func main() {
	if err := run(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run() error {
	// Create cancellable context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(config.LoaderOptions{
		ConfigPaths: defaultConfigPaths(),
		FileName:    "issuesheet",
		EnvPrefix:   "ISSUESHEET",
	})
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	token := cfg.GitHub.Token
	if token == "" {
		token = os.Getenv("GITHUB_TOKEN")
	}
	if token == "" {
		return fmt.Errorf("github token not configured (set github.token or GITHUB_TOKEN)")
	}

	logger := buildLogger(cfg.Observability.Logging)

	client := githubadapter.NewClient(token)
	if cfg.GitHub.Endpoint != "" {
		client.SetEndpoint(cfg.GitHub.Endpoint)
	}
	if cfg.GitHub.Timeout != "" {
		if timeout, err := time.ParseDuration(cfg.GitHub.Timeout); err == nil {
			client.SetTimeout(timeout)
		} else {
			log.Printf("warning: invalid github timeout %q, using default", cfg.GitHub.Timeout)
		}
	}
	if logger != nil {
		client.SetLogger(logger)
	}

	// Timestamp function for deterministic report file naming
	nowFunc := func() string {
		return time.Now().UTC().Format("20060102T150405Z")
	}

	deps := sync.Deps{
		Client: client,
		OpenSource: func(path string) (sync.RowSource, error) {
			return spreadsheet.Open(path)
		},
		Report: markdown.NewWriter(nowFunc),
		Out:    os.Stdout,
	}
	if logger != nil {
		deps.Logger = observability.NewSyncLogger(logger)
	}

	root := cli.NewRootCommand(cli.Dependencies{
		Syncer:           &updaterSyncer{deps: deps},
		DefaultReportDir: cfg.Output.ReportDir,
		Version:          version.Value(),
	})

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, cli.ErrVersionRequested) {
			return nil
		}
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}

func defaultConfigPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "issuesheet"))
	}
	return paths
}

// buildLogger creates the structured logger based on configuration.
// Returns nil when logging is disabled.
func buildLogger(cfg config.LoggingConfig) apihttp.Logger {
	if !cfg.Enabled {
		return nil
	}

	logLevel := apihttp.LogLevelInfo
	switch cfg.Level {
	case "debug":
		logLevel = apihttp.LogLevelDebug
	case "error":
		logLevel = apihttp.LogLevelError
	}

	logFormat := apihttp.LogFormatJSON
	switch cfg.Format {
	case "human":
		logFormat = apihttp.LogFormatHuman
	case "auto", "":
		if sync.IsOutputTerminal() {
			logFormat = apihttp.LogFormatHuman
		}
	}

	return apihttp.NewDefaultLogger(logLevel, logFormat, cfg.RedactTokens)
}

// updaterSyncer bridges cli.Syncer to the sync use case, constructing one
// ProjectUpdater per invocation with the owner/repo the command was given.
type updaterSyncer struct {
	deps sync.Deps
}

// Sync implements cli.Syncer.
func (s *updaterSyncer) Sync(ctx context.Context, req cli.SyncRequest) error {
	updater := sync.NewProjectUpdater(req.Owner, req.Repo, s.deps)
	_, err := updater.Run(ctx, sync.Request{
		SpreadsheetPath: req.File,
		ProjectName:     req.ProjectName,
		ReportDir:       req.ReportDir,
	})
	return err
}

// Compile-time interface compliance checks
var _ sync.Client = (*githubadapter.Client)(nil)
var _ sync.RowSource = (*spreadsheet.Reader)(nil)
var _ sync.ReportWriter = (*markdown.Writer)(nil)
var _ cli.Syncer = (*updaterSyncer)(nil)
