package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/Veraticus/txscan/pkg/analysis"
	"github.com/Veraticus/txscan/pkg/config"
	"github.com/Veraticus/txscan/pkg/corpus"
	"github.com/Veraticus/txscan/pkg/interfaces"
	"github.com/Veraticus/txscan/pkg/logging"
	"github.com/Veraticus/txscan/pkg/report"
)

// Dependencies holds all the dependencies for the application
type Dependencies struct {
	Config   *config.Config
	Logger   *slog.Logger
	Loader   interfaces.Loader
	Analyzer *analysis.Analyzer
	Reporter interfaces.Reporter
}

// NewDependencies creates all dependencies with the given configuration.
// Reports go to stdout, diagnostics to stderr.
func NewDependencies(cfg *config.Config, stdout, stderr io.Writer) (*Dependencies, error) {
	deps := &Dependencies{
		Config: cfg,
		Logger: logging.New(stderr, cfg.LogLevel),
	}

	deps.Loader = corpus.NewFileLoader(cfg.BaseDir,
		corpus.WithTrim(cfg.TrimWhitespace),
		corpus.WithMaxBytes(cfg.MaxInputBytes),
		corpus.WithLogger(deps.Logger),
	)

	deps.Analyzer = analysis.NewAnalyzer(deps.Loader, analysis.Options{
		Transmissions: cfg.Transmissions,
		Signatures:    cfg.Signatures,
		Parallelism:   cfg.Parallelism,
	}, deps.Logger)

	// Only color text output going to a terminal
	reporter, err := report.New(cfg.Format, stdout, report.IsTerminal(stdout))
	if err != nil {
		return nil, err
	}
	deps.Reporter = reporter

	return deps, nil
}

// Application represents the main application
type Application struct {
	deps *Dependencies
}

// NewApplication creates a new application with the given dependencies
func NewApplication(deps *Dependencies) *Application {
	return &Application{
		deps: deps,
	}
}

// Run analyzes the configured corpus and reports the results
func (a *Application) Run(ctx context.Context) error {
	result, err := a.deps.Analyzer.Run(ctx)
	if err != nil {
		return err
	}

	if err := a.deps.Reporter.Report(result); err != nil {
		return fmt.Errorf("failed to report results: %w", err)
	}
	return nil
}
