// Package app implements the application layer behind the CLI.
package app

import (
	"context"
	"encoding/json"
	"os"

	"go.faultline.dev/faultline/internal/core/domain"
	"go.faultline.dev/faultline/internal/core/ports"
	"go.faultline.dev/faultline/internal/engine"
	"go.trai.ch/zerr"
)

// App orchestrates loading, validating and running experiments.
type App struct {
	loader ports.ExperimentLoader
	engine *engine.Engine
	logger ports.Logger
}

// New creates a new App instance.
func New(loader ports.ExperimentLoader, eng *engine.Engine, logger ports.Logger) *App {
	return &App{
		loader: loader,
		engine: eng,
		logger: logger,
	}
}

// RunOptions carries the per-invocation inputs of a run.
type RunOptions struct {
	// ExperimentPath is the experiment definition file.
	ExperimentPath string
	// Vars overrides or extends the experiment's configuration block.
	Vars map[string]string
	// Secrets is the secret mapping passed read-only into substitution.
	Secrets domain.Secrets
	// JournalPath, when non-empty, is where the run journal is written.
	JournalPath string
}

// Run loads and executes an experiment. The journal is written even when
// the run failed, so the operator can inspect what happened.
func (a *App) Run(ctx context.Context, opts RunOptions) error {
	exp, err := a.loader.Load(opts.ExperimentPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load experiment")
	}

	if len(opts.Vars) > 0 {
		if exp.Configuration == nil {
			exp.Configuration = make(domain.Configuration, len(opts.Vars))
		}
		for k, v := range opts.Vars {
			exp.Configuration[k] = v
		}
	}

	journal, runErr := a.engine.Run(ctx, exp, opts.Secrets)
	if journal != nil && opts.JournalPath != "" {
		if err := writeJournal(opts.JournalPath, journal); err != nil {
			a.logger.Error(err)
		} else {
			a.logger.Info("journal written to " + opts.JournalPath)
		}
	}
	return runErr
}

// Validate loads an experiment and checks every activity without running any.
func (a *App) Validate(_ context.Context, path string) error {
	exp, err := a.loader.Load(path)
	if err != nil {
		return zerr.Wrap(err, "failed to load experiment")
	}
	return a.engine.Validate(exp)
}

func writeJournal(path string, journal *domain.Journal) error {
	data, err := json.MarshalIndent(journal, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal journal")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // report file
		return zerr.Wrap(err, "failed to write journal")
	}
	return nil
}
