// Package engine drives experiment execution: every activity is validated
// before any is run, then the sequence executes in declaration order.
package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"go.faultline.dev/faultline/internal/core/domain"
	"go.faultline.dev/faultline/internal/core/ports"
	"go.trai.ch/zerr"
)

// Engine schedules the activities of an experiment against a provider.
type Engine struct {
	provider  ports.ActivityProvider
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new Engine.
func New(provider ports.ActivityProvider, logger ports.Logger, telemetry ports.Telemetry) *Engine {
	return &Engine{
		provider:  provider,
		logger:    logger,
		telemetry: telemetry,
	}
}

// Validate checks every activity of the experiment without executing any,
// failing on the first invalid one.
func (e *Engine) Validate(exp *domain.Experiment) error {
	if len(exp.Activities) == 0 {
		return domain.ErrNoActivities
	}
	for i := range exp.Activities {
		if err := e.provider.Validate(&exp.Activities[i]); err != nil {
			return err
		}
	}
	return nil
}

// Run validates the whole experiment, then executes its activities in
// declaration order. Background activities are launched concurrently and do
// not block the sequence; the engine waits for all of them before returning.
// The first foreground failure aborts the remaining sequence. The returned
// journal is complete even when the run failed.
func (e *Engine) Run(ctx context.Context, exp *domain.Experiment, secrets domain.Secrets) (*domain.Journal, error) {
	if err := e.Validate(exp); err != nil {
		return nil, err
	}

	journal, err := domain.NewJournal(exp)
	if err != nil {
		return nil, err
	}

	// Background failures are recorded in the journal, not propagated as
	// errors, so a plain group without context cancelation is enough.
	var background errgroup.Group

	var sequenceErr error
	for i := range exp.Activities {
		activity := &exp.Activities[i]

		if activity.Background {
			background.Go(func() error {
				e.runOne(ctx, activity, exp.Configuration, secrets, journal)
				return nil
			})
			continue
		}

		if err := e.runOne(ctx, activity, exp.Configuration, secrets, journal); err != nil {
			sequenceErr = err
			break
		}
	}

	_ = background.Wait()
	journal.Seal()

	if sequenceErr != nil || journal.Failed() {
		return journal, zerr.With(
			zerr.Wrap(domain.ErrExperimentFailed, "experiment run failed"),
			"run_id", journal.RunID)
	}
	return journal, nil
}

func (e *Engine) runOne(ctx context.Context, activity *domain.Activity, cfg domain.Configuration, secrets domain.Secrets, journal *domain.Journal) error {
	e.logger.Info(fmt.Sprintf("running activity '%s'", activity.Name))

	_, vertex := e.telemetry.Record(ctx, activity.Name)
	started := time.Now().UTC()

	outcome, err := e.provider.Run(ctx, activity, cfg, secrets)
	ended := time.Now().UTC()

	rec := domain.ActivityRecord{
		Name:       activity.Name,
		Background: activity.Background,
		StartedAt:  started,
		EndedAt:    ended,
		Duration:   ended.Sub(started).String(),
	}

	if err != nil {
		vertex.Complete(err)
		e.logger.Error(err)
		rec.Status = domain.ActivityStatusFailed
		rec.Error = err.Error()
		journal.Record(rec)
		return err
	}

	_, _ = io.WriteString(vertex.Stdout(), outcome.Stdout)
	_, _ = io.WriteString(vertex.Stderr(), outcome.Stderr)
	vertex.Complete(nil)

	rec.Status = domain.ActivityStatusSucceeded
	rec.Outcome = &outcome
	journal.Record(rec)
	return nil
}
