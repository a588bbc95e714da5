package domain

import (
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.trai.ch/zerr"
)

// RunStatus is the overall state of an experiment run.
type RunStatus string

const (
	// RunStatusRunning indicates the run is still in progress.
	RunStatusRunning RunStatus = "running"
	// RunStatusCompleted indicates every activity met its exit-code contract.
	RunStatusCompleted RunStatus = "completed"
	// RunStatusFailed indicates at least one activity failed.
	RunStatusFailed RunStatus = "failed"
)

// ActivityStatus is the terminal state of a single activity within a run.
type ActivityStatus string

const (
	// ActivityStatusSucceeded indicates the activity met its contract.
	ActivityStatusSucceeded ActivityStatus = "succeeded"
	// ActivityStatusFailed indicates a timeout or exit-code mismatch.
	ActivityStatusFailed ActivityStatus = "failed"
)

// ActivityRecord captures how one activity fared during a run.
type ActivityRecord struct {
	Name       string         `json:"name"`
	Status     ActivityStatus `json:"status"`
	Background bool           `json:"background,omitempty"`
	StartedAt  time.Time      `json:"started_at"`
	EndedAt    time.Time      `json:"ended_at"`
	Duration   string         `json:"duration"`
	Outcome    *Outcome       `json:"outcome,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// Journal is the record of one experiment run. Record is safe for use from
// concurrent background activities.
type Journal struct {
	mu sync.Mutex

	RunID      string           `json:"run_id"`
	Title      string           `json:"title"`
	Digest     string           `json:"digest,omitempty"`
	Status     RunStatus        `json:"status"`
	StartedAt  time.Time        `json:"started_at"`
	EndedAt    time.Time        `json:"ended_at"`
	Activities []ActivityRecord `json:"activities"`
}

// NewJournal opens a journal for a run of the given experiment.
func NewJournal(exp *Experiment) (*Journal, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return nil, zerr.Wrap(err, "failed to generate run id")
	}
	return &Journal{
		RunID:     id.String(),
		Title:     exp.Title,
		Digest:    exp.Digest,
		Status:    RunStatusRunning,
		StartedAt: time.Now().UTC(),
	}, nil
}

// Record appends the record of a finished activity.
func (j *Journal) Record(rec ActivityRecord) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Activities = append(j.Activities, rec)
}

// Seal closes the journal, deriving the overall run status from the
// recorded activities.
func (j *Journal) Seal() {
	j.mu.Lock()
	defer j.mu.Unlock()

	j.EndedAt = time.Now().UTC()
	j.Status = RunStatusCompleted
	for _, rec := range j.Activities {
		if rec.Status == ActivityStatusFailed {
			j.Status = RunStatusFailed
			break
		}
	}
}

// Failed reports whether any recorded activity failed.
func (j *Journal) Failed() bool {
	j.mu.Lock()
	defer j.mu.Unlock()

	for _, rec := range j.Activities {
		if rec.Status == ActivityStatusFailed {
			return true
		}
	}
	return false
}
