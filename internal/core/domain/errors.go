package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidActivity is returned by validation, always before any process
	// is spawned, when an activity definition is malformed or not executable
	// by the current user.
	ErrInvalidActivity = zerr.New("invalid activity")

	// ErrFailedActivity is returned by the runner after an execution attempt,
	// on a timeout or an exit-code mismatch.
	ErrFailedActivity = zerr.New("failed activity")

	// ErrExperimentFailed is returned by the engine when at least one
	// activity of a run failed.
	ErrExperimentFailed = zerr.New("experiment failed")

	// ErrNoActivities is returned when an experiment declares no activities.
	ErrNoActivities = zerr.New("experiment has no activities")

	// ErrUnsupportedActivityType is returned by the loader for activity
	// types this build has no provider for.
	ErrUnsupportedActivityType = zerr.New("unsupported activity type")
)
