// Package domain holds the core types of the experiment model.
package domain

import "time"

// Configuration holds engine-owned settings passed read-only into argument
// substitution. Its contents are never interpreted by the provider itself.
type Configuration map[string]string

// Secrets holds engine-owned secret values passed read-only into argument
// substitution, same shape as Configuration but sourced separately.
type Secrets map[string]string

// Argument is a single flag/value pair of a process invocation.
// A nil Value omits the pair from the invocation; an empty Value turns the
// pair into a bare flag with no value.
type Argument struct {
	Flag  string
	Value *string
}

// Arguments is an ordered list of flag/value pairs. Declaration order is
// preserved end to end so invocations are reproducible.
type Arguments []Argument

// ProcessProvider describes the executable behind a process activity.
type ProcessProvider struct {
	// Path is an executable name resolved against the user's search path,
	// or an explicit file path.
	Path      string
	Arguments Arguments
	// Timeout bounds the wall-clock runtime of the child process, measured
	// from spawn. Zero means no deadline.
	Timeout time.Duration
}

// Activity is a named unit of work backed by an external executable.
// It is immutable for the duration of validation and execution.
type Activity struct {
	Name     string
	Provider ProcessProvider
	// ExpectedReturnCode is the exit code that counts as success.
	// Nil defaults to 0.
	ExpectedReturnCode *int
	// Background activities run concurrently with the remainder of the
	// experiment sequence instead of blocking it.
	Background bool
}

// ExpectedCode returns the expected exit code, defaulting to 0.
func (a *Activity) ExpectedCode() int {
	if a.ExpectedReturnCode == nil {
		return 0
	}
	return *a.ExpectedReturnCode
}

// Outcome is the result of one process run, produced fresh per invocation.
type Outcome struct {
	ExitCode int    `json:"exit_code"`
	Stdout   string `json:"stdout"`
	Stderr   string `json:"stderr"`
}

// Experiment is an ordered set of activities loaded from a declarative file.
type Experiment struct {
	Title         string
	Description   string
	Configuration Configuration
	Activities    []Activity
	// Digest is the xxhash of the raw source document, recorded in the run
	// journal so a report can be tied back to the exact definition.
	Digest string
}
