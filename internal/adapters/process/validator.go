// Package process implements the process activity provider: it validates
// that an activity's declared executable is callable by the current user and
// runs it under an optional deadline, enforcing the expected exit code.
package process

import (
	"errors"
	"fmt"
	"os"

	"go.faultline.dev/faultline/internal/core/domain"
	"go.trai.ch/zerr"
)

// Validator performs the static pre-execution checks on a process activity.
type Validator struct{}

// NewValidator creates a new Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate checks that the activity declares a resolvable, executable path.
// Every violation is reported as domain.ErrInvalidActivity; the first
// violation in check order wins.
//
// The "expected return code must be an integer" check of weakly typed
// sources lives in the experiment loader, where the raw document is still
// visible; the domain model makes a non-integer code unrepresentable here.
//
// Validate only reads the filesystem and may be called repeatedly; repeated
// calls on an unchanged activity give the same result.
func (v *Validator) Validate(activity *domain.Activity) error {
	path := activity.Provider.Path
	if path == "" {
		return zerr.Wrap(domain.ErrInvalidActivity, "a process activity must have a path")
	}

	resolved, err := resolvePath(path)
	switch {
	case errors.Is(err, os.ErrPermission):
		return zerr.Wrap(domain.ErrInvalidActivity, fmt.Sprintf(
			"no access permission to '%s', in activity '%s'", resolved, activity.Name))
	case err != nil:
		return zerr.Wrap(domain.ErrInvalidActivity, fmt.Sprintf(
			"path '%s' cannot be found, in activity '%s'", path, activity.Name))
	}

	return nil
}
