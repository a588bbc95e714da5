// Package ports defines the core interfaces of the application.
package ports

import (
	"context"

	"go.faultline.dev/faultline/internal/core/domain"
)

// ActivityProvider is one pluggable execution backend for activities.
//
// Validate is expected to have been called, and to have passed, before Run
// is invoked; providers still re-check resolvability defensively.
//
//go:generate mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks
type ActivityProvider interface {
	// Validate checks that the activity definition is well formed and
	// callable by the current user. All violations are reported as
	// domain.ErrInvalidActivity. It has no side effects beyond read-only
	// filesystem queries and may be called repeatedly.
	Validate(activity *domain.Activity) error

	// Run executes the activity and classifies the result against its
	// expected exit code. A timeout or exit-code mismatch is reported as
	// domain.ErrFailedActivity.
	Run(ctx context.Context, activity *domain.Activity, cfg domain.Configuration, secrets domain.Secrets) (domain.Outcome, error)
}
