package ports

import "go.faultline.dev/faultline/internal/core/domain"

// Substituter resolves placeholders in process arguments from configuration
// and secrets. Implementations must be pure: a new Arguments value of the
// same shape is returned and substitution on empty inputs is a no-op.
//
//go:generate mockgen -source=substituter.go -destination=mocks/mock_substituter.go -package=mocks
type Substituter interface {
	Substitute(args domain.Arguments, cfg domain.Configuration, secrets domain.Secrets) (domain.Arguments, error)
}
