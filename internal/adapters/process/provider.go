package process

import (
	"go.faultline.dev/faultline/internal/core/ports"
)

var _ ports.ActivityProvider = (*Provider)(nil)

// Provider bundles the validator and runner into the activity provider port.
type Provider struct {
	*Validator
	*Runner
}

// NewProvider creates the process activity provider.
func NewProvider(subst ports.Substituter, logger ports.Logger, opts ...RunnerOption) *Provider {
	return &Provider{
		Validator: NewValidator(),
		Runner:    NewRunner(subst, logger, opts...),
	}
}
