package ports

import "go.faultline.dev/faultline/internal/core/domain"

// ExperimentLoader loads an experiment definition from a declarative source.
//
//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type ExperimentLoader interface {
	Load(path string) (*domain.Experiment, error)
}
