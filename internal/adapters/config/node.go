package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.faultline.dev/faultline/internal/adapters/logger"
	"go.faultline.dev/faultline/internal/core/ports"
)

const NodeID graft.ID = "adapter.experiment_loader"

func init() {
	graft.Register(graft.Node[ports.ExperimentLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ExperimentLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})
}
