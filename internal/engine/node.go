package engine

import (
	"context"

	"github.com/grindlemire/graft"
	"go.faultline.dev/faultline/internal/adapters/logger"
	"go.faultline.dev/faultline/internal/adapters/process"
	"go.faultline.dev/faultline/internal/adapters/telemetry"
	"go.faultline.dev/faultline/internal/core/ports"
)

const NodeID graft.ID = "engine.main"

func init() {
	graft.Register(graft.Node[*Engine]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{process.NodeID, logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (*Engine, error) {
			provider, err := graft.Dep[ports.ActivityProvider](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return New(provider, log, tel), nil
		},
	})
}
