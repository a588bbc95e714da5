package process

import (
	"context"

	"github.com/grindlemire/graft"
	"go.faultline.dev/faultline/internal/adapters/logger"
	"go.faultline.dev/faultline/internal/adapters/subst"
	"go.faultline.dev/faultline/internal/core/ports"
)

const NodeID graft.ID = "adapter.process_provider"

func init() {
	graft.Register(graft.Node[ports.ActivityProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID, subst.NodeID},
		Run: func(ctx context.Context) (ports.ActivityProvider, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			sub, err := graft.Dep[ports.Substituter](ctx)
			if err != nil {
				return nil, err
			}
			return NewProvider(sub, log), nil
		},
	})
}
