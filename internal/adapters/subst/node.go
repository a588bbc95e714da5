package subst

import (
	"context"

	"github.com/grindlemire/graft"
	"go.faultline.dev/faultline/internal/core/ports"
)

const NodeID graft.ID = "adapter.substituter"

func init() {
	graft.Register(graft.Node[ports.Substituter]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Substituter, error) {
			return New(), nil
		},
	})
}
