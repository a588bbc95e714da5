package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.faultline.dev/faultline/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.faultline.dev/faultline/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.faultline.dev/faultline/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.faultline.dev/faultline/internal/core/ports"
	"go.faultline.dev/faultline/internal/engine"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			engine.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			loader, err := graft.Dep[ports.ExperimentLoader](ctx)
			if err != nil {
				return nil, err
			}
			eng, err := graft.Dep[*engine.Engine](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(loader, eng, log), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
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
			return &Components{
				App:       application,
				Logger:    log,
				Telemetry: tel,
			}, nil
		},
	})
}
