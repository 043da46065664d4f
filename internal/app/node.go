package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/binit/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/binit/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/binit/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/binit/internal/adapters/term"      //nolint:depguard // Wired in app layer
	"go.trai.ch/binit/internal/adapters/trash"     //nolint:depguard // Wired in app layer
	"go.trai.ch/binit/internal/core/domain"
	"go.trai.ch/binit/internal/core/ports"
	"go.trai.ch/binit/internal/engine/restore"
	"go.trai.ch/binit/internal/engine/traverse"
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
			traverse.NodeID,
			restore.NodeID,
			trash.NodeID,
			term.NodeID,
			telemetry.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			config.NodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	engine, err := graft.Dep[*traverse.Engine](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[*restore.Resolver](ctx)
	if err != nil {
		return nil, err
	}

	bin, err := graft.Dep[ports.TrashBin](ctx)
	if err != nil {
		return nil, err
	}

	prompter, err := graft.Dep[ports.Prompter](ctx)
	if err != nil {
		return nil, err
	}

	sink, err := graft.Dep[ports.ProgressSink](ctx)
	if err != nil {
		return nil, err
	}

	return New(cfg, engine, resolver, bin, prompter, sink), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:    application,
		Config: cfg,
		Log:    log,
	}, nil
}
